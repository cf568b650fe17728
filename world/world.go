// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Йоу, чат! Світ тримає гравців і все, що лежить чи висить навколо них.
// Хто що бачить, вирішує BVH дерево зон видимості гравців.

package world

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
	"BasaltCore/world/internal/bvh"
)

type World struct {
	log    *zap.Logger
	config Config

	tickLock    sync.Mutex
	playerViews playerViewTree
	players     map[Client]*Player
	items       map[int32]*Item
	paintings   map[int32]*Painting
}

type Config struct {
	ViewDistance  int32
	SpawnPosition Position
	// ItemDespawn is the age, in ticks, at which dropped items vanish.
	ItemDespawn int
}

// DefaultItemDespawn is five minutes of ticks.
const DefaultItemDespawn = 6000

type playerView struct {
	EntityViewer
	*Player
}

type (
	vec3d          = bvh.Vec3[float64]
	aabb3d         = bvh.AABB[float64]
	playerViewNode = bvh.Node[float64, aabb3d, playerView]
	playerViewTree = bvh.Tree[float64, aabb3d, playerView]
)

// New returns an empty world. It does not tick until Run is called.
func New(logger *zap.Logger, config Config) *World {
	if config.ItemDespawn <= 0 {
		config.ItemDespawn = DefaultItemDespawn
	}
	return &World{
		log:       logger,
		config:    config,
		players:   make(map[Client]*Player),
		items:     make(map[int32]*Item),
		paintings: make(map[int32]*Painting),
	}
}

func (w *World) SpawnPosition() Position { return w.config.SpawnPosition }

// AddPlayer puts p into the world, sends the client where it stands and
// shows it what is already around.
func (w *World) AddPlayer(c Client, p *Player) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	if p.ViewDistance <= 0 {
		p.ViewDistance = w.config.ViewDistance
	}
	w.players[c] = p
	p.view = w.playerViews.Insert(p.getView(), playerView{c, p})
	w.teleport(c, p, p.Position, p.Rotation)
	w.updateSight(c, p)
}

// teleport moves p and waits for the client to confirm it.
func (w *World) teleport(c Client, p *Player, pos Position, rot Rotation) {
	p.Position, p.Rotation = pos, rot
	p.teleport = &TeleportRequest{
		ID:       c.SendPlayerPosition(pos, rot),
		Position: pos,
		Rotation: rot,
	}
}

// updateSight shows p what came into its view box and hides what left it.
func (w *World) updateSight(c Client, p *Player) {
	var gone []int32
	for id, e := range p.EntitiesInView {
		if !p.view.Box.WithIn(e.Position.vec()) {
			delete(p.EntitiesInView, id)
			gone = append(gone, id)
		}
	}
	if len(gone) > 0 {
		c.ViewRemoveEntities(gone)
	}
	for _, it := range w.items {
		if _, ok := p.EntitiesInView[it.EntityID]; !ok && p.view.Box.WithIn(it.Position.vec()) {
			c.ViewAddItem(it)
			p.EntitiesInView[it.EntityID] = &it.Entity
		}
	}
	for _, pt := range w.paintings {
		if _, ok := p.EntitiesInView[pt.EntityID]; !ok && p.view.Box.WithIn(pt.Position.vec()) {
			c.ViewAddPainting(pt)
			p.EntitiesInView[pt.EntityID] = &pt.Entity
		}
	}
}

func (w *World) RemovePlayer(c Client, p *Player) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	if _, ok := w.players[c]; !ok {
		return
	}
	w.log.Debug("Remove player", zap.String("name", p.Name), zap.Int("in view", len(p.EntitiesInView)))
	w.playerViews.Delete(p.view)
	p.view = nil
	delete(w.players, c)
	clear(p.EntitiesInView)
}

// Locate returns where p stands and looks. The tick moves players, so
// anything outside of it asks here.
func (w *World) Locate(p *Player) (Position, Rotation) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	return p.Position, p.Rotation
}

// viewersOf calls f for every player whose view box holds pos.
func (w *World) viewersOf(pos Position, f func(v playerView)) {
	w.playerViews.Find(bvh.TouchPoint[vec3d, aabb3d](pos.vec()), func(n *playerViewNode) bool {
		f(n.Value)
		return true
	})
}

// DropItem throws stack out of the player's hands, the way a player drops
// items with Q or by clicking outside a window.
func (w *World) DropItem(from *Player, stack *inventory.ItemStack) *Item {
	if stack.IsEmpty() {
		return nil
	}
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	pos := from.EyePosition().Add(0, -0.3, 0)
	it := &Item{Entity: newEntity(pos), Stack: stack.Clone(), Velocity: throwVelocity(from.Rotation)}
	w.items[it.EntityID] = it
	w.viewersOf(it.Position, func(v playerView) {
		v.ViewAddItem(it)
		v.EntitiesInView[it.EntityID] = &it.Entity
	})
	w.log.Debug("Drop item",
		zap.String("player", from.Name),
		zap.Stringer("stack", it.Stack),
		zap.Int32("eid", it.EntityID))
	return it
}

// Items returns the dropped items currently in the world.
func (w *World) Items() []*Item {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	list := make([]*Item, 0, len(w.items))
	for _, it := range w.items {
		list = append(list, it)
	}
	return list
}

// SpawnPainting hangs art on the given face of the block at loc.
func (w *World) SpawnPainting(art *content.Art, loc protocol.BlockLocation, facing uint8) (*Painting, error) {
	if art == nil {
		return nil, fmt.Errorf("spawn painting: no art")
	}
	if facing > 3 {
		return nil, fmt.Errorf("spawn painting: invalid facing %d", facing)
	}
	pos := Position{float64(loc.X) + 0.5, float64(loc.Y) + 0.5, float64(loc.Z) + 0.5}
	pt := &Painting{Entity: newEntity(pos), Art: art, Location: loc, Facing: facing}

	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	w.paintings[pt.EntityID] = pt
	w.viewersOf(pos, func(v playerView) {
		v.ViewAddPainting(pt)
		v.EntitiesInView[pt.EntityID] = &pt.Entity
	})
	return pt, nil
}

// PlaySound plays sound to every player who can see pos. Pitch 63 is the
// normal speed.
func (w *World) PlaySound(sound *content.Sound, pos Position, volume float32, pitch uint8) {
	if sound == nil || !pos.IsValid() {
		return
	}
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	w.viewersOf(pos, func(v playerView) {
		v.ViewSound(sound, pos, volume, pitch)
	})
}

// removeEntities forgets the entities and tells whoever saw them.
func (w *World) removeEntities(ids []int32) {
	if len(ids) == 0 {
		return
	}
	for c, p := range w.players {
		var seen []int32
		for _, id := range ids {
			if _, ok := p.EntitiesInView[id]; ok {
				delete(p.EntitiesInView, id)
				seen = append(seen, id)
			}
		}
		if len(seen) > 0 {
			c.ViewRemoveEntities(seen)
		}
	}
	for _, id := range ids {
		delete(w.items, id)
		delete(w.paintings, id)
	}
}
