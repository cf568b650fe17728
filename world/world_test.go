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

package world

import (
	"math"
	"testing"

	"github.com/Tnze/go-mc/chat"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
)

type recorder struct {
	items     []int32
	paintings []int32
	removed   []int32
	sounds    []string
	teleports []Position
	kicked    bool
}

func (r *recorder) ViewAddItem(it *Item)            { r.items = append(r.items, it.EntityID) }
func (r *recorder) ViewAddPainting(p *Painting)     { r.paintings = append(r.paintings, p.EntityID) }
func (r *recorder) ViewRemoveEntities(ids []int32)  { r.removed = append(r.removed, ids...) }
func (r *recorder) SendDisconnect(chat.Message)     { r.kicked = true }
func (r *recorder) SendPlayerPosition(pos Position, _ Rotation) int32 {
	r.teleports = append(r.teleports, pos)
	return int32(len(r.teleports))
}
func (r *recorder) ViewSound(s *content.Sound, _ Position, _ float32, _ uint8) {
	r.sounds = append(r.sounds, s.Name)
}

var stone = &content.Material{ID: 1, Name: "stone", MaxStack: 64}

func newTestWorld() *World {
	return New(zap.NewNop(), Config{ViewDistance: 2, SpawnPosition: Position{0, 64, 0}, ItemDespawn: 3})
}

func join(w *World, name string, pos Position) (*recorder, *Player) {
	c := new(recorder)
	p := NewPlayer(name, uuid.New(), 0, pos)
	w.AddPlayer(c, p)
	return c, p
}

func TestDropItem_Visibility(t *testing.T) {
	w := newTestWorld()
	near, p := join(w, "near", Position{0, 64, 0})
	far, _ := join(w, "far", Position{500, 64, 0})

	it := w.DropItem(p, inventory.NewItemStack(stone, 5))
	if it == nil || it.Stack.Amount != 5 {
		t.Fatalf("DropItem = %v", it)
	}
	if len(near.items) != 1 || near.items[0] != it.EntityID {
		t.Errorf("near viewer saw %v", near.items)
	}
	if len(far.items) != 0 {
		t.Errorf("far viewer saw %v", far.items)
	}
	if it.Velocity[1] <= 0 {
		t.Errorf("item thrown level looking should go up first: %v", it.Velocity)
	}
	if w.DropItem(p, nil) != nil {
		t.Error("dropping nothing spawned an item")
	}

	late, _ := join(w, "late", Position{10, 64, 10})
	if len(late.items) != 1 {
		t.Errorf("joining player was not shown the item: %v", late.items)
	}
}

func TestItemDespawn(t *testing.T) {
	w := newTestWorld()
	c, p := join(w, "steve", Position{0, 64, 0})
	it := w.DropItem(p, inventory.NewItemStack(stone, 1))
	for n := uint(0); n < 2; n++ {
		w.tick(n)
	}
	if len(c.removed) != 0 || len(w.Items()) != 1 {
		t.Fatalf("despawned too early")
	}
	w.tick(2)
	if len(c.removed) != 1 || c.removed[0] != it.EntityID {
		t.Errorf("removed = %v", c.removed)
	}
	if len(w.Items()) != 0 {
		t.Error("item still in the world")
	}
	if _, ok := p.EntitiesInView[it.EntityID]; ok {
		t.Error("item still in view")
	}
}

func TestSpawnPainting(t *testing.T) {
	w := newTestWorld()
	c, _ := join(w, "steve", Position{0, 64, 0})
	art := &content.Art{ID: 0, Title: "Kebab", Width: 1, Height: 1}

	if _, err := w.SpawnPainting(art, protocol.BlockLocation{X: 1, Y: 65, Z: 1}, 4); err == nil {
		t.Error("facing 4 accepted")
	}
	pt, err := w.SpawnPainting(art, protocol.BlockLocation{X: 1, Y: 65, Z: 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.paintings) != 1 || c.paintings[0] != pt.EntityID {
		t.Errorf("paintings = %v", c.paintings)
	}
}

func TestPlaySound(t *testing.T) {
	w := newTestWorld()
	near, _ := join(w, "near", Position{0, 64, 0})
	far, _ := join(w, "far", Position{0, 64, 100})
	w.PlaySound(&content.Sound{ID: 12, Name: "block.chest.open"}, Position{3, 64, 3}, 1, 63)
	if len(near.sounds) != 1 || len(far.sounds) != 0 {
		t.Errorf("near %v, far %v", near.sounds, far.sounds)
	}
}

func TestRemovePlayer(t *testing.T) {
	w := newTestWorld()
	c, p := join(w, "steve", Position{0, 64, 0})
	_, alex := join(w, "alex", Position{0, 64, 0})
	w.RemovePlayer(c, p)
	w.RemovePlayer(c, p)
	if len(w.players) != 1 {
		t.Error("player still in world")
	}
	w.DropItem(alex, inventory.NewItemStack(stone, 1))
	if len(c.items) != 0 {
		t.Error("removed player still receives entities")
	}
}

func TestCountChat(t *testing.T) {
	p := NewPlayer("steve", uuid.New(), 0, Position{})
	for i := 0; i < chatSpamLimit/chatSpamCost; i++ {
		if !p.CountChat() {
			t.Fatalf("message %d counted as spam", i)
		}
	}
	if p.CountChat() {
		t.Error("11th message in a row allowed")
	}
	for i := 0; i < 1000; i++ {
		p.decayChat()
	}
	if p.chatSpam.Load() != 0 {
		t.Errorf("counter decayed to %d", p.chatSpam.Load())
	}
}

func TestViewDistance(t *testing.T) {
	w := newTestWorld()
	c, p := join(w, "steve", Position{0, 64, 0})
	_, alex := join(w, "alex", Position{20, 64, 0})
	p.Inputs.Lock()
	p.Inputs.ViewDistance = 1
	p.Inputs.Unlock()
	w.tick(1)
	if p.ViewDistance != 1 {
		t.Fatalf("ViewDistance = %d", p.ViewDistance)
	}
	w.DropItem(alex, inventory.NewItemStack(stone, 1))
	if len(c.items) != 0 {
		t.Error("item 20 blocks away seen with one chunk of view")
	}

	p.Inputs.Lock()
	p.Inputs.ViewDistance = 32
	p.Inputs.Unlock()
	w.tick(2)
	if p.ViewDistance != 2 {
		t.Errorf("ViewDistance = %d, want the server limit", p.ViewDistance)
	}
}

func move(p *Player, pos Position, rot Rotation) {
	p.Inputs.Lock()
	p.Inputs.Position, p.Inputs.Rotation = pos, rot
	p.Inputs.Unlock()
}

func confirmTeleport(p *Player, id int32) {
	p.Inputs.Lock()
	p.Inputs.TeleportID = id
	p.Inputs.Unlock()
}

func TestMove(t *testing.T) {
	w := New(zap.NewNop(), Config{ViewDistance: 2, ItemDespawn: 100})
	c, p := join(w, "steve", Position{0, 64, 0})
	_, alex := join(w, "alex", Position{60, 64, 0})
	near := w.DropItem(p, inventory.NewItemStack(stone, 1))
	far := w.DropItem(alex, inventory.NewItemStack(stone, 1))
	if len(c.teleports) != 1 || c.teleports[0] != (Position{0, 64, 0}) {
		t.Fatalf("teleports on join = %v", c.teleports)
	}

	move(p, Position{5, 64, 0}, Rotation{})
	w.tick(1)
	if p.Position != (Position{0, 64, 0}) {
		t.Fatalf("moved before confirming the teleport: %v", p.Position)
	}

	confirmTeleport(p, 1)
	w.tick(2)
	if p.Inputs.Position != (Position{0, 64, 0}) {
		t.Errorf("inputs not reset to the teleport: %v", p.Inputs.Position)
	}

	move(p, Position{40, 64, 0}, Rotation{90, 0})
	w.tick(3)
	if p.Position != (Position{40, 64, 0}) || p.Rotation != (Rotation{90, 0}) {
		t.Fatalf("player at %v %v", p.Position, p.Rotation)
	}
	if len(c.removed) != 1 || c.removed[0] != near.EntityID {
		t.Errorf("removed = %v, want the item left at spawn", c.removed)
	}
	if _, ok := p.EntitiesInView[far.EntityID]; !ok {
		t.Error("item near the new position not shown")
	}

	it := w.DropItem(p, inventory.NewItemStack(stone, 1))
	if it.Position[0] != 40 || it.Velocity[0] >= 0 {
		t.Errorf("item dropped at %v with velocity %v", it.Position, it.Velocity)
	}
	if pos, rot := w.Locate(p); pos != p.Position || rot != p.Rotation {
		t.Errorf("Locate = %v %v", pos, rot)
	}
}

func TestMove_TooFast(t *testing.T) {
	w := newTestWorld()
	c, p := join(w, "steve", Position{0, 64, 0})
	confirmTeleport(p, 1)
	w.tick(1)

	move(p, Position{500, 64, 0}, Rotation{})
	w.tick(2)
	if p.Position != (Position{0, 64, 0}) {
		t.Errorf("player at %v", p.Position)
	}
	if len(c.teleports) != 2 || p.teleport == nil || p.teleport.ID != 2 {
		t.Errorf("teleports = %v, pending %v", c.teleports, p.teleport)
	}
}

func TestMove_Invalid(t *testing.T) {
	w := newTestWorld()
	c, p := join(w, "steve", Position{0, 64, 0})
	confirmTeleport(p, 1)
	w.tick(1)

	move(p, Position{math.NaN(), 64, 0}, Rotation{})
	w.tick(2)
	if !c.kicked {
		t.Error("NaN position not kicked")
	}
	if !p.Position.IsValid() {
		t.Errorf("player at %v", p.Position)
	}
}

func TestHeldItem(t *testing.T) {
	p := NewPlayer("steve", uuid.New(), 0, Position{})
	p.Inventory.Give(inventory.NewItemStack(stone, 3))
	if slot, it := p.HeldItem(); slot != 0 || it.Amount != 3 {
		t.Errorf("held %d: %v", slot, it)
	}
	p.Inputs.Lock()
	p.Inputs.HeldSlot = 4
	p.Inputs.Unlock()
	if slot, it := p.HeldItem(); slot != 4 || !it.IsEmpty() {
		t.Errorf("held %d: %v", slot, it)
	}
}
