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

// Йоу, чат! Тут живе гравець: хто він, де стоїть, що тримає в інвентарі
// і які сутності навколо себе вже бачить.

package world

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"BasaltCore/inventory"
)

type Player struct {
	Entity
	Name     string
	Gamemode int32

	// ViewDistance is the radius, in chunks, inside which the player sees
	// other entities.
	ViewDistance int32
	Inventory    *inventory.PlayerInventory

	// Window is the inventory view the client has open. It is only touched
	// by the goroutine reading the player's packets.
	Window     *inventory.View
	playerView *inventory.View

	EntitiesInView map[int32]*Entity
	view           *playerViewNode
	teleport       *TeleportRequest
	chatSpam       atomic.Int32

	Inputs Inputs
}

// NewPlayer returns a player standing at pos with an empty inventory and
// its own inventory window open.
func NewPlayer(name string, id uuid.UUID, gamemode int32, pos Position) *Player {
	inv := inventory.NewPlayerInventory()
	p := &Player{
		Entity:         Entity{EntityID: NewEntityID(), UUID: id, Position: pos},
		Name:           name,
		Gamemode:       gamemode,
		Inventory:      inv,
		playerView:     inventory.NewPlayerView(inv),
		EntitiesInView: make(map[int32]*Entity),
	}
	p.Window = p.playerView
	p.Inputs.Position = pos
	return p
}

// Creative reports whether the player is in creative mode.
func (p *Player) Creative() bool { return p.Gamemode == 1 }

// PlayerView is the always available window 0.
func (p *Player) PlayerView() *inventory.View { return p.playerView }

// CloseWindow goes back to the player's own inventory.
func (p *Player) CloseWindow() { p.Window = p.playerView }

// EyeHeight is how far above its feet a standing player looks from.
const EyeHeight = 1.62

// EyePosition is where the player looks from.
func (p *Player) EyePosition() Position { return p.Position.Add(0, EyeHeight, 0) }

// HeldItem returns a copy of the stack in the selected hotbar slot.
func (p *Player) HeldItem() (slot int, stack *inventory.ItemStack) {
	p.Inputs.Lock()
	slot = p.Inputs.HeldSlot
	p.Inputs.Unlock()
	return slot, p.Inventory.Held(slot)
}

func (p *Player) getView() aabb3d {
	return aabb3d{
		Upper: p.Position.vec().Add(vec3d{1, 1, 1}.Mul(float64(p.ViewDistance) * 16)),
		Lower: p.Position.vec().Sub(vec3d{1, 1, 1}.Mul(float64(p.ViewDistance) * 16)),
	}
}

// TeleportRequest is a position the client has not confirmed yet. Until it
// does, whatever it reports about its movement is ignored.
type TeleportRequest struct {
	ID int32
	Position
	Rotation
}

// Inputs is what the client reports between two ticks.
type Inputs struct {
	sync.Mutex
	Latency time.Duration
	// TeleportID is the last teleport the client confirmed.
	TeleportID int32
	Position   Position
	Rotation   Rotation
	HeldSlot   int
	// ViewDistance is what the client asked for, 0 until it says.
	ViewDistance int8
}
