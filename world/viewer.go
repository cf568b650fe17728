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

// Йоу, чат! Інтерфейси, через які світ розповідає клієнтам, що відбувається
// навколо: з'явився предмет, повісили картину, пролунав звук.

package world

import (
	"github.com/Tnze/go-mc/chat"

	"BasaltCore/content"
)

// Client is the connection of a player as seen by the world.
type Client interface {
	EntityViewer
	SendDisconnect(reason chat.Message)
	// SendPlayerPosition teleports the player and returns the id the
	// client confirms the teleport with.
	SendPlayerPosition(pos Position, rot Rotation) (teleportID int32)
}

// EntityViewer receives what happens inside a player's view box.
type EntityViewer interface {
	ViewAddItem(it *Item)
	ViewAddPainting(p *Painting)
	ViewRemoveEntities(entityIDs []int32)
	ViewSound(sound *content.Sound, pos Position, volume float32, pitch uint8)
}
