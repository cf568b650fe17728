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

// Йоу, чат! Тік - це 50 мс, двадцять разів на секунду. За тік світ
// переносить гравців туди, куди вони сказали, що пішли, старить предмети
// на землі і прибирає ті, що пролежали п'ять хвилин.

package world

import (
	"context"
	"time"

	"github.com/Tnze/go-mc/chat"
	"go.uber.org/zap"
)

// TickDuration is the length of one game tick.
const TickDuration = 50 * time.Millisecond

// Run ticks the world until ctx is done.
func (w *World) Run(ctx context.Context) {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()
	var n uint
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(n)
			n++
		}
	}
}

func (w *World) tick(n uint) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()

	w.subtickUpdatePlayers()
	w.subtickItems()
	if n%(20*60) == 0 {
		w.log.Debug("World stats",
			zap.Int("players", len(w.players)),
			zap.Int("items", len(w.items)),
			zap.Int("paintings", len(w.paintings)))
	}
}

func (w *World) subtickUpdatePlayers() {
	for c, p := range w.players {
		p.decayChat()
		if !p.Inputs.TryLock() {
			continue
		}
		want := int32(p.Inputs.ViewDistance)
		moved := w.movePlayer(c, p, &p.Inputs)
		p.Inputs.Unlock()
		// the server setting is an upper bound
		if want <= 0 || want > w.config.ViewDistance {
			want = w.config.ViewDistance
		}
		if want != p.ViewDistance || moved {
			p.ViewDistance = want
			p.view = w.playerViews.Move(p.view, p.getView())
			w.updateSight(c, p)
		}
	}
}

// maxMoveDistance is how far a player may get in one tick before the
// server puts it back.
const maxMoveDistance = 100

// movePlayer takes over what the client reported since the last tick and
// reports whether the player changed place.
func (w *World) movePlayer(c Client, p *Player, in *Inputs) bool {
	if p.teleport != nil {
		if in.TeleportID != p.teleport.ID {
			return false
		}
		// moves sent before the confirmation started from the old place
		in.Position, in.Rotation = p.teleport.Position, p.teleport.Rotation
		p.teleport = nil
		return false
	}
	if !in.Position.IsValid() {
		w.log.Info("Player move invalid",
			zap.String("player", p.Name),
			zap.Float64("x", in.Position[0]),
			zap.Float64("y", in.Position[1]),
			zap.Float64("z", in.Position[2]))
		in.Position = p.Position
		c.SendDisconnect(chat.TranslateMsg("multiplayer.disconnect.invalid_player_movement"))
		return false
	}
	p.Rotation = in.Rotation
	if in.Position == p.Position {
		return false
	}
	if d := in.Position.vec().Sub(p.Position.vec()); d.Norm() > maxMoveDistance {
		w.log.Info("Player moved too quickly",
			zap.String("player", p.Name),
			zap.Float64("distance", d.Norm()))
		w.teleport(c, p, p.Position, p.Rotation)
		return false
	}
	p.Position = in.Position
	return true
}

func (w *World) subtickItems() {
	var expired []int32
	for id, it := range w.items {
		it.Age++
		if it.Age >= w.config.ItemDespawn {
			expired = append(expired, id)
		}
	}
	w.removeEntities(expired)
}
