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

// Every chat message adds chatSpamCost to a counter that goes down by one
// each tick. Over chatSpamLimit the player is kicked.
const (
	chatSpamCost  = 20
	chatSpamLimit = 200
)

// CountChat records one chat message and reports whether the player is
// still under the spam limit.
func (p *Player) CountChat() bool {
	return p.chatSpam.Add(chatSpamCost) <= chatSpamLimit
}

func (p *Player) decayChat() {
	for {
		v := p.chatSpam.Load()
		if v <= 0 || p.chatSpam.CompareAndSwap(v, v-1) {
			return
		}
	}
}
