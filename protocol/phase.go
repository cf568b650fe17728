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

package protocol

import "fmt"

// Version is the protocol number of the client this server talks to (1.9).
const Version = 107

// VersionName is shown in the server list.
const VersionName = "1.9"

// Phase selects the packet id space of a connection.
type Phase int

const (
	Handshake Phase = iota
	Status
	Login
	Play
)

func (p Phase) String() string {
	switch p {
	case Handshake:
		return "Handshake"
	case Status:
		return "Status"
	case Login:
		return "Login"
	case Play:
		return "Play"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// CanTransition reports whether a connection may move from p to next.
// Transitions are server driven and never go back.
func (p Phase) CanTransition(next Phase) bool {
	switch p {
	case Handshake:
		return next == Status || next == Login
	case Login:
		return next == Play
	default:
		return false
	}
}

// Direction is the side a packet travels to.
type Direction uint8

const (
	Clientbound Direction = iota
	Serverbound
)

func (d Direction) String() string {
	switch d {
	case Clientbound:
		return "Clientbound"
	case Serverbound:
		return "Serverbound"
	}
	return "UnknownBound"
}

// Descriptor identifies one packet type on the wire. ExpectedSize is only
// a hint used to presize the encode buffer.
type Descriptor struct {
	ID           int32
	Phase        Phase
	Direction    Direction
	ExpectedSize int
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s/0x%02X", d.Phase, d.Direction, d.ID)
}

func (d Descriptor) key() descriptorKey {
	return descriptorKey{id: d.ID, phase: d.Phase, direction: d.Direction}
}

type descriptorKey struct {
	id        int32
	phase     Phase
	direction Direction
}
