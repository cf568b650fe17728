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

import "errors"

// Codec and registry errors. Check them with errors.Is, the returned values
// are usually wrapped with the offending length or packet id.
var (
	// ErrTruncatedPacket is returned when a field needs more bytes than remain.
	ErrTruncatedPacket = errors.New("truncated packet")
	// ErrMalformedVarInt is returned when a VarInt/VarLong keeps its
	// continuation bit set past the maximum encoded length.
	ErrMalformedVarInt = errors.New("malformed varint")
	// ErrTextTooLong is returned when a length-prefixed text declares more
	// than the caller allowed.
	ErrTextTooLong = errors.New("text too long")
	// ErrUnknownPacketID is returned when no packet type is registered for
	// the (phase, direction, id) triple.
	ErrUnknownPacketID = errors.New("unknown packet id")
	// ErrDuplicateDescriptor is returned by Register when the triple is taken.
	ErrDuplicateDescriptor = errors.New("duplicate packet descriptor")
)

// IsFatal reports whether err leaves the connection framing in an unknown
// state. Frames are length-delimited, so only ErrUnknownPacketID can be
// skipped; every other decode error tears the connection down.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrUnknownPacketID)
}
