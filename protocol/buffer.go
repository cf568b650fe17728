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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Tnze/go-mc/nbt"
)

const (
	// MaxVarIntLen is the longest encoding of a 32-bit VarInt.
	MaxVarIntLen = 5
	// MaxVarLongLen is the longest encoding of a 64-bit VarLong.
	MaxVarLongLen = 10

	tagEnd = 0
)

// Buffer is a byte cursor used by every packet to read and write its fields.
// Reads consume from the front, writes append to the end.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer returns a Buffer reading data from the beginning.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewWriteBuffer returns an empty Buffer with room for size bytes.
func NewWriteBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, 0, size)}
}

// Bytes returns every byte held by the buffer, read or not.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.off }

// Offset returns the read position.
func (b *Buffer) Offset() int { return b.off }

func (b *Buffer) next(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedPacket, n, b.Remaining())
	}
	p := b.data[b.off : b.off+n]
	b.off += n
	return p, nil
}

// Read implements io.Reader over the unread bytes.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Remaining() == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Remaining() == 0 {
		return 0, io.EOF
	}
	c := b.data[b.off]
	b.off++
	return c, nil
}

// UnreadByte implements io.ByteScanner.
func (b *Buffer) UnreadByte() error {
	if b.off == 0 {
		return errors.New("protocol: UnreadByte at beginning of buffer")
	}
	b.off--
	return nil
}

// Write implements io.Writer by appending p.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Buffer) ReadVarInt() (int32, error) {
	var v uint32
	for i := 0; ; i++ {
		if i == MaxVarIntLen {
			return 0, ErrMalformedVarInt
		}
		if b.Remaining() == 0 {
			return 0, fmt.Errorf("%w: varint cut after %d bytes", ErrTruncatedPacket, i)
		}
		c := b.data[b.off]
		b.off++
		v |= uint32(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			return int32(v), nil
		}
	}
}

// WriteVarInt writes v in its minimal form. Negative values always take
// five bytes since they are encoded as their unsigned bit pattern.
func (b *Buffer) WriteVarInt(v int32) {
	b.data = binary.AppendUvarint(b.data, uint64(uint32(v)))
}

func (b *Buffer) ReadVarLong() (int64, error) {
	var v uint64
	for i := 0; ; i++ {
		if i == MaxVarLongLen {
			return 0, ErrMalformedVarInt
		}
		if b.Remaining() == 0 {
			return 0, fmt.Errorf("%w: varlong cut after %d bytes", ErrTruncatedPacket, i)
		}
		c := b.data[b.off]
		b.off++
		v |= uint64(c&0x7F) << (7 * i)
		if c&0x80 == 0 {
			return int64(v), nil
		}
	}
}

func (b *Buffer) WriteVarLong(v int64) {
	b.data = binary.AppendUvarint(b.data, uint64(v))
}

// VarIntSize returns how many bytes WriteVarInt uses for v.
func VarIntSize(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

func (b *Buffer) ReadBool() (bool, error) {
	c, err := b.ReadUint8()
	return c != 0, err
}

func (b *Buffer) WriteBool(v bool) {
	if v {
		b.data = append(b.data, 1)
	} else {
		b.data = append(b.data, 0)
	}
}

func (b *Buffer) ReadInt8() (int8, error) {
	c, err := b.ReadUint8()
	return int8(c), err
}

func (b *Buffer) WriteInt8(v int8) { b.data = append(b.data, byte(v)) }

func (b *Buffer) ReadUint8() (uint8, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (b *Buffer) WriteUint8(v uint8) { b.data = append(b.data, v) }

func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

func (b *Buffer) WriteInt16(v int16) { b.WriteUint16(uint16(v)) }

func (b *Buffer) ReadUint16() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (b *Buffer) WriteUint16(v uint16) { b.data = binary.BigEndian.AppendUint16(b.data, v) }

func (b *Buffer) ReadInt32() (int32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (b *Buffer) WriteInt32(v int32) { b.data = binary.BigEndian.AppendUint32(b.data, uint32(v)) }

func (b *Buffer) ReadInt64() (int64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (b *Buffer) WriteInt64(v int64) { b.data = binary.BigEndian.AppendUint64(b.data, uint64(v)) }

func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadInt32()
	return math.Float32frombits(uint32(v)), err
}

func (b *Buffer) WriteFloat32(v float32) { b.WriteInt32(int32(math.Float32bits(v))) }

func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

func (b *Buffer) WriteFloat64(v float64) { b.WriteInt64(int64(math.Float64bits(v))) }

// ReadUUID reads the most significant half first, then the least.
func (b *Buffer) ReadUUID() (id uuid.UUID, err error) {
	p, err := b.next(16)
	if err != nil {
		return id, err
	}
	copy(id[:], p)
	return id, nil
}

func (b *Buffer) WriteUUID(id uuid.UUID) { b.data = append(b.data, id[:]...) }

// MaxTextLength is the longest string, in characters, the protocol allows.
const MaxTextLength = 32767

// ReadText reads a VarInt byte length followed by UTF-8. max counts
// characters; a declared byte length over max*4 is refused before reading.
func (b *Buffer) ReadText(max int) (string, error) {
	n, err := b.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > max*4 {
		return "", fmt.Errorf("%w: %d bytes declared, max %d chars", ErrTextTooLong, n, max)
	}
	p, err := b.next(int(n))
	if err != nil {
		return "", err
	}
	if c := utf8.RuneCount(p); c > max {
		return "", fmt.Errorf("%w: %d chars, max %d", ErrTextTooLong, c, max)
	}
	return string(p), nil
}

func (b *Buffer) WriteText(s string) {
	b.WriteVarInt(int32(len(s)))
	b.data = append(b.data, s...)
}

// ReadBytes reads exactly n raw bytes. The result aliases the buffer.
func (b *Buffer) ReadBytes(n int) ([]byte, error) { return b.next(n) }

func (b *Buffer) WriteBytes(p []byte) { b.data = append(b.data, p...) }

// ReadBlockLocation unpacks x (26 bits), y (12 bits) and z (26 bits) from
// one big-endian long, sign extending each of them.
func (b *Buffer) ReadBlockLocation() (BlockLocation, error) {
	v, err := b.ReadInt64()
	if err != nil {
		return BlockLocation{}, err
	}
	return UnpackBlockLocation(v), nil
}

func (b *Buffer) WriteBlockLocation(l BlockLocation) { b.WriteInt64(l.Pack()) }

// ReadNBT decodes one named compound into v. A lone TAG_End means the field
// is absent: ok is false and v is untouched.
func (b *Buffer) ReadNBT(v any) (ok bool, err error) {
	if b.Remaining() == 0 {
		return false, fmt.Errorf("%w: missing nbt tag", ErrTruncatedPacket)
	}
	if b.data[b.off] == tagEnd {
		b.off++
		return false, nil
	}
	if _, err := nbt.NewDecoder(b).Decode(v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, fmt.Errorf("%w: %v", ErrTruncatedPacket, err)
		}
		return false, fmt.Errorf("decode nbt: %w", err)
	}
	return true, nil
}

// WriteNBT encodes v as a named compound, or a single TAG_End when v is nil.
func (b *Buffer) WriteNBT(v any) error {
	if v == nil {
		b.data = append(b.data, tagEnd)
		return nil
	}
	data, err := nbt.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode nbt: %w", err)
	}
	b.data = append(b.data, data...)
	return nil
}

// BlockLocation is an integer block coordinate.
type BlockLocation struct {
	X, Y, Z int32
}

// Pack returns the 64-bit wire form: x<<38 | y<<26 | z.
func (l BlockLocation) Pack() int64 {
	return (int64(l.X)&0x3FFFFFF)<<38 | (int64(l.Y)&0xFFF)<<26 | int64(l.Z)&0x3FFFFFF
}

// UnpackBlockLocation is the inverse of Pack.
func UnpackBlockLocation(v int64) BlockLocation {
	return BlockLocation{
		X: int32(v >> 38),
		Y: int32(v << 26 >> 52),
		Z: int32(v << 38 >> 38),
	}
}
