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
	"fmt"
	"sort"

	pk "github.com/Tnze/go-mc/net/packet"
)

// Packet is implemented by every wire message. ReadFields and WriteFields
// must be symmetric: reading what WriteFields produced yields an equal value.
type Packet interface {
	Descriptor() Descriptor
	ReadFields(b *Buffer) error
	WriteFields(b *Buffer)
}

// Factory returns a zero packet ready to be decoded into.
type Factory func() Packet

// Registry maps (phase, direction, id) to packet factories. It is filled once
// during startup and only read afterwards, so it needs no locking.
type Registry struct {
	factories map[descriptorKey]Factory
	descs     map[descriptorKey]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[descriptorKey]Factory),
		descs:     make(map[descriptorKey]Descriptor),
	}
}

// Register adds a packet type. The factory must produce packets describing
// themselves with desc.
func (r *Registry) Register(desc Descriptor, factory Factory) error {
	k := desc.key()
	if old, ok := r.descs[k]; ok {
		return fmt.Errorf("%w: %v already registered as %T", ErrDuplicateDescriptor, old, r.factories[k]())
	}
	if got := factory().Descriptor().key(); got != k {
		return fmt.Errorf("protocol: factory for %v produces packets of %v", desc, factory().Descriptor())
	}
	r.factories[k] = factory
	r.descs[k] = desc
	return nil
}

// MustRegister is Register for startup wiring, it panics on error.
func (r *Registry) MustRegister(desc Descriptor, factory Factory) {
	if err := r.Register(desc, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for the triple.
func (r *Registry) Lookup(phase Phase, dir Direction, id int32) (Descriptor, bool) {
	d, ok := r.descs[descriptorKey{id: id, phase: phase, direction: dir}]
	return d, ok
}

// New returns a zero packet of the type registered for the triple.
func (r *Registry) New(phase Phase, dir Direction, id int32) (Packet, bool) {
	factory, ok := r.factories[descriptorKey{id: id, phase: phase, direction: dir}]
	if !ok {
		return nil, false
	}
	return factory(), true
}

func (r *Registry) Len() int { return len(r.descs) }

// Descriptors returns every registered descriptor ordered by phase,
// direction and id.
func (r *Registry) Descriptors() []Descriptor {
	list := make([]Descriptor, 0, len(r.descs))
	for _, d := range r.descs {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Phase != b.Phase {
			return a.Phase < b.Phase
		}
		if a.Direction != b.Direction {
			return a.Direction < b.Direction
		}
		return a.ID < b.ID
	})
	return list
}

// Decode instantiates the packet registered for the triple and reads its
// fields from b.
func (r *Registry) Decode(phase Phase, dir Direction, id int32, b *Buffer) (Packet, error) {
	factory, ok := r.factories[descriptorKey{id: id, phase: phase, direction: dir}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/0x%02X", ErrUnknownPacketID, phase, dir, id)
	}
	p := factory()
	if err := p.ReadFields(b); err != nil {
		return nil, fmt.Errorf("decode %T: %w", p, err)
	}
	return p, nil
}

// DecodeFrame decodes a frame read by go-mc's net.Conn. trailing is the
// number of payload bytes the packet type did not consume.
func (r *Registry) DecodeFrame(phase Phase, dir Direction, frame pk.Packet) (p Packet, trailing int, err error) {
	b := NewBuffer(frame.Data)
	p, err = r.Decode(phase, dir, frame.ID, b)
	if err != nil {
		return nil, 0, err
	}
	return p, b.Remaining(), nil
}

// Encode writes the fields of p into a frame carrying its registered id.
func (r *Registry) Encode(p Packet) (pk.Packet, error) {
	desc := p.Descriptor()
	if _, ok := r.descs[desc.key()]; !ok {
		return pk.Packet{}, fmt.Errorf("%w: %T is not registered as %v", ErrUnknownPacketID, p, desc)
	}
	b := NewWriteBuffer(desc.ExpectedSize)
	p.WriteFields(b)
	return pk.Packet{ID: desc.ID, Data: b.Bytes()}, nil
}
