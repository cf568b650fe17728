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

package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrDuplicateKey = errors.New("content: duplicate key")

// Keyed is implemented by every kind of content that can be looked up by
// its numeric network id and by name.
type Keyed interface {
	Key() (id int, name string)
}

// Registry is a lookup table for one kind of content. It is filled once by
// Load before the server accepts connections and only read afterwards.
type Registry[T Keyed] struct {
	kind   string
	byID   map[int]T
	byName map[string]T
}

func NewRegistry[T Keyed](kind string) *Registry[T] {
	return &Registry[T]{
		kind:   kind,
		byID:   make(map[int]T),
		byName: make(map[string]T),
	}
}

// Register adds v. Both its id and its name must be unused.
func (r *Registry[T]) Register(v T) error {
	id, name := v.Key()
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("content: %s %d has no name", r.kind, id)
	}
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("%w: %s id %d", ErrDuplicateKey, r.kind, id)
	}
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %s name %q", ErrDuplicateKey, r.kind, name)
	}
	r.byID[id] = v
	r.byName[key] = v
	return nil
}

func (r *Registry[T]) ByID(id int) (v T, ok bool) {
	v, ok = r.byID[id]
	return
}

// ByName finds an entry ignoring case and the "minecraft:" namespace.
func (r *Registry[T]) ByName(name string) (v T, ok bool) {
	v, ok = r.byName[normalize(name)]
	return
}

func (r *Registry[T]) Len() int { return len(r.byID) }

// All returns every entry sorted by id.
func (r *Registry[T]) All() []T {
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	list := make([]T, len(ids))
	for i, id := range ids {
		list[i] = r.byID[id]
	}
	return list
}

func normalize(name string) string {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "minecraft:")
	return name
}
