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
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// The process wide tables. They are empty until Load returns nil.
var (
	Materials = NewRegistry[*Material]("material")
	Sounds    = NewRegistry[*Sound]("sound")
	Arts      = NewRegistry[*Art]("art")
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load fills the tables from the embedded data. Only the first call does
// any work, later calls return its result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load(dataFS)
	})
	return loadErr
}

func load(fsys fs.FS) error {
	if err := loadTable(fsys, "data/materials.yaml", "materials", Materials); err != nil {
		return err
	}
	if err := loadTable(fsys, "data/sounds.yaml", "sounds", Sounds); err != nil {
		return err
	}
	return loadTable(fsys, "data/arts.yaml", "arts", Arts)
}

type validator interface{ validate() error }

func loadTable[T Keyed](fsys fs.FS, path, section string, r *Registry[T]) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var file map[string][]T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	list, ok := file[section]
	if !ok {
		return fmt.Errorf("parse %s: missing %q section", path, section)
	}
	for _, v := range list {
		if val, ok := any(v).(validator); ok {
			if err := val.validate(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		if err := r.Register(v); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
