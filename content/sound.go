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
	"fmt"
	"unicode/utf8"
)

// Sound is a sound event played by the client.
type Sound struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func (s *Sound) Key() (int, string) { return s.ID, s.Name }

func (s *Sound) validate() error {
	if s.ID < 0 {
		return fmt.Errorf("sound %q: negative id", s.Name)
	}
	return nil
}

// Art is a painting motive. Width and Height are in blocks.
type Art struct {
	ID     int    `yaml:"id"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func (a *Art) Key() (int, string) { return a.ID, a.Title }

func (a *Art) validate() error {
	if a.Width < 1 || a.Width > 4 || a.Height < 1 || a.Height > 4 {
		return fmt.Errorf("art %q: size %dx%d", a.Title, a.Width, a.Height)
	}
	return nil
}

// MaxArtTitleLength returns the longest title among the loaded arts, which
// bounds the title field of the painting spawn packet.
func MaxArtTitleLength() int {
	n := 0
	for _, a := range Arts.All() {
		if l := utf8.RuneCountInString(a.Title); l > n {
			n = l
		}
	}
	return n
}
