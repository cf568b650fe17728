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
	"strings"
)

// ArmorType tells which armor slot accepts a material.
type ArmorType int8

const (
	NotArmor ArmorType = iota
	Helmet
	Chestplate
	Leggings
	Boots
)

var armorNames = [...]string{"", "helmet", "chestplate", "leggings", "boots"}

func (a ArmorType) String() string {
	if a < 0 || int(a) >= len(armorNames) {
		return fmt.Sprintf("ArmorType(%d)", int8(a))
	}
	if a == NotArmor {
		return "none"
	}
	return armorNames[a]
}

func (a *ArmorType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range armorNames {
		if name != "" && name == s {
			*a = ArmorType(i)
			return nil
		}
	}
	if s == "" || s == "none" {
		*a = NotArmor
		return nil
	}
	return fmt.Errorf("content: unknown armor type %q", text)
}

// Material is one item or block type. Behaviour that differs between
// materials is expressed by the capability methods, not by subtypes.
type Material struct {
	ID         int       `yaml:"id"`
	Name       string    `yaml:"name"`
	MaxStack   int       `yaml:"max-stack"`
	Durability int       `yaml:"durability"`
	Armor      ArmorType `yaml:"armor"`
}

func (m *Material) Key() (int, string) { return m.ID, m.Name }

// MinecraftID is the namespaced name used by the client.
func (m *Material) MinecraftID() string { return "minecraft:" + m.Name }

// HasDurability reports whether the item wears out with use.
func (m *Material) HasDurability() bool { return m.Durability > 0 }

// Wearable returns the armor slot the material fits into.
func (m *Material) Wearable() (ArmorType, bool) { return m.Armor, m.Armor != NotArmor }

func (m *Material) String() string { return m.MinecraftID() }

func (m *Material) validate() error {
	if m.ID < 0 || m.ID > 0x7FFF {
		return fmt.Errorf("material %q: id %d out of range", m.Name, m.ID)
	}
	if m.MaxStack == 0 {
		m.MaxStack = 64
		if m.HasDurability() || m.Armor != NotArmor {
			m.MaxStack = 1
		}
	}
	if m.MaxStack < 1 || m.MaxStack > 64 {
		return fmt.Errorf("material %q: max stack %d out of range", m.Name, m.MaxStack)
	}
	if m.Armor != NotArmor && m.MaxStack != 1 {
		return fmt.Errorf("material %q: armor must not stack", m.Name)
	}
	return nil
}
