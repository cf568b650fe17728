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
	"testing"
	"testing/fstest"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[*Sound]("sound")
	for _, s := range []*Sound{{ID: 2, Name: "b"}, {ID: 1, Name: "minecraft:A"}} {
		if err := r.Register(s); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Register(&Sound{ID: 1, Name: "c"}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("duplicate id: %v", err)
	}
	if err := r.Register(&Sound{ID: 3, Name: "a"}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("duplicate name: %v", err)
	}
	if err := r.Register(&Sound{ID: 4}); err == nil {
		t.Error("empty name accepted")
	}
	if s, ok := r.ByName("a"); !ok || s.ID != 1 {
		t.Errorf("ByName(a) = %v, %v", s, ok)
	}
	if s, ok := r.ByName("Minecraft:B"); !ok || s.ID != 2 {
		t.Errorf("ByName(Minecraft:B) = %v, %v", s, ok)
	}
	if _, ok := r.ByID(3); ok {
		t.Error("id 3 should not exist")
	}
	all := r.All()
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("All = %v", all)
	}
}

func TestMaterial_Defaults(t *testing.T) {
	cases := []struct {
		m    Material
		want int
	}{
		{Material{ID: 1, Name: "stone"}, 64},
		{Material{ID: 276, Name: "diamond_sword", Durability: 1561}, 1},
		{Material{ID: 298, Name: "leather_helmet", Armor: Helmet}, 1},
		{Material{ID: 332, Name: "snowball", MaxStack: 16}, 16},
	}
	for _, c := range cases {
		m := c.m
		if err := m.validate(); err != nil {
			t.Fatal(err)
		}
		if m.MaxStack != c.want {
			t.Errorf("%s max stack = %d, want %d", m.Name, m.MaxStack, c.want)
		}
	}
	bad := Material{ID: 2, Name: "stacked_armor", MaxStack: 64, Armor: Boots}
	if err := bad.validate(); err == nil {
		t.Error("stackable armor accepted")
	}
}

func TestLoad_Strict(t *testing.T) {
	fsys := fstest.MapFS{
		"data/materials.yaml": {Data: []byte("materials:\n  - {id: 1, name: stone, weight: 3}\n")},
	}
	err := loadTable(fsys, "data/materials.yaml", "materials", NewRegistry[*Material]("material"))
	if err == nil {
		t.Error("unknown field accepted")
	}

	fsys["data/materials.yaml"] = &fstest.MapFile{Data: []byte("materials:\n  - {id: 1, name: stone}\n  - {id: 2, name: STONE}\n")}
	err = loadTable(fsys, "data/materials.yaml", "materials", NewRegistry[*Material]("material"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("duplicate name: %v", err)
	}

	fsys["data/materials.yaml"] = &fstest.MapFile{Data: []byte("materials:\n  - {id: 7, name: hat, armor: cap}\n")}
	err = loadTable(fsys, "data/materials.yaml", "materials", NewRegistry[*Material]("material"))
	if err == nil {
		t.Error("unknown armor type accepted")
	}
}

func TestLoad(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err != nil {
		t.Fatal("second Load:", err)
	}

	helmet, ok := Materials.ByName("minecraft:iron_helmet")
	if !ok {
		t.Fatal("iron_helmet missing")
	}
	if a, ok := helmet.Wearable(); !ok || a != Helmet || helmet.MaxStack != 1 {
		t.Errorf("iron_helmet: armor %v %v, max stack %d", a, ok, helmet.MaxStack)
	}
	if !helmet.HasDurability() {
		t.Error("iron_helmet has no durability")
	}
	if stone, ok := Materials.ByID(1); !ok || stone.Name != "stone" || stone.MaxStack != 64 {
		t.Errorf("ByID(1) = %v", stone)
	}
	if _, ok := Sounds.ByName("block.chest.open"); !ok {
		t.Error("block.chest.open missing")
	}
	if kebab, ok := Arts.ByID(0); !ok || kebab.Title != "Kebab" {
		t.Errorf("art 0 = %v", kebab)
	}
	if n := MaxArtTitleLength(); n != len("SkullAndRoses") {
		t.Errorf("MaxArtTitleLength = %d", n)
	}
}
