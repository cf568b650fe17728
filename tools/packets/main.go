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

// Йоу, чат! Маленька утиліта, яка друкує всі пакети, що знає сервер,
// і скільки предметів, звуків та картин вшито в бінарник.
// Зручно звіряти з таблицями протоколу 1.9.

package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"text/tabwriter"

	"BasaltCore/content"
	"BasaltCore/protocol/packets"
)

var (
	phase   = flag.String("phase", "", "Only print packets of this phase (Handshake, Status, Login, Play)")
	showAll = flag.Bool("content", false, "Also print the content tables")
)

func main() {
	flag.Parse()

	r := packets.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tDIRECTION\tID\tTYPE")
	for _, d := range r.Descriptors() {
		if *phase != "" && d.Phase.String() != *phase {
			continue
		}
		p, _ := r.New(d.Phase, d.Direction, d.ID)
		name := reflect.TypeOf(p).Elem().Name()
		fmt.Fprintf(w, "%s\t%s\t0x%02X\t%s\n", d.Phase, d.Direction, d.ID, name)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !*showAll {
		return
	}
	if err := content.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("\nmaterials %d, sounds %d, arts %d (longest title %d)\n",
		content.Materials.Len(), content.Sounds.Len(), content.Arts.Len(), content.MaxArtTitleLength())
}
