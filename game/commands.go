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

package game

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"BasaltCore/client"
	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/chat"
)

type command func(g *Game, c *client.Client, args []string) error

var commands = map[string]command{
	"give":     cmdGive,
	"chest":    cmdChest,
	"sound":    cmdSound,
	"painting": cmdPainting,
}

func (g *Game) runCommand(c *client.Client, args []string) {
	if len(args) == 0 {
		return
	}
	cmd, ok := commands[args[0]]
	if !ok {
		c.SendSystemChat(chat.TranslateMsg("commands.generic.notFound").SetColor(chat.Red))
		return
	}
	if err := cmd(g, c, args[1:]); err != nil {
		c.SendSystemChat(chat.Text(err.Error()).SetColor(chat.Red))
	}
}

// /give [item] [amount]. Without an item the held stack is filled up.
func cmdGive(g *Game, c *client.Client, args []string) error {
	if len(args) == 0 {
		return giveHeld(c)
	}
	m, ok := content.Materials.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown item %s", args[0])
	}
	amount := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > 64*inventory.PlayerSize {
			return fmt.Errorf("bad amount %s", args[1])
		}
		amount = n
	}

	p := c.GetPlayer()
	for amount > 0 {
		stack := inventory.NewItemStack(m, min(amount, m.MaxStack))
		amount -= stack.Amount
		if left := p.Inventory.Give(stack); left > 0 {
			g.overworld.DropItem(p, stack.WithAmount(left))
		}
	}
	c.SendWindowItems(p.Window)
	return nil
}

func giveHeld(c *client.Client) error {
	p := c.GetPlayer()
	slot, held := p.HeldItem()
	if held.IsEmpty() {
		return fmt.Errorf("usage: /give <item> [amount]")
	}
	i := inventory.HotbarStart + slot
	full := held.WithAmount(held.MaxStack())
	if !p.PlayerView().Replace(i, held, full) {
		return fmt.Errorf("held item changed")
	}
	c.SendSetSlot(0, i, full)
	return nil
}

var windowCounter atomic.Uint32

// nextWindowID cycles through 1..100, 0 is the player's own inventory.
func nextWindowID() uint8 {
	return uint8(windowCounter.Add(1)%100 + 1)
}

// /chest opens the chest every player shares.
func cmdChest(g *Game, c *client.Client, _ []string) error {
	p := c.GetPlayer()
	if p.Window.HasUpper() {
		c.SendCloseWindow(p.Window.WindowID)
	}
	g.closeWindow(c, p)
	v := inventory.NewContainerView(nextWindowID(), g.sharedChest, p.Inventory)
	p.Window = v
	g.chestViewers.add(c, v)
	c.SendOpenWindow(v, "minecraft:chest", chat.TranslateMsg("container.chest"))
	return nil
}

// /sound <name>
func cmdSound(g *Game, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: /sound <name>")
	}
	s, ok := content.Sounds.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown sound %s", args[0])
	}
	pos, _ := g.overworld.Locate(c.GetPlayer())
	g.overworld.PlaySound(s, pos, 1, 63)
	return nil
}

// /painting <title> hangs a painting two blocks in front of the player,
// facing back at them.
func cmdPainting(g *Game, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: /painting <title>")
	}
	art, ok := content.Arts.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown painting %s", args[0])
	}
	pos, rot := g.overworld.Locate(c.GetPlayer())
	looking := lookDirection(rot)
	offset := [4][2]int32{{0, 2}, {-2, 0}, {0, -2}, {2, 0}}[looking]
	loc := protocol.BlockLocation{
		X: int32(math.Floor(pos[0])) + offset[0],
		Y: int32(math.Floor(pos[1] + world.EyeHeight)),
		Z: int32(math.Floor(pos[2])) + offset[1],
	}
	_, err := g.overworld.SpawnPainting(art, loc, (looking+2)&3)
	return err
}

// lookDirection maps yaw onto south, west, north, east (0-3).
func lookDirection(rot world.Rotation) uint8 {
	return uint8(int(math.Floor(float64(rot[0])/90+0.5)) & 3)
}
