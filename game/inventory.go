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
	"sync"

	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/inventory"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
)

// chestViewers are the clients looking into the shared chest.
type chestViewers struct {
	sync.Mutex
	views map[*client.Client]*inventory.View
}

func (cv *chestViewers) add(c *client.Client, v *inventory.View) {
	cv.Lock()
	defer cv.Unlock()
	if cv.views == nil {
		cv.views = make(map[*client.Client]*inventory.View)
	}
	cv.views[c] = v
}

func (cv *chestViewers) remove(c *client.Client) {
	cv.Lock()
	defer cv.Unlock()
	delete(cv.views, c)
}

// refresh resends the chest to everyone looking at it except c.
func (cv *chestViewers) refresh(c *client.Client) {
	cv.Lock()
	defer cv.Unlock()
	for other, v := range cv.views {
		if other != c {
			other.SendWindowItems(v)
		}
	}
}

func (g *Game) addInventoryHandlers(c *client.Client) {
	client.AddHandler(c, g.handleClickWindow)
	client.AddHandler(c, g.handleCloseWindow)
	client.AddHandler(c, handleConfirmTransaction)
}

func (g *Game) handleClickWindow(p *packets.ClickWindow, c *client.Client) error {
	player := c.GetPlayer()
	v := player.Window

	clicked, err := p.Item.Stack()
	if err != nil {
		c.Log().Debug("Click with unknown item", zap.Error(err))
		g.rejectClick(c, v, p)
		return nil
	}
	typ, err := inventory.ParseClickType(p.Mode, p.Button, p.Slot)
	if err != nil {
		c.Log().Debug("Bad click", zap.Error(err))
		g.rejectClick(c, v, p)
		return nil
	}

	res := g.clicks.Apply(v, inventory.ClickTransaction{
		WindowID:     p.WindowID,
		ActionNumber: p.ActionNumber,
		Slot:         int(p.Slot),
		Type:         typ,
		Button:       p.Button,
		Cursor:       v.Cursor(),
		Clicked:      clicked,
		Creative:     player.Creative(),
	})
	c.SendTransaction(res.Confirmation)
	if !res.Accepted {
		g.resync(c, v)
		return nil
	}
	for _, d := range res.Drops {
		g.overworld.DropItem(player, d)
	}
	if v.HasUpper() {
		g.chestViewers.refresh(c)
	}
	return nil
}

func (g *Game) rejectClick(c *client.Client, v *inventory.View, p *packets.ClickWindow) {
	c.SendTransaction(inventory.Confirmation{WindowID: p.WindowID, ActionNumber: p.ActionNumber})
	g.resync(c, v)
}

// resync overwrites the client's idea of the open window and the cursor.
func (g *Game) resync(c *client.Client, v *inventory.View) {
	c.SendWindowItems(v)
	c.SendCursor(v.Cursor())
}

func (g *Game) handleCloseWindow(p *packets.ServerboundCloseWindow, c *client.Client) error {
	player := c.GetPlayer()
	if p.WindowID != player.Window.WindowID {
		c.Log().Debug("Close of a window that is not open", zap.Uint8("window", p.WindowID))
	}
	g.closeWindow(c, player)
	return nil
}

// closeWindow drops the cursor stack and goes back to the player's own
// inventory.
func (g *Game) closeWindow(c *client.Client, p *world.Player) {
	if p.Window.HasUpper() {
		g.chestViewers.remove(c)
	}
	if stack := p.Window.TakeCursor(); !stack.IsEmpty() {
		g.overworld.DropItem(p, stack)
	}
	p.CloseWindow()
}

func handleConfirmTransaction(p *packets.ConfirmTransaction, c *client.Client) error {
	c.Log().Debug("Client confirmed transaction",
		zap.Int8("window", p.WindowID),
		zap.Int16("action", p.ActionNumber),
		zap.Bool("accepted", p.Accepted))
	return nil
}
