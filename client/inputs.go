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

// Йоу, чат! Тут обробляємо дрібні пакети від клієнта: підтвердження
// телепорту, зміну слота в руці, весла човна і налаштування клієнта.
// Майже всі вони просто записують нові значення в Inputs, а світ забирає
// їх на наступному тіку.

package client

import (
	"fmt"

	"go.uber.org/zap"

	"BasaltCore/inventory"
	"BasaltCore/protocol/packets"
)

func clientTeleportConfirm(p *packets.TeleportConfirm, c *Client) error {
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	c.Inputs.TeleportID = p.TeleportID
	c.Inputs.Unlock()
	return nil
}

func clientHeldItemChange(p *packets.HeldItemChange, c *Client) error {
	if p.Slot < 0 || p.Slot >= inventory.HotbarSize {
		return fmt.Errorf("held item slot %d out of hotbar", p.Slot)
	}
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	c.Inputs.HeldSlot = int(p.Slot)
	c.Inputs.Unlock()
	return nil
}

// there are no boats to steer, the paddles only show up in the log
func clientSteerBoat(p *packets.SteerBoat, c *Client) error {
	c.log.Debug("Steer boat", zap.Bool("right", p.Right), zap.Bool("left", p.Left))
	return nil
}

func clientSettings(p *packets.ClientSettings, c *Client) error {
	c.log.Debug("Client settings",
		zap.String("locale", p.Locale),
		zap.Int8("view distance", p.ViewDistance),
		zap.Int32("main hand", p.MainHand))
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	// від'ємна дистанція означає "ще не сказав"
	c.Inputs.ViewDistance = max(p.ViewDistance, 0)
	c.Inputs.Unlock()
	return nil
}
