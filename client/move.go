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


// Йоу, чат! Тут рух гравця: де він стоїть і куди дивиться. Клієнт шле
// позицію ледь не кожен тік, ми лише записуємо її в Inputs, а світ
// перевіряє і застосовує її на своєму тіку.

package client

import (
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
)

func clientPlayerPosition(p *packets.PlayerPosition, c *Client) error {
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	c.Inputs.Position = world.Position{p.X, p.FeetY, p.Z}
	c.Inputs.Unlock()
	return nil
}

func clientPlayerPositionAndLook(p *packets.PlayerPositionAndLook, c *Client) error {
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	c.Inputs.Position = world.Position{p.X, p.FeetY, p.Z}
	c.Inputs.Rotation = world.Rotation{p.Yaw, p.Pitch}
	c.Inputs.Unlock()
	return nil
}

func clientPlayerLook(p *packets.PlayerLook, c *Client) error {
	if c.Inputs == nil {
		return nil
	}
	c.Inputs.Lock()
	c.Inputs.Rotation = world.Rotation{p.Yaw, p.Pitch}
	c.Inputs.Unlock()
	return nil
}
