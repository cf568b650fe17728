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
	"strings"

	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/protocol/packets"
	"github.com/Tnze/go-mc/chat"
)

type globalChat struct {
	log  *zap.Logger
	game *Game
}

func (g *globalChat) broadcastSystemChat(msg chat.Message) {
	g.log.Info(msg.String())
	g.game.forEach(func(c *client.Client) {
		c.SendSystemChat(msg)
	})
}

func (g *globalChat) Handle(p *packets.ServerboundChatMessage, c *client.Client) error {
	player := c.GetPlayer()
	logger := g.log.With(zap.String("sender", player.Name))

	// § - символ форматування, < пробілу - керуючі символи, 0x7F - видалення
	if existInvalidCharacter(p.Message) {
		c.SendDisconnect(chat.TranslateMsg("multiplayer.disconnect.illegal_characters"))
		return nil
	}
	if !player.CountChat() {
		logger.Info("Kick for chat spam")
		c.SendDisconnect(chat.TranslateMsg("disconnect.spam"))
		return nil
	}

	msg := strings.TrimSpace(p.Message)
	if msg == "" {
		return nil
	}
	if strings.HasPrefix(msg, "/") {
		logger.Info("Command", zap.String("command", msg))
		g.game.runCommand(c, strings.Fields(msg[1:]))
		return nil
	}

	decorated := chat.TranslateMsg("chat.type.text", chat.Text(player.Name), chat.Text(msg))
	logger.Info(decorated.String())
	g.game.forEach(func(c *client.Client) {
		c.SendChat(decorated)
	})
	return nil
}

func existInvalidCharacter(msg string) bool {
	for _, c := range msg {
		if c == '§' || c < ' ' || c == '\x7F' {
			return true
		}
	}
	return false
}
