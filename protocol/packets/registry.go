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

package packets

import "BasaltCore/protocol"

var factories = []protocol.Factory{
	func() protocol.Packet { return new(Handshake) },

	func() protocol.Packet { return new(StatusRequest) },
	func() protocol.Packet { return new(StatusResponse) },
	func() protocol.Packet { return new(StatusPing) },
	func() protocol.Packet { return new(StatusPong) },

	func() protocol.Packet { return new(LoginStart) },
	func() protocol.Packet { return new(LoginDisconnect) },
	func() protocol.Packet { return new(LoginSuccess) },
	func() protocol.Packet { return new(SetCompression) },

	func() protocol.Packet { return new(SpawnObject) },
	func() protocol.Packet { return new(SpawnPainting) },
	func() protocol.Packet { return new(ClientboundChatMessage) },
	func() protocol.Packet { return new(Transaction) },
	func() protocol.Packet { return new(ClientboundCloseWindow) },
	func() protocol.Packet { return new(OpenWindow) },
	func() protocol.Packet { return new(WindowItems) },
	func() protocol.Packet { return new(SetSlot) },
	func() protocol.Packet { return new(Disconnect) },
	func() protocol.Packet { return new(ClientboundKeepAlive) },
	func() protocol.Packet { return new(JoinGame) },
	func() protocol.Packet { return new(PlayerListItem) },
	func() protocol.Packet { return new(PlayerPositionLook) },
	func() protocol.Packet { return new(DestroyEntities) },
	func() protocol.Packet { return new(EntityMetadata) },
	func() protocol.Packet { return new(SoundEffect) },

	func() protocol.Packet { return new(TeleportConfirm) },
	func() protocol.Packet { return new(ServerboundChatMessage) },
	func() protocol.Packet { return new(ConfirmTransaction) },
	func() protocol.Packet { return new(ClientSettings) },
	func() protocol.Packet { return new(ClickWindow) },
	func() protocol.Packet { return new(ServerboundCloseWindow) },
	func() protocol.Packet { return new(ServerboundKeepAlive) },
	func() protocol.Packet { return new(PlayerPosition) },
	func() protocol.Packet { return new(PlayerPositionAndLook) },
	func() protocol.Packet { return new(PlayerLook) },
	func() protocol.Packet { return new(SteerBoat) },
	func() protocol.Packet { return new(HeldItemChange) },
}

// NewRegistry returns a registry holding every packet the server speaks.
// It panics if two packet types claim the same id.
func NewRegistry() *protocol.Registry {
	r := protocol.NewRegistry()
	for _, f := range factories {
		r.MustRegister(f().Descriptor(), f)
	}
	return r
}
