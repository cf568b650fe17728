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
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/chat"
	"github.com/Tnze/go-mc/offline"
	"github.com/Tnze/go-mc/server"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	if err := content.Load(); err != nil {
		t.Fatal(err)
	}
	config := Config{
		MaxPlayers:                  10,
		ViewDistance:                2,
		NetworkCompressionThreshold: -1,
		SpawnPosition:               [3]float64{0, 64, 0},
	}
	info := server.NewPingInfo("BasaltCore", protocol.Version, chat.Text("hello"), nil)
	return NewGame(zap.NewNop(), config, server.NewPlayerList(config.MaxPlayers), info)
}

func newTestClient(t *testing.T, g *Game, name string) *client.Client {
	t.Helper()
	c := client.New(zap.NewNop(), nil, g.registry, nil)
	for _, next := range []protocol.Phase{protocol.Login, protocol.Play} {
		if err := c.SetPhase(next); err != nil {
			t.Fatal(err)
		}
	}
	p := world.NewPlayer(name, offline.NameToUUID(name), 0, g.overworld.SpawnPosition())
	c.SetPlayer(p)
	g.overworld.AddPlayer(c, p)
	return c
}

func stone(t *testing.T) *content.Material {
	t.Helper()
	m, ok := content.Materials.ByName("stone")
	if !ok {
		t.Fatal("no stone")
	}
	return m
}

func TestCommand_Give(t *testing.T) {
	g := newTestGame(t)
	c := newTestClient(t, g, "Steve")
	g.runCommand(c, []string{"give", "minecraft:stone", "70"})

	v := c.GetPlayer().PlayerView()
	if it := v.Item(inventory.HotbarStart); it == nil || it.Amount != 64 {
		t.Errorf("hotbar 0 = %v", it)
	}
	if it := v.Item(inventory.HotbarStart + 1); it == nil || it.Amount != 6 {
		t.Errorf("hotbar 1 = %v", it)
	}
	if err := cmdGive(g, c, []string{"bedrock_but_softer"}); err == nil {
		t.Error("unknown item given")
	}
	if err := cmdGive(g, c, []string{"stone", "0"}); err == nil {
		t.Error("zero amount given")
	}
}

func TestCommand_GiveHeld(t *testing.T) {
	g := newTestGame(t)
	c := newTestClient(t, g, "Steve")
	p := c.GetPlayer()
	if err := cmdGive(g, c, nil); err == nil {
		t.Error("empty hand filled up")
	}
	p.Inventory.Give(inventory.NewItemStack(stone(t), 3))
	if err := cmdGive(g, c, nil); err != nil {
		t.Fatal(err)
	}
	if it := p.PlayerView().Item(inventory.HotbarStart); it == nil || it.Amount != 64 {
		t.Errorf("held stack = %v", it)
	}
	if total := p.PlayerView().Total(); total != 64 {
		t.Errorf("inventory holds %d items", total)
	}
}

func TestPlayerList(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go g.keepAlive.Run(ctx)

	steve := newTestClient(t, g, "Steve")
	alex := newTestClient(t, g, "Alex")
	g.playerList.addPlayer(steve, steve.GetPlayer())
	g.playerList.addPlayer(alex, alex.GetPlayer())
	if n := g.pingList.Len(); n != 2 {
		t.Fatalf("%d players listed", n)
	}

	g.playerList.updateLatency(alex, 80*time.Millisecond)
	p := alex.GetPlayer()
	p.Inputs.Lock()
	latency := p.Inputs.Latency
	p.Inputs.Unlock()
	if latency != 80*time.Millisecond {
		t.Errorf("latency = %v", latency)
	}

	g.playerList.removePlayer(alex)
	var names []string
	g.playerList.forEach(func(c *client.Client) {
		names = append(names, c.GetPlayer().Name)
	})
	if len(names) != 1 || names[0] != "Steve" {
		t.Errorf("listed %v", names)
	}
}

func click(t *testing.T, g *Game, c *client.Client, slot int16, action int16) {
	t.Helper()
	v := c.GetPlayer().Window
	err := g.handleClickWindow(&packets.ClickWindow{
		WindowID:     v.WindowID,
		Slot:         slot,
		ActionNumber: action,
		Item:         packets.SlotOf(v.Item(int(slot))),
	}, c)
	if err != nil {
		t.Fatal(err)
	}
}

func TestSharedChest(t *testing.T) {
	g := newTestGame(t)
	alex := newTestClient(t, g, "Alex")
	steve := newTestClient(t, g, "Steve")
	alex.GetPlayer().Inventory.Give(inventory.NewItemStack(stone(t), 64))

	if err := cmdChest(g, alex, nil); err != nil {
		t.Fatal(err)
	}
	if err := cmdChest(g, steve, nil); err != nil {
		t.Fatal(err)
	}
	// opening it again replaces the window
	old := steve.GetPlayer().Window
	if err := cmdChest(g, steve, nil); err != nil {
		t.Fatal(err)
	}
	av, sv := alex.GetPlayer().Window, steve.GetPlayer().Window
	if sv == old || sv.WindowID == old.WindowID {
		t.Errorf("window %d not replaced", old.WindowID)
	}
	if !av.HasUpper() || av.WindowID == 0 || av.UpperSize() != 27 {
		t.Fatalf("alex window %d, upper %d", av.WindowID, av.UpperSize())
	}

	// hotbar 0 sits after the chest and the main inventory
	hotbar0 := int16(27 + inventory.HotbarStart - inventory.MainStart)
	click(t, g, alex, hotbar0, 1)
	click(t, g, alex, 0, 2)

	if it := sv.Item(0); it == nil || it.Amount != 64 {
		t.Errorf("steve sees chest slot 0 = %v", it)
	}
	if !av.Cursor().IsEmpty() {
		t.Errorf("alex cursor = %v", av.Cursor())
	}

	g.closeWindow(alex, alex.GetPlayer())
	if alex.GetPlayer().Window.HasUpper() {
		t.Error("window still open")
	}
	g.chestViewers.Lock()
	_, still := g.chestViewers.views[alex]
	g.chestViewers.Unlock()
	if still {
		t.Error("alex still watches the chest")
	}
}

func TestClick_Rejected(t *testing.T) {
	g := newTestGame(t)
	c := newTestClient(t, g, "Steve")
	p := c.GetPlayer()
	p.Inventory.Give(inventory.NewItemStack(stone(t), 10))

	// the client thinks the slot is empty, the server knows better
	err := g.handleClickWindow(&packets.ClickWindow{
		WindowID: 0,
		Slot:     inventory.HotbarStart,
		Item:     packets.EmptySlot,
	}, c)
	if err != nil {
		t.Fatal(err)
	}
	if it := p.Window.Item(inventory.HotbarStart); it == nil || it.Amount != 10 {
		t.Errorf("stale click changed the slot: %v", it)
	}
	if !p.Window.Cursor().IsEmpty() {
		t.Error("stale click moved items to the cursor")
	}

	// wrong window
	err = g.handleClickWindow(&packets.ClickWindow{
		WindowID: 5,
		Slot:     inventory.HotbarStart,
		Item:     packets.SlotOf(p.Window.Item(inventory.HotbarStart)),
	}, c)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Window.Cursor().IsEmpty() {
		t.Error("click in a closed window was applied")
	}
}

func TestCloseWindow_DropsCursor(t *testing.T) {
	g := newTestGame(t)
	c := newTestClient(t, g, "Steve")
	p := c.GetPlayer()
	p.Inventory.Give(inventory.NewItemStack(stone(t), 5))

	click(t, g, c, inventory.HotbarStart, 1)
	if it := p.Window.Cursor(); it == nil || it.Amount != 5 {
		t.Fatalf("cursor = %v", it)
	}
	if err := g.handleCloseWindow(&packets.ServerboundCloseWindow{}, c); err != nil {
		t.Fatal(err)
	}
	if !p.Window.Cursor().IsEmpty() {
		t.Error("cursor kept its stack")
	}
	items := g.overworld.Items()
	if len(items) != 1 || items[0].Stack.Amount != 5 {
		t.Errorf("world items = %v", items)
	}
}

func TestCommand_Painting(t *testing.T) {
	g := newTestGame(t)
	c := newTestClient(t, g, "Steve")
	if err := cmdPainting(g, c, []string{"Kebab"}); err != nil {
		t.Error(err)
	}
	if err := cmdPainting(g, c, []string{"MonaLisa"}); err == nil {
		t.Error("unknown painting spawned")
	}
	if err := cmdSound(g, c, []string{"block.chest.open"}); err != nil {
		t.Error(err)
	}
	if err := cmdSound(g, c, []string{"block.kazoo"}); err == nil {
		t.Error("unknown sound played")
	}
}

func TestLookDirection(t *testing.T) {
	cases := map[float32]uint8{
		0:    packets.FacingSouth,
		44:   packets.FacingSouth,
		90:   packets.FacingWest,
		180:  packets.FacingNorth,
		-90:  packets.FacingEast,
		270:  packets.FacingEast,
		-180: packets.FacingNorth,
	}
	for yaw, want := range cases {
		if got := lookDirection(world.Rotation{yaw, 0}); got != want {
			t.Errorf("yaw %v = %d, want %d", yaw, got, want)
		}
	}
}

func TestExistInvalidCharacter(t *testing.T) {
	for msg, want := range map[string]bool{
		"hello":         false,
		"привіт, чат":   false,
		"§cred":         true,
		"tab\there":     true,
		"del\x7f":       true,
		"<Steve> hi :)": false,
	} {
		if got := existInvalidCharacter(msg); got != want {
			t.Errorf("%q = %v", msg, got)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	g := newTestGame(t)
	g.pingList.ClientJoin(newTestClient(t, g, "Steve"), server.PlayerSample{Name: "Steve", ID: uuid.New()})

	data, err := g.statusJSON()
	if err != nil {
		t.Fatal(err)
	}
	var resp struct {
		Version struct {
			Name     string
			Protocol int
		}
		Players struct {
			Max, Online int
		}
	}
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Version.Protocol != 107 || resp.Version.Name != "1.9" {
		t.Errorf("version = %+v", resp.Version)
	}
	if resp.Players.Max != 10 || resp.Players.Online != 1 {
		t.Errorf("players = %+v", resp.Players)
	}
}

func TestConfig(t *testing.T) {
	const doc = `
max-players = 20
view-distance = 8
listen-address = "0.0.0.0:25565"
motd = "A Minecraft Server"
network-compression-threshold = 256
gamemode = 1
spawn-position = [0.5, 64.0, 0.5]

[packet-limiter]
every = "10ms"
n = 200
`
	var c Config
	meta, err := toml.Decode(doc, &c)
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.Undecoded()) != 0 {
		t.Errorf("undecoded keys %v", meta.Undecoded())
	}
	if c.Gamemode != 1 || c.SpawnPosition[1] != 64 {
		t.Errorf("config = %+v", c)
	}
	l := c.PacketLimiter.Limiter()
	if l == nil || l.Burst() != 200 {
		t.Fatalf("limiter = %v", l)
	}
	if (&Limiter{}).Limiter() != nil {
		t.Error("empty limiter must be off")
	}
}
