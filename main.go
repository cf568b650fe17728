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

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	// toml - крутий формат для конфігів, як JSON але читабельніший
	"github.com/BurntSushi/toml"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"BasaltCore/content"
	"BasaltCore/game"
	"BasaltCore/protocol"
	"github.com/Tnze/go-mc/chat"
	"github.com/Tnze/go-mc/net"
	"github.com/Tnze/go-mc/server"
)

var (
	isDebug    = flag.Bool("debug", false, "Enable debug log output")
	configPath = flag.String("config", "config.toml", "Path of the config file")
)

func main() {
	flag.Parse()

	// В дебаг режимі логи детальніші, в продакшені швидші
	var logger *zap.Logger
	if *isDebug {
		logger = unwrap(zap.NewDevelopment())
	} else {
		logger = unwrap(zap.NewProduction())
	}
	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			panic(err)
		}
	}(logger)

	logger.Info("Server start")
	printBuildInfo(logger)
	defer logger.Info("Server exit")

	config, err := readConfig(*configPath)
	if err != nil {
		logger.Error("Read config fail", zap.Error(err))
		return
	}

	// Предмети, звуки і картини вшиті в бінарник
	if err := content.Load(); err != nil {
		logger.Error("Load game content fail", zap.Error(err))
		return
	}

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: config.SentryDSN}); err != nil {
			logger.Error("Init sentry fail", zap.Error(err))
			return
		}
		defer sentry.Flush(time.Second * 5)
	}

	playerList := server.NewPlayerList(config.MaxPlayers)
	serverInfo := server.NewPingInfo(
		"BasaltCore "+protocol.VersionName,
		protocol.Version,
		chat.Text(config.MessageOfTheDay),
		nil,
	)

	logger.Info("Start listening", zap.String("address", config.ListenAddress))
	listener, err := net.ListenMC(config.ListenAddress)
	if err != nil {
		logger.Error("Server listening error", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.NewGame(logger, config, playerList, serverInfo)
	if err := g.Serve(ctx, listener); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.Any("settings", settings))
}

func readConfig(path string) (game.Config, error) {
	var c game.Config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return game.Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err errUnknownConfig
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return game.Config{}, err
	}

	return c, nil
}

type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
