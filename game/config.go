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
	// time потрібен для роботи з часом
	"time"

	// rate використовуємо для обмеження навантаження
	"golang.org/x/time/rate"
)

type Config struct {
	// Максимальна кількість гравців на сервері
	MaxPlayers int `toml:"max-players"`

	// На яку відстань (в чанках) гравці бачать предмети і картини.
	// Клієнт може попросити менше, але не більше
	ViewDistance int32 `toml:"view-distance"`

	// IP адреса і порт, наприклад "0.0.0.0:25565"
	ListenAddress string `toml:"listen-address"`

	// MOTD - повідомлення в списку серверів
	MessageOfTheDay string `toml:"motd"`

	// Пакети від цього розміру стискаються, -1 вимикає стиснення
	NetworkCompressionThreshold int `toml:"network-compression-threshold"`

	// Gamemode: 0 - виживання, 1 - креатив, 2 - пригоди, 3 - спостерігач
	Gamemode int32 `toml:"gamemode"`

	// Де з'являються нові гравці
	SpawnPosition [3]float64 `toml:"spawn-position"`

	// Через скільки тіків зникають викинуті предмети, 0 - п'ять хвилин
	ItemDespawn int `toml:"item-despawn-ticks"`

	// Скільки пакетів може надіслати один клієнт. N = 0 вимикає обмеження
	PacketLimiter Limiter `toml:"packet-limiter"`

	// Куди слати паніки, порожній рядок вимикає Sentry
	SentryDSN string `toml:"sentry-dsn"`
}

type Limiter struct {
	// Як часто поповнюється ліміт, наприклад "50ms"
	Every duration `toml:"every"`

	// Скільки дій можна зробити підряд
	N int
}

// Limiter returns nil when the limiter is not configured.
func (l *Limiter) Limiter() *rate.Limiter {
	if l.N <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(l.Every.Duration), l.N)
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}
