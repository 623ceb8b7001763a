package network

import (
	"time"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Config holds spectator feed settings
type Config struct {
	Addr string // listen address, e.g. "127.0.0.1:7070"

	SendBuffer   int           // frames queued per peer before it is dropped
	WriteTimeout time.Duration // per-frame write deadline
	PongWait     time.Duration // read deadline extended by each pong
	PingPeriod   time.Duration // must be shorter than PongWait
	ReadLimit    int64         // inbound frame cap; spectators only send control frames
}

// DefaultConfig returns production defaults for the given address
func DefaultConfig(addr string) *Config {
	return &Config{
		Addr:         addr,
		SendBuffer:   parameter.SpectateSendBuffer,
		WriteTimeout: parameter.SpectateWriteTimeout,
		PongWait:     parameter.SpectatePongWait,
		PingPeriod:   parameter.SpectatePingPeriod,
		ReadLimit:    parameter.SpectateReadLimit,
	}
}
