package parameter

import "time"

// Loop timing
const (
	// FrameRate is the default real-time tick rate
	FrameRate = 60

	// MaxFrameDelta caps a single tick delta after stalls or a suspended terminal
	// Kept under the eating window of a speed-buffed strike so a stall tick cannot skip it
	MaxFrameDelta = 40 * time.Millisecond

	// HeadlessDelta is the fixed step used by the headless simulator
	HeadlessDelta = 16 * time.Millisecond
)

// Event queue sizing, power of two for mask indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Spectator feed
const (
	SpectateSendBuffer   = 16
	SpectateWriteTimeout = 10 * time.Second
	SpectatePongWait     = 60 * time.Second
	SpectatePingPeriod   = 25 * time.Second
	SpectateReadLimit    = 1 << 10
	SpectateCloseGrace   = time.Second
)
