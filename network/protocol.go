package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hippo-arena/arena"
	"github.com/lixenwraith/hippo-arena/event"
)

// MessageType identifies spectator frame content
type MessageType uint8

const (
	MsgHello    MessageType = iota + 1 // Peer ID assigned on connect
	MsgSnapshot                        // arena.Snapshot after a tick
	MsgEvent                           // Arena notification
)

func (t MessageType) String() string {
	switch t {
	case MsgHello:
		return "hello"
	case MsgSnapshot:
		return "snapshot"
	case MsgEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Message is the msgpack envelope of every binary frame
type Message struct {
	Type MessageType        `msgpack:"t"`
	Seq  uint64             `msgpack:"s"`
	Data msgpack.RawMessage `msgpack:"d"`
}

// Hello greets a new spectator
type Hello struct {
	PeerID string `msgpack:"peer_id"`
}

// EventNotice is the spectator form of an arena event
type EventNotice struct {
	Type    string `msgpack:"type"`
	Payload any    `msgpack:"payload,omitempty"`
}

// Encode wraps v in an envelope
func Encode(t MessageType, seq uint64, v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", t, err)
	}
	frame, err := msgpack.Marshal(&Message{Type: t, Seq: seq, Data: data})
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", t, err)
	}
	return frame, nil
}

// Decode unwraps a frame; the body stays raw for the caller to unmarshal
func Decode(frame []byte) (*Message, error) {
	var msg Message
	if err := msgpack.Unmarshal(frame, &msg); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &msg, nil
}

// DecodeSnapshot unmarshals a MsgSnapshot body
func DecodeSnapshot(msg *Message) (arena.Snapshot, error) {
	var snap arena.Snapshot
	if msg.Type != MsgSnapshot {
		return snap, fmt.Errorf("expected %s, got %s", MsgSnapshot, msg.Type)
	}
	err := msgpack.Unmarshal(msg.Data, &snap)
	return snap, err
}

func noticeOf(ev event.GameEvent) EventNotice {
	return EventNotice{Type: ev.Type.String(), Payload: ev.Payload}
}
