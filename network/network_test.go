package network

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hippo-arena/arena"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/status"
)

type fixedSource struct {
	snap arena.Snapshot
}

func (f *fixedSource) Snapshot() arena.Snapshot { return f.snap }

func testSnapshot() arena.Snapshot {
	return arena.Snapshot{
		MatchID:    "m-1",
		Phase:      "playing",
		Tick:       12,
		GameTimeMs: 200,
		Spheres:    []arena.SphereView{{ID: 3, X: 10, Y: 20, Radius: 15, Bonus: true}},
		Hippos:     []arena.HippoView{{ID: 0, Direction: "N", Personality: "player", Name: "You", Score: 4}},
	}
}

func newTestServer(t *testing.T) (*Server, *httptest.Server, *status.Registry) {
	t.Helper()
	reg := status.NewRegistry()
	s := NewServer(DefaultConfig(""), &fixedSource{snap: testSnapshot()}, reg)
	s.SetLogger(log.New(io.Discard, "", 0))
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(func() {
		s.hub.Close()
		ts.Close()
	})
	return s, ts, reg
}

func TestStatusEndpoint(t *testing.T) {
	_, ts, reg := newTestServer(t)
	reg.Ints.Get(status.KeyCaptures).Store(7)

	resp, err := http.Get(ts.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body[status.KeyCaptures] != float64(7) {
		t.Errorf("Expected 7 captures, got %v", body[status.KeyCaptures])
	}
	if _, ok := body[status.KeySpectators]; !ok {
		t.Error("Spectator count should be exported")
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/snapshot")
	if err != nil {
		t.Fatalf("GET /snapshot: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/msgpack" {
		t.Errorf("Expected msgpack content type, got %q", ct)
	}
	raw, _ := io.ReadAll(resp.Body)

	var snap arena.Snapshot
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Tick != 12 || len(snap.Spheres) != 1 || !snap.Spheres[0].Bonus {
		t.Errorf("Unexpected snapshot %+v", snap)
	}

	resp, err = http.Get(ts.URL + "/snapshot?format=json")
	if err != nil {
		t.Fatalf("GET /snapshot json: %v", err)
	}
	defer resp.Body.Close()
	var js arena.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&js); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if js.MatchID != "m-1" {
		t.Errorf("Expected match m-1, got %q", js.MatchID)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) *Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("Expected binary frame, got %d", kind)
	}
	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return msg
}

func TestSpectatorFeed(t *testing.T) {
	s, ts, reg := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	hello := readFrame(t, conn)
	if hello.Type != MsgHello {
		t.Fatalf("Expected hello first, got %s", hello.Type)
	}
	var h Hello
	if err := msgpack.Unmarshal(hello.Data, &h); err != nil {
		t.Fatalf("hello body: %v", err)
	}
	if _, err := uuid.Parse(h.PeerID); err != nil {
		t.Errorf("Peer ID should be a uuid, got %q", h.PeerID)
	}
	if s.Spectators() != 1 || reg.Ints.Get(status.KeySpectators).Load() != 1 {
		t.Fatalf("Expected one spectator, got %d", s.Spectators())
	}

	if err := s.PublishSnapshot(testSnapshot()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	msg := readFrame(t, conn)
	snap, err := DecodeSnapshot(msg)
	if err != nil {
		t.Fatalf("snapshot frame: %v", err)
	}
	if snap.Hippos[0].Score != 4 {
		t.Errorf("Expected score 4, got %d", snap.Hippos[0].Score)
	}
	if msg.Seq <= hello.Seq {
		t.Errorf("Sequence should increase: hello %d, snapshot %d", hello.Seq, msg.Seq)
	}

	err = s.PublishEvents([]event.GameEvent{{
		Type:    event.EventSphereEaten,
		Payload: &event.SphereEatenPayload{HippoID: 2, SphereID: 9, Points: 3, Bonus: true},
	}})
	if err != nil {
		t.Fatalf("publish events: %v", err)
	}
	msg = readFrame(t, conn)
	if msg.Type != MsgEvent {
		t.Fatalf("Expected event frame, got %s", msg.Type)
	}
	var notice struct {
		Type string `msgpack:"type"`
	}
	if err := msgpack.Unmarshal(msg.Data, &notice); err != nil {
		t.Fatalf("event body: %v", err)
	}
	if notice.Type != event.EventSphereEaten.String() {
		t.Errorf("Expected %s, got %s", event.EventSphereEaten, notice.Type)
	}

	// Inbound frames are ignored
	if err := conn.WriteMessage(websocket.TextMessage, []byte("restart")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if s.Spectators() != 1 {
		t.Error("Inbound data should not disconnect the spectator")
	}
}

func TestPeerCloseSendsCloseFrame(t *testing.T) {
	s, ts, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readFrame(t, conn)
	s.hub.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("Expected normal closure frame, got %v", err)
	}
}

func TestHubDropsSlowPeer(t *testing.T) {
	reg := status.NewRegistry()
	hub := NewHub(reg)

	p := &Peer{
		ID:      uuid.New(),
		sendCh:  make(chan []byte, 1),
		closeCh: make(chan struct{}),
	}
	hub.Add(p)

	if sent := hub.Broadcast([]byte{1}); sent != 1 {
		t.Fatalf("Expected delivery to 1 peer, got %d", sent)
	}
	if sent := hub.Broadcast([]byte{2}); sent != 0 {
		t.Fatalf("Full queue should refuse, got %d", sent)
	}
	if hub.Count() != 0 {
		t.Error("Slow peer should be removed")
	}
	if reg.Ints.Get(status.KeySpectateDrops).Load() != 1 {
		t.Error("Drop should be counted")
	}
	select {
	case <-p.Done():
	default:
		t.Error("Dropped peer should be closed")
	}
	if p.Send([]byte{3}) {
		t.Error("Closed peer should refuse frames")
	}
}

func TestServerStartStop(t *testing.T) {
	s := NewServer(DefaultConfig("127.0.0.1:0"), &fixedSource{}, status.NewRegistry())
	s.SetLogger(log.New(io.Discard, "", 0))

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Addr() == "" {
		t.Error("Bound address should be known after Start")
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}
}

func TestPublishWithoutSpectatorsIsNoop(t *testing.T) {
	s := NewServer(DefaultConfig(""), &fixedSource{}, status.NewRegistry())
	if err := s.PublishSnapshot(testSnapshot()); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if s.seq.Load() != 0 {
		t.Error("No frame should be encoded without spectators")
	}
}

func TestServiceLifecycle(t *testing.T) {
	svc := NewService(DefaultConfig("127.0.0.1:0"), &fixedSource{}, status.NewRegistry())
	svc.Server().SetLogger(log.New(io.Discard, "", 0))

	if svc.Name() != "spectate" {
		t.Errorf("Unexpected name %q", svc.Name())
	}
	if err := svc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}

	bad := NewService(DefaultConfig(""), &fixedSource{}, status.NewRegistry())
	if err := bad.Init(); err == nil {
		t.Error("Empty address should fail Init")
	}
}
