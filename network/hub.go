package network

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/hippo-arena/status"
)

// Hub tracks connected spectators and fans frames out to them
// A peer whose queue is full is dropped rather than stalling the broadcaster
type Hub struct {
	mu    sync.RWMutex
	peers map[uuid.UUID]*Peer

	statPeers *atomic.Int64
	statDrops *atomic.Int64
}

func NewHub(reg *status.Registry) *Hub {
	return &Hub{
		peers:     make(map[uuid.UUID]*Peer),
		statPeers: reg.Ints.Get(status.KeySpectators),
		statDrops: reg.Ints.Get(status.KeySpectateDrops),
	}
}

// Add registers a peer and removes it again once it closes
func (h *Hub) Add(p *Peer) {
	h.mu.Lock()
	h.peers[p.ID] = p
	h.statPeers.Store(int64(len(h.peers)))
	h.mu.Unlock()

	go func() {
		<-p.Done()
		h.Remove(p.ID)
	}()
}

func (h *Hub) Remove(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p, ok := h.peers[id]; ok {
		delete(h.peers, id)
		p.Close()
	}
	h.statPeers.Store(int64(len(h.peers)))
}

// Broadcast queues frame on every peer, returning the number that accepted it
func (h *Hub) Broadcast(frame []byte) int {
	var slow []*Peer
	sent := 0

	h.mu.RLock()
	for _, p := range h.peers {
		if p.Send(frame) {
			sent++
		} else {
			slow = append(slow, p)
		}
	}
	h.mu.RUnlock()

	for _, p := range slow {
		h.statDrops.Add(1)
		h.Remove(p.ID)
	}
	return sent
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Close disconnects every peer
func (h *Hub) Close() {
	h.mu.Lock()
	peers := h.peers
	h.peers = make(map[uuid.UUID]*Peer)
	h.statPeers.Store(0)
	h.mu.Unlock()

	for _, p := range peers {
		p.Close()
	}
}
