// Package presence tracks the creator's live peer ID per room. Peer IDs
// are connection-scoped signaling state for the client-side mesh, so they
// live in process memory rather than the database.
package presence

import "sync"

type Registry struct {
	mu    sync.RWMutex
	peers map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		peers: make(map[string]string),
	}
}

func (r *Registry) SetCreatorPeer(roomId, peerId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[roomId] = peerId
}

func (r *Registry) CreatorPeer(roomId string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	peerId, ok := r.peers[roomId]
	return peerId, ok
}

func (r *Registry) Remove(roomId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, roomId)
}

// Rename moves a room's entry to a new key when its roomId changes.
func (r *Registry) Rename(oldRoomId, newRoomId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	peerId, ok := r.peers[oldRoomId]
	if !ok {
		return
	}
	delete(r.peers, oldRoomId)
	r.peers[newRoomId] = peerId
}
