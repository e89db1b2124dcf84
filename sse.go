package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	sseChannelBuffer = 64 // room for every cell of one gesture
	sseHeartbeat     = 30 * time.Second
)

// viewer is one open event stream on a diagram.
type viewer struct {
	ch        chan string
	diagramID string
}

// Broadcaster fans diagram changes out to the viewers of each diagram.
type Broadcaster struct {
	mu      sync.RWMutex
	viewers map[string]map[*viewer]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		viewers: make(map[string]map[*viewer]struct{}),
	}
}

// Register adds a viewer of a diagram.
func (b *Broadcaster) Register(diagramID string) *viewer {
	v := &viewer{
		ch:        make(chan string, sseChannelBuffer),
		diagramID: diagramID,
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	set := b.viewers[diagramID]
	if set == nil {
		set = make(map[*viewer]struct{})
		b.viewers[diagramID] = set
	}
	set[v] = struct{}{}
	return v
}

// Unregister removes a viewer and closes its channel. The diagram entry
// goes away with its last viewer.
func (b *Broadcaster) Unregister(v *viewer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	set := b.viewers[v.diagramID]
	if _, ok := set[v]; !ok {
		return
	}
	delete(set, v)
	close(v.ch)
	if len(set) == 0 {
		delete(b.viewers, v.diagramID)
	}
}

// Broadcast sends an encoded event to every viewer of a diagram. A viewer
// whose buffer is full misses the event.
func (b *Broadcaster) Broadcast(diagramID, data string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for v := range b.viewers[diagramID] {
		select {
		case v.ch <- data:
		default:
		}
	}
}

// Publish encodes evt as JSON and broadcasts it to the viewers of a diagram.
func (b *Broadcaster) Publish(diagramID string, evt any) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("sse: encode %T: %v", evt, err)
		return
	}
	b.Broadcast(diagramID, string(data))
}

// Viewers returns the number of open streams on a diagram.
func (b *Broadcaster) Viewers(diagramID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.viewers[diagramID])
}

// ServeSSE streams a live diagram: the current snapshot first, then every
// cell and pane change until the client goes away.
func (b *Broadcaster) ServeSSE(w http.ResponseWriter, r *http.Request, live *LiveDiagram) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Register before taking the snapshot so no change slips between them.
	v := b.Register(live.Diagram.ID)
	defer b.Unregister(v)

	snap, err := json.Marshal(live.State.Snapshot())
	if err != nil {
		log.Printf("sse: encode snapshot of %s: %v", live.Diagram.ID, err)
		http.Error(w, "encode snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "data: %s\n\n", snap)
	flusher.Flush()

	ticker := time.NewTicker(sseHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-v.ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
