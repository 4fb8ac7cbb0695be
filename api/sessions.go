/*
sessions.go - In-memory session registry

PURPOSE:
  Maps uuid session ids to live engines. Each session owns its scheduler
  tasks, so removal must go through Close to tear those down.

CONCURRENCY:
  The registry mutex only guards the map. Engines serialize their own
  commands, so handlers operate on an engine outside the registry lock.
*/
package api

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/warp/bakery-engine/bakery"
)

// EngineFactory builds a fresh engine per session. The server wires the
// real scheduler here; tests wire a virtual one.
type EngineFactory func() *bakery.Engine

// Registry tracks live sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*bakery.Engine
	factory  EngineFactory
}

func NewRegistry(factory EngineFactory) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*bakery.Engine),
		factory:  factory,
	}
}

// Create starts a new session and returns its id.
func (r *Registry) Create() (uuid.UUID, *bakery.Engine) {
	e := r.factory()
	id := uuid.New()

	r.mu.Lock()
	r.sessions[id] = e
	r.mu.Unlock()

	sessionsCreated.Inc()
	sessionsActive.Inc()
	log.Printf("[Sessions] created %s", id)
	return id, e
}

// Get returns the engine for the given id, or nil.
func (r *Registry) Get(id uuid.UUID) *bakery.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

// Remove closes the session's engine and drops it. Reports whether the
// id was known.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return false
	}
	e.Close()
	sessionsActive.Dec()
	log.Printf("[Sessions] closed %s", id)
	return true
}

// IDs returns the live session ids in unspecified order.
func (r *Registry) IDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		out = append(out, id)
	}
	return out
}

// CloseAll tears down every session. Used at server shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	engines := make([]*bakery.Engine, 0, len(r.sessions))
	for id, e := range r.sessions {
		engines = append(engines, e)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, e := range engines {
		e.Close()
		sessionsActive.Dec()
	}
}
