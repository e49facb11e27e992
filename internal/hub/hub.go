// Package hub fans change signals out to live connections grouped by
// project. Membership and delivery are transient: nothing is persisted and
// a connection starts with a clean slate every time it registers.
package hub

import (
	"fmt"
	"log/slog"
	"sync"

	"taskhub/internal/domain"
)

// conn is one registered connection. Signals are handed over through a
// buffered channel so a slow reader never blocks a publisher.
type conn struct {
	id      string
	project string // empty until the connection joins a group
	ch      chan domain.Signal
}

// Hub routes signals to the connections subscribed to each project group.
// All methods are safe for concurrent use.
type Hub struct {
	log    *slog.Logger
	buffer int

	mu     sync.RWMutex
	conns  map[string]*conn
	groups map[string]map[string]*conn
}

// New creates a hub whose connections buffer up to sendBuffer signals each.
func New(logger *slog.Logger, sendBuffer int) *Hub {
	if sendBuffer < 1 {
		sendBuffer = 1
	}
	return &Hub{
		log:    logger.With("component", "hub"),
		buffer: sendBuffer,
		conns:  make(map[string]*conn),
		groups: make(map[string]map[string]*conn),
	}
}

// Register adds a connection and returns its signal channel. The channel is
// closed by Unregister; the caller must stop reading after that.
func (h *Hub) Register(connID string) (<-chan domain.Signal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.conns[connID]; exists {
		return nil, fmt.Errorf("connection %s: %w", connID, domain.ErrAlreadyExists)
	}

	c := &conn{id: connID, ch: make(chan domain.Signal, h.buffer)}
	h.conns[connID] = c

	h.log.Debug("connection registered", "conn_id", connID)
	return c.ch, nil
}

// Unregister removes a connection, leaving its group if it was in one, and
// closes its channel. Unknown ids are ignored so teardown can be blind.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[connID]
	if !ok {
		return
	}
	if c.project != "" {
		h.leaveLocked(c)
	}
	delete(h.conns, connID)
	close(c.ch)

	h.log.Debug("connection unregistered", "conn_id", connID)
}

// Join subscribes a connection to a project group. A connection sits in at
// most one group: joining the same group again is a no-op, joining a
// different one without leaving first returns domain.ErrConflict.
func (h *Hub) Join(connID, projectID string) error {
	if projectID == "" {
		return domain.NewValidationError("projectId", "required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[connID]
	if !ok {
		return fmt.Errorf("connection %s: %w", connID, domain.ErrNotFound)
	}
	if c.project == projectID {
		return nil
	}
	if c.project != "" {
		return fmt.Errorf("connection %s already in group %s: %w", connID, c.project, domain.ErrConflict)
	}

	group, ok := h.groups[projectID]
	if !ok {
		group = make(map[string]*conn)
		h.groups[projectID] = group
	}
	group[connID] = c
	c.project = projectID

	h.log.Debug("connection joined group", "conn_id", connID, "project_id", projectID)
	return nil
}

// Leave unsubscribes a connection from its group. Leaving while not in a
// group is a no-op.
func (h *Hub) Leave(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[connID]
	if !ok || c.project == "" {
		return
	}
	h.leaveLocked(c)
}

// leaveLocked must be called with h.mu held for writing.
func (h *Hub) leaveLocked(c *conn) {
	group := h.groups[c.project]
	delete(group, c.id)
	if len(group) == 0 {
		delete(h.groups, c.project)
	}
	h.log.Debug("connection left group", "conn_id", c.id, "project_id", c.project)
	c.project = ""
}

// Publish delivers a signal to every connection in the project's group.
// Delivery is best effort: a connection whose buffer is full loses this
// signal and the hub moves on. Publishing to an empty group delivers to
// nobody and reports nothing.
func (h *Hub) Publish(projectID string, sig domain.Signal) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.groups[projectID] {
		select {
		case c.ch <- sig:
		default:
			h.log.Warn("signal dropped, connection buffer full",
				"conn_id", c.id, "project_id", projectID, "signal_id", sig.ID)
		}
	}
}

// GroupSize reports how many connections are subscribed to a project.
func (h *Hub) GroupSize(projectID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[projectID])
}
