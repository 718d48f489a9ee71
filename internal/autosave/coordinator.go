// Package autosave debounces in-progress edits and pushes them to the
// persistence layer without blocking editing. All writes for one invitation
// go through a single writer here, so a debounced autosave can never race
// an explicit "save now" for the same record.
package autosave

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
)

// DefaultDelay is the debounce window. Every queued edit restarts it; only
// the state present when it elapses uninterrupted is persisted.
const DefaultDelay = 2 * time.Second

// savedFor is how long the "saved" indicator lingers before decaying to
// idle.
const savedFor = 2 * time.Second

type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSaved  Status = "saved"
)

// WriteFunc persists the final state of a debounced burst. Errors are
// logged and swallowed; autosave never interrupts editing and never
// retries on its own.
type WriteFunc func(code string, data models.InvitationData) error

type entry struct {
	// writeMu serializes persistence for one invitation, including
	// explicit saves routed through Do.
	writeMu sync.Mutex

	// gen invalidates a debounced write that was dequeued but lost to a
	// Cancel before it reached writeMu.
	gen uint64

	timer   *time.Timer
	pending *models.InvitationData
	writing bool
	savedAt time.Time
}

type Coordinator struct {
	mu      sync.Mutex
	delay   time.Duration
	write   WriteFunc
	logger  *zap.SugaredLogger
	entries map[string]*entry
	closed  bool
}

func NewCoordinator(delay time.Duration, write WriteFunc, logger *zap.SugaredLogger) *Coordinator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Coordinator{
		delay:   delay,
		write:   write,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Queue records a new edited state and restarts the debounce window. A
// burst of edits collapses to a single write of the last state queued.
func (c *Coordinator) Queue(code string, data models.InvitationData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	e := c.entry(code)
	e.pending = &data
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(c.delay, func() { c.fire(code) })
}

// Cancel drops any pending debounced write for the invitation. Used when
// the record is deleted, or before an explicit save supersedes the pending
// state.
func (c *Coordinator) Cancel(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[code]
	if !ok {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.pending = nil
	e.gen++
}

// Do runs an explicit save under the invitation's write lock, after
// cancelling any pending debounced write it would supersede.
func (c *Coordinator) Do(code string, fn func() error) error {
	c.Cancel(code)

	c.mu.Lock()
	e := c.entry(code)
	c.mu.Unlock()

	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	return fn()
}

// Status reports the tri-state indicator for one invitation.
func (c *Coordinator) Status(code string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[code]
	if !ok {
		return StatusIdle
	}
	if e.pending != nil || e.writing {
		return StatusSaving
	}
	if time.Since(e.savedAt) < savedFor {
		return StatusSaved
	}
	return StatusIdle
}

// Close flushes every pending state synchronously. Queue becomes a no-op
// afterwards.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	codes := make([]string, 0, len(c.entries))
	for code, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
		if e.pending != nil {
			codes = append(codes, code)
		}
	}
	c.mu.Unlock()

	for _, code := range codes {
		c.fire(code)
	}
}

func (c *Coordinator) entry(code string) *entry {
	e, ok := c.entries[code]
	if !ok {
		e = &entry{}
		c.entries[code] = e
	}
	return e
}

func (c *Coordinator) fire(code string) {
	c.mu.Lock()
	e, ok := c.entries[code]
	if !ok || e.pending == nil {
		c.mu.Unlock()
		return
	}
	data := *e.pending
	gen := e.gen
	e.pending = nil
	e.timer = nil
	e.writing = true
	c.mu.Unlock()

	e.writeMu.Lock()
	c.mu.Lock()
	stale := e.gen != gen
	c.mu.Unlock()
	var err error
	if !stale {
		err = c.write(code, data)
	}
	e.writeMu.Unlock()

	c.mu.Lock()
	e.writing = false
	switch {
	case stale:
		// Superseded by an explicit save between dequeue and writeMu.
	case err != nil:
		c.logger.Warnw("autosave failed", "code", code, "err", err)
	default:
		e.savedAt = time.Now()
	}
	c.mu.Unlock()
}
