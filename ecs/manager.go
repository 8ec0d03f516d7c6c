package ecs

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"
)

// Manager owns entities and drives them through ticks. Admitted entities
// wait in a pending queue until the next commit; each tick updates the live
// entities, reaps the dead ones and commits the pending queue.
//
// A Manager is not safe for concurrent use. Component Update code must not
// call Tick, CommitPending or Reap on the manager that is ticking it.
type Manager struct {
	live    []*Entity
	pending []*Entity
	running bool
	ticking bool

	log   *zap.Logger
	stats managerStatsInternal
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a running manager with no entities.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		live:    make([]*Entity, 0),
		running: true,
		log:     zap.NewNop(),
		stats: managerStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Admit queues e for the next commit. e is not updated until then.
func (m *Manager) Admit(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if e.admitted {
		return ErrAlreadyAdmitted
	}
	e.admitted = true
	m.pending = append(m.pending, e)
	return nil
}

// CommitPending moves every pending entity to the end of the live set in
// admission order.
func (m *Manager) CommitPending() error {
	if m.ticking {
		return ErrReentrantTick
	}
	m.commit()
	return nil
}

func (m *Manager) commit() {
	if len(m.pending) == 0 {
		return
	}

	m.live = append(m.live, m.pending...)
	m.stats.committed += int64(len(m.pending))
	m.log.Debug("committed entities", zap.Int("count", len(m.pending)), zap.Int("live", len(m.live)))

	clear(m.pending)
	m.pending = m.pending[:0]
}

// Reap removes dead entities from the live set and destroys them.
// Survivors may be reordered: each dead entity is swapped with the tail and
// the dead tail is cut off in one pass.
func (m *Manager) Reap() error {
	if m.ticking {
		return ErrReentrantTick
	}
	m.reap()
	return nil
}

func (m *Manager) reap() {
	n := len(m.live)
	for i := 0; i < n; {
		if m.live[i].alive {
			i++
			continue
		}
		n--
		m.live[i], m.live[n] = m.live[n], m.live[i]
	}

	for i := n; i < len(m.live); i++ {
		e := m.live[i]
		m.log.Debug("reaping entity", zap.Uint64("entity", e.id), zap.Int("components", e.Len()))
		e.Destroy()
		e.admitted = false
		m.live[i] = nil
	}

	m.stats.reaped += int64(len(m.live) - n)
	m.live = m.live[:n]
}

// Tick updates every live entity, reaps the dead and commits the pending
// queue. It does nothing while the manager is not running.
func (m *Manager) Tick() error {
	if m.ticking {
		return ErrReentrantTick
	}
	if !m.running {
		return nil
	}

	m.ticking = true
	defer func() { m.ticking = false }()

	start := time.Now()
	for _, e := range m.live {
		if e.alive {
			e.Update()
		}
	}
	m.reap()
	m.commit()
	m.stats.record(time.Since(start))

	return nil
}

// Purge kills every live entity, destroys and drops the pending queue and
// stops the manager. Killed entities stay in the live set; no further reap happens
// unless the manager is restarted.
func (m *Manager) Purge() {
	m.log.Info("purging entities", zap.Int("live", len(m.live)), zap.Int("pending", len(m.pending)))

	for _, e := range m.live {
		e.Kill()
	}
	for i, e := range m.pending {
		e.Destroy()
		e.admitted = false
		m.pending[i] = nil
	}
	m.pending = m.pending[:0]
	m.running = false
}

// SetRunning enables or disables ticking.
func (m *Manager) SetRunning(running bool) {
	m.running = running
}

// Running reports whether Tick has any effect.
func (m *Manager) Running() bool {
	return m.running
}

// Entities iterates over the live entities in storage order.
func (m *Manager) Entities() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range m.live {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of live entities.
func (m *Manager) Len() int {
	return len(m.live)
}

// PendingLen returns the number of entities awaiting commit.
func (m *Manager) PendingLen() int {
	return len(m.pending)
}

// Run ticks the manager at the given interval until the context is
// cancelled, the manager stops running, or a tick fails.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("run every %s: %w", interval, ErrInvalidInterval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !m.running {
				return nil
			}
			if err := m.Tick(); err != nil {
				return err
			}
		}
	}
}
