package ecs

import "time"

// ManagerStats provides statistics about tick execution.
type ManagerStats struct {
	Ticks        int64
	Live         int
	Pending      int
	Committed    int64
	Reaped       int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
	TotalTime    time.Duration
}

type managerStatsInternal struct {
	ticks         int64
	committed     int64
	reaped        int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (s *managerStatsInternal) record(d time.Duration) {
	s.ticks++
	s.lastDuration = d
	s.totalDuration += d

	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// Stats returns a snapshot of the manager's tick statistics.
func (m *Manager) Stats() *ManagerStats {
	internal := m.stats

	stats := &ManagerStats{
		Ticks:        internal.ticks,
		Live:         len(m.live),
		Pending:      len(m.pending),
		Committed:    internal.committed,
		Reaped:       internal.reaped,
		MaxDuration:  internal.maxDuration,
		LastDuration: internal.lastDuration,
		TotalTime:    internal.totalDuration,
	}
	if internal.ticks > 0 {
		stats.MinDuration = internal.minDuration
		stats.AvgDuration = internal.totalDuration / time.Duration(internal.ticks)
	}
	return stats
}
