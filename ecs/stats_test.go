package ecs

import (
	"testing"
	"time"
)

func TestManagerStats(t *testing.T) {
	m := NewManager()

	stats := m.Stats()
	if stats.Ticks != 0 {
		t.Errorf("expected 0 ticks, got %d", stats.Ticks)
	}
	if stats.MinDuration != 0 {
		t.Errorf("expected zero min duration before any tick, got %v", stats.MinDuration)
	}

	for range 4 {
		if err := m.Admit(NewEntity()); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Tick(); err != nil {
		t.Fatal(err)
	}
	m.live[0].Kill()
	if err := m.Tick(); err != nil {
		t.Fatal(err)
	}

	stats = m.Stats()
	if stats.Ticks != 2 {
		t.Errorf("expected 2 ticks, got %d", stats.Ticks)
	}
	if stats.Committed != 4 {
		t.Errorf("expected 4 committed, got %d", stats.Committed)
	}
	if stats.Reaped != 1 {
		t.Errorf("expected 1 reaped, got %d", stats.Reaped)
	}
	if stats.Live != 3 {
		t.Errorf("expected 3 live, got %d", stats.Live)
	}
	if stats.Pending != 0 {
		t.Errorf("expected 0 pending, got %d", stats.Pending)
	}
	if stats.MinDuration > stats.MaxDuration {
		t.Errorf("min %v exceeds max %v", stats.MinDuration, stats.MaxDuration)
	}
	if stats.AvgDuration != stats.TotalTime/2 {
		t.Errorf("expected avg %v, got %v", stats.TotalTime/2, stats.AvgDuration)
	}
}

func TestManagerStatsRecord(t *testing.T) {
	s := managerStatsInternal{minDuration: time.Duration(1<<63 - 1)}

	s.record(3 * time.Millisecond)
	s.record(1 * time.Millisecond)
	s.record(5 * time.Millisecond)

	if s.ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", s.ticks)
	}
	if s.minDuration != time.Millisecond {
		t.Errorf("expected min 1ms, got %v", s.minDuration)
	}
	if s.maxDuration != 5*time.Millisecond {
		t.Errorf("expected max 5ms, got %v", s.maxDuration)
	}
	if s.lastDuration != 5*time.Millisecond {
		t.Errorf("expected last 5ms, got %v", s.lastDuration)
	}
	if s.totalDuration != 9*time.Millisecond {
		t.Errorf("expected total 9ms, got %v", s.totalDuration)
	}
}
