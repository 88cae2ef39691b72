package clock

import (
	"testing"
	"time"
)

func TestManualFiresInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(3*time.Second, func() { got = append(got, "c") })
	m.AfterFunc(1*time.Second, func() { got = append(got, "a") })
	m.AfterFunc(2*time.Second, func() { got = append(got, "b1") })
	m.AfterFunc(2*time.Second, func() { got = append(got, "b2") })

	m.Advance(2 * time.Second)
	if len(got) != 3 || got[0] != "a" || got[1] != "b1" || got[2] != "b2" {
		t.Fatalf("after 2s fired %v, expected [a b1 b2]", got)
	}
	if m.Now() != 2*time.Second {
		t.Errorf("Now() = %v, expected 2s", m.Now())
	}

	m.Advance(time.Second)
	if len(got) != 4 || got[3] != "c" {
		t.Errorf("after 3s fired %v, expected c last", got)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, expected empty queue", m.Len())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.AfterFunc(time.Second, func() { fired = true })

	if !h.Pending() {
		t.Error("new task should be pending")
	}
	if !h.Cancel() {
		t.Error("first Cancel should report it stopped the task")
	}
	if h.Cancel() {
		t.Error("second Cancel should be a no-op")
	}

	m.Advance(5 * time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
	if h.Pending() {
		t.Error("cancelled task still pending")
	}
}

func TestManualCancelAfterFire(t *testing.T) {
	m := NewManual()
	h := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)

	if h.Pending() {
		t.Error("fired task still pending")
	}
	if h.Cancel() {
		t.Error("Cancel after fire should return false")
	}
}

func TestManualRearmWithinWindow(t *testing.T) {
	m := NewManual()
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(time.Second, tick)
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(3500 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("ticks = %d, expected 3 after 3.5s", ticks)
	}

	m.Advance(500 * time.Millisecond)
	if ticks != 4 {
		t.Errorf("ticks = %d, expected 4 after 4s", ticks)
	}
}

func TestManualNowDuringCallback(t *testing.T) {
	m := NewManual()
	var at time.Duration
	m.AfterFunc(1500*time.Millisecond, func() { at = m.Now() })

	m.Advance(10 * time.Second)
	if at != 1500*time.Millisecond {
		t.Errorf("callback saw Now() = %v, expected 1.5s", at)
	}
}

func TestManualCallbackCancelsLaterTask(t *testing.T) {
	m := NewManual()
	laterFired := false
	later := m.AfterFunc(2*time.Second, func() { laterFired = true })
	m.AfterFunc(time.Second, func() { later.Cancel() })

	m.Advance(3 * time.Second)
	if laterFired {
		t.Error("task cancelled by an earlier callback still fired")
	}
}

func TestManualNegativeDelay(t *testing.T) {
	m := NewManual()
	fired := false
	m.AfterFunc(-time.Second, func() { fired = true })

	m.Advance(0)
	if !fired {
		t.Error("negative delay should fire on the next Advance")
	}
}
