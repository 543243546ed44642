package world

import "testing"

func frameAt(tick int64) Frame {
	return Frame{Tick: tick}
}

func TestStateBufferEmpty(t *testing.T) {
	s := NewStateBuffer(4)
	if s.Current() != nil || s.At(0) != nil || s.At(NilTick) != nil {
		t.Fatal("empty buffer returned a frame")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestStateBufferAt(t *testing.T) {
	s := NewStateBuffer(4)
	for tick := int64(0); tick < 3; tick++ {
		s.Add(frameAt(tick))
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if got := s.Current(); got == nil || got.Tick != 2 {
		t.Fatalf("Current() = %+v, want tick 2", got)
	}
	for tick := int64(0); tick < 3; tick++ {
		if got := s.At(tick); got == nil || got.Tick != tick {
			t.Fatalf("At(%d) = %+v", tick, got)
		}
	}
	if s.At(3) != nil {
		t.Fatal("At(3) returned a frame that was never added")
	}
}

func TestStateBufferWrapsAround(t *testing.T) {
	s := NewStateBuffer(3)
	for tick := int64(0); tick < 5; tick++ {
		s.Add(frameAt(tick))
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want capacity 3", s.Len())
	}
	if got := s.Current(); got == nil || got.Tick != 4 {
		t.Fatalf("Current() = %+v, want tick 4", got)
	}
	for _, tick := range []int64{0, 1} {
		if s.At(tick) != nil {
			t.Fatalf("At(%d) survived being overwritten", tick)
		}
	}
	for _, tick := range []int64{2, 3, 4} {
		if got := s.At(tick); got == nil || got.Tick != tick {
			t.Fatalf("At(%d) = %+v", tick, got)
		}
	}
}

func TestStateBufferMinimumCapacity(t *testing.T) {
	s := NewStateBuffer(0)
	s.Add(frameAt(7))
	s.Add(frameAt(8))
	if s.At(7) == nil || s.Current().Tick != 8 {
		t.Fatal("a buffer of capacity 0 should still hold the last two frames")
	}
}

func TestStateBufferClear(t *testing.T) {
	s := NewStateBuffer(4)
	s.Add(frameAt(0))
	s.Add(frameAt(1))
	s.Clear()
	if s.Len() != 0 || s.Current() != nil || s.At(1) != nil {
		t.Fatal("Clear left frames behind")
	}
	s.Add(frameAt(0))
	if got := s.Current(); got == nil || got.Tick != 0 {
		t.Fatalf("Current() after Clear and Add = %+v", got)
	}
}
