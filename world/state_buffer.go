package world

const NilTick int64 = -1

// StateBuffer is a ring of the most recent frames, oldest overwritten first.
type StateBuffer struct {
	frames []Frame
	index  int
}

func newRingBuffer(maxCapacity int) []Frame {
	frames := make([]Frame, maxCapacity)
	for i := range frames {
		frames[i].Tick = NilTick
	}
	return frames
}

func NewStateBuffer(maxCapacity int) *StateBuffer {
	if maxCapacity < 2 {
		maxCapacity = 2
	}
	return &StateBuffer{
		frames: newRingBuffer(maxCapacity),
	}
}

func (s *StateBuffer) Clear() {
	s.frames = newRingBuffer(cap(s.frames))
	s.index = 0
}

func (s *StateBuffer) Add(frame Frame) {
	index := (s.index + 1) % cap(s.frames)
	if s.frames[s.index].Tick == NilTick {
		index = s.index
	}
	s.index = index
	s.frames[index] = frame
}

func (s *StateBuffer) Current() *Frame {
	current := &s.frames[s.index]
	if current.Tick == NilTick {
		return nil
	}
	return current
}

// At returns the buffered frame for tick, or nil once it has been overwritten.
func (s *StateBuffer) At(tick int64) *Frame {
	if tick == NilTick {
		return nil
	}
	for i := range s.frames {
		if s.frames[i].Tick == tick {
			return &s.frames[i]
		}
	}
	return nil
}

// Len is the number of frames buffered, at most the capacity.
func (s *StateBuffer) Len() int {
	n := 0
	for i := range s.frames {
		if s.frames[i].Tick != NilTick {
			n++
		}
	}
	return n
}
