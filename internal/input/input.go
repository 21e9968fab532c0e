// Package input turns a raw terminal byte stream into per-frame key signals.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
// Left, Right and Thrust are held signals; Fire is pressed-once.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
}

// Stream delivers input bytes via a channel and tracks held key state.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	return readAt(s, time.Now())
}

func readAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := parse(&s.state, buf, now)
	if s.closed {
		inp.Quit = true
	}
	return inp
}

// parse applies the collected bytes to the key state and builds the frame input.
func parse(state *keyState, buf []byte, now time.Time) Input {
	var inp Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			inp.Quit = true
		case 'a', 'A', 'j', 'J':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case 'w', 'W', 'i', 'I':
			state.thrust = now
		case ' ':
			inp.Fire = true
		}
	}

	inp.Left = held(state.left, now)
	inp.Right = held(state.right, now)
	inp.Thrust = held(state.thrust, now)
	return inp
}

func held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}
