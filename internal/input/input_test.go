package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	now := time.Unix(100, 0)
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"empty", "", Input{}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"fire", " ", Input{Fire: true}},
		{"up arrow", "\x1b[A", Input{Thrust: true}},
		{"left arrow", "\x1b[D", Input{Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"wasd", "wad", Input{Thrust: true, Left: true, Right: true}},
		{"ijl", "ijl", Input{Thrust: true, Left: true, Right: true}},
		{"fire while turning", "\x1b[C \x1b[C", Input{Right: true, Fire: true}},
		{"unknown keys", "xyz\x1b[B", Input{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var state keyState
			if got := parse(&state, []byte(tc.in), now); got != tc.want {
				t.Errorf("parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	var state keyState
	now := time.Unix(100, 0)

	parse(&state, []byte("d"), now)

	if got := parse(&state, nil, now.Add(keyHoldDuration/2)); !got.Right {
		t.Error("right should still be held half way through the hold window")
	}
	if got := parse(&state, nil, now.Add(keyHoldDuration)); got.Right {
		t.Error("right should be released once the hold window has passed")
	}
}

func TestFireIsNotHeld(t *testing.T) {
	var state keyState
	now := time.Unix(100, 0)

	if got := parse(&state, []byte(" "), now); !got.Fire {
		t.Fatal("expected fire")
	}
	if got := parse(&state, nil, now.Add(time.Millisecond)); got.Fire {
		t.Error("fire should only be reported on the frame it was pressed")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.Now().Add(2 * time.Second)
	var got Input
	sawRight := false
	for time.Now().Before(deadline) {
		got = readAt(s, time.Now())
		sawRight = sawRight || got.Right
		if got.Quit {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !got.Quit {
		t.Fatal("closed stream should report quit")
	}
	if !sawRight {
		t.Error("bytes before EOF should still be delivered")
	}
	if again := readAt(s, time.Now()); !again.Quit {
		t.Error("closed stream should keep reporting quit")
	}
}
