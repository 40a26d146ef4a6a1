package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// DefaultVolume is the playback volume used by the CLI.
const DefaultVolume = 0.3

type note struct {
	freq float64
	dur  time.Duration
}

var phrases = map[Cue][]note{
	CueLock:     {{220, 30 * time.Millisecond}},
	CueClear:    {{660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CueGameOver: {{440, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {220, 300 * time.Millisecond}},
}

// Tone builds the finite streamer for c at the given rate and volume
// (0..1).
func Tone(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := phrases[c]
	if !ok {
		return nil, fmt.Errorf("sound: no phrase for cue %s", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sound: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	return &Speaker{volume: volume}, nil
}

// Play starts c and returns immediately. Errors building a tone are
// dropped.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	tone, err := Tone(c, SampleRate, s.volume)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
