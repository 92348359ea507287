// Package audio plays short feedback cues for input handling: a high
// blip when an entry is accepted and a low buzz when it is rejected.
// Everything degrades to silence if the speaker cannot initialize;
// the visualization runs fine without sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback owns the speaker. The zero value is a silent no-op, so a
// failed or disabled init never has to be checked at call sites.
type Feedback struct {
	ready bool
}

// NewFeedback initializes the speaker. On error the returned Feedback
// is still usable and simply stays silent.
func NewFeedback() (*Feedback, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Feedback{}, err
	}
	return &Feedback{ready: true}, nil
}

// Accept plays a short high blip.
func (f *Feedback) Accept() {
	f.tone(880, 40*time.Millisecond)
}

// Reject plays a longer low buzz.
func (f *Feedback) Reject() {
	f.tone(220, 120*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if f == nil || !f.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker.
func (f *Feedback) Close() {
	if f != nil && f.ready {
		speaker.Close()
	}
}
