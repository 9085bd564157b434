// Package speaker plays cues on the audio device. It is kept apart from the
// audio package because opening the device needs the system audio libraries.
package speaker

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/SvenDH/ward/audio"
)

// Speaker plays cues on the default audio device through a single mixer.
type Speaker struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
}

// New opens the audio device. The speaker can only be initialised once per
// process.
func New(sampleRate int, volume float64) (*Speaker, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{rate: rate, volume: volume, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(cue audio.Cue) {
	st := audio.Synthesize(cue, s.rate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences anything still playing.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
