package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is a short interface sound
type Cue int

const (
	CuePickup Cue = iota
	CueDrop
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueDrop:
		return "drop"
	default:
		return "unknown"
	}
}

const (
	pickupDuration = 60 * time.Millisecond
	dropDuration   = 90 * time.Millisecond
	cueAttack      = 5 * time.Millisecond
	cueRelease     = 40 * time.Millisecond
)

// oscillator produces a sine tone for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize builds the streamer for a cue. A pickup is a short rising
// pair of notes, a drop a single lower note.
func Synthesize(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch cue {
	case CuePickup:
		half := pickupDuration / 2
		return withVolume(beep.Seq(
			newEnvelope(newOscillator(660, half, rate), half, cueAttack, cueRelease/2, rate),
			newEnvelope(newOscillator(880, half, rate), half, cueAttack, cueRelease/2, rate),
		), volume)
	case CueDrop:
		return withVolume(
			newEnvelope(newOscillator(440, dropDuration, rate), dropDuration, cueAttack, cueRelease, rate),
			volume,
		)
	default:
		return nil
	}
}

// Duration is how long a cue plays.
func Duration(cue Cue) time.Duration {
	switch cue {
	case CuePickup:
		return pickupDuration
	case CueDrop:
		return dropDuration
	default:
		return 0
	}
}
