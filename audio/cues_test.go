package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestSynthesizeLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, cue := range []Cue{CuePickup, CueDrop} {
		t.Run(cue.String(), func(t *testing.T) {
			st := Synthesize(cue, rate, 1)
			require.NotNil(t, st)
			samples := drain(t, st)
			assert.InDelta(t, rate.N(Duration(cue)), len(samples), 2)
		})
	}
}

func TestSynthesizeStaysInRange(t *testing.T) {
	rate := beep.SampleRate(22050)
	samples := drain(t, Synthesize(CueDrop, rate, 1))
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	st := newEnvelope(newOscillator(440, d, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)
	samples := drain(t, st)
	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0][0])
	assert.InDelta(t, 0.0, samples[len(samples)-1][0], 0.01)
}

func TestSilentVolume(t *testing.T) {
	samples := drain(t, Synthesize(CuePickup, beep.SampleRate(44100), 0))
	for _, s := range samples {
		assert.Equal(t, 0.0, s[0])
	}
}

func TestUnknownCue(t *testing.T) {
	assert.Nil(t, Synthesize(Cue(42), beep.SampleRate(44100), 1))
	assert.Equal(t, time.Duration(0), Duration(Cue(42)))
	Nop{}.Play(CuePickup)
}
