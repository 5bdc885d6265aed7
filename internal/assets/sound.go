package assets

import (
	"math"
	"time"
)

// ClickSound synthesizes a short square-wave "pop" as 16-bit little-endian
// stereo PCM, the layout ebiten's audio player expects.
func ClickSound(sampleRate int, freq float64, length time.Duration) []byte {
	samples := int(float64(sampleRate) * length.Seconds())
	if samples <= 0 || freq <= 0 {
		return nil
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		// Pitch slides up an octave while the volume decays linearly.
		progress := float64(i) / float64(samples)
		f := freq * (1 + progress)
		vol := 0.2 * (1 - progress)

		phase := math.Mod(float64(i)*f/float64(sampleRate), 1)
		val := vol
		if phase >= 0.5 {
			val = -vol
		}

		v := int16(val * 32767)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
