// Package spectral checks rendered PCM buffers against their expected
// frequency content. It exists purely as a verification tool for the audio
// package's tests: the renderer itself never does frequency-domain work.
package spectral

import (
	"math"

	"github.com/ktye/fft"
)

// PeakFrequency returns the frequency in Hz of the largest-magnitude bin in
// the discrete Fourier transform of samples, sampled at sampleRate. samples
// is windowed with a Hann window before transforming to reduce spectral
// leakage from a non-integer number of cycles.
func PeakFrequency(samples []float64, sampleRate int) (float64, error) {
	size := nextPowerOfTwo(len(samples))
	windowed := make([]complex128, size)
	for i, s := range samples {
		window := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(len(samples)-1))
		windowed[i] = complex(s*window, 0)
	}

	transform, err := fft.New(size)
	if err != nil {
		return 0, err
	}
	spectrum := transform.Transform(windowed)

	peakBin, peakMag := 0, 0.0
	for i := 0; i < size/2; i++ {
		mag := cmplxAbs(spectrum[i])
		if mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}

	return float64(peakBin) * float64(sampleRate) / float64(size), nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
