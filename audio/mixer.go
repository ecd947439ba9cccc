package audio

import "math"

// SamplePaxelBundleInt is the 32-bit signed sample type used for mixed,
// multi-partial sums.
type SamplePaxelBundleInt = int32

// Mix sums per-partial sample buffers of possibly different lengths into a
// buffer the length of the longest one. If autoNormalize is true, each
// partial is right-shifted by ceil(log2(N)) bits before summing, where N is
// the number of partials.
func Mix(partials [][]SamplePaxelInt, autoNormalize bool) []SamplePaxelBundleInt {
	if len(partials) == 0 {
		return nil
	}

	maxLen := 0
	for _, p := range partials {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	shift := 0
	if autoNormalize {
		shift = int(math.Ceil(math.Log2(float64(len(partials)))))
	}

	out := make([]SamplePaxelBundleInt, maxLen)
	for _, p := range partials {
		for i, v := range p {
			out[i] += SamplePaxelBundleInt(v >> uint(shift))
		}
	}
	return out
}
