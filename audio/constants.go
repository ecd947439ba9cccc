package audio

import "math"

// Default rendering constants. See Config for values that can be overridden
// per render.
const (
	// DefaultSampleRate is the number of samples per second used when no
	// Config override is supplied.
	DefaultSampleRate = 96000

	// PaxelSize is the number of samples in a paxel at DefaultSampleRate:
	// one second of audio. Renders at another sample rate use a paxel of
	// one second at that rate (see Config.PaxelSize).
	PaxelSize = DefaultSampleRate

	// MaxSamplePaxelInt is the largest magnitude representable by a 24-bit
	// signed sample, stored in a 32-bit int.
	MaxSamplePaxelInt int32 = 0x7FFFFF

	// MinAudioFrequency and MaxAudioFrequency bound the working audio range
	// used for validation warnings, not hard construction failures.
	MinAudioFrequency = 20.0
	MaxAudioFrequency = 20000.0
)

const (
	twoPi = 2 * math.Pi
)

// AudioSampleType tags the bit-depth/format convention of a rendered sample
// buffer, consumed by the wavfile writer.
type AudioSampleType int

const (
	// AudioSampleTypePaxelFP is FP32 audio for individual paxel compute.
	AudioSampleTypePaxelFP AudioSampleType = iota
	// AudioSampleTypePaxelInt is 24-bit audio stored in a 32-bit signed int.
	AudioSampleTypePaxelInt
	// AudioSampleTypePaxelBundleInt is 32-bit audio stored in a 32-bit
	// signed int, used for mixed sums.
	AudioSampleTypePaxelBundleInt
	// AudioSampleTypeFullRange is 64-bit audio stored in a 64-bit signed int.
	AudioSampleTypeFullRange
	// AudioSampleTypeScaled is 24-bit audio derived from a 32-bit int via
	// division by 4.
	AudioSampleTypeScaled
)
