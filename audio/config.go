package audio

import (
	"fmt"
	"sync/atomic"
)

// Config holds the render-time settings a Session reads when it renders:
// sample rate, paxel size (always one second at the configured rate), the
// mixer's auto-normalise behaviour, and the output sample type tag consumed
// by the wavfile writer. Each setting lives in its own atomic.Value so
// concurrent readers never need a lock to read it.
type Config struct {
	sampleRate    atomic.Value
	autoNormalize atomic.Value
	sampleType    atomic.Value
}

// NewConfig returns a Config with default values: 96 kHz sample rate,
// auto-normalise disabled, 24-bit-in-32-bit per-partial samples.
func NewConfig() *Config {
	c := &Config{}
	c.sampleRate.Store(DefaultSampleRate)
	c.autoNormalize.Store(false)
	c.sampleType.Store(AudioSampleTypePaxelInt)
	return c
}

// SampleRate returns the configured sample rate in Hz.
func (c *Config) SampleRate() int {
	return c.sampleRate.Load().(int)
}

// SetSampleRate overrides the default sample rate. hz must be positive.
func (c *Config) SetSampleRate(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("sample rate must be positive: %v", hz)
	}
	c.sampleRate.Store(hz)
	return nil
}

// PaxelSize returns the configured paxel size in samples: one second at the
// configured sample rate.
func (c *Config) PaxelSize() int {
	return c.SampleRate()
}

// AutoNormalize reports whether the mixer should attenuate by ceil(log2(N))
// bits before summing partials.
func (c *Config) AutoNormalize() bool {
	return c.autoNormalize.Load().(bool)
}

// SetAutoNormalize toggles mixer attenuation.
func (c *Config) SetAutoNormalize(on bool) error {
	c.autoNormalize.Store(on)
	return nil
}

// SampleType returns the configured output sample type tag, consumed by the
// wavfile writer.
func (c *Config) SampleType() AudioSampleType {
	return c.sampleType.Load().(AudioSampleType)
}

// SetSampleType overrides the output sample type tag.
func (c *Config) SetSampleType(t AudioSampleType) error {
	if t < AudioSampleTypePaxelFP || t > AudioSampleTypeScaled {
		return fmt.Errorf("unknown sample type: %v", t)
	}
	c.sampleType.Store(t)
	return nil
}
