package audio

// PhysicalAmplitudeCoordinate is an amplitude value paired with an absolute
// sample index relative to the partial's start.
type PhysicalAmplitudeCoordinate struct {
	Amplitude    float64
	SampleNumber uint64
}

// PhysicalFrequencyCoordinate is a normalised frequency (radians per sample)
// paired with an absolute sample index relative to the partial's start.
type PhysicalFrequencyCoordinate struct {
	Frequency    float64 // normalised: radians per sample
	SampleNumber uint64
}

// PhysicalPhaseCoordinate mirrors PhaseCoordinate but in sample time, and
// carries the natural flag through to the fused sweep.
type PhysicalPhaseCoordinate struct {
	Phase        float64
	SampleNumber uint64
	Natural      bool
}

// amplitudeRate returns the per-sample linear rate between two amplitude
// coordinates.
func amplitudeRate(a, b PhysicalAmplitudeCoordinate) float64 {
	return (b.Amplitude - a.Amplitude) / float64(b.SampleNumber-a.SampleNumber)
}

// frequencyRateBetween returns the per-sample linear rate between two
// frequency coordinates.
func frequencyRateBetween(a, b PhysicalFrequencyCoordinate) float64 {
	return (b.Frequency - a.Frequency) / float64(b.SampleNumber-a.SampleNumber)
}

// PhysicalEnvelopePoint is a single fused coordinate in the physical
// envelope: sample index, the non-wrapping cycle accumulator, the
// instantaneous frequency and amplitude, and the per-sample rates that hold
// for the interval beginning at this point.
type PhysicalEnvelopePoint struct {
	SampleNumber    uint64
	CycleAccumulator float64
	Frequency        float64
	FrequencyRate    float64
	Amplitude        float64
	AmplitudeRate    float64
}

// interpolate produces a new PhysicalEnvelopePoint at sampleNumber, strictly
// between pointA and pointB, preserving pointA's rates (the accumulator is
// computed forward from pointA; amplitude and frequency are interpolated
// linearly).
func interpolate(pointA, pointB PhysicalEnvelopePoint, sampleNumber uint64) PhysicalEnvelopePoint {
	span := pointB.SampleNumber - pointA.SampleNumber
	ratio := float64(sampleNumber-pointA.SampleNumber) / float64(span)

	return PhysicalEnvelopePoint{
		SampleNumber: sampleNumber,
		CycleAccumulator: computeCycleAccumulator(pointA.CycleAccumulator, pointA.Frequency,
			pointA.FrequencyRate, sampleNumber-pointA.SampleNumber),
		Frequency:     pointA.Frequency + ratio*(pointB.Frequency-pointA.Frequency),
		FrequencyRate: pointA.FrequencyRate,
		Amplitude:     pointA.Amplitude + ratio*(pointB.Amplitude-pointA.Amplitude),
		AmplitudeRate: pointA.AmplitudeRate,
	}
}

// PhysicalPartialEnvelope is the output of the physical envelope generator:
// a partial sliced onto the paxel grid, with local (paxel-relative) sample
// indices, plus the bookkeeping needed to place it correctly within a
// composite render.
type PhysicalPartialEnvelope struct {
	// PaxelPoints[k] holds the fused points local to paxel k, with sample
	// indices in [0, PaxelSize). The one exception is a partial whose end
	// falls exactly on a paxel boundary: its terminal point stays in the
	// last paxel at local index PaxelSize, past every sample rendered.
	PaxelPoints [][]PhysicalEnvelopePoint
	// FirstPaxelIndex is the absolute paxel index of PaxelPoints[0].
	FirstPaxelIndex uint64
	// FirstSampleFraction and LastSampleFraction are the fractional
	// coverage of the first and last sample; exposed for a future
	// cross-partial alignment pass but not yet applied by the renderer.
	FirstSampleFraction float64
	LastSampleFraction  float64
}
