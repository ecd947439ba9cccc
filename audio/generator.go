package audio

// GeneratePhysicalEnvelope is the core of the renderer: it fuses an
// amplitude envelope, a frequency envelope and a set of phase targets into a
// single ordered list of physical coordinates, applies the phase-coherence
// compensation pass, and slices the result onto the paxel grid.
func GeneratePhysicalEnvelope(partial PartialEnvelopes, startTimeSeconds float64, sampleRate int) (PhysicalPartialEnvelope, error) {
	endTimeSeconds := partial.Phase.EndTimeSeconds()

	amp, err := TrimEnvelope(partial.Amplitude.Envelope, endTimeSeconds)
	if err != nil {
		return PhysicalPartialEnvelope{}, err
	}
	freq, err := TrimEnvelope(partial.Frequency.Envelope, endTimeSeconds)
	if err != nil {
		return PhysicalPartialEnvelope{}, err
	}

	finalSample := secondsToSamples(endTimeSeconds, sampleRate)

	ampCoords := physicalAmplitudeCoords(amp, finalSample, sampleRate)
	freqCoords := physicalFrequencyCoords(freq, finalSample, sampleRate)
	phaseCoords := physicalPhaseCoords(partial.Phase, sampleRate)

	fused, anchors := fuseEnvelope(ampCoords, freqCoords, phaseCoords, finalSample)
	applyPhaseCompensation(fused, anchors, phaseCoords)

	startSample := secondsToSamples(startTimeSeconds, sampleRate)
	endSample := startSample + finalSample

	return sliceIntoPaxelGrid(fused, startTimeSeconds, endTimeSeconds, startSample, endSample, sampleRate), nil
}

// physicalAmplitudeCoords converts a trimmed amplitude envelope's breakpoints
// into absolute-sample coordinates.
func physicalAmplitudeCoords(env Envelope, finalSample uint64, sampleRate int) []PhysicalAmplitudeCoordinate {
	coords := make([]PhysicalAmplitudeCoordinate, len(env.Levels))
	var t float64
	for i, level := range env.Levels {
		sample := secondsToSamples(t, sampleRate)
		if i == len(env.Levels)-1 {
			sample = finalSample
		}
		coords[i] = PhysicalAmplitudeCoordinate{Amplitude: level, SampleNumber: sample}
		if i < len(env.Times) {
			t += env.Times[i]
		}
	}
	return coords
}

// physicalFrequencyCoords converts a trimmed frequency envelope's
// breakpoints into absolute-sample coordinates, normalising Hz to
// radians/sample.
func physicalFrequencyCoords(env Envelope, finalSample uint64, sampleRate int) []PhysicalFrequencyCoordinate {
	coords := make([]PhysicalFrequencyCoordinate, len(env.Levels))
	var t float64
	for i, level := range env.Levels {
		sample := secondsToSamples(t, sampleRate)
		if i == len(env.Levels)-1 {
			sample = finalSample
		}
		coords[i] = PhysicalFrequencyCoordinate{Frequency: normalizeFrequency(level, sampleRate), SampleNumber: sample}
		if i < len(env.Times) {
			t += env.Times[i]
		}
	}
	return coords
}

// physicalPhaseCoords converts the logical phase coordinates into sample
// time, preserving the natural flag.
func physicalPhaseCoords(phases PhaseCoordinates, sampleRate int) []PhysicalPhaseCoordinate {
	coords := make([]PhysicalPhaseCoordinate, len(phases.Coordinates))
	for i, p := range phases.Coordinates {
		coords[i] = PhysicalPhaseCoordinate{
			Phase:        p.Phase,
			SampleNumber: p.timeSamples(sampleRate),
			Natural:      p.Natural,
		}
	}
	return coords
}

// phaseAnchor is the index, into the fused point list, of the fused point
// that corresponds one-to-one with an input phase coordinate.
type phaseAnchor int

const noSample = ^uint64(0)

// nextAmp, nextFreq and nextPhase report the sample index of the next
// unconsumed breakpoint in each sequence, or noSample if the sequence is
// exhausted.
func nextAmp(coords []PhysicalAmplitudeCoordinate, i int) uint64 {
	if i >= len(coords) {
		return noSample
	}
	return coords[i].SampleNumber
}

func nextFreq(coords []PhysicalFrequencyCoordinate, i int) uint64 {
	if i >= len(coords) {
		return noSample
	}
	return coords[i].SampleNumber
}

func nextPhase(coords []PhysicalPhaseCoordinate, i int) uint64 {
	if i >= len(coords) {
		return noSample
	}
	return coords[i].SampleNumber
}

func min3(a, b, c uint64) uint64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// fuseEnvelope sweeps amplitude, frequency and phase breakpoints together in
// sample order, producing one ordered list of fused points and one anchor
// per input phase coordinate, pointing into that list.
func fuseEnvelope(ampCoords []PhysicalAmplitudeCoordinate, freqCoords []PhysicalFrequencyCoordinate,
	phaseCoords []PhysicalPhaseCoordinate, finalSample uint64) ([]PhysicalEnvelopePoint, []phaseAnchor) {

	ai, fi, pi := 1, 1, 0

	currentAmp := ampCoords[0]
	currentFreq := freqCoords[0]
	ampRate := amplitudeRate(ampCoords[0], ampCoords[1])
	freqRate := frequencyRateBetween(freqCoords[0], freqCoords[1])

	fused := make([]PhysicalEnvelopePoint, 0, len(ampCoords)+len(freqCoords)+len(phaseCoords))
	anchors := make([]phaseAnchor, 0, len(phaseCoords))

	lastFreqAccumulator := 0.0

	fused = append(fused, PhysicalEnvelopePoint{
		SampleNumber:     0,
		CycleAccumulator: 0,
		Frequency:        currentFreq.Frequency,
		FrequencyRate:    freqRate,
		Amplitude:        currentAmp.Amplitude,
		AmplitudeRate:    ampRate,
	})
	// The first phase coordinate is always at sample 0 (PhaseCoordinates
	// invariant), so it is consumed by the initial fused point above.
	anchors = append(anchors, phaseAnchor(0))
	pi++

	for {
		next := min3(nextAmp(ampCoords, ai), nextFreq(freqCoords, fi), minOrFinal(nextPhase(phaseCoords, pi), finalSample))
		if next == noSample {
			next = finalSample
		}

		amplitudeHere := currentAmp.Amplitude + ampRate*float64(next-currentAmp.SampleNumber)
		frequencyHere := currentFreq.Frequency + freqRate*float64(next-currentFreq.SampleNumber)

		atFreqBreakpoint := fi < len(freqCoords) && next == freqCoords[fi].SampleNumber
		var accHere float64
		if atFreqBreakpoint {
			accHere = computeCycleAccumulatorToExactEnd(lastFreqAccumulator, currentFreq.Frequency,
				freqCoords[fi].Frequency, next-currentFreq.SampleNumber)
		} else {
			accHere = computeCycleAccumulator(lastFreqAccumulator, currentFreq.Frequency, freqRate, next-currentFreq.SampleNumber)
		}

		if ai < len(ampCoords) && next == ampCoords[ai].SampleNumber {
			amplitudeHere = ampCoords[ai].Amplitude
			currentAmp = ampCoords[ai]
			ai++
			if ai < len(ampCoords) {
				ampRate = amplitudeRate(currentAmp, ampCoords[ai])
			}
		}

		if atFreqBreakpoint {
			frequencyHere = freqCoords[fi].Frequency
			lastFreqAccumulator = accHere
			currentFreq = freqCoords[fi]
			fi++
			if fi < len(freqCoords) {
				freqRate = frequencyRateBetween(currentFreq, freqCoords[fi])
			}
		}

		fused = append(fused, PhysicalEnvelopePoint{
			SampleNumber:     next,
			CycleAccumulator: accHere,
			Frequency:        frequencyHere,
			FrequencyRate:    freqRate,
			Amplitude:        amplitudeHere,
			AmplitudeRate:    ampRate,
		})

		if pi < len(phaseCoords) && next == phaseCoords[pi].SampleNumber {
			anchors = append(anchors, phaseAnchor(len(fused)-1))
			pi++
		}

		if next == finalSample {
			break
		}
	}

	return fused, anchors
}

// minOrFinal treats an exhausted phase sequence (noSample) as if it were
// pinned at finalSample, so it never wins the min3 comparison spuriously.
func minOrFinal(phaseNext, finalSample uint64) uint64 {
	if phaseNext == noSample {
		return finalSample
	}
	return phaseNext
}

// applyPhaseCompensation distributes each controlled phase coordinate's
// phase error across the fused points since the preceding phase coordinate
// (controlled or natural), mutating fused in place, and recomputes the frequency rate each mutated
// point carries so its cycle accumulator still advances smoothly.
func applyPhaseCompensation(fused []PhysicalEnvelopePoint, anchors []phaseAnchor, phaseCoords []PhysicalPhaseCoordinate) {
	cumulativeShift := 0.0

	if !phaseCoords[0].Natural && phaseCoords[0].Phase != 0 {
		cumulativeShift = phaseCoords[0].Phase
		fused[anchors[0]].CycleAccumulator = cumulativeShift
	}

	for i := 1; i < len(anchors); i++ {
		prevIdx := anchors[i-1]
		currIdx := anchors[i]

		delta := 0.0
		if !phaseCoords[i].Natural {
			delta = coherenceCompensation(fused[currIdx].CycleAccumulator+cumulativeShift, phaseCoords[i].Phase)
		}

		span := float64(fused[currIdx].SampleNumber - fused[prevIdx].SampleNumber)
		for j := int(prevIdx) + 1; j <= int(currIdx); j++ {
			fraction := float64(fused[j].SampleNumber-fused[prevIdx].SampleNumber) / span
			fused[j].CycleAccumulator += cumulativeShift + delta*fraction

			prev := &fused[j-1]
			curr := &fused[j]
			prev.FrequencyRate = computeFrequencyRate(prev.CycleAccumulator, prev.Frequency,
				curr.CycleAccumulator, curr.SampleNumber-prev.SampleNumber)
		}

		cumulativeShift += delta
	}
}
