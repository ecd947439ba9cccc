package audio

import "math"

// sliceIntoPaxelGrid places a partial's fused envelope points (sample
// indices relative to the partial's own start) onto the fixed-size paxel
// grid, producing per-paxel point lists with sample indices local to each
// paxel.
func sliceIntoPaxelGrid(fused []PhysicalEnvelopePoint, startTimeSeconds, endTimeSeconds float64,
	startSample, endSample uint64, sampleRate int) PhysicalPartialEnvelope {

	paxelSize := uint64(sampleRate)

	abs := make([]PhysicalEnvelopePoint, len(fused))
	for i, p := range fused {
		p.SampleNumber += startSample
		abs[i] = p
	}

	firstPaxelIndex := startSample / paxelSize
	gridOffset := startSample - firstPaxelIndex*paxelSize
	if gridOffset > 0 {
		silent := silentPoint(firstPaxelIndex * paxelSize)
		abs = append([]PhysicalEnvelopePoint{silent}, abs...)
	}

	lastPaxelIndex := endSample / paxelSize
	if endSample%paxelSize != 0 {
		// Silence the remainder of the last paxel beyond the partial's true
		// end: appended with the same sample index as the final real point,
		// so it contributes a zero-length segment there and then fills the
		// rest of the paxel with zero amplitude.
		abs = append(abs, silentPoint(endSample))
	} else {
		// endSample lands exactly on a paxel boundary, so endSample/paxelSize
		// names the paxel after the last one the partial actually occupies.
		lastPaxelIndex--
	}

	numPaxels := lastPaxelIndex - firstPaxelIndex + 1
	paxels := make([][]PhysicalEnvelopePoint, numPaxels)

	currentPaxel := firstPaxelIndex
	var prev *PhysicalEnvelopePoint
	for i := range abs {
		point := abs[i]
		k := point.SampleNumber / paxelSize
		if k > lastPaxelIndex {
			// The terminal point coincides with the boundary collapsed
			// above; fold it into the last real paxel as a no-op marker
			// at local sample paxelSize, past every sample RenderPaxel fills.
			k = lastPaxelIndex
		}

		for b := currentPaxel + 1; b <= k && prev != nil; b++ {
			boundarySample := b * paxelSize
			if boundarySample == prev.SampleNumber {
				continue
			}
			boundary := interpolate(*prev, point, boundarySample)
			paxels[b-firstPaxelIndex] = append(paxels[b-firstPaxelIndex], boundary)
		}

		paxels[k-firstPaxelIndex] = append(paxels[k-firstPaxelIndex], point)
		prevCopy := point
		prev = &prevCopy
		currentPaxel = k
	}

	for k := range paxels {
		base := (firstPaxelIndex + uint64(k)) * paxelSize
		for i := range paxels[k] {
			paxels[k][i].SampleNumber -= base
		}
	}

	return PhysicalPartialEnvelope{
		PaxelPoints:         paxels,
		FirstPaxelIndex:     firstPaxelIndex,
		FirstSampleFraction: 1 - frac(startTimeSeconds*float64(sampleRate)),
		LastSampleFraction:  frac(endTimeSeconds * float64(sampleRate)),
	}
}

func silentPoint(absoluteSample uint64) PhysicalEnvelopePoint {
	return PhysicalEnvelopePoint{
		SampleNumber:     absoluteSample,
		CycleAccumulator: 0,
		Frequency:        0,
		FrequencyRate:    0,
		Amplitude:        0,
		AmplitudeRate:    0,
	}
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
