package audio

import "math"

// SamplePaxelInt is a 24-bit PCM sample stored in a 32-bit signed int, the
// canonical per-partial sample type.
type SamplePaxelInt = int32

// RenderPaxel expands one paxel's local fused points into paxelSize PCM
// samples. Every local sample in [0, paxelSize) is assigned exactly once,
// and the result is bit-identical regardless of how many paxels are
// rendered concurrently, since each paxel only reads its own point list.
func RenderPaxel(points []PhysicalEnvelopePoint, paxelSize int) []SamplePaxelInt {
	out := make([]SamplePaxelInt, paxelSize)

	for i := 0; i < len(points); i++ {
		cur := points[i]
		fillTo := uint64(paxelSize)
		if i+1 < len(points) {
			fillTo = points[i+1].SampleNumber
		}
		for s := cur.SampleNumber; s < fillTo; s++ {
			offset := s - cur.SampleNumber
			amp := cur.Amplitude + cur.AmplitudeRate*float64(offset)
			acc := computeCycleAccumulator(cur.CycleAccumulator, cur.Frequency, cur.FrequencyRate, offset)
			out[s] = SamplePaxelInt(math.Round(math.Sin(acc) * amp * float64(MaxSamplePaxelInt)))
		}
	}

	return out
}

// RenderPartial renders every paxel of a physical partial envelope and
// concatenates the result into one contiguous PCM buffer.
func RenderPartial(envelope PhysicalPartialEnvelope, paxelSize int) []SamplePaxelInt {
	out := make([]SamplePaxelInt, paxelSize*len(envelope.PaxelPoints))
	for k, points := range envelope.PaxelPoints {
		copy(out[k*paxelSize:(k+1)*paxelSize], RenderPaxel(points, paxelSize))
	}
	return out
}
