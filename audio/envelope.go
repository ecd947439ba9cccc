package audio

// CurveKind names the envelope curve shapes accepted syntactically by the
// fragment format. Only Linear affects rendering; the others are accepted
// and carried for forward compatibility with curve interpolation, which is
// not yet implemented.
type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurveExponential
	CurveSine
	CurveWelch
	CurveStep
	CurveNumeric
)

// Curve is a single entry in an envelope's curves sequence. Numeric
// curvature values are carried in Value when Kind is CurveNumeric.
type Curve struct {
	Kind  CurveKind
	Value float64
}

// Envelope is an immutable piecewise-linear trajectory: N levels joined by
// N-1 inter-level times, in seconds. Curves are accepted but treated as
// linear throughout this package.
type Envelope struct {
	Levels []float64
	Times  []float64
	Curves []Curve
}

// newEnvelope validates the basic shape of an envelope: at least one level,
// and no negative times. Subtype constructors layer their own invariants on
// top.
func newEnvelope(levels, times []float64, curves []Curve) (Envelope, error) {
	if len(levels) < 1 {
		return Envelope{}, invariantf("levels", "envelope must have at least one level")
	}
	for _, t := range times {
		if t < 0 {
			return Envelope{}, invariantf("times", "envelope times must not be negative, got %v", t)
		}
	}
	return Envelope{Levels: levels, Times: times, Curves: curves}, nil
}

// FrequencyEnvelope is an Envelope whose levels are all strictly positive
// (Hz).
type FrequencyEnvelope struct {
	Envelope
}

// NewFrequencyEnvelope validates that every level is strictly positive.
func NewFrequencyEnvelope(levels, times []float64, curves []Curve) (FrequencyEnvelope, error) {
	env, err := newEnvelope(levels, times, curves)
	if err != nil {
		return FrequencyEnvelope{}, err
	}
	for _, l := range levels {
		if l <= 0 {
			return FrequencyEnvelope{}, invariantf("levels", "frequency levels must be strictly positive, got %v", l)
		}
	}
	return FrequencyEnvelope{Envelope: env}, nil
}

// AmplitudeEnvelope is an Envelope whose levels lie in [-1.0, 1.0]. Negative
// values mean phase inversion.
type AmplitudeEnvelope struct {
	Envelope
}

// NewAmplitudeEnvelope validates that every level is within [-1.0, 1.0].
func NewAmplitudeEnvelope(levels, times []float64, curves []Curve) (AmplitudeEnvelope, error) {
	env, err := newEnvelope(levels, times, curves)
	if err != nil {
		return AmplitudeEnvelope{}, err
	}
	for _, l := range levels {
		if l < -1.0 || l > 1.0 {
			return AmplitudeEnvelope{}, invariantf("levels", "amplitude levels must be within [-1.0, 1.0], got %v", l)
		}
	}
	return AmplitudeEnvelope{Envelope: env}, nil
}

// PhaseCoordinate is either a controlled coordinate (time, target phase) or
// a natural coordinate (time only: "whatever phase the partial naturally
// reaches here"). Use NewControlledPhase / NewNaturalPhase to construct one.
type PhaseCoordinate struct {
	TimeSeconds float64
	Phase       float64 // meaningful only when !Natural
	Natural     bool
}

// NewControlledPhase constructs a controlled phase coordinate at t seconds
// targeting phase radians, phase must lie in [0, 2π].
func NewControlledPhase(t, phase float64) (PhaseCoordinate, error) {
	if t < 0 {
		return PhaseCoordinate{}, invariantf("time", "phase coordinate time must be >= 0, got %v", t)
	}
	if phase < 0 || phase > twoPi {
		return PhaseCoordinate{}, invariantf("phase", "phase must be within [0, 2π], got %v", phase)
	}
	return PhaseCoordinate{TimeSeconds: t, Phase: phase, Natural: false}, nil
}

// NewNaturalPhase constructs a natural phase coordinate at t seconds. t must
// be strictly positive: natural phase is not allowed as the first
// coordinate.
func NewNaturalPhase(t float64) (PhaseCoordinate, error) {
	if t <= 0 {
		return PhaseCoordinate{}, invariantf("time", "natural phase coordinate time must be > 0, got %v", t)
	}
	return PhaseCoordinate{TimeSeconds: t, Natural: true}, nil
}

// timeSamples converts the coordinate's time to samples at sampleRate.
func (p PhaseCoordinate) timeSamples(sampleRate int) uint64 {
	return secondsToSamples(p.TimeSeconds, sampleRate)
}

// PhaseCoordinates is an ordered sequence of at least two PhaseCoordinates.
// The first must be at t=0 and controlled; times must be strictly
// ascending. The last coordinate's time defines the partial's end.
type PhaseCoordinates struct {
	Coordinates []PhaseCoordinate
}

// NewPhaseCoordinates validates the sequence-level invariants.
func NewPhaseCoordinates(coords []PhaseCoordinate) (PhaseCoordinates, error) {
	if len(coords) < 2 {
		return PhaseCoordinates{}, invariantf("coordinates", "need at least 2 phase coordinates, got %d", len(coords))
	}
	if coords[0].TimeSeconds != 0 {
		return PhaseCoordinates{}, invariantf("coordinates[0]", "first phase coordinate must be at t=0")
	}
	if coords[0].Natural {
		return PhaseCoordinates{}, invariantf("coordinates[0]", "first phase coordinate must be controlled")
	}
	for i := 1; i < len(coords); i++ {
		if coords[i].TimeSeconds <= coords[i-1].TimeSeconds {
			return PhaseCoordinates{}, invariantf("coordinates", "times must be strictly ascending at index %d", i)
		}
	}
	return PhaseCoordinates{Coordinates: coords}, nil
}

// EndTimeSeconds is the time of the last coordinate, defining the partial's
// end.
func (p PhaseCoordinates) EndTimeSeconds() float64 {
	return p.Coordinates[len(p.Coordinates)-1].TimeSeconds
}

// PartialEnvelopes aggregates the three envelopes that fully specify a
// partial: amplitude, frequency and phase targets.
type PartialEnvelopes struct {
	Amplitude AmplitudeEnvelope
	Frequency FrequencyEnvelope
	Phase     PhaseCoordinates
	// Labels are purely descriptive (C8); they carry no semantic effect on
	// rendering.
	Labels []string
}
