// Package envelopeyaml parses the text fragment format used to describe
// audio fragments: a named group of partials, each carrying its own
// amplitude envelope, frequency envelope and phase coordinates. The audio
// package itself never parses text; this package is the boundary where
// that text becomes the envelope types audio works with.
package envelopeyaml

import (
	"fmt"

	"github.com/mrdg/paxelhz/audio"
	"gopkg.in/yaml.v3"
)

// Fragment is a named group of partials with a shared start time, the Go
// form of the upstream "audio_fragment" document.
type Fragment struct {
	StartTimeSeconds float64
	Labels           []string
	Partials         []PartialSpec
}

// PartialSpec is one partial entry within a fragment, holding its own
// labels alongside the envelopes needed to build an audio.PartialEnvelopes.
type PartialSpec struct {
	Labels    []string
	Envelopes audio.PartialEnvelopes
}

type fragmentDoc struct {
	AudioFragment struct {
		StartTime float64      `yaml:"start_time"`
		Labels    []string     `yaml:"labels"`
		Partials  []partialDoc `yaml:"partials"`
	} `yaml:"audio_fragment"`
}

type partialDoc struct {
	Partial struct {
		Labels            []string       `yaml:"labels"`
		FrequencyEnvelope envelopeDoc    `yaml:"frequency_envelope"`
		AmplitudeEnvelope envelopeDoc    `yaml:"amplitude_envelope"`
		PhaseCoordinates  phaseCoordsDoc `yaml:"phase_coordinates"`
	} `yaml:"partial"`
}

type envelopeDoc struct {
	Levels []float64     `yaml:"levels"`
	Times  []float64     `yaml:"times"`
	Curves []interface{} `yaml:"curves"`
}

type phaseCoordsDoc struct {
	Times  []float64  `yaml:"times"`
	Phases []*float64 `yaml:"phases"`
}

// Parse decodes one audio_fragment document from raw YAML bytes.
func Parse(data []byte) (Fragment, error) {
	var doc fragmentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Fragment{}, fmt.Errorf("envelopeyaml: %w", err)
	}

	if len(doc.AudioFragment.Partials) == 0 {
		return Fragment{}, fmt.Errorf("envelopeyaml: missing or empty 'audio_fragment.partials'")
	}

	fragment := Fragment{
		StartTimeSeconds: doc.AudioFragment.StartTime,
		Labels:           doc.AudioFragment.Labels,
	}

	for i, p := range doc.AudioFragment.Partials {
		freqEnv, err := parseFrequencyEnvelope(p.Partial.FrequencyEnvelope)
		if err != nil {
			return Fragment{}, fmt.Errorf("envelopeyaml: partial %d: %w", i, err)
		}
		ampEnv, err := parseAmplitudeEnvelope(p.Partial.AmplitudeEnvelope)
		if err != nil {
			return Fragment{}, fmt.Errorf("envelopeyaml: partial %d: %w", i, err)
		}
		phaseCoords, err := parsePhaseCoordinates(p.Partial.PhaseCoordinates)
		if err != nil {
			return Fragment{}, fmt.Errorf("envelopeyaml: partial %d: %w", i, err)
		}

		fragment.Partials = append(fragment.Partials, PartialSpec{
			Labels: p.Partial.Labels,
			Envelopes: audio.PartialEnvelopes{
				Amplitude: ampEnv,
				Frequency: freqEnv,
				Phase:     phaseCoords,
				Labels:    p.Partial.Labels,
			},
		})
	}

	return fragment, nil
}

func parseCurves(raw []interface{}) ([]audio.Curve, error) {
	curves := make([]audio.Curve, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			kind, ok := curveKinds[v]
			if !ok {
				return nil, fmt.Errorf("unknown envelope curve type: %q", v)
			}
			curves = append(curves, audio.Curve{Kind: kind})
		case int:
			curves = append(curves, audio.Curve{Kind: audio.CurveNumeric, Value: float64(v)})
		case float64:
			curves = append(curves, audio.Curve{Kind: audio.CurveNumeric, Value: v})
		case nil:
			return nil, fmt.Errorf("null value encountered in curves array")
		default:
			return nil, fmt.Errorf("unexpected curve entry of type %T", v)
		}
	}
	return curves, nil
}

var curveKinds = map[string]audio.CurveKind{
	"lin":   audio.CurveLinear,
	"exp":   audio.CurveExponential,
	"sine":  audio.CurveSine,
	"welch": audio.CurveWelch,
	"step":  audio.CurveStep,
}

func parseFrequencyEnvelope(doc envelopeDoc) (audio.FrequencyEnvelope, error) {
	if len(doc.Times) < len(doc.Levels)-1 {
		return audio.FrequencyEnvelope{}, fmt.Errorf("frequency_envelope 'times' array has insufficient elements")
	}
	curves, err := parseCurves(doc.Curves)
	if err != nil {
		return audio.FrequencyEnvelope{}, err
	}
	return audio.NewFrequencyEnvelope(doc.Levels, doc.Times, curves)
}

func parseAmplitudeEnvelope(doc envelopeDoc) (audio.AmplitudeEnvelope, error) {
	if len(doc.Times) < len(doc.Levels)-1 {
		return audio.AmplitudeEnvelope{}, fmt.Errorf("amplitude_envelope 'times' array has insufficient elements")
	}
	curves, err := parseCurves(doc.Curves)
	if err != nil {
		return audio.AmplitudeEnvelope{}, err
	}
	return audio.NewAmplitudeEnvelope(doc.Levels, doc.Times, curves)
}

func parsePhaseCoordinates(doc phaseCoordsDoc) (audio.PhaseCoordinates, error) {
	if len(doc.Phases) != len(doc.Times) {
		return audio.PhaseCoordinates{}, fmt.Errorf(
			"phase_coordinates 'times' and 'phases' arrays must have the same length")
	}

	coords := make([]audio.PhaseCoordinate, len(doc.Times))
	for i, t := range doc.Times {
		if doc.Phases[i] == nil {
			coord, err := audio.NewNaturalPhase(t)
			if err != nil {
				return audio.PhaseCoordinates{}, err
			}
			coords[i] = coord
			continue
		}
		coord, err := audio.NewControlledPhase(t, *doc.Phases[i])
		if err != nil {
			return audio.PhaseCoordinates{}, err
		}
		coords[i] = coord
	}
	return audio.NewPhaseCoordinates(coords)
}
