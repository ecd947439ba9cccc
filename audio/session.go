package audio

// Partial is one partial placed at an absolute position in a composite
// render: its full logical specification, when it starts, and the labels
// that identify it.
type Partial struct {
	Envelopes        PartialEnvelopes
	StartTimeSeconds float64
	Labels           LabelSet
}

// Session is a group of partials rendered and mixed together. Each partial
// is placed at its own absolute start time in seconds and the results are
// summed; there is no shared clock or event scheduling, since rendering
// here always runs ahead of playback rather than alongside it.
type Session struct {
	Partials    []Partial
	GroupLabels LabelSet
	Config      *Config
}

// NewSession returns an empty Session using cfg, or default Config values
// if cfg is nil.
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Session{Config: cfg}
}

// AddPartial appends a partial to the session.
func (s *Session) AddPartial(p Partial) {
	s.Partials = append(s.Partials, p)
}

// Render generates and mixes every partial in the session into one
// composite buffer, honouring each partial's absolute start time and the
// session's paxel grid alignment. Each partial renders independently of the
// others, so nothing here prevents a caller from dispatching them to a
// worker pool.
func (s *Session) Render() ([]SamplePaxelBundleInt, error) {
	sampleRate := s.Config.SampleRate()
	paxelSize := s.Config.PaxelSize()

	aligned := make([][]SamplePaxelInt, 0, len(s.Partials))
	for _, p := range s.Partials {
		physical, err := GeneratePhysicalEnvelope(p.Envelopes, p.StartTimeSeconds, sampleRate)
		if err != nil {
			return nil, err
		}
		local := RenderPartial(physical, paxelSize)

		offset := int(physical.FirstPaxelIndex) * paxelSize
		buf := make([]SamplePaxelInt, offset+len(local))
		copy(buf[offset:], local)
		aligned = append(aligned, buf)
	}

	return Mix(aligned, s.Config.AutoNormalize()), nil
}

// OutOfRangeFrequencyWarnings reports, for diagnostic purposes, how many
// levels across the session's frequency envelopes fall outside the
// audible range (MinAudioFrequency to MaxAudioFrequency). Out-of-range
// frequencies are accepted and rendered rather than silenced; this count is
// advisory only.
func (s *Session) OutOfRangeFrequencyWarnings() int {
	count := 0
	for _, p := range s.Partials {
		for _, level := range p.Envelopes.Frequency.Levels {
			if level < MinAudioFrequency || level > MaxAudioFrequency {
				count++
			}
		}
	}
	return count
}
