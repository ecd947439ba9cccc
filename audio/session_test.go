package audio

import "testing"

func TestSessionRenderMixesConcurrentPartials(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetSampleRate(1000); err != nil {
		t.Fatalf("SetSampleRate: %v", err)
	}
	session := NewSession(cfg)
	session.AddPartial(Partial{Envelopes: simplePartial(t, 100, 1.0, 0.1), StartTimeSeconds: 0})
	session.AddPartial(Partial{Envelopes: simplePartial(t, 200, 1.0, 0.1), StartTimeSeconds: 0})

	out, err := session.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty render output")
	}
}

func TestSessionRenderOffsetsLatePartials(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetSampleRate(1000); err != nil {
		t.Fatalf("SetSampleRate: %v", err)
	}
	session := NewSession(cfg)
	session.AddPartial(Partial{Envelopes: simplePartial(t, 100, 1.0, 0.1), StartTimeSeconds: 2.0})

	out, err := session.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 2000; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d before the partial's start time is non-silent: %d", i, out[i])
		}
	}
}

func TestSessionOutOfRangeFrequencyWarnings(t *testing.T) {
	session := NewSession(nil)
	session.AddPartial(Partial{Envelopes: simplePartial(t, 5, 1.0, 0.1)})
	session.AddPartial(Partial{Envelopes: simplePartial(t, 440, 1.0, 0.1)})

	if got := session.OutOfRangeFrequencyWarnings(); got != 2 {
		t.Errorf("OutOfRangeFrequencyWarnings() = %d, want 2", got)
	}
}
