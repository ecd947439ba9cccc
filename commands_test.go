package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrdg/paxelhz/audio"
)

const testFragment = `
audio_fragment:
  start_time: 0
  partials:
    - partial:
        labels: [lead]
        frequency_envelope:
          levels: [440, 440]
          times: [0.05]
        amplitude_envelope:
          levels: [1, 1]
          times: [0.05]
        phase_coordinates:
          times: [0, 0.05]
          phases: [0, null]
`

func writeFragment(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fragment.yaml")
	if err := os.WriteFile(path, []byte(testFragment), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestEvalLoadAndRender(t *testing.T) {
	e := &env{config: audio.NewConfig()}
	fragmentPath := writeFragment(t)

	if _, err := eval(e, `load "`+fragmentPath+`"`); err != nil {
		t.Fatalf("load: %v", err)
	}
	if e.fragment == nil {
		t.Fatal("expected a fragment to be loaded")
	}

	outPath := filepath.Join(t.TempDir(), "out.wav")
	result, err := eval(e, `render "`+outPath+`"`)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result, outPath) {
		t.Errorf("render result = %q, want it to mention %q", result, outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected render to create %s: %v", outPath, err)
	}
}

func TestEvalSetAndGet(t *testing.T) {
	e := &env{config: audio.NewConfig()}

	if _, err := eval(e, "set sampleRate 22050"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := eval(e, "get sampleRate")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "22050" {
		t.Errorf("get sampleRate = %q, want 22050", got)
	}
}

func TestEvalUnknownCommand(t *testing.T) {
	e := &env{config: audio.NewConfig()}
	if _, err := eval(e, "frobnicate"); err == nil {
		t.Fatal("expected error for an unknown command")
	}
}

func TestEvalWrongArity(t *testing.T) {
	e := &env{config: audio.NewConfig()}
	if _, err := eval(e, "set sampleRate"); err == nil {
		t.Fatal("expected error for missing arguments")
	}
}

func TestEvalRenderWithoutLoadFails(t *testing.T) {
	e := &env{config: audio.NewConfig()}
	if _, err := eval(e, `render "out.wav"`); err == nil {
		t.Fatal("expected error when rendering without a loaded fragment")
	}
}
