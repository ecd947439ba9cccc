package wavfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/mrdg/paxelhz/audio"
)

func TestWriteProducesValidRiffHeader(t *testing.T) {
	w := &Writer{SampleRate: 44100, SampleType: audio.AudioSampleTypePaxelInt}
	samples := []audio.SamplePaxelBundleInt{0, 100, -100, 32000}

	var buf bytes.Buffer
	if err := w.Write(&buf, samples); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Fatalf("missing RIFF tag, got %q", data[0:4])
	}
	if string(data[8:12]) != "WAVE" {
		t.Fatalf("missing WAVE tag, got %q", data[8:12])
	}
	if string(data[12:16]) != "fmt " {
		t.Fatalf("missing fmt chunk, got %q", data[12:16])
	}

	wantDataSize := uint32(len(samples) * 3)
	gotDataSize := binary.LittleEndian.Uint32(data[len(data)-int(wantDataSize)-4:])
	if gotDataSize != wantDataSize {
		t.Errorf("data chunk size = %d, want %d", gotDataSize, wantDataSize)
	}
}

func TestWriteRejectsEmptyBufferViaWriteFile(t *testing.T) {
	w := &Writer{SampleRate: 44100, SampleType: audio.AudioSampleTypePaxelInt}
	if err := w.WriteFile(t.TempDir()+"/out.wav", nil); err == nil {
		t.Fatal("expected error for an empty sample buffer")
	}
}

func TestWriteFileRoundTripsSampleCount(t *testing.T) {
	w := &Writer{SampleRate: 8000, SampleType: audio.AudioSampleTypePaxelInt}
	samples := make([]audio.SamplePaxelBundleInt, 8000)
	for i := range samples {
		samples[i] = audio.SamplePaxelBundleInt(i % 100)
	}

	path := t.TempDir() + "/tone.wav"
	if err := w.WriteFile(path, samples); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWriteFullRangeUsesEightBytesPerSample(t *testing.T) {
	w := &Writer{SampleRate: 44100, SampleType: audio.AudioSampleTypeFullRange}
	samples := []audio.SamplePaxelBundleInt{1, 2, 3}

	var buf bytes.Buffer
	if err := w.Write(&buf, samples); err != nil {
		t.Fatalf("Write: %v", err)
	}
	wantDataSize := len(samples) * 8
	if got := len(buf.Bytes()) - 44; got != wantDataSize {
		t.Errorf("data payload size = %d, want %d", got, wantDataSize)
	}
}
