// Package wavfile writes rendered PCM buffers to disk as RIFF/WAVE files.
// It is a deliberate external collaborator to the audio package: the core
// renderer works in bare sample buffers and never touches a filesystem, so
// a render has to pass through here before it becomes a listenable .wav
// file.
package wavfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/mrdg/paxelhz/audio"
)

// bytesPerSample reports the on-disk sample width for each supported
// AudioSampleType.
func bytesPerSample(t audio.AudioSampleType) int {
	switch t {
	case audio.AudioSampleTypePaxelFP:
		return 4
	case audio.AudioSampleTypePaxelInt, audio.AudioSampleTypeScaled:
		return 3
	case audio.AudioSampleTypePaxelBundleInt:
		return 4
	case audio.AudioSampleTypeFullRange:
		return 8
	default:
		return 3
	}
}

// Writer writes one mono WAV file at a fixed sample rate and sample type.
type Writer struct {
	SampleRate int
	SampleType audio.AudioSampleType
}

// NewWriter returns a Writer configured from cfg.
func NewWriter(cfg *audio.Config) *Writer {
	return &Writer{SampleRate: cfg.SampleRate(), SampleType: cfg.SampleType()}
}

// WriteFile renders samples to a new WAV file at path, overwriting any
// existing file, following the same container layout as the upstream
// WavWriter: a 16-byte PCM fmt chunk followed by one data chunk.
func (w *Writer) WriteFile(path string, samples []audio.SamplePaxelBundleInt) error {
	if len(samples) == 0 {
		return fmt.Errorf("wavfile: cannot write an empty sample buffer")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: create %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if err := w.Write(buf, samples); err != nil {
		return fmt.Errorf("wavfile: write %s: %w", path, err)
	}
	return buf.Flush()
}

// Write encodes samples as a complete RIFF/WAVE stream to dst.
func (w *Writer) Write(dst io.Writer, samples []audio.SamplePaxelBundleInt) error {
	const (
		channels      = 1
		fmtChunkSize  = 16
		audioFormat   = 1 // PCM
	)

	bytesPerFrame := bytesPerSample(w.SampleType)
	dataChunkSize := uint32(len(samples) * bytesPerFrame)
	riffChunkSize := 4 + (8 + uint32(fmtChunkSize)) + (8 + dataChunkSize)
	byteRate := uint32(w.SampleRate * channels * bytesPerFrame)
	blockAlign := uint16(channels * bytesPerFrame)
	bitDepth := uint16(bytesPerFrame * 8)

	if _, err := io.WriteString(dst, "RIFF"); err != nil {
		return err
	}
	if err := binary.Write(dst, binary.LittleEndian, riffChunkSize); err != nil {
		return err
	}
	if _, err := io.WriteString(dst, "WAVE"); err != nil {
		return err
	}

	if _, err := io.WriteString(dst, "fmt "); err != nil {
		return err
	}
	for _, v := range []interface{}{
		uint32(fmtChunkSize),
		uint16(audioFormat),
		uint16(channels),
		uint32(w.SampleRate),
		byteRate,
		blockAlign,
		bitDepth,
	} {
		if err := binary.Write(dst, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(dst, "data"); err != nil {
		return err
	}
	if err := binary.Write(dst, binary.LittleEndian, dataChunkSize); err != nil {
		return err
	}

	return w.writeFrames(dst, samples, bytesPerFrame)
}

func (w *Writer) writeFrames(dst io.Writer, samples []audio.SamplePaxelBundleInt, bytesPerFrame int) error {
	switch w.SampleType {
	case audio.AudioSampleTypePaxelFP:
		for _, s := range samples {
			v := float32(s) / float32(audio.MaxSamplePaxelInt)
			if err := binary.Write(dst, binary.LittleEndian, v); err != nil {
				return err
			}
		}
	case audio.AudioSampleTypeScaled:
		frame := make([]byte, 3)
		for _, s := range samples {
			v := s / 4
			writeInt24(frame, v)
			if _, err := dst.Write(frame); err != nil {
				return err
			}
		}
	case audio.AudioSampleTypePaxelBundleInt:
		for _, s := range samples {
			if err := binary.Write(dst, binary.LittleEndian, int32(s)); err != nil {
				return err
			}
		}
	case audio.AudioSampleTypeFullRange:
		for _, s := range samples {
			if err := binary.Write(dst, binary.LittleEndian, int64(s)); err != nil {
				return err
			}
		}
	default: // AudioSampleTypePaxelInt
		frame := make([]byte, 3)
		for _, s := range samples {
			writeInt24(frame, s)
			if _, err := dst.Write(frame); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeInt24 packs v's low 24 bits into frame as little-endian two's
// complement, matching the raw memcpy the original WavWriter performs on a
// 24-bit-in-32-bit sample.
func writeInt24(frame []byte, v int32) {
	frame[0] = byte(v)
	frame[1] = byte(v >> 8)
	frame[2] = byte(v >> 16)
}
