// Package playback streams a rendered buffer out through the system's
// default audio device, for quick auditioning without writing a WAV file
// first.
package playback

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/mrdg/paxelhz/audio"
)

const bufferSize = 512

// Player streams one mono render out through a portaudio stream,
// duplicated to both output channels.
type Player struct {
	samples []float32
	pos     int
	stream  *portaudio.Stream
	done    chan struct{}
}

// NewPlayer opens the default output device at sampleRate and prepares it
// to stream samples, a buffer of 24-bit-in-32-bit PCM values normalised to
// [-1.0, 1.0] for portaudio's float32 callback.
func NewPlayer(samples []audio.SamplePaxelBundleInt, sampleRate int) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("playback: initialize portaudio: %w", err)
	}

	p := &Player{
		samples: normalize(samples),
		done:    make(chan struct{}),
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(sampleRate), bufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("playback: open stream: %w", err)
	}
	p.stream = stream
	return p, nil
}

func normalize(samples []audio.SamplePaxelBundleInt) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / float32(audio.MaxSamplePaxelInt)
	}
	return out
}

// Play starts the stream and blocks until the render has finished playing.
func (p *Player) Play() error {
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("playback: start stream: %w", err)
	}
	<-p.done
	return p.Close()
}

// Close stops the stream and releases portaudio resources.
func (p *Player) Close() error {
	if err := p.stream.Close(); err != nil {
		return err
	}
	portaudio.Terminate()
	return nil
}

// process is the portaudio callback: it fills out with the next stretch of
// samples, duplicated to both channels, and signals completion once the
// buffer is exhausted.
func (p *Player) process(out [][]float32) {
	for ch := range out {
		for i := range out[ch] {
			if p.pos+i >= len(p.samples) {
				out[ch][i] = 0
				continue
			}
			out[ch][i] = p.samples[p.pos+i]
		}
	}

	p.pos += len(out[0])
	if p.pos >= len(p.samples) {
		select {
		case <-p.done:
		default:
			close(p.done)
		}
	}
}
