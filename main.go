package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrdg/paxelhz/audio"
	"github.com/mrdg/paxelhz/envelopeyaml"
	"github.com/mrdg/paxelhz/playback"
	"github.com/mrdg/paxelhz/wavfile"
)

func main() {
	var (
		input      = flag.String("f", "", "path to an audio fragment YAML file")
		output     = flag.String("o", "out.wav", "path to write the rendered WAV file")
		sampleRate = flag.Int("s", audio.DefaultSampleRate, "sample rate in Hz")
		normalize  = flag.Bool("n", false, "auto-normalize the mix by ceil(log2(partials)) bits")
		play       = flag.Bool("play", false, "play the render through the default audio device instead of writing a file")
		interact   = flag.Bool("i", false, "start an interactive console instead of a single render")
	)
	flag.Parse()

	cfg := audio.NewConfig()
	if err := cfg.SetSampleRate(*sampleRate); err != nil {
		log.Fatal(err)
	}
	if err := cfg.SetAutoNormalize(*normalize); err != nil {
		log.Fatal(err)
	}

	env := &env{config: cfg}

	if *interact {
		if err := repl(env); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	if *input == "" {
		log.Fatal("missing -f: path to an audio fragment YAML file")
	}

	samples, err := renderFragmentFile(env, *input)
	if err != nil {
		log.Fatal(err)
	}

	if *play {
		player, err := playback.NewPlayer(samples, cfg.SampleRate())
		if err != nil {
			log.Fatal(err)
		}
		if err := player.Play(); err != nil {
			log.Fatal(err)
		}
		return
	}

	w := wavfile.NewWriter(cfg)
	if err := w.WriteFile(*output, samples); err != nil {
		log.Fatal(err)
	}
}

func renderFragmentFile(env *env, path string) ([]audio.SamplePaxelBundleInt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fragment, err := envelopeyaml.Parse(data)
	if err != nil {
		return nil, err
	}
	return env.renderFragment(fragment)
}
