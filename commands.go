package main

import (
	"fmt"
	"strconv"

	"github.com/mrdg/paxelhz/audio"
	"github.com/mrdg/paxelhz/envelopeyaml"
	"github.com/mrdg/paxelhz/playback"
	"github.com/mrdg/paxelhz/wavfile"
)

// env holds the console's working state: render configuration and the last
// fragment that was loaded, so subsequent commands can act on it without
// repeating the filename.
type env struct {
	config   *audio.Config
	fragment *envelopeyaml.Fragment
}

// renderFragment builds a Session from a parsed fragment and renders it to
// a composite PCM buffer.
func (e *env) renderFragment(fragment envelopeyaml.Fragment) ([]audio.SamplePaxelBundleInt, error) {
	session := audio.NewSession(e.config)
	for _, p := range fragment.Partials {
		labels, err := audio.NewLabelSet(p.Labels)
		if err != nil {
			return nil, err
		}
		session.AddPartial(audio.Partial{
			Envelopes:        p.Envelopes,
			StartTimeSeconds: fragment.StartTimeSeconds,
			Labels:           labels,
		})
	}
	return session.Render()
}

type command struct {
	name string
	run  func(e *env, args []string) (string, error)
	// arity is the exact number of arguments required; -n means at least n.
	arity int
}

var commands = []command{
	{"load", loadCommand, 1},
	{"render", renderCommand, 1},
	{"play", playCommand, 0},
	{"set", setCommand, 2},
	{"get", getCommand, 1},
}

func loadCommand(e *env, args []string) (string, error) {
	data, err := readFile(args[0])
	if err != nil {
		return "", err
	}
	fragment, err := envelopeyaml.Parse(data)
	if err != nil {
		return "", err
	}
	e.fragment = &fragment
	return fmt.Sprintf("loaded %d partial(s)", len(fragment.Partials)), nil
}

func renderCommand(e *env, args []string) (string, error) {
	if e.fragment == nil {
		return "", fmt.Errorf("no fragment loaded, run load <file> first")
	}
	samples, err := e.renderFragment(*e.fragment)
	if err != nil {
		return "", err
	}
	w := wavfile.NewWriter(e.config)
	if err := w.WriteFile(args[0], samples); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %d samples to %s", len(samples), args[0]), nil
}

func playCommand(e *env, args []string) (string, error) {
	if e.fragment == nil {
		return "", fmt.Errorf("no fragment loaded, run load <file> first")
	}
	samples, err := e.renderFragment(*e.fragment)
	if err != nil {
		return "", err
	}
	player, err := playback.NewPlayer(samples, e.config.SampleRate())
	if err != nil {
		return "", err
	}
	if err := player.Play(); err != nil {
		return "", err
	}
	return "", nil
}

func setCommand(e *env, args []string) (string, error) {
	key, value := args[0], args[1]
	switch key {
	case "sampleRate":
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("sampleRate must be an integer: %w", err)
		}
		return "", e.config.SetSampleRate(n)
	case "autoNormalize":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("autoNormalize must be a bool: %w", err)
		}
		return "", e.config.SetAutoNormalize(b)
	default:
		return "", fmt.Errorf("unknown property: %s", key)
	}
}

func getCommand(e *env, args []string) (string, error) {
	switch args[0] {
	case "sampleRate":
		return fmt.Sprint(e.config.SampleRate()), nil
	case "autoNormalize":
		return fmt.Sprint(e.config.AutoNormalize()), nil
	default:
		return "", fmt.Errorf("unknown property: %s", args[0])
	}
}
