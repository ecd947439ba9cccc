package dub

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	type test struct {
		input string
		want  Command
	}
	tests := []test{
		{
			input: "play",
			want: Command{
				Name: Identifier("play"),
			},
		},
		{
			input: "set sampleRate 44100",
			want: Command{
				Name: Identifier("set"),
				Args: []Node{Identifier("sampleRate"), Int(44100)},
			},
		},
		{
			input: "set autoNormalize true",
			want: Command{
				Name: Identifier("set"),
				Args: []Node{Identifier("autoNormalize"), Identifier("true")},
			},
		},
		{
			input: "get sampleRate",
			want: Command{
				Name: Identifier("get"),
				Args: []Node{Identifier("sampleRate")},
			},
		},
		{
			input: `load "a/file.wav"`,
			want: Command{
				Name: Identifier("load"),
				Args: []Node{String("a/file.wav")},
			},
		},
		{
			input: `load ""`,
			want: Command{
				Name: Identifier("load"),
				Args: []Node{String("")},
			},
		},
		{
			input: "set gain 0.5",
			want: Command{
				Name: Identifier("set"),
				Args: []Node{Identifier("gain"), Float(0.5)},
			},
		},
	}
	for _, test := range tests {
		t.Log(test.input)
		got, err := Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("\nwant: %+v\ngot:  %+v", test.want, got)
		}
	}
}

func TestParseRejectsNonIdentifierCommandName(t *testing.T) {
	if _, err := Parse("42 1 2"); err == nil {
		t.Fatal("expected error when the command name is not an identifier")
	}
}
