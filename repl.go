package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/mrdg/paxelhz/dub"
)

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// eval parses one line of console input and dispatches it to the matching
// command, converting dub's parsed argument nodes to plain strings.
func eval(e *env, input string) (string, error) {
	cmd, err := dub.Parse(input)
	if err != nil {
		return "", err
	}
	name := string(cmd.Name)

	for _, c := range commands {
		if c.name != name {
			continue
		}
		if c.arity >= 0 && len(cmd.Args) != c.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %d, got %d", name, c.arity, len(cmd.Args))
		}
		if c.arity < 0 && len(cmd.Args) < -c.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want at least %d, got %d", name, -c.arity, len(cmd.Args))
		}
		args, err := stringArgs(cmd.Args)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		result, err := c.run(e, args)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return result, nil
	}
	return "", fmt.Errorf("unknown command: %s", name)
}

func stringArgs(nodes []dub.Node) ([]string, error) {
	args := make([]string, len(nodes))
	for i, n := range nodes {
		switch v := n.(type) {
		case dub.Identifier:
			args[i] = string(v)
		case dub.String:
			args[i] = string(v)
		case dub.Int:
			args[i] = strconv.Itoa(int(v))
		case dub.Float:
			args[i] = strconv.FormatFloat(float64(v), 'g', -1, 64)
		default:
			return nil, fmt.Errorf("unsupported argument type: %v", v)
		}
	}
	return args, nil
}

// repl runs an interactive console over stdin, evaluating one command per
// line until EOF or an interrupt.
func repl(e *env) error {
	rl, err := readline.New("paxelhz> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		if len(line) == 0 {
			continue
		}
		result, err := eval(e, line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
	}
}
