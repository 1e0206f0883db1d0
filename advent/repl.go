package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

// repl reads lines of solution names from a prompt and runs them, until EOF.
// Errors are reported and the prompt continues.
func repl(r *runner, historyFile string) error {
	if r.inputFile == "" && r.inputDir == "" {
		return errors.New("interactive mode needs -input or an inputdir in the config")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return fmt.Errorf("readline error: %s", err)
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if len(args) == 1 && args[0] == "help" {
			fmt.Fprintln(r.w, strings.Join(r.solutions.names(), " "))
			continue
		}
		if err := r.runArgs(args); err != nil {
			log.Println(err)
		}
	}
}
