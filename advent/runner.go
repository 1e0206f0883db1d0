package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/wait"
)

// A runner resolves puzzle inputs, runs solutions and prints their answers.
type runner struct {
	solutions registry
	inputFile string
	inputDir  string
	stdin     io.Reader
	w         io.Writer
	verbose   bool

	stdinData *string
}

func (r *runner) runArgs(args []string) error {
	names, err := r.solutions.resolve(args)
	if err != nil {
		return err
	}
	return r.run(names)
}

// input returns the puzzle input for the day of the named solution.
func (r *runner) input(name string) (string, error) {
	if r.inputFile != "" {
		b, err := os.ReadFile(r.inputFile)
		return string(b), err
	}
	if r.inputDir != "" {
		day, _ := splitName(name)
		b, err := os.ReadFile(filepath.Join(r.inputDir, strconv.Itoa(day)+".txt"))
		return string(b), err
	}
	// Several solutions can share stdin, so it is read once.
	if r.stdinData == nil {
		b, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", err
		}
		s := string(b)
		r.stdinData = &s
	}
	return *r.stdinData, nil
}

func (r *runner) run(names []string) error {
	inputs := make([]string, len(names))
	for i, name := range names {
		input, err := r.input(name)
		if err != nil {
			return fmt.Errorf("reading input for %s: %s", name, err)
		}
		inputs[i] = input
	}

	start := time.Now()
	answers, err := r.solve(names, inputs)
	if err != nil {
		return err
	}
	if len(names) == 1 {
		fmt.Fprintln(r.w, answers[0])
	} else {
		for i, name := range names {
			fmt.Fprintf(r.w, "%s: %s\n", name, answers[i])
		}
	}
	if r.verbose {
		ru, err := getResourceUsage()
		if err != nil {
			return err
		}
		log.Printf("total elapsed: %s, %s", time.Since(start).Round(time.Millisecond), ru)
	}
	return nil
}

func (r *runner) solveOne(name, input string) (string, error) {
	start := time.Now()
	answer, err := r.solutions[name](input)
	if err != nil {
		return "", fmt.Errorf("%s: %s", name, err)
	}
	if r.verbose {
		log.Printf("%s: solved in %s", name, time.Since(start).Round(time.Microsecond))
	}
	return answer, nil
}

// solve runs the named solutions on their inputs. More than one solution is
// run in parallel; the first failure stops the rest from being reported.
func (r *runner) solve(names, inputs []string) ([]string, error) {
	if len(names) == 1 {
		answer, err := r.solveOne(names[0], inputs[0])
		if err != nil {
			return nil, err
		}
		return []string{answer}, nil
	}
	answers := make([]string, len(names))
	var wg wait.Group
	for i, name := range names {
		i, name := i, name
		wg.Go(func(<-chan struct{}) error {
			answer, err := r.solveOne(name, inputs[i])
			if err != nil {
				return err
			}
			answers[i] = answer
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}
