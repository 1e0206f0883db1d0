package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	var (
		inputFile  = flag.String("input", "", "Read puzzle input from `file` (default: configured inputdir, then stdin)")
		configFile = flag.String("config", "", "INI config `file` (default: $HOME/.adventrc)")
		verbose    = flag.Bool("v", false, "Log timing and resource usage to stderr")
		profile    = flag.String("profile", "", "Write a wall-clock pprof profile to `file`")
		interact   = flag.Bool("i", false, "Read solution names from an interactive prompt")
	)
	flag.Parse()

	conf, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	r := &runner{
		solutions: solutions,
		inputFile: *inputFile,
		inputDir:  conf.inputDir,
		stdin:     os.Stdin,
		w:         os.Stdout,
		verbose:   *verbose,
	}
	run := func() error { return r.runArgs(flag.Args()) }
	if *interact {
		run = func() error { return repl(r, conf.historyFile) }
	}
	if err := profiled(*profile, run); err != nil {
		log.Fatal(err)
	}
}

// profiled calls fn, writing a wall-clock profile of the call to
// profileFile if it is non-empty.
func profiled(profileFile string, fn func() error) error {
	if profileFile == "" {
		return fn()
	}
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	fnErr := fn()
	if err := stop(); err != nil {
		f.Close()
		return fmt.Errorf("writing profile: %s", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return fnErr
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is all or one of:")
	for _, name := range solutions.names() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "With no solution, the latest day is run.")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

// A solution computes the answer for one part of one day's puzzle.
type solution func(input string) (string, error)

type registry map[string]solution

var solutions = make(registry)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // validate
	solutions[name] = fn
}

func (reg registry) names() []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// latest returns the solutions for the highest registered day.
func (reg registry) latest() []string {
	var latest []string
	maxDay := -1
	for _, name := range reg.names() {
		day, _ := splitName(name)
		if day > maxDay {
			maxDay = day
			latest = latest[:0]
		}
		latest = append(latest, name)
	}
	return latest
}

var errUnknownSolution = errors.New("unknown solution")

// resolve expands command-line solution arguments into registered names.
func (reg registry) resolve(args []string) ([]string, error) {
	if len(args) == 0 {
		return reg.latest(), nil
	}
	if len(args) == 1 && args[0] == "all" {
		return reg.names(), nil
	}
	for _, name := range args {
		if _, ok := reg[name]; !ok {
			return nil, fmt.Errorf("%w %q (have %s)",
				errUnknownSolution, name, strings.Join(reg.names(), ", "))
		}
	}
	return args, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
