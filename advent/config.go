package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

const configSection = "advent"

type config struct {
	inputDir    string // holds <day>.txt input files
	historyFile string // interactive prompt history
}

// loadConfig reads the [advent] section of an INI file. If path is empty,
// $HOME/.adventrc is used and may be absent. Relative paths in the file are
// resolved against the file's directory.
func loadConfig(path string) (*config, error) {
	conf := &config{
		historyFile: filepath.Join(os.TempDir(), "advent-history"),
	}
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return conf, nil
		}
		path = filepath.Join(home, ".adventrc")
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return conf, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	dir := filepath.Dir(path)
	if v, ok := file.Get(configSection, "inputdir"); ok && v != "" {
		conf.inputDir = resolvePath(dir, v)
	}
	if v, ok := file.Get(configSection, "history"); ok && v != "" {
		conf.historyFile = resolvePath(dir, v)
	}
	return conf, nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
