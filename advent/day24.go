package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("24a", day24a)
	register("24b", day24b)
}

func day24a(input string) (string, error) {
	black, err := flipTiles(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(black)), nil
}

func day24b(input string) (string, error) {
	black, err := flipTiles(input)
	if err != nil {
		return "", err
	}
	for i := 0; i < 100; i++ {
		black = black.step()
	}
	return strconv.Itoa(len(black)), nil
}

// A hex is a tile position in cube coordinates: x+y+z == 0 and each
// direction changes exactly two of the axes.
type hex struct {
	x, y, z int
}

func (h hex) add(h1 hex) hex {
	return hex{h.x + h1.x, h.y + h1.y, h.z + h1.z}
}

var hexDirs = map[string]hex{
	"e":  {1, -1, 0},
	"w":  {-1, 1, 0},
	"ne": {1, 0, -1},
	"sw": {-1, 0, 1},
	"nw": {0, 1, -1},
	"se": {0, -1, 1},
}

// parseHexPath follows a run of undelimited directions from the reference
// tile and returns where it ends.
func parseHexPath(s string) (hex, error) {
	var h hex
	for i := 0; i < len(s); {
		n := 1
		if s[i] == 'n' || s[i] == 's' {
			n = 2
		}
		if i+n > len(s) {
			return h, fmt.Errorf("truncated direction at end of %q", s)
		}
		d, ok := hexDirs[s[i:i+n]]
		if !ok {
			return h, fmt.Errorf("invalid direction %q in %q", s[i:i+n], s)
		}
		h = h.add(d)
		i += n
	}
	return h, nil
}

type hexSet map[hex]struct{}

func flipTiles(input string) (hexSet, error) {
	black := make(hexSet)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h, err := parseHexPath(line)
		if err != nil {
			return nil, err
		}
		if _, ok := black[h]; ok {
			delete(black, h)
		} else {
			black[h] = struct{}{}
		}
	}
	return black, nil
}

// step applies one day of the flipping rules and returns the new set of
// black tiles.
func (s hexSet) step() hexSet {
	counts := make(map[hex]int, len(s)*6)
	for h := range s {
		for _, d := range hexDirs {
			counts[h.add(d)]++
		}
	}
	next := make(hexSet, len(s))
	for h, n := range counts {
		_, black := s[h]
		if n == 2 || (black && n == 1) {
			next[h] = struct{}{}
		}
	}
	return next
}
