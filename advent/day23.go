package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("23a", day23a)
	register("23b", day23b)
}

func day23a(input string) (string, error) {
	r, err := parseCupRing(input, 0)
	if err != nil {
		return "", err
	}
	r.moves(100)
	return r.labelsAfterOne(), nil
}

func day23b(input string) (string, error) {
	r, err := parseCupRing(input, 1_000_000)
	if err != nil {
		return "", err
	}
	r.moves(10_000_000)
	a := r.next[1]
	b := r.next[a]
	return strconv.FormatInt(int64(a)*int64(b), 10), nil
}

// A cupRing is a circle of cups labeled 1 through n. It is stored as a
// successor table: next[label] is the label of the cup clockwise of label.
// next[0] is unused.
type cupRing struct {
	next    []int
	first   int // first cup of the input, for display
	current int
}

// parseCupRing reads a line of digits naming the first cups in clockwise
// order. If size is larger than the number of digits, the ring is extended
// with cups labeled in increasing order up to size.
func parseCupRing(input string, size int) (*cupRing, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("no cups")
	}
	labels := make([]int, 0, max(len(input), size))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c < '1' || c > '9' {
			return nil, fmt.Errorf("bad cup label %q", c)
		}
		labels = append(labels, int(c-'0'))
	}
	for len(labels) < size {
		labels = append(labels, len(labels)+1)
	}
	return newCupRing(labels)
}

func newCupRing(labels []int) (*cupRing, error) {
	if len(labels) < 4 {
		return nil, fmt.Errorf("need at least 4 cups; got %d", len(labels))
	}
	r := &cupRing{
		next:    make([]int, len(labels)+1),
		first:   labels[0],
		current: labels[0],
	}
	for i, label := range labels {
		if label < 1 || label > len(labels) {
			return nil, fmt.Errorf("cup label %d out of range 1-%d", label, len(labels))
		}
		if r.next[label] != 0 {
			return nil, fmt.Errorf("duplicate cup label %d", label)
		}
		r.next[label] = labels[(i+1)%len(labels)]
	}
	return r, nil
}

func (r *cupRing) size() int { return len(r.next) - 1 }

func (r *cupRing) moves(n int) {
	for i := 0; i < n; i++ {
		r.move()
	}
}

// move picks up the three cups after the current cup, puts them after the
// destination cup and advances the current cup by one.
func (r *cupRing) move() {
	p0 := r.next[r.current]
	p1 := r.next[p0]
	p2 := r.next[p1]
	r.next[r.current] = r.next[p2]

	dest := r.current
	for {
		dest--
		if dest < 1 {
			dest = r.size()
		}
		if dest != p0 && dest != p1 && dest != p2 {
			break
		}
	}
	r.next[p2] = r.next[dest]
	r.next[dest] = p0

	r.current = r.next[r.current]
}

func (r *cupRing) labelsAfterOne() string {
	var b strings.Builder
	for label := r.next[1]; label != 1; label = r.next[label] {
		b.WriteString(strconv.Itoa(label))
	}
	return b.String()
}

func (r *cupRing) String() string {
	var b strings.Builder
	label := r.first
	for i := 0; i < r.size(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if label == r.current {
			fmt.Fprintf(&b, "(%d)", label)
		} else {
			b.WriteString(strconv.Itoa(label))
		}
		label = r.next[label]
	}
	return b.String()
}
