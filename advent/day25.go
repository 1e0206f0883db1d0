package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

func init() {
	register("25", day25)
}

const (
	handshakeModulus = 20201227
	handshakeSubject = 7
)

func day25(input string) (string, error) {
	cardKey, doorKey, err := parsePublicKeys(input)
	if err != nil {
		return "", err
	}
	loopSize, err := crackLoopSize(newCracker(handshakeSubject), cardKey)
	if err != nil {
		return "", err
	}
	secret := newCracker(doorKey).transform(loopSize)
	return strconv.FormatUint(secret, 10), nil
}

func parsePublicKeys(input string) (uint64, uint64, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("need 2 public keys; got %d fields", len(fields))
	}
	var keys [2]uint64
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad public key %q: %s", field, err)
		}
		keys[i] = n
	}
	return keys[0], keys[1], nil
}

// A cracker computes subject^l mod handshakeModulus for arbitrary loop sizes
// l. pows[i] holds subject^(2^i), so the result for l is the product of the
// entries selected by l's set bits.
type cracker struct {
	pows [64]uint64
}

func newCracker(subject uint64) *cracker {
	var c cracker
	c.pows[0] = subject % handshakeModulus
	for i := 1; i < len(c.pows); i++ {
		// Entries are < 2^25, so the square fits in a uint64.
		c.pows[i] = c.pows[i-1] * c.pows[i-1] % handshakeModulus
	}
	return &c
}

func (c *cracker) transform(loopSize uint64) uint64 {
	result := uint64(1)
	for loopSize != 0 {
		i := bits.TrailingZeros64(loopSize)
		loopSize &^= 1 << i
		result = result * c.pows[i] % handshakeModulus
	}
	return result
}

var errNoLoopSize = errors.New("no loop size produces the public key")

// crackLoopSize returns the smallest loop size l >= 1 such that
// c.transform(l) == publicKey.
//
// The multiplicative group mod a prime has order modulus-1, so powers repeat
// with a period dividing that; if nothing up to it matches, nothing will.
func crackLoopSize(c *cracker, publicKey uint64) (uint64, error) {
	for l := uint64(1); l < handshakeModulus; l++ {
		if c.transform(l) == publicKey {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%d: %w", publicKey, errNoLoopSize)
}
