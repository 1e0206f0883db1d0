package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("22a", day22a)
	register("22b", day22b)
}

func day22a(input string) (string, error) {
	decks, err := parseDecks(input)
	if err != nil {
		return "", err
	}
	_, deck := playCombat(decks, highestCard)
	return strconv.Itoa(deck.score()), nil
}

func day22b(input string) (string, error) {
	decks, err := parseDecks(input)
	if err != nil {
		return "", err
	}
	_, deck := playCombat(decks, recursiveWinner)
	return strconv.Itoa(deck.score()), nil
}

// A deck is a stack of cards, top card first.
type deck []int

func (d deck) score() int {
	var score int
	for i, card := range d {
		score += (len(d) - i) * card
	}
	return score
}

func parseDecks(input string) ([]deck, error) {
	var decks []deck
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Player ") {
			if !strings.HasSuffix(line, ":") {
				return nil, fmt.Errorf("bad player header %q", line)
			}
			decks = append(decks, deck{})
			continue
		}
		if len(decks) == 0 {
			return nil, fmt.Errorf("card %q before first player header", line)
		}
		card, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad card: %s", err)
		}
		if card <= 0 {
			return nil, fmt.Errorf("card %d is not positive", card)
		}
		decks[len(decks)-1] = append(decks[len(decks)-1], card)
	}
	if len(decks) < 2 {
		return nil, fmt.Errorf("need at least 2 players; got %d", len(decks))
	}
	for i, d := range decks {
		if len(d) == 0 {
			return nil, fmt.Errorf("player %d has no cards", i+1)
		}
	}
	return decks, nil
}

// A roundWinner picks the index of the player who takes the drawn cards.
// decks holds what remains after drawing.
type roundWinner func(cards []int, decks []deck) int

// highestCard picks the highest card. Ties go to the later player.
func highestCard(cards []int, _ []deck) int {
	winner := 0
	for i, card := range cards {
		if card >= cards[winner] {
			winner = i
		}
	}
	return winner
}

func recursiveWinner(cards []int, decks []deck) int {
	for i, card := range cards {
		if len(decks[i]) < card {
			return highestCard(cards, decks)
		}
	}
	sub := make([]deck, len(decks))
	for i, d := range decks {
		sub[i] = append(deck(nil), d[:cards[i]]...)
	}
	winner, _ := playCombat(sub, recursiveWinner)
	return winner
}

// playCombat plays a game to completion and returns the winner's index and
// final deck. The decks are consumed.
//
// If a round starts in a state already seen during this game, player 0 wins
// on the spot.
func playCombat(decks []deck, pick roundWinner) (int, deck) {
	seen := make(map[string]struct{})
	cards := make([]int, len(decks))
	for {
		key := combatState(decks)
		if _, ok := seen[key]; ok {
			return 0, decks[0]
		}
		seen[key] = struct{}{}

		for i := range decks {
			cards[i] = decks[i][0]
			decks[i] = decks[i][1:]
		}
		winner := pick(cards, decks)
		// The winner's card goes first, and player 0's card takes the
		// winner's slot among the rest.
		cards[0], cards[winner] = cards[winner], cards[0]
		decks[winner] = append(decks[winner], cards...)

		for _, d := range decks {
			if len(d) == 0 {
				for i, d := range decks {
					if len(d) > 0 {
						return i, d
					}
				}
				panic("all decks empty")
			}
		}
	}
}

func combatState(decks []deck) string {
	var b strings.Builder
	for _, d := range decks {
		for _, card := range d {
			b.WriteString(strconv.Itoa(card))
			b.WriteByte(',')
		}
		b.WriteByte('|')
	}
	return b.String()
}
