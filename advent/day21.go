package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("21a", day21a)
	register("21b", day21b)
}

func day21a(input string) (string, error) {
	foods, err := parseFoods(input)
	if err != nil {
		return "", err
	}
	candidates := allergenCandidates(foods)
	unsafe := make(map[string]bool)
	for _, ings := range candidates {
		for ing := range ings {
			unsafe[ing] = true
		}
	}
	var n int
	for _, f := range foods {
		for _, ing := range f.ingredients {
			if !unsafe[ing] {
				n++
			}
		}
	}
	return strconv.Itoa(n), nil
}

func day21b(input string) (string, error) {
	foods, err := parseFoods(input)
	if err != nil {
		return "", err
	}
	assignment, err := resolveAllergens(allergenCandidates(foods))
	if err != nil {
		return "", err
	}
	allergens := make([]string, 0, len(assignment))
	for a := range assignment {
		allergens = append(allergens, a)
	}
	sort.Strings(allergens)
	ings := make([]string, len(allergens))
	for i, a := range allergens {
		ings[i] = assignment[a]
	}
	return strings.Join(ings, ","), nil
}

type food struct {
	ingredients []string
	allergens   []string
}

func parseFoods(input string) ([]food, error) {
	var foods []food
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f, err := parseFood(line)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, nil
}

func parseFood(line string) (food, error) {
	var f food
	ingPart, allergenPart, hasAllergens := strings.Cut(line, "(")
	f.ingredients = strings.Fields(ingPart)
	if len(f.ingredients) == 0 {
		return f, fmt.Errorf("food %q has no ingredients", line)
	}
	if !hasAllergens {
		return f, nil
	}
	list, ok := strings.CutPrefix(allergenPart, "contains ")
	if !ok || !strings.HasSuffix(list, ")") {
		return f, fmt.Errorf("bad allergen list in %q", line)
	}
	for _, a := range strings.Split(strings.TrimSuffix(list, ")"), ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			return f, fmt.Errorf("empty allergen in %q", line)
		}
		f.allergens = append(f.allergens, a)
	}
	return f, nil
}

// allergenCandidates maps each allergen to the set of ingredients that
// appear in every food listing that allergen.
func allergenCandidates(foods []food) map[string]map[string]bool {
	candidates := make(map[string]map[string]bool)
	for _, f := range foods {
		for _, a := range f.allergens {
			cur, ok := candidates[a]
			if !ok {
				cur = make(map[string]bool)
				for _, ing := range f.ingredients {
					cur[ing] = true
				}
				candidates[a] = cur
				continue
			}
			next := make(map[string]bool)
			for _, ing := range f.ingredients {
				if cur[ing] {
					next[ing] = true
				}
			}
			candidates[a] = next
		}
	}
	return candidates
}

var errAmbiguousAllergens = errors.New("allergen assignment is ambiguous")

// resolveAllergens repeatedly pins allergens that have a single candidate
// ingredient and removes that ingredient from the other allergens.
// The input map is modified.
func resolveAllergens(candidates map[string]map[string]bool) (map[string]string, error) {
	assignment := make(map[string]string)
	for len(candidates) > 0 {
		progress := false
		for a, ings := range candidates {
			if len(ings) == 0 {
				return nil, fmt.Errorf("no ingredient can contain %s", a)
			}
			if len(ings) != 1 {
				continue
			}
			var ing string
			for k := range ings {
				ing = k
			}
			assignment[a] = ing
			delete(candidates, a)
			for _, other := range candidates {
				delete(other, ing)
			}
			progress = true
		}
		if !progress {
			return nil, errAmbiguousAllergens
		}
	}
	return assignment, nil
}
