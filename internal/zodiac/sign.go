// Package zodiac holds the fixed set of signs a horoscope can be drawn for.
package zodiac

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Sign is one of the twelve zodiac sign names, in French.
type Sign string

const (
	Sagittaire Sign = "Sagittaire"
	Capricorne Sign = "Capricorne"
	Verseau    Sign = "Verseau"
	Poissons   Sign = "Poissons"
	Belier     Sign = "Bélier"
	Taureau    Sign = "Taureau"
	Gemeaux    Sign = "Gémeaux"
	Cancer     Sign = "Cancer"
	Lion       Sign = "Lion"
	Vierge     Sign = "Vierge"
	Balance    Sign = "Balance"
	Scorpion   Sign = "Scorpion"
)

// ErrUnknownSign is returned by Parse for names outside the set.
var ErrUnknownSign = errors.New("unknown zodiac sign")

var signs = [...]Sign{
	Sagittaire, Capricorne, Verseau, Poissons, Belier, Taureau,
	Gemeaux, Cancer, Lion, Vierge, Balance, Scorpion,
}

// Source is the subset of *rand.Rand used to draw a sign.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// All returns the twelve signs in their canonical order. The returned slice is
// a copy.
func All() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs[:])
	return out
}

// Pick draws one sign uniformly from All. A nil src uses the global
// math/rand/v2 generator.
func Pick(src Source) Sign {
	if src == nil {
		src = globalSource{}
	}
	return signs[src.IntN(len(signs))]
}

// Parse returns the Sign matching name, ignoring case and surrounding space.
func Parse(name string) (Sign, error) {
	name = strings.TrimSpace(name)
	for _, s := range signs {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSign, name)
}

func (s Sign) String() string { return string(s) }
