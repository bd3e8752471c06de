// Package glitch corrupts text for the transient glitch overlay.
package glitch

import (
	"math/rand/v2"
	"strings"
)

// Alphabet is the fixed set of corruption symbols.
const Alphabet = "█▓▒░■□▪▫"

// DefaultProbability is the per-rune substitution probability.
const DefaultProbability = 0.6

var symbols = []rune(Alphabet)

// Source is the randomness the renderer draws from.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Default draws from the math/rand/v2 global generator.
var Default Source = globalSource{}

// Render replaces each rune of text, independently with probability p, by a
// uniformly chosen symbol from Alphabet. The output has as many runes as text.
func Render(text string, p float64, src Source) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if src.Float64() < p {
			sb.WriteRune(symbols[src.IntN(len(symbols))])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
