// Package colormatch scores sets of color labels for aesthetic compatibility.
//
// The model is deliberately heuristic: labels are normalized to a small set of
// base colors by substring match, and pairs are scored against fixed
// complementary/analogous/clashing tables. No color-science model is involved.
package colormatch

import "strings"

// neutralColors match with everything and never clash.
var neutralColors = []string{
	"black", "white", "gray", "grey", "beige", "cream", "tan",
	"brown", "navy", "denim", "khaki", "ivory", "charcoal",
}

// primaryColors are the recognized base hues, checked after neutrals.
var primaryColors = []string{
	"red", "blue", "yellow", "green", "orange", "purple", "pink",
}

// complementaryColors are opposite on the color wheel.
var complementaryColors = map[string][]string{
	"red":    {"green", "teal", "turquoise"},
	"blue":   {"orange", "coral", "peach"},
	"yellow": {"purple", "violet", "lavender"},
	"green":  {"red", "pink", "magenta"},
	"orange": {"blue", "navy", "cyan"},
	"purple": {"yellow", "gold", "lime"},
	"pink":   {"green", "mint", "olive"},
}

// analogousColors are adjacent on the color wheel.
var analogousColors = map[string][]string{
	"red":    {"orange", "pink", "burgundy", "coral"},
	"blue":   {"purple", "teal", "cyan", "navy"},
	"yellow": {"orange", "gold", "lime", "cream"},
	"green":  {"teal", "lime", "olive", "mint"},
	"orange": {"red", "coral", "peach", "gold"},
	"purple": {"pink", "blue", "lavender", "violet"},
	"pink":   {"red", "coral", "rose", "magenta"},
}

// clashingColors typically fight each other.
var clashingColors = map[string][]string{
	"red":    {"pink", "orange", "purple"},
	"green":  {"blue", "red"},
	"yellow": {"green", "orange"},
	"purple": {"red", "green"},
	"orange": {"red", "purple"},
	"pink":   {"red", "orange", "yellow"},
}

// neutralSet is the lookup form of neutralColors, built at init.
var neutralSet = func() map[string]bool {
	set := make(map[string]bool, len(neutralColors))
	for _, c := range neutralColors {
		set[c] = true
	}
	return set
}()

// Pair scoring weights.
const (
	clashPenalty       = 30
	complementaryBonus = 10
	analogousBonus     = 5
	monochromaticBonus = 5
)

// BaseColor normalizes a free-text color label to a canonical base color.
// Neutrals win over primary hues; unmatched labels pass through verbatim.
func BaseColor(label string) string {
	color := strings.ToLower(strings.TrimSpace(label))

	for _, neutral := range neutralColors {
		if strings.Contains(color, neutral) {
			return neutral
		}
	}

	for _, primary := range primaryColors {
		if strings.Contains(color, primary) {
			return primary
		}
	}

	return color
}

// IsNeutral reports whether a color label normalizes to a neutral.
func IsNeutral(label string) bool {
	return neutralSet[BaseColor(label)]
}

// Complementary reports whether two labels sit opposite on the color wheel.
func Complementary(a, b string) bool {
	return inRelation(complementaryColors, a, b)
}

// Analogous reports whether two labels sit adjacent on the color wheel.
func Analogous(a, b string) bool {
	return inRelation(analogousColors, a, b)
}

// Clash reports whether two labels clash. Neutrals never clash.
func Clash(a, b string) bool {
	if IsNeutral(a) || IsNeutral(b) {
		return false
	}
	return inRelation(clashingColors, a, b)
}

// Monochromatic reports whether two labels share the same base color.
func Monochromatic(a, b string) bool {
	return BaseColor(a) == BaseColor(b)
}

func inRelation(table map[string][]string, a, b string) bool {
	baseA := BaseColor(a)
	baseB := BaseColor(b)
	return contains(table[baseA], baseB) || contains(table[baseB], baseA)
}

func contains(list []string, val string) bool {
	for _, v := range list {
		if v == val {
			return true
		}
	}
	return false
}

// Analysis is the harmony verdict for a set of colors.
type Analysis struct {
	Harmonious bool
	Message    string
	Suggestion string // empty when no suggestion applies
	Score      int    // 0-100
}

// Verdict messages, in precedence order.
const (
	msgNoColors      = "No colors to analyze"
	msgSingleColor   = "Single color - looks great!"
	msgClash         = "These colors might clash"
	msgAllNeutral    = "Classic neutral combination!"
	msgComplementary = "Great complementary color match!"
	msgHarmonious    = "Harmonious color combination!"
	msgNeutralMix    = "Good mix with neutrals!"
	msgDefault       = "Nice color combination!"

	suggestionNeutral = "Try pairing with neutral colors like black, white, or beige"
)

// Analyze scores a list of color labels for harmony. It is pure and
// deterministic: the pairwise sum does not depend on input order, and exactly
// one message is returned per the precedence clash > all-neutral >
// complementary > analogous/monochromatic > any-neutral > default.
func Analyze(colors []string) Analysis {
	if len(colors) == 0 {
		return Analysis{Harmonious: true, Message: msgNoColors, Score: 100}
	}
	if len(colors) == 1 {
		return Analysis{Harmonious: true, Message: msgSingleColor, Score: 100}
	}

	score := 100
	clashCount := 0
	neutralCount := 0
	complementaryCount := 0
	analogousCount := 0
	monochromaticCount := 0

	for _, color := range colors {
		if IsNeutral(color) {
			neutralCount++
		}
	}

	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			a, b := colors[i], colors[j]
			switch {
			case Clash(a, b):
				clashCount++
				score -= clashPenalty
			case Complementary(a, b):
				complementaryCount++
				score += complementaryBonus
			case Analogous(a, b):
				analogousCount++
				score += analogousBonus
			case Monochromatic(a, b):
				monochromaticCount++
				score += monochromaticBonus
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	switch {
	case clashCount > 0:
		return Analysis{
			Harmonious: false,
			Message:    msgClash,
			Suggestion: suggestionNeutral,
			Score:      score,
		}
	case neutralCount == len(colors):
		return Analysis{Harmonious: true, Message: msgAllNeutral, Score: score}
	case complementaryCount > 0:
		return Analysis{Harmonious: true, Message: msgComplementary, Score: score}
	case analogousCount > 0 || monochromaticCount > 0:
		return Analysis{Harmonious: true, Message: msgHarmonious, Score: score}
	case neutralCount > 0:
		return Analysis{Harmonious: true, Message: msgNeutralMix, Score: score}
	default:
		return Analysis{Harmonious: true, Message: msgDefault, Score: score}
	}
}

// Suggest returns up to five colors that would pair well with the given
// labels: a few neutrals plus complementary and analogous candidates, minus
// colors already present.
func Suggest(colors []string) []string {
	if len(colors) == 0 {
		return append([]string(nil), neutralColors[:3]...)
	}

	seen := make(map[string]bool)
	var suggestions []string
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			suggestions = append(suggestions, c)
		}
	}

	for _, color := range colors {
		base := BaseColor(color)

		for _, neutral := range neutralColors[:3] {
			add(neutral)
		}
		for _, c := range complementaryColors[base] {
			add(c)
		}
		analogous := analogousColors[base]
		if len(analogous) > 2 {
			analogous = analogous[:2]
		}
		for _, c := range analogous {
			add(c)
		}
	}

	present := make(map[string]bool, len(colors))
	for _, color := range colors {
		present[BaseColor(color)] = true
	}

	out := suggestions[:0]
	for _, c := range suggestions {
		if !present[c] {
			out = append(out, c)
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
