package repeat

import (
	"sort"
	"strings"
	"time"

	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/wardrobe"
)

// Scoring weights for composite outfit similarity.
const (
	itemOverlapWeight   = 50.0
	colorOverlapWeight  = 25.0
	categoryMatchWeight = 25.0

	colorOverlapFloor = 0.40
	minSimilarScore   = 20.0
	minColorScore     = 30.0
)

// SimilarOutfit pairs a historical outfit with its similarity score against a
// reference.
type SimilarOutfit struct {
	Outfit *outfit.Outfit
	Score  float64
	Reason string
}

// colorsOf collects the distinct lowercase colors of an outfit's items.
func colorsOf(o *outfit.Outfit, items []*wardrobe.Item) []string {
	seen := make(map[string]bool)
	var colors []string
	for _, id := range o.ItemIDs {
		item := findItem(items, id)
		if item == nil {
			continue
		}
		color := strings.ToLower(item.Color)
		if color != "" && !seen[color] {
			seen[color] = true
			colors = append(colors, color)
		}
	}
	return colors
}

// categoriesOf collects the distinct categories of an outfit's items.
func categoriesOf(o *outfit.Outfit, items []*wardrobe.Item) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, id := range o.ItemIDs {
		item := findItem(items, id)
		if item == nil {
			continue
		}
		cat := string(item.Category)
		if !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	return cats
}

// FindSimilar scores history against a reference outfit on shared items,
// shared colors, and matching category structure, returning outfits scoring
// above 20 in descending score order. The reference's own date is excluded.
func FindSimilar(reference *outfit.Outfit, history []*outfit.Outfit, items []*wardrobe.Item, limit int) []SimilarOutfit {
	refDate := outfit.NormalizeDate(reference.Date)
	refColors := colorsOf(reference, items)
	refCats := categoriesOf(reference, items)

	var results []SimilarOutfit
	for _, o := range history {
		if len(o.ItemIDs) == 0 || outfit.NormalizeDate(o.Date).Equal(refDate) {
			continue
		}

		score := itemOverlapWeight * Jaccard(reference.ItemIDs, o.ItemIDs)

		// Color similarity is pass/fail: enough palette overlap earns the
		// full bonus.
		if Jaccard(refColors, colorsOf(o, items)) >= colorOverlapFloor {
			score += colorOverlapWeight
		}

		reason := "shared items"
		if sameItemSet(refCats, categoriesOf(o, items)) {
			score += categoryMatchWeight
			reason = "same structure and shared items"
		}

		if score > minSimilarScore {
			results = append(results, SimilarOutfit{Outfit: o, Score: score, Reason: reason})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return truncate(results, limit)
}

// FindByColors returns outfits whose color palette overlaps the given colors,
// scored purely on color Jaccard and keeping scores above 30.
func FindByColors(colors []string, history []*outfit.Outfit, items []*wardrobe.Item, limit int) []SimilarOutfit {
	wanted := make([]string, len(colors))
	for i, c := range colors {
		wanted[i] = strings.ToLower(c)
	}

	var results []SimilarOutfit
	for _, o := range history {
		if len(o.ItemIDs) == 0 {
			continue
		}
		score := 100.0 * Jaccard(wanted, colorsOf(o, items))
		if score > minColorScore {
			results = append(results, SimilarOutfit{Outfit: o, Score: score, Reason: "matching colors"})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return truncate(results, limit)
}

// FindByStructure returns outfits built from exactly the given category set,
// most recent first.
func FindByStructure(categories []wardrobe.Category, history []*outfit.Outfit, items []*wardrobe.Item, limit int) []SimilarOutfit {
	wanted := make([]string, len(categories))
	for i, c := range categories {
		wanted[i] = string(c)
	}

	var results []SimilarOutfit
	for _, o := range history {
		if len(o.ItemIDs) == 0 {
			continue
		}
		if sameItemSet(wanted, categoriesOf(o, items)) {
			results = append(results, SimilarOutfit{Outfit: o, Score: 100, Reason: "same category structure"})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Outfit.Date.After(results[j].Outfit.Date)
	})
	return truncate(results, limit)
}

// RecentOutfits returns outfits worn within the given number of days before
// the reference date, most recent first.
func RecentOutfits(history []*outfit.Outfit, reference time.Time, days int) []*outfit.Outfit {
	target := outfit.NormalizeDate(reference)
	var recent []*outfit.Outfit
	for _, o := range history {
		gap := outfit.DaysBetween(target, o.Date)
		if gap > 0 && gap <= days {
			recent = append(recent, o)
		}
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	return recent
}

func truncate(results []SimilarOutfit, limit int) []SimilarOutfit {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
