// Package matcher filters and ranks wardrobe items against weather.
package matcher

import (
	"sort"
	"strings"
	"time"

	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// Temperature band thresholds in Celsius.
const (
	ColdBelow = 15.0
	HotAbove  = 25.0
)

// Keyword tables for temperature banding.
var (
	warmKeywords  = []string{"jacket", "coat", "sweater", "long", "warm", "boot"}
	lightKeywords = []string{"shorts", "short", "tank", "light", "sandal", "summer"}
)

// FilterBySeason keeps items wearable in the calendar season of now.
func FilterBySeason(items []*wardrobe.Item, now time.Time) []*wardrobe.Item {
	season := wardrobe.SeasonForMonth(now.Month())

	out := make([]*wardrobe.Item, 0, len(items))
	for _, item := range items {
		if item.WearableIn(season) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByTemperature keeps items suited to the given temperature. Moderate
// weather (15-25 inclusive) passes everything through.
func FilterByTemperature(items []*wardrobe.Item, temp float64) []*wardrobe.Item {
	if temp >= ColdBelow && temp <= HotAbove {
		return items
	}

	out := make([]*wardrobe.Item, 0, len(items))
	for _, item := range items {
		if temp < ColdBelow {
			if suitsCold(item) {
				out = append(out, item)
			}
		} else if suitsHot(item) {
			out = append(out, item)
		}
	}
	return out
}

func suitsCold(item *wardrobe.Item) bool {
	if item.Category == wardrobe.CategoryOuterwear || item.Category == wardrobe.CategoryAccessories {
		return true
	}
	if hasAnyKeyword(strings.ToLower(item.Notes), warmKeywords) {
		return true
	}
	return item.HasSeason(wardrobe.SeasonWinter) || item.HasSeason(wardrobe.SeasonFall)
}

func suitsHot(item *wardrobe.Item) bool {
	notes := strings.ToLower(item.Notes)
	category := strings.ToLower(string(item.Category))
	for _, keyword := range lightKeywords {
		if strings.Contains(notes, keyword) || strings.Contains(category, keyword) {
			return true
		}
	}
	return item.HasSeason(wardrobe.SeasonSummer)
}

// FilterByCondition keeps items suited to the weather condition. The rain and
// clear branches are intentionally permissive: they surface waterproof and
// sun-appropriate items first through ordering elsewhere but exclude nothing.
func FilterByCondition(items []*wardrobe.Item, condition weather.Condition) []*wardrobe.Item {
	cond := strings.ToLower(string(condition))

	out := make([]*wardrobe.Item, 0, len(items))
	for _, item := range items {
		if suitsCondition(item, cond) {
			out = append(out, item)
		}
	}
	return out
}

func suitsCondition(item *wardrobe.Item, cond string) bool {
	notes := strings.ToLower(item.Notes)

	if strings.Contains(cond, "rain") || strings.Contains(cond, "drizzle") {
		// Everything passes; waterproof keywords are advisory only.
		return true
	}

	if strings.Contains(cond, "snow") {
		winterKeywords := []string{"winter", "warm", "boot", "coat", "jacket", "snow"}
		if hasAnyKeyword(notes, winterKeywords) {
			return true
		}
		return item.HasSeason(wardrobe.SeasonWinter) || item.Category == wardrobe.CategoryOuterwear
	}

	// Clear/sunny and anything unrecognized pass everything.
	return true
}

func hasAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// Filter narrows items by optional category and optional weather snapshot.
// Without weather it filters by category only; with weather it applies
// season, temperature, and condition stages in order.
func Filter(items []*wardrobe.Item, snapshot *weather.Snapshot, category wardrobe.Category, now time.Time) []*wardrobe.Item {
	filtered := items
	if category != "" {
		byCategory := make([]*wardrobe.Item, 0, len(filtered))
		for _, item := range filtered {
			if item.Category == category {
				byCategory = append(byCategory, item)
			}
		}
		filtered = byCategory
	}

	if snapshot == nil {
		return filtered
	}

	filtered = FilterBySeason(filtered, now)
	filtered = FilterByTemperature(filtered, snapshot.Temp)
	filtered = FilterByCondition(filtered, snapshot.Condition)
	return filtered
}

// SortByWearHistory orders items to surface the least-worn first: never-worn
// items lead (newest first), then ascending wear count, ties broken by oldest
// last-worn. A worn item with no recorded last-worn date sorts before one
// that has a date, for stability.
func SortByWearHistory(items []*wardrobe.Item) []*wardrobe.Item {
	sorted := append([]*wardrobe.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessByWearHistory(sorted[i], sorted[j])
	})
	return sorted
}

func lessByWearHistory(a, b *wardrobe.Item) bool {
	if a.WearCount == 0 && b.WearCount > 0 {
		return true
	}
	if a.WearCount > 0 && b.WearCount == 0 {
		return false
	}

	if a.WearCount == 0 && b.WearCount == 0 {
		return a.CreatedAt.After(b.CreatedAt)
	}

	if a.WearCount != b.WearCount {
		return a.WearCount < b.WearCount
	}

	if a.LastWorn != nil && b.LastWorn != nil {
		return a.LastWorn.Before(*b.LastWorn)
	}
	if a.LastWorn == nil && b.LastWorn != nil {
		return true
	}
	return false
}

// WeatherAppropriate returns the filtered candidate pool for outfit building,
// ranked by wear history.
func WeatherAppropriate(items []*wardrobe.Item, snapshot *weather.Snapshot, category wardrobe.Category, now time.Time) []*wardrobe.Item {
	return SortByWearHistory(Filter(items, snapshot, category, now))
}
