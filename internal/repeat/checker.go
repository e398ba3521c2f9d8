// Package repeat detects repetition between a candidate outfit and recent
// outfit history, and finds similar historical outfits.
package repeat

import (
	"fmt"
	"sort"
	"time"

	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/wardrobe"
)

// Kind classifies a repeat warning.
type Kind string

const (
	// KindExact means an identical item set was worn within the last 7 days.
	KindExact Kind = "exact"
	// KindSimilar means an outfit with >=70% item overlap was worn within
	// the last 7 days.
	KindSimilar Kind = "similar"
	// KindItem means at least one individual item was worn within the last
	// 3 days.
	KindItem Kind = "item"
	// KindNone means no repetition was detected.
	KindNone Kind = "none"
)

// Lookback windows in days.
const (
	exactWindow   = 7
	similarWindow = 7
	itemWindow    = 3
	recentWindow  = 14
)

// similarityThreshold is the Jaccard overlap at which two outfits count as
// similar.
const similarityThreshold = 0.70

// Warning describes repetition detected against recent outfit history.
type Warning struct {
	HasWarning    bool
	Kind          Kind
	Message       string
	DaysAgo       int
	AffectedItems []string
}

// Jaccard returns the Jaccard similarity (intersection over union) of two
// item-ID sets. It is symmetric; two empty sets score 0.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for id := range setA {
		if setB[id] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// sameItemSet reports order-independent set equality of two item lists.
func sameItemSet(a, b []string) bool {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if !setB[id] {
			return false
		}
	}
	return true
}

// Check warns when a candidate outfit repeats recent history. Checks run in
// priority order: exact match within 7 days, then >=70% similarity within 7
// days, then individual items within 3 days. Outfits dated on the target date
// itself never count.
func Check(candidate []string, date time.Time, history []*outfit.Outfit, items []*wardrobe.Item) Warning {
	if len(candidate) == 0 {
		return Warning{Kind: KindNone}
	}

	target := outfit.NormalizeDate(date)

	// Most recent first, target date and empty outfits excluded.
	sorted := make([]*outfit.Outfit, 0, len(history))
	for _, o := range history {
		if outfit.NormalizeDate(o.Date).Equal(target) || len(o.ItemIDs) == 0 {
			continue
		}
		sorted = append(sorted, o)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var lastWeek []*outfit.Outfit
	for _, o := range sorted {
		if outfit.DaysBetween(target, o.Date) <= exactWindow {
			lastWeek = append(lastWeek, o)
		}
	}

	for _, o := range lastWeek {
		if sameItemSet(candidate, o.ItemIDs) {
			daysAgo := outfit.DaysBetween(target, o.Date)
			return Warning{
				HasWarning: true,
				Kind:       KindExact,
				Message:    fmt.Sprintf("You wore this exact outfit %s ago", dayPhrase(daysAgo)),
				DaysAgo:    daysAgo,
			}
		}
	}

	for _, o := range lastWeek {
		if Jaccard(candidate, o.ItemIDs) >= similarityThreshold {
			daysAgo := outfit.DaysBetween(target, o.Date)
			return Warning{
				HasWarning: true,
				Kind:       KindSimilar,
				Message:    fmt.Sprintf("You wore a very similar outfit %s ago", dayPhrase(daysAgo)),
				DaysAgo:    daysAgo,
			}
		}
	}

	return checkItemReuse(candidate, target, sorted, items)
}

// checkItemReuse looks for individual candidate items worn in the last 3 days.
func checkItemReuse(candidate []string, target time.Time, sorted []*outfit.Outfit, items []*wardrobe.Item) Warning {
	candidateSet := toSet(candidate)

	var reused []string
	minGap := make(map[string]int)

	for _, o := range sorted {
		daysAgo := outfit.DaysBetween(target, o.Date)
		if daysAgo > itemWindow {
			continue
		}
		for _, id := range o.ItemIDs {
			if !candidateSet[id] {
				continue
			}
			if gap, ok := minGap[id]; !ok || daysAgo < gap {
				minGap[id] = daysAgo
			}
			if !containsID(reused, id) {
				reused = append(reused, id)
			}
		}
	}

	if len(reused) == 0 {
		return Warning{Kind: KindNone, Message: "Fresh combination!"}
	}

	// Name the item with the smallest gap.
	closest := reused[0]
	for _, id := range reused {
		if minGap[id] < minGap[closest] {
			closest = id
		}
	}
	daysAgo := minGap[closest]
	itemName := "item"
	if item := findItem(items, closest); item != nil {
		itemName = string(item.Category)
	}

	var message string
	switch {
	case daysAgo == 1:
		message = fmt.Sprintf("You wore this %s yesterday", itemName)
	case len(reused) > 1:
		message = fmt.Sprintf("You wore some items %d days ago", daysAgo)
	default:
		message = fmt.Sprintf("You wore this %s %d days ago", itemName, daysAgo)
	}

	return Warning{
		HasWarning:    true,
		Kind:          KindItem,
		Message:       message,
		DaysAgo:       daysAgo,
		AffectedItems: reused,
	}
}

func dayPhrase(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func findItem(items []*wardrobe.Item, id string) *wardrobe.Item {
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// RecentWear records the most recent prior wear of a candidate item.
type RecentWear struct {
	ItemID  string
	Item    *wardrobe.Item
	DaysAgo int
}

// Analysis is the full advisory result for a candidate outfit.
type Analysis struct {
	Warning     Warning
	RecentWear  []RecentWear
	Suggestions []string
}

// Analyze runs Check and additionally surfaces each candidate item's most
// recent wear within a 14-day lookback, plus improvement suggestions keyed to
// the warning kind.
func Analyze(candidate []string, date time.Time, history []*outfit.Outfit, items []*wardrobe.Item) Analysis {
	warning := Check(candidate, date, history, items)
	target := outfit.NormalizeDate(date)

	var lastFortnight []*outfit.Outfit
	for _, o := range history {
		if outfit.NormalizeDate(o.Date).Equal(target) {
			continue
		}
		if outfit.DaysBetween(target, o.Date) <= recentWindow {
			lastFortnight = append(lastFortnight, o)
		}
	}
	sort.Slice(lastFortnight, func(i, j int) bool {
		return lastFortnight[i].Date.After(lastFortnight[j].Date)
	})

	var recentWear []RecentWear
	for _, id := range candidate {
		item := findItem(items, id)
		if item == nil {
			continue
		}
		for _, o := range lastFortnight {
			if containsID(o.ItemIDs, id) {
				recentWear = append(recentWear, RecentWear{
					ItemID:  id,
					Item:    item,
					DaysAgo: outfit.DaysBetween(target, o.Date),
				})
				break
			}
		}
	}
	sort.SliceStable(recentWear, func(i, j int) bool {
		return recentWear[i].DaysAgo < recentWear[j].DaysAgo
	})

	return Analysis{
		Warning:     warning,
		RecentWear:  recentWear,
		Suggestions: suggestionsFor(warning, items),
	}
}

func suggestionsFor(warning Warning, items []*wardrobe.Item) []string {
	switch warning.Kind {
	case KindExact:
		return []string{
			"Try swapping out one or two items to freshen up the look",
			"Add an accessory to make it feel different",
		}
	case KindSimilar:
		return []string{
			"Consider choosing a different color for one of the items",
			"Mix it up with a different top or bottom",
		}
	case KindItem:
		for _, id := range warning.AffectedItems {
			if item := findItem(items, id); item != nil {
				return []string{
					fmt.Sprintf("Try using a different %s you haven't worn recently", item.Category),
				}
			}
		}
	}
	return nil
}
