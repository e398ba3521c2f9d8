package wardrobe

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Stats summarizes the wardrobe and recent outfit activity.
type Stats struct {
	TotalItems       int
	ItemsByCategory  map[Category]int
	ItemsByColor     map[string]int
	ItemsBySeason    map[Season]int
	MostWornItems    []*Item
	LeastWornItems   []*Item
	AverageWearCount float64
	OutfitsThisWeek  int
	OutfitsThisMonth int
}

// Distribution is a count of items sharing one attribute value.
type Distribution struct {
	Value      string
	Count      int
	Percentage int
}

const topWornCount = 5

// ComputeStats computes wardrobe statistics. outfitDates are the dates of all
// saved outfits; now anchors the this-week/this-month windows.
func ComputeStats(items []*Item, outfitDates []time.Time, now time.Time) Stats {
	stats := Stats{
		TotalItems:      len(items),
		ItemsByCategory: make(map[Category]int),
		ItemsByColor:    make(map[string]int),
		ItemsBySeason:   make(map[Season]int),
	}

	totalWear := 0
	for _, item := range items {
		stats.ItemsByCategory[item.Category]++
		stats.ItemsByColor[strings.ToLower(item.Color)]++
		for _, season := range item.Seasons {
			stats.ItemsBySeason[season]++
		}
		totalWear += item.WearCount
	}

	if len(items) > 0 {
		avg := float64(totalWear) / float64(len(items))
		stats.AverageWearCount = math.Round(avg*10) / 10
	}

	byWearDesc := append([]*Item(nil), items...)
	sort.SliceStable(byWearDesc, func(i, j int) bool {
		return byWearDesc[i].WearCount > byWearDesc[j].WearCount
	})
	stats.MostWornItems = topN(byWearDesc, topWornCount)

	byWearAsc := append([]*Item(nil), items...)
	sort.SliceStable(byWearAsc, func(i, j int) bool {
		return byWearAsc[i].WearCount < byWearAsc[j].WearCount
	})
	stats.LeastWornItems = topN(byWearAsc, topWornCount)

	weekAgo := now.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, date := range outfitDates {
		if !date.Before(weekAgo) && !date.After(now) {
			stats.OutfitsThisWeek++
		}
		if !date.Before(monthStart) && !date.After(now) {
			stats.OutfitsThisMonth++
		}
	}

	return stats
}

// ColorDistribution returns per-color counts sorted by frequency.
func ColorDistribution(items []*Item) []Distribution {
	counts := make(map[string]int)
	for _, item := range items {
		counts[strings.ToLower(item.Color)]++
	}
	return toDistribution(counts, len(items))
}

// CategoryDistribution returns per-category counts sorted by frequency.
func CategoryDistribution(items []*Item) []Distribution {
	counts := make(map[string]int)
	for _, item := range items {
		counts[string(item.Category)]++
	}
	return toDistribution(counts, len(items))
}

func toDistribution(counts map[string]int, total int) []Distribution {
	out := make([]Distribution, 0, len(counts))
	for value, count := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		out = append(out, Distribution{Value: value, Count: count, Percentage: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func topN(items []*Item, n int) []*Item {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
