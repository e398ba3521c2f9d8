// Package suggest produces wardrobe advice from weather conditions: advisory
// dressing tips per category and concrete item picks from the wardrobe.
package suggest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// Priority ranks how strongly a suggestion applies.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one piece of dressing advice tied to a clothing category.
type Suggestion struct {
	Category   wardrobe.Category
	Suggestion string
	Priority   Priority
}

// Temperature tiers in °C.
const (
	tierCold = 10.0
	tierWarm = 20.0
	tierHot  = 28.0
)

// windyAbove is the wind speed in km/h beyond which wind advice is added.
const windyAbove = 30.0

// suggestedItemLimit caps ForWeatherItems results.
const suggestedItemLimit = 10

// ForWeather builds dressing advice for a weather snapshot: temperature tier
// advice first, then condition-specific additions, then wind.
func ForWeather(snapshot *weather.Snapshot) []Suggestion {
	if snapshot == nil {
		return nil
	}

	suggestions := byTemperature(snapshot.Temp)
	suggestions = append(suggestions, byCondition(snapshot.Condition, snapshot.Temp)...)

	if snapshot.WindSpeed > windyAbove {
		suggestions = append(suggestions, Suggestion{
			Category:   wardrobe.CategoryOuterwear,
			Suggestion: "It's windy! Wear a windbreaker or wind-resistant jacket",
			Priority:   PriorityMedium,
		})
	}

	return suggestions
}

func byTemperature(temp float64) []Suggestion {
	switch {
	case temp < tierCold:
		return []Suggestion{
			{wardrobe.CategoryOuterwear, "It's cold! Wear a heavy jacket or winter coat", PriorityHigh},
			{wardrobe.CategoryBottoms, "Long pants or warm trousers recommended", PriorityHigh},
			{wardrobe.CategoryShoes, "Wear boots or closed-toe shoes", PriorityMedium},
			{wardrobe.CategoryAccessories, "Consider a scarf, gloves, or beanie", PriorityMedium},
		}
	case temp < tierWarm:
		return []Suggestion{
			{wardrobe.CategoryOuterwear, "Light jacket or sweater recommended", PriorityMedium},
			{wardrobe.CategoryBottoms, "Jeans or casual pants work well", PriorityLow},
			{wardrobe.CategoryShoes, "Sneakers or casual shoes", PriorityLow},
		}
	case temp < tierHot:
		return []Suggestion{
			{wardrobe.CategoryTops, "T-shirt or light blouse is perfect", PriorityMedium},
			{wardrobe.CategoryBottoms, "Shorts, skirt, or light pants", PriorityMedium},
			{wardrobe.CategoryShoes, "Sandals or light sneakers", PriorityLow},
		}
	default:
		return []Suggestion{
			{wardrobe.CategoryTops, "It's hot! Wear light, breathable clothing", PriorityHigh},
			{wardrobe.CategoryAccessories, "Sun protection: hat, sunglasses, sunscreen", PriorityHigh},
			{wardrobe.CategoryBottoms, "Light shorts or breathable skirt", PriorityMedium},
			{wardrobe.CategoryShoes, "Open-toe sandals or breathable shoes", PriorityMedium},
		}
	}
}

func byCondition(condition weather.Condition, temp float64) []Suggestion {
	switch {
	case condition == weather.ConditionRain || condition == weather.ConditionDrizzle:
		return []Suggestion{
			{wardrobe.CategoryOuterwear, "It's rainy! Bring a waterproof jacket or raincoat", PriorityHigh},
			{wardrobe.CategoryAccessories, "Don't forget an umbrella", PriorityHigh},
			{wardrobe.CategoryShoes, "Waterproof shoes or boots", PriorityMedium},
		}
	case condition == weather.ConditionSnow:
		return []Suggestion{
			{wardrobe.CategoryOuterwear, "It's snowing! Wear a winter coat", PriorityHigh},
			{wardrobe.CategoryShoes, "Winter boots with good traction", PriorityHigh},
			{wardrobe.CategoryAccessories, "Winter accessories: gloves, scarf, warm hat", PriorityHigh},
		}
	case condition == weather.ConditionClear && temp > tierWarm:
		return []Suggestion{
			{wardrobe.CategoryAccessories, "It's sunny! Wear sunglasses and apply sunscreen", PriorityMedium},
		}
	case condition == weather.ConditionThunderstorm:
		return []Suggestion{
			{wardrobe.CategoryOuterwear, "Storm warning! Waterproof jacket essential", PriorityHigh},
			{wardrobe.CategoryAccessories, "Bring a sturdy umbrella", PriorityHigh},
		}
	}
	return nil
}

// ForWeatherItems picks concrete wardrobe items suited to the snapshot,
// least worn first to encourage variety, capped at 10. Filtering leans on
// item notes keywords, so items without notes match only the broad
// category rules.
func ForWeatherItems(snapshot *weather.Snapshot, items []*wardrobe.Item, now time.Time) []*wardrobe.Item {
	if snapshot == nil {
		return nil
	}

	season := wardrobe.SeasonForMonth(now.Month())

	var suitable []*wardrobe.Item
	for _, item := range items {
		if !item.WearableIn(season) {
			continue
		}
		if suitableForWeather(item, snapshot) {
			suitable = append(suitable, item)
		}
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].WearCount < suitable[j].WearCount
	})

	if len(suitable) > suggestedItemLimit {
		suitable = suitable[:suggestedItemLimit]
	}
	return suitable
}

func suitableForWeather(item *wardrobe.Item, snapshot *weather.Snapshot) bool {
	notes := strings.ToLower(item.Notes)
	temp := snapshot.Temp

	switch {
	case temp < tierCold:
		if item.Category == wardrobe.CategoryOuterwear {
			return true
		}
		if item.Category == wardrobe.CategoryBottoms && !containsAny(notes, "shorts", "skirt") {
			return true
		}
		if item.Category == wardrobe.CategoryShoes && strings.Contains(notes, "boot") {
			return true
		}
	case temp < tierWarm:
		if item.Category == wardrobe.CategoryOuterwear && strings.Contains(notes, "light") {
			return true
		}
		if item.Category == wardrobe.CategoryTops || item.Category == wardrobe.CategoryBottoms {
			return true
		}
	default:
		if item.Category == wardrobe.CategoryTops {
			return true
		}
		if item.Category == wardrobe.CategoryBottoms && containsAny(notes, "shorts", "skirt", "light") {
			return true
		}
		if item.Category == wardrobe.CategoryAccessories && containsAny(notes, "hat", "sunglasses") {
			return true
		}
	}

	if (snapshot.Condition == weather.ConditionRain || snapshot.Condition == weather.ConditionDrizzle) &&
		strings.Contains(notes, "waterproof") {
		return true
	}

	return false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Summary renders a one-line weather summary with a coarse comfort label.
func Summary(snapshot *weather.Snapshot) string {
	if snapshot == nil {
		return ""
	}

	var label string
	switch {
	case snapshot.Temp < tierCold:
		label = "Cold"
	case snapshot.Temp < tierWarm:
		label = "Mild"
	case snapshot.Temp < tierHot:
		label = "Warm"
	default:
		label = "Hot"
	}

	return fmt.Sprintf("%.0f°C - %s (%s)", snapshot.Temp, snapshot.Description, label)
}
