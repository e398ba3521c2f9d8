// Package wardrobe provides clothing item management services.
package wardrobe

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrItemNotFound = errors.New("clothing item not found")
)

// Category identifies the kind of clothing item.
type Category string

// The closed set of clothing categories.
const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// AllCategories lists every valid category.
var AllCategories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses,
		CategoryOuterwear, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

// Season identifies when an item is wearable.
type Season string

// Seasons an item can be tagged with.
const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
)

// Valid reports whether s is a known season.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllSeason:
		return true
	}
	return false
}

// SeasonForMonth returns the calendar season for a month
// (spring = Mar-May, summer = Jun-Aug, fall = Sep-Nov, winter = Dec-Feb).
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// Item represents a single clothing item in the wardrobe.
type Item struct {
	ID        string
	Image     string
	Category  Category
	Color     string
	Seasons   []Season
	Notes     string
	WearCount int
	LastWorn  *time.Time
	CreatedAt time.Time
}

// HasSeason reports whether the item is tagged with the given season.
func (i *Item) HasSeason(s Season) bool {
	for _, season := range i.Seasons {
		if season == s {
			return true
		}
	}
	return false
}

// WearableIn reports whether the item is eligible for the given calendar
// season, either by carrying that season tag or by being all-season.
func (i *Item) WearableIn(s Season) bool {
	return i.HasSeason(s) || i.HasSeason(SeasonAllSeason)
}

// ItemUpdate holds a partial update for an item. Nil fields are left
// untouched.
type ItemUpdate struct {
	Image     *string
	Category  *Category
	Color     *string
	Seasons   []Season
	Notes     *string
	WearCount *int
	LastWorn  *time.Time
}
