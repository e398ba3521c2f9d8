package handler

import (
	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/trip"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// toClothingItem converts a wardrobe item to its API representation.
func toClothingItem(item *wardrobe.Item) models.ClothingItem {
	seasons := make([]string, len(item.Seasons))
	for i, season := range item.Seasons {
		seasons[i] = string(season)
	}

	out := models.ClothingItem{
		ID:        item.ID,
		Image:     item.Image,
		Category:  string(item.Category),
		Color:     item.Color,
		Seasons:   seasons,
		Notes:     item.Notes,
		WearCount: item.WearCount,
		CreatedAt: models.Timestamp(item.CreatedAt),
	}
	if item.LastWorn != nil {
		worn := models.Date(*item.LastWorn)
		out.LastWorn = &worn
	}
	return out
}

func toClothingItems(items []*wardrobe.Item) []models.ClothingItem {
	out := make([]models.ClothingItem, len(items))
	for i, item := range items {
		out[i] = toClothingItem(item)
	}
	return out
}

// toWeatherSnapshot converts a weather snapshot to its API representation.
func toWeatherSnapshot(s *weather.Snapshot) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Temp:        s.Temp,
		FeelsLike:   s.FeelsLike,
		Condition:   string(s.Condition),
		Description: s.Description,
		Icon:        s.Icon,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		Date:        models.Timestamp(s.Date),
		Location:    s.Location,
	}
}

// toOutfit converts an outfit to its API representation.
func toOutfit(o *outfit.Outfit) models.Outfit {
	out := models.Outfit{
		ID:    o.ID,
		Date:  models.Date(o.Date),
		Items: o.ItemIDs,
		Photo: o.Photo,
		Notes: o.Notes,
	}
	if o.Weather != nil {
		snapshot := toWeatherSnapshot(o.Weather)
		out.Weather = &snapshot
	}
	return out
}

// toTrip converts a trip to its API representation.
func toTrip(t *trip.Trip) models.Trip {
	out := models.Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   models.Date(t.StartDate),
		EndDate:     models.Date(t.EndDate),
		Type:        string(t.Type),
		Outfits:     t.Outfits,
		Weather:     make([]models.WeatherSnapshot, 0, len(t.Weather)),
		PackingList: t.PackingList,
		Notes:       t.Notes,
	}
	if out.Outfits == nil {
		out.Outfits = map[string]string{}
	}
	if out.PackingList == nil {
		out.PackingList = []string{}
	}
	for _, s := range t.Weather {
		out.Weather = append(out.Weather, toWeatherSnapshot(s))
	}
	return out
}
