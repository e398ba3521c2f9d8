package suggest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getset/getset/internal/suggest"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

func snapshot(temp float64, condition weather.Condition) *weather.Snapshot {
	return &weather.Snapshot{Temp: temp, Condition: condition}
}

func texts(suggestions []suggest.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Suggestion)
	}
	return out
}

func TestForWeather_Nil(t *testing.T) {
	assert.Nil(t, suggest.ForWeather(nil))
}

func TestForWeather_Cold(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(2, weather.ConditionClouds))
	require.NotEmpty(t, suggestions)

	assert.Equal(t, wardrobe.CategoryOuterwear, suggestions[0].Category)
	assert.Equal(t, suggest.PriorityHigh, suggestions[0].Priority)
	assert.Contains(t, suggestions[0].Suggestion, "cold")
}

func TestForWeather_Mild(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(15, weather.ConditionClouds))
	require.NotEmpty(t, suggestions)
	assert.Contains(t, texts(suggestions), "Light jacket or sweater recommended")
}

func TestForWeather_Warm(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(23, weather.ConditionClouds))
	assert.Contains(t, texts(suggestions), "T-shirt or light blouse is perfect")
}

func TestForWeather_Hot(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(32, weather.ConditionClouds))
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions[0].Suggestion, "hot")
	assert.Contains(t, texts(suggestions), "Sun protection: hat, sunglasses, sunscreen")
}

func TestForWeather_Rain(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(15, weather.ConditionRain))
	all := texts(suggestions)
	assert.Contains(t, all, "It's rainy! Bring a waterproof jacket or raincoat")
	assert.Contains(t, all, "Don't forget an umbrella")
}

func TestForWeather_Snow(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(-2, weather.ConditionSnow))
	assert.Contains(t, texts(suggestions), "Winter boots with good traction")
}

func TestForWeather_SunnyAndWarm(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(25, weather.ConditionClear))
	assert.Contains(t, texts(suggestions), "It's sunny! Wear sunglasses and apply sunscreen")

	// Sun advice is tied to warmth, not just a clear sky.
	cold := suggest.ForWeather(snapshot(5, weather.ConditionClear))
	assert.NotContains(t, texts(cold), "It's sunny! Wear sunglasses and apply sunscreen")
}

func TestForWeather_Thunderstorm(t *testing.T) {
	suggestions := suggest.ForWeather(snapshot(18, weather.ConditionThunderstorm))
	assert.Contains(t, texts(suggestions), "Storm warning! Waterproof jacket essential")
}

func TestForWeather_Windy(t *testing.T) {
	windy := snapshot(15, weather.ConditionClouds)
	windy.WindSpeed = 40

	suggestions := suggest.ForWeather(windy)
	assert.Contains(t, texts(suggestions), "It's windy! Wear a windbreaker or wind-resistant jacket")

	calm := snapshot(15, weather.ConditionClouds)
	calm.WindSpeed = 20
	assert.NotContains(t, texts(suggest.ForWeather(calm)),
		"It's windy! Wear a windbreaker or wind-resistant jacket")
}

func TestForWeatherItems_Cold(t *testing.T) {
	january := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	items := []*wardrobe.Item{
		{ID: "coat", Category: wardrobe.CategoryOuterwear, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "shorts", Category: wardrobe.CategoryBottoms, Notes: "linen shorts", Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "trousers", Category: wardrobe.CategoryBottoms, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "boots", Category: wardrobe.CategoryShoes, Notes: "leather boots", Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "sandals", Category: wardrobe.CategoryShoes, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
	}

	picks := suggest.ForWeatherItems(snapshot(3, weather.ConditionClouds), items, january)

	ids := make([]string, 0, len(picks))
	for _, p := range picks {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"coat", "trousers", "boots"}, ids)
}

func TestForWeatherItems_LeastWornFirst(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	items := []*wardrobe.Item{
		{ID: "worn", Category: wardrobe.CategoryTops, WearCount: 8, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "fresh", Category: wardrobe.CategoryTops, WearCount: 0, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
	}

	picks := suggest.ForWeatherItems(snapshot(16, weather.ConditionClear), items, now)
	require.Len(t, picks, 2)
	assert.Equal(t, "fresh", picks[0].ID)
}

func TestForWeatherItems_OffSeasonExcluded(t *testing.T) {
	january := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	items := []*wardrobe.Item{
		{ID: "summer-coat", Category: wardrobe.CategoryOuterwear, Seasons: []wardrobe.Season{wardrobe.SeasonSummer}},
	}

	picks := suggest.ForWeatherItems(snapshot(3, weather.ConditionClouds), items, january)
	assert.Empty(t, picks)
}

func TestForWeatherItems_CapsAtTen(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	var items []*wardrobe.Item
	for i := 0; i < 15; i++ {
		items = append(items, &wardrobe.Item{
			ID:       string(rune('a' + i)),
			Category: wardrobe.CategoryTops,
			Seasons:  []wardrobe.Season{wardrobe.SeasonAllSeason},
		})
	}

	picks := suggest.ForWeatherItems(snapshot(16, weather.ConditionClear), items, now)
	assert.Len(t, picks, 10)
}

func TestForWeatherItems_WaterproofMatchesInRain(t *testing.T) {
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	items := []*wardrobe.Item{
		{ID: "rain-boots", Category: wardrobe.CategoryShoes, Notes: "waterproof rubber boots", Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
		{ID: "sandals", Category: wardrobe.CategoryShoes, Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
	}

	picks := suggest.ForWeatherItems(snapshot(16, weather.ConditionRain), items, now)
	require.Len(t, picks, 1)
	assert.Equal(t, "rain-boots", picks[0].ID)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", suggest.Summary(nil))

	s := &weather.Snapshot{Temp: 18.4, Description: "scattered clouds"}
	assert.Equal(t, "18°C - scattered clouds (Mild)", suggest.Summary(s))

	s = &weather.Snapshot{Temp: 31.0, Description: "clear sky"}
	assert.Equal(t, "31°C - clear sky (Hot)", suggest.Summary(s))

	s = &weather.Snapshot{Temp: 4.0, Description: "snow"}
	assert.Equal(t, "4°C - snow (Cold)", suggest.Summary(s))
}
