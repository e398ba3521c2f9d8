package wardrobe_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/wardrobe"
)

func newTestService(t *testing.T) *wardrobe.Service {
	t.Helper()
	return wardrobe.NewService(wardrobe.NewInMemoryRepository())
}

func createItem(t *testing.T, svc *wardrobe.Service, category, color string, seasons ...string) *wardrobe.Item {
	t.Helper()
	if len(seasons) == 0 {
		seasons = []string{"all-season"}
	}
	item, err := svc.Create(context.Background(), &models.ClothingItemCreateRequest{
		Category: category,
		Color:    color,
		Seasons:  seasons,
	})
	require.NoError(t, err)
	return item
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)

	item := createItem(t, svc, "tops", "White", "summer", "spring")

	assert.True(t, len(item.ID) > 4 && item.ID[:4] == "itm_")
	assert.Equal(t, wardrobe.CategoryTops, item.Category)
	assert.Equal(t, "White", item.Color)
	assert.Equal(t, []wardrobe.Season{wardrobe.SeasonSummer, wardrobe.SeasonSpring}, item.Seasons)
	assert.Zero(t, item.WearCount)
	assert.Nil(t, item.LastWorn)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		input models.ClothingItemCreateRequest
		field string
	}{
		{"missing category", models.ClothingItemCreateRequest{Color: "red", Seasons: []string{"summer"}}, "category"},
		{"unknown category", models.ClothingItemCreateRequest{Category: "hats", Color: "red", Seasons: []string{"summer"}}, "category"},
		{"missing color", models.ClothingItemCreateRequest{Category: "tops", Seasons: []string{"summer"}}, "color"},
		{"missing seasons", models.ClothingItemCreateRequest{Category: "tops", Color: "red"}, "seasons"},
		{"unknown season", models.ClothingItemCreateRequest{Category: "tops", Color: "red", Seasons: []string{"monsoon"}}, "seasons"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.input)
			require.Error(t, err)

			var vErr *wardrobe.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Errors)
			assert.Equal(t, tc.field, vErr.Errors[0].Field)
		})
	}
}

func TestService_List_Filters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	createItem(t, svc, "tops", "white", "summer")
	jeans := createItem(t, svc, "bottoms", "Blue", "all-season")
	createItem(t, svc, "shoes", "white", "winter")

	byCategory, err := svc.List(ctx, wardrobe.FilterOptions{Category: wardrobe.CategoryBottoms})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, jeans.ID, byCategory[0].ID)

	byColor, err := svc.List(ctx, wardrobe.FilterOptions{Color: "WHITE"})
	require.NoError(t, err)
	assert.Len(t, byColor, 2, "color filter is case-insensitive")

	bySeason, err := svc.List(ctx, wardrobe.FilterOptions{Season: wardrobe.SeasonWinter})
	require.NoError(t, err)
	assert.Len(t, bySeason, 1)

	bySearch, err := svc.List(ctx, wardrobe.FilterOptions{Search: "blu"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, jeans.ID, bySearch[0].ID)

	all, err := svc.List(ctx, wardrobe.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_Update_Partial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item := createItem(t, svc, "tops", "white", "summer")

	newColor := "navy"
	updated, err := svc.Update(ctx, item.ID, &models.ClothingItemUpdateRequest{Color: &newColor})
	require.NoError(t, err)

	assert.Equal(t, "navy", updated.Color)
	assert.Equal(t, wardrobe.CategoryTops, updated.Category, "untouched fields survive")
	assert.Equal(t, item.Seasons, updated.Seasons)
}

func TestService_Update_Validation(t *testing.T) {
	svc := newTestService(t)
	item := createItem(t, svc, "tops", "white")

	bad := "hats"
	_, err := svc.Update(context.Background(), item.ID, &models.ClothingItemUpdateRequest{Category: &bad})

	var vErr *wardrobe.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(t)

	color := "red"
	_, err := svc.Update(context.Background(), "itm_missing", &models.ClothingItemUpdateRequest{Color: &color})
	assert.ErrorIs(t, err, wardrobe.ErrItemNotFound)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item := createItem(t, svc, "tops", "white")
	require.NoError(t, svc.Delete(ctx, item.ID))

	_, err := svc.Get(ctx, item.ID)
	assert.ErrorIs(t, err, wardrobe.ErrItemNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, item.ID), wardrobe.ErrItemNotFound)
}

func TestService_RecordWear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := createItem(t, svc, "tops", "white")
	b := createItem(t, svc, "bottoms", "blue")
	wornOn := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.RecordWear(ctx, []string{a.ID, b.ID}, wornOn))

	for _, id := range []string{a.ID, b.ID} {
		item, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, item.WearCount)
		require.NotNil(t, item.LastWorn)
		assert.True(t, item.LastWorn.Equal(wornOn))
	}
}

func TestService_RecordWear_RetroactiveDateWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item := createItem(t, svc, "tops", "white")
	later := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.RecordWear(ctx, []string{item.ID}, later))
	require.NoError(t, svc.RecordWear(ctx, []string{item.ID}, earlier))

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.WearCount)
	assert.True(t, got.LastWorn.Equal(earlier), "retroactive logging overwrites the last-worn date")
}

func TestService_RecordWear_SkipsDanglingIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item := createItem(t, svc, "tops", "white")
	err := svc.RecordWear(ctx, []string{"itm_gone", item.ID}, time.Now())
	require.NoError(t, err)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WearCount)
}

func TestService_Resolve(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := createItem(t, svc, "tops", "white")
	b := createItem(t, svc, "bottoms", "blue")

	items, err := svc.Resolve(ctx, []string{a.ID, "itm_gone", b.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	items := []*wardrobe.Item{
		{ID: "a", Category: wardrobe.CategoryTops, Color: "White", WearCount: 4,
			Seasons: []wardrobe.Season{wardrobe.SeasonSummer}},
		{ID: "b", Category: wardrobe.CategoryTops, Color: "white", WearCount: 1,
			Seasons: []wardrobe.Season{wardrobe.SeasonSummer, wardrobe.SeasonSpring}},
		{ID: "c", Category: wardrobe.CategoryShoes, Color: "black", WearCount: 0,
			Seasons: []wardrobe.Season{wardrobe.SeasonAllSeason}},
	}
	outfitDates := []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -10),
		now.AddDate(0, 0, -60),
	}

	stats := wardrobe.ComputeStats(items, outfitDates, now)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.ItemsByCategory[wardrobe.CategoryTops])
	assert.Equal(t, 2, stats.ItemsByColor["white"], "colors are counted case-insensitively")
	assert.Equal(t, 2, stats.ItemsBySeason[wardrobe.SeasonSummer])
	assert.InDelta(t, 1.7, stats.AverageWearCount, 0.001)

	require.NotEmpty(t, stats.MostWornItems)
	assert.Equal(t, "a", stats.MostWornItems[0].ID)
	assert.Equal(t, "c", stats.LeastWornItems[0].ID)

	assert.Equal(t, 1, stats.OutfitsThisWeek)
	assert.Equal(t, 2, stats.OutfitsThisMonth)
}

func TestColorDistribution(t *testing.T) {
	items := []*wardrobe.Item{
		{Color: "white"}, {Color: "White"}, {Color: "blue"},
	}

	dist := wardrobe.ColorDistribution(items)
	require.Len(t, dist, 2)
	assert.Equal(t, wardrobe.Distribution{Value: "white", Count: 2, Percentage: 67}, dist[0])
	assert.Equal(t, wardrobe.Distribution{Value: "blue", Count: 1, Percentage: 33}, dist[1])
}

func TestSeasonForMonth(t *testing.T) {
	assert.Equal(t, wardrobe.SeasonSpring, wardrobe.SeasonForMonth(time.April))
	assert.Equal(t, wardrobe.SeasonSummer, wardrobe.SeasonForMonth(time.July))
	assert.Equal(t, wardrobe.SeasonFall, wardrobe.SeasonForMonth(time.October))
	assert.Equal(t, wardrobe.SeasonWinter, wardrobe.SeasonForMonth(time.January))
	assert.Equal(t, wardrobe.SeasonWinter, wardrobe.SeasonForMonth(time.December))
}
