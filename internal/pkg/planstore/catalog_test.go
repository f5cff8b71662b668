package planstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

func intPtr(v int) *int { return &v }

func testCatalog() []models.Plan {
	return []models.Plan{
		{ID: "a", SupplierName: "Alpha", PlanName: "Spotpris", PricePerKwh: 0.80, PriceZone: models.ZoneNO1},
		{ID: "b", SupplierName: "Beta", PlanName: "Spotpris", PricePerKwh: 0.50, PriceZone: models.ZoneNO2},
		{ID: "c", SupplierName: "Gamma", PlanName: "Fastpris", PricePerKwh: 0.95, PriceZone: models.ZoneAll},
		{ID: "d", SupplierName: "Delta", PlanName: "Spotpris", PricePerKwh: 0.60, PriceZone: models.ZoneNO1, Featured: true},
		{ID: "e", SupplierName: "Epsilon", PlanName: "Spotpris", PricePerKwh: 0.70, PriceZone: models.ZoneNO1, SortOrder: intPtr(1)},
	}
}

func TestFilterByZone(t *testing.T) {
	plans := testCatalog()

	no1 := FilterByZone(plans, models.ZoneNO1)
	require.Len(t, no1, 4) // a, d, e plus the ALLE plan
	for _, p := range no1 {
		assert.True(t, p.PriceZone == models.ZoneNO1 || p.PriceZone == models.ZoneAll)
	}

	no2 := FilterByZone(plans, models.ZoneNO2)
	require.Len(t, no2, 2)

	all := FilterByZone(plans, "")
	assert.Len(t, all, len(plans))
}

func TestFeatured(t *testing.T) {
	featured := Featured(testCatalog())
	require.Len(t, featured, 1)
	assert.Equal(t, "d", featured[0].ID)
}

func TestSortForDisplay(t *testing.T) {
	plans := testCatalog()
	SortForDisplay(plans)

	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	// featured first, then explicit sort order, then cheapest per kWh
	assert.Equal(t, []string{"d", "e", "b", "a", "c"}, ids)
}

func TestSortForDisplayStable(t *testing.T) {
	plans := []models.Plan{
		{ID: "x", PricePerKwh: 0.50},
		{ID: "y", PricePerKwh: 0.50},
	}
	SortForDisplay(plans)
	assert.Equal(t, "x", plans[0].ID)
	assert.Equal(t, "y", plans[1].ID)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testCatalog())

	plans, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 5)

	// mutating the returned slice must not leak into the store
	plans[0].PricePerKwh = 99.0
	again, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.80, again[0].PricePerKwh)

	require.NoError(t, store.ReplaceAll(ctx, plans[:2]))
	after, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestFindByID(t *testing.T) {
	plans := testCatalog()

	plan, ok := FindByID(plans, "c")
	require.True(t, ok)
	assert.Equal(t, "Gamma", plan.SupplierName)

	_, ok = FindByID(plans, "nope")
	assert.False(t, ok)
}

func TestSetFeatured(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testCatalog())

	plan, err := SetFeatured(ctx, store, "b", true)
	require.NoError(t, err)
	assert.True(t, plan.Featured)

	plans, err := store.All(ctx)
	require.NoError(t, err)
	stored, ok := FindByID(plans, "b")
	require.True(t, ok)
	assert.True(t, stored.Featured)

	_, err = SetFeatured(ctx, store, "nope", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
