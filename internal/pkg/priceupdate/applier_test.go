package priceupdate

import (
	"context"
	"strings"
	"testing"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

func fixturePlans() []models.Plan {
	return []models.Plan{
		{
			ID:            "cheap-no1-spot",
			SupplierName:  "Cheap Energy Norge",
			PlanName:      "Spotpris Kampanje",
			PricePerKwh:   -1.7,
			PriceZone:     models.ZoneNO1,
			AffiliateLink: "https://cheapenergy.no/bestill",
		},
		{
			ID:            "cheap-no1-fast",
			SupplierName:  "Cheap Energy Norge",
			PlanName:      "Fastpris 12 måneder",
			PricePerKwh:   89.9,
			PriceZone:     models.ZoneNO1,
			AffiliateLink: "https://cheapenergy.no/fastpris",
		},
		{
			ID:            "kilden-no1-spot",
			SupplierName:  "Kilden Kraft",
			PlanName:      "Spotpris Innkjøpspris",
			PricePerKwh:   0.59,
			PriceZone:     models.ZoneNO1,
			AffiliateLink: "https://kildenkraft.no/bestill",
		},
	}
}

func priceByID(t *testing.T, store planstore.Store, id string) float64 {
	t.Helper()
	plans, err := store.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	plan, ok := planstore.FindByID(plans, id)
	if !ok {
		t.Fatalf("plan %s missing from store", id)
	}
	return plan.PricePerKwh
}

func TestApply_PlanTypeScopedUpdate(t *testing.T) {
	t.Parallel()

	store := planstore.NewMemoryStore(fixturePlans())
	applier := NewApplier(store)

	res, err := applier.Apply(context.Background(), []Command{{
		Supplier:  "Cheap Energy Norge",
		PriceZone: models.ZoneNO1,
		Price:     50,
		PlanType:  models.PlanTypeFixed,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(res.UpdatedPlans) != 1 {
		t.Fatalf("expected one updated plan, got %v", res.UpdatedPlans)
	}

	if got := priceByID(t, store, "cheap-no1-fast"); got != 50 {
		t.Fatalf("fastpris plan price = %v, want 50", got)
	}
	if got := priceByID(t, store, "cheap-no1-spot"); got != -1.7 {
		t.Fatalf("spotpris plan must be untouched, price = %v", got)
	}
}

func TestApply_MissingPlanTypeMatchesAll(t *testing.T) {
	t.Parallel()

	store := planstore.NewMemoryStore(fixturePlans())
	applier := NewApplier(store)

	res, err := applier.Apply(context.Background(), []Command{{
		Supplier:  "cheap energy norge", // supplier match is case-insensitive
		PriceZone: models.ZoneNO1,
		Price:     60,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.UpdatedPlans) != 2 {
		t.Fatalf("expected both Cheap Energy plans updated, got %v", res.UpdatedPlans)
	}
	if got := priceByID(t, store, "kilden-no1-spot"); got != 0.59 {
		t.Fatalf("other supplier must be untouched, price = %v", got)
	}
}

func TestApply_NoMatchLeavesStoreUnmodified(t *testing.T) {
	t.Parallel()

	store := planstore.NewMemoryStore(fixturePlans())
	applier := NewApplier(store)

	res, err := applier.Apply(context.Background(), []Command{{
		Supplier:  "Kilden Kraft",
		PriceZone: models.ZoneNO4,
		Price:     0.99,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected success=false for zero matches")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "No plans found for Kilden Kraft in NO4") {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	plans, _ := store.All(context.Background())
	for i, want := range fixturePlans() {
		if plans[i] != want {
			t.Fatalf("store modified despite zero matches: %+v", plans[i])
		}
	}
}

// A batch keeps going past a no-match command, unlike validation which is
// all-or-nothing.
func TestApply_PartialBatchTolerance(t *testing.T) {
	t.Parallel()

	store := planstore.NewMemoryStore(fixturePlans())
	applier := NewApplier(store)

	res, err := applier.Apply(context.Background(), []Command{
		{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO4, Price: 0.99}, // no match
		{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO1, Price: 0.75},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected success=false when any command had zero matches")
	}
	if len(res.UpdatedPlans) != 1 || len(res.Errors) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := priceByID(t, store, "kilden-no1-spot"); got != 0.75 {
		t.Fatalf("second command not applied, price = %v", got)
	}
	if !strings.Contains(res.Message, "Oppdaterte 1") || !strings.Contains(res.Message, "Feil:") {
		t.Fatalf("message should contain update and error summaries, got %q", res.Message)
	}
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	store := planstore.NewMemoryStore(fixturePlans())
	applier := NewApplier(store)

	cmd := Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO1, Price: 0.42}
	if _, err := applier.Apply(context.Background(), []Command{cmd}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	after, _ := store.All(context.Background())

	if _, err := applier.Apply(context.Background(), []Command{cmd}); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	again, _ := store.All(context.Background())

	if len(after) != len(again) {
		t.Fatalf("plan count changed between applies")
	}
	for i := range after {
		if after[i] != again[i] {
			t.Fatalf("state diverged after repeated apply: %+v vs %+v", after[i], again[i])
		}
	}
}
