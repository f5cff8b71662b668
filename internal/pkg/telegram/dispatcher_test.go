package telegram

import (
	"context"
	"strings"
	"testing"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

func testStore() *planstore.MemoryStore {
	return planstore.NewMemoryStore([]models.Plan{
		{
			ID:            "kilden-no1",
			SupplierName:  "Kilden Kraft",
			PlanName:      "Spotpris Innkjøpspris",
			PricePerKwh:   0.59,
			MonthlyFee:    39,
			PriceZone:     models.ZoneNO1,
			AffiliateLink: "https://kildenkraft.no/bestill",
		},
		{
			ID:            "cheap-no2",
			SupplierName:  "Cheap Energy Norge",
			PlanName:      "Spotpris Kampanje",
			PricePerKwh:   -1.7,
			MonthlyFee:    49,
			PriceZone:     models.ZoneNO2,
			AffiliateLink: "https://cheapenergy.no/bestill",
		},
	})
}

func TestHandle_FixedCommands(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(testStore())
	ctx := context.Background()

	if got := d.Handle(ctx, "/help", 1); got != MsgHelp {
		t.Fatalf("unexpected /help reply: %q", got)
	}
	if got := d.Handle(ctx, "/start", 1); got != MsgHelp {
		t.Fatalf("unexpected /start reply: %q", got)
	}
	if got := d.Handle(ctx, "/HELP", 1); got != MsgHelp {
		t.Fatalf("command verb should be case-insensitive, got %q", got)
	}
	if got := d.Handle(ctx, "/help@stromsjefbot", 1); got != MsgHelp {
		t.Fatalf("bot mention suffix should be stripped, got %q", got)
	}

	prices := d.Handle(ctx, "/prices", 1)
	for _, want := range []string{"Kilden Kraft", "Cheap Energy Norge", "NO1", "NO2"} {
		if !strings.Contains(prices, want) {
			t.Fatalf("/prices reply missing %q: %q", want, prices)
		}
	}

	report := d.Handle(ctx, "/report", 1)
	if !strings.Contains(report, "2 avtaler totalt") {
		t.Fatalf("unexpected /report reply: %q", report)
	}
}

func TestHandle_FeatureUnfeature(t *testing.T) {
	t.Parallel()

	store := testStore()
	d := NewDispatcher(store)
	ctx := context.Background()

	reply := d.Handle(ctx, "/feature kilden-no1", 1)
	if !strings.Contains(reply, "fremhevet") {
		t.Fatalf("unexpected /feature reply: %q", reply)
	}
	plans, _ := store.All(ctx)
	plan, _ := planstore.FindByID(plans, "kilden-no1")
	if !plan.Featured {
		t.Fatalf("plan should be featured after /feature")
	}

	d.Handle(ctx, "/unfeature kilden-no1", 1)
	plans, _ = store.All(ctx)
	plan, _ = planstore.FindByID(plans, "kilden-no1")
	if plan.Featured {
		t.Fatalf("plan should not be featured after /unfeature")
	}

	if reply := d.Handle(ctx, "/feature does-not-exist", 1); !strings.Contains(reply, "Fant ingen avtale") {
		t.Fatalf("unexpected reply for unknown id: %q", reply)
	}
	if reply := d.Handle(ctx, "/feature", 1); !strings.Contains(reply, "Bruk: /feature") {
		t.Fatalf("missing usage reply: %q", reply)
	}
}

func TestHandle_PriceUpdatePipeline(t *testing.T) {
	t.Parallel()

	store := testStore()
	d := NewDispatcher(store)
	ctx := context.Background()

	reply := d.Handle(ctx, "Sett Kilden i NO1 til 0.75", 1)
	if !strings.Contains(reply, "Oppdaterte 1") {
		t.Fatalf("unexpected pipeline reply: %q", reply)
	}
	plans, _ := store.All(ctx)
	plan, _ := planstore.FindByID(plans, "kilden-no1")
	if plan.PricePerKwh != 0.75 {
		t.Fatalf("price not applied, got %v", plan.PricePerKwh)
	}

	if reply := d.Handle(ctx, "dette er bare prat", 1); reply != MsgCouldNotParse {
		t.Fatalf("unparseable text should return the parse help, got %q", reply)
	}

	reply = d.Handle(ctx, "Sett Kilden i NO4 til 0.75", 1)
	if !strings.Contains(reply, "No plans found for Kilden Kraft in NO4") {
		t.Fatalf("missing no-match error: %q", reply)
	}
}

func TestHandle_Reset(t *testing.T) {
	t.Parallel()

	store := testStore()
	d := NewDispatcher(store)
	ctx := context.Background()

	reply := d.Handle(ctx, "/reset", 1)
	if !strings.Contains(reply, "tilbakestilt") {
		t.Fatalf("unexpected /reset reply: %q", reply)
	}
	plans, _ := store.All(ctx)
	if len(plans) != len(planstore.DefaultPlans()) {
		t.Fatalf("reset should restore the seed catalog, got %d plans", len(plans))
	}
}

func TestHandle_UnknownSlashCommand(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(testStore())
	if reply := d.Handle(context.Background(), "/frobnicate", 1); reply != MsgCouldNotParse {
		t.Fatalf("unexpected reply: %q", reply)
	}
}
