package priceupdate

import (
	"testing"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

func TestParse_NoRecognizedTriple(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"hello world",
		"set the price to 0.59",          // no supplier, no zone
		"kilden 0.59",                    // zone missing
		"no1 0.59",                       // supplier missing
		"kilden no1",                     // price missing
		"kilden no1 -1.7",                // sign token never parses as price
		"kilden no1 0",                   // zero price is not emitted
		"kilden no1 price",               // non-numeric tail
		"totally unrelated chat message", // nothing recognized
	}

	for _, text := range tests {
		if got := Parse(text); len(got) != 0 {
			t.Fatalf("Parse(%q) = %v, want no commands", text, got)
		}
	}
}

func TestParse_SingleCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Command
	}{
		{
			text: "Set Kilden in NO1 to 0.59",
			want: Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO1, Price: 0.59},
		},
		{
			text: "sett kilden øst til 0,59", // Norwegian, decimal comma
			want: Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO1, Price: 0.59},
		},
		{
			text: "sätt cheap norr till 45.5", // Swedish
			want: Command{Supplier: "Cheap Energy Norge", PriceZone: models.ZoneNO4, Price: 45.5},
		},
		{
			text: "no2 kilden 0.77", // token order is free
			want: Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO2, Price: 0.77},
		},
		{
			text: "cheap fastpris no1 89.9",
			want: Command{Supplier: "Cheap Energy Norge", PriceZone: models.ZoneNO1, Price: 89.9, PlanType: models.PlanTypeFixed},
		},
		{
			text: "update kilden kraft spot midt 0.42",
			want: Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO3, Price: 0.42, PlanType: models.PlanTypeSpot},
		},
		{
			text: "KILDEN NO5 1", // case-insensitive, integer price
			want: Command{Supplier: "Kilden Kraft", PriceZone: models.ZoneNO5, Price: 1},
		},
	}

	for _, tt := range tests {
		got := Parse(tt.text)
		if len(got) != 1 {
			t.Fatalf("Parse(%q) = %v, want exactly one command", tt.text, got)
		}
		if got[0] != tt.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.text, got[0], tt.want)
		}
	}
}

func TestParse_MultipleCommands(t *testing.T) {
	t.Parallel()

	got := Parse("Set Kilden in NO1 to 0.59 and Cheap in NO2 to 0.62")
	if len(got) != 2 {
		t.Fatalf("expected two commands, got %v", got)
	}
	if got[0].Supplier != "Kilden Kraft" || got[0].PriceZone != models.ZoneNO1 || got[0].Price != 0.59 {
		t.Fatalf("unexpected first command: %+v", got[0])
	}
	if got[1].Supplier != "Cheap Energy Norge" || got[1].PriceZone != models.ZoneNO2 || got[1].Price != 0.62 {
		t.Fatalf("unexpected second command: %+v", got[1])
	}
}

// A follow-up command that omits its zone is not emitted: emitting a
// command resets all accumulators, so there is no zone carry-over between
// commands in one message.
func TestParse_NoZoneCarryOverAfterEmit(t *testing.T) {
	t.Parallel()

	got := Parse("Set Kilden in NO1 to 0.59 and Cheap to 0.62")
	if len(got) != 1 {
		t.Fatalf("expected one command, got %v", got)
	}
	if got[0].Supplier != "Kilden Kraft" {
		t.Fatalf("unexpected command: %+v", got[0])
	}
}

func TestParse_PlanTypeResetBetweenCommands(t *testing.T) {
	t.Parallel()

	got := Parse("cheap fastpris no1 89.9 cheap no2 0.62")
	if len(got) != 2 {
		t.Fatalf("expected two commands, got %v", got)
	}
	if got[0].PlanType != models.PlanTypeFixed {
		t.Fatalf("expected first command plan type %q, got %q", models.PlanTypeFixed, got[0].PlanType)
	}
	if got[1].PlanType != "" {
		t.Fatalf("expected second command without plan type, got %q", got[1].PlanType)
	}
}

func TestParse_ListCommasBetweenTokens(t *testing.T) {
	t.Parallel()

	got := Parse("kilden, no1, 0,59")
	if len(got) != 1 {
		t.Fatalf("expected one command, got %v", got)
	}
	if got[0].Price != 0.59 {
		t.Fatalf("expected price 0.59, got %v", got[0].Price)
	}
}
