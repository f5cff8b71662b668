package planstore

import (
	"github.com/google/uuid"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// DefaultPlans returns the seed catalog written on first run, and restored
// by the bot /reset command.
func DefaultPlans() []models.Plan {
	var plans []models.Plan

	// Kilden Kraft spot offer in every market zone
	for _, zone := range models.AllPriceZones() {
		plans = append(plans, models.Plan{
			ID:            uuid.NewString(),
			SupplierName:  "Kilden Kraft",
			PlanName:      "Spotpris Innkjøpspris",
			PricePerKwh:   0.59,
			MonthlyFee:    39,
			BindingTime:   0,
			PriceZone:     zone,
			AffiliateLink: "https://kildenkraft.no/bestill?ref=stromsjef",
		})
	}

	// Cheap Energy campaign: negative markup, promoted on the front page
	for _, zone := range models.AllPriceZones() {
		plans = append(plans, models.Plan{
			ID:              uuid.NewString(),
			SupplierName:    "Cheap Energy Norge",
			PlanName:        "Spotpris Kampanje",
			PricePerKwh:     -1.7,
			MonthlyFee:      49,
			BindingTime:     0,
			BindingTimeText: "Ingen bindingstid",
			PriceZone:       zone,
			AffiliateLink:   "https://cheapenergy.no/bestill?ref=stromsjef",
			Featured:        true,
		})
	}

	// Fixed-price offers only where fixed contracts are commonly sold
	for _, zone := range []models.PriceZone{models.ZoneNO1, models.ZoneNO2, models.ZoneNO5} {
		plans = append(plans, models.Plan{
			ID:            uuid.NewString(),
			SupplierName:  "Cheap Energy Norge",
			PlanName:      "Fastpris 12 måneder",
			PricePerKwh:   89.9,
			MonthlyFee:    0,
			BindingTime:   12,
			PriceZone:     zone,
			AffiliateLink: "https://cheapenergy.no/fastpris?ref=stromsjef",
		})
	}

	return plans
}
