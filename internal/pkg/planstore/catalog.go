package planstore

import (
	"sort"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// FilterByZone returns the plans shown on a zone page: records in that zone
// plus records flagged ALLE. An empty zone returns everything.
func FilterByZone(plans []models.Plan, zone models.PriceZone) []models.Plan {
	if zone == "" {
		return plans
	}
	var out []models.Plan
	for _, p := range plans {
		if p.PriceZone == zone || p.PriceZone == models.ZoneAll {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the plans flagged for promotional placement.
func Featured(plans []models.Plan) []models.Plan {
	var out []models.Plan
	for _, p := range plans {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// SortForDisplay orders plans the way the catalog renders them: featured
// first, then explicit sort order, then cheapest per kWh.
func SortForDisplay(plans []models.Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		ao, bo := sortOrderOf(a), sortOrderOf(b)
		if ao != bo {
			return ao < bo
		}
		return a.PricePerKwh < b.PricePerKwh
	})
}

// Plans without an explicit sort order go after those with one.
const unranked = int(^uint(0) >> 1)

func sortOrderOf(p models.Plan) int {
	if p.SortOrder == nil {
		return unranked
	}
	return *p.SortOrder
}
