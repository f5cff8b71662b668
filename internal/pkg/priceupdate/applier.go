package priceupdate

import (
	"context"
	"fmt"
	"strings"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

// Result aggregates the outcome of applying a command batch.
type Result struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	UpdatedPlans []string `json:"updated_plans"` // human-readable change lines
	Errors       []string `json:"errors"`
}

// Applier applies validated commands against the plan store.
type Applier struct {
	store planstore.Store
}

func NewApplier(store planstore.Store) *Applier {
	return &Applier{store: store}
}

// Apply matches every command against the collection and overwrites the
// per-kWh price of each hit. A command with zero matches records an error
// but does not stop the batch. The collection is persisted in one write at
// the end, and only when something actually changed. Store failures
// propagate to the caller.
func (a *Applier) Apply(ctx context.Context, cmds []Command) (*Result, error) {
	plans, err := a.store.All(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for _, cmd := range cmds {
		matched := 0
		for i := range plans {
			plan := &plans[i]
			if !strings.EqualFold(plan.SupplierName, cmd.Supplier) {
				continue
			}
			if plan.PriceZone != cmd.PriceZone {
				continue
			}
			if cmd.PlanType != "" && !planNameMatchesType(plan.PlanName, cmd.PlanType) {
				continue
			}
			old := plan.PricePerKwh
			plan.PricePerKwh = cmd.Price
			matched++
			result.UpdatedPlans = append(result.UpdatedPlans,
				fmt.Sprintf("%s %s (%s): %.2f til %.2f øre/kWh", plan.SupplierName, plan.PlanName, plan.PriceZone, old, cmd.Price))
		}
		if matched == 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("No plans found for %s in %s", cmd.Supplier, cmd.PriceZone))
		}
	}

	if len(result.UpdatedPlans) > 0 {
		if err := a.store.ReplaceAll(ctx, plans); err != nil {
			return nil, err
		}
	}

	result.Success = len(result.Errors) == 0 && len(result.UpdatedPlans) > 0
	result.Message = formatMessage(result)
	return result, nil
}

// planNameMatchesType checks the plan-name substring convention: spot plans
// carry "spot" in their name, fixed plans carry "fast".
func planNameMatchesType(planName, planType string) bool {
	name := strings.ToLower(planName)
	switch planType {
	case models.PlanTypeSpot:
		return strings.Contains(name, "spot")
	case models.PlanTypeFixed:
		return strings.Contains(name, "fast")
	}
	return false
}

func formatMessage(r *Result) string {
	var b strings.Builder
	if len(r.UpdatedPlans) > 0 {
		fmt.Fprintf(&b, "Oppdaterte %d pris(er):\n", len(r.UpdatedPlans))
		for _, line := range r.UpdatedPlans {
			b.WriteString("• ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if len(r.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Feil:\n")
		for _, line := range r.Errors {
			b.WriteString("• ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
