package priceupdate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// Validate checks the structural validity of one command. Checks run in
// order and stop at the first failure.
//
// Note: price > 0 also rejects negative promotional prices, which the
// catalog itself permits. Promo prices can only be set through the admin
// panel; tests pin this.
func Validate(cmd Command) error {
	if cmd.Supplier == "" {
		return errors.New("Supplier name is required")
	}
	if cmd.PriceZone == "" {
		return errors.New("Price zone is required")
	}
	if !cmd.PriceZone.IsMarketZone() {
		return fmt.Errorf("Price zone must be one of NO1, NO2, NO3, NO4, NO5, got %s", cmd.PriceZone)
	}
	if cmd.Price <= 0 {
		return errors.New("Price must be greater than 0")
	}
	if cmd.PlanType != "" && cmd.PlanType != models.PlanTypeSpot && cmd.PlanType != models.PlanTypeFixed {
		return fmt.Errorf("Plan type must be %s or %s, got %s", models.PlanTypeSpot, models.PlanTypeFixed, cmd.PlanType)
	}
	return nil
}

// ValidateAll validates a batch all-or-nothing: if any command fails, the
// whole batch is rejected with an aggregated error and nothing is applied.
func ValidateAll(cmds []Command) error {
	var msgs []string
	for i, cmd := range cmds {
		if err := Validate(cmd); err != nil {
			msgs = append(msgs, fmt.Sprintf("command %d: %s", i+1, err.Error()))
		}
	}
	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}
