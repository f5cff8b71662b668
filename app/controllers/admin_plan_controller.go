package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

// AdminPlanController handles plan CRUD for the admin panel. Every write
// is a whole-collection read-modify-write against the plan store.
type AdminPlanController struct {
	store planstore.Store
}

var adminPlanController *AdminPlanController

// InitializeAdminPlanController wires the controller to the plan store.
func InitializeAdminPlanController() {
	adminPlanController = &AdminPlanController{store: planStore}
}

// GetAdminPlanController returns the initialized controller
func GetAdminPlanController() *AdminPlanController {
	return adminPlanController
}

func (apc *AdminPlanController) handleError(c *fiber.Ctx, message string, err error) error {
	return flashError(c, "/admin/plans", message+": "+err.Error())
}

// HandleAdminPlans renders the plan management list.
func (apc *AdminPlanController) HandleAdminPlans(c *fiber.Ctx) error {
	plans, err := apc.store.All(c.Context())
	if err != nil {
		return apc.handleError(c, "Kunne ikke hente avtaler", err)
	}
	planstore.SortForDisplay(plans)
	return render(c, "admin/plans", fiber.Map{
		"Title": "Avtaler",
		"Plans": plans,
	})
}

// HandleAdminPlanCreate renders the creation form.
func (apc *AdminPlanController) HandleAdminPlanCreate(c *fiber.Ctx) error {
	return render(c, "admin/plan_form", fiber.Map{
		"Title":  "Ny avtale",
		"Plan":   models.Plan{},
		"Zones":  append(models.AllPriceZones(), models.ZoneAll),
		"Action": "/admin/plans/create",
	})
}

// HandleAdminPlanStore creates a new plan from the submitted form.
func (apc *AdminPlanController) HandleAdminPlanStore(c *fiber.Ctx) error {
	plan, err := planFromForm(c)
	if err != nil {
		return flashError(c, "/admin/plans/create", err.Error())
	}
	plan.ID = uuid.NewString()

	if err := validate.Struct(plan); err != nil {
		return flashError(c, "/admin/plans/create", "Ugyldige felter: "+err.Error())
	}

	plans, err := apc.store.All(c.Context())
	if err != nil {
		return apc.handleError(c, "Kunne ikke hente avtaler", err)
	}
	plans = append(plans, plan)
	if err := apc.store.ReplaceAll(c.Context(), plans); err != nil {
		return apc.handleError(c, "Kunne ikke lagre avtalen", err)
	}

	return flashSuccess(c, "/admin/plans", "Avtalen er opprettet")
}

// HandleAdminPlanEdit renders the edit form for one plan.
func (apc *AdminPlanController) HandleAdminPlanEdit(c *fiber.Ctx) error {
	plans, err := apc.store.All(c.Context())
	if err != nil {
		return apc.handleError(c, "Kunne ikke hente avtaler", err)
	}
	plan, ok := planstore.FindByID(plans, c.Params("id"))
	if !ok {
		return flashError(c, "/admin/plans", "Fant ikke avtalen")
	}
	return render(c, "admin/plan_form", fiber.Map{
		"Title":  "Rediger avtale",
		"Plan":   *plan,
		"Zones":  append(models.AllPriceZones(), models.ZoneAll),
		"Action": "/admin/plans/" + plan.ID + "/update",
	})
}

// HandleAdminPlanUpdate applies the submitted form to an existing plan.
func (apc *AdminPlanController) HandleAdminPlanUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	updated, err := planFromForm(c)
	if err != nil {
		return flashError(c, "/admin/plans/"+id+"/edit", err.Error())
	}
	updated.ID = id

	if err := validate.Struct(updated); err != nil {
		return flashError(c, "/admin/plans/"+id+"/edit", "Ugyldige felter: "+err.Error())
	}

	plans, err := apc.store.All(c.Context())
	if err != nil {
		return apc.handleError(c, "Kunne ikke hente avtaler", err)
	}
	plan, ok := planstore.FindByID(plans, id)
	if !ok {
		return flashError(c, "/admin/plans", "Fant ikke avtalen")
	}
	// Feature flag is managed by its own toggle, keep it
	updated.Featured = plan.Featured
	*plan = updated

	if err := apc.store.ReplaceAll(c.Context(), plans); err != nil {
		return apc.handleError(c, "Kunne ikke lagre avtalen", err)
	}
	return flashSuccess(c, "/admin/plans", "Avtalen er oppdatert")
}

// HandleAdminPlanDelete removes a plan from the collection.
func (apc *AdminPlanController) HandleAdminPlanDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	plans, err := apc.store.All(c.Context())
	if err != nil {
		return apc.handleError(c, "Kunne ikke hente avtaler", err)
	}

	kept := plans[:0]
	found := false
	for _, p := range plans {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return flashError(c, "/admin/plans", "Fant ikke avtalen")
	}

	if err := apc.store.ReplaceAll(c.Context(), kept); err != nil {
		return apc.handleError(c, "Kunne ikke slette avtalen", err)
	}
	return flashSuccess(c, "/admin/plans", "Avtalen er slettet")
}

// HandleAdminPlanFeature toggles the featured flag.
func (apc *AdminPlanController) HandleAdminPlanFeature(c *fiber.Ctx) error {
	id := c.Params("id")
	featured := c.FormValue("featured") == "1"

	if _, err := planstore.SetFeatured(c.Context(), apc.store, id, featured); err != nil {
		if err == planstore.ErrNotFound {
			return flashError(c, "/admin/plans", "Fant ikke avtalen")
		}
		return apc.handleError(c, "Kunne ikke oppdatere avtalen", err)
	}
	return flashSuccess(c, "/admin/plans", "Avtalen er oppdatert")
}

// planFromForm reads the shared create/edit form fields.
func planFromForm(c *fiber.Ctx) (models.Plan, error) {
	var plan models.Plan

	plan.SupplierName = strings.TrimSpace(c.FormValue("supplier_name"))
	plan.PlanName = strings.TrimSpace(c.FormValue("plan_name"))
	plan.PriceZone = models.PriceZone(c.FormValue("price_zone"))
	plan.AffiliateLink = strings.TrimSpace(c.FormValue("affiliate_link"))
	plan.LogoURL = strings.TrimSpace(c.FormValue("logo_url"))
	plan.BindingTimeText = strings.TrimSpace(c.FormValue("binding_time_text"))
	plan.TermsGuarantee = strings.TrimSpace(c.FormValue("terms_guarantee"))
	plan.GuaranteeDisclaimer = strings.TrimSpace(c.FormValue("guarantee_disclaimer"))

	if plan.PriceZone != models.ZoneAll && !plan.PriceZone.IsMarketZone() {
		return plan, errInvalidForm("Ugyldig prissone")
	}

	price, err := parseDecimal(c.FormValue("price_per_kwh"))
	if err != nil {
		return plan, errInvalidForm("Ugyldig pris per kWh")
	}
	plan.PricePerKwh = price

	fee, err := parseDecimal(c.FormValue("monthly_fee"))
	if err != nil || fee < 0 {
		return plan, errInvalidForm("Ugyldig månedsgebyr")
	}
	plan.MonthlyFee = fee

	if v := c.FormValue("binding_time"); v != "" {
		months, err := strconv.Atoi(v)
		if err != nil || months < 0 {
			return plan, errInvalidForm("Ugyldig bindingstid")
		}
		plan.BindingTime = months
	}

	if v := c.FormValue("termination_fee"); v != "" {
		fee, err := parseDecimal(v)
		if err != nil {
			return plan, errInvalidForm("Ugyldig bruddgebyr")
		}
		plan.TerminationFee = &fee
	}

	if v := c.FormValue("sort_order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			return plan, errInvalidForm("Ugyldig sortering")
		}
		plan.SortOrder = &order
	}

	return plan, nil
}

// parseDecimal accepts both "." and "," as the decimal separator, matching
// the chat command grammar.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

type errInvalidForm string

func (e errInvalidForm) Error() string { return string(e) }
