package telegram

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/priceupdate"
)

// Fixed bot replies (Norwegian, plain text).
const (
	MsgHelp = "Strømsjef-boten forstår disse kommandoene:\n" +
		"/prices - vis alle strømavtaler\n" +
		"/report - oppsummering per leverandør\n" +
		"/feature <id> - fremhev en avtale\n" +
		"/unfeature <id> - fjern fremheving\n" +
		"/reset - gjenopprett standardkatalogen\n" +
		"/help - vis denne hjelpen\n\n" +
		"Eller skriv en prisoppdatering i fritekst, f.eks.:\n" +
		"\"Sett Kilden i NO1 til 0.59\""

	MsgCouldNotParse = "Forsto ikke meldingen. Skriv f.eks. " +
		"\"Sett Kilden i NO1 til 0.59\", eller bruk /help."

	MsgStoreFailure = "Noe gikk galt mot plan-lageret. Prøv igjen senere."
)

// Dispatcher routes one chat message to a fixed command or to the
// parse/validate/apply pipeline and formats the textual reply.
type Dispatcher struct {
	store   planstore.Store
	applier *priceupdate.Applier
}

func NewDispatcher(store planstore.Store) *Dispatcher {
	return &Dispatcher{
		store:   store,
		applier: priceupdate.NewApplier(store),
	}
}

// Handle produces the reply text for one incoming message. The userID is
// carried for reply context only; authorization happens at the webhook
// boundary.
func (d *Dispatcher) Handle(ctx context.Context, text string, userID int64) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return MsgHelp
	}

	if strings.HasPrefix(trimmed, "/") {
		verb, arg := splitCommand(trimmed)
		switch verb {
		case "/start", "/help":
			return MsgHelp
		case "/prices":
			return d.priceList(ctx)
		case "/report":
			return d.report(ctx)
		case "/reset":
			return d.reset(ctx)
		case "/feature":
			return d.setFeatured(ctx, arg, true)
		case "/unfeature":
			return d.setFeatured(ctx, arg, false)
		}
		return MsgCouldNotParse
	}

	return d.runPipeline(ctx, trimmed)
}

// splitCommand returns the lower-cased command verb (without a trailing
// @botname mention) and the remainder of the message.
func splitCommand(text string) (verb, arg string) {
	verb = text
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		verb, arg = text[:i], strings.TrimSpace(text[i+1:])
	}
	verb = strings.ToLower(verb)
	if i := strings.Index(verb, "@"); i >= 0 {
		verb = verb[:i]
	}
	return verb, arg
}

func (d *Dispatcher) runPipeline(ctx context.Context, text string) string {
	cmds := priceupdate.Parse(text)
	if len(cmds) == 0 {
		return MsgCouldNotParse
	}
	if err := priceupdate.ValidateAll(cmds); err != nil {
		return "Ugyldig kommando: " + err.Error()
	}
	res, err := d.applier.Apply(ctx, cmds)
	if err != nil {
		return MsgStoreFailure
	}
	return res.Message
}

func (d *Dispatcher) priceList(ctx context.Context) string {
	plans, err := d.store.All(ctx)
	if err != nil {
		return MsgStoreFailure
	}
	if len(plans) == 0 {
		return "Katalogen er tom."
	}

	byZone := make(map[models.PriceZone][]models.Plan)
	for _, p := range plans {
		byZone[p.PriceZone] = append(byZone[p.PriceZone], p)
	}

	var b strings.Builder
	zones := append(models.AllPriceZones(), models.ZoneAll)
	for _, zone := range zones {
		zonePlans := byZone[zone]
		if len(zonePlans) == 0 {
			continue
		}
		planstore.SortForDisplay(zonePlans)
		fmt.Fprintf(&b, "%s\n", zone.DisplayName())
		for _, p := range zonePlans {
			marker := ""
			if p.Featured {
				marker = " [fremhevet]"
			}
			fmt.Fprintf(&b, "  %s - %s: %.2f øre/kWh, %.0f kr/mnd%s\n    id: %s\n",
				p.SupplierName, p.PlanName, p.PricePerKwh, p.MonthlyFee, marker, p.ID)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Dispatcher) report(ctx context.Context) string {
	plans, err := d.store.All(ctx)
	if err != nil {
		return MsgStoreFailure
	}

	type summary struct {
		count    int
		featured int
		cheapest float64
	}
	bySupplier := make(map[string]*summary)
	for _, p := range plans {
		s, ok := bySupplier[p.SupplierName]
		if !ok {
			s = &summary{cheapest: p.PricePerKwh}
			bySupplier[p.SupplierName] = s
		}
		s.count++
		if p.Featured {
			s.featured++
		}
		if p.PricePerKwh < s.cheapest {
			s.cheapest = p.PricePerKwh
		}
	}

	suppliers := make([]string, 0, len(bySupplier))
	for name := range bySupplier {
		suppliers = append(suppliers, name)
	}
	sort.Strings(suppliers)

	var b strings.Builder
	fmt.Fprintf(&b, "Katalograpport: %d avtaler totalt\n", len(plans))
	for _, name := range suppliers {
		s := bySupplier[name]
		fmt.Fprintf(&b, "  %s: %d avtaler, %d fremhevet, billigste %.2f øre/kWh\n",
			name, s.count, s.featured, s.cheapest)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Dispatcher) reset(ctx context.Context) string {
	plans := planstore.DefaultPlans()
	if err := d.store.ReplaceAll(ctx, plans); err != nil {
		return MsgStoreFailure
	}
	return fmt.Sprintf("Katalogen er tilbakestilt til %d standardavtaler.", len(plans))
}

func (d *Dispatcher) setFeatured(ctx context.Context, id string, featured bool) string {
	if id == "" {
		if featured {
			return "Bruk: /feature <id>"
		}
		return "Bruk: /unfeature <id>"
	}
	plan, err := planstore.SetFeatured(ctx, d.store, id, featured)
	if err != nil {
		if err == planstore.ErrNotFound {
			return fmt.Sprintf("Fant ingen avtale med id %s.", id)
		}
		return MsgStoreFailure
	}
	if featured {
		return fmt.Sprintf("%s %s er nå fremhevet.", plan.SupplierName, plan.PlanName)
	}
	return fmt.Sprintf("%s %s er ikke lenger fremhevet.", plan.SupplierName, plan.PlanName)
}
