package models

// PriceZone is one of the five Norwegian electricity market areas, or ALLE
// for offers displayed across all zones.
type PriceZone string

const (
	ZoneNO1 PriceZone = "NO1"
	ZoneNO2 PriceZone = "NO2"
	ZoneNO3 PriceZone = "NO3"
	ZoneNO4 PriceZone = "NO4"
	ZoneNO5 PriceZone = "NO5"
	// ZoneAll is a display grouping only. It is never a match target for
	// price updates.
	ZoneAll PriceZone = "ALLE"
)

// AllPriceZones returns the five real market zones, in display order.
func AllPriceZones() []PriceZone {
	return []PriceZone{ZoneNO1, ZoneNO2, ZoneNO3, ZoneNO4, ZoneNO5}
}

// IsMarketZone reports whether z is one of NO1..NO5.
func (z PriceZone) IsMarketZone() bool {
	switch z {
	case ZoneNO1, ZoneNO2, ZoneNO3, ZoneNO4, ZoneNO5:
		return true
	}
	return false
}

// DisplayName returns the zone code together with its common region name.
func (z PriceZone) DisplayName() string {
	switch z {
	case ZoneNO1:
		return "NO1 – Øst-Norge"
	case ZoneNO2:
		return "NO2 – Sør-Norge"
	case ZoneNO3:
		return "NO3 – Midt-Norge"
	case ZoneNO4:
		return "NO4 – Nord-Norge"
	case ZoneNO5:
		return "NO5 – Vest-Norge"
	case ZoneAll:
		return "Alle soner"
	}
	return string(z)
}

// Plan type identifiers as they appear in parsed commands and plan names.
const (
	PlanTypeSpot  = "spotpris"
	PlanTypeFixed = "fastpris"
)

// Plan represents one electricity offer in the catalog. Plans live as a
// single JSON collection in the plan store, not in MySQL.
type Plan struct {
	ID           string  `json:"id" validate:"required"`
	SupplierName string  `json:"supplierName" validate:"required,min=2,max=100"`
	PlanName     string  `json:"planName" validate:"required,min=2,max=150"`
	PricePerKwh  float64 `json:"pricePerKwh"` // øre/kWh, negative = promotional discount
	MonthlyFee   float64 `json:"monthlyFee" validate:"gte=0"`
	BindingTime  int     `json:"bindingTime" validate:"gte=0"` // months, 0 = no lock-in
	// BindingTimeText overrides the rendered binding time when set
	// (e.g. "Ingen bindingstid").
	BindingTimeText     string    `json:"bindingTimeText,omitempty"`
	TerminationFee      *float64  `json:"terminationFee,omitempty"`
	TermsGuarantee      string    `json:"termsGuarantee,omitempty"`
	GuaranteeDisclaimer string    `json:"guaranteeDisclaimer,omitempty"`
	PriceZone           PriceZone `json:"priceZone" validate:"required"`
	LogoURL             string    `json:"logoUrl,omitempty"`
	AffiliateLink       string    `json:"affiliateLink" validate:"required,url"`
	Featured            bool      `json:"featured"`
	SortOrder           *int      `json:"sortOrder,omitempty"` // lower sorts first
}
