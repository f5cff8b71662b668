package priceupdate

import (
	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// Fixed vocabulary for the chat command language. Tokens are matched after
// lower-casing, so every key here must be lower case. The tables cover
// English, Norwegian and Swedish forms.

// supplierSynonyms maps a recognized token to the canonical supplier name.
// Multi-word supplier names are recognized by their distinctive first token
// ("kilden kraft" matches on "kilden", the trailing "kraft" is dropped as
// an unknown token).
var supplierSynonyms = map[string]string{
	"kilden": "Kilden Kraft",
	"cheap":  "Cheap Energy Norge",
}

// zoneSynonyms maps zone codes and compass-direction names to market zones.
var zoneSynonyms = map[string]models.PriceZone{
	"no1":  models.ZoneNO1,
	"east": models.ZoneNO1,
	"øst":  models.ZoneNO1,
	"ost":  models.ZoneNO1,
	"öst":  models.ZoneNO1,

	"no2":   models.ZoneNO2,
	"south": models.ZoneNO2,
	"sør":   models.ZoneNO2,
	"sor":   models.ZoneNO2,
	"syd":   models.ZoneNO2,

	"no3":     models.ZoneNO3,
	"central": models.ZoneNO3,
	"midt":    models.ZoneNO3,
	"mitt":    models.ZoneNO3,

	"no4":   models.ZoneNO4,
	"north": models.ZoneNO4,
	"nord":  models.ZoneNO4,
	"norr":  models.ZoneNO4,

	"no5":  models.ZoneNO5,
	"west": models.ZoneNO5,
	"vest": models.ZoneNO5,
	"väst": models.ZoneNO5,
	"vast": models.ZoneNO5,
}

// planTypeSynonyms maps tokens to the canonical plan type identifiers.
var planTypeSynonyms = map[string]string{
	"spot":     models.PlanTypeSpot,
	"spotpris": models.PlanTypeSpot,
	"fixed":    models.PlanTypeFixed,
	"fast":     models.PlanTypeFixed,
	"fastpris": models.PlanTypeFixed,
}

// fillerWords are action and glue keywords that carry no command data.
// Unknown tokens are dropped anyway; this set documents the recognized
// command verbs across the three languages.
var fillerWords = map[string]struct{}{
	"set":       {},
	"sett":      {},
	"sätt":      {},
	"update":    {},
	"oppdater":  {},
	"uppdatera": {},
	"endre":     {},
	"change":    {},
	"to":        {},
	"til":       {},
	"till":      {},
	"in":        {},
	"i":         {},
	"pris":      {},
	"prisen":    {},
	"price":     {},
	"øre":       {},
	"ore":       {},
	"öre":       {},
	"and":       {},
	"og":        {},
	"och":       {},
}
