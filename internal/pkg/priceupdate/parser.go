package priceupdate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// Command is one structured price update parsed from free text. Commands
// are transient: produced by Parse, consumed once by Validate and
// Applier.Apply, never stored.
type Command struct {
	Supplier  string
	PriceZone models.PriceZone
	Price     float64 // øre/kWh
	PlanType  string  // "" matches all plan types for supplier+zone
}

// numberPattern accepts one or more digits with an optional decimal part
// separated by "." or ",". There is no leading-sign grammar, so negative
// numbers never parse as price tokens.
var numberPattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// Parse converts one chat message into zero or more commands. The text is
// lower-cased and split on whitespace and commas; tokens are scanned left
// to right into four accumulator slots. A positive numeric token emits a
// command when both supplier and zone are set, and resets all accumulators,
// which is what allows several commands in one message. Unrecognized
// tokens are dropped silently.
func Parse(text string) []Command {
	var commands []Command

	var supplier string
	var zone models.PriceZone
	var planType string

	for _, token := range tokenize(text) {
		if canonical, ok := supplierSynonyms[token]; ok {
			supplier = canonical
			continue
		}
		if z, ok := zoneSynonyms[token]; ok {
			zone = z
			continue
		}
		if pt, ok := planTypeSynonyms[token]; ok {
			planType = pt
			continue
		}
		if price, ok := parsePrice(token); ok {
			if supplier != "" && zone != "" && price > 0 {
				commands = append(commands, Command{
					Supplier:  supplier,
					PriceZone: zone,
					Price:     price,
					PlanType:  planType,
				})
				supplier, zone, planType = "", "", ""
			}
			continue
		}
		if _, ok := fillerWords[token]; ok {
			continue
		}
		// unknown token, dropped
	}

	return commands
}

// tokenize splits on whitespace and strips list commas from token edges.
// Commas inside a token are kept so "0,59" stays one numeric token with a
// decimal comma.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ",")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func parsePrice(token string) (float64, bool) {
	if !numberPattern.MatchString(token) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
