// Package schema maps trading template identifiers to their relevant field
// lists and derived-field recalculation rules.
package schema

import (
	"mockshot/internal/domain/models"
	"mockshot/pkg/util"
)

// templateFields is the hand-authored, ordered field list per template.
var templateFields = map[string][]string{
	"daily-pl":          {"profit"},
	"account-summary":   {"accountType", "totalValue", "sharesOwned", "averageCost", "totalGain", "percentage", "todayGain", "date"},
	"gain-loss":         {"date", "proceeds", "costBasis", "profit", "percentage"},
	"realized-pl":       {"profit", "date"},
	"position-details":  {"profit", "accountType"},
	"portfolio-value":   {"totalValue", "todayGain", "percentage", "timePeriod"},
	"profit-chart":      {"profit", "percentage", "timePeriod"},
	"stock-position":    {"symbol", "accountType", "profit", "percentage", "marketValue", "totalCost", "quantity", "currentPrice", "averageCost", "date"},
	"watchlist-item":    {"symbol", "accountType", "currentPrice", "openPL", "dayRPL"},
	"options-position":  {"symbol", "strikePrice", "expirationDate", "quantity", "currentPrice", "averageCost", "marketValue", "date", "todayGain", "profit", "percentage"},
	"day-pl-simple":     {"openPL", "dayRPL"},
	"brokerage-account": {"accountType", "totalValue", "todayGain", "percentage"},
	"filled-order":      {"orderType", "symbol", "strikePrice", "expirationDate", "contractType", "date", "quantity", "filledQuantity", "filledPrice", "proceeds", "costBasis", "profit"},
}

// templateOrder fixes the listing order for the templates endpoint.
var templateOrder = []string{
	"daily-pl",
	"account-summary",
	"gain-loss",
	"realized-pl",
	"position-details",
	"portfolio-value",
	"profit-chart",
	"stock-position",
	"watchlist-item",
	"options-position",
	"day-pl-simple",
	"brokerage-account",
	"filled-order",
}

// rule recomputes derived outputs from named numeric inputs. Inputs must all
// parse as non-zero numbers or the rule is skipped (silent no-op).
type rule struct {
	inputs []string
	apply  func(in map[string]float64) map[string]string
}

var derivations = map[string]rule{
	"gain-loss": {
		inputs: []string{"proceeds", "costBasis"},
		apply: func(in map[string]float64) map[string]string {
			profit := in["proceeds"] - in["costBasis"]
			return map[string]string{
				"profit":     util.FormatMoney(profit),
				"percentage": util.FormatPercent(profit / in["costBasis"] * 100),
			}
		},
	},
	"stock-position": {
		inputs: []string{"quantity", "currentPrice"},
		apply: func(in map[string]float64) map[string]string {
			return map[string]string{
				"marketValue": util.FormatMoney(in["quantity"] * in["currentPrice"]),
			}
		},
	},
	// Options contracts carry the 100-share multiplier.
	"options-position": {
		inputs: []string{"quantity", "currentPrice"},
		apply: func(in map[string]float64) map[string]string {
			return map[string]string{
				"marketValue": util.FormatMoney(in["quantity"] * in["currentPrice"] * 100),
			}
		},
	},
}

// Resolver answers template/field questions for the trading mock.
type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// TemplateIDs returns the known template identifiers in display order.
func (r *Resolver) TemplateIDs() []string {
	return append([]string(nil), templateOrder...)
}

// Known reports whether the template identifier is recognized.
func (r *Resolver) Known(templateID string) bool {
	_, ok := templateFields[templateID]
	return ok
}

// RelevantFields returns the ordered field list for a template. Unknown
// templates yield an empty list, never an error.
func (r *Resolver) RelevantFields(templateID string) []string {
	fields, ok := templateFields[templateID]
	if !ok {
		return []string{}
	}
	return append([]string(nil), fields...)
}

// Derive applies one field edit to the draft and recomputes derived outputs
// when the changed field participates in the active template's rule. Inputs
// read the new value for the changed field and prior values for the rest;
// unparseable or zero inputs leave prior derived values untouched.
func (r *Resolver) Derive(prior models.TradingDraft, changedField, newValue string) models.TradingDraft {
	next := prior.Clone()
	if next.Values == nil {
		next.Values = make(map[string]string)
	}
	next.Values[changedField] = newValue

	dr, ok := derivations[next.Template]
	if !ok {
		return next
	}
	participates := false
	for _, in := range dr.inputs {
		if in == changedField {
			participates = true
			break
		}
	}
	if !participates {
		return next
	}

	inputs := make(map[string]float64, len(dr.inputs))
	for _, name := range dr.inputs {
		v, ok := util.ParseAmount(next.Value(name))
		if !ok || v == 0 {
			return next
		}
		inputs[name] = v
	}

	for field, value := range dr.apply(inputs) {
		next.Values[field] = value
	}
	return next
}
