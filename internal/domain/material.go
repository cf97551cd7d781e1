// Package domain defines the core types and interfaces for the crafting
// simulator. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Material is a named quantity of some good, used for both the inputs a
// recipe consumes and the outputs it produces per application.
type Material struct {
	Name     string `toml:"material"`
	Quantity int    `toml:"quantity"`
}

// Line renders the material as "<quantity> <name>\n".
func (m Material) Line() string {
	return strconv.Itoa(m.Quantity) + " " + m.Name + "\n"
}

// Listing concatenates the Line of every material in order.
func Listing(materials []Material) string {
	var b strings.Builder
	for _, m := range materials {
		b.WriteString(m.Line())
	}
	return b.String()
}

// Tier is the outcome class selected by a single roll.
type Tier int

const (
	TierFail Tier = iota
	TierPartial
	TierNormal
	TierBonus
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierFail:
		return "fail"
	case TierPartial:
		return "partial"
	case TierNormal:
		return "normal"
	case TierBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Yield is a produced quantity. Partial and bonus multipliers make it
// fractional, so it is not a Material.
type Yield struct {
	Name     string
	Quantity float64
}

// Line renders the yield as "<quantity> <name>\n" with the shortest
// decimal representation of the quantity ("7.5", "3", "1.1").
func (y Yield) Line() string {
	return FormatQuantity(y.Quantity) + " " + y.Name + "\n"
}

// Fractional quantities are kept in hundredths. The yield multipliers
// never need more.
const quantityScale = 100

// RoundQuantity rounds q to the nearest hundredth.
func RoundQuantity(q float64) float64 {
	return math.Round(q*quantityScale) / quantityScale
}

// FormatQuantity renders q rounded to hundredths in its shortest form.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(RoundQuantity(q), 'f', -1, 64)
}

// FailText is the description of an application that produced nothing.
const FailText = "Fail to produce."

// Outcome is the result of applying a recipe once.
type Outcome struct {
	Tier   Tier
	Yields []Yield // empty on TierFail
}

// Produced reports whether the application yielded anything.
func (o Outcome) Produced() bool {
	return o.Tier != TierFail
}

// String renders the outcome in the line format callers parse.
func (o Outcome) String() string {
	if o.Tier == TierFail {
		return FailText
	}
	var b strings.Builder
	for _, y := range o.Yields {
		b.WriteString(y.Line())
	}
	return b.String()
}
