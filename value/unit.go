/*
unit.go - Unit tags

PURPOSE:
  A Unit is a tag, not a value: it carries a Category and an optional Code
  (a currency code for Money, a percent-representation tag for Percent, or
  a domain-specific quantity tag for an open extension category). Units are
  compared by (Category, Code) equality - see SameUnit.

BASE CATEGORIES:
  Money         - requires a Code (currency, e.g. "USD")
  Ratio         - unitless ratio, e.g. 0.4
  Percent       - a Ratio for display purposes; interchangeable with Ratio
                  in arithmetic (see Unit.IsRatioish)
  Dimensionless - plain number, no unit semantics at all

OPEN EXTENSION:
  Any other Category value is accepted (e.g. "quantity") with an
  application-defined Code (e.g. "kg", "seat"). The unit algebra in
  unitalgebra.go only defines rules for the base categories; a custom
  category combines only with a Dimensionless right operand, under
  multiplication (keeping its unit) or power. Adding two custom units,
  even identical ones, fails.
*/
package value

import "fmt"

// Category is the closed-plus-open tag identifying what kind of quantity a
// Value's amount represents.
type Category string

const (
	CategoryMoney         Category = "money"
	CategoryRatio         Category = "ratio"
	CategoryPercent       Category = "percent"
	CategoryDimensionless Category = "dimensionless"
)

// Unit is a category plus an optional code. It carries no amount.
type Unit struct {
	Category Category
	Code     string
}

// Money returns a Money unit tagged with the given ISO-4217-ish currency code.
func Money(code string) Unit { return Unit{Category: CategoryMoney, Code: code} }

// Ratio returns the unitless Ratio unit.
func Ratio() Unit { return Unit{Category: CategoryRatio} }

// Percent returns the Percent unit. Percent stores the same underlying ratio
// as Ratio; Percent only changes how a Formatter displays the value.
func Percent() Unit { return Unit{Category: CategoryPercent} }

// Dimensionless returns the plain-number unit.
func Dimensionless() Unit { return Unit{Category: CategoryDimensionless} }

// Custom returns an open-extension unit for a domain-specific quantity, e.g.
// Custom("quantity", "kg").
func Custom(category Category, code string) Unit { return Unit{Category: category, Code: code} }

// IsMoney reports whether u is the Money category.
func (u Unit) IsMoney() bool { return u.Category == CategoryMoney }

// IsRatioish reports whether u is Ratio or Percent - the two are
// interchangeable for arithmetic purposes.
func (u Unit) IsRatioish() bool { return u.Category == CategoryRatio || u.Category == CategoryPercent }

// IsDimensionless reports whether u is the Dimensionless category.
func (u Unit) IsDimensionless() bool { return u.Category == CategoryDimensionless }

// SameUnit reports whether two units are "same-unit-compatible": their
// category and code both match. Percent and Ratio are NOT SameUnit with
// each other (they are interchangeable in arithmetic via IsRatioish, but
// AsRatio/AsPercentage round-tripping is an explicit conversion, not identity).
func (u Unit) SameUnit(other Unit) bool {
	return u.Category == other.Category && u.Code == other.Code
}

func (u Unit) String() string {
	if u.Code == "" {
		return string(u.Category)
	}
	return fmt.Sprintf("%s(%s)", u.Category, u.Code)
}
