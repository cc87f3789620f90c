package entity

import "github.com/shopspring/decimal"

// ServiceLine is a salon service on an invoice. Quantity is implicitly 1.
type ServiceLine struct {
	ID       string
	Name     string
	Duration string // display annotation, e.g. "45 mins"
	Staff    string

	Price           decimal.Decimal
	GSTPercent      decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal // derived by the calculator, never set by callers
}

// ProductLine is a retail product sold alongside services.
type ProductLine struct {
	ID       string
	Name     string
	Quantity int64

	UnitPrice       decimal.Decimal
	GSTPercent      decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal // derived by the calculator, never set by callers
}
