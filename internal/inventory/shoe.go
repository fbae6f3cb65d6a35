package inventory

import (
	"strconv"
	"strings"
)

// Shoe is a single inventory line item
type Shoe struct {
	Country string
	Code    string
	Product string

	cost     float64
	quantity int
}

// NewShoe builds a Shoe from raw text, converting cost and quantity
func NewShoe(country, code, product, costText, quantityText string) (*Shoe, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(costText), 64)
	if err != nil {
		return nil, &ParseError{Field: "cost", Text: costText, Err: err}
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil {
		return nil, &ParseError{Field: "quantity", Text: quantityText, Err: err}
	}
	return &Shoe{
		Country:  country,
		Code:     code,
		Product:  product,
		cost:     cost,
		quantity: quantity,
	}, nil
}

// Cost returns the unit price
func (s *Shoe) Cost() float64 {
	return s.cost
}

// Quantity returns the units on hand
func (s *Shoe) Quantity() int {
	return s.quantity
}

// Value returns cost * quantity
func (s *Shoe) Value() float64 {
	return s.cost * float64(s.quantity)
}

func (s *Shoe) String() string {
	return s.Country + " | " + s.Code + " | " + s.Product +
		" | Cost: " + formatCost(s.cost) +
		" | Quantity: " + strconv.Itoa(s.quantity)
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// fields returns the record in file column order
func (s *Shoe) fields() []string {
	return []string{s.Country, s.Code, s.Product, formatCost(s.cost), strconv.Itoa(s.quantity)}
}
