package domain

import "fmt"

// CustomerCategory identifies which rule set of a jurisdiction applies.
type CustomerCategory string

const (
	CategoryIndividual CustomerCategory = "individual"
	CategoryCompany    CustomerCategory = "company"
)

// Direction describes who sends the transfer: OUT means the origin party
// sends to the counterparty, IN means the counterparty sends to the origin.
type Direction string

const (
	DirectionOut Direction = "OUT"
	DirectionIn  Direction = "IN"
)

// TransactionDescription is the immutable input of one evaluation.
type TransactionDescription struct {
	OriginCountry       string           `json:"origin_country"`
	CounterpartyCountry string           `json:"counterparty_country"`
	CustomerCategory    CustomerCategory `json:"customer_category"`
	Direction           Direction        `json:"direction"`
	Amount              float64          `json:"amount"`
}

// ParseCustomerCategory validates a raw category value at the transport edge.
func ParseCustomerCategory(s string) (CustomerCategory, error) {
	switch CustomerCategory(s) {
	case CategoryIndividual, CategoryCompany:
		return CustomerCategory(s), nil
	}
	return "", fmt.Errorf("unknown customer category %q", s)
}

// ParseDirection validates a raw direction value at the transport edge.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionOut, DirectionIn:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}
