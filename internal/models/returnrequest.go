package models

import (
	"encoding/json"
	"time"
)

// ProductReturn is one line of a return request: a product, how many of it
// are coming back, and why.
type ProductReturn struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Reason   string  `json:"reason"`
}

// ReturnRequest is a customer's request to return one or more products.
// The first address is always the billing address; a distinct shipping
// address is present only when the customer didn't reuse it.
type ReturnRequest struct {
	ID         string          `json:"id"`
	Customer   OnlineCustomer  `json:"customer"`
	Addresses  []NamedAddress  `json:"addresses"`
	Returns    []ProductReturn `json:"returns"`
	ReturnTime string          `json:"returntime"`

	EventTime time.Time `json:"-"`
}

// Encode renders the return request as a JSON payload.
func (r ReturnRequest) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Key returns the partition key for the return request stream.
func (r ReturnRequest) Key() string {
	return r.Customer.ID
}
