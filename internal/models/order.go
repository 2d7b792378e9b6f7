package models

import (
	"encoding/json"
	"time"
)

// OnlineOrder is an order placed in the web store. Products are carried as
// free-text descriptions, the way the store front reports them; dependent
// events parse them back into structured products.
type OnlineOrder struct {
	ID        string         `json:"id"`
	Customer  OnlineCustomer `json:"customer"`
	Products  []string       `json:"products"`
	Addresses []NamedAddress `json:"addresses"`
	OrderTime string         `json:"ordertime"`

	// EventTime is the unformatted timestamp, kept for scheduling and
	// record timestamps; it doesn't appear in the payload.
	EventTime time.Time `json:"-"`
}

// Encode renders the order as a JSON payload.
func (o OnlineOrder) Encode() ([]byte, error) {
	return json.Marshal(o)
}

// Key returns the partition key for the order stream.
func (o OnlineOrder) Key() string {
	return o.Customer.ID
}
