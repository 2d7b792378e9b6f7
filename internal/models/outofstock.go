package models

import (
	"encoding/json"
	"time"
)

// OutOfStock announces that a product from a recent order cannot be
// fulfilled, together with the date it is expected back in stock.
// RestockingDate is expressed in days since the Unix epoch.
type OutOfStock struct {
	ID             string  `json:"id"`
	Timestamp      int64   `json:"timestamp"`
	Product        Product `json:"product"`
	RestockingDate int     `json:"restockingdate"`

	EventTime time.Time `json:"-"`
}

// RestockingTime converts the epoch-day restocking date back to a time.
func (o OutOfStock) RestockingTime() time.Time {
	return time.Unix(int64(o.RestockingDate)*24*60*60, 0).UTC()
}

// Encode renders the out-of-stock notice as a JSON payload.
func (o OutOfStock) Encode() ([]byte, error) {
	return json.Marshal(o)
}

// Key returns the partition key for the out-of-stock stream.
func (o OutOfStock) Key() string {
	return o.Product.Description
}
