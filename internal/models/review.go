package models

import (
	"encoding/json"
	"time"
)

// ProductReview is a review posted for a product, typically chained after
// a return request. Reviews for products with a known size issue skew low
// and complain about sizing.
type ProductReview struct {
	ID         string  `json:"id"`
	Product    Product `json:"product"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	ReviewTime string  `json:"reviewtime"`

	EventTime time.Time `json:"-"`
}

// Encode renders the review as a JSON payload.
func (r ProductReview) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Key returns the partition key for the review stream.
func (r ProductReview) Key() string {
	return r.Product.Description
}
