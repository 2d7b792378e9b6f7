// Package config contains the configuration surface for the event
// generator. Compile-time defaults live here; edit and recompile to tune
// the demo streams.
package config

import "time"

// Stream cadence defaults
const (
	// OrderInterval is how often a new online order is emitted
	OrderInterval = 10 * time.Second

	// ReturnRequestInterval is how often a new return request is emitted
	ReturnRequestInterval = 30 * time.Second

	// OutOfStockInterval is how often an out-of-stock notice is attempted
	OutOfStockInterval = 45 * time.Second

	// EventMaxDelay bounds the random jitter added to event timestamps
	EventMaxDelay = 10 * time.Second

	// DuplicateRatio is the fraction of events published twice, to give
	// downstream consumers at-least-once texture to deal with
	DuplicateRatio = 0.05
)

// Order composition defaults
const (
	OrderMinItems = 1
	OrderMaxItems = 4
)

// Return request composition defaults
const (
	ReturnMinProducts = 1
	ReturnMaxProducts = 3
	ReturnMinQuantity = 1
	ReturnMaxQuantity = 4

	// SizeIssueRatio is the fraction of returned products drawn from the
	// size-issue catalog instead of being synthesized generically
	SizeIssueRatio = 0.25

	// ReviewRatio is the fraction of return requests followed by a review
	ReviewRatio = 0.3
)

// Customer and address defaults
const (
	CustomerMinEmails = 1
	CustomerMaxEmails = 3

	AddressMinPhones = 0
	AddressMaxPhones = 2

	// ReuseAddressRatio is the fraction of events where the billing
	// address doubles as the shipping address
	ReuseAddressRatio = 0.55
)

// Out-of-stock defaults
const (
	// Restocking delay bounds, in days after the notice
	RestockingMinDelay = 1
	RestockingMaxDelay = 5

	// OrderHistorySize bounds the recent-order buffer that out-of-stock
	// notices are synthesized from
	OrderHistorySize = 100
)

// Review defaults
const (
	ReviewMinRating = 1
	ReviewMaxRating = 5

	// SizeIssueMaxRating caps the rating of reviews for size-issue
	// products; they complain, they don't praise
	SizeIssueMaxRating = 2
)

// Product catalog defaults
const (
	ProductMinPrice = 19.99
	ProductMaxPrice = 79.99

	// SizeIssueProducts is how many products are flagged with a size
	// issue when the catalog is built at startup
	SizeIssueProducts = 10
)

// TimestampFormat is the layout used for formatted event timestamps.
const TimestampFormat = "2006-01-02 15:04:05.000"

// DefaultReturnReasons are the reasons a returned product can carry.
var DefaultReturnReasons = []string{
	"Too small",
	"Too big",
	"Poor quality",
	"Changed my mind",
	"Wrong item shipped",
	"Arrived too late",
	"No longer needed",
}

// DefaultReviewComments are review texts for products without a known issue.
var DefaultReviewComments = []string{
	"Happy with the purchase",
	"Does what it says on the tin",
	"Decent for the price",
	"Not quite what I expected",
	"Would buy again",
}

// DefaultSizeIssueComments are review texts for size-issue products.
var DefaultSizeIssueComments = []string{
	"Runs small, size up",
	"Sizing is way off",
	"Had to return it, didn't fit",
	"Much tighter than the size chart suggests",
}
