package generator

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// ReturnRequestGenerator synthesizes return request events. Products with
// a size issue are drawn from an externally supplied candidate list; the
// generator never mutates it.
type ReturnRequestGenerator struct {
	timing    Timing
	rng       *utils.Random
	customers *CustomerGenerator
	addresses *AddressGenerator
	products  *ProductGenerator

	sizeIssueProducts []models.Product
	sizeIssueRatio    float64
	productCount      utils.Range
	quantity          utils.Range
	reasons           []string
	reviewRatio       float64
}

// NewReturnRequestGenerator creates a return request generator. The
// size-issue candidate list must be pre-populated whenever the size-issue
// ratio can fire; that's a configuration error, caught here, not during
// generation.
func NewReturnRequestGenerator(rng *utils.Random, faker *gofakeit.Faker, cfg *config.Config, sizeIssueProducts []models.Product) (*ReturnRequestGenerator, error) {
	rc := cfg.ReturnRequests

	if rc.SizeIssueRatio > 0 && len(sizeIssueProducts) == 0 {
		return nil, fmt.Errorf("size-issue products: %w", utils.ErrEmptyInput)
	}
	if len(rc.Reasons) == 0 {
		return nil, fmt.Errorf("return reasons: %w", utils.ErrEmptyInput)
	}

	productCount, err := utils.NewRange(rc.MinProducts, rc.MaxProducts)
	if err != nil {
		return nil, fmt.Errorf("return products: %w", err)
	}
	quantity, err := utils.NewRange(rc.MinQuantity, rc.MaxQuantity)
	if err != nil {
		return nil, fmt.Errorf("return quantity: %w", err)
	}

	customers, err := NewCustomerGenerator(rng, faker, cfg.Customers)
	if err != nil {
		return nil, err
	}
	addresses, err := NewAddressGenerator(rng, faker, cfg.Addresses)
	if err != nil {
		return nil, err
	}

	return &ReturnRequestGenerator{
		timing:            NewTiming(rc.Stream),
		rng:               rng,
		customers:         customers,
		addresses:         addresses,
		products:          NewProductGenerator(rng, faker, cfg.Products),
		sizeIssueProducts: sizeIssueProducts,
		sizeIssueRatio:    rc.SizeIssueRatio,
		productCount:      productCount,
		quantity:          quantity,
		reasons:           rc.Reasons,
		reviewRatio:       rc.ReviewRatio,
	}, nil
}

// Timing exposes the stream timing for the emission harness.
func (g *ReturnRequestGenerator) Timing() Timing {
	return g.timing
}

// GenerateEvent synthesizes one return request stamped with the given
// timestamp.
func (g *ReturnRequestGenerator) GenerateEvent(timestamp time.Time) models.ReturnRequest {
	customer := g.customers.Generate()
	addresses := g.addresses.GenerateNamed()

	count := g.productCount.Sample(g.rng)
	returns := make([]models.ProductReturn, 0, count)
	for i := 0; i < count; i++ {
		var product models.Product
		if g.rng.Probability(g.sizeIssueRatio) {
			product = utils.MustPick(g.rng, g.sizeIssueProducts)
		} else {
			product = g.products.Generate()
		}

		returns = append(returns, models.ProductReturn{
			Product:  product,
			Quantity: g.quantity.Sample(g.rng),
			Reason:   utils.MustPick(g.rng, g.reasons),
		})
	}

	return models.ReturnRequest{
		ID:         uuid.New().String(),
		Customer:   customer,
		Addresses:  addresses,
		Returns:    returns,
		ReturnTime: g.timing.FormatTimestamp(timestamp),
		EventTime:  timestamp,
	}
}

// ShouldReview decides whether the return request just emitted should be
// followed by a product review. Stateless across calls; the frequency is
// the configured review ratio.
func (g *ReturnRequestGenerator) ShouldReview() bool {
	return g.rng.Probability(g.reviewRatio)
}
