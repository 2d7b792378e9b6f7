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

// OrderGenerator synthesizes online orders. Orders are the parent events
// that out-of-stock notices are later derived from.
type OrderGenerator struct {
	timing    Timing
	rng       *utils.Random
	customers *CustomerGenerator
	addresses *AddressGenerator
	products  *ProductGenerator
	items     utils.Range
}

// NewOrderGenerator creates an order generator from the full configuration.
func NewOrderGenerator(rng *utils.Random, faker *gofakeit.Faker, cfg *config.Config) (*OrderGenerator, error) {
	items, err := utils.NewRange(cfg.Orders.MinItems, cfg.Orders.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}

	customers, err := NewCustomerGenerator(rng, faker, cfg.Customers)
	if err != nil {
		return nil, err
	}
	addresses, err := NewAddressGenerator(rng, faker, cfg.Addresses)
	if err != nil {
		return nil, err
	}

	return &OrderGenerator{
		timing:    NewTiming(cfg.Orders.Stream),
		rng:       rng,
		customers: customers,
		addresses: addresses,
		products:  NewProductGenerator(rng, faker, cfg.Products),
		items:     items,
	}, nil
}

// Timing exposes the stream timing for the emission harness.
func (g *OrderGenerator) Timing() Timing {
	return g.timing
}

// GenerateEvent synthesizes one order stamped with the given timestamp.
func (g *OrderGenerator) GenerateEvent(timestamp time.Time) models.OnlineOrder {
	count := g.items.Sample(g.rng)
	descriptions := make([]string, 0, count)
	for i := 0; i < count; i++ {
		descriptions = append(descriptions, g.products.Generate().Description)
	}

	return models.OnlineOrder{
		ID:        uuid.New().String(),
		Customer:  g.customers.Generate(),
		Products:  descriptions,
		Addresses: g.addresses.GenerateNamed(),
		OrderTime: g.timing.FormatTimestamp(timestamp),
		EventTime: timestamp,
	}
}
