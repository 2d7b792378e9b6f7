package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// OutOfStockGenerator synthesizes out-of-stock notices. A notice can only
// be derived from an existing order: there is deliberately no
// generate-from-nothing operation on this type, because there would be no
// product to notify about.
type OutOfStockGenerator struct {
	timing          Timing
	rng             *utils.Random
	restockingDelay utils.Range
}

// NewOutOfStockGenerator creates an out-of-stock generator, rejecting
// inverted restocking-delay bounds up front.
func NewOutOfStockGenerator(rng *utils.Random, cfg config.OutOfStocksConfig) (*OutOfStockGenerator, error) {
	delay, err := utils.NewRange(cfg.RestockingMinDelay, cfg.RestockingMaxDelay)
	if err != nil {
		return nil, fmt.Errorf("restocking delay: %w", err)
	}
	return &OutOfStockGenerator{
		timing:          NewTiming(cfg.Stream),
		rng:             rng,
		restockingDelay: delay,
	}, nil
}

// Timing exposes the stream timing for the emission harness.
func (g *OutOfStockGenerator) Timing() Timing {
	return g.timing
}

// Generate synthesizes a notice for one product picked uniformly from the
// order. Orders whose picked description cannot be parsed back into a
// product yield no event; the second return value reports whether a
// notice was produced. The caller decides whether to retry with another
// order or skip the emission.
func (g *OutOfStockGenerator) Generate(order models.OnlineOrder) (models.OutOfStock, bool) {
	description, err := utils.Pick(g.rng, order.Products)
	if err != nil {
		return models.OutOfStock{}, false
	}

	product, err := models.ParseDescription(description)
	if err != nil {
		return models.OutOfStock{}, false
	}

	now := g.timing.Now(g.rng)
	delay := g.restockingDelay.Sample(g.rng)
	restock := now.UTC().AddDate(0, 0, delay)

	return models.OutOfStock{
		ID:             uuid.New().String(),
		Timestamp:      now.UnixMilli(),
		Product:        product,
		RestockingDate: int(restock.Unix() / 86400),
		EventTime:      now,
	}, true
}
