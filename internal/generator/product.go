package generator

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// ProductGenerator synthesizes catalog items from the size/material/style
// vocabulary with a faker-priced tag.
type ProductGenerator struct {
	rng      *utils.Random
	faker    *gofakeit.Faker
	minPrice float64
	maxPrice float64
}

// NewProductGenerator creates a product generator from catalog settings.
func NewProductGenerator(rng *utils.Random, faker *gofakeit.Faker, cfg config.ProductsConfig) *ProductGenerator {
	return &ProductGenerator{
		rng:      rng,
		faker:    faker,
		minPrice: cfg.MinPrice,
		maxPrice: cfg.MaxPrice,
	}
}

// Generate synthesizes one product. The vocabulary lists are compile-time
// constants, so the uniform picks cannot see an empty list.
func (g *ProductGenerator) Generate() models.Product {
	size := utils.MustPick(g.rng, models.Sizes)
	material := utils.MustPick(g.rng, models.Materials)
	style := utils.MustPick(g.rng, models.Styles)

	return models.Product{
		ID:          uuid.New().String(),
		Size:        size,
		Material:    material,
		Style:       style,
		Price:       g.faker.Price(g.minPrice, g.maxPrice),
		Description: models.MakeDescription(size, material, style),
	}
}

// GenerateCatalog synthesizes n distinct-ID products, e.g. the size-issue
// candidate list built once at startup.
func (g *ProductGenerator) GenerateCatalog(n int) []models.Product {
	catalog := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, g.Generate())
	}
	return catalog
}
