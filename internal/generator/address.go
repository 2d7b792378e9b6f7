package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// DefaultCountry is the locale all generated addresses live in.
var DefaultCountry = models.Country{Code: "US", Name: "United States"}

// AddressGenerator synthesizes postal addresses with a bounded number of
// contact phones, and decides billing/shipping address reuse.
type AddressGenerator struct {
	rng        *utils.Random
	faker      *gofakeit.Faker
	phones     utils.Range
	reuseRatio float64
	country    models.Country
}

// NewAddressGenerator creates an address generator, rejecting inverted
// phone bounds up front.
func NewAddressGenerator(rng *utils.Random, faker *gofakeit.Faker, cfg config.AddressesConfig) (*AddressGenerator, error) {
	phones, err := utils.NewRange(cfg.MinPhones, cfg.MaxPhones)
	if err != nil {
		return nil, fmt.Errorf("address phones: %w", err)
	}
	return &AddressGenerator{
		rng:        rng,
		faker:      faker,
		phones:     phones,
		reuseRatio: cfg.ReuseRatio,
		country:    DefaultCountry,
	}, nil
}

// Generate synthesizes one address.
func (g *AddressGenerator) Generate() models.Address {
	count := g.phones.Sample(g.rng)
	phones := make([]string, 0, count)
	for i := 0; i < count; i++ {
		phones = append(phones, g.faker.PhoneFormatted())
	}

	return models.Address{
		Number:  g.rng.IntRange(1, 9999),
		Street:  g.faker.StreetName(),
		City:    g.faker.City(),
		Zipcode: g.faker.Zip(),
		Country: g.country,
		Phones:  phones,
	}
}

// GenerateNamed builds the address list for an event: always a billing
// address first, plus a distinct shipping address unless the reuse ratio
// decides the billing address serves both roles.
func (g *AddressGenerator) GenerateNamed() []models.NamedAddress {
	addresses := []models.NamedAddress{
		{Name: models.AddressNameBilling, Address: g.Generate()},
	}
	if !g.rng.Probability(g.reuseRatio) {
		addresses = append(addresses, models.NamedAddress{
			Name:    models.AddressNameShipping,
			Address: g.Generate(),
		})
	}
	return addresses
}
