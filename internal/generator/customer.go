package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// CustomerGenerator synthesizes online customers with a bounded number of
// registered emails.
type CustomerGenerator struct {
	rng    *utils.Random
	faker  *gofakeit.Faker
	emails utils.Range
}

// NewCustomerGenerator creates a customer generator, rejecting inverted
// email bounds up front.
func NewCustomerGenerator(rng *utils.Random, faker *gofakeit.Faker, cfg config.CustomersConfig) (*CustomerGenerator, error) {
	emails, err := utils.NewRange(cfg.MinEmails, cfg.MaxEmails)
	if err != nil {
		return nil, fmt.Errorf("customer emails: %w", err)
	}
	return &CustomerGenerator{rng: rng, faker: faker, emails: emails}, nil
}

// Generate synthesizes one customer.
func (g *CustomerGenerator) Generate() models.OnlineCustomer {
	count := g.emails.Sample(g.rng)
	emails := make([]string, 0, count)
	for i := 0; i < count; i++ {
		emails = append(emails, g.faker.Email())
	}

	return models.OnlineCustomer{
		ID:     uuid.New().String(),
		Name:   g.faker.Name(),
		Emails: emails,
	}
}
