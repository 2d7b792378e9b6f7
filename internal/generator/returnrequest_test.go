package generator

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

func testSetup(seed int64) (*utils.Random, *gofakeit.Faker, *config.Config) {
	rng := utils.NewRandom(seed)
	return rng, gofakeit.New(rng.Seed()), config.DefaultConfig()
}

func testCatalog(rng *utils.Random, faker *gofakeit.Faker, cfg *config.Config, n int) []models.Product {
	return NewProductGenerator(rng, faker, cfg.Products).GenerateCatalog(n)
}

func TestReturnRequestShape(t *testing.T) {
	rng, faker, cfg := testSetup(42)
	catalog := testCatalog(rng, faker, cfg, 5)

	gen, err := NewReturnRequestGenerator(rng, faker, cfg, catalog)
	if err != nil {
		t.Fatalf("NewReturnRequestGenerator failed: %v", err)
	}

	now := time.Now()
	for i := 0; i < 500; i++ {
		req := gen.GenerateEvent(now)

		if len(req.Addresses) < 1 || len(req.Addresses) > 2 {
			t.Fatalf("Expected 1 or 2 addresses, got %d", len(req.Addresses))
		}
		if req.Addresses[0].Name != models.AddressNameBilling {
			t.Fatalf("First address named %q, want %q", req.Addresses[0].Name, models.AddressNameBilling)
		}
		if len(req.Addresses) == 2 && req.Addresses[1].Name != models.AddressNameShipping {
			t.Fatalf("Second address named %q, want %q", req.Addresses[1].Name, models.AddressNameShipping)
		}

		rc := cfg.ReturnRequests
		if len(req.Returns) < rc.MinProducts || len(req.Returns) > rc.MaxProducts {
			t.Fatalf("Return line count %d outside [%d, %d]", len(req.Returns), rc.MinProducts, rc.MaxProducts)
		}
		for _, line := range req.Returns {
			if line.Quantity < rc.MinQuantity || line.Quantity > rc.MaxQuantity {
				t.Fatalf("Quantity %d outside [%d, %d]", line.Quantity, rc.MinQuantity, rc.MaxQuantity)
			}
			if !slices.Contains(rc.Reasons, line.Reason) {
				t.Fatalf("Reason %q not in configured list", line.Reason)
			}
		}

		cc := cfg.Customers
		if len(req.Customer.Emails) < cc.MinEmails || len(req.Customer.Emails) > cc.MaxEmails {
			t.Fatalf("Email count %d outside [%d, %d]", len(req.Customer.Emails), cc.MinEmails, cc.MaxEmails)
		}
	}
}

func TestReturnRequestAddressReuse(t *testing.T) {
	rng, faker, cfg := testSetup(42)
	cfg.Addresses.ReuseRatio = 1.0
	catalog := testCatalog(rng, faker, cfg, 3)

	gen, err := NewReturnRequestGenerator(rng, faker, cfg, catalog)
	if err != nil {
		t.Fatalf("NewReturnRequestGenerator failed: %v", err)
	}

	now := time.Now()
	for i := 0; i < 1000; i++ {
		req := gen.GenerateEvent(now)
		if len(req.Addresses) != 1 {
			t.Fatalf("With reuse ratio 1.0 expected exactly 1 address, got %d", len(req.Addresses))
		}
	}
}

func TestReturnRequestSizeIssueProducts(t *testing.T) {
	rng, faker, cfg := testSetup(42)
	cfg.ReturnRequests.SizeIssueRatio = 1.0
	catalog := testCatalog(rng, faker, cfg, 1)

	gen, err := NewReturnRequestGenerator(rng, faker, cfg, catalog)
	if err != nil {
		t.Fatalf("NewReturnRequestGenerator failed: %v", err)
	}

	now := time.Now()
	for i := 0; i < 200; i++ {
		req := gen.GenerateEvent(now)
		for _, line := range req.Returns {
			if line.Product.ID != catalog[0].ID {
				t.Fatalf("With size-issue ratio 1.0 and a single candidate, got product %q, want %q",
					line.Product.ID, catalog[0].ID)
			}
		}
	}
}

func TestReturnRequestShouldReview(t *testing.T) {
	rng, faker, cfg := testSetup(42)
	catalog := testCatalog(rng, faker, cfg, 3)

	t.Run("Ratio zero never reviews", func(t *testing.T) {
		cfg.ReturnRequests.ReviewRatio = 0
		gen, err := NewReturnRequestGenerator(rng, faker, cfg, catalog)
		if err != nil {
			t.Fatalf("NewReturnRequestGenerator failed: %v", err)
		}
		for i := 0; i < 1000; i++ {
			if gen.ShouldReview() {
				t.Fatal("ShouldReview fired with ratio 0")
			}
		}
	})

	t.Run("Ratio one always reviews", func(t *testing.T) {
		cfg.ReturnRequests.ReviewRatio = 1
		gen, err := NewReturnRequestGenerator(rng, faker, cfg, catalog)
		if err != nil {
			t.Fatalf("NewReturnRequestGenerator failed: %v", err)
		}
		for i := 0; i < 1000; i++ {
			if !gen.ShouldReview() {
				t.Fatal("ShouldReview didn't fire with ratio 1")
			}
		}
	})
}

func TestReturnRequestConstructionErrors(t *testing.T) {
	rng, faker, cfg := testSetup(42)
	catalog := testCatalog(rng, faker, cfg, 3)

	t.Run("Inverted quantity bounds", func(t *testing.T) {
		bad := config.DefaultConfig()
		bad.ReturnRequests.MinQuantity = 5
		bad.ReturnRequests.MaxQuantity = 2
		if _, err := NewReturnRequestGenerator(rng, faker, bad, catalog); err == nil {
			t.Error("Expected error for min quantity > max quantity")
		}
	})

	t.Run("Empty reason list", func(t *testing.T) {
		bad := config.DefaultConfig()
		bad.ReturnRequests.Reasons = nil
		_, err := NewReturnRequestGenerator(rng, faker, bad, catalog)
		if !errors.Is(err, utils.ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Empty size-issue list with positive ratio", func(t *testing.T) {
		_, err := NewReturnRequestGenerator(rng, faker, cfg, nil)
		if !errors.Is(err, utils.ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Empty size-issue list with zero ratio is fine", func(t *testing.T) {
		ok := config.DefaultConfig()
		ok.ReturnRequests.SizeIssueRatio = 0
		if _, err := NewReturnRequestGenerator(rng, faker, ok, nil); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}
