package generator

import (
	"testing"
	"time"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

func TestOutOfStockFromValidOrder(t *testing.T) {
	rng := utils.NewRandom(42)
	cfg := config.DefaultConfig()

	gen, err := NewOutOfStockGenerator(rng, cfg.OutOfStocks)
	if err != nil {
		t.Fatalf("NewOutOfStockGenerator failed: %v", err)
	}

	order := models.OnlineOrder{
		ID: "order-1",
		Products: []string{
			models.MakeDescription("M", "Stonewashed", "Bootcut"),
			models.MakeDescription("XL", "Distressed", "Skinny"),
		},
	}

	for i := 0; i < 500; i++ {
		oos, ok := gen.Generate(order)
		if !ok {
			t.Fatal("Expected an event from a fully parseable order")
		}

		found := false
		for _, desc := range order.Products {
			if oos.Product.Description == desc {
				found = true
			}
		}
		if !found {
			t.Fatalf("Product %q not drawn from the order", oos.Product.Description)
		}

		if oos.Timestamp != oos.EventTime.UnixMilli() {
			t.Fatalf("Timestamp %d doesn't match event time %v", oos.Timestamp, oos.EventTime)
		}

		eventDay := int(oos.EventTime.UTC().Unix() / 86400)
		delta := oos.RestockingDate - eventDay
		oc := cfg.OutOfStocks
		if delta < oc.RestockingMinDelay || delta > oc.RestockingMaxDelay {
			t.Fatalf("Restocking delta %d days outside [%d, %d]", delta, oc.RestockingMinDelay, oc.RestockingMaxDelay)
		}
	}
}

func TestOutOfStockExactDelay(t *testing.T) {
	rng := utils.NewRandom(42)
	cfg := config.DefaultConfig()
	cfg.OutOfStocks.RestockingMinDelay = 3
	cfg.OutOfStocks.RestockingMaxDelay = 3
	cfg.OutOfStocks.Stream.MaxDelay = 0

	gen, err := NewOutOfStockGenerator(rng, cfg.OutOfStocks)
	if err != nil {
		t.Fatalf("NewOutOfStockGenerator failed: %v", err)
	}

	order := models.OnlineOrder{
		Products: []string{models.MakeDescription("S", "Bleached", "Flare")},
	}

	for i := 0; i < 100; i++ {
		oos, ok := gen.Generate(order)
		if !ok {
			t.Fatal("Expected an event")
		}
		eventDay := int(oos.EventTime.UTC().Unix() / 86400)
		if got := oos.RestockingDate - eventDay; got != 3 {
			t.Fatalf("Restocking delta = %d days, want exactly 3", got)
		}
	}
}

func TestOutOfStockSkipsUnparsableOrders(t *testing.T) {
	rng := utils.NewRandom(42)
	cfg := config.DefaultConfig()

	gen, err := NewOutOfStockGenerator(rng, cfg.OutOfStocks)
	if err != nil {
		t.Fatalf("NewOutOfStockGenerator failed: %v", err)
	}

	t.Run("Unparsable sole description", func(t *testing.T) {
		order := models.OnlineOrder{Products: []string{"a mystery item"}}
		if _, ok := gen.Generate(order); ok {
			t.Error("Expected no event for an unparsable description")
		}
	})

	t.Run("Order without products", func(t *testing.T) {
		order := models.OnlineOrder{Products: nil}
		if _, ok := gen.Generate(order); ok {
			t.Error("Expected no event for an empty product list")
		}
	})
}

func TestOutOfStockConstructionErrors(t *testing.T) {
	rng := utils.NewRandom(42)
	cfg := config.DefaultConfig()
	cfg.OutOfStocks.RestockingMinDelay = 7
	cfg.OutOfStocks.RestockingMaxDelay = 2

	if _, err := NewOutOfStockGenerator(rng, cfg.OutOfStocks); err == nil {
		t.Error("Expected error for inverted restocking delay bounds")
	}
}

func TestTimingJitterAndDuplicates(t *testing.T) {
	rng := utils.NewRandom(42)

	t.Run("Jitter bounded by max delay", func(t *testing.T) {
		timing := NewTiming(config.StreamConfig{Interval: time.Second, MaxDelay: 5 * time.Second})
		for i := 0; i < 1000; i++ {
			before := time.Now()
			jittered := timing.Now(rng)
			if jittered.Before(before) {
				t.Fatal("Jittered timestamp before current time")
			}
			if jittered.Sub(before) > 5*time.Second+time.Second {
				t.Fatalf("Jitter offset %v beyond max delay", jittered.Sub(before))
			}
		}
	})

	t.Run("Duplicate ratio edge values", func(t *testing.T) {
		never := NewTiming(config.StreamConfig{Interval: time.Second, DuplicateRatio: 0})
		always := NewTiming(config.StreamConfig{Interval: time.Second, DuplicateRatio: 1})
		for i := 0; i < 1000; i++ {
			if never.ShouldDuplicate(rng) {
				t.Fatal("Duplicate fired with ratio 0")
			}
			if !always.ShouldDuplicate(rng) {
				t.Fatal("Duplicate didn't fire with ratio 1")
			}
		}
	})

	t.Run("Timestamp format", func(t *testing.T) {
		timing := NewTiming(config.StreamConfig{Interval: time.Second})
		ts := time.Date(2025, 3, 9, 8, 7, 6, 50_000_000, time.UTC)
		if got := timing.FormatTimestamp(ts); got != "2025-03-09 08:07:06.050" {
			t.Errorf("FormatTimestamp = %q", got)
		}
	})
}
