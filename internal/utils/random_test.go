package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRandomReproducibility(t *testing.T) {
	seed := int64(42)

	rng1 := NewRandom(seed)
	rng2 := NewRandom(seed)

	t.Run("IntN", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v1 := rng1.IntN(1000)
			v2 := rng2.IntN(1000)
			if v1 != v2 {
				t.Errorf("Mismatch at iteration %d: %d != %d", i, v1, v2)
				return
			}
		}
	})

	rng1 = NewRandom(seed)
	rng2 = NewRandom(seed)

	t.Run("Mixed operations", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			if rng1.IntN(100) != rng2.IntN(100) {
				t.Error("IntN mismatch")
				return
			}
			if rng1.Float64() != rng2.Float64() {
				t.Error("Float64 mismatch")
				return
			}
			if rng1.IntRange(10, 20) != rng2.IntRange(10, 20) {
				t.Error("IntRange mismatch")
				return
			}
		}
	})
}

func TestRandomSeedStorage(t *testing.T) {
	rng := NewRandom(12345)
	if rng.Seed() != 12345 {
		t.Errorf("Expected seed 12345, got %d", rng.Seed())
	}

	rng = NewRandom(0)
	if rng.Seed() == 0 {
		t.Error("Expected non-zero auto-generated seed")
	}
}

func TestRandomFork(t *testing.T) {
	seed := int64(42)
	rng1 := NewRandom(seed)
	rng2 := NewRandom(seed)

	fork1 := rng1.Fork()
	fork2 := rng2.Fork()

	for i := 0; i < 100; i++ {
		if fork1.IntN(1000) != fork2.IntN(1000) {
			t.Error("Forked sequences don't match")
			return
		}
	}
}

func TestRandomProbability(t *testing.T) {
	rng := NewRandom(42)

	t.Run("Zero never fires", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			if rng.Probability(0) {
				t.Fatal("Probability(0) returned true")
			}
		}
	})

	t.Run("One always fires", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			if !rng.Probability(1) {
				t.Fatal("Probability(1) returned false")
			}
		}
	})

	t.Run("Half fires roughly half the time", func(t *testing.T) {
		trueCount := 0
		iterations := 10000
		for i := 0; i < iterations; i++ {
			if rng.Probability(0.5) {
				trueCount++
			}
		}
		ratio := float64(trueCount) / float64(iterations)
		if ratio < 0.45 || ratio > 0.55 {
			t.Errorf("Probability(0.5) returned %.2f%% true, expected ~50%%", ratio*100)
		}
	})
}

func TestRange(t *testing.T) {
	rng := NewRandom(42)

	t.Run("Rejects min greater than max", func(t *testing.T) {
		_, err := NewRange(5, 2)
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("NewRange(5, 2) = %v, want ErrInvalidRange", err)
		}
	})

	t.Run("Samples stay within bounds and hit both endpoints", func(t *testing.T) {
		rg, err := NewRange(10, 20)
		if err != nil {
			t.Fatalf("NewRange(10, 20) failed: %v", err)
		}
		sawMin, sawMax := false, false
		for i := 0; i < 10000; i++ {
			v := rg.Sample(rng)
			if v < 10 || v > 20 {
				t.Fatalf("Sample returned %d, outside [10, 20]", v)
			}
			if v == 10 {
				sawMin = true
			}
			if v == 20 {
				sawMax = true
			}
		}
		if !sawMin || !sawMax {
			t.Errorf("Expected both endpoints to be observed (min=%v max=%v)", sawMin, sawMax)
		}
	})

	t.Run("Degenerate range is constant", func(t *testing.T) {
		rg, err := NewRange(7, 7)
		if err != nil {
			t.Fatalf("NewRange(7, 7) failed: %v", err)
		}
		for i := 0; i < 100; i++ {
			if v := rg.Sample(rng); v != 7 {
				t.Fatalf("Sample on [7, 7] returned %d", v)
			}
		}
	})
}

func TestPick(t *testing.T) {
	rng := NewRandom(42)

	t.Run("Every element is reachable", func(t *testing.T) {
		slice := []string{"a", "b", "c", "d", "e"}
		counts := make(map[string]int)
		for i := 0; i < 1000; i++ {
			v, err := Pick(rng, slice)
			if err != nil {
				t.Fatalf("Pick failed: %v", err)
			}
			counts[v]++
		}
		for _, s := range slice {
			if counts[s] == 0 {
				t.Errorf("Element '%s' was never picked", s)
			}
		}
	})

	t.Run("Empty input is an error", func(t *testing.T) {
		_, err := Pick(rng, []string{})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("MustPick panics on empty input", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustPick on empty slice should panic")
			}
		}()
		MustPick(rng, []int{})
	})
}

func TestJitter(t *testing.T) {
	rng := NewRandom(42)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Offset bounded by max delay", func(t *testing.T) {
		maxDelay := 30 * time.Second
		for i := 0; i < 1000; i++ {
			jittered := rng.Jitter(base, maxDelay)
			offset := jittered.Sub(base)
			if offset < 0 || offset > maxDelay {
				t.Fatalf("Jitter offset %v outside [0, %v]", offset, maxDelay)
			}
		}
	})

	t.Run("Zero delay is identity", func(t *testing.T) {
		if !rng.Jitter(base, 0).Equal(base) {
			t.Error("Jitter with zero delay should return the input time")
		}
	})
}
