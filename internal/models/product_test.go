package models

import "testing"

func TestParseDescription(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		desc := MakeDescription("XL", "Stonewashed", "Bootcut")
		p, err := ParseDescription(desc)
		if err != nil {
			t.Fatalf("ParseDescription(%q) failed: %v", desc, err)
		}
		if p.Size != "XL" || p.Material != "Stonewashed" || p.Style != "Bootcut" {
			t.Errorf("Parsed fields wrong: %+v", p)
		}
		if p.Description != desc {
			t.Errorf("Description not preserved: %q", p.Description)
		}
	})

	t.Run("Rejects malformed descriptions", func(t *testing.T) {
		bad := []string{
			"",
			"Jeans",
			"XL Stonewashed Bootcut",          // missing product type
			"XL Stonewashed Bootcut Chinos",   // wrong product type
			"HUGE Stonewashed Bootcut Jeans",  // unknown size
			"XL Corduroy Bootcut Jeans",       // unknown material
			"XL Stonewashed Asymmetric Jeans", // unknown style
			"XL Stonewashed Bootcut Jeans extra",
		}
		for _, desc := range bad {
			if _, err := ParseDescription(desc); err == nil {
				t.Errorf("ParseDescription(%q) should fail", desc)
			}
		}
	})

	t.Run("All vocabulary combinations parse", func(t *testing.T) {
		for _, size := range Sizes {
			for _, material := range Materials {
				for _, style := range Styles {
					desc := MakeDescription(size, material, style)
					if _, err := ParseDescription(desc); err != nil {
						t.Fatalf("ParseDescription(%q) failed: %v", desc, err)
					}
				}
			}
		}
	})
}

func TestOutOfStockRestockingTime(t *testing.T) {
	oos := OutOfStock{RestockingDate: 20000} // 2024-10-04
	got := oos.RestockingTime()
	if got.Year() != 2024 || got.Month() != 10 || got.Day() != 4 {
		t.Errorf("RestockingTime for epoch day 20000 = %v", got)
	}
}
