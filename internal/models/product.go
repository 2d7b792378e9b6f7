package models

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog vocabulary for the fictional jeans retailer. Product descriptions
// are assembled from one entry of each list, which is what makes them
// parseable back into a structured Product.
var (
	Sizes     = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "3XL"}
	Materials = []string{"Acid-washed", "Stonewashed", "Distressed", "Bleached", "Selvedge", "Coated"}
	Styles    = []string{"Skinny", "Bootcut", "Flare", "Capri", "Jogger", "Straight-leg", "Relaxed"}
)

// ProductType is the trailing word of every product description.
const ProductType = "Jeans"

// Product is a catalog item. Products parsed back from a free-text
// description carry no ID or price.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Size        string  `json:"size"`
	Material    string  `json:"material"`
	Style       string  `json:"style"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description"`
}

// MakeDescription assembles the canonical free-text description
// for a size/material/style combination.
func MakeDescription(size, material, style string) string {
	return strings.Join([]string{size, material, style, ProductType}, " ")
}

// ParseDescription parses a free-text product description back into a
// structured Product. Descriptions that don't follow the
// "<size> <material> <style> Jeans" shape are rejected.
func ParseDescription(description string) (Product, error) {
	tokens := strings.Fields(description)
	if len(tokens) != 4 || tokens[3] != ProductType {
		return Product{}, fmt.Errorf("unparsable product description %q", description)
	}

	size, material, style := tokens[0], tokens[1], tokens[2]
	if !slices.Contains(Sizes, size) {
		return Product{}, fmt.Errorf("unknown size %q in description %q", size, description)
	}
	if !slices.Contains(Materials, material) {
		return Product{}, fmt.Errorf("unknown material %q in description %q", material, description)
	}
	if !slices.Contains(Styles, style) {
		return Product{}, fmt.Errorf("unknown style %q in description %q", style, description)
	}

	return Product{
		Size:        size,
		Material:    material,
		Style:       style,
		Description: description,
	}, nil
}
