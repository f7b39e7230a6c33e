package entity

import (
	"github.com/google/uuid"
)

// Product is the read-only projection of a catalog product this core consumes.
// Catalog management itself lives outside this service.
type Product struct {
	ID     uuid.UUID       // The unique identifier for the product.
	Title  string          // Display title.
	Image  string          // Display image URL.
	Stocks []*ProductStock // Tracked per-variant stock. Empty = stock not tracked.
}

// ProductStock is the available unit count for one weight variant.
type ProductStock struct {
	Weight   string // The variant key, empty for the base variant.
	Quantity int    // Available units.
}
