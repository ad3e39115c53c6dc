package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/product"
	"grocery/internal/core/domain/model/vendor"
)

// VendorRepository defines the read contract for the seeded supermarket directory.
type VendorRepository interface {
	// Get retrieves a supermarket by identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
}

// ProductCatalog defines the read contract for the seeded product catalog.
// Basket commands resolve products here so clients can never invent prices.
type ProductCatalog interface {
	// GetProduct retrieves a product by identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
