package queries

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const productsCacheKeyPrefix = "grocery:products:"

// GetVendorProductsQueryHandler retrieves a supermarket's catalog, cached per
// vendor in Redis. Cache failures fall through to the database.
type GetVendorProductsQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewGetVendorProductsQueryHandler creates a handler for catalog reads.
func NewGetVendorProductsQueryHandler(db *gorm.DB, cache *redis.Client) GetVendorProductsQueryHandler {
	return GetVendorProductsQueryHandler{db: db, cache: cache}
}

// Handle executes the catalog read, grouped by category then name.
func (h GetVendorProductsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorProductsQuery,
) ([]GetVendorProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := productsCacheKeyPrefix + query.VendorID().String()
	if cached, err := h.cache.Get(ctx, cacheKey).Result(); err == nil {
		var products []GetVendorProductsQueryResponse
		if err = json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	products := make([]GetVendorProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			unit,
			category,
			image
		FROM products
		WHERE vendor_id = ?
		ORDER BY category, name
	`, query.VendorID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVendorProductsQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.PriceCents, &resp.Unit, &resp.Category, &resp.Image); err != nil {
			return nil, err
		}
		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(products); err == nil {
		_ = h.cache.Set(ctx, cacheKey, encoded, directoryCacheTTL).Err()
	}

	return products, nil
}
