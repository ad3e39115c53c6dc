package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// vendorsCacheKey is where the storefront directory is cached.
// The directory is seeded data, so a short TTL is plenty.
const (
	vendorsCacheKey = "grocery:vendors"
	directoryCacheTTL = 5 * time.Minute
)

// GetVendorsQueryHandler retrieves the supermarket directory, serving it from
// the Redis cache when possible. Cache failures fall through to the database;
// the directory must stay readable without Redis.
type GetVendorsQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewGetVendorsQueryHandler creates a handler for the supermarket directory.
func NewGetVendorsQueryHandler(db *gorm.DB, cache *redis.Client) GetVendorsQueryHandler {
	return GetVendorsQueryHandler{db: db, cache: cache}
}

// Handle executes the directory read.
func (h GetVendorsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorsQuery,
) ([]GetVendorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// any cache failure falls through to the database
	if cached, err := h.cache.Get(ctx, vendorsCacheKey).Result(); err == nil {
		var vendors []GetVendorsQueryResponse
		if err = json.Unmarshal([]byte(cached), &vendors); err == nil {
			return vendors, nil
		}
	}

	vendors := make([]GetVendorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			image,
			delivery_time
		FROM vendors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVendorsQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Address, &resp.Image, &resp.DeliveryTime); err != nil {
			return nil, err
		}
		vendors = append(vendors, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(vendors); err == nil {
		_ = h.cache.Set(ctx, vendorsCacheKey, encoded, directoryCacheTTL).Err()
	}

	return vendors, nil
}
