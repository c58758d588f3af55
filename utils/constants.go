package utils

import "time"

// Catalog cache keys.
const (
	CatalogActiveKey         = "catalog:active"
	CatalogCategoryKeyPrefix = "catalog:category:"
)

// DefaultCacheTTL is used when no ttl is configured.
const DefaultCacheTTL = 10 * time.Minute
