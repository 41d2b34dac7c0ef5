package interfaces

import (
	"context"

	"dekora_studio/internal/domain/entities"
)

// IPricingConfigRepository abstracts persistence for the per-tenant pricing
// configuration. Get returns a zero-value config (TenantID == "") when the
// tenant has none yet; Put overwrites the whole document. Configs are never
// deleted.
type IPricingConfigRepository interface {
	Get(ctx context.Context, tenantID string) (entities.PricingConfig, error)
	Put(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
}
