package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase/interfaces"
)

var (
	ErrInvalidTenantID      = errors.New("invalid tenant id")
	ErrInvalidPricingConfig = errors.New("invalid pricing config")
)

// IPricingConfigUseCase exposes per-tenant pricing configuration operations.
//
// GetOrCreate implements the defaulting-on-missing pattern at the
// collaborator boundary: the calculator itself never touches persistence.
type IPricingConfigUseCase interface {
	GetOrCreate(ctx context.Context, tenantID string) (entities.PricingConfig, error)
	Update(ctx context.Context, tenantID string, cfg entities.PricingConfig) (entities.PricingConfig, error)
}

type PricingConfigUseCase struct {
	repo interfaces.IPricingConfigRepository
}

var _ IPricingConfigUseCase = (*PricingConfigUseCase)(nil)

func NewPricingConfigUseCase(repo interfaces.IPricingConfigRepository) *PricingConfigUseCase {
	return &PricingConfigUseCase{repo: repo}
}

func (u *PricingConfigUseCase) GetOrCreate(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.PricingConfig{}, ErrInvalidTenantID
	}

	cfg, err := u.repo.Get(ctx, tenantID)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if cfg.TenantID != "" {
		return cfg, nil
	}

	def := entities.DefaultPricingConfig(tenantID)
	def.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, def)
}

func (u *PricingConfigUseCase) Update(ctx context.Context, tenantID string, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.PricingConfig{}, ErrInvalidTenantID
	}
	if err := validatePricingConfig(cfg); err != nil {
		return entities.PricingConfig{}, err
	}

	cfg.TenantID = tenantID
	cfg.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, cfg)
}

// validatePricingConfig rejects structurally impossible rates: multipliers
// and prices must be non-negative. Enabled flags are business data and not
// validated here.
func validatePricingConfig(cfg entities.PricingConfig) error {
	for _, r := range cfg.RoomPricing {
		if r.Rate < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, m := range cfg.MaterialGrades {
		if m.Multiplier < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, m := range cfg.FinishTypes {
		if m.Multiplier < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, opt := range cfg.LivingArea {
		if opt.Price < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, w := range cfg.Kitchen.WoodTypes {
		if w.Multiplier < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, l := range cfg.Kitchen.Layouts {
		if l.BasePrice < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, a := range cfg.Kitchen.AddOns {
		if a.Price < 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, c := range cfg.Bedrooms.Counts {
		if c.BasePrice < 0 {
			return ErrInvalidPricingConfig
		}
	}
	if cfg.Bedrooms.MasterBedroom.AdditionalPrice < 0 ||
		cfg.Bedrooms.Wardrobe.PricePerBedroom < 0 ||
		cfg.Bedrooms.StudyUnit.PricePerUnit < 0 {
		return ErrInvalidPricingConfig
	}
	return nil
}
