package entities

import "time"

// PricingConfig is the per-tenant pricing configuration read by the estimate
// calculator.
//
// Domain notes:
//   - Every priced line item carries its own Enabled flag. A disabled item
//     never contributes to a total, even if a stale client still selects it.
//   - Multipliers are dimensionless positive scalars; prices are non-negative
//     amounts in the tenant's base currency. No currency conversion.
//   - The config is created with defaults on first access per tenant and only
//     ever overwritten, never deleted.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
type PricingConfig struct {
	TenantID       string                      `json:"tenant_id"`
	RoomPricing    []RoomRate                  `json:"room_pricing"`
	MaterialGrades []Multiplier                `json:"material_grades"`
	FinishTypes    []Multiplier                `json:"finish_types"`
	LivingArea     map[string]LivingAreaOption `json:"living_area"`
	Kitchen        KitchenPricing              `json:"kitchen"`
	Bedrooms       BedroomPricing              `json:"bedrooms"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// RoomRate is the base price for a room type.
type RoomRate struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rate    float64 `json:"rate"`
	Enabled bool    `json:"enabled"`
}

// Multiplier scales a base rate (material grades, finish types, kitchen wood
// types). A disabled multiplier falls back to 1.0 during calculation, never
// to zero: a disabled grade must not wipe out real room cost.
type Multiplier struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Enabled    bool    `json:"enabled"`
}

// LivingAreaOption is a flat add-on (TV unit, sofa unit, showcase, wall
// panel, false ceiling). Never scaled by area or multipliers.
type LivingAreaOption struct {
	Enabled bool    `json:"enabled"`
	Price   float64 `json:"price"`
}

type KitchenLayout struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Enabled   bool    `json:"enabled"`
}

type KitchenAddOn struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Enabled bool    `json:"enabled"`
}

type KitchenPricing struct {
	WoodTypes []Multiplier    `json:"wood_types"`
	Layouts   []KitchenLayout `json:"layouts"`
	AddOns    []KitchenAddOn  `json:"add_ons"`
}

type BedroomCountRate struct {
	Count     int     `json:"count"`
	BasePrice float64 `json:"base_price"`
	Enabled   bool    `json:"enabled"`
}

type MasterBedroomPricing struct {
	Enabled         bool    `json:"enabled"`
	AdditionalPrice float64 `json:"additional_price"`
}

type WardrobePricing struct {
	Enabled         bool    `json:"enabled"`
	PricePerBedroom float64 `json:"price_per_bedroom"`
}

type StudyUnitPricing struct {
	Enabled      bool    `json:"enabled"`
	PricePerUnit float64 `json:"price_per_unit"`
}

type BedroomPricing struct {
	Counts        []BedroomCountRate   `json:"counts"`
	MasterBedroom MasterBedroomPricing `json:"master_bedroom"`
	Wardrobe      WardrobePricing      `json:"wardrobe"`
	StudyUnit     StudyUnitPricing     `json:"study_unit"`
}

// DefaultPricingConfig is the config written on first access for a tenant.
// Rates are whole currency units.
func DefaultPricingConfig(tenantID string) PricingConfig {
	return PricingConfig{
		TenantID: tenantID,
		RoomPricing: []RoomRate{
			{ID: "kitchen", Name: "Kitchen", Rate: 250000, Enabled: true},
			{ID: "living-room", Name: "Living Room", Rate: 180000, Enabled: true},
			{ID: "master-bedroom", Name: "Master Bedroom", Rate: 200000, Enabled: true},
			{ID: "bedroom", Name: "Bedroom", Rate: 150000, Enabled: true},
			{ID: "bathroom", Name: "Bathroom", Rate: 80000, Enabled: true},
		},
		MaterialGrades: []Multiplier{
			{ID: "mdf", Name: "MDF", Multiplier: 1.0, Enabled: true},
			{ID: "hdhmr", Name: "HDHMR", Multiplier: 1.5, Enabled: true},
			{ID: "bwp-ply", Name: "BWP Ply", Multiplier: 1.8, Enabled: true},
		},
		FinishTypes: []Multiplier{
			{ID: "laminate", Name: "Laminate", Multiplier: 1.0, Enabled: true},
			{ID: "acrylic", Name: "Acrylic", Multiplier: 1.4, Enabled: true},
			{ID: "pu-paint", Name: "PU Paint", Multiplier: 1.8, Enabled: true},
		},
		LivingArea: map[string]LivingAreaOption{
			"tv-unit":       {Enabled: true, Price: 45000},
			"sofa-unit":     {Enabled: true, Price: 60000},
			"showcase":      {Enabled: true, Price: 35000},
			"wall-panel":    {Enabled: true, Price: 25000},
			"false-ceiling": {Enabled: true, Price: 55000},
		},
		Kitchen: KitchenPricing{
			WoodTypes: []Multiplier{
				{ID: "commercial-ply", Name: "Commercial Ply", Multiplier: 1.0, Enabled: true},
				{ID: "marine-ply", Name: "Marine Ply", Multiplier: 1.3, Enabled: true},
				{ID: "teak", Name: "Teak", Multiplier: 2.0, Enabled: true},
			},
			Layouts: []KitchenLayout{
				{ID: "straight", Name: "Straight", BasePrice: 120000, Enabled: true},
				{ID: "l-shaped", Name: "L-Shaped", BasePrice: 160000, Enabled: true},
				{ID: "u-shaped", Name: "U-Shaped", BasePrice: 210000, Enabled: true},
				{ID: "parallel", Name: "Parallel", BasePrice: 180000, Enabled: true},
			},
			AddOns: []KitchenAddOn{
				{ID: "tall-unit", Name: "Tall Unit", Price: 30000, Enabled: true},
				{ID: "breakfast-counter", Name: "Breakfast Counter", Price: 25000, Enabled: true},
				{ID: "loft", Name: "Loft Storage", Price: 20000, Enabled: true},
			},
		},
		Bedrooms: BedroomPricing{
			Counts: []BedroomCountRate{
				{Count: 1, BasePrice: 90000, Enabled: true},
				{Count: 2, BasePrice: 170000, Enabled: true},
				{Count: 3, BasePrice: 240000, Enabled: true},
				{Count: 4, BasePrice: 300000, Enabled: true},
			},
			MasterBedroom: MasterBedroomPricing{Enabled: true, AdditionalPrice: 50000},
			Wardrobe:      WardrobePricing{Enabled: true, PricePerBedroom: 40000},
			StudyUnit:     StudyUnitPricing{Enabled: true, PricePerUnit: 28000},
		},
	}
}
