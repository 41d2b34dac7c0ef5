package entities

import "errors"

var (
	ErrNegativeCarpetArea     = errors.New("carpet area must not be negative")
	ErrNegativeQuantity       = errors.New("item quantity must not be negative")
	ErrNegativeBedroomsCount  = errors.New("bedrooms count must not be negative")
	ErrNegativeBathroomsCount = errors.New("bathrooms count must not be negative")
)

type Segment string

const (
	SegmentResidential Segment = "residential"
	SegmentCommercial  Segment = "commercial"
)

type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanStandard Plan = "standard"
	PlanLuxe     Plan = "luxe"
)

// CustomerSelection is what a storefront visitor submits for an estimate.
// It is never persisted on its own; once a quote is computed it is frozen
// onto the EstimateRecord.
//
// The nested Configuration object is the single source of truth for item
// selections. Carpet area, segment and plan are captured for the record and
// the rendered document; no rate in the config keys off them.
type CustomerSelection struct {
	CarpetArea     float64                `json:"carpet_area"`
	Segment        Segment                `json:"segment"`
	Plan           Plan                   `json:"plan"`
	BedroomsCount  int                    `json:"bedrooms_count"`
	BathroomsCount int                    `json:"bathrooms_count"`
	Configuration  SelectionConfiguration `json:"configuration"`
}

// SelectionConfiguration mirrors the PricingConfig sections by id.
// A living-area quantity of zero means "not selected".
type SelectionConfiguration struct {
	RoomIDs         []string         `json:"room_ids"`
	MaterialGradeID string           `json:"material_grade_id"`
	FinishTypeID    string           `json:"finish_type_id"`
	LivingArea      map[string]int   `json:"living_area"`
	Kitchen         KitchenSelection `json:"kitchen"`
	Bedrooms        BedroomSelection `json:"bedrooms"`
}

type KitchenSelection struct {
	LayoutID   string   `json:"layout_id"`
	WoodTypeID string   `json:"wood_type_id"`
	AddOnIDs   []string `json:"add_on_ids"`
}

type BedroomSelection struct {
	MasterBedroom bool `json:"master_bedroom"`
	StudyUnits    int  `json:"study_units"`
}

// Validate rejects structurally impossible selections. These are caller
// bugs, not business-data gaps, and must fail before anything is persisted.
// Missing or disabled pricing items are NOT validation errors; the
// calculator degrades them to zero-amount lines.
func (s CustomerSelection) Validate() error {
	if s.CarpetArea < 0 {
		return ErrNegativeCarpetArea
	}
	if s.BedroomsCount < 0 {
		return ErrNegativeBedroomsCount
	}
	if s.BathroomsCount < 0 {
		return ErrNegativeBathroomsCount
	}
	for _, qty := range s.Configuration.LivingArea {
		if qty < 0 {
			return ErrNegativeQuantity
		}
	}
	if s.Configuration.Bedrooms.StudyUnits < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
