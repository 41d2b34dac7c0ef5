package request

import (
	"strings"

	"dekora_studio/internal/domain/entities"
)

type CustomerInfoRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type KitchenSelectionRequest struct {
	LayoutID   string   `json:"layout_id"`
	WoodTypeID string   `json:"wood_type_id"`
	AddOnIDs   []string `json:"add_on_ids"`
}

type BedroomSelectionRequest struct {
	MasterBedroom bool `json:"master_bedroom"`
	StudyUnits    int  `json:"study_units"`
}

type ConfigurationRequest struct {
	RoomIDs         []string                `json:"room_ids"`
	MaterialGradeID string                  `json:"material_grade_id"`
	FinishTypeID    string                  `json:"finish_type_id"`
	LivingArea      map[string]int          `json:"living_area"`
	Kitchen         KitchenSelectionRequest `json:"kitchen"`
	Bedrooms        BedroomSelectionRequest `json:"bedrooms"`
}

// EstimateRequest is the storefront quote-submission payload. The nested
// configuration object is the canonical selection shape; there are no flat
// legacy fields.
type EstimateRequest struct {
	TenantID       string               `json:"tenant_id" binding:"required"`
	Customer       CustomerInfoRequest  `json:"customer"`
	CarpetArea     float64              `json:"carpet_area"`
	Segment        string               `json:"segment"`
	Plan           string               `json:"plan"`
	BedroomsCount  int                  `json:"bedrooms_count"`
	BathroomsCount int                  `json:"bathrooms_count"`
	Configuration  ConfigurationRequest `json:"configuration"`
}

func (r EstimateRequest) ResolveTenantID() string {
	return strings.TrimSpace(r.TenantID)
}

func (r EstimateRequest) ToCustomerInfo() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:  strings.TrimSpace(r.Customer.Name),
		Phone: strings.TrimSpace(r.Customer.Phone),
		Email: strings.TrimSpace(r.Customer.Email),
		City:  strings.TrimSpace(r.Customer.City),
	}
}

func (r EstimateRequest) ToSelection() entities.CustomerSelection {
	return entities.CustomerSelection{
		CarpetArea:     r.CarpetArea,
		Segment:        entities.Segment(strings.ToLower(strings.TrimSpace(r.Segment))),
		Plan:           entities.Plan(strings.ToLower(strings.TrimSpace(r.Plan))),
		BedroomsCount:  r.BedroomsCount,
		BathroomsCount: r.BathroomsCount,
		Configuration: entities.SelectionConfiguration{
			RoomIDs:         r.Configuration.RoomIDs,
			MaterialGradeID: r.Configuration.MaterialGradeID,
			FinishTypeID:    r.Configuration.FinishTypeID,
			LivingArea:      r.Configuration.LivingArea,
			Kitchen: entities.KitchenSelection{
				LayoutID:   r.Configuration.Kitchen.LayoutID,
				WoodTypeID: r.Configuration.Kitchen.WoodTypeID,
				AddOnIDs:   r.Configuration.Kitchen.AddOnIDs,
			},
			Bedrooms: entities.BedroomSelection{
				MasterBedroom: r.Configuration.Bedrooms.MasterBedroom,
				StudyUnits:    r.Configuration.Bedrooms.StudyUnits,
			},
		},
	}
}

// AssignmentRequest drives both staff assignment and assignment-status
// changes: with Status set it is a sub-state transition, otherwise a
// (re)assignment.
type AssignmentRequest struct {
	AssignedTo     string `json:"assigned_to"`
	AssignedToName string `json:"assigned_to_name"`
	Status         string `json:"status"`
}

func (r AssignmentRequest) IsStatusChange() bool {
	return strings.TrimSpace(r.Status) != ""
}

type UpdateTotalRequest struct {
	TotalAmount float64 `json:"total_amount" binding:"required"`
}

type BrandingRequest struct {
	CompanyName    string `json:"company_name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CurrencySymbol string `json:"currency_symbol"`
}

// GenerateDocumentRequest carries optional branding overrides for the PDF.
// An empty body renders with placeholders.
type GenerateDocumentRequest struct {
	Branding BrandingRequest `json:"branding"`
}

func (r GenerateDocumentRequest) ToBranding() entities.TenantBranding {
	return entities.TenantBranding{
		CompanyName:    r.Branding.CompanyName,
		Address:        r.Branding.Address,
		Phone:          r.Branding.Phone,
		Email:          r.Branding.Email,
		CurrencySymbol: r.Branding.CurrencySymbol,
	}
}
