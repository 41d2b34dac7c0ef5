package response

import (
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/domain/pricing"
)

type LineItemResponse struct {
	Section  string  `json:"section"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Included bool    `json:"included"`
	Note     string  `json:"note,omitempty"`
}

type EstimateResponse struct {
	ID               string             `json:"id"`
	TenantID         string             `json:"tenant_id"`
	Customer         entities.CustomerInfo `json:"customer"`
	TotalAmount      float64            `json:"total_amount"`
	Breakdown        []LineItemResponse `json:"breakdown"`
	Status           string             `json:"status"`
	AssignedTo       string             `json:"assigned_to,omitempty"`
	AssignedToName   string             `json:"assigned_to_name,omitempty"`
	AssignmentStatus string             `json:"assignment_status,omitempty"`
	PDFGenerated     bool               `json:"pdf_generated"`
	PDFURL           string             `json:"pdf_url,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.EstimateRecord) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		TenantID:         e.TenantID,
		Customer:         e.Customer,
		TotalAmount:      e.TotalAmount,
		Breakdown:        fromLineItems(e.Breakdown),
		Status:           string(e.Status),
		AssignedTo:       e.AssignedTo,
		AssignedToName:   e.AssignedToName,
		AssignmentStatus: string(e.AssignmentStatus),
		PDFGenerated:     e.DocumentGenerated(),
		PDFURL:           e.PDFURL,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEstimates(records []entities.EstimateRecord) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromEstimate(rec))
	}
	return out
}

// PreviewResponse is the storefront live-quote payload: a total and its
// breakdown, nothing persisted.
type PreviewResponse struct {
	TotalAmount float64            `json:"total_amount"`
	Breakdown   []LineItemResponse `json:"breakdown"`
}

func FromResult(res pricing.Result) PreviewResponse {
	return PreviewResponse{
		TotalAmount: res.TotalAmount,
		Breakdown:   fromLineItems(res.Breakdown),
	}
}

func fromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineItemResponse{
			Section:  l.Section,
			Label:    l.Label,
			Amount:   l.Amount,
			Included: l.Included,
			Note:     l.Note,
		})
	}
	return out
}
