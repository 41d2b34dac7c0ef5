package interfaces

import (
	"context"

	"dekora_studio/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for EstimateRecord.
//
// The estimate service must be able to:
//   - create a record when the storefront submits a quote request
//   - list records per tenant for the admin dashboard
//   - update status / assignment / total / document url by record id
//
// Implementations return a zero-value record (ID == "") for "not found";
// mapping that to a domain error is the use case's job.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.EstimateRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.EstimateRecord, error)
	UpdateAssignment(ctx context.Context, id, assignedTo, assignedToName string, status entities.AssignmentStatus) (entities.EstimateRecord, error)
	UpdateTotal(ctx context.Context, id string, newTotal float64) (entities.EstimateRecord, error)
	UpdatePDFURL(ctx context.Context, id, url string) (entities.EstimateRecord, error)
}
