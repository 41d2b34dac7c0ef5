package interfaces

import "dekora_studio/internal/domain/entities"

// IDocumentRenderer turns a persisted estimate record into a shareable
// document. It consumes the breakdown frozen on the record and must not fail
// on missing customer fields; partially complete records still produce a
// usable artifact for staff follow-up.
type IDocumentRenderer interface {
	RenderEstimate(record entities.EstimateRecord, branding entities.TenantBranding) ([]byte, error)
}
