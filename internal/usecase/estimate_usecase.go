package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/domain/pricing"
	"dekora_studio/internal/monitoring"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEstimateNotFound            = errors.New("estimate not found")
	ErrInvalidEstimateID           = errors.New("invalid estimate id")
	ErrInvalidAssignee             = errors.New("invalid assignee")
	ErrInvalidTotalAmount          = errors.New("invalid total amount")
	ErrIllegalStatusTransition     = errors.New("illegal status transition")
	ErrIllegalAssignmentTransition = errors.New("illegal assignment transition")
	ErrRendererNotConfigured       = errors.New("document renderer not configured")
	ErrDocumentStoreNotConfigured  = errors.New("document store not configured")
)

// IEstimateUseCase exposes the estimate operations behind the storefront and
// the tenant-admin dashboard.
//
//   - Preview/Submit are called by the storefront quote flow.
//   - Approve/Reject/Assign/GenerateDocument are tenant-admin actions.
//   - UpdateTotal is the manual admin override of a computed quote.
type IEstimateUseCase interface {
	PreviewEstimate(ctx context.Context, tenantID string, sel entities.CustomerSelection) (pricing.Result, error)
	SubmitEstimate(ctx context.Context, tenantID string, customer entities.CustomerInfo, sel entities.CustomerSelection) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.EstimateRecord, error)
	Approve(ctx context.Context, id string) (entities.EstimateRecord, error)
	Reject(ctx context.Context, id string) (entities.EstimateRecord, error)
	Assign(ctx context.Context, id, staffID, staffName string) (entities.EstimateRecord, error)
	UpdateAssignmentStatus(ctx context.Context, id string, status entities.AssignmentStatus) (entities.EstimateRecord, error)
	UpdateTotal(ctx context.Context, id string, newTotal float64) (entities.EstimateRecord, error)
	GenerateDocument(ctx context.Context, id string, branding entities.TenantBranding) (entities.EstimateRecord, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	configs  IPricingConfigUseCase
	renderer interfaces.IDocumentRenderer
	docs     interfaces.IDocumentStore
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	configs IPricingConfigUseCase,
	renderer interfaces.IDocumentRenderer,
	docs interfaces.IDocumentStore,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, configs: configs, renderer: renderer, docs: docs}
}

// PreviewEstimate computes a quote without persisting anything. The config
// is materialized once up front, so the computation never observes a partial
// admin update.
func (u *EstimateUseCase) PreviewEstimate(ctx context.Context, tenantID string, sel entities.CustomerSelection) (pricing.Result, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return pricing.Result{}, ErrInvalidTenantID
	}

	cfg, err := u.configs.GetOrCreate(ctx, tenantID)
	if err != nil {
		return pricing.Result{}, err
	}
	res, err := pricing.ComputeEstimate(sel, cfg)
	if err != nil {
		return pricing.Result{}, err
	}
	monitoring.EstimatesComputed.WithLabelValues("preview").Inc()
	return res, nil
}

// SubmitEstimate validates, computes and persists a pending estimate record.
// Invalid selections are rejected before any write happens.
func (u *EstimateUseCase) SubmitEstimate(ctx context.Context, tenantID string, customer entities.CustomerInfo, sel entities.CustomerSelection) (entities.EstimateRecord, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.EstimateRecord{}, ErrInvalidTenantID
	}

	cfg, err := u.configs.GetOrCreate(ctx, tenantID)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	res, err := pricing.ComputeEstimate(sel, cfg)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	now := time.Now().UTC()
	rec := entities.EstimateRecord{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Customer:      customer,
		Configuration: sel,
		TotalAmount:   res.TotalAmount,
		Breakdown:     res.Breakdown,
		Status:        entities.EstimateStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	monitoring.EstimatesComputed.WithLabelValues("submit").Inc()
	log.Info().
		Str("tenant_id", tenantID).
		Str("estimate_id", created.ID).
		Float64("total_amount", created.TotalAmount).
		Msg("estimate submitted")
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return rec, nil
}

func (u *EstimateUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.EstimateRecord, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *EstimateUseCase) Approve(ctx context.Context, id string) (entities.EstimateRecord, error) {
	return u.transitionStatus(ctx, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.EstimateRecord, error) {
	return u.transitionStatus(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) transitionStatus(ctx context.Context, id string, target entities.EstimateStatus) (entities.EstimateRecord, error) {
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if !entities.CanTransitionStatus(rec.Status, target) {
		return entities.EstimateRecord{}, ErrIllegalStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, rec.ID, target)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return updated, nil
}

// Assign attaches a staff member to an estimate. Assignment always (re)starts
// in the pending sub-state; it is independent of the approval axis.
func (u *EstimateUseCase) Assign(ctx context.Context, id, staffID, staffName string) (entities.EstimateRecord, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return entities.EstimateRecord{}, ErrInvalidAssignee
	}

	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	updated, err := u.repo.UpdateAssignment(ctx, rec.ID, staffID, strings.TrimSpace(staffName), entities.AssignmentStatusPending)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) UpdateAssignmentStatus(ctx context.Context, id string, status entities.AssignmentStatus) (entities.EstimateRecord, error) {
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if !entities.CanTransitionAssignment(rec.AssignmentStatus, status) {
		return entities.EstimateRecord{}, ErrIllegalAssignmentTransition
	}

	updated, err := u.repo.UpdateAssignment(ctx, rec.ID, rec.AssignedTo, rec.AssignedToName, status)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return updated, nil
}

// UpdateTotal is the manual admin override. It changes only the headline
// amount; the frozen breakdown keeps documenting how the original quote was
// composed.
func (u *EstimateUseCase) UpdateTotal(ctx context.Context, id string, newTotal float64) (entities.EstimateRecord, error) {
	if newTotal < 0 {
		return entities.EstimateRecord{}, ErrInvalidTotalAmount
	}
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	updated, err := u.repo.UpdateTotal(ctx, rec.ID, newTotal)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return updated, nil
}

// GenerateDocument renders the estimate PDF from the persisted breakdown and
// stores it under a fixed per-estimate key, so regeneration overwrites the
// same artifact and the record ends up with exactly one document reference.
func (u *EstimateUseCase) GenerateDocument(ctx context.Context, id string, branding entities.TenantBranding) (entities.EstimateRecord, error) {
	if u.renderer == nil {
		return entities.EstimateRecord{}, ErrRendererNotConfigured
	}
	if u.docs == nil {
		return entities.EstimateRecord{}, ErrDocumentStoreNotConfigured
	}

	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	bytes, err := u.renderer.RenderEstimate(rec, branding)
	if err != nil {
		log.Error().Err(err).Str("estimate_id", rec.ID).Msg("document render failed")
		return entities.EstimateRecord{}, err
	}

	key := DocumentKey(rec.TenantID, rec.ID)
	url, err := u.docs.Put(ctx, key, bytes, "application/pdf")
	if err != nil {
		log.Error().Err(err).Str("estimate_id", rec.ID).Str("key", key).Msg("document store failed")
		return entities.EstimateRecord{}, err
	}

	updated, err := u.repo.UpdatePDFURL(ctx, rec.ID, url)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	monitoring.DocumentsRendered.Inc()
	log.Info().Str("estimate_id", rec.ID).Str("pdf_url", url).Msg("estimate document generated")
	return updated, nil
}

// DocumentKey is the stable object key for an estimate's document.
func DocumentKey(tenantID, estimateID string) string {
	return fmt.Sprintf("estimates/%s/%s.pdf", tenantID, estimateID)
}
