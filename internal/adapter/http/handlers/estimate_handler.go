package handlers

import (
	"context"
	"errors"
	"net/http"

	request "dekora_studio/internal/adapter/http/dto/request"
	response "dekora_studio/internal/adapter/http/dto/response"
	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase"
	"dekora_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errMissingTenantID        = pkg.NewDomainErrorSimple("INVALID_TENANT_ID", "Missing or invalid tenant id", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates: the storefront
// preview/submit flow and the tenant-admin dashboard actions.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// PreviewEstimate computes a quote for the storefront without persisting
// anything. Configuration gaps degrade inside the calculator, so the caller
// always gets a total unless the payload itself is structurally invalid.
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	tenantID := payload.ResolveTenantID()
	if tenantID == "" {
		c.JSON(errMissingTenantID.HTTPStatus, errMissingTenantID.ToHTTPError())
		return
	}

	res, err := h.usecase.PreviewEstimate(c.Request.Context(), tenantID, payload.ToSelection())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResult(res))
}

// CreateEstimate handles the storefront quote submission.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	tenantID := payload.ResolveTenantID()
	if tenantID == "" {
		c.JSON(errMissingTenantID.HTTPStatus, errMissingTenantID.ToHTTPError())
		return
	}

	rec, err := h.usecase.SubmitEstimate(c.Request.Context(), tenantID, payload.ToCustomerInfo(), payload.ToSelection())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(rec))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	records, err := h.usecase.ListByTenant(c.Request.Context(), c.Query("tenant_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(records))
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Approve)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Reject)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.EstimateRecord, error),
) {
	rec, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

// UpdateAssignment assigns staff or advances the assignment sub-state,
// depending on the payload.
func (h *EstimateHandler) UpdateAssignment(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	var rec entities.EstimateRecord
	var err error
	if payload.IsStatusChange() {
		rec, err = h.usecase.UpdateAssignmentStatus(c.Request.Context(), c.Param("id"), entities.AssignmentStatus(payload.Status))
	} else {
		rec, err = h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.AssignedTo, payload.AssignedToName)
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

// UpdateTotal is the manual admin override of a computed quote.
func (h *EstimateHandler) UpdateTotal(c *gin.Context) {
	var payload request.UpdateTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.UpdateTotal(c.Request.Context(), c.Param("id"), payload.TotalAmount)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

// GenerateDocument renders and stores the estimate PDF. Regeneration
// overwrites the stored artifact, so the record keeps exactly one reference.
func (h *EstimateHandler) GenerateDocument(c *gin.Context) {
	var payload request.GenerateDocumentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
			return
		}
	}

	rec, err := h.usecase.GenerateDocument(c.Request.Context(), c.Param("id"), payload.ToBranding())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(rec))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrNegativeCarpetArea),
		errors.Is(err, entities.ErrNegativeQuantity),
		errors.Is(err, entities.ErrNegativeBedroomsCount),
		errors.Is(err, entities.ErrNegativeBathroomsCount):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid selection values", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidAssignee),
		errors.Is(err, usecase.ErrInvalidTotalAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalStatusTransition),
		errors.Is(err, usecase.ErrIllegalAssignmentTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Requested transition is not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
