package handlers

import (
	"errors"
	"net/http"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase"
	"dekora_studio/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid pricing config payload", http.StatusBadRequest)

// PricingConfigHandler handles the tenant-admin pricing configuration
// endpoints. The config entity is its own wire shape; there is no separate
// DTO because the admin UI reads and writes the document as a unit.
type PricingConfigHandler struct {
	usecase usecase.IPricingConfigUseCase
}

func NewPricingConfigHandler(uc usecase.IPricingConfigUseCase) *PricingConfigHandler {
	return &PricingConfigHandler{usecase: uc}
}

// GetPricingConfig returns the tenant's config, creating the documented
// default on first access.
func (h *PricingConfigHandler) GetPricingConfig(c *gin.Context) {
	cfg, err := h.usecase.GetOrCreate(c.Request.Context(), c.Query("tenant_id"))
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdatePricingConfig overwrites the tenant's config as a whole.
func (h *PricingConfigHandler) UpdatePricingConfig(c *gin.Context) {
	var cfg entities.PricingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Query("tenant_id"), cfg)
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_TENANT_ID", "Missing or invalid tenant id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_CONFIG", "Pricing config contains negative rates", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
