package handlers

import (
	"net/http"

	"customer-insights/internal/dto"
	"customer-insights/internal/errors"
	"customer-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles category probability queries
type PredictionHandler struct {
	probabilityService services.ProbabilityQueryServiceInterface
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(probabilityService services.ProbabilityQueryServiceInterface) *PredictionHandler {
	return &PredictionHandler{probabilityService: probabilityService}
}

// PredictProba ranks every product category for a customer by predicted probability
// @Summary Predict category probabilities
// @Description Return all categories of a customer ordered by descending probability
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body dto.PredictProbaRequest true "Customer identifier"
// @Success 200 {object} dto.PredictProbaResponse "Ranked categories"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - customer_id missing"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "PREDICTION_001/PREDICTION_002 - Stored prediction invalid"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - Dataset unavailable"
// @Router /predict_proba [post]
func (h *PredictionHandler) PredictProba(c echo.Context) error {
	var req dto.PredictProbaRequest
	if err := bindRequest(c, &req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("customer_id must be filled"))
	}

	ranking, err := h.probabilityService.Predict(c.Request().Context(), req.CustomerID.String())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPredictProbaResponse(ranking))
}
