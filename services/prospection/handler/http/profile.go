package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prospecta/backend/internal/pkg/logger"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/internal/utils"
	"github.com/prospecta/backend/services/prospection"
)

// ProfileHandler handles HTTP requests for the salesperson profile
type ProfileHandler struct {
	prospectionUC prospection.ProspectionUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(prospectionUC prospection.ProspectionUC) *ProfileHandler {
	return &ProfileHandler{
		prospectionUC: prospectionUC,
	}
}

// GetProfile returns the merged profile for the authenticated salesperson
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	phone, ok := c.Get("phone").(string)
	if !ok || phone == "" {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	profile, err := h.prospectionUC.GetProfile(c.Request().Context(), phone)
	if err != nil {
		if errors.Is(err, prospection.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "Utilisateur non trouvé")
		}
		logger.Error("Failed to retrieve profile",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// SaveProfile applies a partial profile submission for the authenticated
// salesperson
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	phone, ok := c.Get("phone").(string)
	if !ok || phone == "" {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	var req models.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.prospectionUC.SaveProfile(c.Request().Context(), phone, &req)
	if err != nil {
		logger.Error("Failed to save profile",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to save profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile saved successfully", profile)
}
