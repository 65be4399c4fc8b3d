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

// AuthHandler handles HTTP requests for the OTP and admin login flows
type AuthHandler struct {
	prospectionUC prospection.ProspectionUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(prospectionUC prospection.ProspectionUC) *AuthHandler {
	return &AuthHandler{
		prospectionUC: prospectionUC,
	}
}

// RequestOTP handles OTP generation requests for registered salespeople
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	err := h.prospectionUC.RequestOTP(c.Request().Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, prospection.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, prospection.ErrUserNotFound):
			return utils.NotFoundResponse(c, "Utilisateur non trouvé")
		default:
			logger.Error("Failed to generate OTP",
				logger.String("phone", utils.MaskPhoneNumber(req.Phone)),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to generate OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification and issues a sales session token
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone number and code are required")
	}

	resp, err := h.prospectionUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, prospection.ErrInvalidOTP) {
			return utils.BadRequestResponse(c, "Code invalide ou expiré")
		}
		logger.Error("Failed to verify OTP",
			logger.String("phone", utils.MaskPhoneNumber(req.Phone)),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// AdminLogin exchanges the admin API key for an admin session token
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.APIKey == "" {
		return utils.BadRequestResponse(c, "API key is required")
	}

	resp, err := h.prospectionUC.AdminLogin(c.Request().Context(), req.APIKey)
	if err != nil {
		if errors.Is(err, prospection.ErrInvalidAPIKey) {
			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
		logger.Error("Failed to process admin login", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}
