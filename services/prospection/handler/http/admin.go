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

// AdminHandler handles HTTP requests for the admin console
type AdminHandler struct {
	prospectionUC prospection.ProspectionUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(prospectionUC prospection.ProspectionUC) *AdminHandler {
	return &AdminHandler{
		prospectionUC: prospectionUC,
	}
}

// ListUsers returns every salesperson with their current visit record
func (h *AdminHandler) ListUsers(c echo.Context) error {
	profiles, err := h.prospectionUC.ListUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", profiles)
}

// GetUser returns one salesperson by phone
func (h *AdminHandler) GetUser(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	profile, err := h.prospectionUC.GetUser(c.Request().Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, prospection.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, prospection.ErrUserNotFound):
			return utils.NotFoundResponse(c, "Utilisateur non trouvé")
		default:
			logger.Error("Failed to retrieve user",
				logger.String("phone", utils.MaskPhoneNumber(phone)),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", profile)
}

// CreateUser registers a new salesperson identity
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	profile, err := h.prospectionUC.CreateUser(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prospection.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, prospection.ErrUserExists):
			return utils.ConflictResponse(c, "Un utilisateur avec ce numéro existe déjà")
		default:
			logger.Error("Failed to create user",
				logger.String("phone", utils.MaskPhoneNumber(req.Phone)),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create user")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", profile)
}

// UpdateUser updates the name fields of a salesperson identity
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.prospectionUC.UpdateUser(c.Request().Context(), phone, &req)
	if err != nil {
		switch {
		case errors.Is(err, prospection.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, prospection.ErrUserNotFound):
			return utils.NotFoundResponse(c, "Utilisateur non trouvé")
		default:
			logger.Error("Failed to update user",
				logger.String("phone", utils.MaskPhoneNumber(phone)),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update user")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", profile)
}

// DeleteUser removes a salesperson identity and its visit records
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	if err := h.prospectionUC.DeleteUser(c.Request().Context(), phone); err != nil {
		switch {
		case errors.Is(err, prospection.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, prospection.ErrUserNotFound):
			return utils.NotFoundResponse(c, "Utilisateur non trouvé")
		default:
			logger.Error("Failed to delete user",
				logger.String("phone", utils.MaskPhoneNumber(phone)),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to delete user")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// GetMetrics returns the aggregated dashboard metrics
func (h *AdminHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.prospectionUC.GetDashboardMetrics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to compute metrics", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute metrics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Metrics retrieved successfully", metrics)
}
