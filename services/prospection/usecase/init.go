package usecase

import (
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection"
)

// ProspectionUC implements the prospection usecase over the repositories
// and the event gateway
type ProspectionUC struct {
	userRepo        prospection.UserRepo
	prospectionRepo prospection.ProspectionRepo
	otpRepo         prospection.OTPRepo
	gw              prospection.ProspectionGW
	cfg             *models.Config
}

// NewProspectionUC creates a new prospection usecase instance
func NewProspectionUC(
	userRepo prospection.UserRepo,
	prospectionRepo prospection.ProspectionRepo,
	otpRepo prospection.OTPRepo,
	gw prospection.ProspectionGW,
	cfg *models.Config,
) *ProspectionUC {
	return &ProspectionUC{
		userRepo:        userRepo,
		prospectionRepo: prospectionRepo,
		otpRepo:         otpRepo,
		gw:              gw,
		cfg:             cfg,
	}
}
