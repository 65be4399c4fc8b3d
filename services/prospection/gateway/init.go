package gateway

import (
	nsqpkg "github.com/prospecta/backend/internal/pkg/nsq"
	"github.com/prospecta/backend/services/prospection"
)

// ProspectionGW handles event publishing for the prospection service
type ProspectionGW struct {
	producer *nsqpkg.Producer
}

// NewProspectionGW creates a new gateway instance. A nil producer turns
// every publish into a no-op, for deployments without an NSQ daemon.
func NewProspectionGW(producer *nsqpkg.Producer) prospection.ProspectionGW {
	return &ProspectionGW{producer: producer}
}
