package types

import (
	"github.com/killallgit/scout-api/internal/services/analysis"
	"github.com/killallgit/scout-api/internal/services/store"
	"github.com/killallgit/scout-api/internal/services/trainingplans"
	"github.com/killallgit/scout-api/pkg/logger"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Repository          store.Repository
	AnalysisService     analysis.Service
	TrainingPlanService trainingplans.Service
	Logger              *logger.Logger
	Version             string
}

// Log returns the configured logger, or a no-op logger
func (d *Dependencies) Log() *logger.Logger {
	if d == nil || d.Logger == nil {
		return logger.Nop()
	}
	return d.Logger
}
