package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/geo"
)

// RestoreCore прогревает гео-ядро из долговременного зеркала после
// рестарта. Сначала позиции, затем профили: колбэк членства при
// регистрации находит позицию и сразу наполняет индекс.
func RestoreCore(ctx context.Context, core *geo.Core, repo VolunteerRepository, logger *logrus.Logger) error {
	log := logger.WithField("service", "bootstrap")

	locations, err := repo.LoadLocations(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: could not load locations: %w", err)
	}
	for _, loc := range locations {
		if _, err := core.Store.Update(*loc); err != nil {
			log.WithError(err).WithField("user_id", loc.UserID).Warn("Skipping invalid persisted location")
		}
	}

	profiles, err := repo.LoadProfiles(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: could not load profiles: %w", err)
	}
	for _, profile := range profiles {
		if _, err := core.Registry.Register(*profile); err != nil {
			log.WithError(err).WithField("user_id", profile.UserID).Warn("Skipping duplicate persisted profile")
		}
	}

	log.WithFields(logrus.Fields{
		"locations": len(locations),
		"profiles":  len(profiles),
	}).Info("Geo core restored from repository")
	return nil
}
