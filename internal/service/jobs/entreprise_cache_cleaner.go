package jobs

import (
	"context"
	"time"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/labstack/gommon/log"
)

const (
	CacheTTLMillis = 10 * 60 * 60 * 1000
	CleanInterval  = 1 * time.Hour
)

type EntrepriseRepository interface {
	DeleteExpired(before int64) error
}

type EntrepriseCacheCleaner struct {
	entrepriseRepo EntrepriseRepository
}

func NewEntrepriseCacheCleaner(repo EntrepriseRepository) *EntrepriseCacheCleaner {
	return &EntrepriseCacheCleaner{entrepriseRepo: repo}
}

func (c *EntrepriseCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CleanInterval)
	defer ticker.Stop()

	log.Info("Entreprise cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping entreprise cache cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *EntrepriseCacheCleaner) cleanup() {
	now := utils.NowUTC()
	cutoff := now - CacheTTLMillis

	err := c.entrepriseRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired entreprise cache: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept entreprise caches older than %d", cutoff)
}
