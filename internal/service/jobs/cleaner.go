package jobs

import (
	"context"
	"time"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/service"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/labstack/gommon/log"
)

type ConnectionCleaner struct {
	wsService *service.WebSocketService
}

func NewConnectionCleaner(wsService *service.WebSocketService) *ConnectionCleaner {
	return &ConnectionCleaner{wsService: wsService}
}

func (c *ConnectionCleaner) Start(ctx context.Context) {
	// Poll every 5 minutes
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	log.Info("Connection cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping connection cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *ConnectionCleaner) cleanup() {
	now := utils.NowUTC()
	hbLimit := now - entity.HeartbeatPeriodMillis - entity.HeartbeatToleranceMillis
	conns, err := c.wsService.ConnRepo.FindStale(now, hbLimit)
	if err != nil {
		log.Errorf("Cleaner: failed to fetch stale connections: %v", err)
		return
	}

	if len(conns) == 0 {
		return
	}

	log.Infof("Cleaner: Found %d stale connections. Terminating...", len(conns))

	envelope := &contract.OutgoingSocketMessage{
		Type: contract.EventSessionExpired,
	}

	for _, conn := range conns {
		// Use a fresh context for network calls, detached from the ticker's timing
		bgCtx := context.Background()

		// Notify Client (So they know NOT to try reconnecting)
		_ = c.wsService.Gateway.PostToConnection(bgCtx, conn.ConnectionID, envelope)

		// Tell AWS we are dropping the connection
		_ = c.wsService.Gateway.DeleteConnection(bgCtx, conn.ConnectionID)

		// Remove from our DB
		_ = c.wsService.ConnRepo.Delete(conn.ConnectionID)
	}
}
