package profile

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// RunLapseSweeper runs SweepLapsedStreaks every interval until ctx is done.
func (s *Service) RunLapseSweeper(ctx context.Context, interval time.Duration) {
	log.Infof("lapse sweeper started, interval: %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infoln("lapse sweeper stopped")
			return
		case <-ticker.C:
			lapsed, err := s.SweepLapsedStreaks(ctx)
			if err != nil {
				log.Errorf("lapse sweep: %s", err)
			}
			log.Debugf("lapse sweep done, %d streaks lapsed", lapsed)
		}
	}
}
