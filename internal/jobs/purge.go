package jobs

import (
	"time"

	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/internal/services"
)

// PurgeJob periodically deletes expired verification codes. Best-effort
// cleanup only; lookups already exclude expired rows by comparing expires_at.
type PurgeJob struct {
	verification *services.VerificationService
	logger       *zap.Logger
	interval     time.Duration
	stop         chan struct{}
}

// NewPurgeJob creates a purge job running at the given interval.
func NewPurgeJob(verification *services.VerificationService, logger *zap.Logger, interval time.Duration) *PurgeJob {
	return &PurgeJob{
		verification: verification,
		logger:       logger,
		interval:     interval,
		stop:         make(chan struct{}),
	}
}

// Start begins the purge loop in the background.
func (j *PurgeJob) Start() {
	go j.run()
	j.logger.Info("verification code purge job started", zap.Duration("interval", j.interval))
}

// Stop halts the purge loop.
func (j *PurgeJob) Stop() {
	close(j.stop)
}

func (j *PurgeJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.verification.PurgeExpired(); err != nil {
				j.logger.Warn("failed to purge expired verification codes", zap.Error(err))
			}
		case <-j.stop:
			return
		}
	}
}
