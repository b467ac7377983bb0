package schedules

import (
	"context"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultLockTTL = 2 * time.Minute

// Worker warms the cached hours of every schedule once per cron tick. Only
// the instance holding the leader lock does the work.
type Worker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	scheduleUsecase contracts.ScheduleUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, scheduleUsecase contracts.ScheduleUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, scheduleUsecase: scheduleUsecase}
}

// Start schedules the warm job with the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.OpenHours.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedules.worker: "+constvars.ErrDevWorkerScheduleFailed+"; falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels a running job and waits for it to finish. It is safe to call
// more than once.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	if w.cfg.OpenHours.WorkerLockTTLInSeconds <= 0 {
		return defaultLockTTL
	}
	return time.Duration(w.cfg.OpenHours.WorkerLockTTLInSeconds) * time.Second
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyWarmWorkerLeader, ttl)
	if err != nil {
		w.log.Warn("schedules.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("schedules.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.Background(), constvars.RedisKeyWarmWorkerLeader, token); err != nil {
			w.log.Warn("schedules.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				w.log.Debug("schedules.worker: refreshing leader lock TTL",
					zap.String(constvars.LoggingRedisKey, constvars.RedisKeyWarmWorkerLeader),
					zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl),
				)
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeyWarmWorkerLeader, token, ttl); err != nil {
					w.log.Warn("schedules.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	requestID := utils.GenerateRequestID()
	runCtx := context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	_ = utils.LogOperation(w.log, "schedules.worker.warm", requestID, func() error {
		refreshed, err := w.scheduleUsecase.RefreshScheduleHours(runCtx)
		if err != nil {
			return err
		}
		w.log.Info("schedules.worker: warmed schedule hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingScheduleCountKey, refreshed),
		)
		return nil
	})
}
