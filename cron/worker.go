package cron

import (
	"context"
	"fmt"
	"time"

	"sevagram/config"
	"sevagram/services/tasks"
	"sevagram/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Reconciler recomputes every provider's rating summary.
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// ReconcileWorker runs the periodic rating reconciliation on asynq.
type ReconcileWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

// InitReconcileWorker registers the cron entry and starts processing. Callers own Shutdown.
func InitReconcileWorker(cfg config.Config, rec Reconciler) (*ReconcileWorker, error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{"default": 1},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReconcileRatings, handleReconcileTask(rec))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	task, err := tasks.NewReconcileTask(tasks.ReconcilePayload{Reason: "schedule"})
	if err != nil {
		return nil, fmt.Errorf("failed to build reconcile task: %w", err)
	}
	if _, err := scheduler.Register(cfg.ReconcileCron, task); err != nil {
		return nil, fmt.Errorf("invalid reconcile schedule %q: %w", cfg.ReconcileCron, err)
	}

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start reconcile worker: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("failed to start reconcile scheduler: %w", err)
	}
	utils.GetLogger().Info("Reconcile worker started", zap.String("schedule", cfg.ReconcileCron))
	return &ReconcileWorker{server: srv, scheduler: scheduler}, nil
}

func (w *ReconcileWorker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func handleReconcileTask(rec Reconciler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReconcilePayload(task)
		if err != nil {
			utils.GetLogger().Error("Invalid reconcile payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}
		start := time.Now()
		n, err := rec.ReconcileAll(ctx)
		if err != nil {
			utils.GetLogger().Error("Rating reconciliation failed", zap.String("reason", p.Reason), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Rating reconciliation finished",
			zap.String("reason", p.Reason),
			zap.Int("providers", n),
			zap.Duration("took", time.Since(start)))
		return nil
	}
}
