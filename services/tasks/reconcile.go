package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReconcileRatings = "ratings:reconcile"

// ReconcilePayload identifies one reconciliation run.
type ReconcilePayload struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requestedAt"`
}

func NewReconcileTask(payload ReconcilePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReconcileRatings, b, asynq.MaxRetry(3), asynq.Timeout(5*time.Minute)), nil
}

func ParseReconcilePayload(task *asynq.Task) (ReconcilePayload, error) {
	var p ReconcilePayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
