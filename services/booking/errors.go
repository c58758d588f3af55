package booking

import (
	"errors"

	"sevagram/metrics"
	"sevagram/models"
	"sevagram/utils"

	"go.uber.org/zap"
)

// storeError translates a repository failure into the error returned to callers.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NewNotFoundError("Booking not found")
	case errors.Is(err, models.ErrVersionConflict):
		metrics.IncVersionConflict(op)
		return utils.NewConflictError("Booking was modified by another request, please retry", err)
	}
	utils.GetLogger().Error("booking store failure", zap.String("op", op), zap.Error(err))
	return utils.NewInternalError("Server Error", err)
}
