package reviewRepo

import (
	"context"
	"errors"
	"fmt"

	"sevagram/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// illegalOperation is returned by standalone servers that do not support transactions.
const illegalOperation = 20

func (repo *MongoReviewRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	client := repo.reviewColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == nil {
		return nil
	}
	if transactionsUnsupported(err) {
		utils.GetLogger().Warn("transactions unsupported by server, running review write without one", zap.Error(err))
		return fn(ctx)
	}
	return fmt.Errorf("review transaction failed: %w", err)
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == illegalOperation
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) && writeErr.WriteConcernError == nil {
		for _, we := range writeErr.WriteErrors {
			if we.Code == illegalOperation {
				return true
			}
		}
	}
	return false
}
