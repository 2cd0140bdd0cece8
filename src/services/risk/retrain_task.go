package risk

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
)

const TypeRetrainModel = "risk:retrain"

func NewRetrainTask() *asynq.Task {
	return asynq.NewTask(TypeRetrainModel, nil, asynq.MaxRetry(2))
}

// HandleRetrain asks the prediction service to rebuild its model from the
// current student data. Scheduled nightly and available on demand.
func HandleRetrain(client *Client) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Println("🎯 Start risk model retrain")
		if err := client.Retrain(ctx); err != nil {
			log.Println("❌ Retrain failed:", err)
			return err
		}
		log.Println("✅ Risk model retrained")
		return nil
	}
}
