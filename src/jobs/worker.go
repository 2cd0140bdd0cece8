package jobs

import (
	"log"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/services/notify"
	"Backend-Sentinel/src/services/risk"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server for background dispatch: queued
// notification emails and risk-model retrains. No-op when Redis is down;
// the synchronous paths still work without it.
func StartWorker(sender notify.MailSender, riskClient *risk.Client) {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(notify.TypeSendEmail, notify.HandleSendEmail(sender))
	mux.Handle(risk.TypeRetrainModel, risk.HandleRetrain(riskClient))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}

// ScheduleNightlyRetrain registers the periodic retrain task.
func ScheduleNightlyRetrain() {
	if database.RedisURI == "" {
		return
	}

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: database.RedisURI}, nil)
	if _, err := scheduler.Register("0 3 * * *", risk.NewRetrainTask()); err != nil {
		log.Println("⚠️ Failed to register retrain schedule:", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()
	log.Println("✅ Nightly retrain scheduled (03:00)")
}
