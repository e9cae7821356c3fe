// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) with asynq.Client
//   - a server runs workers that process them (consumer) with asynq.Server
//
// A nil *JobService is valid: enqueueing on it is a no-op. The server
// only builds one when Redis and an email provider are configured.
package job

import (
	"github.com/deppfellow/lazy-virtuoso/internal/config"
	"github.com/deppfellow/lazy-virtuoso/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer sends the emails the job handlers are responsible for.
type Mailer interface {
	SendContactNotification(to string, data email.ContactNotificationData) error
	SendOrderReceived(to string, data email.OrderReceivedData) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	mailer       Mailer
	contactInbox string
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks the larger worker share; contact
// notifications go there, order receipts use "default".
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client:       client,
		server:       server,
		logger:       logger,
		contactInbox: cfg.Integration.ContactInbox,
	}
}

// InitHandlers sets up the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskContactNotification, j.handleContactNotificationTask)
	mux.HandleFunc(TaskOrderReceived, j.handleOrderReceivedTask)
	return mux
}

// Start registers the task handlers and starts the workers. It does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.mux()); err != nil {
		return err
	}

	return nil
}

// Stop waits for running tasks and closes the enqueue client.
func (j *JobService) Stop() {
	if j == nil {
		return
	}
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
