package worker

import (
	"context"
	"fmt"

	"myevent-api/core/constants"
	"myevent-api/core/logger"

	"github.com/hibiken/asynq"
)

// Server runs task handlers and the periodic scheduler.
type Server struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewServer(cfg RedisConfig, concurrency int) *Server {
	if concurrency <= 0 {
		concurrency = constants.WorkerConcurrency
	}
	opt := cfg.clientOpt()

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			constants.QueueCritical: 6,
			constants.QueueDefault:  3,
		},
		Logger: asynqLogger{},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("WorkerServer:Task:Error:", "type", task.Type(), "error", err)
		}),
	})

	return &Server{
		server:    srv,
		scheduler: asynq.NewScheduler(opt, &asynq.SchedulerOpts{Logger: asynqLogger{}}),
		mux:       asynq.NewServeMux(),
	}
}

func (s *Server) HandleFunc(taskType string, fn func(context.Context, *asynq.Task) error) {
	s.mux.HandleFunc(taskType, fn)
}

// Schedule registers a cron-driven task with the scheduler.
func (s *Server) Schedule(cronspec string, task *asynq.Task) error {
	id, err := s.scheduler.Register(cronspec, task)
	if err != nil {
		return err
	}
	logger.Info("WorkerServer:Schedule", "type", task.Type(), "cron", cronspec, "entry", id)
	return nil
}

// Start runs the processor and scheduler in the background.
func (s *Server) Start() error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	if err := s.scheduler.Start(); err != nil {
		s.server.Shutdown()
		return err
	}
	logger.Info("Worker started")
	return nil
}

func (s *Server) Shutdown() {
	s.scheduler.Shutdown()
	s.server.Shutdown()
	logger.Info("Worker stopped")
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq: " + fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq: " + fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq: " + fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq: " + fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Fatal("asynq: " + fmt.Sprint(args...)) }
