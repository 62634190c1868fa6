// Package notify delivers booking event emails through a Redis-backed
// queue so that request handling never waits on SMTP.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"shareit/internal/config"
	"shareit/internal/logger"
	"shareit/internal/metrics"
)

const (
	queueKey  = "shareit:notifications"
	failedKey = "shareit:notifications:failed"
	maxTries  = 3
)

type Job struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Tries   int    `json:"tries"`
}

type Service struct {
	rdb *redis.Client
	cfg *config.Config
}

func NewService(rdb *redis.Client, cfg *config.Config) *Service {
	return &Service{rdb: rdb, cfg: cfg}
}

func (s *Service) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := s.rdb.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	if length, err := s.rdb.LLen(ctx, queueKey).Result(); err == nil {
		metrics.NotificationQueueLength.Set(float64(length))
	}

	return nil
}

// Start consumes the queue until the context is cancelled. Intended to
// run in its own goroutine.
func (s *Service) Start(ctx context.Context) {
	logger.Info("notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped")
			return
		default:
		}

		result, err := s.rdb.BRPop(ctx, 5*time.Second, queueKey).Result()
		if err == redis.Nil || ctx.Err() != nil {
			continue
		}
		if err != nil {
			logger.WithError(err).Error("pop notification")
			time.Sleep(time.Second)
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			logger.WithError(err).Error("decode notification")
			continue
		}

		s.process(ctx, job)
	}
}

func (s *Service) process(ctx context.Context, job Job) {
	job.Tries++

	if err := s.send(job); err != nil {
		logger.WithFields(map[string]interface{}{
			"type": job.Type,
			"to":   job.To,
			"try":  job.Tries,
		}).Error("send notification", "error", err)

		if job.Tries < maxTries {
			if err := s.Enqueue(ctx, job); err != nil {
				logger.WithError(err).Error("requeue notification")
			}
			return
		}

		s.saveFailed(ctx, job)
		metrics.RecordNotification(job.Type, "failed")
		return
	}

	metrics.RecordNotification(job.Type, "sent")
}

func (s *Service) send(job Job) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s <%s>\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.cfg.EmailFromName, s.cfg.EmailFrom, job.Name, job.To, job.Subject, job.Body)

	return smtp.SendMail(addr, auth, s.cfg.EmailFrom, []string{job.To}, []byte(msg))
}

func (s *Service) saveFailed(ctx context.Context, job Job) {
	payload, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := s.rdb.LPush(ctx, failedKey, payload).Err(); err != nil {
		logger.WithError(err).Error("save failed notification")
	}
}
