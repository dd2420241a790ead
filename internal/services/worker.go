package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
)

// Worker runs interview transcript scoring off the request path.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(sessionID uuid.UUID)
}

type worker struct {
	interviewRepo repositories.InterviewRepository
	interviewer   InterviewerService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	interviewRepo repositories.InterviewRepository,
	interviewer InterviewerService,
	concurrency int,
) Worker {
	return &worker{
		interviewRepo: interviewRepo,
		interviewer:   interviewer,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.WithField("concurrency", w.concurrency).Info("starting scoring worker")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Re-enqueue sessions that were left mid-scoring, e.g. after a restart.
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Info("stopping scoring worker")
	close(w.stopChan)
	w.wg.Wait()
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(sessionID uuid.UUID) {
	select {
	case w.jobQueue <- sessionID:
		log.WithField("session_id", sessionID).Debug("scoring job enqueued")
	case <-w.stopChan:
		log.WithField("session_id", sessionID).Warn("worker stopped, cannot enqueue job")
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case sessionID := <-w.jobQueue:
			if err := w.interviewer.ScoreInterview(ctx, sessionID); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"worker":     workerID,
					"session_id": sessionID,
				}).Error("failed to score interview")
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.interviewRepo.FindPendingScoring(10)
			if err != nil {
				log.WithError(err).Warn("failed to fetch pending scoring sessions")
				continue
			}

			for _, session := range pending {
				// Only re-enqueue stale sessions so fresh submissions are not
				// scored twice.
				if time.Since(session.UpdatedAt) < 30*time.Second {
					continue
				}
				w.EnqueueJob(session.ID)
			}
		}
	}
}
