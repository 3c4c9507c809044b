package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(screeningID uuid.UUID)
}

type worker struct {
	screeningRepo repositories.ScreeningRepository
	screener      ScreenerService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	screeningRepo repositories.ScreeningRepository,
	screener ScreenerService,
	concurrency int,
) Worker {
	return &worker{
		screeningRepo: screeningRepo,
		screener:      screener,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Poll for queued screenings so jobs survive restarts
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(screeningID uuid.UUID) {
	select {
	case w.jobQueue <- screeningID:
		log.Printf("📥 Screening %s enqueued\n", screeningID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue screening %s\n", screeningID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case screeningID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing screening %s\n", workerID, screeningID)
			if err := w.screener.ScreenCandidate(ctx, screeningID); err != nil {
				log.Printf("❌ Worker #%d failed to process screening %s: %v\n", workerID, screeningID, err)
			} else {
				log.Printf("✅ Worker #%d completed screening %s\n", workerID, screeningID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending jobs poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending jobs poller stopped")
			return
		case <-ticker.C:
			pendingJobs, err := w.screeningRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending screenings: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending screenings\n", len(pendingJobs))
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
