package service

import (
	"context"
	"log"
	"time"

	"eclipselink-handoff-backend/internal/repository"
)

// WorkerService drives SBAR generation in the background: any open handoff
// that has a transcription but no report yet gets processed on the next
// tick. The synchronous generate endpoint shares the same code path through
// HandoffService.
type WorkerService struct {
	handoffRepo    *repository.HandoffRepository
	handoffService *HandoffService
}

func NewWorkerService(handoffRepo *repository.HandoffRepository, handoffService *HandoffService) *WorkerService {
	return &WorkerService{
		handoffRepo:    handoffRepo,
		handoffService: handoffService,
	}
}

// Start begins the background worker that processes transcribed handoffs
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	log.Println("Background SBAR worker started - polling every 5s")

	for {
		select {
		case <-ctx.Done():
			log.Println("Background SBAR worker stopped")
			return
		case <-ticker.C:
			w.processPending()
		}
	}
}

// processPending generates reports for handoffs awaiting one.
func (w *WorkerService) processPending() {
	pending, err := w.handoffRepo.PendingGeneration(10)
	if err != nil {
		log.Printf("Error fetching handoffs pending generation: %v", err)
		return
	}

	for _, h := range pending {
		if _, err := w.handoffService.Generate(h.ID); err != nil {
			log.Printf("Error generating SBAR for handoff %d: %v", h.ID, err)
			continue
		}
		log.Printf("Generated SBAR for handoff %d (%s)", h.ID, h.PatientName)
	}
}
