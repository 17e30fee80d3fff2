package service

import (
	"time"

	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"
)

type AnalyticsService struct {
	handoffRepo *repository.HandoffRepository
}

func NewAnalyticsService(handoffRepo *repository.HandoffRepository) *AnalyticsService {
	return &AnalyticsService{handoffRepo: handoffRepo}
}

// AnalyticsData is the full dashboard payload: aggregates only, charts are
// the frontend's concern.
type AnalyticsData struct {
	HandoffsByType      []repository.GroupCount       `json:"handoffs_by_type"`
	HandoffsByPriority  []repository.GroupCount       `json:"handoffs_by_priority"`
	HandoffsBySpecialty []repository.GroupCount       `json:"handoffs_by_specialty"`
	DailyHandoffs       []repository.DailyCount       `json:"daily_handoffs"`
	HourlyHandoffs      []repository.GroupCount       `json:"hourly_handoffs"`
	TopPerformers       []repository.StaffPerformance `json:"top_performers"`
	AvgQuality          float64                       `json:"avg_quality"`
	AvgCompleteness     float64                       `json:"avg_completeness"`
	AvgCritical         float64                       `json:"avg_critical"`
	AvgDuration         float64                       `json:"avg_duration"`
}

// Dashboard assembles the analytics aggregates over completed handoffs. The
// daily series covers the past 30 days.
func (s *AnalyticsService) Dashboard() (*AnalyticsData, error) {
	byType, err := s.handoffRepo.CompletedByType()
	if err != nil {
		return nil, err
	}
	byPriority, err := s.handoffRepo.CompletedByPriority()
	if err != nil {
		return nil, err
	}
	bySpecialty, err := s.handoffRepo.CompletedBySpecialty()
	if err != nil {
		return nil, err
	}
	cutoff := models.Timestamp(time.Now().AddDate(0, 0, -30))
	daily, err := s.handoffRepo.DailyCounts(cutoff)
	if err != nil {
		return nil, err
	}
	hourly, err := s.handoffRepo.HourlyCounts()
	if err != nil {
		return nil, err
	}
	performers, err := s.handoffRepo.TopPerformers()
	if err != nil {
		return nil, err
	}
	averages, err := s.handoffRepo.AverageScores()
	if err != nil {
		return nil, err
	}

	return &AnalyticsData{
		HandoffsByType:      byType,
		HandoffsByPriority:  byPriority,
		HandoffsBySpecialty: bySpecialty,
		DailyHandoffs:       daily,
		HourlyHandoffs:      hourly,
		TopPerformers:       performers,
		AvgQuality:          averages.Quality,
		AvgCompleteness:     averages.Completeness,
		AvgCritical:         averages.CriticalElements,
		AvgDuration:         averages.Duration,
	}, nil
}
