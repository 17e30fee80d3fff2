package service

import (
	"time"

	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"
	"eclipselink-handoff-backend/pkg/utils"
)

// Time period filter values for the audit trail view.
const (
	PeriodHour  = "hour"
	PeriodDay   = "24h"
	PeriodWeek  = "7d"
	PeriodMonth = "30d"
	PeriodAll   = "all"
)

type AuditService struct {
	auditRepo *repository.AuditRepository
}

func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// AuditEntry is one row of the activity log with the display timestamp
// already formatted.
type AuditEntry struct {
	ID        uint   `json:"id"`
	HandoffID uint   `json:"handoff_id"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	TimeAgo   string `json:"time_ago"`
	Details   string `json:"details"`
}

// View lists matching entries newest-first, capped at 100, each annotated
// with a relative time label.
func (s *AuditService) View(period, action, user, detailsQuery string) ([]AuditEntry, error) {
	now := time.Now()
	filter := repository.AuditFilter{
		Action:  action,
		User:    user,
		Details: detailsQuery,
	}

	switch period {
	case PeriodHour:
		filter.Since = models.Timestamp(now.Add(-time.Hour))
	case PeriodDay:
		filter.Since = models.Timestamp(now.AddDate(0, 0, -1))
	case PeriodWeek:
		filter.Since = models.Timestamp(now.AddDate(0, 0, -7))
	case PeriodMonth:
		filter.Since = models.Timestamp(now.AddDate(0, 0, -30))
	}

	logs, err := s.auditRepo.View(filter)
	if err != nil {
		return nil, err
	}

	entries := make([]AuditEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, AuditEntry{
			ID:        l.ID,
			HandoffID: l.HandoffID,
			Action:    l.Action,
			User:      l.User,
			Timestamp: l.Timestamp,
			TimeAgo:   utils.TimeAgo(l.Timestamp, now),
			Details:   l.Details,
		})
	}
	return entries, nil
}

// Summary returns the activity stat block for the trailing 24 hours.
func (s *AuditService) Summary() (*repository.AuditSummary, error) {
	since := models.Timestamp(time.Now().AddDate(0, 0, -1))
	return s.auditRepo.Summary(since)
}
