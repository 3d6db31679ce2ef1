package services

import (
	"time"

	"github.com/monocle-dev/trackr/internal/models"
)

type DeadlineStatus string

const (
	DeadlineNone        DeadlineStatus = "no-deadline"
	DeadlineOverdue     DeadlineStatus = "overdue"
	DeadlineDueToday    DeadlineStatus = "due-today"
	DeadlineDueSoon     DeadlineStatus = "due-soon"
	DeadlineDueThisWeek DeadlineStatus = "due-this-week"
	DeadlineUpcoming    DeadlineStatus = "upcoming"
)

// ProjectMetrics is derived on every project read and never stored.
type ProjectMetrics struct {
	CompletionPercentage int            `json:"completionPercentage"`
	TotalIssues          int            `json:"totalIssues"`
	CompletedIssues      int            `json:"completedIssues"`
	DaysUntilDeadline    *int           `json:"daysUntilDeadline"`
	IsOverdue            bool           `json:"isOverdue"`
	DeadlineStatus       DeadlineStatus `json:"deadlineStatus"`
}

// MetricsCalculator has no state beyond its clock and the location used to
// decide what "today" is.
type MetricsCalculator struct {
	now func() time.Time
	loc *time.Location
}

func NewMetricsCalculator(now func() time.Time, loc *time.Location) *MetricsCalculator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MetricsCalculator{now: now, loc: loc}
}

// ProjectMetrics only counts issues whose ProjectID matches the project.
func (m *MetricsCalculator) ProjectMetrics(project models.Project, issues []models.Issue) ProjectMetrics {
	var total, completed int
	for _, issue := range issues {
		if issue.ProjectID != project.ID {
			continue
		}
		total++
		if issue.Status == models.StatusCompleted {
			completed++
		}
	}

	days := m.DaysUntilDeadline(project.Deadline)
	return ProjectMetrics{
		CompletionPercentage: CompletionPercentage(completed, total),
		TotalIssues:          total,
		CompletedIssues:      completed,
		DaysUntilDeadline:    days,
		IsOverdue:            days != nil && *days < 0,
		DeadlineStatus:       ClassifyDeadline(days),
	}
}

const secondsPerDay = 24 * 60 * 60

// DaysUntilDeadline counts calendar days from today to the deadline date.
// It is nil when there is no usable deadline.
func (m *MetricsCalculator) DaysUntilDeadline(deadline models.Deadline) *int {
	if !deadline.Usable() {
		return nil
	}
	ty, tm, td := m.now().In(m.loc).Date()
	dy, dm, dd := deadline.Date.Date()

	today := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	due := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	// Unix seconds, not Duration: Duration overflows past about 292 years.
	days := int((due.Unix() - today.Unix()) / secondsPerDay)
	return &days
}

// CompletionPercentage rounds half up, in integers: 1/3 is 33, 2/3 is 67,
// 1/8 is 13.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

func ClassifyDeadline(days *int) DeadlineStatus {
	switch {
	case days == nil:
		return DeadlineNone
	case *days < 0:
		return DeadlineOverdue
	case *days == 0:
		return DeadlineDueToday
	case *days <= 3:
		return DeadlineDueSoon
	case *days <= 7:
		return DeadlineDueThisWeek
	default:
		return DeadlineUpcoming
	}
}
