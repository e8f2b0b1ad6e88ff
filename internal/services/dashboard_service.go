package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunovieira/advocase/internal/models"
)

const dateLayout = "2006-01-02"

// maxDashboardAlerts truncates the alert list to the first entries in
// enumeration order; no priority sort is applied before the cut.
const maxDashboardAlerts = 10

const (
	AlertSeverityHigh   = "high"
	AlertSeverityMedium = "medium"
	AlertSeverityLow    = "low"
)

type Alert struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type DashboardStats struct {
	DeadlinesToday          int     `json:"deadlines_today"`
	DeadlinesThisWeek       int     `json:"deadlines_this_week"`
	PendingTasks            int     `json:"pending_tasks"`
	ActiveCases             int     `json:"active_cases"`
	ReceivablesDueThisMonth float64 `json:"receivables_due_this_month"`
	OverdueAmount           float64 `json:"overdue_amount"`
	Alerts                  []Alert `json:"alerts"`
}

type DeadlineReader interface {
	ListByAccount(accountID string) ([]models.Deadline, error)
}

type TaskReader interface {
	ListByAccount(accountID string) ([]models.Task, error)
}

type CaseReader interface {
	ListByAccount(accountID string) ([]models.Case, error)
}

type FinancialEntryReader interface {
	ListByAccount(accountID string) ([]models.FinancialEntry, error)
}

// DashboardService computes the account summary fresh on every call by
// loading the full per-account collections, which the list cap keeps small.
type DashboardService struct {
	deadlines DeadlineReader
	tasks     TaskReader
	cases     CaseReader
	financial FinancialEntryReader
}

func NewDashboardService(deadlines DeadlineReader, tasks TaskReader, cases CaseReader, financial FinancialEntryReader) *DashboardService {
	return &DashboardService{
		deadlines: deadlines,
		tasks:     tasks,
		cases:     cases,
		financial: financial,
	}
}

func (service *DashboardService) Summarize(accountID string, now time.Time) (DashboardStats, error) {
	today := dateOnly(now)
	todayString := today.Format(dateLayout)

	deadlines, err := service.deadlines.ListByAccount(accountID)
	if err != nil {
		return DashboardStats{}, err
	}
	tasks, err := service.tasks.ListByAccount(accountID)
	if err != nil {
		return DashboardStats{}, err
	}
	cases, err := service.cases.ListByAccount(accountID)
	if err != nil {
		return DashboardStats{}, err
	}
	entries, err := service.financial.ListByAccount(accountID)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		DeadlinesToday:          CountDeadlinesOn(deadlines, todayString),
		DeadlinesThisWeek:       CountDeadlinesWithinWeek(deadlines, today),
		PendingTasks:            CountPendingTasks(tasks),
		ActiveCases:             CountActiveCases(cases),
		ReceivablesDueThisMonth: SumReceivablesDueInMonth(entries, todayString[:7]),
		OverdueAmount:           SumOverdueAmount(entries, todayString),
		Alerts:                  BuildDeadlineAlerts(deadlines, today),
	}, nil
}

// CountDeadlinesOn matches by string prefix so a stored datetime value
// still counts on its calendar day.
func CountDeadlinesOn(deadlines []models.Deadline, day string) int {
	count := 0
	for _, deadline := range deadlines {
		if strings.HasPrefix(deadline.Date, day) {
			count++
		}
	}
	return count
}

// CountDeadlinesWithinWeek counts deadlines in [today, today+7] inclusive.
// Unparsable dates never match and never fail the computation.
func CountDeadlinesWithinWeek(deadlines []models.Deadline, today time.Time) int {
	weekEnd := today.AddDate(0, 0, 7)
	count := 0
	for _, deadline := range deadlines {
		day, err := ParseDeadlineDate(deadline.Date)
		if err != nil {
			continue
		}
		if !day.Before(today) && !day.After(weekEnd) {
			count++
		}
	}
	return count
}

func CountPendingTasks(tasks []models.Task) int {
	count := 0
	for _, task := range tasks {
		if task.Status != models.TaskStatusDone {
			count++
		}
	}
	return count
}

func CountActiveCases(cases []models.Case) int {
	count := 0
	for _, legalCase := range cases {
		if legalCase.Status == models.CaseStatusNew || legalCase.Status == models.CaseStatusInProgress {
			count++
		}
	}
	return count
}

// SumReceivablesDueInMonth totals pending receivables whose due date falls
// in the given "YYYY-MM" month, by string prefix.
func SumReceivablesDueInMonth(entries []models.FinancialEntry, month string) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.Direction != models.FinancialDirectionReceivable {
			continue
		}
		if entry.Status != models.FinancialStatusPending {
			continue
		}
		if strings.HasPrefix(entry.DueDate, month) {
			total += entry.Amount
		}
	}
	return total
}

// SumOverdueAmount totals pending entries due strictly before today. ISO
// dates order lexicographically, so a plain string comparison suffices. The
// stored status field is not consulted beyond the pending check.
func SumOverdueAmount(entries []models.FinancialEntry, today string) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.Status != models.FinancialStatusPending {
			continue
		}
		if entry.DueDate != "" && entry.DueDate < today {
			total += entry.Amount
		}
	}
	return total
}

// BuildDeadlineAlerts emits one alert per upcoming deadline within seven
// days. Past deadlines produce no alert, unparsable dates are skipped, and
// the list is cut at maxDashboardAlerts.
func BuildDeadlineAlerts(deadlines []models.Deadline, today time.Time) []Alert {
	alerts := make([]Alert, 0, maxDashboardAlerts)
	for _, deadline := range deadlines {
		day, err := ParseDeadlineDate(deadline.Date)
		if err != nil {
			continue
		}

		daysRemaining := daysBetween(today, day)
		alert, ok := deadlineAlert(deadline.Title, daysRemaining)
		if !ok {
			continue
		}

		alerts = append(alerts, alert)
		if len(alerts) == maxDashboardAlerts {
			break
		}
	}
	return alerts
}

func deadlineAlert(title string, daysRemaining int) (Alert, bool) {
	switch {
	case daysRemaining == 0:
		return Alert{Kind: "deadline", Message: "TODAY: " + title, Severity: AlertSeverityHigh}, true
	case daysRemaining == 1:
		return Alert{Kind: "deadline", Message: "Tomorrow: " + title, Severity: AlertSeverityHigh}, true
	case daysRemaining >= 2 && daysRemaining <= 3:
		return Alert{Kind: "deadline", Message: fmt.Sprintf("In %d days: %s", daysRemaining, title), Severity: AlertSeverityMedium}, true
	case daysRemaining >= 4 && daysRemaining <= 7:
		return Alert{Kind: "deadline", Message: fmt.Sprintf("In %d days: %s", daysRemaining, title), Severity: AlertSeverityLow}, true
	default:
		return Alert{}, false
	}
}

// ParseDeadlineDate accepts ISO dates and datetimes, keeping only the
// calendar day.
func ParseDeadlineDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	return time.ParseInLocation(dateLayout, value, time.UTC)
}

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
