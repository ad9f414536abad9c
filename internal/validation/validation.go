package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
)

// IssueType classifies a validation finding
type IssueType string

const (
	IssueMissingField   IssueType = "missing_field"
	IssueInvalidNumber  IssueType = "invalid_number"
	IssueInvalidChoice  IssueType = "invalid_choice"
	IssueEmptyName      IssueType = "empty_name"
	IssueDuplicateName  IssueType = "duplicate_name"
	IssueInvalidDate    IssueType = "invalid_date"
	IssueMessageTooLong IssueType = "message_too_long"
)

// Issue is one validation finding.
type Issue struct {
	Type        IssueType
	Field       string
	Description string
}

// Result collects the findings of one validation pass.
type Result struct {
	Issues []Issue
}

// Valid reports whether the pass found nothing.
func (r *Result) Valid() bool {
	return len(r.Issues) == 0
}

// FormatReport returns a human-readable report of all findings.
func (r *Result) FormatReport() string {
	if r.Valid() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

func (r *Result) add(t IssueType, field, desc string) {
	r.Issues = append(r.Issues, Issue{Type: t, Field: field, Description: desc})
}

// Validator validates profile forms, habits, and mood entries before they
// are persisted or sent to the backend.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateProfileForm checks the profile form beyond bare field presence:
// the required fields must be filled and numeric answers must parse.
func (v *Validator) ValidateProfileForm(form models.ProfileForm) Result {
	var result Result

	for _, field := range form.MissingFields() {
		result.add(IssueMissingField, field, fmt.Sprintf("%s is required", field))
	}

	numeric := []struct {
		field string
		value string
	}{
		{"age", form.Personal.Age},
		{"height", form.Personal.Height},
		{"weight", form.Personal.Weight},
		{"monthly income", form.Financial.MonthlyIncome},
		{"monthly expenses", form.Financial.MonthlyExpenses},
		{"monthly saving goal", form.Financial.MonthlySavingGoal},
	}
	for _, n := range numeric {
		s := strings.TrimSpace(n.value)
		if s == "" {
			continue
		}
		val, err := strconv.Atoi(s)
		if err != nil {
			result.add(IssueInvalidNumber, n.field, fmt.Sprintf("%s must be a whole number", n.field))
			continue
		}
		if val < 0 {
			result.add(IssueInvalidNumber, n.field, fmt.Sprintf("%s cannot be negative", n.field))
		}
	}

	return result
}

// ValidateHabit checks a habit before it is stored or synced.
func (v *Validator) ValidateHabit(habit models.Habit, existing []models.Habit) Result {
	var result Result

	name := strings.TrimSpace(habit.Name)
	if name == "" {
		result.add(IssueEmptyName, "name", "habit name is required")
	}
	for _, h := range existing {
		if h.ID != habit.ID && strings.EqualFold(strings.TrimSpace(h.Name), name) && name != "" {
			result.add(IssueDuplicateName, "name", fmt.Sprintf("a habit named %q already exists", h.Name))
			break
		}
	}

	if habit.Frequency != "" && !validFrequency(habit.Frequency) {
		result.add(IssueInvalidChoice, "frequency",
			fmt.Sprintf("frequency must be one of %s, %s, %s",
				constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly))
	}

	if habit.TargetCount < 0 {
		result.add(IssueInvalidNumber, "target_count", "target count cannot be negative")
	}

	for _, d := range habit.CompletedDates {
		if !validDay(d) {
			result.add(IssueInvalidDate, "completed_dates", fmt.Sprintf("completion date %q is not YYYY-MM-DD", d))
		}
	}

	return result
}

// ValidateMoodEntry checks a mood log entry.
func (v *Validator) ValidateMoodEntry(entry models.MoodEntry) Result {
	var result Result

	if strings.TrimSpace(entry.Mood) == "" {
		result.add(IssueMissingField, "mood", "mood is required")
	}
	if entry.Date != "" && !validDay(entry.Date) {
		result.add(IssueInvalidDate, "date", fmt.Sprintf("date %q is not YYYY-MM-DD", entry.Date))
	}

	return result
}

// ValidateChatMessage checks an outgoing chat message.
func (v *Validator) ValidateChatMessage(message string) Result {
	var result Result

	if strings.TrimSpace(message) == "" {
		result.add(IssueMissingField, "message", "message is empty")
	}
	if len(message) > 4000 {
		result.add(IssueMessageTooLong, "message", "message exceeds 4000 characters")
	}

	return result
}

func validFrequency(f string) bool {
	switch f {
	case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly:
		return true
	}
	return false
}

func validDay(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
