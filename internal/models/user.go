package models

import (
	"strconv"
	"strings"
	"time"
)

// UserProfile is the personal record held by the backend. All fields are
// nullable; a profile with every field nil has never been filled in.
type UserProfile struct {
	FullName  *string    `json:"full_name"`
	Age       *int       `json:"age"`
	Gender    *string    `json:"gender"`
	Height    *int       `json:"height"`
	Weight    *int       `json:"weight"`
	UserID    string     `json:"user_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Empty reports whether the profile has never been populated.
func (p UserProfile) Empty() bool {
	return p.FullName == nil && p.Age == nil && p.Gender == nil && p.Height == nil && p.Weight == nil
}

// ProfileForm is the transient, form-shaped record collected before a save.
// List-valued answers are comma-separated free text until Flatten splits them.
type ProfileForm struct {
	Personal  PersonalSection
	Health    HealthSection
	Schedule  ScheduleSection
	Financial FinancialSection
	LifeGoals LifeGoalsSection
}

type PersonalSection struct {
	FullName string
	Age      string
	Gender   string
	Height   string
	Weight   string
}

type HealthSection struct {
	MedicalConditions  string
	CurrentMedications string
	Allergies          string
	FitnessLevel       string
	SleepPattern       string
}

type ScheduleSection struct {
	WorkHours      string
	AvailableTime  string
	BusiestDays    string
	PreferredTimes string
}

type FinancialSection struct {
	Currency          string
	MonthlyIncome     string
	MonthlyExpenses   string
	MonthlySavingGoal string
	RiskTolerance     string
}

type LifeGoalsSection struct {
	ShortTermGoals     string
	LongTermGoals      string
	LifePriorities     string
	PreferredTimeframe string
}

// Complete reports whether every required field carries a value. This is a
// presence check only; numeric ranges are not validated here.
func (f ProfileForm) Complete() bool {
	for _, v := range f.requiredFields() {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// MissingFields returns the names of required fields that are still blank.
func (f ProfileForm) MissingFields() []string {
	names := []string{
		"medical conditions", "current medications", "allergies", "fitness level", "sleep pattern",
		"work hours", "available time", "busiest days", "preferred times",
		"currency", "monthly income", "monthly expenses", "monthly saving goal", "risk tolerance",
		"short-term goals", "long-term goals", "life priorities", "preferred timeframe",
	}
	var missing []string
	for i, v := range f.requiredFields() {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, names[i])
		}
	}
	return missing
}

// requiredFields lists the 18 fields the save precondition checks, in the
// order the form presents them. Personal fields are optional.
func (f ProfileForm) requiredFields() []string {
	return []string{
		f.Health.MedicalConditions, f.Health.CurrentMedications, f.Health.Allergies,
		f.Health.FitnessLevel, f.Health.SleepPattern,
		f.Schedule.WorkHours, f.Schedule.AvailableTime, f.Schedule.BusiestDays, f.Schedule.PreferredTimes,
		f.Financial.Currency, f.Financial.MonthlyIncome, f.Financial.MonthlyExpenses,
		f.Financial.MonthlySavingGoal, f.Financial.RiskTolerance,
		f.LifeGoals.ShortTermGoals, f.LifeGoals.LongTermGoals,
		f.LifeGoals.LifePriorities, f.LifeGoals.PreferredTimeframe,
	}
}

// AllUserData is the flattened wire shape the backend expects for a full
// profile save. Comma-separated form answers become arrays here.
type AllUserData struct {
	Age               int      `json:"age"`
	Allergies         []string `json:"allergies"`
	AvailableTime     string   `json:"available_time"`
	BusyDays          []string `json:"busy_days"`
	Currency          string   `json:"currency"`
	Expenses          int      `json:"expenses"`
	FitnessLevel      string   `json:"fitness_level"`
	FullName          string   `json:"full_name"`
	Gender            string   `json:"gender"`
	Height            int      `json:"height"`
	Income            int      `json:"income"`
	LongTerm          []string `json:"long_term"`
	MedicalConditions []string `json:"medical_conditions"`
	Medications       []string `json:"medications"`
	PreferredTimes    []string `json:"preferred_times"`
	Priorities        []string `json:"priorities"`
	RiskTolerance     string   `json:"risk_tolerance"`
	SavingsGoal       int      `json:"savings_goal"`
	ShortTerm         []string `json:"short_term"`
	SleepPattern      string   `json:"sleep_pattern"`
	Timeframe         string   `json:"timeframe"`
	UserID            string   `json:"user_id,omitempty"`
	Weight            int      `json:"weight"`
	WorkHours         string   `json:"work_hours"`
}

// Flatten transforms the nested form record into the flattened wire shape.
// Unparseable numeric answers become zero rather than failing the save.
func (f ProfileForm) Flatten() AllUserData {
	return AllUserData{
		Age:               atoiOrZero(f.Personal.Age),
		Allergies:         SplitList(f.Health.Allergies),
		AvailableTime:     f.Schedule.AvailableTime,
		BusyDays:          SplitList(f.Schedule.BusiestDays),
		Currency:          f.Financial.Currency,
		Expenses:          atoiOrZero(f.Financial.MonthlyExpenses),
		FitnessLevel:      f.Health.FitnessLevel,
		FullName:          f.Personal.FullName,
		Gender:            f.Personal.Gender,
		Height:            atoiOrZero(f.Personal.Height),
		Income:            atoiOrZero(f.Financial.MonthlyIncome),
		LongTerm:          SplitList(f.LifeGoals.LongTermGoals),
		MedicalConditions: SplitList(f.Health.MedicalConditions),
		Medications:       SplitList(f.Health.CurrentMedications),
		PreferredTimes:    SplitList(f.Schedule.PreferredTimes),
		Priorities:        SplitList(f.LifeGoals.LifePriorities),
		RiskTolerance:     f.Financial.RiskTolerance,
		SavingsGoal:       atoiOrZero(f.Financial.MonthlySavingGoal),
		ShortTerm:         SplitList(f.LifeGoals.ShortTermGoals),
		SleepPattern:      f.Health.SleepPattern,
		Timeframe:         f.LifeGoals.PreferredTimeframe,
		Weight:            atoiOrZero(f.Personal.Weight),
		WorkHours:         f.Schedule.WorkHours,
	}
}

// SplitList splits a comma-separated answer into trimmed entries, dropping
// empties. An all-blank answer yields an empty (non-nil) slice.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
