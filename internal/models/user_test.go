package models

import (
	"reflect"
	"testing"
)

func completeForm() ProfileForm {
	return ProfileForm{
		Personal: PersonalSection{
			FullName: "Ada Example", Age: "30", Gender: "female", Height: "170", Weight: "60",
		},
		Health: HealthSection{
			MedicalConditions: "None", CurrentMedications: "None", Allergies: "pollen, dust",
			FitnessLevel: "Moderately", SleepPattern: "10pm - 7am",
		},
		Schedule: ScheduleSection{
			WorkHours: "9am - 5pm", AvailableTime: "Evenings", BusiestDays: "Monday, Friday",
			PreferredTimes: "Mornings",
		},
		Financial: FinancialSection{
			Currency: "EUR", MonthlyIncome: "3000", MonthlyExpenses: "1800",
			MonthlySavingGoal: "500", RiskTolerance: "medium",
		},
		LifeGoals: LifeGoalsSection{
			ShortTermGoals: "learn piano, run 10k", LongTermGoals: "buy a house",
			LifePriorities: "health, family", PreferredTimeframe: "Moderate",
		},
	}
}

func TestProfileFormComplete(t *testing.T) {
	f := completeForm()
	if !f.Complete() {
		t.Fatal("fully filled form should be complete")
	}

	f.Financial.RiskTolerance = ""
	if f.Complete() {
		t.Error("form with blank risk tolerance should be incomplete")
	}

	f = completeForm()
	f.Health.Allergies = "   "
	if f.Complete() {
		t.Error("whitespace-only answer should count as blank")
	}

	// Personal fields are not part of the completeness check.
	f = completeForm()
	f.Personal = PersonalSection{}
	if !f.Complete() {
		t.Error("empty personal section should not block completeness")
	}
}

func TestProfileFormMissingFields(t *testing.T) {
	f := completeForm()
	if missing := f.MissingFields(); len(missing) != 0 {
		t.Errorf("complete form reports missing fields: %v", missing)
	}

	f.Schedule.WorkHours = ""
	f.LifeGoals.LongTermGoals = ""
	missing := f.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("MissingFields() = %v, want 2 entries", missing)
	}
	if missing[0] != "work hours" || missing[1] != "long-term goals" {
		t.Errorf("MissingFields() = %v", missing)
	}
}

func TestFlatten(t *testing.T) {
	got := completeForm().Flatten()

	if got.Age != 30 || got.Height != 170 || got.Weight != 60 {
		t.Errorf("numeric personal fields: age=%d height=%d weight=%d", got.Age, got.Height, got.Weight)
	}
	if got.Income != 3000 || got.Expenses != 1800 || got.SavingsGoal != 500 {
		t.Errorf("financial fields: income=%d expenses=%d savings=%d", got.Income, got.Expenses, got.SavingsGoal)
	}
	if want := []string{"pollen", "dust"}; !reflect.DeepEqual(got.Allergies, want) {
		t.Errorf("Allergies = %v, want %v", got.Allergies, want)
	}
	if want := []string{"learn piano", "run 10k"}; !reflect.DeepEqual(got.ShortTerm, want) {
		t.Errorf("ShortTerm = %v, want %v", got.ShortTerm, want)
	}
	if want := []string{"buy a house"}; !reflect.DeepEqual(got.LongTerm, want) {
		t.Errorf("LongTerm = %v, want %v", got.LongTerm, want)
	}
	if got.Timeframe != "Moderate" {
		t.Errorf("Timeframe = %q", got.Timeframe)
	}
}

func TestFlattenUnparseableNumbers(t *testing.T) {
	f := completeForm()
	f.Personal.Age = "thirty"
	f.Financial.MonthlyIncome = ""

	got := f.Flatten()
	if got.Age != 0 {
		t.Errorf("unparseable age should flatten to 0, got %d", got.Age)
	}
	if got.Income != 0 {
		t.Errorf("blank income should flatten to 0, got %d", got.Income)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b,c", []string{"a", "b", "c"}},
		{"  spaced  ", []string{"spaced"}},
		{"", []string{}},
		{" , ,", []string{}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUserProfileEmpty(t *testing.T) {
	var p UserProfile
	if !p.Empty() {
		t.Error("zero profile should be empty")
	}

	name := "Ada"
	p.FullName = &name
	if p.Empty() {
		t.Error("profile with a name should not be empty")
	}
}
