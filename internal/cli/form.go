package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/lifelens/lifelens-cli/internal/models"
)

// profileForm builds the grouped interactive form over a ProfileForm. The
// personal group is optional; the remaining groups hold the fields the
// save precondition requires.
func profileForm(f *models.ProfileForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&f.Personal.FullName),
			huh.NewInput().Title("Age").Value(&f.Personal.Age),
			huh.NewInput().Title("Gender").Value(&f.Personal.Gender),
			huh.NewInput().Title("Height (cm)").Value(&f.Personal.Height),
			huh.NewInput().Title("Weight (kg)").Value(&f.Personal.Weight),
		).Title("Personal (optional)"),
		huh.NewGroup(
			huh.NewInput().Title("Medical conditions").Placeholder("None").Value(&f.Health.MedicalConditions),
			huh.NewInput().Title("Current medications").Placeholder("None").Value(&f.Health.CurrentMedications),
			huh.NewInput().Title("Allergies").Placeholder("None").Value(&f.Health.Allergies),
			huh.NewSelect[string]().Title("Fitness level").
				Options(huh.NewOptions("Sedentary", "Lightly", "Moderately", "Very", "Extremely")...).
				Value(&f.Health.FitnessLevel),
			huh.NewInput().Title("Sleep pattern").Placeholder("10pm - 7am").Value(&f.Health.SleepPattern),
		).Title("Health"),
		huh.NewGroup(
			huh.NewInput().Title("Work hours").Placeholder("9am - 5pm").Value(&f.Schedule.WorkHours),
			huh.NewInput().Title("Available time").Placeholder("Evenings").Value(&f.Schedule.AvailableTime),
			huh.NewInput().Title("Busiest days").Placeholder("Monday, Friday").Value(&f.Schedule.BusiestDays),
			huh.NewInput().Title("Preferred times").Placeholder("Mornings").Value(&f.Schedule.PreferredTimes),
		).Title("Schedule"),
		huh.NewGroup(
			huh.NewInput().Title("Currency").Placeholder("USD").Value(&f.Financial.Currency),
			huh.NewInput().Title("Monthly income").Value(&f.Financial.MonthlyIncome),
			huh.NewInput().Title("Monthly expenses").Value(&f.Financial.MonthlyExpenses),
			huh.NewInput().Title("Monthly saving goal").Value(&f.Financial.MonthlySavingGoal),
			huh.NewSelect[string]().Title("Risk tolerance").
				Options(huh.NewOptions("low", "medium", "high")...).
				Value(&f.Financial.RiskTolerance),
		).Title("Finances"),
		huh.NewGroup(
			huh.NewInput().Title("Short-term goals").Placeholder("comma separated").Value(&f.LifeGoals.ShortTermGoals),
			huh.NewInput().Title("Long-term goals").Placeholder("comma separated").Value(&f.LifeGoals.LongTermGoals),
			huh.NewInput().Title("Life priorities").Placeholder("comma separated").Value(&f.LifeGoals.LifePriorities),
			huh.NewSelect[string]().Title("Preferred timeframe").
				Options(huh.NewOptions("Aggressive", "Moderate", "Gradual")...).
				Value(&f.LifeGoals.PreferredTimeframe),
		).Title("Life goals"),
	)
}
