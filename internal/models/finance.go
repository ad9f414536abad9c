package models

// FinanceMonth is one month of locally tracked finances. Financial data is
// never sent to the backend; the profile save carries only the summary
// income/expense figures.
type FinanceMonth struct {
	ID       string        `json:"id"`
	Month    string        `json:"month"` // YYYY-MM
	Income   float64       `json:"income"`
	Expenses []Expense     `json:"expenses"`
	Savings  float64       `json:"savings"`
	Goals    []SavingsGoal `json:"goals,omitempty"`
}

type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Kind     string  `json:"kind"` // fixed or flexible
}

type SavingsGoal struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// TotalExpenses sums the month's expenses.
func (m FinanceMonth) TotalExpenses() float64 {
	var total float64
	for _, e := range m.Expenses {
		total += e.Amount
	}
	return total
}
