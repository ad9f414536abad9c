package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifelens/lifelens-cli/internal/models"
)

type FinanceCmd struct {
	Show    FinanceShowCmd    `cmd:"" help:"Show the current month." default:"1"`
	Set     FinanceSetCmd     `cmd:"" help:"Set income and savings for a month."`
	Expense FinanceExpenseCmd `cmd:"" help:"Record an expense."`
	Goal    FinanceGoalCmd    `cmd:"" help:"Track a savings goal."`
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// monthFor finds or creates the record for the given month.
func monthFor(months []models.FinanceMonth, month string) ([]models.FinanceMonth, *models.FinanceMonth) {
	for i := range months {
		if months[i].Month == month {
			return months, &months[i]
		}
	}
	months = append(months, models.FinanceMonth{ID: uuid.New().String(), Month: month})
	return months, &months[len(months)-1]
}

type FinanceShowCmd struct {
	Month string `help:"Month to show (YYYY-MM), defaults to the current one."`
}

func (c *FinanceShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	months, err := ctx.Store.GetFinance()
	if err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = currentMonth()
	}
	for _, m := range months {
		if m.Month != month {
			continue
		}
		fmt.Printf("%s\n", m.Month)
		fmt.Printf("  Income:   %.2f\n", m.Income)
		fmt.Printf("  Expenses: %.2f\n", m.TotalExpenses())
		fmt.Printf("  Savings:  %.2f\n", m.Savings)
		if len(m.Expenses) > 0 {
			fmt.Println("  Breakdown:")
			for _, e := range m.Expenses {
				fmt.Printf("    %-16s %8.2f  (%s)\n", e.Category, e.Amount, e.Kind)
			}
		}
		for _, g := range m.Goals {
			fmt.Printf("  Goal %q: %.2f of %.2f\n", g.Name, g.Current, g.Target)
		}
		return nil
	}
	fmt.Printf("No finance data for %s yet.\n", month)
	return nil
}

type FinanceSetCmd struct {
	Income  float64 `help:"Monthly income."`
	Savings float64 `help:"Amount saved this month."`
	Month   string  `help:"Month (YYYY-MM), defaults to the current one."`
}

func (c *FinanceSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	months, err := ctx.Store.GetFinance()
	if err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = currentMonth()
	}
	months, m := monthFor(months, month)
	if c.Income != 0 {
		m.Income = c.Income
	}
	if c.Savings != 0 {
		m.Savings = c.Savings
	}
	if err := ctx.Store.SaveFinance(months); err != nil {
		return err
	}
	fmt.Printf("Updated %s.\n", month)
	return nil
}

type FinanceExpenseCmd struct {
	Category string  `arg:"" help:"Expense category."`
	Amount   float64 `arg:"" help:"Amount spent."`
	Kind     string  `help:"fixed or flexible." default:"flexible" enum:"fixed,flexible"`
	Month    string  `help:"Month (YYYY-MM), defaults to the current one."`
}

func (c *FinanceExpenseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	months, err := ctx.Store.GetFinance()
	if err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = currentMonth()
	}
	months, m := monthFor(months, month)
	m.Expenses = append(m.Expenses, models.Expense{Category: c.Category, Amount: c.Amount, Kind: c.Kind})
	if err := ctx.Store.SaveFinance(months); err != nil {
		return err
	}
	fmt.Printf("Recorded %.2f on %s for %s.\n", c.Amount, c.Category, month)
	return nil
}

type FinanceGoalCmd struct {
	Name    string  `arg:"" help:"Goal name."`
	Target  float64 `help:"Target amount."`
	Current float64 `help:"Amount saved so far."`
	Month   string  `help:"Month (YYYY-MM), defaults to the current one."`
}

func (c *FinanceGoalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	months, err := ctx.Store.GetFinance()
	if err != nil {
		return err
	}

	month := c.Month
	if month == "" {
		month = currentMonth()
	}
	months, m := monthFor(months, month)
	for i := range m.Goals {
		if m.Goals[i].Name == c.Name {
			if c.Target != 0 {
				m.Goals[i].Target = c.Target
			}
			m.Goals[i].Current = c.Current
			if err := ctx.Store.SaveFinance(months); err != nil {
				return err
			}
			fmt.Printf("Updated goal %q.\n", c.Name)
			return nil
		}
	}
	m.Goals = append(m.Goals, models.SavingsGoal{Name: c.Name, Target: c.Target, Current: c.Current})
	if err := ctx.Store.SaveFinance(months); err != nil {
		return err
	}
	fmt.Printf("Added goal %q.\n", c.Name)
	return nil
}
