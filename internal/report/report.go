package report

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	percentFactor  = decimal.NewFromInt(100)
	alertThreshold = decimal.NewFromInt(80)
)

// Totals are the income and expense sums and the resulting balance.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1000"`
	Expense decimal.Decimal `json:"expense" example:"500"`
	Balance decimal.Decimal `json:"balance" example:"500"`
}

// BudgetProgress is the spending of one category measured against its
// configured limit.
type BudgetProgress struct {
	Category string          `json:"category" example:"Food"`
	Spent    decimal.Decimal `json:"spent" example:"80"`
	Limit    decimal.Decimal `json:"limit" example:"100"`
	Percent  decimal.Decimal `json:"percent" example:"80.0"` // Rounded to one decimal
}

// Series is a pair of parallel label and value sequences for charting.
type Series struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// Dashboard contains all derived metrics for one user.
type Dashboard struct {
	Totals
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"` // Expense sum per category
	Categories     Series                     `json:"categories"`     // Category breakdown in group order
	Progress       []BudgetProgress           `json:"progress"`       // Budget usage for budgeted categories
	Alerts         []string                   `json:"alerts"`         // Budget alerts
	GoalAmount     decimal.Decimal            `json:"goalAmount"`     // The savings goal, 0 if unset
	GoalProgress   decimal.Decimal            `json:"goalProgress"`   // Balance measured against the goal, in percent
	NetWorth       Series                     `json:"netWorth"`       // Net worth trend in append order
	Prediction     decimal.Decimal            `json:"prediction"`     // Naive next-month expense prediction
}

// Build derives the dashboard from the user's full row sets. It does not
// mutate its inputs and keeps no hidden state: the same rows always
// produce the same dashboard.
func Build(transactions []models.Transaction, budgets []models.Budget, goal *models.SavingsGoal, history []models.NetWorthSample) Dashboard {
	totals := Sum(transactions)
	breakdown := CategoryBreakdown(transactions)
	progress, alerts := BudgetReport(breakdown, budgets)

	dashboard := Dashboard{
		Totals:         totals,
		CategoryTotals: breakdown.totals,
		Categories: Series{
			Labels: breakdown.labels,
			Values: breakdown.values,
		},
		Progress:   progress,
		Alerts:     alerts,
		NetWorth:   NetWorthTrend(history),
		Prediction: Prediction(transactions),
	}

	if goal != nil {
		dashboard.GoalAmount = goal.Amount
		dashboard.GoalProgress = GoalProgress(totals.Balance, goal.Amount)
	}

	return dashboard
}

// Sum computes the income and expense totals and the balance. Missing
// sums are treated as zero.
func Sum(transactions []models.Transaction) Totals {
	var income, expense decimal.Decimal

	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TypeIncome:
			income = income.Add(transaction.Amount)
		case models.TypeExpense:
			expense = expense.Add(transaction.Amount)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Breakdown is the expense sum per category, in the order the categories
// first appear in the transaction list.
type Breakdown struct {
	totals map[string]decimal.Decimal
	labels []string
	values []decimal.Decimal
}

// Total returns the expense sum for the category.
func (b Breakdown) Total(category string) (decimal.Decimal, bool) {
	total, ok := b.totals[category]
	return total, ok
}

// CategoryBreakdown groups expense transactions by category and sums the
// amount per group. The group order is first-seen order, it is not
// sorted.
func CategoryBreakdown(transactions []models.Transaction) Breakdown {
	breakdown := Breakdown{totals: make(map[string]decimal.Decimal)}

	for _, transaction := range transactions {
		if transaction.Type != models.TypeExpense {
			continue
		}

		total, seen := breakdown.totals[transaction.Category]
		if !seen {
			breakdown.labels = append(breakdown.labels, transaction.Category)
		}

		breakdown.totals[transaction.Category] = total.Add(transaction.Amount)
	}

	for _, label := range breakdown.labels {
		breakdown.values = append(breakdown.values, breakdown.totals[label])
	}

	return breakdown
}

// BudgetReport computes the budget usage for every category that has
// both expenses and a configured limit.
//
// Categories with expenses but no limit, and limits that are zero or
// negative, are skipped silently. Per category at most one alert is
// emitted: "above 80%!" for 80 <= percent < 100, "budget exceeded!" for
// percent >= 100.
func BudgetReport(breakdown Breakdown, budgets []models.Budget) ([]BudgetProgress, []string) {
	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		limits[budget.Category] = budget.Limit
	}

	progress := make([]BudgetProgress, 0, len(breakdown.labels))
	alerts := make([]string, 0)

	for _, category := range breakdown.labels {
		limit, ok := limits[category]
		if !ok || !limit.IsPositive() {
			continue
		}

		spent := breakdown.totals[category]
		percent := spent.Div(limit).Mul(percentFactor)

		progress = append(progress, BudgetProgress{
			Category: category,
			Spent:    spent,
			Limit:    limit,
			Percent:  percent.Round(1),
		})

		if percent.GreaterThanOrEqual(alertThreshold) && percent.LessThan(percentFactor) {
			alerts = append(alerts, fmt.Sprintf("%s above 80%%!", category))
		}
		if percent.GreaterThanOrEqual(percentFactor) {
			alerts = append(alerts, fmt.Sprintf("%s budget exceeded!", category))
		}
	}

	return progress, alerts
}

// GoalProgress measures the balance against the savings goal in percent,
// rounded to one decimal.
//
// A negative balance produces a negative percentage, it is not clamped.
// Goals that are zero or negative report zero progress.
func GoalProgress(balance, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}

	return balance.Div(goal).Mul(percentFactor).Round(1)
}

// NetWorthTrend returns the (period, asset-liability) pairs of the
// history as parallel label and value sequences.
//
// The history is returned in append order. It is not sorted by period,
// matching the storage order of the samples.
func NetWorthTrend(history []models.NetWorthSample) Series {
	series := Series{
		Labels: make([]string, 0, len(history)),
		Values: make([]decimal.Decimal, 0, len(history)),
	}

	for _, sample := range history {
		series.Labels = append(series.Labels, sample.Period.String())
		series.Values = append(series.Values, sample.NetWorth())
	}

	return series
}

// Prediction forecasts the next per-period expense sum as the arithmetic
// mean of all per-period expense sums, rounded to two decimals.
//
// This is a naive moving average, not a fitted model. It returns zero
// when there are no expense transactions.
func Prediction(transactions []models.Transaction) decimal.Decimal {
	periods := make(map[string]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.Type != models.TypeExpense {
			continue
		}

		label := transaction.Period.String()
		periods[label] = periods[label].Add(transaction.Amount)
	}

	if len(periods) == 0 {
		return decimal.Zero
	}

	var total decimal.Decimal
	for _, sum := range periods {
		total = total.Add(sum)
	}

	return total.Div(decimal.NewFromInt(int64(len(periods)))).Round(2)
}
