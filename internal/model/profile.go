// Package model defines the data records shared across the app:
// the business profile, its expenses, and saved pricing scenarios.
package model

// Expense is a recurring monthly business cost on the profile.
type Expense struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"` // per month
}

// UserProfile holds the photographer's declared business inputs plus the
// derived rates. Derived fields are recomputed by pricing.ApplyRates after
// every mutation and persisted wholesale.
type UserProfile struct {
	Name             string    `json:"name"`
	Currency         string    `json:"currency"`
	AnnualIncomeGoal float64   `json:"annualIncomeGoal"`
	TaxRate          float64   `json:"taxRate"` // percent, 0-100
	WorkWeeksPerYear float64   `json:"workWeeksPerYear"`
	DaysPerWeek      float64   `json:"daysPerWeek"`
	HoursPerDay      float64   `json:"hoursPerDay"`
	PercentBillable  float64   `json:"percentBillable"` // 0-100
	Expenses         []Expense `json:"expenses"`

	// Derived
	TargetHourlyRate float64 `json:"targetHourlyRate"`
	CODBHourly       float64 `json:"codbHourly"`

	TargetShootsPerYear int `json:"targetShootsPerYear"`
}

// MonthlyExpenses sums the recurring expense amounts.
func (p UserProfile) MonthlyExpenses() float64 {
	var sum float64
	for _, e := range p.Expenses {
		sum += e.Amount
	}
	return sum
}

// DefaultProfile returns a starting profile with typical freelance numbers.
func DefaultProfile() UserProfile {
	return UserProfile{
		Currency:         "$",
		AnnualIncomeGoal: 80000,
		TaxRate:          30,
		WorkWeeksPerYear: 48,
		DaysPerWeek:      4,
		HoursPerDay:      8,
		PercentBillable:  35,
		Expenses: []Expense{
			{ID: "1", Name: "Software Subscriptions (Adobe, CRM)", Amount: 60},
			{ID: "2", Name: "Gear Insurance", Amount: 40},
			{ID: "3", Name: "Website Hosting", Amount: 30},
			{ID: "4", Name: "Marketing/Ads", Amount: 200},
		},
		TargetShootsPerYear: 50,
	}
}
