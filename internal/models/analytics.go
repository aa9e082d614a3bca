package models

// DailyData is one day of aggregated activity. Balance is the running net
// (income minus expense) from the earliest day of the aggregated set through
// this day, not an all-time balance.
type DailyData struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Analytics is the full aggregation output for a transaction set.
// Breakdown maps only carry keys that actually occur in the set.
type Analytics struct {
	TotalIncome       float64                     `json:"totalIncome"`
	TotalExpense      float64                     `json:"totalExpense"`
	Balance           float64                     `json:"balance"`
	IncomeByMethod    map[PaymentMethod]float64   `json:"incomeByMethod"`
	ExpenseByCategory map[ExpenseCategory]float64 `json:"expenseByCategory"`
	DailyData         []DailyData                 `json:"dailyData"`
}
