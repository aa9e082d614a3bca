package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// Aggregate reduces a transaction set into totals, per-method and
// per-category breakdowns, and a per-day running balance. It is pure and does
// not depend on input order.
//
// The running balance is a left-fold over the days present in the input,
// starting at zero: when the set was produced by a date-bounded filter, the
// balance at day N is the net since the window start, not an all-time
// balance. Report consumers rely on exactly this windowed semantics.
//
// Input records are assumed to satisfy the data model invariants (income has
// a method, expense has a category, amounts are numeric); callers validate
// before anything is stored.
func Aggregate(txns []models.TransactionDB) models.Analytics {
	report := models.Analytics{
		IncomeByMethod:    make(map[models.PaymentMethod]float64),
		ExpenseByCategory: make(map[models.ExpenseCategory]float64),
		DailyData:         []models.DailyData{},
	}

	daily := make(map[string]*models.DailyData)

	for _, t := range txns {
		day, ok := daily[t.Date]
		if !ok {
			day = &models.DailyData{Date: t.Date}
			daily[t.Date] = day
		}

		switch t.Type {
		case models.TypeIncome:
			report.TotalIncome += t.Amount
			report.IncomeByMethod[*t.Method] += t.Amount
			day.Income += t.Amount
		case models.TypeExpense:
			report.TotalExpense += t.Amount
			report.ExpenseByCategory[*t.Category] += t.Amount
			day.Expense += t.Amount
		}
	}

	report.Balance = report.TotalIncome - report.TotalExpense

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	// Lexicographic order is chronological for YYYY-MM-DD.
	sort.Strings(dates)

	var running float64
	for _, date := range dates {
		day := daily[date]
		running += day.Income - day.Expense
		day.Balance = running
		report.DailyData = append(report.DailyData, *day)
	}

	return report
}

// TransactionLister lists transactions matching a filter.
type TransactionLister interface {
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error)
}

// ReportCache caches aggregated reports.
type ReportCache interface {
	GetReport(ctx context.Context, key string) (*models.Analytics, error)
	SetReport(ctx context.Context, key string, report models.Analytics) error
	CurrentVersion(ctx context.Context) (int64, error)
}

// AnalyticsService produces aggregated reports over filtered transaction
// sets, with cache-aside reads against Redis.
type AnalyticsService struct {
	transactions TransactionLister
	cache        ReportCache
}

// NewAnalyticsService creates a new AnalyticsService. The cache may be nil,
// in which case every report is computed from the store.
func NewAnalyticsService(transactions TransactionLister, cache ReportCache) *AnalyticsService {
	return &AnalyticsService{
		transactions: transactions,
		cache:        cache,
	}
}

// GetReport returns the aggregation for all transactions matching the filter.
// Cache failures are logged and fall through to recomputation.
func (svc *AnalyticsService) GetReport(ctx context.Context, filter models.TransactionFilter) (models.Analytics, error) {
	key := svc.reportKey(ctx, filter)

	if key != "" {
		cached, err := svc.cache.GetReport(ctx, key)
		if err != nil {
			logger.Log.Errorw("failed to read cached report", "key", key, "error", err)
		}
		if cached != nil {
			return *cached, nil
		}
	}

	txns, err := svc.transactions.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list transactions for report", "err", err)
		return models.Analytics{}, err
	}

	report := Aggregate(txns)

	if key != "" {
		if err := svc.cache.SetReport(ctx, key, report); err != nil {
			logger.Log.Errorw("failed to cache report", "key", key, "error", err)
		}
	}

	return report, nil
}

// reportKey builds a versioned cache key for the filter. Returns "" when
// caching is unavailable.
func (svc *AnalyticsService) reportKey(ctx context.Context, filter models.TransactionFilter) string {
	if svc.cache == nil {
		return ""
	}

	version, err := svc.cache.CurrentVersion(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read report version", "error", err)
		return ""
	}

	branch, start, end, typ := "", "", "", ""
	if filter.BranchID != nil {
		branch = filter.BranchID.String()
	}
	if filter.StartDate != nil {
		start = *filter.StartDate
	}
	if filter.EndDate != nil {
		end = *filter.EndDate
	}
	if filter.Type != nil {
		typ = string(*filter.Type)
	}

	return fmt.Sprintf("report:%d:%s:%s:%s:%s", version, branch, start, end, typ)
}
