package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestReportCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewReportCacheRepository(rdb, 2*time.Second)

	report := models.Analytics{
		TotalIncome:  150,
		TotalExpense: 30,
		Balance:      120,
		IncomeByMethod: map[models.PaymentMethod]float64{
			models.MethodCash: 100,
			models.MethodGPay: 50,
		},
		ExpenseByCategory: map[models.ExpenseCategory]float64{
			models.CategoryRent: 30,
		},
		DailyData: []models.DailyData{
			{Date: "2024-01-01", Income: 100, Expense: 30, Balance: 70},
			{Date: "2024-01-02", Income: 50, Balance: 120},
		},
	}

	t.Run("set and get report", func(t *testing.T) {
		key := "report:1:branch:2024-01-01:2024-01-31:"

		assert.NoError(t, repo.SetReport(ctx, key, report))

		got, err := repo.GetReport(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, report, *got)
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		got, err := repo.GetReport(ctx, "report:1:unknown:::")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cached report expires", func(t *testing.T) {
		key := "report:1:expiring:::"

		assert.NoError(t, repo.SetReport(ctx, key, report))
		time.Sleep(3 * time.Second)

		got, err := repo.GetReport(ctx, key)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("version starts at zero and bumps", func(t *testing.T) {
		version, err := repo.CurrentVersion(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), version)

		assert.NoError(t, repo.BumpVersion(ctx))
		assert.NoError(t, repo.BumpVersion(ctx))

		version, err = repo.CurrentVersion(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), version)
	})
}
