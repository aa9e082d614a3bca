package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

var branchColumns = []string{"id", "name", "city", "location", "created_at"}

func TestBranchReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBranchReadRepository(db, nil)
	ctx := context.Background()

	branchID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(branchColumns).
			AddRow(branchID, "Main Branch", "Mumbai", "Andheri West", time.Now())
		mock.ExpectQuery(`SELECT (.+) FROM branches\s+WHERE id = \$1`).
			WithArgs(branchID).
			WillReturnRows(rows)

		branch, err := repo.GetByID(ctx, branchID)
		assert.NoError(t, err)
		assert.Equal(t, "Main Branch", branch.Name)
		assert.Equal(t, "Mumbai", branch.City)
	})

	t.Run("no rows", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM branches\s+WHERE id = \$1`).
			WithArgs(branchID).
			WillReturnError(sql.ErrNoRows)

		branch, err := repo.GetByID(ctx, branchID)
		assert.NoError(t, err)
		assert.Nil(t, branch)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBranchReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBranchReadRepository(db, nil)
	ctx := context.Background()

	rows := sqlmock.NewRows(branchColumns).
		AddRow(uuid.New(), "North Branch", "Delhi", "Connaught Place", time.Now()).
		AddRow(uuid.New(), "Main Branch", "Mumbai", "Andheri West", time.Now().Add(-time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM branches\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	branches, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, branches, 2)
	assert.Equal(t, "North Branch", branches[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBranchWriteRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBranchWriteRepository(db, nil)
	ctx := context.Background()

	branch := &models.BranchDB{
		BranchID:  uuid.New(),
		Name:      "Main Branch",
		City:      "Mumbai",
		Location:  "Andheri West",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("save", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO branches`).
			WithArgs(branch.BranchID, branch.Name, branch.City, branch.Location, branch.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, branch))
	})

	t.Run("update", func(t *testing.T) {
		mock.ExpectExec(`UPDATE branches`).
			WithArgs(branch.BranchID, branch.Name, branch.City, branch.Location).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.Update(ctx, branch)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("update missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE branches`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.Update(ctx, branch)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM branches WHERE id = \$1`).
			WithArgs(branch.BranchID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.Delete(ctx, branch.BranchID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
