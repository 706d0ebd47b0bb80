package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/persistence"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func setupGoalUseCase(t *testing.T) (*GoalUseCase, *persistencemocks.MockUnitOfWork, *persistencemocks.MockGoalRepository, *coremocks.MockTimeProvider) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	repo := persistencemocks.NewMockGoalRepository(t)
	clock := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	uow.EXPECT().GetGoalRepository(mock.Anything).Return(repo).Maybe()
	return NewGoalUseCase(uow, clock, logger), uow, repo, clock
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Current defaults to zero", func(t *testing.T) {
		uc, _, repo, clock := setupGoalUseCase(t)

		clock.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(g *entity.Goal) bool {
			return g.Name == "Vacation" && g.CurrentAmount.IsZero() &&
				g.Deadline.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
		})).Run(func(ctx context.Context, g *entity.Goal) { g.ID = 4 }).Return(nil).Once()

		id, err := uc.Create(ctx, 1, portuse.GoalRequest{Name: "Vacation", TargetAmount: dec("1000"), Deadline: "2024-12-31"})

		require.NoError(t, err)
		assert.Equal(t, uint64(4), id)
	})

	t.Run("Missing fields", func(t *testing.T) {
		uc, _, _, _ := setupGoalUseCase(t)

		_, err := uc.Create(ctx, 1, portuse.GoalRequest{Name: "Vacation", Deadline: "2024-12-31"})
		require.Error(t, err)
		assert.Equal(t, "Name, target amount, and deadline are required", err.Error())
	})

	t.Run("Bad deadline", func(t *testing.T) {
		uc, _, _, _ := setupGoalUseCase(t)

		_, err := uc.Create(ctx, 1, portuse.GoalRequest{Name: "Vacation", TargetAmount: dec("1000"), Deadline: "soon"})

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	full := portuse.GoalRequest{Name: "Car", TargetAmount: dec("5000"), CurrentAmount: dec("0"), Deadline: "2025-06-30"}

	t.Run("Full update with zero current", func(t *testing.T) {
		uc, _, repo, clock := setupGoalUseCase(t)

		clock.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(g *entity.Goal) bool {
			return g.ID == 8 && g.UserID == 1 && g.Name == "Car" && g.CurrentAmount.IsZero()
		})).Return(nil).Once()

		assert.NoError(t, uc.Update(ctx, 1, 8, full))
	})

	t.Run("Current must be present", func(t *testing.T) {
		uc, _, _, _ := setupGoalUseCase(t)

		req := full
		req.CurrentAmount = nil

		assert.True(t, errs.IsValidationError(uc.Update(ctx, 1, 8, req)))
	})

	t.Run("Goal owned by someone else", func(t *testing.T) {
		uc, _, repo, clock := setupGoalUseCase(t)

		clock.EXPECT().Now().Return(fixedTime).Once()
		repo.EXPECT().Update(ctx, mock.Anything).Return(errs.ErrGoalNotFound).Once()

		err := uc.Update(ctx, 2, 8, full)

		assert.True(t, errs.IsNotFoundError(err))
		var goalErr *errs.GoalError
		require.ErrorAs(t, err, &goalErr)
		assert.Equal(t, uint64(8), goalErr.GoalID)
	})
}

func TestAddProgress(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")
	fixedTime := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := func() *entity.Goal {
		return &entity.Goal{
			ID: 8, UserID: 1, Name: "Car",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(100),
			Deadline:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Adds to current and keeps other fields", func(t *testing.T) {
		uc, uow, repo, clock := setupGoalUseCase(t)

		clock.EXPECT().Now().Return(fixedTime).Once()
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		repo.EXPECT().GetByID(txCtx, uint64(1), uint64(8)).Return(stored(), nil).Once()
		repo.EXPECT().Update(txCtx, mock.MatchedBy(func(g *entity.Goal) bool {
			return g.Name == "Car" && g.TargetAmount.Equal(decimal.NewFromInt(5000)) &&
				g.CurrentAmount.Equal(decimal.NewFromInt(150))
		})).Return(nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		goal, err := uc.AddProgress(ctx, 1, 8, dec("50"))

		require.NoError(t, err)
		assert.True(t, goal.CurrentAmount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		uc, _, _, _ := setupGoalUseCase(t)

		_, err := uc.AddProgress(ctx, 1, 8, dec("0"))
		assert.True(t, errs.IsValidationError(err))

		_, err = uc.AddProgress(ctx, 1, 8, dec("-10"))
		assert.True(t, errs.IsValidationError(err))

		_, err = uc.AddProgress(ctx, 1, 8, nil)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unknown goal rolls back", func(t *testing.T) {
		uc, uow, repo, clock := setupGoalUseCase(t)

		clock.EXPECT().Now().Return(fixedTime).Once()
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		repo.EXPECT().GetByID(txCtx, uint64(1), uint64(99)).Return(nil, errs.ErrGoalNotFound).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := uc.AddProgress(ctx, 1, 99, dec("10"))

		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Begin failure", func(t *testing.T) {
		uc, uow, _, _ := setupGoalUseCase(t)

		uow.EXPECT().Begin(ctx).Return(ctx, errors.New("too many connections")).Once()

		_, err := uc.AddProgress(ctx, 1, 8, dec("10"))

		assert.True(t, errs.IsStoreError(err))
	})
}
