package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/usecase"
)

const validToken = "valid-token"

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeDatabase struct {
	pingErr error
}

func (f *fakeDatabase) Ping(context.Context) error { return f.pingErr }

func (f *fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 2, InUse: 1}
}

type apiFixture struct {
	router    *gin.Engine
	auth      *usecasemocks.MockAuthUseCase
	ledger    *usecasemocks.MockLedgerUseCase
	budgets   *usecasemocks.MockBudgetUseCase
	goals     *usecasemocks.MockGoalUseCase
	dashboard *usecasemocks.MockDashboardUseCase
	db        *fakeDatabase
}

func setupAPI(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		router:    gin.New(),
		auth:      usecasemocks.NewMockAuthUseCase(t),
		ledger:    usecasemocks.NewMockLedgerUseCase(t),
		budgets:   usecasemocks.NewMockBudgetUseCase(t),
		goals:     usecasemocks.NewMockGoalUseCase(t),
		dashboard: usecasemocks.NewMockDashboardUseCase(t),
		db:        &fakeDatabase{},
	}

	log := logger.NewNoopLogger()
	clock := timeadapter.NewFixedTimeProvider(fixedNow)

	f.auth.EXPECT().Authenticate(mock.Anything, validToken).
		Return(&entity.Claims{UserID: 7, Username: "jdoe"}, nil).Maybe()
	f.auth.EXPECT().Authenticate(mock.Anything, "").
		Return(nil, errs.ErrMissingToken).Maybe()
	f.auth.EXPECT().Authenticate(mock.Anything, "forged").
		Return(nil, errs.ErrInvalidToken).Maybe()

	routes.SetupMiddlewares(f.router, log, clock, []string{"http://localhost:3000"}, 5*time.Second)
	routes.SetupRoutes(f.router, routes.Handlers{
		Auth:         handler.NewAuthHandler(f.auth, log),
		Transactions: handler.NewTransactionHandler(f.ledger, log),
		Budgets:      handler.NewBudgetHandler(f.budgets, log),
		Goals:        handler.NewGoalHandler(f.goals, clock, log),
		Dashboard:    handler.NewDashboardHandler(f.dashboard, log),
		Health:       handler.NewHealthHandler(f.db, clock, log),
	}, f.auth, log)

	return f
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func amountIs(expected string) func(*decimal.Decimal) bool {
	return func(d *decimal.Decimal) bool {
		return d != nil && d.Equal(decimal.RequireFromString(expected))
	}
}

func TestRegister(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		f := setupAPI(t)
		f.auth.EXPECT().Register(mock.Anything, usecaseport.RegisterRequest{
			FullName: "Jane Doe", Email: "jane@example.com", Username: "jdoe", Password: "secret1",
		}).Return(uint64(1), nil).Once()

		w := f.do(http.MethodPost, "/api/register",
			`{"fullName":"Jane Doe","email":"jane@example.com","username":"jdoe","password":"secret1"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Registration Complete", body["message"])
		assert.Equal(t, float64(1), body["userId"])
	})

	t.Run("Duplicate account", func(t *testing.T) {
		f := setupAPI(t)
		f.auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(uint64(0), errs.ErrConflict).Once()

		w := f.do(http.MethodPost, "/api/register",
			`{"fullName":"Jane Doe","email":"jane@example.com","username":"jdoe","password":"secret1"}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeConflict), body["code"])
		assert.Equal(t, "User already exists", body["message"])
	})

	t.Run("Validation message is passed through", func(t *testing.T) {
		f := setupAPI(t)
		f.auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(uint64(0), &errs.ValidationError{Reason: "All fields are required"}).Once()

		w := f.do(http.MethodPost, "/api/register", `{"fullName":"Jane Doe"}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeValidation), body["code"])
		assert.Equal(t, "All fields are required", body["message"])
	})

	t.Run("Malformed body never reaches the use case", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodPost, "/api/register", `{"fullName":`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", decodeBody(t, w)["message"])
	})
}

func TestLogin(t *testing.T) {
	t.Run("Issues a token", func(t *testing.T) {
		f := setupAPI(t)
		user := &entity.User{ID: 7, FullName: "Jane Doe", Email: "jane@example.com", Username: "jdoe"}
		f.auth.EXPECT().Login(mock.Anything, "jdoe", "secret1").Return(&usecaseport.LoginResult{
			Token:  "signed",
			Claims: entity.ClaimsFor(user, fixedNow, 24*time.Hour),
			User:   user,
		}, nil).Once()

		w := f.do(http.MethodPost, "/api/login", `{"usernameOrEmail":"jdoe","password":"secret1"}`, "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Welcome back, Jane Doe!", body["message"])
		assert.Equal(t, "signed", body["token"])
		assert.Equal(t, "2025-06-16T12:00:00Z", body["expiresAt"])
		u := body["user"].(map[string]any)
		assert.Equal(t, float64(7), u["id"])
		assert.Equal(t, "Jane Doe", u["fullName"])
		assert.NotContains(t, u, "passwordHash")
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		f := setupAPI(t)
		f.auth.EXPECT().Login(mock.Anything, "jdoe", "nope").
			Return(nil, errs.ErrInvalidCredentials).Once()

		w := f.do(http.MethodPost, "/api/login", `{"usernameOrEmail":"jdoe","password":"nope"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username/email or password", decodeBody(t, w)["message"])
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing token is 401", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodGet, "/api/transactions", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeMissingToken), body["code"])
		assert.Equal(t, "Access token required", body["message"])
	})

	t.Run("Invalid token is 403", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodGet, "/api/budgets", "", "forged")

		assert.Equal(t, http.StatusForbidden, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeInvalidToken), body["code"])
		assert.Equal(t, "Invalid token", body["message"])
	})

	t.Run("Non bearer scheme counts as missing", func(t *testing.T) {
		f := setupAPI(t)
		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTransactions(t *testing.T) {
	t.Run("List is scoped to the token's user", func(t *testing.T) {
		f := setupAPI(t)
		f.ledger.EXPECT().List(mock.Anything, uint64(7)).Return([]*entity.Transaction{
			{
				ID: 2, UserID: 7, Kind: entity.KindExpense, Amount: decimal.RequireFromString("45.10"),
				Category: "Food", Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), CreatedAt: fixedNow,
			},
			{
				ID: 1, UserID: 7, Kind: entity.KindIncome, Amount: decimal.RequireFromString("3000"),
				Category: "Salary", Description: "June", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), CreatedAt: fixedNow,
			},
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/transactions", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 2)
		assert.Equal(t, "expense", list[0]["type"])
		assert.Equal(t, 45.1, list[0]["amount"])
		assert.Equal(t, "2025-06-02", list[0]["date"])
		assert.Nil(t, list[0]["description"])
		assert.Equal(t, "June", list[1]["description"])
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		f := setupAPI(t)
		f.ledger.EXPECT().List(mock.Anything, uint64(7)).Return(nil, nil).Once()

		w := f.do(http.MethodGet, "/api/transactions", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Create", func(t *testing.T) {
		f := setupAPI(t)
		f.ledger.EXPECT().Record(mock.Anything, uint64(7), mock.MatchedBy(func(req usecaseport.RecordTransactionRequest) bool {
			return req.Type == "expense" && amountIs("150.5")(req.Amount) &&
				req.Category == "Food" && req.Date == "2025-06-10"
		})).Return(uint64(11), nil).Once()

		w := f.do(http.MethodPost, "/api/transactions",
			`{"type":"expense","amount":150.5,"category":"Food","date":"2025-06-10"}`, validToken)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(11), body["id"])
		assert.Equal(t, "Transaction added successfully", body["message"])
	})

	t.Run("Store failures hide their cause", func(t *testing.T) {
		f := setupAPI(t)
		f.ledger.EXPECT().Record(mock.Anything, uint64(7), mock.Anything).
			Return(uint64(0), errs.NewStoreError("create transaction", errors.New("disk I/O error"))).Once()

		w := f.do(http.MethodPost, "/api/transactions",
			`{"type":"income","amount":"10","category":"Gift","date":"2025-06-10"}`, validToken)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeStore), body["code"])
		assert.Equal(t, "Database error", body["message"])
		assert.NotContains(t, w.Body.String(), "disk")
	})
}

func TestBudgets(t *testing.T) {
	t.Run("List carries usage", func(t *testing.T) {
		f := setupAPI(t)
		f.budgets.EXPECT().List(mock.Anything, uint64(7)).Return([]*entity.Budget{
			{ID: 1, UserID: 7, Category: "Food", LimitAmount: decimal.NewFromInt(200), SpentAmount: decimal.NewFromInt(250), CreatedAt: fixedNow},
			{ID: 2, UserID: 7, Category: "Rent", LimitAmount: decimal.NewFromInt(1000), SpentAmount: decimal.NewFromInt(500), CreatedAt: fixedNow},
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/budgets", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 2)
		assert.Equal(t, true, list[0]["overBudget"])
		assert.Equal(t, float64(50), list[0]["amountOver"])
		assert.Equal(t, float64(125), list[0]["usedPercent"])
		assert.Equal(t, false, list[1]["overBudget"])
		assert.Equal(t, float64(50), list[1]["usedPercent"])
	})

	t.Run("Upsert", func(t *testing.T) {
		f := setupAPI(t)
		f.budgets.EXPECT().Upsert(mock.Anything, uint64(7), mock.MatchedBy(func(req usecaseport.UpsertBudgetRequest) bool {
			return req.Category == "Food" && amountIs("300")(req.LimitAmount)
		})).Return(uint64(3), nil).Once()

		w := f.do(http.MethodPost, "/api/budgets", `{"category":"Food","limitAmount":300}`, validToken)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(3), decodeBody(t, w)["id"])
	})
}

func TestGoals(t *testing.T) {
	t.Run("List derives progress", func(t *testing.T) {
		f := setupAPI(t)
		f.goals.EXPECT().List(mock.Anything, uint64(7)).Return([]*entity.Goal{
			{
				ID: 1, UserID: 7, Name: "Vacation",
				TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250),
				Deadline: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), CreatedAt: fixedNow,
			},
			{
				ID: 2, UserID: 7, Name: "Old",
				TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.Zero,
				Deadline: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: fixedNow,
			},
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/goals", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 2)
		assert.Equal(t, float64(25), list[0]["percentComplete"])
		assert.Equal(t, float64(750), list[0]["remaining"])
		assert.Equal(t, float64(30), list[0]["daysLeft"])
		assert.Equal(t, float64(750), list[0]["monthlyNeeded"])
		assert.NotContains(t, list[1], "monthlyNeeded")
	})

	t.Run("Update of a foreign goal is 404", func(t *testing.T) {
		f := setupAPI(t)
		f.goals.EXPECT().Update(mock.Anything, uint64(7), uint64(9), mock.Anything).
			Return(errs.NewGoalError(9, 7, errs.ErrGoalNotFound)).Once()

		w := f.do(http.MethodPut, "/api/goals/9",
			`{"name":"Car","targetAmount":5000,"currentAmount":0,"deadline":"2026-01-01"}`, validToken)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(errs.CodeNotFound), body["code"])
		assert.Equal(t, "Goal not found", body["message"])
	})

	t.Run("Non numeric id is 404", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodPut, "/api/goals/abc", `{}`, validToken)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		f := setupAPI(t)
		f.goals.EXPECT().Update(mock.Anything, uint64(7), uint64(3), mock.MatchedBy(func(req usecaseport.GoalRequest) bool {
			return req.Name == "Car" && amountIs("5000")(req.TargetAmount) && amountIs("0")(req.CurrentAmount)
		})).Return(nil).Once()

		w := f.do(http.MethodPut, "/api/goals/3",
			`{"name":"Car","targetAmount":5000,"currentAmount":0,"deadline":"2026-01-01"}`, validToken)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Goal updated successfully", decodeBody(t, w)["message"])
	})

	t.Run("Add progress returns the goal", func(t *testing.T) {
		f := setupAPI(t)
		f.goals.EXPECT().AddProgress(mock.Anything, uint64(7), uint64(3), mock.MatchedBy(amountIs("50"))).
			Return(&entity.Goal{
				ID: 3, UserID: 7, Name: "Car",
				TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(150),
				Deadline: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			}, nil).Once()

		w := f.do(http.MethodPost, "/api/goals/3/progress", `{"amount":50}`, validToken)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(150), body["percentComplete"])
		assert.Equal(t, float64(-50), body["remaining"])
	})
}

func TestDashboard(t *testing.T) {
	t.Run("Summary", func(t *testing.T) {
		f := setupAPI(t)
		f.dashboard.EXPECT().Summary(mock.Anything, uint64(7)).Return(entity.DashboardSummary{
			TotalIncome:      decimal.NewFromInt(5000),
			TotalExpenses:    decimal.NewFromInt(1200),
			GoalSavings:      decimal.NewFromInt(800),
			TransactionCount: 3,
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/dashboard", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(3000), body["netAmount"])
		assert.Equal(t, float64(3), body["transactionCount"])
	})

	t.Run("Trend defaults to seven months", func(t *testing.T) {
		f := setupAPI(t)
		f.dashboard.EXPECT().MonthlyTrend(mock.Anything, uint64(7), entity.TrendMonths).
			Return([]entity.MonthlyTrendEntry{
				{Label: "Jun", Year: 2025, Month: time.June, Income: decimal.NewFromInt(100), Expenses: decimal.NewFromInt(30)},
			}, nil).Once()

		w := f.do(http.MethodGet, "/api/dashboard/trend", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "Jun", list[0]["month"])
		assert.Equal(t, float64(6), list[0]["monthNumber"])
		assert.Equal(t, float64(70), list[0]["net"])
	})

	t.Run("Trend rejects a non numeric window", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodGet, "/api/dashboard/trend?months=many", "", validToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Categories", func(t *testing.T) {
		f := setupAPI(t)
		f.dashboard.EXPECT().CategoryBreakdown(mock.Anything, uint64(7)).Return(entity.NewCategoryBreakdown([]*entity.Budget{
			{Category: "Food", SpentAmount: decimal.NewFromInt(75)},
			{Category: "Fun", SpentAmount: decimal.Zero},
			{Category: "Rent", SpentAmount: decimal.NewFromInt(25)},
		}), nil).Once()

		w := f.do(http.MethodGet, "/api/dashboard/categories", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Entries      []map[string]any `json:"entries"`
			Proportional []map[string]any `json:"proportional"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Entries, 3)
		require.Len(t, body.Proportional, 2)
		assert.Equal(t, float64(75), body.Proportional[0]["percent"])
	})

	t.Run("Monthly summary without activity", func(t *testing.T) {
		f := setupAPI(t)
		f.dashboard.EXPECT().MonthlySummary(mock.Anything, uint64(7)).
			Return(entity.MonthlySummary{Months: 7}, nil).Once()

		w := f.do(http.MethodGet, "/api/dashboard/summary", "", validToken)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "N/A", body["bestMonth"])
		assert.Equal(t, float64(0), body["savingsRate"])
	})
}

func TestHealth(t *testing.T) {
	t.Run("Up", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodGet, "/health", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, float64(1), body["dbConnectionsInUse"])
	})

	t.Run("Database down", func(t *testing.T) {
		f := setupAPI(t)
		f.db.pingErr = errors.New("connection refused")

		w := f.do(http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "down", decodeBody(t, w)["database"])
	})
}

func TestGlobalMiddlewares(t *testing.T) {
	t.Run("Request id is generated and echoed", func(t *testing.T) {
		f := setupAPI(t)

		w := f.do(http.MethodGet, "/health", "", "")

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Client request id is kept", func(t *testing.T) {
		f := setupAPI(t)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("CORS preflight for an allowed origin", func(t *testing.T) {
		f := setupAPI(t)
		req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
