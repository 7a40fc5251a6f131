package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/http/handlers"
	"github.com/saradorri/prospera/internal/http/middleware"
	"github.com/saradorri/prospera/internal/infrastructure/database"
	"github.com/saradorri/prospera/internal/infrastructure/database/dbtest"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/saradorri/prospera/internal/infrastructure/repository"
	"github.com/saradorri/prospera/internal/usecase/content"
	"github.com/saradorri/prospera/internal/usecase/game"
	"github.com/saradorri/prospera/internal/usecase/transaction"
	"github.com/saradorri/prospera/internal/usecase/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
	db      *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := dbtest.New(t)
	log := logger.NewNopLogger()

	users := repository.NewUserRepository(db)
	progress := repository.NewProgressRepository(db)
	transactions := repository.NewTransactionRepository(db)
	scores := repository.NewGameScoreRepository(db)
	catalogue := repository.NewContentRepository(db)
	uow := repository.NewUnitOfWork(db, users, progress, transactions, scores)

	server := NewServer(
		Options{
			Address:        ":0",
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Handlers{
			User:        handlers.NewUserHandler(user.NewUserUseCase(users, progress, uow, log), log),
			Transaction: handlers.NewTransactionHandler(transaction.NewTransactionUseCase(transactions, users, log), log),
			Game:        handlers.NewGameHandler(game.NewGameUseCase(scores, uow, log), log),
			Content:     handlers.NewContentHandler(content.NewContentUseCase(catalogue, log)),
			Health:      handlers.NewHealthHandler(&database.Database{DB: db}, log),
		},
		middleware.NewErrorHandler(log),
		log,
	)

	return &testAPI{t: t, handler: server.Handler(), db: db}
}

func (a *testAPI) do(method, target, body string, out interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func TestUserJourney(t *testing.T) {
	api := newTestAPI(t)

	var created domain.User
	w := api.do(http.MethodPost, "/api/users", `{"phone_number":"+911234567890","name":"Asha"}`, &created)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "en", created.Language)
	assert.True(t, created.IsActive)

	var progress domain.UserProgress
	w = api.do(http.MethodGet, "/api/users/1/progress", "", &progress)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, progress.Coins)
	assert.Equal(t, 1, progress.Level)
	assert.Equal(t, 0, progress.XP)

	var score domain.GameScore
	w = api.do(http.MethodPost, "/api/games/1/scores", `{"game_name":"tapcoin","score":20,"coins_earned":2}`, &score)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 20, score.Score)

	w = api.do(http.MethodGet, "/api/users/1/progress", "", &progress)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, progress.Coins)
	assert.Equal(t, 20, progress.XP)

	var coins domain.AddCoinsResult
	w = api.do(http.MethodPost, "/api/users/1/progress/add-coins?coins=5", "", &coins)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.AddCoinsResult{Message: "Coins added successfully", TotalCoins: 7}, coins)

	var updated domain.User
	w = api.do(http.MethodPut, "/api/users/1", `{"name":"","language":"hi"}`, &updated)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, updated.Name)
	assert.Equal(t, "hi", updated.Language)
	assert.Equal(t, "+911234567890", updated.PhoneNumber)

	var failure domain.ErrorResponse
	w = api.do(http.MethodPost, "/api/users", `{"phone_number":"+911234567890"}`, &failure)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrCodePhoneAlreadyRegistered, failure.Error.Code)
	assert.False(t, failure.Success)

	w = api.do(http.MethodGet, "/api/users/42", "", &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeUserNotFound, failure.Error.Code)

	w = api.do(http.MethodPost, "/api/users/42/progress/add-coins?coins=1", "", &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeProgressNotFound, failure.Error.Code)
}

func TestDuplicateEmail(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/users", `{"phone_number":"+1001","email":"same@example.com"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var failure domain.ErrorResponse
	w = api.do(http.MethodPost, "/api/users", `{"phone_number":"+1002","email":"same@example.com"}`, &failure)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrCodeEmailAlreadyRegistered, failure.Error.Code)

	// the failed registration left no user or progress behind
	var users []domain.User
	api.do(http.MethodGet, "/api/users", "", &users)
	assert.Len(t, users, 1)
}

func TestInputBounds(t *testing.T) {
	api := newTestAPI(t)

	var failure domain.ErrorResponse
	w := api.do(http.MethodPost, "/api/users", `{"phone_number":"   "}`, &failure)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Equal(t, domain.ErrCodeValidation, failure.Error.Code)
	assert.Contains(t, failure.Error.Message, "phone_number")

	var count int64
	require.NoError(t, api.db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)

	w = api.do(http.MethodPost, "/api/users", `{"phone_number":"+1777"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/transactions/1",
		`{"amount":1e300,"category":"salary","transaction_type":"income"}`, &failure)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, failure.Error.Message, "amount")

	w = api.do(http.MethodPost, "/api/users/1/progress/add-coins?coins=4294967296", "", &failure)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	require.NoError(t, api.db.Model(&domain.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransactions(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/users", `{"phone_number":"+2001"}`, nil).Code)

	for _, body := range []string{
		`{"amount":1000,"category":"salary","transaction_type":"income"}`,
		`{"amount":0.1,"category":"interest","transaction_type":"income"}`,
		`{"amount":0.2,"category":"interest","transaction_type":"income"}`,
		`{"amount":250.5,"category":"rent","transaction_type":"expense","description":"May"}`,
	} {
		w := api.do(http.MethodPost, "/api/transactions/1", body, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var list []domain.Transaction
	w := api.do(http.MethodGet, "/api/transactions/1?limit=2", "", &list)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, list, 2)
	assert.Equal(t, "rent", list[0].Category)

	var summary domain.TransactionSummary
	w = api.do(http.MethodGet, "/api/transactions/1/summary", "", &summary)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.TransactionSummary{
		TotalIncome:      1000.3,
		TotalExpense:     250.5,
		Balance:          749.8,
		TransactionCount: 4,
	}, summary)

	var failure domain.ErrorResponse
	w = api.do(http.MethodPost, "/api/transactions/1", `{"amount":1.005,"category":"x","transaction_type":"income"}`, &failure)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidPrecision, failure.Error.Code)

	w = api.do(http.MethodPost, "/api/transactions/77", `{"amount":1,"category":"x","transaction_type":"income"}`, &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeUserNotFound, failure.Error.Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/transactions/%d", list[0].ID), "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, "/api/transactions/999", "", &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeTransactionNotFound, failure.Error.Code)

	w = api.do(http.MethodGet, "/api/transactions/1/summary", "", &summary)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, 0.0, summary.TotalExpense)
}

func TestGames(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/users", `{"phone_number":"+3001","name":"Ravi"}`, nil).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/users", `{"phone_number":"+3002"}`, nil).Code)

	for _, submission := range []struct {
		user int
		body string
	}{
		{1, `{"game_name":"budget-blitz","score":30,"coins_earned":3}`},
		{2, `{"game_name":"budget-blitz","score":30}`},
		{1, `{"game_name":"budget-blitz","score":10,"coins_earned":1}`},
	} {
		w := api.do(http.MethodPost, fmt.Sprintf("/api/games/%d/scores", submission.user), submission.body, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var board []domain.LeaderboardEntry
	w := api.do(http.MethodGet, "/api/games/leaderboard/budget-blitz", "", &board)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, board, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{board[0].Rank, board[1].Rank, board[2].Rank})
	assert.Equal(t, []int{30, 30, 10}, []int{board[0].Score, board[1].Score, board[2].Score})
	assert.Equal(t, "Ravi", board[0].UserName)
	assert.Equal(t, "+3002", board[1].UserName)

	w = api.do(http.MethodGet, "/api/games/leaderboard/budget-blitz?limit=1", "", &board)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, board, 1)

	var high domain.HighScore
	w = api.do(http.MethodGet, "/api/games/1/scores/budget-blitz", "", &high)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, high.HighScore)
	require.NotNil(t, high.CoinsEarned)
	assert.Equal(t, 3, *high.CoinsEarned)

	high = domain.HighScore{}
	w = api.do(http.MethodGet, "/api/games/2/scores/tapcoin", "", &high)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.HighScore{GameName: "tapcoin", Message: "No scores found"}, high)

	var scores []domain.GameScore
	w = api.do(http.MethodGet, "/api/games/1/scores", "", &scores)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, scores, 2)

	var progress domain.UserProgress
	api.do(http.MethodGet, "/api/users/1/progress", "", &progress)
	assert.Equal(t, 4, progress.Coins)
	assert.Equal(t, 40, progress.XP)

	var failure domain.ErrorResponse
	w = api.do(http.MethodPost, "/api/games/99/scores", `{"game_name":"tapcoin","score":1}`, &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeUserNotFound, failure.Error.Code)

	var count int64
	require.NoError(t, api.db.Model(&domain.GameScore{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestContent(t *testing.T) {
	api := newTestAPI(t)
	repo := repository.NewContentRepository(api.db)
	ctx := context.Background()

	visible := &domain.FinancialContent{Title: "What is a budget?", ContentType: "video", Language: "en", DifficultyLevel: "beginner", IsActive: true}
	hidden := &domain.FinancialContent{Title: "Old draft", ContentType: "video", Language: "en", DifficultyLevel: "beginner", IsActive: false}
	require.NoError(t, repo.Create(ctx, visible))
	require.NoError(t, repo.Create(ctx, hidden))

	var items []domain.FinancialContent
	w := api.do(http.MethodGet, "/api/content?content_type=video", "", &items)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, "What is a budget?", items[0].Title)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/content/%d", visible.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var failure domain.ErrorResponse
	w = api.do(http.MethodGet, fmt.Sprintf("/api/content/%d", hidden.ID), "", &failure)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeContentNotFound, failure.Error.Code)

	var taxonomy domain.ContentTaxonomy
	w = api.do(http.MethodGet, "/api/content/types/list", "", &taxonomy)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"en", "hi", "ta", "te", "bn"}, taxonomy.Languages)
}

func TestOperationalEndpoints(t *testing.T) {
	api := newTestAPI(t)

	var banner handlers.BannerResponse
	w := api.do(http.MethodGet, "/", "", &banner)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Prospera API", banner.Message)

	var health handlers.HealthResponse
	w = api.do(http.MethodGet, "/health", "", &health)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.HealthResponse{Status: "healthy", Database: "ok"}, health)

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/404", nil)
		req.Header.Set("X-Request-ID", "trace-123")
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))

		var failure domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
		assert.Equal(t, "trace-123", failure.Error.RequestID)
	})

	t.Run("request id is generated", func(t *testing.T) {
		w := api.do(http.MethodGet, "/health", "", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("swagger", func(t *testing.T) {
		var doc struct {
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		w := api.do(http.MethodGet, "/swagger/doc.json", "", &doc)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/", doc.BasePath)

		// every documented path must be served as documented
		for _, path := range []string{"/", "/health", "/api/users", "/api/users/{id}/progress/add-coins", "/api/content/types/list"} {
			assert.Contains(t, doc.Paths, path)
		}
		for path := range doc.Paths {
			assert.True(t, path == "/" || path == "/health" || strings.HasPrefix(path, "/api/"), path)
		}
	})
}
