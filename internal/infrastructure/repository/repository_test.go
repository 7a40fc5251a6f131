package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, db *gorm.DB, phone string, name *string) *domain.User {
	t.Helper()
	user := &domain.User{PhoneNumber: phone, Name: name, Language: "en", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "+15550001", strPtr("Asha"))
	assert.NotZero(t, user.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "+15550001", got.PhoneNumber)
		assert.True(t, got.IsActive)
		assert.Equal(t, "en", got.Language)
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get by phone number", func(t *testing.T) {
		got, err := repo.GetByPhoneNumber(ctx, "+15550001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)

		missing, err := repo.GetByPhoneNumber(ctx, "+10000000")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate phone number is a duplicated key", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{PhoneNumber: "+15550001", Language: "en", IsActive: true})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("update touches only given columns", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, user.ID, map[string]interface{}{"language": "hi"}))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hi", got.Language)
		require.NotNil(t, got.Name)
		assert.Equal(t, "Asha", *got.Name)

		require.NoError(t, repo.Update(ctx, user.ID, map[string]interface{}{"name": nil}))
		got, err = repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Name)
	})

	t.Run("list pages in insertion order", func(t *testing.T) {
		second := createUser(t, db, "+15550002", nil)
		third := createUser(t, db, "+15550003", nil)

		page, err := repo.List(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, second.ID, page[0].ID)
		assert.Equal(t, third.ID, page[1].ID)
	})
}

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewProgressRepository(db)

	user := createUser(t, db, "+15551000", nil)
	require.NoError(t, repo.Create(ctx, domain.NewUserProgress(user.ID, time.Now())))

	progress, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 0, progress.Coins)
	assert.Equal(t, 1, progress.Level)
	assert.Equal(t, 0, progress.XP)
	assert.Equal(t, 0, progress.StreakDays)

	applied, err := repo.AddCoins(ctx, user.ID, 15)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.AddCoins(ctx, user.ID, -5)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.AddReward(ctx, user.ID, 5, 50)
	require.NoError(t, err)
	assert.True(t, applied)

	progress, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, progress.Coins)
	assert.Equal(t, 50, progress.XP)

	t.Run("no row", func(t *testing.T) {
		applied, err := repo.AddCoins(ctx, 4242, 10)
		require.NoError(t, err)
		assert.False(t, applied)

		applied, err = repo.AddReward(ctx, 4242, 1, 1)
		require.NoError(t, err)
		assert.False(t, applied)

		missing, err := repo.GetByUserID(ctx, 4242)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewTransactionRepository(db)

	user := createUser(t, db, "+15552000", nil)
	other := createUser(t, db, "+15552001", nil)

	var created []*domain.Transaction
	for i, amount := range []float64{100, 25.5, 10} {
		txType := domain.TransactionTypeExpense
		if i == 0 {
			txType = domain.TransactionTypeIncome
		}
		tx := &domain.Transaction{UserID: user.ID, Amount: amount, Category: "food", TransactionType: txType}
		require.NoError(t, repo.Create(ctx, tx))
		created = append(created, tx)
	}
	require.NoError(t, repo.Create(ctx, &domain.Transaction{UserID: other.ID, Amount: 1, Category: "misc", TransactionType: domain.TransactionTypeIncome}))

	t.Run("list is newest first", func(t *testing.T) {
		list, err := repo.ListByUserID(ctx, user.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, created[2].ID, list[0].ID)
		assert.Equal(t, created[0].ID, list[2].ID)

		page, err := repo.ListByUserID(ctx, user.ID, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, created[1].ID, page[0].ID)
	})

	t.Run("list all returns only the user's rows", func(t *testing.T) {
		all, err := repo.ListAllByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created[1].ID))

		got, err := repo.GetByID(ctx, created[1].ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		err = repo.Delete(ctx, created[1].ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		all, err := repo.ListAllByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestGameScoreRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewGameScoreRepository(db)

	named := createUser(t, db, "+15553000", strPtr("Ravi"))
	anonymous := createUser(t, db, "+15553001", nil)

	submit := func(userID int64, game string, score int) *domain.GameScore {
		s := &domain.GameScore{UserID: userID, GameName: game, Score: score, CoinsEarned: 1}
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	first := submit(named.ID, "budget-blitz", 30)
	second := submit(anonymous.ID, "budget-blitz", 30)
	submit(named.ID, "budget-blitz", 10)
	submit(named.ID, "tapcoin", 99)

	t.Run("high score", func(t *testing.T) {
		best, err := repo.GetHighScore(ctx, named.ID, "budget-blitz")
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, 30, best.Score)
		assert.Equal(t, first.ID, best.ID)

		none, err := repo.GetHighScore(ctx, anonymous.ID, "tapcoin")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("top scores keep submission order for ties", func(t *testing.T) {
		rows, err := repo.TopScores(ctx, "budget-blitz", 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []int{30, 30, 10}, []int{rows[0].Score, rows[1].Score, rows[2].Score})
		assert.Equal(t, first.ID, rows[0].ScoreID)
		assert.Equal(t, second.ID, rows[1].ScoreID)
		require.NotNil(t, rows[0].Name)
		assert.Equal(t, "Ravi", *rows[0].Name)
		assert.Nil(t, rows[1].Name)
		assert.Equal(t, "+15553001", rows[1].PhoneNumber)
		assert.False(t, rows[0].CreatedAt.IsZero())

		limited, err := repo.TopScores(ctx, "budget-blitz", 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("list by user", func(t *testing.T) {
		scores, err := repo.ListByUserID(ctx, named.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, scores, 3)
		assert.Equal(t, "tapcoin", scores[0].GameName)
	})
}

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewContentRepository(db)

	items := []*domain.FinancialContent{
		{Title: "Budgeting 101", ContentType: domain.ContentTypeVideo, Language: "en", DifficultyLevel: domain.DifficultyBeginner, IsActive: true},
		{Title: "Compound Interest", ContentType: domain.ContentTypeArticle, Language: "en", DifficultyLevel: domain.DifficultyIntermediate, IsActive: true},
		{Title: "बचत क्विज़", ContentType: domain.ContentTypeQuiz, Language: "hi", DifficultyLevel: domain.DifficultyBeginner, IsActive: true},
		{Title: "Retired draft", ContentType: domain.ContentTypeVideo, Language: "en", DifficultyLevel: domain.DifficultyBeginner, IsActive: false},
	}
	for _, item := range items {
		require.NoError(t, repo.Create(ctx, item))
	}

	t.Run("inactive rows stay inactive", func(t *testing.T) {
		stored, err := repo.GetByTitle(ctx, "Retired draft")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.False(t, stored.IsActive)
	})

	tests := []struct {
		name   string
		filter domain.ContentFilter
		titles []string
	}{
		{"no filter", domain.ContentFilter{Limit: 100}, []string{"बचत क्विज़", "Compound Interest", "Budgeting 101"}},
		{"by type", domain.ContentFilter{ContentType: domain.ContentTypeVideo, Limit: 100}, []string{"Budgeting 101"}},
		{"by language", domain.ContentFilter{Language: "hi", Limit: 100}, []string{"बचत क्विज़"}},
		{"by difficulty and language", domain.ContentFilter{Language: "en", DifficultyLevel: domain.DifficultyBeginner, Limit: 100}, []string{"Budgeting 101"}},
		{"unknown value", domain.ContentFilter{ContentType: "podcast", Limit: 100}, nil},
		{"paged", domain.ContentFilter{Offset: 1, Limit: 1}, []string{"Compound Interest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			var titles []string
			for _, c := range list {
				titles = append(titles, c.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}

	t.Run("get active by id", func(t *testing.T) {
		got, err := repo.GetActiveByID(ctx, items[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Budgeting 101", got.Title)

		inactive, err := repo.GetActiveByID(ctx, items[3].ID)
		require.NoError(t, err)
		assert.Nil(t, inactive)
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	users := NewUserRepository(db)
	progress := NewProgressRepository(db)
	uow := NewUnitOfWork(db, users, progress, NewTransactionRepository(db), NewGameScoreRepository(db))

	t.Run("commit", func(t *testing.T) {
		var userID int64
		err := uow.Do(ctx, func(repos domain.Repositories) error {
			user := &domain.User{PhoneNumber: "+15554000", Language: "en", IsActive: true}
			if err := repos.Users.Create(ctx, user); err != nil {
				return err
			}
			userID = user.ID
			return repos.Progress.Create(ctx, domain.NewUserProgress(user.ID, time.Now()))
		})
		require.NoError(t, err)

		p, err := progress.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("progress insert failed")
		err := uow.Do(ctx, func(repos domain.Repositories) error {
			if err := repos.Users.Create(ctx, &domain.User{PhoneNumber: "+15554001", Language: "en", IsActive: true}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		u, err := users.GetByPhoneNumber(ctx, "+15554001")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}
