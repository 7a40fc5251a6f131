package domain

//go:generate mockgen -source=unit_of_work.go -destination=mocks/unit_of_work_mock.go -package=mocks

import "context"

// Repositories groups the repositories bound to one database transaction
type Repositories struct {
	Users        UserRepository
	Progress     ProgressRepository
	Transactions TransactionRepository
	Scores       GameScoreRepository
}

// UnitOfWork runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
