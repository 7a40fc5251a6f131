package transaction

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxAmountDecimals is the scale of the amount column
const maxAmountDecimals = 2

// amountLimit is the first magnitude NUMERIC(20,2) cannot hold
var amountLimit = decimal.New(1, 18)

// TransactionUseCase implements domain.TransactionUseCase
type TransactionUseCase struct {
	transactionRepo domain.TransactionRepository
	userRepo        domain.UserRepository
	logger          *logger.Logger
}

// NewTransactionUseCase creates a new transaction usecase
func NewTransactionUseCase(
	transactionRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	logger *logger.Logger,
) domain.TransactionUseCase {
	logger.Info("TransactionUseCase initialized successfully")
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// Create records an income or expense for a user
func (uc *TransactionUseCase) Create(ctx context.Context, userID int64, input domain.CreateTransactionInput) (*domain.Transaction, error) {
	log := uc.logger.WithContext(ctx)

	if !input.TransactionType.IsValid() {
		return nil, domain.NewValidationError("transaction_type", "must be one of income, expense")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, domain.NewValidationError("category", "must not be empty")
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := uc.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		UserID:          userID,
		Amount:          input.Amount,
		Category:        input.Category,
		Description:     input.Description,
		TransactionType: input.TransactionType,
	}
	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		log.Error("Failed to create transaction", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("create transaction", err)
	}

	log.Info("Transaction created",
		zap.Int64("userID", userID),
		zap.Int64("transactionID", tx.ID),
		zap.String("type", string(tx.TransactionType)),
	)
	return tx, nil
}

// List retrieves a page of a user's transactions, newest first
func (uc *TransactionUseCase) List(ctx context.Context, userID int64, skip, limit int) ([]*domain.Transaction, error) {
	transactions, err := uc.transactionRepo.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list transactions", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("list transactions", err)
	}
	return transactions, nil
}

// Summary totals every transaction of a user
func (uc *TransactionUseCase) Summary(ctx context.Context, userID int64) (*domain.TransactionSummary, error) {
	transactions, err := uc.transactionRepo.ListAllByUserID(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to load transactions", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("summarize transactions", err)
	}
	return summarize(transactions), nil
}

// Delete removes a transaction by ID
func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError(domain.ErrCodeTransactionNotFound, "Transaction")
		}
		uc.logger.WithContext(ctx).Error("Failed to delete transaction", zap.Int64("transactionID", id), zap.Error(err))
		return domain.NewDatabaseError("delete transaction", err)
	}

	uc.logger.WithContext(ctx).Info("Transaction deleted", zap.Int64("transactionID", id))
	return nil
}

func (uc *TransactionUseCase) ensureUser(ctx context.Context, userID int64) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get user", zap.Int64("userID", userID), zap.Error(err))
		return domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}
	return nil
}

// validateAmount rejects amounts the amount column cannot store exactly
func validateAmount(amount float64) error {
	d := decimal.NewFromFloat(amount)
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return domain.NewValidationError("amount", "must be less than 1e18 in magnitude")
	}
	if -d.Exponent() > maxAmountDecimals {
		return domain.NewAppError(
			domain.ErrCodeInvalidPrecision,
			"Amount must have at most 2 decimal places",
			http.StatusUnprocessableEntity,
			nil,
		)
	}
	return nil
}

func summarize(transactions []*domain.Transaction) *domain.TransactionSummary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.TransactionType {
		case domain.TransactionTypeIncome:
			income = income.Add(amount)
		case domain.TransactionTypeExpense:
			expense = expense.Add(amount)
		}
	}

	return &domain.TransactionSummary{
		TotalIncome:      income.InexactFloat64(),
		TotalExpense:     expense.InexactFloat64(),
		Balance:          income.Sub(expense).InexactFloat64(),
		TransactionCount: len(transactions),
	}
}
