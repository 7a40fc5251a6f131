package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validate = validator.New()

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo     domain.UserRepository
	progressRepo domain.ProgressRepository
	uow          domain.UnitOfWork
	logger       *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	progressRepo domain.ProgressRepository,
	uow domain.UnitOfWork,
	logger *logger.Logger,
) domain.UserUseCase {
	logger.Info("UserUseCase initialized successfully")
	return &UserUseCase{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		uow:          uow,
		logger:       logger,
	}
}

// Create registers a user together with its initial progress row
func (uc *UserUseCase) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	log := uc.logger.WithContext(ctx)

	phoneNumber := strings.TrimSpace(input.PhoneNumber)
	if phoneNumber == "" {
		return nil, domain.NewValidationError("phone_number", "must not be empty")
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		log.Error("Failed to look up phone number", zap.Error(err))
		return nil, domain.NewDatabaseError("get user by phone number", err)
	}
	if existing != nil {
		return nil, phoneConflict()
	}

	language := input.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	user := &domain.User{
		PhoneNumber: phoneNumber,
		Name:        nonEmpty(input.Name),
		Email:       nonEmpty(input.Email),
		Language:    language,
		IsActive:    true,
	}

	err = uc.uow.Do(ctx, func(repos domain.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		return repos.Progress.Create(ctx, domain.NewUserProgress(user.ID, time.Now().UTC()))
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, uc.duplicateUserError(ctx, phoneNumber)
		}
		log.Error("Failed to create user", zap.Error(err))
		return nil, domain.NewDatabaseError("create user", err)
	}

	log.Info("User created", zap.Int64("userID", user.ID))
	return user, nil
}

// Get retrieves a user by ID
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get user", zap.Int64("userID", id), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}
	return user, nil
}

// List retrieves a page of users
func (uc *UserUseCase) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx, skip, limit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list users", zap.Error(err))
		return nil, domain.NewDatabaseError("list users", err)
	}
	return users, nil
}

// Update writes the supplied fields of a user. Empty name or email clears the column.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	log := uc.logger.WithContext(ctx)

	if input.Language != nil && strings.TrimSpace(*input.Language) == "" {
		return nil, domain.NewValidationError("language", "must not be empty")
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}

	if !input.IsEmpty() {
		fields := make(map[string]interface{}, 3)
		if input.Name != nil {
			fields["name"] = nonEmpty(input.Name)
		}
		if input.Email != nil {
			fields["email"] = nonEmpty(input.Email)
		}
		if input.Language != nil {
			fields["language"] = *input.Language
		}

		if err := uc.userRepo.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, domain.NewConflictError(domain.ErrCodeEmailAlreadyRegistered, "Email already registered")
			}
			log.Error("Failed to update user", zap.Int64("userID", id), zap.Error(err))
			return nil, domain.NewDatabaseError("update user", err)
		}
		log.Info("User updated", zap.Int64("userID", id), zap.Int("fields", len(fields)))
	}

	return uc.Get(ctx, id)
}

// GetProgress retrieves the progress row of a user
func (uc *UserUseCase) GetProgress(ctx context.Context, id int64) (*domain.UserProgress, error) {
	progress, err := uc.progressRepo.GetByUserID(ctx, id)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get progress", zap.Int64("userID", id), zap.Error(err))
		return nil, domain.NewDatabaseError("get progress", err)
	}
	if progress == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeProgressNotFound, "User progress")
	}
	return progress, nil
}

// AddCoins credits coins to a user and returns the new total
func (uc *UserUseCase) AddCoins(ctx context.Context, id int64, coins int) (*domain.AddCoinsResult, error) {
	log := uc.logger.WithContext(ctx)

	var total int
	err := uc.uow.Do(ctx, func(repos domain.Repositories) error {
		applied, err := repos.Progress.AddCoins(ctx, id, coins)
		if err != nil {
			return domain.NewDatabaseError("add coins", err)
		}
		if !applied {
			return domain.NewNotFoundError(domain.ErrCodeProgressNotFound, "User progress")
		}

		progress, err := repos.Progress.GetByUserID(ctx, id)
		if err != nil {
			return domain.NewDatabaseError("get progress", err)
		}
		if progress == nil {
			return domain.NewNotFoundError(domain.ErrCodeProgressNotFound, "User progress")
		}
		total = progress.Coins
		return nil
	})
	if err != nil {
		appErr := domain.AsAppError(err)
		if appErr.HTTPStatus >= 500 {
			log.Error("Failed to add coins", zap.Int64("userID", id), zap.Error(err))
		}
		return nil, appErr
	}

	log.Info("Coins added", zap.Int64("userID", id), zap.Int("coins", coins), zap.Int("total", total))
	return &domain.AddCoinsResult{
		Message:    "Coins added successfully",
		TotalCoins: total,
	}, nil
}

// duplicateUserError tells a phone conflict from an email conflict after a failed insert
func (uc *UserUseCase) duplicateUserError(ctx context.Context, phoneNumber string) error {
	existing, err := uc.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err == nil && existing != nil {
		return phoneConflict()
	}
	return domain.NewConflictError(domain.ErrCodeEmailAlreadyRegistered, "Email already registered")
}

func phoneConflict() *domain.AppError {
	return domain.NewConflictError(domain.ErrCodePhoneAlreadyRegistered, "Phone number already registered")
}

// validateEmail accepts nil and blank values, which mean no email
func validateEmail(email *string) error {
	if e := nonEmpty(email); e != nil {
		if err := validate.Var(*e, "email"); err != nil {
			return domain.NewValidationError("email", "must be a valid email address")
		}
	}
	return nil
}

// nonEmpty maps nil and blank strings to nil
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
