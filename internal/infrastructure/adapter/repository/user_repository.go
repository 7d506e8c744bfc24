package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.Username, m.PasswordHash, m.Cash, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.translate(err, errs.ErrUserNotFound)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()

	switch errs.KindOf(mapped) {
	case errs.KindNotFound, errs.KindConflict:
		r.logger.Warn(fmt.Sprintf("Database error when %s", operation), fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// Create inserts a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Cash:         user.Cash(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return userToEntity(&userModel), nil
}

// GetByUsername retrieves a user by login name
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by username", err, map[string]any{"username": username})
	}
	return userToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user and locks the row until the transaction ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, map[string]any{"user_id": id})
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id": id,
		"cash":    userModel.Cash.StringFixed(2),
	})
	return userToEntity(&userModel), nil
}

// UpdateCash stores a new cash balance
func (r *UserRepository) UpdateCash(ctx context.Context, userID uint64, cash decimal.Decimal) error {
	if cash.IsNegative() {
		return fmt.Errorf("%w: cash cannot be negative", errs.ErrConstraintViolation)
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"cash":       cash,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating cash", result.Error, map[string]any{"user_id": userID})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}
	return nil
}
