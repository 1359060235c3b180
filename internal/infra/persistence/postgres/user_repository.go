// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their local ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find user by id")
}

// FindByExternalIdentityID retrieves the user linked to an identity-provider UID.
func (repo *userRepository) FindByExternalIdentityID(ctx context.Context, externalID string) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("external_identity_id = ?", externalID), "failed to find user by external identity")
}

// FindByPaymentCustomerIDForUpdate retrieves and locks the user row for the rest of the transaction.
func (repo *userRepository) FindByPaymentCustomerIDForUpdate(ctx context.Context, customerID string) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_customer_id = ?", customerID)

	return repo.first(ctx, query, "failed to lock user by payment customer")
}

// FindByIDForUpdate retrieves and locks a user row by local ID.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)

	return repo.first(ctx, query, "failed to lock user by id")
}

func (repo *userRepository) first(_ context.Context, query *gorm.DB, msg string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. A unique violation on the external identity or
// payment customer id maps to repository.ErrDuplicateUser.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetPaymentCustomerID links the user to a payment-processor customer.
func (repo *userRepository) SetPaymentCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("payment_customer_id", customerID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set payment customer id")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateEntitlement writes the entitlement pair and its provenance in one statement.
func (repo *userRepository) UpdateEntitlement(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"is_business_owner":       user.IsBusinessOwner,
			"has_active_subscription": user.HasActiveSubscription,
			"entitlement_source":      string(user.EntitlementSource),
			"entitlement_updated_at":  user.EntitlementUpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update entitlement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                    data.ID,
		ExternalIdentityID:    derefString(data.ExternalIdentityID),
		Username:              data.Username,
		Email:                 data.Email,
		PaymentCustomerID:     derefString(data.PaymentCustomerID),
		IsBusinessOwner:       data.IsBusinessOwner,
		HasActiveSubscription: data.HasActiveSubscription,
		IsStaff:               data.IsStaff,
		EntitlementSource:     entity.EntitlementSource(data.EntitlementSource),
		EntitlementUpdatedAt:  data.EntitlementUpdatedAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	source := data.EntitlementSource
	if source == "" {
		source = entity.EntitlementSourceNone
	}

	return &model.UserModel{
		ID:                    data.ID,
		ExternalIdentityID:    nullableString(data.ExternalIdentityID),
		Username:              data.Username,
		Email:                 data.Email,
		PaymentCustomerID:     nullableString(data.PaymentCustomerID),
		IsBusinessOwner:       data.IsBusinessOwner,
		HasActiveSubscription: data.HasActiveSubscription,
		IsStaff:               data.IsStaff,
		EntitlementSource:     string(source),
		EntitlementUpdatedAt:  data.EntitlementUpdatedAt,
	}
}

// nullableString stores empty strings as NULL so unique indexes ignore them.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
