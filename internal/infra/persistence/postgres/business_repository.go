package postgres

import (
	"context"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/model"
	"github.com/antoniopd1/mercado-local-mex/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// List returns one page of businesses ordered by name.
func (repo *businessRepository) List(ctx context.Context, query repository.BusinessListQuery) (*entity.Page[*entity.Business], error) {
	tx := repo.db.WithContext(ctx).Model(&model.BusinessModel{})
	if query.OnlyEntitledOwners {
		tx = tx.Joins("JOIN users ON users.id = businesses.user_id").
			Where("users.is_business_owner = ?", true)
	}
	tx = applyBusinessFilter(tx, query.Filter).Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}

	var businessMs []*model.BusinessModel
	if err := tx.
		Select("businesses.*").
		Order("businesses.name ASC").
		Order("businesses.id ASC").
		Offset(query.Page.Offset()).
		Limit(query.Page.PageSize).
		Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	items := make([]*entity.Business, 0, len(businessMs))
	for _, businessM := range businessMs {
		items = append(items, toBusinessDomain(businessM))
	}

	return &entity.Page[*entity.Business]{
		Items:    items,
		Total:    total,
		Page:     query.Page.Page,
		PageSize: query.Page.PageSize,
	}, nil
}

// applyBusinessFilter adds the free-text OR search and the exact AND filters.
func applyBusinessFilter(tx *gorm.DB, filter entity.ListFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := util.ContainsPattern(filter.Search)
		tx = tx.Where(
			"businesses.name ILIKE ? OR businesses.what_they_sell ILIKE ? OR businesses.municipality ILIKE ? OR businesses.business_type ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.BusinessType != "" {
		tx = tx.Where("UPPER(businesses.business_type) = ?", util.NormalizeCode(filter.BusinessType))
	}
	if filter.Municipality != "" {
		tx = tx.Where("UPPER(businesses.municipality) = ?", util.NormalizeCode(filter.Municipality))
	}

	return tx
}

// FindByID retrieves a business with its owner loaded.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find business by id")
}

// FindByUserID retrieves the business owned by a user.
func (repo *businessRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	return repo.first(repo.db.WithContext(ctx).Where("user_id = ?", userID), "failed to find business by user")
}

func (repo *businessRepository) first(query *gorm.DB, msg string) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := query.Preload("User").First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit("User", "Offers").Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update writes the editable columns only. The membership snapshot and the owner are never touched.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{ID: business.ID}).
		Select(
			"Name", "WhatTheySell", "Hours", "Municipality", "StreetAddress", "LocationType",
			"ContactPhone", "FacebookUsername", "InstagramUsername", "TiktokUsername",
			"LogoURL", "BusinessType",
		).
		Updates(businessM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Delete removes a business. Offers follow through ON DELETE CASCADE.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BusinessModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateMembership writes the membership snapshot of the business owned by userID.
func (repo *businessRepository) UpdateMembership(ctx context.Context, userID uuid.UUID, membership entity.Membership) error {
	var lastPayment *time.Time
	if membership.LastPaymentDate != nil {
		t := membership.LastPaymentDate.Time
		lastPayment = &t
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"is_paid_member":        membership.IsPaidMember,
			"membership_expires_at": membership.MembershipExpiresAt,
			"last_payment_date":     lastPayment,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	var businessType *entity.BusinessType
	if data.BusinessType != nil {
		bt := entity.BusinessType(*data.BusinessType)
		businessType = &bt
	}

	var lastPayment *entity.Date
	if data.LastPaymentDate != nil {
		d := entity.NewDate(*data.LastPaymentDate)
		lastPayment = &d
	}

	return &entity.Business{
		ID:                data.ID,
		UserID:            data.UserID,
		Name:              data.Name,
		WhatTheySell:      data.WhatTheySell,
		Hours:             data.Hours,
		Municipality:      entity.Municipality(data.Municipality),
		StreetAddress:     data.StreetAddress,
		LocationType:      entity.LocationType(data.LocationType),
		ContactPhone:      data.ContactPhone,
		FacebookUsername:  data.FacebookUsername,
		InstagramUsername: data.InstagramUsername,
		TiktokUsername:    data.TiktokUsername,
		LogoURL:           data.LogoURL,
		BusinessType:      businessType,
		Membership: entity.Membership{
			IsPaidMember:        data.IsPaidMember,
			MembershipExpiresAt: data.MembershipExpiresAt,
			LastPaymentDate:     lastPayment,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Owner:     toUserDomain(data.User),
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel for persistence.
// Membership fields are carried so a fresh insert starts from the entity's snapshot.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	var businessType *string
	if data.BusinessType != nil {
		bt := string(*data.BusinessType)
		businessType = &bt
	}

	var lastPayment *time.Time
	if data.Membership.LastPaymentDate != nil {
		t := data.Membership.LastPaymentDate.Time
		lastPayment = &t
	}

	return &model.BusinessModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Name:                data.Name,
		WhatTheySell:        data.WhatTheySell,
		Hours:               data.Hours,
		Municipality:        string(data.Municipality),
		StreetAddress:       data.StreetAddress,
		LocationType:        string(data.LocationType),
		ContactPhone:        data.ContactPhone,
		FacebookUsername:    data.FacebookUsername,
		InstagramUsername:   data.InstagramUsername,
		TiktokUsername:      data.TiktokUsername,
		LogoURL:             data.LogoURL,
		BusinessType:        businessType,
		IsPaidMember:        data.Membership.IsPaidMember,
		MembershipExpiresAt: data.Membership.MembershipExpiresAt,
		LastPaymentDate:     lastPayment,
	}
}
