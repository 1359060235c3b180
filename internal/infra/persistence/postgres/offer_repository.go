package postgres

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/model"
	"github.com/antoniopd1/mercado-local-mex/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// List returns one page of offers, newest first.
// The public rule joins users live so a lapsed owner's offers disappear immediately.
func (repo *offerRepository) List(ctx context.Context, query repository.OfferListQuery) (*entity.Page[*entity.Offer], error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Joins("JOIN businesses ON businesses.id = offers.business_id")

	if query.PublicOn != nil {
		tx = tx.Joins("JOIN users ON users.id = businesses.user_id").
			Where("offers.is_active = ?", true).
			Where("offers.end_date >= ?", query.PublicOn.String()).
			Where("users.is_business_owner = ?", true)
	}
	if query.BusinessID != nil {
		tx = tx.Where("offers.business_id = ?", *query.BusinessID)
	}
	tx = applyOfferFilter(tx, query.Filter).Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	var offerMs []*model.OfferModel
	if err := tx.
		Select("offers.*").
		Preload("Business").
		Order("offers.created_at DESC").
		Order("offers.id DESC").
		Offset(query.Page.Offset()).
		Limit(query.Page.PageSize).
		Find(&offerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	items := make([]*entity.Offer, 0, len(offerMs))
	for _, offerM := range offerMs {
		items = append(items, toOfferDomain(offerM))
	}

	return &entity.Page[*entity.Offer]{
		Items:    items,
		Total:    total,
		Page:     query.Page.Page,
		PageSize: query.Page.PageSize,
	}, nil
}

func applyOfferFilter(tx *gorm.DB, filter entity.ListFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := util.ContainsPattern(filter.Search)
		tx = tx.Where(
			"offers.title ILIKE ? OR offers.description ILIKE ? OR businesses.name ILIKE ?",
			pattern, pattern, pattern,
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

// FindByID retrieves an offer with its business and the business owner loaded.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Business.User").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Omit("Business").Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("offer prices or dates are out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Update writes the editable columns of an offer. The owning business never changes.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{ID: offer.ID}).
		Select("Title", "Description", "OriginalPrice", "DiscountPrice", "ImageURL", "StartDate", "EndDate", "IsActive").
		Updates(offerM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("offer prices or dates are out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Delete removes an offer.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OfferModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	var originalPrice *decimal.Decimal
	if data.OriginalPrice.Valid {
		price := data.OriginalPrice.Decimal
		originalPrice = &price
	}

	return &entity.Offer{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Title:         data.Title,
		Description:   data.Description,
		OriginalPrice: originalPrice,
		DiscountPrice: data.DiscountPrice,
		ImageURL:      data.ImageURL,
		StartDate:     entity.NewDate(data.StartDate),
		EndDate:       entity.NewDate(data.EndDate),
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Business:      toBusinessDomain(data.Business),
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel for persistence.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	var originalPrice decimal.NullDecimal
	if data.OriginalPrice != nil {
		originalPrice = decimal.NewNullDecimal(*data.OriginalPrice)
	}

	return &model.OfferModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Title:         data.Title,
		Description:   data.Description,
		OriginalPrice: originalPrice,
		DiscountPrice: data.DiscountPrice,
		ImageURL:      data.ImageURL,
		StartDate:     data.StartDate.Time,
		EndDate:       data.EndDate.Time,
		IsActive:      data.IsActive,
	}
}
