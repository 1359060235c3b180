package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement gorm builds, with bound values inlined.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...any) {}

func (r *sqlRecorder) Warn(context.Context, string, ...any) {}

func (r *sqlRecorder) Error(context.Context, string, ...any) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

// newDryRunDB builds statements against the postgres dialect without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{}
	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=mercado dbname=mercado sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: rec},
	)
	require.NoError(t, err)

	return db, rec
}

func mustDate(t *testing.T, s string) *entity.Date {
	t.Helper()

	d, err := entity.ParseDate(s)
	require.NoError(t, err)

	return &d
}

// requireAll asserts the count and the page query both carry every fragment.
func requireAll(t *testing.T, statements []string, fragments ...string) {
	t.Helper()

	require.GreaterOrEqual(t, len(statements), 2, "expected a count and a page query")
	for _, stmt := range statements[:2] {
		for _, fragment := range fragments {
			assert.Contains(t, stmt, fragment)
		}
	}
}

func TestOfferRepository_List_PublicRule(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewOfferRepository(db)

	_, err := repo.List(context.Background(), repository.OfferListQuery{
		Filter:   entity.ListFilter{Search: "tacos", Municipality: "leon", BusinessType: "comida"},
		Page:     entity.PageRequest{Page: 1, PageSize: 20},
		PublicOn: mustDate(t, "2026-10-16"),
	})
	require.NoError(t, err)

	requireAll(t, rec.statements,
		"JOIN users ON users.id = businesses.user_id",
		"offers.is_active = true",
		"offers.end_date >= '2026-10-16'",
		"users.is_business_owner = true",
		"(offers.title ILIKE '%tacos%' OR offers.description ILIKE '%tacos%' OR businesses.name ILIKE '%tacos%')",
		"UPPER(businesses.business_type) = 'COMIDA'",
		"UPPER(businesses.municipality) = 'LEON'",
	)
}

func TestOfferRepository_List_OwnOffersSkipPublicRule(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewOfferRepository(db)
	businessID := uuid.New()

	_, err := repo.List(context.Background(), repository.OfferListQuery{
		Page:       entity.PageRequest{Page: 1, PageSize: 20},
		BusinessID: &businessID,
	})
	require.NoError(t, err)

	requireAll(t, rec.statements, "offers.business_id = '"+businessID.String()+"'")
	for _, stmt := range rec.statements {
		assert.NotContains(t, stmt, "is_active")
		assert.NotContains(t, stmt, "end_date >=")
		assert.NotContains(t, stmt, "users.is_business_owner")
	}
}

func TestBusinessRepository_List(t *testing.T) {
	t.Run("only entitled owners", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewBusinessRepository(db)

		_, err := repo.List(context.Background(), repository.BusinessListQuery{
			Filter:             entity.ListFilter{Search: "pan", Municipality: "Leon"},
			Page:               entity.PageRequest{Page: 2, PageSize: 10},
			OnlyEntitledOwners: true,
		})
		require.NoError(t, err)

		requireAll(t, rec.statements,
			"JOIN users ON users.id = businesses.user_id",
			"users.is_business_owner = true",
			"(businesses.name ILIKE '%pan%' OR businesses.what_they_sell ILIKE '%pan%' OR businesses.municipality ILIKE '%pan%' OR businesses.business_type ILIKE '%pan%')",
			"UPPER(businesses.municipality) = 'LEON'",
		)
		assert.Contains(t, rec.statements[1], "OFFSET 10")
	})

	t.Run("staff see every business", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewBusinessRepository(db)

		_, err := repo.List(context.Background(), repository.BusinessListQuery{
			Page: entity.PageRequest{Page: 1, PageSize: 20},
		})
		require.NoError(t, err)

		for _, stmt := range rec.statements {
			assert.False(t, strings.Contains(stmt, "users.is_business_owner"), stmt)
		}
	})
}
