package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock, postgres.NewTxManager(mock)), mock
}

func TestRepo_GetByID_Mock(t *testing.T) {
	t.Parallel()

	id, storeID, catID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).
					AddRow(id, "Hammer", "", decimal.RequireFromString("9.99"), (*string)(nil), storeID, catID)
				mock.ExpectQuery(`SELECT id, name, description, price, image_url, store_id, category_id FROM product.products WHERE id = \$1`).
					WithArgs(id).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetByID(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Hammer", got.Name)
				assert.Equal(t, catID, got.CategoryID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_Upsert_MissingCategoryRollsBack(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	missing := uuid.New()
	products := []domain.Product{
		{ID: uuid.New(), Name: "A", CategoryID: missing},
		{ID: uuid.New(), Name: "B", CategoryID: missing},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM unnest`).
		WithArgs([]uuid.UUID{missing}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(missing))
	mock.ExpectRollback()

	n, err := repo.Upsert(context.Background(), products)

	assert.Zero(t, n)
	var ce *domain.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []uuid.UUID{missing}, ce.MissingCategoryIDs)
	assert.NoError(t, mock.ExpectationsWereMet(), "no INSERT may run")
}

func TestRepo_Create_ForeignKeyViolation(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	p := domain.Product{ID: uuid.New(), Name: "Orphan", CategoryID: uuid.New(), StoreID: uuid.New()}

	mock.ExpectQuery(`INSERT INTO product.products`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "products_category_id_fkey"})

	_, err := repo.Create(context.Background(), p)

	var ce *domain.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []uuid.UUID{p.CategoryID}, ce.MissingCategoryIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Upsert_BeginFails(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.Upsert(context.Background(), []domain.Product{{ID: uuid.New(), CategoryID: uuid.New()}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestBuildListQuery(t *testing.T) {
	t.Parallel()

	catID, storeID := uuid.New(), uuid.New()
	search := "ham"
	blank := "   "

	tests := []struct {
		name     string
		filter   domain.ProductFilter
		wantSQL  string
		wantArgs int
	}{
		{
			name:    "zero filter orders by id",
			filter:  domain.ProductFilter{},
			wantSQL: "SELECT id, name, description, price, image_url, store_id, category_id FROM product.products ORDER BY id",
		},
		{
			name:     "category and store",
			filter:   domain.ProductFilter{CategoryID: &catID, StoreID: &storeID},
			wantSQL:  "SELECT id, name, description, price, image_url, store_id, category_id FROM product.products WHERE category_id = $1 AND store_id = $2 ORDER BY id",
			wantArgs: 2,
		},
		{
			name:     "search sorted by name with paging",
			filter:   domain.ProductFilter{Search: &search, SortBy: domain.ProductSortByName, Limit: 10, Offset: 20},
			wantSQL:  "SELECT id, name, description, price, image_url, store_id, category_id FROM product.products WHERE name ILIKE $1 ORDER BY name, id LIMIT 10 OFFSET 20",
			wantArgs: 1,
		},
		{
			name:    "blank search is ignored",
			filter:  domain.ProductFilter{Search: &blank},
			wantSQL: "SELECT id, name, description, price, image_url, store_id, category_id FROM product.products ORDER BY id",
		},
		{
			name:     "ids",
			filter:   domain.ProductFilter{IDs: []uuid.UUID{uuid.New(), uuid.New()}},
			wantSQL:  "SELECT id, name, description, price, image_url, store_id, category_id FROM product.products WHERE id = ANY($1::uuid[]) ORDER BY id",
			wantArgs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := buildListQuery(tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestBuildListQuery_SearchEscapesWildcards(t *testing.T) {
	t.Parallel()

	search := "  50%   off_ "
	_, args, err := buildListQuery(domain.ProductFilter{Search: &search}).ToSql()
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, `%50\% off\_%`, args[0])
}
