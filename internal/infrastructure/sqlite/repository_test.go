package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/seed"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

type dataset struct {
	partnerA, partnerB, customer *entity.User
	product                      *entity.Product
}

func insertUser(t *testing.T, repo *UserRepo, name, email string, role entity.Role) *entity.User {
	t.Helper()
	u, err := entity.NewUser(0, name, email, role, time.Time{})
	require.NoError(t, err)
	out, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	return out
}

func insertSale(t *testing.T, repo *SaleRepo, d dataset, partner *entity.User, value string, at time.Time) *entity.Sale {
	t.Helper()
	s, err := entity.NewSale(entity.SaleParams{
		Value:      decimal.RequireFromString(value),
		ProductID:  d.product.ID(),
		CustomerID: d.customer.ID(),
		PartnerID:  partner.ID(),
		CreatedAt:  at,
	})
	require.NoError(t, err)
	out, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	return out
}

func seedDataset(t *testing.T, db *sql.DB) dataset {
	t.Helper()
	users := NewUserRepository(db)
	d := dataset{
		partnerA: insertUser(t, users, "Partner A", "a@partner.com", entity.RolePartner),
		partnerB: insertUser(t, users, "Partner B", "b@partner.com", entity.RolePartner),
		customer: insertUser(t, users, "Cliente", "c@customer.com", entity.RoleCustomer),
	}
	p, err := entity.NewProduct(0, "Curso de Go", decimal.RequireFromString("99.90"), true, time.Time{})
	require.NoError(t, err)
	d.product, err = NewProductRepository(db).Create(context.Background(), p)
	require.NoError(t, err)
	return d
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	d := seedDataset(t, db)
	repo := NewUserRepository(db)

	got, err := repo.FindByEmail(ctx, "b@partner.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.partnerB.ID(), got.ID())
	assert.True(t, got.IsPartner())

	missing, err := repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup, err := entity.NewUser(0, "Duplicado", "a@partner.com", entity.RoleCustomer, time.Time{})
	require.NoError(t, err)
	_, err = repo.Create(ctx, dup)
	assert.True(t, domain.IsConflict(err))

	role := entity.RolePartner
	n, err := repo.Count(ctx, &role)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := repo.FindAll(ctx, 1, 10, &role)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, d.partnerA.ID(), list[0].ID(), "más reciente primero; se saltó partner B")
}

func TestProductRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	d := seedDataset(t, db)
	repo := NewProductRepository(db)

	got, err := repo.FindByID(ctx, d.product.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Curso de Go", got.Name())
	assert.True(t, decimal.RequireFromString("99.90").Equal(got.Price()))
	assert.True(t, got.Active())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaleRepo_Relations(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	d := seedDataset(t, db)
	repo := NewSaleRepository(db)

	created := insertSale(t, repo, d, d.partnerA, "150.00", time.Now())

	got, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Product())
	assert.Equal(t, "Curso de Go", got.Product().Name())
	assert.Equal(t, "Cliente", got.Customer().Name())
	assert.Equal(t, "Partner A", got.Partner().Name())

	byPartner, err := repo.FindByPartner(ctx, d.partnerB.ID())
	require.NoError(t, err)
	assert.Empty(t, byPartner)
}

func TestSaleRepo_ForeignKeys(t *testing.T) {
	db := openTestDB(t)
	d := seedDataset(t, db)

	s, err := entity.NewSale(entity.SaleParams{
		Value: decimal.NewFromInt(10), ProductID: 999, CustomerID: d.customer.ID(), PartnerID: d.partnerA.ID(),
	})
	require.NoError(t, err)
	_, err = NewSaleRepository(db).Create(context.Background(), s)
	assert.Error(t, err)
}

func TestReportRepo_Filters(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	d := seedDataset(t, db)
	sales := NewSaleRepository(db)

	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 23, 30, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	insertSale(t, sales, d, d.partnerA, "100.10", jan)
	insertSale(t, sales, d, d.partnerA, "200.20", feb)
	insertSale(t, sales, d, d.partnerB, "50", feb)
	last := insertSale(t, sales, d, d.partnerA, "300.30", mar)

	repo := NewReportRepository(db)

	t.Run("sin filtros", func(t *testing.T) {
		res, err := repo.GetSalesReport(ctx, repository.SalesReportFilters{Page: 1, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalSales)
		assert.True(t, decimal.RequireFromString("650.60").Equal(res.TotalValue), res.TotalValue.String())
		assert.Equal(t, 2, res.TotalPages)
		require.Len(t, res.Sales, 3)
		assert.Equal(t, last.ID(), res.Sales[0].ID(), "orden por fecha descendente")
		assert.NotNil(t, res.Sales[0].Partner())
	})

	t.Run("partner y rango con fin inclusivo", func(t *testing.T) {
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 2, 10, 23, 59, 59, 999999999, time.UTC)
		partnerID := d.partnerA.ID()
		res, err := repo.GetSalesReport(ctx, repository.SalesReportFilters{
			StartDate: &start, EndDate: &end, PartnerID: &partnerID, Page: 1, Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalSales)
		assert.True(t, decimal.RequireFromString("200.20").Equal(res.TotalValue))
		require.Len(t, res.Sales, 1)
		assert.Equal(t, feb, res.Sales[0].CreatedAt().UTC())
	})

	t.Run("página fuera de rango", func(t *testing.T) {
		res, err := repo.GetSalesReport(ctx, repository.SalesReportFilters{Page: 5, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalSales)
		assert.Equal(t, 5, res.CurrentPage)
		assert.NotNil(t, res.Sales)
		assert.Empty(t, res.Sales)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		res, err := repo.GetSalesReport(ctx, repository.SalesReportFilters{StartDate: &start, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 0, res.TotalSales)
		assert.True(t, res.TotalValue.IsZero())
		assert.Equal(t, 0, res.TotalPages)
	})
}

func TestReportRepo_TotalMatchesRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	d := seedDataset(t, db)
	sales := NewSaleRepository(db)

	at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	for _, v := range []string{"0.10", "0.20", "0.01", "0.01", "1999.99"} {
		insertSale(t, sales, d, d.partnerA, v, at)
	}

	res, err := NewReportRepository(db).GetSalesReport(ctx, repository.SalesReportFilters{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, res.Sales, 5)

	sum := decimal.Zero
	for _, s := range res.Sales {
		sum = sum.Add(s.Value())
	}
	assert.True(t, decimal.RequireFromString("2000.31").Equal(res.TotalValue), res.TotalValue.String())
	assert.True(t, sum.Equal(res.TotalValue), "total %s, filas %s", res.TotalValue, sum)
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	err := NewTxRunner(db).Run(ctx, func(repos seed.Repositories) error {
		u, err := entity.NewUser(0, "Temporal", "tmp@test.com", entity.RoleAdmin, time.Time{})
		require.NoError(t, err)
		if _, err := repos.Users.Create(ctx, u); err != nil {
			return err
		}
		return domain.NewValidationError("forzar rollback")
	})
	assert.True(t, domain.IsValidation(err))

	n, err := NewUserRepository(db).Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
