package repos_test

import (
	"context"
	"testing"

	"farmstand/internal/domain"
	"farmstand/internal/repos"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProductCreateAssignsID(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)

	p := seedProduct(t, db, seller.ID, 10, dateFromNow(30))
	require.Positive(t, p.ID)
	require.Equal(t, 10, p.Quantity)
	require.True(t, p.Price.Equal(decimal.NewFromFloat(4.50)))

	got, err := repos.NewProductRepo(db).ByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestProductCreateWithoutSellerIsConstraint(t *testing.T) {
	db := memdb(t)
	_, err := repos.NewProductRepo(db).Create(context.Background(), domain.Product{
		Name:     "Orphan Apples",
		Quantity: 3,
		Price:    decimal.NewFromInt(2),
		Make:     dateFromNow(-1),
		Expiry:   dateFromNow(20),
		Category: "fruit",
		SellerID: 404,
	})
	require.ErrorIs(t, err, repos.ErrConstraint)
}

func TestProductExpiryCutoffHidesRow(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	r := repos.NewProductRepo(db)
	ctx := context.Background()

	fresh := seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	stale := seedProduct(t, db, seller.ID, 5, dateFromNow(-1))

	_, err := r.ByID(ctx, fresh.ID)
	require.NoError(t, err)

	_, err = r.ByID(ctx, stale.ID)
	require.ErrorIs(t, err, repos.ErrNotFound)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, fresh.ID, list[0].ID)
}

func TestProductListEmptyIsEmptySlice(t *testing.T) {
	db := memdb(t)
	list, err := repos.NewProductRepo(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestProductScopedQueriesElevateEmptyToNotFound(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	r := repos.NewProductRepo(db)
	ctx := context.Background()

	seedProduct(t, db, seller.ID, 5, dateFromNow(30))

	bySeller, err := r.BySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, bySeller, 1)

	_, err = r.BySeller(ctx, 999)
	require.ErrorIs(t, err, repos.ErrNotFound)

	byCat, err := r.ByCategory(ctx, "vegetables")
	require.NoError(t, err)
	require.Len(t, byCat, 1)

	_, err = r.ByCategory(ctx, "dairy")
	require.ErrorIs(t, err, repos.ErrNotFound)
}

func TestProductCategoriesDistinct(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	r := repos.NewProductRepo(db)
	ctx := context.Background()

	seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	p := seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	p.Category = "fruit"
	_, err := r.Update(ctx, p.ID, p)
	require.NoError(t, err)

	cats, err := r.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"fruit", "vegetables"}, cats)
}

func TestProductUpdateRoundTrip(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	r := repos.NewProductRepo(db)
	ctx := context.Background()

	p := seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	p.Name = "Vine Tomatoes"
	p.Quantity = 12
	p.Price = decimal.NewFromFloat(5.25)

	updated, err := r.Update(ctx, p.ID, p)
	require.NoError(t, err)

	got, err := r.ByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
	require.Equal(t, "Vine Tomatoes", got.Name)
	require.Equal(t, 12, got.Quantity)

	_, err = r.Update(ctx, 9999, p)
	require.ErrorIs(t, err, repos.ErrNotFound)
}

func TestProductDeleteTwice(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	r := repos.NewProductRepo(db)
	ctx := context.Background()

	p := seedProduct(t, db, seller.ID, 5, dateFromNow(30))
	require.NoError(t, r.Delete(ctx, p.ID))

	_, err := r.ByID(ctx, p.ID)
	require.ErrorIs(t, err, repos.ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, p.ID), repos.ErrNotFound)
}
