package repos_test

import (
	"context"
	"sync"
	"testing"

	"farmstand/internal/domain"
	"farmstand/internal/repos"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func saleFor(p domain.Product, customerID int64, qty int) domain.Sale {
	return domain.Sale{
		SellerID:   p.SellerID,
		CustomerID: customerID,
		ProductID:  p.ID,
		Quantity:   qty,
		Price:      p.Price,
		Date:       "2026-08-31 12:00:00",
	}
}

func TestRecordSaleCommitsBothWrites(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	customer := seedCustomer(t, db, 1)
	product := seedProduct(t, db, seller.ID, 10, dateFromNow(30))

	sales := repos.NewSalesRepo(db)
	ctx := context.Background()

	sale, err := sales.Record(ctx, saleFor(product, customer.ID, 4))
	require.NoError(t, err)
	require.Positive(t, sale.Number)

	got, err := repos.NewProductRepo(db).ByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 6, got.Quantity)
	require.Equal(t, 4, got.Sold)

	stored, err := sales.ByNumber(ctx, sale.Number)
	require.NoError(t, err)
	require.Equal(t, sale.Quantity, stored.Quantity)
	require.Equal(t, sale.ProductID, stored.ProductID)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	customer := seedCustomer(t, db, 1)
	product := seedProduct(t, db, seller.ID, 2, dateFromNow(30))

	sales := repos.NewSalesRepo(db)
	ctx := context.Background()

	_, err := sales.Record(ctx, saleFor(product, customer.ID, 3))
	require.ErrorIs(t, err, repos.ErrInsufficientStock)

	// Precondition failure leaves the row untouched.
	got, err := repos.NewProductRepo(db).ByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Quantity)
	require.Equal(t, 0, got.Sold)
}

func TestRecordSaleExpiredProductIsNotFound(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	customer := seedCustomer(t, db, 1)
	product := seedProduct(t, db, seller.ID, 10, dateFromNow(-1))

	_, err := repos.NewSalesRepo(db).Record(context.Background(), saleFor(product, customer.ID, 1))
	require.ErrorIs(t, err, repos.ErrNotFound)
}

func TestRecordSaleRollsBackOnBadReference(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	product := seedProduct(t, db, seller.ID, 10, dateFromNow(30))

	sales := repos.NewSalesRepo(db)
	ctx := context.Background()

	// The insert fails on the missing customer after the stock decrement
	// already ran inside the transaction; the rollback must undo it.
	_, err := sales.Record(ctx, saleFor(product, 404, 4))
	require.ErrorIs(t, err, repos.ErrConstraint)

	got, err := repos.NewProductRepo(db).ByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Quantity)
	require.Equal(t, 0, got.Sold)

	all, err := sales.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestRecordSaleConcurrentGuard(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	customer := seedCustomer(t, db, 1)
	product := seedProduct(t, db, seller.ID, 5, dateFromNow(30))

	sales := repos.NewSalesRepo(db)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = sales.Record(context.Background(), saleFor(product, customer.ID, 3))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, repos.ErrInsufficientStock)
			lost++
		}
	}
	require.Equal(t, 1, won, "exactly one sale must commit")
	require.Equal(t, 1, lost)

	got, err := repos.NewProductRepo(db).ByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Quantity)
	require.Equal(t, 3, got.Sold)
	require.GreaterOrEqual(t, got.Quantity, 0, "stock can never go negative")
}

func TestSalesScopedListsReturnEmpty(t *testing.T) {
	db := memdb(t)
	sales := repos.NewSalesRepo(db)
	ctx := context.Background()

	bySeller, err := sales.BySeller(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, bySeller)
	require.Empty(t, bySeller)

	byCustomer, err := sales.ByCustomer(ctx, 42)
	require.NoError(t, err)
	require.Empty(t, byCustomer)
}

func TestSalesByNumberMissing(t *testing.T) {
	db := memdb(t)
	_, err := repos.NewSalesRepo(db).ByNumber(context.Background(), 1)
	require.ErrorIs(t, err, repos.ErrNotFound)
}

func TestSalesQueriesBySellerAndCustomer(t *testing.T) {
	db := memdb(t)
	seller := seedSeller(t, db, 1)
	customer := seedCustomer(t, db, 1)
	other := seedCustomer(t, db, 2)
	product := seedProduct(t, db, seller.ID, 10, dateFromNow(30))

	sales := repos.NewSalesRepo(db)
	ctx := context.Background()

	_, err := sales.Record(ctx, saleFor(product, customer.ID, 2))
	require.NoError(t, err)
	_, err = sales.Record(ctx, saleFor(product, other.ID, 1))
	require.NoError(t, err)

	bySeller, err := sales.BySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, bySeller, 2)

	byCustomer, err := sales.ByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	require.Equal(t, 2, byCustomer[0].Quantity)

	all, err := sales.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	price := decimal.NewFromFloat(4.50)
	require.True(t, all[0].Price.Equal(price))
}
