package services_test

import (
	"context"
	"testing"
	"time"

	"farmstand/internal/domain"
	"farmstand/internal/repos"
	"farmstand/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRecordRejectsNonPositiveQuantity(t *testing.T) {
	db := memdb(t)
	svc := services.NewSalesService(repos.NewSalesRepo(db))

	for _, qty := range []int{0, -1} {
		_, err := svc.Record(context.Background(), domain.Sale{
			SellerID: 1, CustomerID: 1, ProductID: 1, Quantity: qty,
		})
		require.ErrorIs(t, err, repos.ErrInsufficientStock)
	}
}

func TestRecordDefaultsDate(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()

	seller, err := repos.NewSellerRepo(db).Create(ctx, domain.Seller{ID: 1, Name: "Green Fields", Email: "farm@greenfields.test"}, "Passw0rd!")
	require.NoError(t, err)
	customer, err := repos.NewCustomerRepo(db).Create(ctx, domain.Customer{ID: 1, Name: "Ava", Email: "ava@mail.test"}, "Passw0rd!")
	require.NoError(t, err)
	product, err := repos.NewProductRepo(db).Create(ctx, domain.Product{
		Name:     "Raw Honey",
		Quantity: 6,
		Price:    decimal.NewFromInt(9),
		Make:     time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		Expiry:   time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		Category: "pantry",
		SellerID: seller.ID,
	})
	require.NoError(t, err)

	svc := services.NewSalesService(repos.NewSalesRepo(db))
	sale, err := svc.Record(ctx, domain.Sale{
		SellerID:   seller.ID,
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   2,
		Price:      product.Price,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sale.Date)

	_, err = time.Parse(time.DateTime, sale.Date)
	require.NoError(t, err, "defaulted date must be a parseable timestamp")
}
