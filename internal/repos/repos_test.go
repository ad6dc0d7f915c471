package repos_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"farmstand/internal/domain"
	"farmstand/internal/repos"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func dateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func seedSeller(t *testing.T, db *sqlx.DB, id int64) domain.Seller {
	t.Helper()
	s, err := repos.NewSellerRepo(db).Create(context.Background(), domain.Seller{
		ID:    id,
		Name:  "Green Fields Farm",
		Email: fmt.Sprintf("farm%d@greenfields.test", id),
	}, "Passw0rd!")
	require.NoError(t, err)
	return s
}

func seedCustomer(t *testing.T, db *sqlx.DB, id int64) domain.Customer {
	t.Helper()
	c, err := repos.NewCustomerRepo(db).Create(context.Background(), domain.Customer{
		ID:    id,
		Name:  "Ava",
		Email: fmt.Sprintf("ava%d@mail.test", id),
	}, "Passw0rd!")
	require.NoError(t, err)
	return c
}

func seedProduct(t *testing.T, db *sqlx.DB, sellerID int64, qty int, expiry string) domain.Product {
	t.Helper()
	p, err := repos.NewProductRepo(db).Create(context.Background(), domain.Product{
		Name:     "Heirloom Tomatoes",
		Quantity: qty,
		Image:    "products/tomatoes.jpg",
		Price:    decimal.NewFromFloat(4.50),
		Make:     dateFromNow(-2),
		Expiry:   expiry,
		Category: "vegetables",
		SellerID: sellerID,
	})
	require.NoError(t, err)
	return p
}
