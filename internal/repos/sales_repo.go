package repos

import (
	"context"
	"database/sql"
	"errors"

	"farmstand/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SalesRepo struct{ db *sqlx.DB }

func NewSalesRepo(db *sqlx.DB) *SalesRepo { return &SalesRepo{db: db} }

const saleCols = `SalesNumber, sellerId, customerId, productId, quantity, price, salesDate`

// Record commits the sale row and the matching stock adjustment as one
// transaction. Either both writes land or neither does; a reader can never
// observe a sale without its decrement.
func (r *SalesRepo) Record(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Sale{}, classify(err)
	}
	defer func() { _ = tx.Rollback() }()

	cutoff := today()

	// Precondition check before any write is attempted.
	var have int
	err = tx.GetContext(ctx, &have, `
	  SELECT productQuantity FROM products
	  WHERE productId = ? AND productExpiry > ?
	`, s.ProductID, cutoff)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Sale{}, ErrNotFound
		}
		return domain.Sale{}, classify(err)
	}
	if have < s.Quantity {
		return domain.Sale{}, ErrInsufficientStock
	}

	// Guarded decrement. The qty predicate makes concurrent sales against
	// the same product serialize on the row instead of racing a read.
	res, err := tx.ExecContext(ctx, `
	  UPDATE products
	  SET productQuantity = productQuantity - ?, sold = sold + ?
	  WHERE productId = ? AND productExpiry > ? AND productQuantity >= ?
	`, s.Quantity, s.Quantity, s.ProductID, cutoff, s.Quantity)
	if err != nil {
		return domain.Sale{}, classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Lost a race with a concurrent sale.
		return domain.Sale{}, ErrInsufficientStock
	}

	res, err = tx.ExecContext(ctx, `
	  INSERT INTO sales (sellerId, customerId, productId, quantity, price, salesDate)
	  VALUES (?, ?, ?, ?, ?, ?)
	`, s.SellerID, s.CustomerID, s.ProductID, s.Quantity, s.Price, s.Date)
	if err != nil {
		return domain.Sale{}, classify(err)
	}
	num, err := res.LastInsertId()
	if err != nil {
		return domain.Sale{}, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Sale{}, classify(err)
	}
	s.Number = num
	return s, nil
}

func (r *SalesRepo) All(ctx context.Context) ([]domain.Sale, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	out := []domain.Sale{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+saleCols+` FROM sales ORDER BY SalesNumber
	`)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *SalesRepo) ByNumber(ctx context.Context, number int64) (domain.Sale, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var s domain.Sale
	err := r.db.GetContext(ctx, &s, `
	  SELECT `+saleCols+` FROM sales WHERE SalesNumber = ?
	`, number)
	if err != nil {
		return domain.Sale{}, classify(err)
	}
	return s, nil
}

// BySeller and ByCustomer return empty slices for zero rows; unlike the
// scoped product queries, a seller or customer with no sales is ordinary.
func (r *SalesRepo) BySeller(ctx context.Context, sellerID int64) ([]domain.Sale, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	out := []domain.Sale{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+saleCols+` FROM sales WHERE sellerId = ? ORDER BY SalesNumber
	`, sellerID)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *SalesRepo) ByCustomer(ctx context.Context, customerID int64) ([]domain.Sale, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	out := []domain.Sale{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+saleCols+` FROM sales WHERE customerId = ? ORDER BY SalesNumber
	`, customerID)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}
