package repos

import (
	"context"

	"farmstand/internal/auth"
	"farmstand/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a customer under its client-supplied id, hashing the
// password before it touches the store.
func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer, password string) (domain.Customer, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Hash = hash

	ctx, cancel := opCtx(ctx)
	defer cancel()
	_, err = r.db.ExecContext(ctx, `
	  INSERT INTO customer (customerId, customerName, customerEmail, customerPassword)
	  VALUES (?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Hash)
	if err != nil {
		return domain.Customer{}, classify(err)
	}
	return c, nil
}

func (r *CustomerRepo) ByID(ctx context.Context, id int64) (domain.Customer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, `
	  SELECT customerId, customerName, customerEmail, customerPassword
	  FROM customer WHERE customerId = ?
	`, id)
	if err != nil {
		return domain.Customer{}, classify(err)
	}
	return c, nil
}

// ByEmail is the internal lookup used by the login flow; it is the only
// read whose result is expected to carry the hash onward.
func (r *CustomerRepo) ByEmail(ctx context.Context, email string) (domain.Customer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, `
	  SELECT customerId, customerName, customerEmail, customerPassword
	  FROM customer WHERE LOWER(customerEmail) = LOWER(?)
	`, email)
	if err != nil {
		return domain.Customer{}, classify(err)
	}
	return c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var out []domain.Customer
	err := r.db.SelectContext(ctx, &out, `
	  SELECT customerId, customerName, customerEmail, customerPassword
	  FROM customer ORDER BY customerId
	`)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Update replaces every mutable field. Presence is checked through the
// affected-row count, not a pre-read.
func (r *CustomerRepo) Update(ctx context.Context, id int64, c domain.Customer, password string) (domain.Customer, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID = id
	c.Hash = hash

	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `
	  UPDATE customer SET customerName = ?, customerEmail = ?, customerPassword = ?
	  WHERE customerId = ?
	`, c.Name, c.Email, c.Hash, id)
	if err != nil {
		return domain.Customer{}, classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE customerId = ?`, id)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
