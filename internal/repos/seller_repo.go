package repos

import (
	"context"

	"farmstand/internal/auth"
	"farmstand/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ db *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{db: db} }

func (r *SellerRepo) Create(ctx context.Context, s domain.Seller, password string) (domain.Seller, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Seller{}, err
	}
	s.Hash = hash

	ctx, cancel := opCtx(ctx)
	defer cancel()
	_, err = r.db.ExecContext(ctx, `
	  INSERT INTO seller (sellerId, sellerName, sellerEmail, sellerPassword)
	  VALUES (?, ?, ?, ?)
	`, s.ID, s.Name, s.Email, s.Hash)
	if err != nil {
		return domain.Seller{}, classify(err)
	}
	return s, nil
}

func (r *SellerRepo) ByID(ctx context.Context, id int64) (domain.Seller, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var s domain.Seller
	err := r.db.GetContext(ctx, &s, `
	  SELECT sellerId, sellerName, sellerEmail, sellerPassword
	  FROM seller WHERE sellerId = ?
	`, id)
	if err != nil {
		return domain.Seller{}, classify(err)
	}
	return s, nil
}

// ByEmail feeds the login flow; all other reads should drop the hash via
// View before leaving the process.
func (r *SellerRepo) ByEmail(ctx context.Context, email string) (domain.Seller, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var s domain.Seller
	err := r.db.GetContext(ctx, &s, `
	  SELECT sellerId, sellerName, sellerEmail, sellerPassword
	  FROM seller WHERE LOWER(sellerEmail) = LOWER(?)
	`, email)
	if err != nil {
		return domain.Seller{}, classify(err)
	}
	return s, nil
}

func (r *SellerRepo) List(ctx context.Context) ([]domain.Seller, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var out []domain.Seller
	err := r.db.SelectContext(ctx, &out, `
	  SELECT sellerId, sellerName, sellerEmail, sellerPassword
	  FROM seller ORDER BY sellerId
	`)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *SellerRepo) Update(ctx context.Context, id int64, s domain.Seller, password string) (domain.Seller, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Seller{}, err
	}
	s.ID = id
	s.Hash = hash

	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `
	  UPDATE seller SET sellerName = ?, sellerEmail = ?, sellerPassword = ?
	  WHERE sellerId = ?
	`, s.Name, s.Email, s.Hash, id)
	if err != nil {
		return domain.Seller{}, classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Seller{}, ErrNotFound
	}
	return s, nil
}

func (r *SellerRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM seller WHERE sellerId = ?`, id)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
