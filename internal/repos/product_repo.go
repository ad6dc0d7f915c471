package repos

import (
	"context"

	"farmstand/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `productId, productName, productQuantity, productImage,
    productPrice, productMake, productExpiry, productCategory, sellerId, sold`

// Create inserts the product and re-reads the stored row so the caller
// gets the server-assigned id and defaults.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `
	  INSERT INTO products (
	    productName, productQuantity, productImage, productPrice,
	    productMake, productExpiry, productCategory, sellerId, sold
	  ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Quantity, p.Image, p.Price, p.Make, p.Expiry, p.Category, p.SellerID, p.Sold)
	if err != nil {
		return domain.Product{}, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, classify(err)
	}
	return r.byIDAny(ctx, id)
}

// byIDAny fetches without the expiry filter; used after writes, where the
// row must still be returned even if it is already past its cutoff.
func (r *ProductRepo) byIDAny(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, `
	  SELECT `+productCols+` FROM products WHERE productId = ?
	`, id)
	if err != nil {
		return domain.Product{}, classify(err)
	}
	return p, nil
}

// ByID returns the product only while it is not past its expiry cutoff;
// an expired row reads as absent.
func (r *ProductRepo) ByID(ctx context.Context, id int64) (domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var p domain.Product
	err := r.db.GetContext(ctx, &p, `
	  SELECT `+productCols+` FROM products
	  WHERE productId = ? AND productExpiry > ?
	`, id, today())
	if err != nil {
		return domain.Product{}, classify(err)
	}
	return p, nil
}

// List returns all non-expired products; zero rows is an empty slice, not
// an error.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+productCols+` FROM products
	  WHERE productExpiry > ?
	  ORDER BY productId
	`, today())
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// BySeller treats zero rows as an absent resource: the query is scoped to
// one seller, so an empty result reads as NotFound.
func (r *ProductRepo) BySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var out []domain.Product
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+productCols+` FROM products
	  WHERE sellerId = ? AND productExpiry > ?
	  ORDER BY productId
	`, sellerID, today())
	if err != nil {
		return nil, classify(err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// ByCategory follows the same narrow-scope policy as BySeller.
func (r *ProductRepo) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	var out []domain.Product
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+productCols+` FROM products
	  WHERE productCategory = ? AND productExpiry > ?
	  ORDER BY productId
	`, category, today())
	if err != nil {
		return nil, classify(err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Categories lists the distinct category names across all products,
// expired ones included.
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	out := []string{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT DISTINCT productCategory FROM products
	  WHERE productCategory <> ''
	  ORDER BY productCategory
	`)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Update replaces every mutable field and returns the stored row.
func (r *ProductRepo) Update(ctx context.Context, id int64, p domain.Product) (domain.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `
	  UPDATE products SET
	    productName = ?, productQuantity = ?, productImage = ?, productPrice = ?,
	    productMake = ?, productExpiry = ?, productCategory = ?, sellerId = ?, sold = ?
	  WHERE productId = ?
	`, p.Name, p.Quantity, p.Image, p.Price, p.Make, p.Expiry, p.Category, p.SellerID, p.Sold, id)
	if err != nil {
		return domain.Product{}, classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, ErrNotFound
	}
	return r.byIDAny(ctx, id)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE productId = ?`, id)
	if err != nil {
		// A product referenced by committed sales surfaces as ErrConstraint.
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
