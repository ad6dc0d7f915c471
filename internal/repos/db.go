package repos

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// queryTimeout bounds every repository statement; expiry surfaces as
// ErrStoreUnavailable through classify.
var queryTimeout = 5 * time.Second

// SetQueryTimeout overrides the per-statement deadline. Non-positive
// values are ignored.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// today is the expiry visibility cutoff used by product reads.
func today() string {
	return time.Now().Format("2006-01-02")
}

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// Every sqlite memory connection is its own database; pin the pool
		// to one connection so all statements see the same schema.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Hour)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

// withPragmas enables foreign keys on every pooled connection and keeps
// concurrent writers waiting instead of failing fast.
func withPragmas(dsn string) string {
	if dsn == ":memory:" {
		dsn = "file::memory:"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Customers
CREATE TABLE IF NOT EXISTS customer(
  customerId INTEGER PRIMARY KEY,
  customerName TEXT NOT NULL,
  customerEmail TEXT NOT NULL,
  customerPassword TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customer_email ON customer(LOWER(customerEmail));

-- Sellers
CREATE TABLE IF NOT EXISTS seller(
  sellerId INTEGER PRIMARY KEY,
  sellerName TEXT NOT NULL,
  sellerEmail TEXT NOT NULL,
  sellerPassword TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_seller_email ON seller(LOWER(sellerEmail));

-- Products
CREATE TABLE IF NOT EXISTS products(
  productId INTEGER PRIMARY KEY AUTOINCREMENT,
  productName TEXT NOT NULL,
  productQuantity INTEGER NOT NULL DEFAULT 0 CHECK (productQuantity >= 0),
  productImage TEXT NOT NULL DEFAULT '',
  productPrice NUMERIC NOT NULL CHECK (productPrice > 0),
  productMake TEXT NOT NULL,
  productExpiry TEXT NOT NULL,
  productCategory TEXT NOT NULL,
  sellerId INTEGER NOT NULL REFERENCES seller(sellerId),
  sold INTEGER NOT NULL DEFAULT 0 CHECK (sold >= 0)
);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(sellerId);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(productCategory);
CREATE INDEX IF NOT EXISTS idx_products_expiry   ON products(productExpiry);

-- Sales
CREATE TABLE IF NOT EXISTS sales(
  SalesNumber INTEGER PRIMARY KEY AUTOINCREMENT,
  sellerId INTEGER NOT NULL REFERENCES seller(sellerId),
  customerId INTEGER NOT NULL REFERENCES customer(customerId),
  productId INTEGER NOT NULL REFERENCES products(productId),
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  price NUMERIC NOT NULL,
  salesDate TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_seller   ON sales(sellerId);
CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customerId);
`
	_, err := db.Exec(schema)
	return err
}
