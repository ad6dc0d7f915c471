package domain

import "github.com/shopspring/decimal"

// Product is a listed item. Make and Expiry are calendar dates stored as
// "YYYY-MM-DD" text; expired products are filtered out of reads by default.
type Product struct {
	ID       int64           `db:"productId" json:"productId"`
	Name     string          `db:"productName" json:"productName"`
	Quantity int             `db:"productQuantity" json:"productQuantity"`
	Image    string          `db:"productImage" json:"productImage"`
	Price    decimal.Decimal `db:"productPrice" json:"productPrice"`
	Make     string          `db:"productMake" json:"productMake"`
	Expiry   string          `db:"productExpiry" json:"productExpiry"`
	Category string          `db:"productCategory" json:"productCategory"`
	SellerID int64           `db:"sellerId" json:"sellerId"`
	Sold     int             `db:"sold" json:"sold"`
}
