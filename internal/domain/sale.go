package domain

import "github.com/shopspring/decimal"

// Sale records one completed purchase. Number is assigned by the store on
// insert; quantity and the matching product decrement commit together.
type Sale struct {
	Number     int64           `db:"SalesNumber" json:"salesNumber"`
	SellerID   int64           `db:"sellerId" json:"sellerId"`
	CustomerID int64           `db:"customerId" json:"customerId"`
	ProductID  int64           `db:"productId" json:"productId"`
	Quantity   int             `db:"quantity" json:"quantity"`
	Price      decimal.Decimal `db:"price" json:"price"`
	Date       string          `db:"salesDate" json:"salesDate"`
}
