package domain

// Seller mirrors Customer: store row with hash, external view without.
type Seller struct {
	ID    int64  `db:"sellerId"`
	Name  string `db:"sellerName"`
	Email string `db:"sellerEmail"`
	Hash  string `db:"sellerPassword"`
}

type SellerView struct {
	ID    int64  `json:"sellerId"`
	Name  string `json:"sellerName"`
	Email string `json:"sellerEmail"`
}

func (s Seller) View() SellerView {
	return SellerView{ID: s.ID, Name: s.Name, Email: s.Email}
}
