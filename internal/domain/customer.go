package domain

// Customer is the store-side row, hash included. Never serialize it
// directly; convert with View first.
type Customer struct {
	ID    int64  `db:"customerId"`
	Name  string `db:"customerName"`
	Email string `db:"customerEmail"`
	Hash  string `db:"customerPassword"`
}

// CustomerView is the external shape of a customer. It has no password
// field at all, so a stray marshal cannot leak the hash.
type CustomerView struct {
	ID    int64  `json:"customerId"`
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
}

func (c Customer) View() CustomerView {
	return CustomerView{ID: c.ID, Name: c.Name, Email: c.Email}
}
