package handlers

import (
	"farmstand/internal/repos"
	"farmstand/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Customers *CustomerHandler
	Sellers   *SellerHandler
	Products  *ProductHandler
	Sales     *SalesHandler
	Login     *LoginHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	custRepo := repos.NewCustomerRepo(db)
	sellRepo := repos.NewSellerRepo(db)
	prodRepo := repos.NewProductRepo(db)
	salesRepo := repos.NewSalesRepo(db)

	authSvc := &services.AuthService{Customers: custRepo, Sellers: sellRepo}
	salesSvc := services.NewSalesService(salesRepo)

	return &Deps{
		Customers: &CustomerHandler{Customers: custRepo},
		Sellers:   &SellerHandler{Sellers: sellRepo},
		Products:  &ProductHandler{Products: prodRepo},
		Sales:     &SalesHandler{Sales: salesRepo, Recorder: salesSvc},
		Login:     &LoginHandler{Auth: authSvc},
	}
}
