package services

import (
	"context"
	"errors"

	"farmstand/internal/auth"
	"farmstand/internal/domain"
	"farmstand/internal/metrics"
	"farmstand/internal/repos"
)

// ErrBadCreds is deliberately uniform: an unknown email and a wrong
// password are indistinguishable to the caller.
var ErrBadCreds = errors.New("incorrect email or password")

type AuthService struct {
	Customers *repos.CustomerRepo
	Sellers   *repos.SellerRepo
}

func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (domain.Customer, error) {
	c, err := s.Customers.ByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(password, c.Hash) {
		metrics.LoginAttemptsTotal.WithLabelValues("customer", "fail").Inc()
		return domain.Customer{}, ErrBadCreds
	}
	metrics.LoginAttemptsTotal.WithLabelValues("customer", "success").Inc()
	return c, nil
}

func (s *AuthService) LoginSeller(ctx context.Context, email, password string) (domain.Seller, error) {
	sl, err := s.Sellers.ByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(password, sl.Hash) {
		metrics.LoginAttemptsTotal.WithLabelValues("seller", "fail").Inc()
		return domain.Seller{}, ErrBadCreds
	}
	metrics.LoginAttemptsTotal.WithLabelValues("seller", "success").Inc()
	return sl, nil
}
