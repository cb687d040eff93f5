package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.AuthUser{}, ErrWrongCredentials
	}

	user, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrWrongCredentials) {
			return models.AuthUser{}, mapped
		}
		return models.AuthUser{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapped)
	}

	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if strings.TrimSpace(a.adapter.Token()) == "" {
		return nil
	}

	return mapAdapterError(a.adapter.Logout(ctx))
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.AuthUser, error) {
	if a.adapter.Token() == "" {
		return models.AuthUser{}, ErrNotLoggedIn
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.AuthUser{}, mapAdapterError(err)
	}
	return user, nil
}
