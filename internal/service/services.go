// Package service contains the application services sitting between the HTTP
// transport and the persistence layer: authentication (registration, login,
// token lifecycle) and catalog orchestration.
package service

import (
	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
)

type Services struct {
	AuthService AuthService
	BookService BookService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		BookService: NewBookService(storages.BookRepository, logger),
	}
}
