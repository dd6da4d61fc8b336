// service содержит бизнес-логику news-compiler.
package service

import (
	"errors"

	"github.com/pribylovaa/news-compiler/internal/config"
	"github.com/pribylovaa/news-compiler/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service — описывает бизнес-логику news-compiler.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
