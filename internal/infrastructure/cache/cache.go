package cache

import (
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
)

var _ fiber.Storage = (*Storage)(nil)

// Storage guarda as sessões em memória com expiração, no formato exigido pelo fiber
type Storage struct {
	items *gocache.Cache
}

// New cria o armazenamento; cleanupInterval controla a limpeza dos itens expirados
func New(defaultExpiration, cleanupInterval time.Duration) *Storage {
	return &Storage{
		items: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retorna nil, nil quando a chave não existe ou expirou
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	value, found := s.items.Get(key)
	if !found {
		return nil, nil
	}
	data, _ := value.([]byte)
	return data, nil
}

// Set adiciona o item; exp igual a 0 significa sem expiração
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = gocache.NoExpiration
	}

	data := make([]byte, len(val))
	copy(data, val)
	s.items.Set(key, data, exp)
	return nil
}

func (s *Storage) Delete(key string) error {
	s.items.Delete(key)
	return nil
}

func (s *Storage) Reset() error {
	s.items.Flush()
	return nil
}

func (s *Storage) Close() error {
	s.items.Flush()
	return nil
}

// Len retorna quantas sessões estão armazenadas, incluindo expiradas ainda não limpas
func (s *Storage) Len() int {
	return s.items.ItemCount()
}
