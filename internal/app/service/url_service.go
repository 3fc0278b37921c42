// Package service содержит бизнес-логику работы с URL.
package service

import (
	"context"
	"strings"
	"sync"
)

// Store описывает операции файлового хранилища, нужные сервису.
type Store interface {
	ShortenURL(ctx context.Context, originalURL string) (string, error)
	GetOriginalURL(ctx context.Context, shortcode string) (string, bool, error)
	IsShortenedURL(ctx context.Context, originalURL string) bool
	GetShortenedURL(ctx context.Context, originalURL string) (string, bool)
}

// URLShortener выдаёт короткую ссылку для URL; existed сообщает,
// что ссылка уже была выдана раньше.
type URLShortener interface {
	ShortenURL(ctx context.Context, input string) (shortURL string, existed bool, err error)
}

// URLGetter возвращает оригинальный URL по shortcode.
type URLGetter interface {
	GetOriginalURL(ctx context.Context, shortcode string) (string, error)
}

type URLService struct {
	mu    sync.Mutex
	store Store
}

func NewURLService(store Store) *URLService {
	return &URLService{store: store}
}

// ShortenURL переиспользует уже выданную ссылку или создаёт новую.
// Проверка и создание выполняются под одним мьютексом, чтобы параллельные
// запросы с одним URL не получили разные shortcode.
// Невалидные UTF-8 последовательности заменяются на U+FFFD, как и при записи в JSON.
func (s *URLService) ShortenURL(ctx context.Context, input string) (string, bool, error) {
	if input == "" {
		return "", false, ErrEmptyURL
	}
	input = strings.ToValidUTF8(input, "\uFFFD")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.IsShortenedURL(ctx, input) {
		if shortURL, ok := s.store.GetShortenedURL(ctx, input); ok {
			return shortURL, true, nil
		}
	}

	shortURL, err := s.store.ShortenURL(ctx, input)
	if err != nil {
		return "", false, err
	}
	return shortURL, false, nil
}

// GetOriginalURL возвращает ErrURLNotFound, если shortcode неизвестен.
func (s *URLService) GetOriginalURL(ctx context.Context, shortcode string) (string, error) {
	originalURL, ok, err := s.store.GetOriginalURL(ctx, shortcode)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrURLNotFound
	}
	return originalURL, nil
}
