// Package store содержит файловое хранилище соответствий shortcode -> URL.
//
// Файл является единственным источником истины: каждая операция
// перечитывает его перед чтением и перезаписывает после изменения.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aseptimu/flatfile-shortener/internal/app/utils"
	"go.uber.org/zap"
)

const (
	// DefaultShortcodeLength — длина shortcode по умолчанию.
	DefaultShortcodeLength = 6
	// MaxGenerateAttempts ограничивает число попыток подобрать свободный shortcode.
	MaxGenerateAttempts = 100
)

// FileStore хранит соответствия shortcode -> URL в JSON-файле.
// Все публичные методы сериализованы одним мьютексом.
type FileStore struct {
	mu           sync.Mutex
	databaseFile string
	baseURL      string
	data         map[string]string
	logger       *zap.SugaredLogger
	writeFile    func(path string, data []byte) error
}

// NewFileStore проверяет, что файл базы существует и является обычным файлом,
// нормализует websiteURL и выполняет первичную загрузку (с сохранением).
// Символические ссылки разрешаются, запись идёт в целевой файл.
func NewFileStore(databaseFile, websiteURL string, logger *zap.SugaredLogger) (*FileStore, error) {
	info, err := os.Stat(databaseFile)
	if err != nil {
		return nil, fmt.Errorf("%w: database file %q does not exist: %w", ErrConfiguration, databaseFile, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: database file %q is not a regular file", ErrConfiguration, databaseFile)
	}

	resolved, err := filepath.EvalSymlinks(databaseFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve database file %q: %w", ErrConfiguration, databaseFile, err)
	}

	baseURL, err := ValidateURL(websiteURL)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	fs := &FileStore{
		databaseFile: resolved,
		baseURL:      baseURL,
		data:         make(map[string]string),
		logger:       logger,
		writeFile:    writeFileAtomic,
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fs.reload(); err != nil {
		return nil, err
	}

	return fs, nil
}

// ValidateURL требует непустые схему и хост. Если путь не заканчивается
// на "/", слэш дописывается.
func ValidateURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: URL %s is not valid: %w", ErrInvalidURL, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: URL %s is not valid", ErrInvalidURL, raw)
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u.String(), nil
}

// BaseURL возвращает нормализованный базовый адрес коротких ссылок.
func (fs *FileStore) BaseURL() string {
	return fs.baseURL
}

// Reload перечитывает файл базы и сразу сохраняет его обратно.
func (fs *FileStore) Reload() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.reload()
}

// Save перезаписывает файл базы текущим содержимым памяти.
func (fs *FileStore) Save() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.save()
}

// GenerateShortcode перечитывает базу и подбирает shortcode длины length,
// которого ещё нет среди ключей. length <= 0 означает DefaultShortcodeLength.
func (fs *FileStore) GenerateShortcode(length int) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.generateShortcode(length)
}

// ShortenURL создаёт новый shortcode для originalURL и возвращает короткую ссылку.
// Наличие originalURL в базе не проверяется.
func (fs *FileStore) ShortenURL(_ context.Context, originalURL string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	shortcode, err := fs.generateShortcode(DefaultShortcodeLength)
	if err != nil {
		return "", err
	}

	fs.data[shortcode] = originalURL
	if err := fs.save(); err != nil {
		delete(fs.data, shortcode)
		return "", err
	}

	fs.logger.Debugw("Stored short URL", "shortcode", shortcode, "originalURL", originalURL)
	return fs.baseURL + shortcode, nil
}

// GetOriginalURL перечитывает базу и ищет shortcode. Промах — не ошибка.
func (fs *FileStore) GetOriginalURL(_ context.Context, shortcode string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.reload(); err != nil {
		return "", false, err
	}
	originalURL, ok := fs.data[shortcode]
	return originalURL, ok, nil
}

// IsShortenedURL сообщает, есть ли originalURL среди значений по состоянию
// на последнюю загрузку. Файл не перечитывается.
func (fs *FileStore) IsShortenedURL(_ context.Context, originalURL string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, ok := fs.findShortcode(originalURL)
	return ok
}

// GetShortenedURL возвращает короткую ссылку для originalURL по состоянию
// на последнюю загрузку. При нескольких кодах берётся наименьший.
func (fs *FileStore) GetShortenedURL(_ context.Context, originalURL string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	shortcode, ok := fs.findShortcode(originalURL)
	if !ok {
		return "", false
	}
	return fs.baseURL + shortcode, true
}

// Ping проверяет, что файл базы читается и содержит корректный JSON.
func (fs *FileStore) Ping(_ context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.reload()
}

func (fs *FileStore) findShortcode(originalURL string) (string, bool) {
	var found []string
	for shortcode, u := range fs.data {
		if u == originalURL {
			found = append(found, shortcode)
		}
	}
	if len(found) == 0 {
		return "", false
	}
	sort.Strings(found)
	return found[0], true
}

func (fs *FileStore) generateShortcode(length int) (string, error) {
	if length <= 0 {
		length = DefaultShortcodeLength
	}

	if err := fs.reload(); err != nil {
		return "", err
	}

	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		shortcode := utils.RandomString(length)
		if _, exists := fs.data[shortcode]; !exists {
			return shortcode, nil
		}
	}

	fs.logger.Errorw("Failed to generate unique shortcode", "length", length, "attempts", MaxGenerateAttempts, "size", len(fs.data))
	return "", fmt.Errorf("%w: no free shortcode of length %d after %d attempts", ErrCapacityExhausted, length, MaxGenerateAttempts)
}

func (fs *FileStore) reload() error {
	raw, err := os.ReadFile(fs.databaseFile)
	if err != nil {
		fs.logger.Errorw("Failed to read database file", "path", fs.databaseFile, "error", err)
		return fmt.Errorf("%w: failed to read database file %s: %w", ErrInvalidDatabase, fs.databaseFile, err)
	}

	data := make(map[string]string)
	if len(bytes.TrimSpace(raw)) > 0 {
		var parsed map[string]string
		if err := json.Unmarshal(raw, &parsed); err != nil {
			fs.logger.Errorw("Database file does not contain JSON data", "path", fs.databaseFile, "error", err)
			return fmt.Errorf("%w: database file %s does not contain JSON data: %w", ErrInvalidDatabase, fs.databaseFile, err)
		}
		// null
		if parsed == nil {
			return fmt.Errorf("%w: database file %s does not contain a JSON object", ErrInvalidDatabase, fs.databaseFile)
		}
		data = parsed
	}

	fs.data = data
	fs.logger.Debugw("Database reloaded", "path", fs.databaseFile, "size", len(data))

	return fs.save()
}

func (fs *FileStore) save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fs.data); err != nil {
		return fmt.Errorf("%w: failed to encode database: %w", ErrInvalidDatabase, err)
	}

	if err := fs.writeFile(fs.databaseFile, bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		fs.logger.Errorw("Failed to save database file", "path", fs.databaseFile, "error", err)
		return fmt.Errorf("%w: failed to save database file %s: %w", ErrInvalidDatabase, fs.databaseFile, err)
	}
	return nil
}

// writeFileAtomic пишет данные во временный файл рядом с path и
// переименовывает его поверх path, сохраняя права исходного файла.
func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
