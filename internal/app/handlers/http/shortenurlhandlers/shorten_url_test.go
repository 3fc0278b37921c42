package shortenurlhandlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockService: http://example.com уже сокращён, http://fail.com ломает хранилище.
type mockService struct {
	lastInput string
}

func (m *mockService) ShortenURL(_ context.Context, input string) (string, bool, error) {
	m.lastInput = input
	switch input {
	case "":
		return "", false, service.ErrEmptyURL
	case "http://example.com":
		return "http://short.ly/abcdef", true, nil
	case "http://fail.com":
		return "", false, errors.New("invalid database")
	}
	return "http://short.ly/newnew", false, nil
}

func (m *mockService) GetOriginalURL(_ context.Context, shortcode string) (string, error) {
	switch shortcode {
	case "abcdef":
		return "http://example.com", nil
	case "broken":
		return "", errors.New("invalid database")
	}
	return "", service.ErrURLNotFound
}

func newTestRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	shorten := NewShortenHandler(svc, logger).Shorten

	router := gin.New()
	router.GET("/short", shorten)
	router.POST("/short", shorten)
	router.GET("/:shortcode", NewGetURLHandler(svc, logger).GetURL)
	return router
}

func TestShorten(t *testing.T) {
	type want struct {
		code  int
		body  string
		input string
	}
	tests := []struct {
		name    string
		request func() *http.Request
		want    want
	}{
		{
			name: "GET new URL",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/short?url="+url.QueryEscape("http://foo.com"), nil)
			},
			want: want{code: http.StatusOK, body: `{"shortened_url":"http://short.ly/newnew"}`, input: "http://foo.com"},
		},
		{
			name: "GET existing URL",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/short?url="+url.QueryEscape("http://example.com"), nil)
			},
			want: want{code: http.StatusOK, body: `{"shortened_url":"http://short.ly/abcdef"}`, input: "http://example.com"},
		},
		{
			name: "POST form",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/short", strings.NewReader(url.Values{"url": {"http://foo.com"}}.Encode()))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: want{code: http.StatusOK, body: `{"shortened_url":"http://short.ly/newnew"}`, input: "http://foo.com"},
		},
		{
			name: "POST ignores query parameter",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/short?url=http://example.com", strings.NewReader(""))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: want{code: http.StatusBadRequest, body: `{"error":"URL cannot be empty"}`, input: ""},
		},
		{
			name: "GET missing url",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/short", nil)
			},
			want: want{code: http.StatusBadRequest, body: `{"error":"URL cannot be empty"}`, input: ""},
		},
		{
			name: "store failure",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/short?url=http://fail.com", nil)
			},
			want: want{code: http.StatusInternalServerError, body: `{"error":"invalid database"}`, input: "http://fail.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			w := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(w, tt.request())

			assert.Equal(t, tt.want.code, w.Code)
			assert.JSONEq(t, tt.want.body, w.Body.String())
			assert.Equal(t, tt.want.input, svc.lastInput)
		})
	}
}

func TestGetURL(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		code     int
		location string
		body     string
	}{
		{name: "found", path: "/abcdef", code: http.StatusFound, location: "http://example.com"},
		{name: "not found", path: "/zzz999", code: http.StatusNotFound, body: `{"error":"URL not found"}`},
		{name: "store failure", path: "/broken", code: http.StatusInternalServerError, body: `{"error":"invalid database"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(&mockService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}
