package storehandlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStore struct {
	err error
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.err
}

func servePing(handler *PingHandler) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", handler.Ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w
}

func TestPing_StoreFails(t *testing.T) {
	w := servePing(NewPingHandler(&fakeStore{err: errors.New("invalid database")}, zap.NewNop().Sugar()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"invalid database"}`, w.Body.String())
}

func TestPing_OK(t *testing.T) {
	w := servePing(NewPingHandler(&fakeStore{}, zap.NewNop().Sugar()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
