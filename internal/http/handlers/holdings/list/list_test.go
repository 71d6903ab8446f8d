package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type PortfolioServiceMock struct {
	mock.Mock
}

func (m *PortfolioServiceMock) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	args := m.Called(ctx, userID)
	h, _ := args.Get(0).([]models.Holding)
	return h, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name       string
		holdings   []models.Holding
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "empty portfolio",
			holdings:   []models.Holding{},
			wantStatus: http.StatusOK,
			wantBody:   `{"holdings":[]}`,
		},
		{
			name:       "storage failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(PortfolioServiceMock)
			svc.On("ListHoldings", mock.Anything, int64(2)).Return(tt.holdings, tt.err).Once()

			req := httptest.NewRequest(http.MethodGet, "/holdings", nil)
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: 2}))
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestListHandler_NoIdentity(t *testing.T) {
	svc := new(PortfolioServiceMock)
	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holdings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "ListHoldings", mock.Anything, mock.Anything)
}
