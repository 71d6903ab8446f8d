package stats

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Analytics(ctx context.Context, userID int64) (*models.PortfolioAnalytics, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).(*models.PortfolioAnalytics)
	return a, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withIdentity(req *http.Request) *http.Request {
	return req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: 1}))
}

func TestStatsHandler_Success(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Analytics", mock.Anything, int64(1)).Return(&models.PortfolioAnalytics{
		PortfolioStats: models.PortfolioStats{
			Count:           1,
			TotalValue:      decimal.NewFromInt(150),
			TotalInvested:   decimal.NewFromInt(100),
			TotalProfitLoss: decimal.NewFromInt(50),
		},
		ProfitLossPercentage: decimal.NewFromInt(50),
		BestPerformer:        &models.Performer{Name: "Bitcoin", Symbol: "BTC", Performance: decimal.NewFromInt(50)},
		WorstPerformer:       &models.Performer{Name: "Bitcoin", Symbol: "BTC", Performance: decimal.NewFromInt(50)},
		Display:              map[string]string{"total_value": "$150.00"},
	}, nil).Once()

	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc).ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/portfolio/stats", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, float64(1), got["crypto_count"])
	assert.Equal(t, float64(50), got["profit_loss_percentage"])
	assert.Equal(t, "BTC", got["best_performer"].(map[string]any)["symbol"])
	assert.Equal(t, "$150.00", got["display"].(map[string]any)["total_value"])
	svc.AssertExpectations(t)
}

func TestStatsHandler_Failure(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Analytics", mock.Anything, int64(1)).Return(nil, errors.New("timeout")).Once()

	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc).ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/portfolio/stats", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
