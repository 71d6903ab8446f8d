package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// PriceWriter записывает котировку во все активы с данным символом.
type PriceWriter interface {
	UpdatePricesBySymbol(ctx context.Context, symbol string, quote models.Quote, at time.Time) (int64, error)
}

// QuoteProvider возвращает текущие котировки.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (models.Quote, error)
}

// JobRecorder учитывает обработанные задачи.
type JobRecorder interface {
	ObserveRefreshJob(ok bool)
}

// UpdaterService обрабатывает задачи обновления цен.
type UpdaterService struct {
	repo     PriceWriter
	quotes   QuoteProvider
	log      *slog.Logger
	recorder JobRecorder
	now      func() time.Time
}

// NewUpdaterService создает новый экземпляр UpdaterService. recorder может быть nil.
func NewUpdaterService(repo PriceWriter, quotes QuoteProvider, log *slog.Logger, recorder JobRecorder) *UpdaterService {
	return &UpdaterService{
		repo:     repo,
		quotes:   quotes,
		log:      log,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HandleMessage обрабатывает тело сообщения очереди. Некорректные сообщения
// отбрасываются; ошибка котировки или хранилища возвращается, и сообщение
// уходит обратно в очередь.
func (s *UpdaterService) HandleMessage(ctx context.Context, body []byte) (err error) {
	defer func() {
		if s.recorder != nil {
			s.recorder.ObserveRefreshJob(err == nil)
		}
	}()

	var job models.PriceRefreshJob
	if err := json.Unmarshal(body, &job); err != nil {
		s.log.Error("failed to unmarshal message body, dropping", sl.Err(err))
		return nil
	}
	symbol := strings.ToUpper(strings.TrimSpace(job.Symbol))
	if symbol == "" {
		s.log.Warn("refresh job without symbol, dropping")
		return nil
	}

	quote, err := s.quotes.Quote(ctx, symbol)
	if err != nil {
		return fmt.Errorf("services.pricing.HandleMessage: %w", err)
	}

	updated, err := s.repo.UpdatePricesBySymbol(ctx, symbol, quote, s.now())
	if err != nil {
		return fmt.Errorf("services.pricing.HandleMessage: %w", err)
	}
	s.log.Debug("prices updated", slog.String("symbol", symbol), slog.Int64("rows", updated))
	return nil
}
