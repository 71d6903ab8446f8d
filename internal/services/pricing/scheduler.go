// Package services содержит конвейер обновления цен: планировщик публикует
// задачи в RabbitMQ, обработчик получает котировки и записывает их в хранилище.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// SymbolLister возвращает символы, которые есть в портфелях пользователей.
type SymbolLister interface {
	ListTrackedSymbols(ctx context.Context) ([]string, error)
}

// PublishRecorder учитывает опубликованные задачи.
type PublishRecorder interface {
	ObservePublishedJob()
}

// SchedulerService периодически ставит задачи обновления цен.
type SchedulerService struct {
	repo     SymbolLister
	channel  rabbitmq.Publisher
	interval time.Duration
	log      *slog.Logger
	recorder PublishRecorder
	now      func() time.Time
}

// NewSchedulerService создает новый экземпляр SchedulerService. recorder может быть nil.
func NewSchedulerService(repo SymbolLister, channel rabbitmq.Publisher, interval time.Duration,
	log *slog.Logger, recorder PublishRecorder) *SchedulerService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SchedulerService{
		repo:     repo,
		channel:  channel,
		interval: interval,
		log:      log,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run публикует задачи сразу и затем на каждом тике, пока не отменён ctx.
func (s *SchedulerService) Run(ctx context.Context) {
	s.PublishRefreshJobs(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("price scheduler stopped")
			return
		case <-ticker.C:
			s.PublishRefreshJobs(ctx)
		}
	}
}

// PublishRefreshJobs публикует по одной задаче на каждый отслеживаемый символ
// и возвращает число опубликованных задач.
func (s *SchedulerService) PublishRefreshJobs(ctx context.Context) int {
	s.log.Info("starting price refresh scheduling")
	symbols, err := s.repo.ListTrackedSymbols(ctx)
	if err != nil {
		s.log.Error("failed to list tracked symbols", sl.Err(err))
		return 0
	}
	if len(symbols) == 0 {
		s.log.Info("no tracked symbols found")
		return 0
	}

	published := 0
	for _, symbol := range symbols {
		job := models.PriceRefreshJob{Symbol: symbol, RequestedAt: s.now()}
		if err := rabbitmq.PublishMessage(s.channel, rabbitmq.PricesExchange, rabbitmq.RefreshRoutingKey, job); err != nil {
			s.log.Error("failed to publish message", slog.String("symbol", symbol), sl.Err(err))
			continue
		}
		if s.recorder != nil {
			s.recorder.ObservePublishedJob()
		}
		published++
	}
	s.log.Info("price refresh jobs published", slog.Int("count", published))
	return published
}
