// Package marketdata — клиент публичного API CoinGecko: котировки,
// поиск монет и обзор рынка. Запросы ограничены по частоте,
// котировки кэшируются.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/crypto-portfolio/internal/config"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

const (
	searchLimit    = 10
	minQueryLength = 2
	imageURL       = "https://assets.coingecko.com/coins/images/1/large/%s.png"
)

// QuoteCache хранит котировки между запросами.
type QuoteCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Recorder учитывает обращения к внешнему API.
type Recorder interface {
	ObserveUpstream(endpoint string, ok bool)
}

// Client обращается к CoinGecko.
type Client struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      QuoteCache
	cacheTTL   time.Duration
	recorder   Recorder
}

// New создаёт клиент. cache и recorder могут быть nil.
func New(log *slog.Logger, cfg config.MarketData, cache QuoteCache, recorder Recorder) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	interval := cfg.MinInterval
	if interval <= 0 {
		interval = 1100 * time.Millisecond
	}
	return &Client{
		log:        log,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
		recorder:   recorder,
	}
}

// QuoteKey — ключ кэша котировки тикера.
func QuoteKey(symbol string) string {
	return "price:" + strings.ToUpper(symbol)
}

// Quote возвращает текущую цену тикера в USD и изменение за 24 часа.
// Неизвестный тикер ищется через /search, берётся первая найденная монета.
// Если CoinGecko не знает монету, возвращается нулевая котировка.
func (c *Client) Quote(ctx context.Context, symbol string) (models.Quote, error) {
	const op = "marketdata.Quote"
	key := QuoteKey(symbol)

	if c.cache != nil {
		var cached models.Quote
		found, err := c.cache.Get(ctx, key, &cached)
		if err != nil {
			c.log.Warn("failed to read quote from cache", slog.String("symbol", symbol), sl.Err(err))
		} else if found {
			return cached, nil
		}
	}

	id, known := CoinID(symbol)
	if !known {
		var err error
		if id, err = c.lookupID(ctx, symbol); err != nil {
			return models.Quote{}, fmt.Errorf("%s: %w", op, err)
		}
		if id == "" {
			c.log.Debug("coin not found", slog.String("symbol", symbol))
			return models.Quote{}, nil
		}
	}

	prices, err := c.simplePrice(ctx, []string{id})
	if err != nil {
		return models.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	var quote models.Quote
	if p, ok := prices[id]; ok {
		quote = models.Quote{Price: p.USD, Change24h: p.Change24h}
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, quote, c.cacheTTL); err != nil {
			c.log.Warn("failed to write quote to cache", slog.String("symbol", symbol), sl.Err(err))
		}
	}
	return quote, nil
}

// FreshQuote сбрасывает кэшированную котировку тикера и запрашивает её заново.
func (c *Client) FreshQuote(ctx context.Context, symbol string) (models.Quote, error) {
	if c.cache != nil {
		if err := c.cache.Invalidate(ctx, QuoteKey(symbol)); err != nil {
			c.log.Warn("failed to invalidate cached quote", slog.String("symbol", symbol), sl.Err(err))
		}
	}
	return c.Quote(ctx, symbol)
}

// lookupID возвращает идентификатор первой монеты из /search или пустую строку.
func (c *Client) lookupID(ctx context.Context, symbol string) (string, error) {
	var resp searchResponse
	if err := c.getJSON(ctx, "search", "/search", url.Values{"query": {symbol}}, &resp); err != nil {
		return "", err
	}
	if len(resp.Coins) == 0 {
		return "", nil
	}
	return resp.Coins[0].ID, nil
}

// Search ищет монеты по имени или тикеру. Запросы короче двух символов
// не отправляются и дают пустой результат.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	const op = "marketdata.Search"
	results := make([]models.SearchResult, 0)
	if len([]rune(query)) < minQueryLength {
		return results, nil
	}

	var resp searchResponse
	if err := c.getJSON(ctx, "search", "/search", url.Values{"query": {query}}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, coin := range resp.Coins {
		if i == searchLimit {
			break
		}
		results = append(results, models.SearchResult{
			ID:     coin.ID,
			Name:   coin.Name,
			Symbol: strings.ToUpper(coin.Symbol),
			Image:  coin.Thumb,
		})
	}
	return results, nil
}

// Overview возвращает котировки популярных монет.
func (c *Client) Overview(ctx context.Context) ([]models.MarketEntry, error) {
	const op = "marketdata.Overview"
	prices, err := c.simplePrice(ctx, popularIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	title := cases.Title(language.English)
	entries := make([]models.MarketEntry, 0, len(popularIDs))
	for _, id := range popularIDs {
		p, ok := prices[id]
		if !ok {
			continue
		}
		entries = append(entries, models.MarketEntry{
			Name:           title.String(strings.ReplaceAll(id, "-", " ")),
			Symbol:         symbolFor(id),
			CurrentPrice:   p.USD,
			PriceChange24h: p.Change24h,
			Image:          fmt.Sprintf(imageURL, id),
		})
	}
	return entries, nil
}

func (c *Client) simplePrice(ctx context.Context, ids []string) (map[string]simplePrice, error) {
	params := url.Values{
		"ids":                 {strings.Join(ids, ",")},
		"vs_currencies":       {"usd"},
		"include_24hr_change": {"true"},
	}
	var resp map[string]simplePrice
	if err := c.getJSON(ctx, "simple_price", "/simple/price", params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// getJSON выполняет GET-запрос с учётом лимита частоты и декодирует JSON-ответ.
// Любая ошибка транспорта, статуса или декодирования оборачивается в models.ErrUpstream.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) (err error) {
	defer func() {
		if c.recorder != nil {
			c.recorder.ObserveUpstream(endpoint, err == nil)
		}
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.log.Warn("market data rate limit hit", slog.String("endpoint", endpoint))
		}
		return fmt.Errorf("%w: unexpected status: %s", models.ErrUpstream, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", models.ErrUpstream, err)
	}
	return nil
}
