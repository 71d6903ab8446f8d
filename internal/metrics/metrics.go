// Package metrics объявляет метрики Prometheus сервиса.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crypto_portfolio"

// Metrics — набор счётчиков и гистограмм сервиса.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	authEvents    *prometheus.CounterVec
	upstreamCalls *prometheus.CounterVec
	refreshJobs   *prometheus.CounterVec
	publishedJobs prometheus.Counter
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Registrations, logins and token checks by result.",
		}, []string{"event", "result"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "market_data_requests_total",
			Help:      "Calls to the market data API by endpoint and result.",
		}, []string{"endpoint", "result"}),
		refreshJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_refresh_jobs_total",
			Help:      "Consumed price refresh jobs by result.",
		}, []string{"result"}),
		publishedJobs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_refresh_jobs_published_total",
			Help:      "Published price refresh jobs.",
		}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.authEvents, m.upstreamCalls, m.refreshJobs, m.publishedJobs)
	return m
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// ObserveHTTP учитывает обработанный HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAuth учитывает событие аутентификации: register, login, verify.
func (m *Metrics) ObserveAuth(event string, ok bool) {
	m.authEvents.WithLabelValues(event, result(ok)).Inc()
}

// ObserveUpstream учитывает обращение к API котировок.
func (m *Metrics) ObserveUpstream(endpoint string, ok bool) {
	m.upstreamCalls.WithLabelValues(endpoint, result(ok)).Inc()
}

// ObserveRefreshJob учитывает обработанную задачу обновления цены.
func (m *Metrics) ObserveRefreshJob(ok bool) {
	m.refreshJobs.WithLabelValues(result(ok)).Inc()
}

// ObservePublishedJob учитывает опубликованную задачу обновления цены.
func (m *Metrics) ObservePublishedJob() {
	m.publishedJobs.Inc()
}

// NewRegistry возвращает реестр со стандартными метриками процесса и рантайма Go.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler отдаёт метрики реестра g в текстовом формате Prometheus.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// NewServer возвращает HTTP-сервер с единственным маршрутом /metrics.
// Используется фоновыми процессами, у которых нет своего API.
func NewServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
