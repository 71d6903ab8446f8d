package rabbitmq

const (
	// PricesExchange — exchange для задач обновления цен.
	PricesExchange = "prices"
	// RefreshRoutingKey — ключ маршрутизации задач обновления цены символа.
	RefreshRoutingKey = "refresh"
	// RefreshQueue — очередь задач обновления цен.
	RefreshQueue = "prices.refresh"
)

// QueueConfig описывает очередь и ключ, которым она привязана к exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetPriceQueues возвращает очереди конвейера обновления цен.
func GetPriceQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: RefreshQueue, RoutingKey: RefreshRoutingKey},
	}
}
