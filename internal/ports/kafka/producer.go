package kafka

import "context"

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// Send отправляет сообщение в топик результатов
	Send(ctx context.Context, key string, headers map[string]string, value []byte) error
	// Close закрывает producer
	Close() error
}
