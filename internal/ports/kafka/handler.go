package kafka

import "context"

// Message входящее сообщение: ключ, заголовки и тело
type Message struct {
	Topic   string
	Key     string
	Headers map[string]string
	Value   []byte
}

// MessageHandler интерфейс для обработки сообщений из Kafka
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message) error
}
