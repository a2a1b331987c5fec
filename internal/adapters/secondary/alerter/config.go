package alerter

import "time"

// Config чат для алертов. Без BotToken алерты отключены
type Config struct {
	BotToken        string        `envconfig:"BOT_TOKEN"`
	ChatID          int64         `envconfig:"CHAT_ID"`
	MessageThreadID *int64        `envconfig:"MESSAGE_THREAD_ID"`
	BaseURL         string        `envconfig:"BASE_URL" default:"https://api.telegram.org"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

func (c *Config) Enabled() bool {
	return c != nil && c.BotToken != "" && c.ChatID != 0
}
