package alerter

import (
	"context"
	"fmt"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/alerter"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/service"
)

// Service реализует IAlerterService, подписывая алерты именем приложения
type Service struct {
	client *alerter.Client
	app    string
}

// New возвращает nil, если клиент алертов не настроен
func New(client *alerter.Client, app string) service.IAlerterService {
	if client == nil {
		return nil
	}
	return &Service{
		client: client,
		app:    app,
	}
}

// SendAlert отправляет алерт
func (s *Service) SendAlert(ctx context.Context, message string) error {
	return s.client.SendAlert(ctx, fmt.Sprintf("[%s] %s", s.app, message))
}
