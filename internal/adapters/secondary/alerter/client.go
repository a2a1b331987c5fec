package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"log/slog"
)

// maxMessageLen лимит длины текста sendMessage
const maxMessageLen = 4096

// Client отправляет операционные алерты в чат Telegram через Bot API
type Client struct {
	httpClient      *http.Client
	endpoint        string
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

// NewClient возвращает nil, если алерты не настроены
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if !cfg.Enabled() {
		return nil
	}

	return &Client{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		endpoint:        fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(cfg.BaseURL, "/"), cfg.BotToken),
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

type sendMessageRequest struct {
	ChatID          int64  `json:"chat_id"`
	Text            string `json:"text"`
	MessageThreadID *int64 `json:"message_thread_id,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// SendAlert отправляет алерт в группу (или топик форума)
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	if len(message) > maxMessageLen {
		message = message[:maxMessageLen-3] + "..."
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:          c.chatID,
		Text:            message,
		MessageThreadID: c.messageThreadID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("failed to read alert response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("failed to decode alert response (status %d): %w", resp.StatusCode, err)
	}
	if !apiResp.OK {
		c.log.Warn("alert rejected",
			"status", resp.StatusCode,
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", c.chatID,
		)
		return fmt.Errorf("alert rejected: %d %s", apiResp.ErrorCode, apiResp.Description)
	}

	c.log.Debug("alert sent successfully", "chat_id", c.chatID)
	return nil
}
