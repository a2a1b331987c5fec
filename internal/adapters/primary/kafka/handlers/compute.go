package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/logger"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
	kafkaPorts "github.com/Aayushsharma490/viprakarma-sub003/internal/ports/kafka"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

const (
	HeaderAction    = "action"
	HeaderRequestID = "request_id"

	ActionChart    = "chart"
	ActionDasha    = "dasha"
	ActionMatching = "matching"

	StatusOK    = "ok"
	StatusError = "error"

	// KindBadRequest запрос не разобран: неизвестное действие, битый JSON или request_id
	KindBadRequest = "bad_request"
)

// ComputeHandler обрабатывает запросы на расчёт из compute_requests
// и отвечает в compute_responses с тем же ключом
type ComputeHandler struct {
	Astro    usecase.IAstroUseCase
	Producer kafkaPorts.IKafkaProducer
	Requests cache.IRequestCache
	Metrics  *metrics.Collector
	Log      *slog.Logger
}

func NewComputeHandler(
	astro usecase.IAstroUseCase,
	producer kafkaPorts.IKafkaProducer,
	requests cache.IRequestCache,
	m *metrics.Collector,
	log *slog.Logger,
) kafkaPorts.MessageHandler {
	return &ComputeHandler{
		Astro:    astro,
		Producer: producer,
		Requests: requests,
		Metrics:  m,
		Log:      log,
	}
}

// HandleMessage возвращает BusinessError, если клиенту уже ушёл ответ с ошибкой,
// тогда consumer коммитит offset без повторного логирования.
// Повтор request_id, который ещё считается, ждёт исхода первой доставки
func (h *ComputeHandler) HandleMessage(ctx context.Context, msg kafkaPorts.Message) error {
	action := msg.Headers[HeaderAction]

	requestID, idErr := requestIDFrom(msg.Headers)
	ctx = logger.WithRequestID(ctx, requestID.String())

	if idErr != nil {
		h.Log.WarnContext(ctx, "invalid request_id header", "error", idErr, "key", msg.Key)
		return h.fail(ctx, msg.Key, requestID, action, KindBadRequest, idErr)
	}

	acquired, err := h.Requests.Acquire(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to acquire request %s: %w", requestID, err)
	}
	if !acquired {
		h.Log.DebugContext(ctx, "duplicate compute request skipped", "action", action)
		return nil
	}

	result, err := h.dispatch(ctx, action, msg.Value)
	h.Metrics.ObserveKafka(action, err)
	if err != nil {
		kind := kindOf(err)
		if kind == "internal" || kind == "invalid_nakshatra" {
			h.Log.ErrorContext(ctx, "compute request failed", "action", action, "error", err)
		} else {
			h.Log.WarnContext(ctx, "compute request rejected", "action", action, "kind", kind, "error", err)
		}
		return h.fail(ctx, msg.Key, requestID, action, kind, err)
	}

	if err := h.reply(ctx, msg.Key, Response{
		RequestID: requestID.String(),
		Action:    action,
		Status:    StatusOK,
		Result:    result,
	}); err != nil {
		h.Requests.Forget(requestID)
		return err
	}
	h.Requests.Complete(requestID)

	h.Log.DebugContext(ctx, "compute request served", "action", action)
	return nil
}

func (h *ComputeHandler) dispatch(ctx context.Context, action string, value []byte) (any, error) {
	switch action {
	case ActionChart:
		var req ChartRequest
		if err := decode(value, &req); err != nil {
			return nil, err
		}
		return h.Astro.ComputeChart(ctx, req.Birth)

	case ActionDasha:
		var req DashaRequest
		if err := decode(value, &req); err != nil {
			return nil, err
		}
		chart, err := h.Astro.ComputeChart(ctx, req.Birth)
		if err != nil {
			return nil, err
		}
		root, err := h.Astro.ComputeDasha(ctx, chart, dasha.Options{
			Depth: req.Depth,
			Mode:  dasha.Mode(req.Mode),
		})
		if err != nil {
			return nil, err
		}
		return DashaResult{Moon: moonOf(chart), Dasha: root}, nil

	case ActionMatching:
		var req MatchingRequest
		if err := decode(value, &req); err != nil {
			return nil, err
		}
		ref := domain.DoshaReference(req.DoshaReference)
		if ref != "" && !ref.IsValid() {
			return nil, &badRequestError{reason: fmt.Sprintf("unknown dosha_reference %q", ref)}
		}
		return h.Astro.ComputeMatching(ctx, req.Boy, req.Girl, ref)

	default:
		return nil, &badRequestError{reason: fmt.Sprintf("unknown action %q", action)}
	}
}

func (h *ComputeHandler) fail(ctx context.Context, key string, requestID uuid.UUID, action, kind string, cause error) error {
	resp := Response{
		RequestID: requestID.String(),
		Action:    action,
		Status:    StatusError,
		Error:     &ErrorBody{Kind: kind, Message: cause.Error()},
	}
	if err := h.reply(ctx, key, resp); err != nil {
		h.Requests.Forget(requestID)
		return err
	}
	h.Requests.Complete(requestID)
	return domain.WrapBusinessError(cause)
}

func (h *ComputeHandler) reply(ctx context.Context, key string, resp Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal compute response: %w", err)
	}

	headers := map[string]string{
		HeaderRequestID: resp.RequestID,
		HeaderAction:    resp.Action,
	}
	if err := h.Producer.Send(ctx, key, headers, body); err != nil {
		return fmt.Errorf("failed to send compute response: %w", err)
	}
	return nil
}

// requestIDFrom при отсутствии заголовка выдаёт новый id
func requestIDFrom(headers map[string]string) (uuid.UUID, error) {
	raw, ok := headers[HeaderRequestID]
	if !ok || raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.New(), &badRequestError{reason: fmt.Sprintf("request_id %q is not a uuid", raw)}
	}
	return id, nil
}

func decode(value []byte, v any) error {
	if err := json.Unmarshal(value, v); err != nil {
		return &badRequestError{reason: "malformed payload: " + err.Error()}
	}
	return nil
}

func moonOf(chart *domain.Chart) *domain.NakshatraPlacement {
	moon, ok := chart.Nakshatra(domain.Moon)
	if !ok {
		return nil
	}
	return &moon
}

type badRequestError struct {
	reason string
}

func (e *badRequestError) Error() string {
	return e.reason
}

func kindOf(err error) string {
	var bad *badRequestError
	switch {
	case errors.As(err, &bad):
		return KindBadRequest
	case errors.Is(err, dasha.ErrInvalidOptions):
		return KindBadRequest
	default:
		return domain.Kind(err)
	}
}
