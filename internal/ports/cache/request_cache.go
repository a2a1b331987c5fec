package cache

import (
	"context"

	"github.com/google/uuid"
)

// IRequestCache помнит request_id, на которые уже ушёл ответ, и те, что считаются сейчас
type IRequestCache interface {
	// Acquire захватывает request_id. Если он в обработке, ждёт её исхода.
	// false, если ответ на него уже отправлен
	Acquire(ctx context.Context, requestID uuid.UUID) (bool, error)
	// Complete отмечает, что ответ отправлен
	Complete(requestID uuid.UUID)
	// Forget снимает захват, если ответ так и не ушёл и доставку надо повторить
	Forget(requestID uuid.UUID)
	Len() int
}
