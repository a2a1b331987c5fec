package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/adapters/secondary/storage/inmemory"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/logger"
	kafkaPorts "github.com/Aayushsharma490/viprakarma-sub003/internal/ports/kafka"
)

type astroMock struct {
	mock.Mock
}

func (m *astroMock) ComputeChart(ctx context.Context, in domain.BirthInput) (*domain.Chart, error) {
	args := m.Called(ctx, in)
	chart, _ := args.Get(0).(*domain.Chart)
	return chart, args.Error(1)
}

func (m *astroMock) ComputeDasha(ctx context.Context, chart *domain.Chart, opts dasha.Options) (*domain.DashaPeriod, error) {
	args := m.Called(ctx, chart, opts)
	root, _ := args.Get(0).(*domain.DashaPeriod)
	return root, args.Error(1)
}

func (m *astroMock) ComputeMatching(ctx context.Context, boy, girl domain.BirthInput, ref domain.DoshaReference) (*domain.MatchingResult, error) {
	args := m.Called(ctx, boy, girl, ref)
	res, _ := args.Get(0).(*domain.MatchingResult)
	return res, args.Error(1)
}

func (m *astroMock) ComputeTransits(ctx context.Context, at time.Time) (*domain.Chart, error) {
	args := m.Called(ctx, at)
	chart, _ := args.Get(0).(*domain.Chart)
	return chart, args.Error(1)
}

func (m *astroMock) CachedTransits(ctx context.Context) (*domain.Chart, error) {
	args := m.Called(ctx)
	chart, _ := args.Get(0).(*domain.Chart)
	return chart, args.Error(1)
}

type producerMock struct {
	mock.Mock
	sent []Response
}

func (m *producerMock) Send(ctx context.Context, key string, headers map[string]string, value []byte) error {
	args := m.Called(ctx, key, headers, value)
	if args.Error(0) == nil {
		var resp Response
		if err := json.Unmarshal(value, &resp); err == nil {
			m.sent = append(m.sent, resp)
		}
	}
	return args.Error(0)
}

func (m *producerMock) Close() error {
	return nil
}

var birth = domain.BirthInput{
	Year: 2006, Month: 1, Day: 19, Hour: 9, Minute: 40,
	TimezoneOffset: "+05:30", Latitude: 26.44, Longitude: 74.62,
}

func setup() (*ComputeHandler, *astroMock, *producerMock) {
	astro := &astroMock{}
	producer := &producerMock{}
	h := NewComputeHandler(astro, producer, inmemory.NewRequestCache(16), nil, logger.Discard())
	return h.(*ComputeHandler), astro, producer
}

func message(t *testing.T, action string, id uuid.UUID, payload any) kafkaPorts.Message {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return kafkaPorts.Message{
		Topic:   "compute_requests",
		Key:     "client-1",
		Headers: map[string]string{HeaderAction: action, HeaderRequestID: id.String()},
		Value:   body,
	}
}

func TestHandleMessage_Chart(t *testing.T) {
	h, astro, producer := setup()
	chart := &domain.Chart{AscendantSign: 4}
	astro.On("ComputeChart", mock.Anything, birth).Return(chart, nil)

	id := uuid.New()
	producer.On("Send", mock.Anything, "client-1",
		map[string]string{HeaderRequestID: id.String(), HeaderAction: ActionChart},
		mock.Anything,
	).Return(nil)

	err := h.HandleMessage(context.Background(), message(t, ActionChart, id, ChartRequest{Birth: birth}))
	require.NoError(t, err)

	require.Len(t, producer.sent, 1)
	resp := producer.sent[0]
	assert.Equal(t, id.String(), resp.RequestID)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Nil(t, resp.Error)
	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, result["ascendant_sign"])
	producer.AssertExpectations(t)
}

func TestHandleMessage_DuplicateSkipped(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).Return(&domain.Chart{}, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	msg := message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth})
	require.NoError(t, h.HandleMessage(context.Background(), msg))
	require.NoError(t, h.HandleMessage(context.Background(), msg))

	astro.AssertNumberOfCalls(t, "ComputeChart", 1)
	producer.AssertNumberOfCalls(t, "Send", 1)
}

func TestHandleMessage_MissingRequestIDGenerated(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).Return(&domain.Chart{}, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	msg := message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth})
	delete(msg.Headers, HeaderRequestID)
	require.NoError(t, h.HandleMessage(context.Background(), msg))

	require.Len(t, producer.sent, 1)
	_, err := uuid.Parse(producer.sent[0].RequestID)
	assert.NoError(t, err)
}

func TestHandleMessage_DomainErrorReplied(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).
		Return(nil, domain.NewInvalidDateError("month %d out of range", 13))
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := h.HandleMessage(context.Background(), message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth}))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
	assert.True(t, domain.IsInvalidDate(err))

	require.Len(t, producer.sent, 1)
	resp := producer.sent[0]
	assert.Equal(t, StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_date", resp.Error.Kind)
}

func TestHandleMessage_EphemerisUnavailable(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).
		Return(nil, &domain.EphemerisUnavailableError{Body: domain.Moon, Err: errors.New("timeout")})
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := h.HandleMessage(context.Background(), message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth}))
	assert.True(t, domain.IsBusinessError(err))
	require.Len(t, producer.sent, 1)
	assert.Equal(t, "ephemeris_unavailable", producer.sent[0].Error.Kind)
}

func TestHandleMessage_UnknownAction(t *testing.T) {
	h, astro, producer := setup()
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := h.HandleMessage(context.Background(), message(t, "horoscope", uuid.New(), ChartRequest{Birth: birth}))
	assert.True(t, domain.IsBusinessError(err))

	require.Len(t, producer.sent, 1)
	assert.Equal(t, KindBadRequest, producer.sent[0].Error.Kind)
	astro.AssertNotCalled(t, "ComputeChart", mock.Anything, mock.Anything)
}

func TestHandleMessage_MalformedPayload(t *testing.T) {
	h, _, producer := setup()
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	msg := message(t, ActionChart, uuid.New(), nil)
	msg.Value = []byte("{not json")
	err := h.HandleMessage(context.Background(), msg)
	assert.True(t, domain.IsBusinessError(err))
	assert.Equal(t, KindBadRequest, producer.sent[0].Error.Kind)
}

func TestHandleMessage_InvalidRequestID(t *testing.T) {
	h, _, producer := setup()
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	msg := message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth})
	msg.Headers[HeaderRequestID] = "not-a-uuid"
	err := h.HandleMessage(context.Background(), msg)
	assert.True(t, domain.IsBusinessError(err))
	assert.Equal(t, KindBadRequest, producer.sent[0].Error.Kind)
}

func TestHandleMessage_DashaOptions(t *testing.T) {
	h, astro, producer := setup()
	chart := &domain.Chart{
		Nakshatras: []domain.NakshatraPlacement{{Body: domain.Moon, Index: 13, Name: "Hasta", Pada: 2}},
	}
	root := &domain.DashaPeriod{Lord: domain.Moon}
	astro.On("ComputeChart", mock.Anything, birth).Return(chart, nil)
	astro.On("ComputeDasha", mock.Anything, chart, dasha.Options{Depth: 2, Mode: dasha.Nominal}).Return(root, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := DashaRequest{Birth: birth, Depth: 2, Mode: "nominal"}
	require.NoError(t, h.HandleMessage(context.Background(), message(t, ActionDasha, uuid.New(), req)))

	require.Len(t, producer.sent, 1)
	result := producer.sent[0].Result.(map[string]any)
	moon := result["moon"].(map[string]any)
	assert.Equal(t, "Hasta", moon["name"])
	astro.AssertExpectations(t)
}

func TestHandleMessage_InvalidDashaOptions(t *testing.T) {
	h, astro, producer := setup()
	chart := &domain.Chart{}
	opts := dasha.Options{Depth: 7}
	astro.On("ComputeChart", mock.Anything, birth).Return(chart, nil)
	astro.On("ComputeDasha", mock.Anything, chart, opts).Return(nil, dasha.ErrInvalidOptions)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := h.HandleMessage(context.Background(), message(t, ActionDasha, uuid.New(), DashaRequest{Birth: birth, Depth: 7}))
	assert.True(t, domain.IsBusinessError(err))
	assert.Equal(t, KindBadRequest, producer.sent[0].Error.Kind)
}

func TestHandleMessage_MatchingReference(t *testing.T) {
	h, astro, producer := setup()
	res := &domain.MatchingResult{Total: 25, Verdict: domain.VerdictGood}
	astro.On("ComputeMatching", mock.Anything, birth, birth, domain.DoshaFromMoon).Return(res, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := MatchingRequest{Boy: birth, Girl: birth, DoshaReference: "moon"}
	require.NoError(t, h.HandleMessage(context.Background(), message(t, ActionMatching, uuid.New(), req)))
	result := producer.sent[0].Result.(map[string]any)
	assert.EqualValues(t, 25, result["total"])

	req.DoshaReference = "venus"
	err := h.HandleMessage(context.Background(), message(t, ActionMatching, uuid.New(), req))
	assert.True(t, domain.IsBusinessError(err))
	assert.Equal(t, KindBadRequest, producer.sent[1].Error.Kind)
	astro.AssertNumberOfCalls(t, "ComputeMatching", 1)
}

func TestHandleMessage_SendFailureRetriable(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).Return(&domain.Chart{}, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	msg := message(t, ActionChart, uuid.New(), ChartRequest{Birth: birth})
	err := h.HandleMessage(context.Background(), msg)
	require.Error(t, err)
	assert.False(t, domain.IsBusinessError(err))
	assert.Equal(t, 0, h.Requests.Len())

	// повторная доставка обрабатывается заново
	require.NoError(t, h.HandleMessage(context.Background(), msg))
	astro.AssertNumberOfCalls(t, "ComputeChart", 2)
}

func TestHandleMessage_DuplicateWaitsForInFlight(t *testing.T) {
	h, astro, producer := setup()
	astro.On("ComputeChart", mock.Anything, birth).Return(&domain.Chart{}, nil)
	producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	id := uuid.New()
	msg := message(t, ActionChart, id, ChartRequest{Birth: birth})

	// первая доставка того же id ещё считается
	acquired, err := h.Requests.Acquire(context.Background(), id)
	require.NoError(t, err)
	require.True(t, acquired)

	done := make(chan error, 1)
	go func() {
		done <- h.HandleMessage(context.Background(), msg)
	}()

	select {
	case <-done:
		t.Fatal("duplicate returned while first delivery in flight")
	case <-time.After(50 * time.Millisecond):
	}

	// первая доставка не смогла ответить, повтор считается сам
	h.Requests.Forget(id)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("duplicate not released")
	}
	astro.AssertNumberOfCalls(t, "ComputeChart", 1)
	require.Len(t, producer.sent, 1)
	assert.Equal(t, id.String(), producer.sent[0].RequestID)
}

func TestHandleMessage_DuplicateAfterInFlightCompleted(t *testing.T) {
	h, astro, producer := setup()

	id := uuid.New()
	acquired, err := h.Requests.Acquire(context.Background(), id)
	require.NoError(t, err)
	require.True(t, acquired)

	msg := message(t, ActionChart, id, ChartRequest{Birth: birth})
	done := make(chan error, 1)
	go func() {
		done <- h.HandleMessage(context.Background(), msg)
	}()

	h.Requests.Complete(id)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("duplicate not released")
	}
	astro.AssertNotCalled(t, "ComputeChart", mock.Anything, mock.Anything)
	producer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleMessage_DuplicateCancelledNotCommitted(t *testing.T) {
	h, astro, _ := setup()

	id := uuid.New()
	acquired, err := h.Requests.Acquire(context.Background(), id)
	require.NoError(t, err)
	require.True(t, acquired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = h.HandleMessage(ctx, message(t, ActionChart, id, ChartRequest{Birth: birth}))
	require.Error(t, err)
	assert.False(t, domain.IsBusinessError(err))
	astro.AssertNotCalled(t, "ComputeChart", mock.Anything, mock.Anything)
}
