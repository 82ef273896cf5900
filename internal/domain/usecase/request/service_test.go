package request

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/signing"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/memstore"
	coremocks "github.com/amirhossein-jamali/psp-client/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/psp-client/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/psp-client/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEndpoints = Endpoints{
	PaymentURL:    "https://pay.psp.example/form",
	StatusURL:     "https://api.psp.example/status",
	WithdrawalURL: "https://api.psp.example/withdrawal",
}

type serviceFixture struct {
	store     *memstore.PayloadStore
	responses *memstore.ResponseStore
	gateway   *gatewaymocks.MockGateway
	journal   *persistencemocks.MockJournalRepository
	service   *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(core.Duration(25 * time.Millisecond)).Maybe()

	f := &serviceFixture{
		store:     newTestStore(),
		responses: memstore.NewResponseStore(),
		gateway:   gatewaymocks.NewMockGateway(t),
		journal:   persistencemocks.NewMockJournalRepository(t),
	}
	f.service = NewService(
		newTestBuilder(f.store),
		f.gateway,
		f.responses,
		f.journal,
		testEndpoints,
		mockTime,
		logger.NewNoopLogger(),
	)
	return f
}

func TestMakeRequestPayin(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	f.journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *entity.JournalEntry) bool {
		return e.RequestType == entity.RequestPayin && e.TxCode == "8" && e.StatusCode == 0
	})).Return(nil).Once()

	result, err := f.service.MakeRequest(ctx, "payin")

	require.NoError(t, err)
	assert.Equal(t, entity.RequestPayin, result.Type)
	assert.Nil(t, result.Response)

	sig, _ := result.Payload.Signature()
	expected := "https://pay.psp.example/form?amount=100&currency=USD&customer=c1&merchant=m1&txcode=8&signed=" + sig
	assert.Equal(t, expected, result.PaymentURL)
	assert.Equal(t, 0, f.responses.Len(), "payin makes no network call")
}

func TestMakeRequestLive(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		requestType string
		target      string
		kind        entity.PayloadKind
	}{
		{"status", testEndpoints.StatusURL, entity.PayloadStatus},
		{"payout", testEndpoints.WithdrawalURL, entity.PayloadWithdrawal},
	}

	for _, tc := range testCases {
		t.Run(tc.requestType, func(t *testing.T) {
			f := newServiceFixture(t)
			body := []byte(`{"result": "ok", "code": 0}`)

			f.gateway.EXPECT().SendGet(mock.Anything, tc.target, mock.MatchedBy(func(p *entity.Payload) bool {
				return signing.Verify(p, testSecret)
			})).Return(&entity.GatewayResponse{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       body,
			}, nil).Once()
			f.journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *entity.JournalEntry) bool {
				return string(e.RequestType) == tc.requestType && e.TargetURL == tc.target && e.StatusCode == http.StatusOK
			})).Return(nil).Once()

			result, err := f.service.MakeRequest(ctx, tc.requestType)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, result.Response.StatusCode)
			assert.Equal(t, "memory://"+tc.requestType+"_response.json", result.OutputPath)
			assert.Empty(t, result.PaymentURL)

			stored, ok := f.responses.Get(entity.RequestType(tc.requestType))
			require.True(t, ok)
			assert.JSONEq(t, string(body), string(stored))

			persisted, err := f.store.Load(ctx, tc.kind)
			require.NoError(t, err)
			assert.True(t, signing.Verify(persisted, testSecret))
		})
	}
}

func TestMakeRequestNonSuccessStatusIsPersisted(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	f.gateway.EXPECT().SendGet(mock.Anything, testEndpoints.StatusURL, mock.Anything).Return(&entity.GatewayResponse{
		StatusCode: http.StatusBadRequest,
		Body:       []byte(`{"error": "invalid signature"}`),
	}, nil).Once()
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := f.service.MakeRequest(ctx, "status")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, result.Response.StatusCode)
	_, ok := f.responses.Get(entity.RequestStatus)
	assert.True(t, ok)
}

func TestMakeRequestInvalidType(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)

	result, err := f.service.MakeRequest(ctx, "refund")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, 0, f.store.Saves(), "no payload is written")
	assert.Equal(t, 0, f.responses.Len(), "no response is written")
}

func TestMakeRequestFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Gateway failure", func(t *testing.T) {
		f := newServiceFixture(t)
		gwErr := errs.NewGatewayError(testEndpoints.WithdrawalURL, errs.ErrTimeout, errors.New("deadline exceeded"))
		f.gateway.EXPECT().SendGet(mock.Anything, testEndpoints.WithdrawalURL, mock.Anything).Return(nil, gwErr).Once()

		_, err := f.service.MakeRequest(ctx, "payout")

		assert.ErrorIs(t, err, errs.ErrTimeout)
		assert.Equal(t, 0, f.responses.Len())

		persisted, loadErr := f.store.Load(ctx, entity.PayloadWithdrawal)
		require.NoError(t, loadErr)
		code, _ := persisted.Get(entity.FieldTxCode)
		assert.Equal(t, "8", code.String(), "allocated code is not rolled back")
	})

	t.Run("Response body is not JSON", func(t *testing.T) {
		f := newServiceFixture(t)
		f.gateway.EXPECT().SendGet(mock.Anything, testEndpoints.StatusURL, mock.Anything).Return(&entity.GatewayResponse{
			StatusCode: http.StatusBadGateway,
			Body:       []byte(`<html>Bad Gateway</html>`),
		}, nil).Once()

		_, err := f.service.MakeRequest(ctx, "status")

		assert.ErrorIs(t, err, errs.ErrParse)
	})

	t.Run("Journal failure does not fail the request", func(t *testing.T) {
		f := newServiceFixture(t)
		f.journal.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		result, err := f.service.MakeRequest(ctx, "payin")

		require.NoError(t, err)
		assert.NotEmpty(t, result.PaymentURL)
	})
}

func TestPaymentFormURL(t *testing.T) {
	p := entity.NewPayload()
	p.Set(entity.FieldAmount, entity.NumberValue("10.50"))
	p.Set(entity.FieldSigned, entity.StringValue("abc"))

	assert.Equal(t, "https://pay.example/form?amount=10.50&signed=abc", PaymentFormURL("https://pay.example/form", p))
}
