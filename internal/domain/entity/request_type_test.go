package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestType(t *testing.T) {
	testCases := []struct {
		input    string
		expected RequestType
		wantErr  bool
	}{
		{"payin", RequestPayin, false},
		{"status", RequestStatus, false},
		{"payout", RequestPayout, false},
		{" PAYOUT ", RequestPayout, false},
		{"refund", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rt, err := ParseRequestType(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rt)
		})
	}
}

func TestRequestTypeProperties(t *testing.T) {
	assert.Equal(t, PayloadDeposit, RequestPayin.PayloadKind())
	assert.Equal(t, PayloadStatus, RequestStatus.PayloadKind())
	assert.Equal(t, PayloadWithdrawal, RequestPayout.PayloadKind())

	assert.False(t, RequestPayin.IsLive())
	assert.True(t, RequestStatus.IsLive())
	assert.True(t, RequestPayout.IsLive())

	assert.Equal(t, "status_response.json", RequestStatus.ResponseFileName())
	assert.Equal(t, "payout_response.json", RequestPayout.ResponseFileName())
}

func TestNewJournalEntry(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	p := NewPayload()
	p.Set(FieldTxCode, IntValue(8))
	p.Set(FieldSigned, StringValue("deadbeef"))

	entry := NewJournalEntry(RequestPayout, p, "https://psp.example/payout", 200, createdAt)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, RequestPayout, entry.RequestType)
	assert.Equal(t, "8", entry.TxCode)
	assert.Equal(t, "deadbeef", entry.Signature)
	assert.Equal(t, 200, entry.StatusCode)
	assert.Equal(t, createdAt, entry.CreatedAt)
}

func TestGatewayResponseIsSuccess(t *testing.T) {
	assert.True(t, (&GatewayResponse{StatusCode: 204}).IsSuccess())
	assert.False(t, (&GatewayResponse{StatusCode: 500}).IsSuccess())
}
