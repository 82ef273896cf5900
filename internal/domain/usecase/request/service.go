package request

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/usecase"
)

// Endpoints are the provider URLs each request type targets
type Endpoints struct {
	PaymentURL    string // Payment form opened in a browser for payins
	StatusURL     string
	WithdrawalURL string
}

// Service dispatches requests to the payment provider
type Service struct {
	builder      usecase.RequestBuilder
	gateway      gateway.Gateway
	responses    persistence.ResponseRepository
	journal      persistence.JournalRepository
	endpoints    Endpoints
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new request Service
func NewService(
	builder usecase.RequestBuilder,
	gw gateway.Gateway,
	responses persistence.ResponseRepository,
	journal persistence.JournalRepository,
	endpoints Endpoints,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		builder:      builder,
		gateway:      gw,
		responses:    responses,
		journal:      journal,
		endpoints:    endpoints,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// MakeRequest dispatches the request named by requestType
func (s *Service) MakeRequest(ctx context.Context, requestType string) (*usecase.RequestResult, error) {
	rt, err := entity.ParseRequestType(requestType)
	if err != nil {
		s.logger.Error("Unsupported request type", errs.Fields(err))
		return nil, err
	}

	var result *usecase.RequestResult
	switch rt {
	case entity.RequestPayin:
		result, err = s.payin(ctx)
	case entity.RequestStatus:
		result, err = s.live(ctx, rt, s.builder.BuildStatus, s.endpoints.StatusURL)
	case entity.RequestPayout:
		result, err = s.live(ctx, rt, s.builder.BuildWithdrawal, s.endpoints.WithdrawalURL)
	}
	if err != nil {
		return nil, err
	}

	s.record(ctx, result)
	return result, nil
}

func (s *Service) payin(ctx context.Context) (*usecase.RequestResult, error) {
	signed, err := s.builder.BuildDeposit(ctx)
	if err != nil {
		return nil, err
	}

	paymentURL := PaymentFormURL(s.endpoints.PaymentURL, signed.Payload)
	s.logger.Info("Payment form URL generated", map[string]any{
		"url": paymentURL,
	})

	return &usecase.RequestResult{
		Type:       entity.RequestPayin,
		Payload:    signed.Payload,
		PaymentURL: paymentURL,
	}, nil
}

func (s *Service) live(
	ctx context.Context,
	rt entity.RequestType,
	build func(context.Context) (*usecase.SignedPayload, error),
	target string,
) (*usecase.RequestResult, error) {
	signed, err := build(ctx)
	if err != nil {
		return nil, err
	}

	start := s.timeProvider.Now()
	resp, err := s.gateway.SendGet(ctx, target, signed.Payload)
	if err != nil {
		fields := errs.Fields(err)
		fields["request_type"] = rt
		s.logger.Error("Request to payment provider failed", fields)
		return nil, err
	}

	s.logger.Info("Payment provider responded", map[string]any{
		"request_type": rt,
		"status_code":  resp.StatusCode,
		"headers":      resp.Header,
		"body_bytes":   len(resp.Body),
		"duration":     s.timeProvider.Since(start).Std().String(),
	})

	location, err := s.responses.Save(ctx, rt, resp.Body)
	if err != nil {
		fields := errs.Fields(err)
		fields["request_type"] = rt
		fields["status_code"] = resp.StatusCode
		s.logger.Error("Failed to persist provider response", fields)
		return nil, err
	}

	return &usecase.RequestResult{
		Type:       rt,
		Payload:    signed.Payload,
		Response:   resp,
		OutputPath: location,
	}, nil
}

// record appends the dispatched request to the journal.
// A journal failure never fails the request.
func (s *Service) record(ctx context.Context, result *usecase.RequestResult) {
	target := result.PaymentURL
	statusCode := 0
	switch result.Type {
	case entity.RequestStatus:
		target = s.endpoints.StatusURL
	case entity.RequestPayout:
		target = s.endpoints.WithdrawalURL
	}
	if result.Response != nil {
		statusCode = result.Response.StatusCode
	}

	entry := entity.NewJournalEntry(result.Type, result.Payload, target, statusCode, s.timeProvider.Now())
	if err := s.journal.Record(ctx, entry); err != nil {
		fields := errs.Fields(err)
		fields["journal_id"] = entry.ID.String()
		s.logger.Warn("Failed to record request in journal", fields)
	}
}

// PaymentFormURL appends the payload's query string to the payment form base URL
func PaymentFormURL(base string, payload *entity.Payload) string {
	return base + "?" + payload.QueryString()
}
