package trigger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bridgewatch/freqtrigger/invoker/internal/limits"
	"github.com/bridgewatch/freqtrigger/pkg/types"
)

const (
	// IngestPath is the endpoint path appended to the base URL.
	IngestPath = "/ingest/frequency"

	// RequestTimeout bounds the full request/response cycle.
	RequestTimeout = 10 * time.Second

	userAgent = "freqtrigger"
)

// Result is the outcome of a completed request.
type Result struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	RequestID  string
}

// Line formats r as the single line printed to stdout:
// "POST /ingest/frequency <status> <body>".
func (r *Result) Line() string {
	return fmt.Sprintf("POST %s %d %s", IngestPath, r.StatusCode, r.Body)
}

// Invoker posts alert payloads to one ingestion service.
type Invoker struct {
	url    string
	client *resty.Client
	logger *zap.Logger
	limits limits.Limits
	newID  func() string
}

// New creates an Invoker targeting baseURL (scheme://host[:port], no path).
func New(baseURL string, logger *zap.Logger) *Invoker {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(RequestTimeout).
		SetRetryCount(0).
		SetLogger(logger.Sugar()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	// A 3xx is the endpoint's answer; following it would POST the payload twice.
	client.GetClient().CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Invoker{
		url:    baseURL + IngestPath,
		client: client,
		logger: logger,
		limits: limits.DefaultBridge(),
		newID:  uuid.NewString,
	}
}

// Send posts p once and returns the response status and raw body.
func (i *Invoker) Send(ctx context.Context, p types.AlertPayload) (*Result, error) {
	defer i.client.GetClient().CloseIdleConnections()

	requestID := i.newID()
	maxPeak := p.MaxPeak()
	expected := limits.Classify(maxPeak, i.limits)

	i.logger.Info("sending frequency event",
		zap.String("request_id", requestID),
		zap.String("url", i.url),
		zap.String("device_id", p.DeviceID),
		zap.Float64("max_peak_hz", maxPeak),
		zap.String("expected_severity", expected.Severity),
		zap.Float64("expected_threshold_hz", expected.Threshold),
	)
	i.logger.Debug("payload", zap.Any("body", p))

	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(p).
		Post(IngestPath)
	if err != nil {
		return nil, fmt.Errorf("trigger: post %s: %w", i.url, err)
	}

	res := &Result{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		Duration:   resp.Time(),
		RequestID:  requestID,
	}

	if resp.IsError() {
		i.logger.Warn("ingest endpoint returned error status",
			zap.String("request_id", requestID),
			zap.Int("status_code", res.StatusCode),
			zap.Duration("duration", res.Duration),
		)
	} else {
		i.logger.Info("frequency event delivered",
			zap.String("request_id", requestID),
			zap.Int("status_code", res.StatusCode),
			zap.Duration("duration", res.Duration),
		)
	}
	return res, nil
}
