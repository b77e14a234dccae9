// Package gateway talks to the PayPal Orders v2 API. Usecases only see the
// provider-neutral result types from the commands package; every payload
// shape stays in here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/pkg/metrics"
	"gemstore/internal/usecase/commands"

	"github.com/sony/gobreaker/v2"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second

	// The breaker must never cut short a single retry cycle, so it only
	// opens after three full cycles fail back to back.
	tripThreshold = maxAttempts * 3
)

type PayPalClient struct {
	http    *http.Client
	cfg     config.GatewayConfig
	metrics *metrics.Metrics
	breaker *gobreaker.CircuitBreaker[[]byte]
}

var _ commands.PaymentGateway = (*PayPalClient)(nil)

func NewPayPalClient(cfg config.GatewayConfig, m *metrics.Metrics) *PayPalClient {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "paypal",
		MaxRequests: maxAttempts,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripThreshold
		},
	})

	return &PayPalClient{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		metrics: m,
		breaker: breaker,
	}
}

func (c *PayPalClient) CreateIntent(ctx context.Context, totalCents int64) (*commands.IntentResult, error) {
	payload := intentRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{Amount: amountPayload{CurrencyCode: c.cfg.Currency, Value: formatCents(totalCents)}},
		},
		ApplicationContext: applicationContext{
			BrandName:   c.cfg.BrandName,
			LandingPage: "BILLING",
			UserAction:  "PAY_NOW",
			ReturnURL:   c.cfg.ReturnURL,
			CancelURL:   c.cfg.CancelURL,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode intent request")
	}

	raw, err := c.call(ctx, metrics.OpCreateIntent, c.cfg.BaseURL+"/v2/checkout/orders", body)
	if err != nil {
		return nil, err
	}

	var resp intentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errs.Wrap(err, "failed to decode intent response")
	}

	return &commands.IntentResult{
		ID:         resp.ID,
		Status:     resp.Status,
		ApproveURL: resp.approveURL(),
	}, nil
}

func (c *PayPalClient) Capture(ctx context.Context, intentID string) (*commands.CaptureResult, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.cfg.BaseURL, intentID)
	raw, err := c.call(ctx, metrics.OpCapture, url, []byte("{}"))
	if err != nil {
		return nil, err
	}

	var resp captureResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errs.Wrap(err, "failed to decode capture response")
	}
	captureID, err := resp.captureID()
	if err != nil {
		return nil, err
	}

	return &commands.CaptureResult{
		IntentID:  resp.ID,
		CaptureID: captureID,
		Status:    resp.Status,
	}, nil
}

func (c *PayPalClient) Refund(ctx context.Context, captureID string, amountCents int64) (*commands.RefundResult, error) {
	payload := refundRequest{
		Amount: amountPayload{CurrencyCode: c.cfg.Currency, Value: formatCents(amountCents)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode refund request")
	}

	url := fmt.Sprintf("%s/v2/payments/captures/%s/refund", c.cfg.BaseURL, captureID)
	raw, err := c.call(ctx, metrics.OpRefund, url, body)
	if err != nil {
		return nil, err
	}

	var resp refundResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errs.Wrap(err, "failed to decode refund response")
	}

	return &commands.RefundResult{ID: resp.ID, Status: resp.Status}, nil
}

// call retries up to maxAttempts with a fixed delay and surfaces the last
// error. Each attempt runs through the breaker so a dead provider eventually
// fails fast instead of burning three seconds per request.
func (c *PayPalClient) call(ctx context.Context, op, url string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		start := time.Now()
		raw, err := c.breaker.Execute(func() ([]byte, error) {
			return c.doRequest(ctx, url, body)
		})
		c.metrics.GatewayLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())

		if err == nil {
			c.metrics.GatewayAttempts.WithLabelValues(op, metrics.OutcomeSuccess).Inc()
			return raw, nil
		}

		c.metrics.GatewayAttempts.WithLabelValues(op, metrics.OutcomeFailure).Inc()
		lastErr = err
		slog.WarnContext(ctx, "payment provider call failed",
			"op", op, "attempt", attempt, "error", err)

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, errs.Wrap(ctx.Err(), "payment provider call aborted")
			case <-time.After(retryDelay):
			}
		}
	}

	return nil, errs.Wrap(lastErr, "payment provider call failed after retries")
}

func (c *PayPalClient) doRequest(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "provider request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read provider response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errs.Newf("provider returned %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	return raw, nil
}

// formatCents renders an amount the way the provider expects, always with
// exactly two decimals and without going through floating point.
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

type amountPayload struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount amountPayload `json:"amount"`
}

type applicationContext struct {
	BrandName   string `json:"brand_name"`
	LandingPage string `json:"landing_page"`
	UserAction  string `json:"user_action"`
	ReturnURL   string `json:"return_url"`
	CancelURL   string `json:"cancel_url"`
}

type intentRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type intentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []link `json:"links"`
}

func (r *intentResponse) approveURL() string {
	for _, l := range r.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			return l.Href
		}
	}
	return ""
}

type captureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (r *captureResponse) captureID() (string, error) {
	if len(r.PurchaseUnits) == 0 || len(r.PurchaseUnits[0].Payments.Captures) == 0 {
		return "", errs.New("capture response carries no capture id")
	}
	return r.PurchaseUnits[0].Payments.Captures[0].ID, nil
}

type refundRequest struct {
	Amount amountPayload `json:"amount"`
}

type refundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
