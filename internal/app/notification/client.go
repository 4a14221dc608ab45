package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"francoggm/payment-service/internal/models"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

const (
	sendPath = "/api/notifications/send"

	// unboundedWait keeps callers queued for a pooled connection for as
	// long as it takes when no timeout is configured.
	unboundedWait = time.Duration(math.MaxInt64)
)

var ErrUnexpectedStatus = errors.New("notification service returned unexpected status")

// Client posts payment events to the notification service. A single
// Client is shared by all requests.
type Client struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

func NewClient(baseURL string, timeout time.Duration, maxConns int) *Client {
	return &Client{
		url:     baseURL + sendPath,
		timeout: timeout,
		client: &fasthttp.Client{
			Name:                "payment-service",
			MaxConnsPerHost:     maxConns,
			MaxConnWaitTimeout:  connWaitTimeout(timeout),
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
}

// Send delivers the notification and returns the decoded response body,
// nil when the body is empty. Without a configured timeout or a context
// deadline the call waits for as long as the collaborator takes.
func (c *Client) Send(ctx context.Context, notification *models.NotificationRequest) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := sonic.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.url)
	req.Header.SetMethod(http.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("failed to send notification to %s: %w", c.url, err)
	}

	statusCode := resp.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	var status any
	if err := sonic.Unmarshal(bytes.Clone(body), &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification response: %w", err)
	}

	return status, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline, hasDeadline := ctx.Deadline()
	if c.timeout > 0 {
		if timeoutDeadline := time.Now().Add(c.timeout); !hasDeadline || timeoutDeadline.Before(deadline) {
			deadline, hasDeadline = timeoutDeadline, true
		}
	}

	if hasDeadline {
		return c.client.DoDeadline(req, resp, deadline)
	}

	return c.client.Do(req, resp)
}

func connWaitTimeout(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}

	return unboundedWait
}
