package gateway

import (
	"context"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the gateway-issued order object. It is passed through to the
// client verbatim, so it stays an untyped map rather than a struct that
// would silently drop fields the gateway adds.
type Order map[string]interface{}

// OrderCreator creates payment orders against the gateway.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (Order, error)
}

const defaultCallTimeout = 15 * time.Second

// RazorpayClient wraps the official SDK behind the OrderCreator interface.
type RazorpayClient struct {
	client  *razorpay.Client
	timeout time.Duration
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client:  razorpay.NewClient(keyID, keySecret),
		timeout: defaultCallTimeout,
	}
}

var _ OrderCreator = (*RazorpayClient)(nil)

// CreateOrder creates an order for the given amount (in the currency's
// smallest unit). The SDK call has no context support, so it runs under a
// bounded deadline; an unreachable gateway fails instead of hanging.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (Order, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		order map[string]interface{}
		err   error
	}
	done := make(chan result, 1)
	go func() {
		body, err := c.client.Order.Create(map[string]interface{}{
			"amount":   amountPaise,
			"currency": currency,
			"receipt":  receipt,
		}, nil)
		done <- result{order: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create order: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("create order: %w", res.err)
		}
		return Order(res.order), nil
	}
}
