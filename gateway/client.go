// Package gateway talks to WayForPay: direct API requests, checkout forms
// and checkout redirect URLs.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"wayforpay/entity"
	"wayforpay/params"
	"wayforpay/services"
)

// Response is the gateway reply as decoded JSON. Numbers are kept as
// json.Number so that amounts and timestamps keep their original text.
type Response map[string]interface{}

var responseJson = jsoniter.Config{UseNumber: true}.Froze()

// Client sends signed requests to the WayForPay API. It is safe for
// concurrent use once configured.
type Client struct {
	account    string
	key        string
	endpoint   string
	httpClient *http.Client
	logger     services.LogHandler
}

func NewClient(account, key string) *Client {
	return &Client{
		account:  account,
		key:      key,
		endpoint: entity.ApiUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: nopLogger{},
	}
}

func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

func (c *Client) SetLogger(logger services.LogHandler) {
	c.logger = logger
}

// Query signs fields as a request of type t and posts it to the API.
// The response body is returned as decoded, whatever the HTTP status.
func (c *Client) Query(ctx context.Context, t entity.TransactionType, fields ...params.Field) (Response, error) {
	request, err := params.NewFrozen(c.account, c.key, t, fields...)
	if err != nil {
		return nil, err
	}
	body, err := request.MarshalJSON()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	orderReference, _ := request.Get(params.FieldOrderReference)
	c.logger.Debug(fmt.Sprintf("%s request: order %v", t, orderReference))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Error("close response body", err)
		}
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(fmt.Sprintf("%s response: status %d; %d bytes", t, resp.StatusCode, len(data)))

	var response Response
	if err = responseJson.Unmarshal(data, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) Settle(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.Settle, fields...)
}

func (c *Client) Charge(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.Charge, fields...)
}

func (c *Client) Refund(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.Refund, fields...)
}

func (c *Client) CheckStatus(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.CheckStatus, fields...)
}

// Account2Card credits a card from the merchant account (P2P_CREDIT).
func (c *Client) Account2Card(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.P2PCredit, fields...)
}

func (c *Client) CreateInvoice(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.CreateInvoice, fields...)
}

// Account2Phone credits a phone number from the merchant account (P2_PHONE).
func (c *Client) Account2Phone(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.P2Phone, fields...)
}

func (c *Client) TransactionList(ctx context.Context, fields ...params.Field) (Response, error) {
	return c.Query(ctx, entity.TransactionList, fields...)
}

type nopLogger struct{}

func (nopLogger) Debug(string)        {}
func (nopLogger) Info(string)         {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Error(string, error) {}
