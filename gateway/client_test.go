package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayforpay/params"
)

func TestClientQuery(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"reasonCode":1100,"amount":10.50,"orderReference":"ord-1"}`))
	}))
	defer ts.Close()

	client := NewClient("acc", "key")
	client.SetEndpoint(ts.URL)
	client.SetHTTPClient(ts.Client())

	resp, err := client.Refund(context.Background(),
		params.F("orderReference", "ord-1"),
		params.F("amount", 10.5),
		params.F("currency", "UAH"),
		params.F("comment", "refund"),
		params.F("apiVersion", 1),
	)
	if err != nil {
		t.Fatalf("Refund() error = %v", err)
	}

	wantBody := `{"transactionType":"REFUND","merchantAccount":"acc","orderReference":"ord-1","amount":10.5,` +
		`"currency":"UAH","comment":"refund","apiVersion":1,"merchantSignature":"5425fb8d9fac96e208564089880a3f3c"}`
	if gotBody != wantBody {
		t.Errorf("body =\n%s\nwant\n%s", gotBody, wantBody)
	}
	if resp["reasonCode"] != json.Number("1100") {
		t.Errorf("reasonCode = %#v", resp["reasonCode"])
	}
	if resp["amount"] != json.Number("10.50") {
		t.Errorf("amount = %#v", resp["amount"])
	}
}

func TestClientQueryPassesErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"reason":"Invalid signature","reasonCode":1113}`))
	}))
	defer ts.Close()

	client := NewClient("acc", "key")
	client.SetEndpoint(ts.URL)

	resp, err := client.CheckStatus(context.Background(),
		params.F("orderReference", "new_order"),
		params.F("apiVersion", 1),
	)
	if err != nil {
		t.Fatalf("CheckStatus() error = %v", err)
	}
	if resp["reason"] != "Invalid signature" {
		t.Errorf("response = %v", resp)
	}
}

func TestClientQueryValidationError(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	client := NewClient("acc", "key")
	client.SetEndpoint(ts.URL)

	_, err := client.Settle(context.Background(), params.F("orderReference", "s1"))
	if !errors.Is(err, params.ErrRequired) {
		t.Errorf("error = %v, want required error", err)
	}
	if calls != 0 {
		t.Errorf("gateway called %d times", calls)
	}
}

func TestClientQueryBadResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer ts.Close()

	client := NewClient("acc", "key")
	client.SetEndpoint(ts.URL)

	_, err := client.Settle(context.Background(),
		params.F("orderReference", "s1"),
		params.F("amount", 100),
		params.F("currency", "UAH"),
		params.F("apiVersion", 1),
	)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClientQueryCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	client := NewClient("acc", "key")
	client.SetEndpoint(ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.CheckStatus(ctx, params.F("orderReference", "o"), params.F("apiVersion", 1))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
