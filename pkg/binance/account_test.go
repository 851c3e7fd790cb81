package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binrest/pkg/core"
)

const (
	testAPIKey = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	testSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	testMillis = int64(1499827319559)
)

func fixedClock() time.Time {
	return time.UnixMilli(testMillis)
}

type captured struct {
	mu     sync.Mutex
	method string
	path   string
	query  string
	apiKey string
	calls  int
}

func (c *captured) snapshot() captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return captured{method: c.method, path: c.path, query: c.query, apiKey: c.apiKey, calls: c.calls}
}

// newRecorder starts a server answering every request with status and body.
func newRecorder(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()

	got := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.mu.Lock()
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.apiKey = r.Header.Get(APIKeyHeader)
		got.calls++
		got.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, got
}

func newAccountClient(t *testing.T, status int, body string) (*AccountClient, *captured) {
	t.Helper()

	server, got := newRecorder(t, status, body)
	client, err := Connect(testAPIKey, testSecret, server.URL)
	require.NoError(t, err)
	client.now = fixedClock
	t.Cleanup(func() { _ = client.Close() })
	return client, got
}

// splitSignature returns the signed payload and the signature of a query.
func splitSignature(t *testing.T, query string) (string, string) {
	t.Helper()
	i := strings.LastIndex(query, "&signature=")
	require.GreaterOrEqual(t, i, 0, "query has no signature: %s", query)
	return query[:i], query[i+len("&signature="):]
}

func TestPlaceLimitOrder_TestEndpoint(t *testing.T) {
	client, got := newAccountClient(t, http.StatusOK, `{}`)

	err := client.PlaceLimitOrder("BNBUSDT", core.SideSell, 20.00, 5.00, false).JSON(context.Background(), nil)
	require.NoError(t, err)

	req := got.snapshot()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/v3/order/test", req.path)
	assert.Equal(t, testAPIKey, req.apiKey)

	payload, sig := splitSignature(t, req.query)
	assert.Equal(t,
		"symbol=BNBUSDT&side=SELL&type=LIMIT&price=20&quantity=5&timeInForce=GTC&timestamp=1499827319559",
		payload)
	assert.Equal(t, Sign([]byte(testSecret), []byte(payload)), sig)
	assert.True(t, strings.HasSuffix(req.query, "&signature="+sig), "signature must be the last parameter")
}

func TestPlaceLimitOrder_Execute(t *testing.T) {
	client, got := newAccountClient(t, http.StatusOK, `{"orderId":28}`)

	type ack struct {
		OrderID int64 `json:"orderId"`
	}
	resp, err := Decode[ack](context.Background(), client.PlaceLimitOrder("BNBUSDT", core.SideBuy, 1.5, 2, true).
		WithNewClientOrderID("my-order").
		WithRecvWindow(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(28), resp.OrderID)

	req := got.snapshot()
	assert.Equal(t, "/api/v3/order", req.path)
	payload, _ := splitSignature(t, req.query)
	assert.Equal(t,
		"symbol=BNBUSDT&side=BUY&type=LIMIT&price=1.5&quantity=2&timeInForce=GTC&newClientOrderId=my-order&recvWindow=5000&timestamp=1499827319559",
		payload)
}

func TestPlaceMarketOrders(t *testing.T) {
	client, got := newAccountClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	require.NoError(t, client.PlaceMarketOrder("BTCUSDT", core.SideBuy, 0.01, false).JSON(ctx, nil))
	payload, _ := splitSignature(t, got.snapshot().query)
	assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.01&timestamp=1499827319559", payload)

	require.NoError(t, client.PlaceQuoteMarketOrder("BTCUSDT", core.SideSell, 100, false).JSON(ctx, nil))
	payload, _ = splitSignature(t, got.snapshot().query)
	assert.Equal(t, "symbol=BTCUSDT&side=SELL&type=MARKET&quoteOrderQty=100&timestamp=1499827319559", payload)
}

func TestGetOrder_IDDisambiguation(t *testing.T) {
	client, got := newAccountClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	require.NoError(t, client.GetOrder("BNBUSDT", ClientOrderID("abc")).JSON(ctx, nil))
	req := got.snapshot()
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/api/v3/order", req.path)
	assert.Contains(t, req.query, "origClientOrderId=abc")
	assert.NotContains(t, req.query, "orderId=")

	require.NoError(t, client.GetOrder("BNBUSDT", OrderID(5)).JSON(ctx, nil))
	req = got.snapshot()
	assert.Contains(t, req.query, "&orderId=5&")
	assert.NotContains(t, req.query, "origClientOrderId")
}

func TestCancelOrder(t *testing.T) {
	client, got := newAccountClient(t, http.StatusOK, `{}`)

	err := client.CancelOrder("BNBUSDT", OrderID(7)).
		WithNewClientOrderID("cancel-7").
		JSON(context.Background(), nil)
	require.NoError(t, err)

	req := got.snapshot()
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/api/v3/order", req.path)
	payload, _ := splitSignature(t, req.query)
	assert.Equal(t, "symbol=BNBUSDT&orderId=7&newClientOrderId=cancel-7&timestamp=1499827319559", payload)
}

func TestCancelAllOrders_NothingToCancel(t *testing.T) {
	client, got := newAccountClient(t, http.StatusBadRequest, `{"code":-2011,"msg":"Unknown order sent."}`)

	resp, err := client.CancelAllOrders("BNBUSDT").Send(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsAPIError(err))
	assert.False(t, core.IsTransportError(err))
	assert.True(t, core.IsErrorCode(err, core.ErrCodeCancelRejected))

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, -2011, apiErr.Code)
	assert.Equal(t, "Unknown order sent.", apiErr.Message)

	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := got.snapshot()
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/api/v3/openOrders", req.path)
}

func TestAPIError_WithoutEnvelope(t *testing.T) {
	client, _ := newAccountClient(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	err := client.GetAccount().JSON(context.Background(), nil)

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, 0, apiErr.Code)
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Message)
}

func TestDecodeError(t *testing.T) {
	client, _ := newAccountClient(t, http.StatusOK, `not json`)

	var out map[string]any
	err := client.GetAccount().JSON(context.Background(), &out)
	require.Error(t, err)
	assert.True(t, core.IsDecodeError(err))
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := Connect(testAPIKey, testSecret, url, WithTimeout(time.Second))
	require.NoError(t, err)
	defer client.Close()

	err = client.GetAccount().JSON(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, core.IsTransportError(err))
	assert.False(t, core.IsAPIError(err))
}

func TestEndpoints_Routes(t *testing.T) {
	tests := []struct {
		name   string
		build  func(c *AccountClient) Dispatcher
		method string
		path   string
		params string
	}{
		{"open orders", func(c *AccountClient) Dispatcher {
			return c.GetOpenOrders().WithSymbol("BNBUSDT")
		}, http.MethodGet, "/api/v3/openOrders", "symbol=BNBUSDT"},
		{"all orders", func(c *AccountClient) Dispatcher {
			return c.GetAllOrders("BNBUSDT").WithOrderID(10).WithLimit(500)
		}, http.MethodGet, "/api/v3/allOrders", "symbol=BNBUSDT&orderId=10&limit=500"},
		{"oco", func(c *AccountClient) Dispatcher {
			return c.PlaceOcoOrder("BNBUSDT", core.SideSell, 25, 18, 1).WithListClientOrderID("list-1")
		}, http.MethodPost, "/api/v3/order/oco", "symbol=BNBUSDT&side=SELL&price=25&stopPrice=18&quantity=1&listClientOrderId=list-1"},
		{"cancel oco by list id", func(c *AccountClient) Dispatcher {
			return c.CancelOcoOrder("BNBUSDT", OrderID(3))
		}, http.MethodDelete, "/api/v3/orderList", "symbol=BNBUSDT&orderListId=3"},
		{"cancel oco by client id", func(c *AccountClient) Dispatcher {
			return c.CancelOcoOrder("BNBUSDT", ClientOrderID("list-1"))
		}, http.MethodDelete, "/api/v3/orderList", "symbol=BNBUSDT&listClientOrderId=list-1"},
		{"oco status", func(c *AccountClient) Dispatcher {
			return c.GetOcoOrder(ClientOrderID("list-1"))
		}, http.MethodGet, "/api/v3/orderList", "origClientOrderId=list-1"},
		{"all oco", func(c *AccountClient) Dispatcher {
			return c.GetAllOcoOrders().WithFromID(9).WithLimit(10)
		}, http.MethodGet, "/api/v3/allOrderList", "fromId=9&limit=10"},
		{"open oco", func(c *AccountClient) Dispatcher {
			return c.GetOpenOcoOrders()
		}, http.MethodGet, "/api/v3/openOrderList", ""},
		{"account", func(c *AccountClient) Dispatcher {
			return c.GetAccount().WithRecvWindow(10 * time.Second)
		}, http.MethodGet, "/api/v3/account", "recvWindow=10000"},
		{"account trades", func(c *AccountClient) Dispatcher {
			return c.GetAccountTrades("BNBUSDT").
				WithStartTime(time.UnixMilli(1000)).
				WithEndTime(time.UnixMilli(2000))
		}, http.MethodGet, "/api/v3/myTrades", "symbol=BNBUSDT&startTime=1000&endTime=2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, got := newAccountClient(t, http.StatusOK, `{}`)

			require.NoError(t, tt.build(client).JSON(context.Background(), nil))

			req := got.snapshot()
			assert.Equal(t, tt.method, req.method)
			assert.Equal(t, tt.path, req.path)

			payload, sig := splitSignature(t, req.query)
			want := "timestamp=1499827319559"
			if tt.params != "" {
				want = tt.params + "&" + want
			}
			assert.Equal(t, want, payload)
			assert.Equal(t, Sign([]byte(testSecret), []byte(payload)), sig)
		})
	}
}
