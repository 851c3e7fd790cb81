package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binrest/pkg/core"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client := NewClient(core.DefaultConfig(server.URL), zerolog.Nop())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(core.DefaultConfig("https://api.binance.com"), zerolog.Nop())

	assert.NotNil(t, client)
	assert.Nil(t, client.Limiter())

	paced := NewClient(core.DefaultConfig("https://api.binance.com").WithRateLimit(10, time.Second), zerolog.Nop())
	assert.NotNil(t, paced.Limiter())
}

func TestClient_QueryIsSentVerbatim(t *testing.T) {
	var rawQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/allOrders", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-MBX-APIKEY"))
		rawQuery.Store(r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	req := core.NewRequest(http.MethodGet, server.URL+"/api/v3/allOrders").
		SetQuery("symbol=BNBUSDT&limit=5&newClientOrderId=a+b%26c&signature=ff").
		SetHeader("X-MBX-APIKEY", "key")

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
	assert.Equal(t, "symbol=BNBUSDT&limit=5&newClientOrderId=a+b%26c&signature=ff", rawQuery.Load())

	var body map[string]string
	require.NoError(t, resp.Unmarshal(&body))
	assert.Equal(t, "success", body["result"])
}

func TestClient_Methods(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			client := newTestClient(t, server)
			resp, err := client.Do(context.Background(), core.NewRequest(method, server.URL+"/x"))

			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
		})
	}
}

func TestClient_UnsupportedMethod(t *testing.T) {
	client := NewClient(core.DefaultConfig("https://api.binance.com"), zerolog.Nop())

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodPatch, "https://api.binance.com/x"))
	assert.Error(t, err)
}

func TestClient_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, server.URL))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, resp.IsError())
	assert.False(t, resp.IsSuccess())
	assert.JSONEq(t, `{"code":-1121,"msg":"Invalid symbol."}`, string(resp.Body))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig(server.URL).WithTimeout(20*time.Millisecond), zerolog.Nop())
	defer client.Close()

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, server.URL))
	require.Error(t, err)
	assert.True(t, core.IsTransportError(err))
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, core.NewRequest(http.MethodGet, server.URL))
	require.Error(t, err)
	assert.True(t, core.IsTransportError(err))
}

func TestClient_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, server.URL))

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Paced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config := core.DefaultConfig(server.URL).WithRateLimit(1, time.Hour)
	client := NewClient(config, zerolog.Nop())
	defer client.Close()

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Do(ctx, core.NewRequest(http.MethodGet, server.URL))
	assert.True(t, core.IsTransportError(err))

	m := client.Limiter().Metrics()
	assert.Equal(t, int64(1), m.Passed)
}

func TestClient_Closed(t *testing.T) {
	client := NewClient(core.DefaultConfig("https://api.binance.com"), zerolog.Nop())
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, "https://api.binance.com"))
	assert.ErrorIs(t, err, core.ErrClientClosed)
}
