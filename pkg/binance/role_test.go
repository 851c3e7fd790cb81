package binance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/lxzan/gws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binrest/pkg/core"
)

func TestGeneralClient(t *testing.T) {
	server, got := newRecorder(t, http.StatusOK, `{"serverTime":1499827319559}`)

	client, err := ConnectGeneral(server.URL)
	require.NoError(t, err)
	defer client.Close()
	ctx := context.Background()

	require.NoError(t, client.Ping().JSON(ctx, nil))
	req := got.snapshot()
	assert.Equal(t, "/api/v3/ping", req.path)
	assert.Empty(t, req.query)
	assert.Empty(t, req.apiKey)

	st, err := Decode[ServerTime](ctx, client.ServerTime())
	require.NoError(t, err)
	assert.Equal(t, int64(1499827319559), st.ServerTime)

	require.NoError(t, client.ExchangeInfo().WithSymbol("BNBUSDT").JSON(ctx, nil))
	req = got.snapshot()
	assert.Equal(t, "/api/v3/exchangeInfo", req.path)
	assert.Equal(t, "symbol=BNBUSDT", req.query)
}

func TestMarketDataClient_Routes(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *MarketDataClient) Dispatcher
		path  string
		query string
	}{
		{"depth", func(c *MarketDataClient) Dispatcher {
			return c.Depth("BNBUSDT").WithLimit(100)
		}, "/api/v3/depth", "symbol=BNBUSDT&limit=100"},
		{"trades", func(c *MarketDataClient) Dispatcher {
			return c.Trades("BNBUSDT").WithLimit(5)
		}, "/api/v3/trades", "symbol=BNBUSDT&limit=5"},
		{"klines", func(c *MarketDataClient) Dispatcher {
			return c.Klines("BNBUSDT", core.Interval1h).WithStartTime(time.UnixMilli(1)).WithLimit(2)
		}, "/api/v3/klines", "symbol=BNBUSDT&interval=1h&startTime=1&limit=2"},
		{"average price", func(c *MarketDataClient) Dispatcher {
			return c.AveragePrice("BNBUSDT")
		}, "/api/v3/avgPrice", "symbol=BNBUSDT"},
		{"24hr all symbols", func(c *MarketDataClient) Dispatcher {
			return c.Ticker24hr()
		}, "/api/v3/ticker/24hr", ""},
		{"price", func(c *MarketDataClient) Dispatcher {
			return c.TickerPrice().WithSymbol("BTCUSDT")
		}, "/api/v3/ticker/price", "symbol=BTCUSDT"},
		{"book ticker", func(c *MarketDataClient) Dispatcher {
			return c.BookTicker().WithSymbol("BTCUSDT")
		}, "/api/v3/ticker/bookTicker", "symbol=BTCUSDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, got := newRecorder(t, http.StatusOK, `{}`)
			client, err := ConnectMarketData("", server.URL)
			require.NoError(t, err)
			defer client.Close()

			require.NoError(t, tt.build(client).JSON(context.Background(), nil))

			req := got.snapshot()
			assert.Equal(t, http.MethodGet, req.method)
			assert.Equal(t, tt.path, req.path)
			assert.Equal(t, tt.query, req.query)
			assert.Empty(t, req.apiKey)
		})
	}
}

func TestWithdrawalClient(t *testing.T) {
	server, got := newRecorder(t, http.StatusOK, `{"id":"7213fea8e94b4a5593d507237e5a555b"}`)

	client, err := ConnectWithdrawal(testAPIKey, testSecret, server.URL)
	require.NoError(t, err)
	defer client.Close()
	client.now = fixedClock
	ctx := context.Background()

	res, err := Decode[WithdrawResult](ctx, client.Withdraw("USDT", "TXYZ", 10.5).
		WithNetwork("TRX").
		WithName("cold wallet"))
	require.NoError(t, err)
	assert.Equal(t, "7213fea8e94b4a5593d507237e5a555b", res.ID)

	req := got.snapshot()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/sapi/v1/capital/withdraw/apply", req.path)
	payload, sig := splitSignature(t, req.query)
	assert.Equal(t, "coin=USDT&address=TXYZ&amount=10.5&network=TRX&name=cold+wallet&timestamp=1499827319559", payload)
	assert.Equal(t, Sign([]byte(testSecret), []byte(payload)), sig)

	require.NoError(t, client.DepositHistory().WithCoin("BTC").WithStatus(1).JSON(ctx, nil))
	assert.Equal(t, "/sapi/v1/capital/deposit/hisrec", got.snapshot().path)

	require.NoError(t, client.WithdrawHistory().WithLimit(50).JSON(ctx, nil))
	assert.Equal(t, "/sapi/v1/capital/withdraw/history", got.snapshot().path)

	require.NoError(t, client.DepositAddress("BTC").WithNetwork("BTC").JSON(ctx, nil))
	req = got.snapshot()
	assert.Equal(t, "/sapi/v1/capital/deposit/address", req.path)
	payload, _ = splitSignature(t, req.query)
	assert.Equal(t, "coin=BTC&network=BTC&timestamp=1499827319559", payload)
}

func TestUserDataClient_ListenKey(t *testing.T) {
	server, got := newRecorder(t, http.StatusOK, `{"listenKey":"pqia91ma19a5s61cv6a81va65sdf19v8a65a1a5s61cv6a81va65sdf19v8a65a1"}`)

	client, err := ConnectUserData(testAPIKey, server.URL)
	require.NoError(t, err)
	defer client.Close()
	ctx := context.Background()

	key, err := Decode[ListenKey](ctx, client.StartUserDataStream())
	require.NoError(t, err)
	assert.Len(t, key.ListenKey, 64)

	req := got.snapshot()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/v3/userDataStream", req.path)
	assert.Empty(t, req.query)
	assert.Equal(t, testAPIKey, req.apiKey)

	require.NoError(t, client.KeepAliveUserDataStream(key.ListenKey).JSON(ctx, nil))
	req = got.snapshot()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "listenKey="+key.ListenKey, req.query)

	require.NoError(t, client.CloseUserDataStream(key.ListenKey).JSON(ctx, nil))
	assert.Equal(t, http.MethodDelete, got.snapshot().method)
}

type eventServer struct {
	gws.BuiltinEventHandler
	events []string
}

func (s *eventServer) OnOpen(socket *gws.Conn) {
	for _, e := range s.events {
		_ = socket.WriteMessage(gws.OpcodeText, []byte(e))
	}
	_ = socket.WriteClose(1000, nil)
}

func newEventServer(t *testing.T, events ...string) (*httptest.Server, func() string) {
	t.Helper()

	var (
		mu   sync.Mutex
		path string
	)
	upgrader := gws.NewUpgrader(&eventServer{events: events}, &gws.ServerOption{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		path = r.URL.Path
		mu.Unlock()

		socket, err := upgrader.Upgrade(w, r)
		if err != nil {
			return
		}
		go socket.ReadLoop()
	}))
	t.Cleanup(server.Close)

	return server, func() string {
		mu.Lock()
		defer mu.Unlock()
		return path
	}
}

func TestUserDataClient_Stream(t *testing.T) {
	server, path := newEventServer(t,
		`{"e":"outboundAccountPosition","E":1564034571105}`,
		`{"e":"executionReport","E":1499405658658,"s":"BNBUSDT"}`,
	)

	client, err := ConnectUserData(testAPIKey, server.URL)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var types []string
	err = client.Stream(ctx, "listen-key", func(event []byte) error {
		name, err := EventType(event)
		if err != nil {
			return err
		}
		types = append(types, name)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "/ws/listen-key", path())
	assert.Equal(t, []string{"outboundAccountPosition", "executionReport"}, types)
}

func TestUserDataClient_StreamHandlerError(t *testing.T) {
	server, _ := newEventServer(t, `{"e":"executionReport"}`, `{"e":"executionReport"}`)

	client, err := ConnectUserData(testAPIKey, server.URL)
	require.NoError(t, err)
	defer client.Close()

	stop := errors.New("stop")
	calls := 0
	err = client.Stream(context.Background(), "listen-key", func([]byte) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestUserDataClient_StreamEmptyKey(t *testing.T) {
	client, err := ConnectUserData(testAPIKey, BinanceURL)
	require.NoError(t, err)
	defer client.Close()

	err = client.Stream(context.Background(), "", func([]byte) error { return nil })
	assert.True(t, core.IsParameterOutOfRange(err))
}

func TestUserDataClient_StreamDialFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client, err := ConnectUserData(testAPIKey, server.URL)
	require.NoError(t, err)
	defer client.Close()

	err = client.Stream(context.Background(), "listen-key", func([]byte) error { return nil })
	assert.True(t, core.IsTransportError(err))
}

func TestEventType(t *testing.T) {
	name, err := EventType([]byte(`{"e":"balanceUpdate","E":1573200697110}`))
	require.NoError(t, err)
	assert.Equal(t, "balanceUpdate", name)

	_, err = EventType([]byte(`{"E":1}`))
	assert.True(t, core.IsDecodeError(err))

	_, err = EventType([]byte(`not json`))
	assert.True(t, core.IsDecodeError(err))
}
