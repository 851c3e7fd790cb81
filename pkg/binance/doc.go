// Package binance is a typed, signed REST client for the Binance spot API.
// It works against api.binance.com, api.binance.us and the spot testnet.
//
// Every endpoint method returns a builder for one request shape. Optional
// parameters are set with With* methods that exist only where the exchange
// accepts them. Some of them turn the builder into a different shape: a
// limit order given a trigger price becomes a stop-loss-limit order, and
// the limit builder it came from is used up.
//
// The package includes:
//   - AccountClient: orders, OCO order lists, account and trades (signed)
//   - MarketDataClient: order book, trades, klines and tickers (raw JSON)
//   - GeneralClient: ping, server time and exchange info
//   - UserDataClient: listen keys and the user data websocket
//   - WithdrawalClient: withdrawals, capital history and deposit addresses
//
// Dispatch stamps the timestamp, encodes the parameters in the order they
// were set, appends the HMAC-SHA256 signature and sends the request.
//
// Example usage:
//
//	client, err := binance.Connect(apiKey, secretKey, binance.BinanceURL)
//	if err != nil {
//		return err
//	}
//	order, err := binance.Decode[map[string]any](ctx, client.
//		PlaceLimitOrder("BNBUSDT", core.SideSell, 20, 5, false).
//		WithRecvWindow(5*time.Second))
package binance
