package binance

import "binrest/pkg/core"

const (
	pathDepth            = "/api/v3/depth"
	pathTrades           = "/api/v3/trades"
	pathHistoricalTrades = "/api/v3/historicalTrades"
	pathKlines           = "/api/v3/klines"
	pathAvgPrice         = "/api/v3/avgPrice"
	pathTicker24hr       = "/api/v3/ticker/24hr"
	pathTickerPrice      = "/api/v3/ticker/price"
	pathBookTicker       = "/api/v3/ticker/bookTicker"
)

// Market data bodies are returned as the exchange sends them. Decode into
// json.RawMessage, a map, or a caller-defined struct.

// Depth reads the order book of symbol.
func (c *MarketDataClient) Depth(symbol string) *DepthBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &DepthBuilder{c.get(pathDepth, VariantDepth, p)}
}

// Trades lists the most recent trades of symbol.
func (c *MarketDataClient) Trades(symbol string) *TradesBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &TradesBuilder{c.get(pathTrades, VariantTrades, p)}
}

// HistoricalTrades sends the API key; without one the exchange answers 401.
func (c *MarketDataClient) HistoricalTrades(symbol string) *HistoricalTradesBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &HistoricalTradesBuilder{c.get(pathHistoricalTrades, VariantHistoricalTrades, p)}
}

// Klines reads candlesticks of symbol at interval.
func (c *MarketDataClient) Klines(symbol string, interval core.Interval) *KlinesBuilder {
	p := NewParameters().
		SetString(FieldSymbol, symbol).
		SetEnum(FieldInterval, interval)
	return &KlinesBuilder{c.get(pathKlines, VariantKlines, p)}
}

// AveragePrice reads the current average price of symbol.
func (c *MarketDataClient) AveragePrice(symbol string) *TickerBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &TickerBuilder{c.get(pathAvgPrice, VariantTicker, p)}
}

// Ticker24hr reads rolling 24 hour statistics.
func (c *MarketDataClient) Ticker24hr() *TickerBuilder {
	return &TickerBuilder{c.get(pathTicker24hr, VariantTicker, nil)}
}

// TickerPrice reads the last price.
func (c *MarketDataClient) TickerPrice() *TickerBuilder {
	return &TickerBuilder{c.get(pathTickerPrice, VariantTicker, nil)}
}

// BookTicker reads the best bid and ask.
func (c *MarketDataClient) BookTicker() *TickerBuilder {
	return &TickerBuilder{c.get(pathBookTicker, VariantTicker, nil)}
}
