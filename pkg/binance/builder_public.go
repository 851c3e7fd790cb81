package binance

import "time"

// GeneralBuilder is a parameterless public call.
type GeneralBuilder struct {
	*request
}

// ExchangeInfoBuilder reads trading rules, for one symbol when narrowed.
type ExchangeInfoBuilder struct {
	*request
}

// WithSymbol narrows the request to one symbol.
func (b *ExchangeInfoBuilder) WithSymbol(symbol string) *ExchangeInfoBuilder {
	b.update(setString(FieldSymbol, symbol))
	return b
}

// DepthBuilder reads the order book.
type DepthBuilder struct {
	*request
}

// WithLimit sets the book depth, 1 to 5000.
func (b *DepthBuilder) WithLimit(n int) *DepthBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// TradesBuilder reads recent trades.
type TradesBuilder struct {
	*request
}

// WithLimit sets the number of rows returned.
func (b *TradesBuilder) WithLimit(n int) *TradesBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// HistoricalTradesBuilder reads older trades. It needs an API key.
type HistoricalTradesBuilder struct {
	*request
}

// WithLimit sets the number of rows returned.
func (b *HistoricalTradesBuilder) WithLimit(n int) *HistoricalTradesBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// WithFromID starts the listing at this id.
func (b *HistoricalTradesBuilder) WithFromID(id int64) *HistoricalTradesBuilder {
	b.update(setInt(FieldFromID, id))
	return b
}

// KlinesBuilder reads candlesticks.
type KlinesBuilder struct {
	*request
}

// WithStartTime sets the inclusive lower time bound.
func (b *KlinesBuilder) WithStartTime(t time.Time) *KlinesBuilder {
	b.update(setTime(FieldStartTime, t))
	return b
}

// WithEndTime sets the inclusive upper time bound.
func (b *KlinesBuilder) WithEndTime(t time.Time) *KlinesBuilder {
	b.update(setTime(FieldEndTime, t))
	return b
}

// WithLimit sets the number of rows returned.
func (b *KlinesBuilder) WithLimit(n int) *KlinesBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// TickerBuilder reads one of the ticker endpoints, for every symbol
// unless narrowed.
type TickerBuilder struct {
	*request
}

// WithSymbol narrows the request to one symbol.
func (b *TickerBuilder) WithSymbol(symbol string) *TickerBuilder {
	b.update(setString(FieldSymbol, symbol))
	return b
}

// UserDataStreamBuilder creates, extends or closes a listen key.
type UserDataStreamBuilder struct {
	*request
}

// WithdrawBuilder submits a withdrawal.
type WithdrawBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *WithdrawBuilder) WithRecvWindow(d time.Duration) *WithdrawBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNetwork picks the chain; the coin's default network otherwise.
func (b *WithdrawBuilder) WithNetwork(network string) *WithdrawBuilder {
	b.update(setString(FieldNetwork, network))
	return b
}

// WithAddressTag sets the memo or tag some networks require.
func (b *WithdrawBuilder) WithAddressTag(tag string) *WithdrawBuilder {
	b.update(setString(FieldAddressTag, tag))
	return b
}

// WithName labels the withdrawal address.
func (b *WithdrawBuilder) WithName(name string) *WithdrawBuilder {
	b.update(setString(FieldName, name))
	return b
}

// CapitalHistoryBuilder pages through deposits or withdrawals.
type CapitalHistoryBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *CapitalHistoryBuilder) WithRecvWindow(d time.Duration) *CapitalHistoryBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithCoin narrows the history to one coin.
func (b *CapitalHistoryBuilder) WithCoin(coin string) *CapitalHistoryBuilder {
	b.update(setString(FieldCoin, coin))
	return b
}

// WithStatus filters by the exchange's numeric status code.
func (b *CapitalHistoryBuilder) WithStatus(status int) *CapitalHistoryBuilder {
	b.update(setInt(FieldStatus, int64(status)))
	return b
}

// WithStartTime sets the inclusive lower time bound.
func (b *CapitalHistoryBuilder) WithStartTime(t time.Time) *CapitalHistoryBuilder {
	b.update(setTime(FieldStartTime, t))
	return b
}

// WithEndTime sets the inclusive upper time bound.
func (b *CapitalHistoryBuilder) WithEndTime(t time.Time) *CapitalHistoryBuilder {
	b.update(setTime(FieldEndTime, t))
	return b
}

// WithLimit sets the number of rows returned.
func (b *CapitalHistoryBuilder) WithLimit(n int) *CapitalHistoryBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// DepositAddressBuilder reads the deposit address of a coin.
type DepositAddressBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *DepositAddressBuilder) WithRecvWindow(d time.Duration) *DepositAddressBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNetwork selects the transfer network instead of the coin default.
func (b *DepositAddressBuilder) WithNetwork(network string) *DepositAddressBuilder {
	b.update(setString(FieldNetwork, network))
	return b
}
