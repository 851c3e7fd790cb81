package binance

import "time"

// OrderStatusBuilder queries one order.
type OrderStatusBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *OrderStatusBuilder) WithRecvWindow(d time.Duration) *OrderStatusBuilder {
	b.update(setRecvWindow(d))
	return b
}

// CancelOrderBuilder cancels one order.
type CancelOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *CancelOrderBuilder) WithRecvWindow(d time.Duration) *CancelOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID names the cancellation itself.
func (b *CancelOrderBuilder) WithNewClientOrderID(id string) *CancelOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// OpenOrdersBuilder lists open orders, for every symbol unless narrowed.
type OpenOrdersBuilder struct {
	*request
}

// WithSymbol narrows the request to one symbol.
func (b *OpenOrdersBuilder) WithSymbol(symbol string) *OpenOrdersBuilder {
	b.update(setString(FieldSymbol, symbol))
	return b
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *OpenOrdersBuilder) WithRecvWindow(d time.Duration) *OpenOrdersBuilder {
	b.update(setRecvWindow(d))
	return b
}

// AllOrdersBuilder pages through the order history of one symbol, either
// from an order id or within a time window.
type AllOrdersBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *AllOrdersBuilder) WithRecvWindow(d time.Duration) *AllOrdersBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithOrderID starts the page at id. It cannot be combined with a time window.
func (b *AllOrdersBuilder) WithOrderID(id int64) *AllOrdersBuilder {
	b.update(setInt(FieldOrderID, id))
	return b
}

// WithStartTime sets the inclusive lower time bound.
func (b *AllOrdersBuilder) WithStartTime(t time.Time) *AllOrdersBuilder {
	b.update(setTime(FieldStartTime, t))
	return b
}

// WithEndTime sets the inclusive upper time bound.
func (b *AllOrdersBuilder) WithEndTime(t time.Time) *AllOrdersBuilder {
	b.update(setTime(FieldEndTime, t))
	return b
}

// WithLimit sets the page size, 1 to 1000.
func (b *AllOrdersBuilder) WithLimit(n int) *AllOrdersBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// CancelAllOrdersBuilder cancels every open order on one symbol.
type CancelAllOrdersBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *CancelAllOrdersBuilder) WithRecvWindow(d time.Duration) *CancelAllOrdersBuilder {
	b.update(setRecvWindow(d))
	return b
}

// AccountBuilder reads balances and permissions.
type AccountBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *AccountBuilder) WithRecvWindow(d time.Duration) *AccountBuilder {
	b.update(setRecvWindow(d))
	return b
}

// AccountTradesBuilder pages through the account's fills on one symbol.
type AccountTradesBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *AccountTradesBuilder) WithRecvWindow(d time.Duration) *AccountTradesBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithFromID starts the page at trade id. It cannot be combined with a time window.
func (b *AccountTradesBuilder) WithFromID(id int64) *AccountTradesBuilder {
	b.update(setInt(FieldFromID, id))
	return b
}

// WithStartTime sets the inclusive lower time bound.
func (b *AccountTradesBuilder) WithStartTime(t time.Time) *AccountTradesBuilder {
	b.update(setTime(FieldStartTime, t))
	return b
}

// WithEndTime sets the inclusive upper time bound.
func (b *AccountTradesBuilder) WithEndTime(t time.Time) *AccountTradesBuilder {
	b.update(setTime(FieldEndTime, t))
	return b
}

// WithLimit sets the number of rows returned.
func (b *AccountTradesBuilder) WithLimit(n int) *AccountTradesBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}
