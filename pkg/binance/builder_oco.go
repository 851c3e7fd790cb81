package binance

import (
	"time"

	"binrest/pkg/core"
)

// OcoBuilder builds a one-cancels-the-other pair: a limit maker leg at
// price and a stop-loss leg triggered at stopPrice. WithStopLimitPrice
// turns the stop leg into a stop-loss-limit.
type OcoBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *OcoBuilder) WithRecvWindow(d time.Duration) *OcoBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithListClientOrderID sets the caller-chosen id of the order list.
func (b *OcoBuilder) WithListClientOrderID(id string) *OcoBuilder {
	b.update(setString(FieldListClientOrderID, id))
	return b
}

// WithLimitClientOrderID sets the client id of the limit leg.
func (b *OcoBuilder) WithLimitClientOrderID(id string) *OcoBuilder {
	b.update(setString(FieldLimitClientOrderID, id))
	return b
}

// WithStopClientOrderID sets the client id of the stop leg.
func (b *OcoBuilder) WithStopClientOrderID(id string) *OcoBuilder {
	b.update(setString(FieldStopClientOrderID, id))
	return b
}

// WithLimitIcebergQty sets the visible quantity of the limit leg.
func (b *OcoBuilder) WithLimitIcebergQty(qty float64) *OcoBuilder {
	b.update(setFloat(FieldLimitIcebergQty, qty))
	return b
}

// WithStopIcebergQty sets the visible quantity of the stop leg.
func (b *OcoBuilder) WithStopIcebergQty(qty float64) *OcoBuilder {
	b.update(setFloat(FieldStopIcebergQty, qty))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *OcoBuilder) WithNewOrderRespType(t core.OrderRespType) *OcoBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithStopLimitPrice consumes b and returns a pair whose stop leg rests
// as a limit order at price with the given time in force once triggered.
func (b *OcoBuilder) WithStopLimitPrice(price float64, tif core.TimeInForce) *StopLimitOcoBuilder {
	return &StopLimitOcoBuilder{b.upgrade(VariantStopLimit, func(p *Parameters) {
		p.SetFloat(FieldStopLimitPrice, price)
		p.SetEnum(FieldStopLimitTimeInForce, tif)
	})}
}

// StopLimitOcoBuilder is an OCO pair with a stop-limit leg.
type StopLimitOcoBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *StopLimitOcoBuilder) WithRecvWindow(d time.Duration) *StopLimitOcoBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithListClientOrderID sets the caller-chosen id of the order list.
func (b *StopLimitOcoBuilder) WithListClientOrderID(id string) *StopLimitOcoBuilder {
	b.update(setString(FieldListClientOrderID, id))
	return b
}

// WithLimitClientOrderID sets the client id of the limit leg.
func (b *StopLimitOcoBuilder) WithLimitClientOrderID(id string) *StopLimitOcoBuilder {
	b.update(setString(FieldLimitClientOrderID, id))
	return b
}

// WithStopClientOrderID sets the client id of the stop leg.
func (b *StopLimitOcoBuilder) WithStopClientOrderID(id string) *StopLimitOcoBuilder {
	b.update(setString(FieldStopClientOrderID, id))
	return b
}

// WithLimitIcebergQty sets the visible quantity of the limit leg.
func (b *StopLimitOcoBuilder) WithLimitIcebergQty(qty float64) *StopLimitOcoBuilder {
	b.update(setFloat(FieldLimitIcebergQty, qty))
	return b
}

// WithStopIcebergQty sets the visible quantity of the stop leg.
func (b *StopLimitOcoBuilder) WithStopIcebergQty(qty float64) *StopLimitOcoBuilder {
	b.update(setFloat(FieldStopIcebergQty, qty))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *StopLimitOcoBuilder) WithNewOrderRespType(t core.OrderRespType) *StopLimitOcoBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// CancelOcoBuilder cancels a whole order list.
type CancelOcoBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *CancelOcoBuilder) WithRecvWindow(d time.Duration) *CancelOcoBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the id of the cancellation.
func (b *CancelOcoBuilder) WithNewClientOrderID(id string) *CancelOcoBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// OcoStatusBuilder queries one order list.
type OcoStatusBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *OcoStatusBuilder) WithRecvWindow(d time.Duration) *OcoStatusBuilder {
	b.update(setRecvWindow(d))
	return b
}

// AllOcoBuilder pages through order list history.
type AllOcoBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *AllOcoBuilder) WithRecvWindow(d time.Duration) *AllOcoBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithFromID starts the listing at this id.
func (b *AllOcoBuilder) WithFromID(id int64) *AllOcoBuilder {
	b.update(setInt(FieldFromID, id))
	return b
}

// WithStartTime sets the inclusive lower time bound.
func (b *AllOcoBuilder) WithStartTime(t time.Time) *AllOcoBuilder {
	b.update(setTime(FieldStartTime, t))
	return b
}

// WithEndTime sets the inclusive upper time bound.
func (b *AllOcoBuilder) WithEndTime(t time.Time) *AllOcoBuilder {
	b.update(setTime(FieldEndTime, t))
	return b
}

// WithLimit sets the number of rows returned.
func (b *AllOcoBuilder) WithLimit(n int) *AllOcoBuilder {
	b.update(setInt(FieldLimit, int64(n)))
	return b
}

// OpenOcoBuilder lists open order lists.
type OpenOcoBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *OpenOcoBuilder) WithRecvWindow(d time.Duration) *OpenOcoBuilder {
	b.update(setRecvWindow(d))
	return b
}
