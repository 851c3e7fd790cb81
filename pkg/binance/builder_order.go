package binance

import (
	"time"

	"binrest/pkg/core"
)

func setRecvWindow(d time.Duration) func(*Parameters) {
	return func(p *Parameters) { p.SetInt(FieldRecvWindow, d.Milliseconds()) }
}

func setString(f Field, v string) func(*Parameters) {
	return func(p *Parameters) { p.SetString(f, v) }
}

func setFloat(f Field, v float64) func(*Parameters) {
	return func(p *Parameters) { p.SetFloat(f, v) }
}

func setInt(f Field, v int64) func(*Parameters) {
	return func(p *Parameters) { p.SetInt(f, v) }
}

func setTime(f Field, t time.Time) func(*Parameters) {
	return func(p *Parameters) { p.SetTime(f, t) }
}

func setEnum(f Field, v interface{ String() string }) func(*Parameters) {
	return func(p *Parameters) { p.SetEnum(f, v) }
}

// setIceberg sets the visible quantity. Iceberg orders must rest GTC.
func setIceberg(qty float64, withTIF bool) func(*Parameters) {
	return func(p *Parameters) {
		p.SetFloat(FieldIcebergQty, qty)
		if withTIF {
			p.SetEnum(FieldTimeInForce, core.GTC)
		}
	}
}

// LimitOrderBuilder builds a LIMIT order. A trigger price turns it into a
// stop-loss-limit or take-profit-limit order; IntoLimitMakerOrder turns it
// into a post-only order. Only one of the three can be taken.
type LimitOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *LimitOrderBuilder) WithRecvWindow(d time.Duration) *LimitOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *LimitOrderBuilder) WithNewClientOrderID(id string) *LimitOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *LimitOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *LimitOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithTimeInForce replaces the default GTC. Anything but GTC is rejected
// at dispatch once an iceberg quantity is set.
func (b *LimitOrderBuilder) WithTimeInForce(tif core.TimeInForce) *LimitOrderBuilder {
	b.update(setEnum(FieldTimeInForce, tif))
	return b
}

// WithIcebergQty sets the visible quantity and forces timeInForce to GTC.
func (b *LimitOrderBuilder) WithIcebergQty(qty float64) *LimitOrderBuilder {
	b.update(setIceberg(qty, true))
	return b
}

// WithStopLossLimit consumes b and returns a STOP_LOSS_LIMIT order
// triggered at stopPrice.
func (b *LimitOrderBuilder) WithStopLossLimit(stopPrice float64) *StopLossLimitOrderBuilder {
	return &StopLossLimitOrderBuilder{b.upgrade(VariantStopLossLimit, func(p *Parameters) {
		p.SetEnum(FieldType, core.TypeStopLossLimit)
		p.SetFloat(FieldStopPrice, stopPrice)
	})}
}

// WithTakeProfitLimit consumes b and returns a TAKE_PROFIT_LIMIT order
// triggered at stopPrice.
func (b *LimitOrderBuilder) WithTakeProfitLimit(stopPrice float64) *TakeProfitLimitOrderBuilder {
	return &TakeProfitLimitOrderBuilder{b.upgrade(VariantTakeProfitLimit, func(p *Parameters) {
		p.SetEnum(FieldType, core.TypeTakeProfitLimit)
		p.SetFloat(FieldStopPrice, stopPrice)
	})}
}

// IntoLimitMakerOrder consumes b and returns a LIMIT_MAKER order. The
// exchange refuses timeInForce on that type, so it is dropped.
func (b *LimitOrderBuilder) IntoLimitMakerOrder() *LimitMakerOrderBuilder {
	return &LimitMakerOrderBuilder{b.upgrade(VariantLimitMaker, func(p *Parameters) {
		p.SetEnum(FieldType, core.TypeLimitMaker)
		p.Unset(FieldTimeInForce)
	})}
}

// StopLossLimitOrderBuilder builds a STOP_LOSS_LIMIT order.
type StopLossLimitOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *StopLossLimitOrderBuilder) WithRecvWindow(d time.Duration) *StopLossLimitOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *StopLossLimitOrderBuilder) WithNewClientOrderID(id string) *StopLossLimitOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *StopLossLimitOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *StopLossLimitOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithTimeInForce sets the time in force. Iceberg orders only accept GTC.
func (b *StopLossLimitOrderBuilder) WithTimeInForce(tif core.TimeInForce) *StopLossLimitOrderBuilder {
	b.update(setEnum(FieldTimeInForce, tif))
	return b
}

// WithIcebergQty sets the visible quantity and forces GTC.
func (b *StopLossLimitOrderBuilder) WithIcebergQty(qty float64) *StopLossLimitOrderBuilder {
	b.update(setIceberg(qty, true))
	return b
}

// TakeProfitLimitOrderBuilder builds a TAKE_PROFIT_LIMIT order.
type TakeProfitLimitOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *TakeProfitLimitOrderBuilder) WithRecvWindow(d time.Duration) *TakeProfitLimitOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *TakeProfitLimitOrderBuilder) WithNewClientOrderID(id string) *TakeProfitLimitOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *TakeProfitLimitOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *TakeProfitLimitOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithTimeInForce sets the time in force. Iceberg orders only accept GTC.
func (b *TakeProfitLimitOrderBuilder) WithTimeInForce(tif core.TimeInForce) *TakeProfitLimitOrderBuilder {
	b.update(setEnum(FieldTimeInForce, tif))
	return b
}

// WithIcebergQty sets the visible quantity and forces GTC.
func (b *TakeProfitLimitOrderBuilder) WithIcebergQty(qty float64) *TakeProfitLimitOrderBuilder {
	b.update(setIceberg(qty, true))
	return b
}

// LimitMakerOrderBuilder builds a LIMIT_MAKER order. It carries no
// timeInForce.
type LimitMakerOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *LimitMakerOrderBuilder) WithRecvWindow(d time.Duration) *LimitMakerOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *LimitMakerOrderBuilder) WithNewClientOrderID(id string) *LimitMakerOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *LimitMakerOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *LimitMakerOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithIcebergQty sets the visible quantity and forces GTC.
func (b *LimitMakerOrderBuilder) WithIcebergQty(qty float64) *LimitMakerOrderBuilder {
	b.update(setIceberg(qty, false))
	return b
}

// MarketOrderBuilder builds a MARKET order sized in base quantity. A
// trigger price turns it into a STOP_LOSS or TAKE_PROFIT order.
type MarketOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *MarketOrderBuilder) WithRecvWindow(d time.Duration) *MarketOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *MarketOrderBuilder) WithNewClientOrderID(id string) *MarketOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *MarketOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *MarketOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// WithStopLoss consumes b and returns a STOP_LOSS order triggered at stopPrice.
func (b *MarketOrderBuilder) WithStopLoss(stopPrice float64) *StopLossOrderBuilder {
	return &StopLossOrderBuilder{b.upgrade(VariantStopLoss, func(p *Parameters) {
		p.SetEnum(FieldType, core.TypeStopLoss)
		p.SetFloat(FieldStopPrice, stopPrice)
	})}
}

// WithTakeProfit consumes b and returns a TAKE_PROFIT order triggered at stopPrice.
func (b *MarketOrderBuilder) WithTakeProfit(stopPrice float64) *TakeProfitOrderBuilder {
	return &TakeProfitOrderBuilder{b.upgrade(VariantTakeProfit, func(p *Parameters) {
		p.SetEnum(FieldType, core.TypeTakeProfit)
		p.SetFloat(FieldStopPrice, stopPrice)
	})}
}

// QuoteMarketOrderBuilder builds a MARKET order sized in quote asset.
// Trigger orders need a base quantity, so it has no upgrades.
type QuoteMarketOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *QuoteMarketOrderBuilder) WithRecvWindow(d time.Duration) *QuoteMarketOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *QuoteMarketOrderBuilder) WithNewClientOrderID(id string) *QuoteMarketOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *QuoteMarketOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *QuoteMarketOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// StopLossOrderBuilder builds a STOP_LOSS order.
type StopLossOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *StopLossOrderBuilder) WithRecvWindow(d time.Duration) *StopLossOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *StopLossOrderBuilder) WithNewClientOrderID(id string) *StopLossOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *StopLossOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *StopLossOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}

// TakeProfitOrderBuilder builds a TAKE_PROFIT order.
type TakeProfitOrderBuilder struct {
	*request
}

// WithRecvWindow sets how long after its timestamp the request stays valid, up to 60s.
func (b *TakeProfitOrderBuilder) WithRecvWindow(d time.Duration) *TakeProfitOrderBuilder {
	b.update(setRecvWindow(d))
	return b
}

// WithNewClientOrderID sets the caller-chosen order id.
func (b *TakeProfitOrderBuilder) WithNewClientOrderID(id string) *TakeProfitOrderBuilder {
	b.update(setString(FieldNewClientOrderID, id))
	return b
}

// WithNewOrderRespType selects ACK, RESULT or FULL acknowledgement.
func (b *TakeProfitOrderBuilder) WithNewOrderRespType(t core.OrderRespType) *TakeProfitOrderBuilder {
	b.update(setEnum(FieldNewOrderRespType, t))
	return b
}
