package binance

import (
	"net/http"

	"binrest/pkg/core"
)

const (
	pathOrder        = "/api/v3/order"
	pathOrderTest    = "/api/v3/order/test"
	pathOpenOrders   = "/api/v3/openOrders"
	pathAllOrders    = "/api/v3/allOrders"
	pathOco          = "/api/v3/order/oco"
	pathOrderList    = "/api/v3/orderList"
	pathAllOrderList = "/api/v3/allOrderList"
	pathOpenOrderLst = "/api/v3/openOrderList"
	pathAccount      = "/api/v3/account"
	pathMyTrades     = "/api/v3/myTrades"
)

// orderPath picks the live or the validation-only order endpoint.
func orderPath(execute bool) string {
	if execute {
		return pathOrder
	}
	return pathOrderTest
}

// PlaceLimitOrder builds a GTC limit order. With execute false it goes to
// the test endpoint, which validates and signs but places nothing.
func (c *AccountClient) PlaceLimitOrder(symbol string, side core.OrderSide, price, qty float64, execute bool) *LimitOrderBuilder {
	p := NewParameters().
		SetString(FieldSymbol, symbol).
		SetEnum(FieldSide, side).
		SetEnum(FieldType, core.TypeLimit).
		SetFloat(FieldPrice, price).
		SetFloat(FieldQuantity, qty).
		SetEnum(FieldTimeInForce, core.GTC)
	return &LimitOrderBuilder{c.newRequest(http.MethodPost, orderPath(execute), VariantLimit, p)}
}

// PlaceMarketOrder builds a market order for qty of the base asset.
func (c *AccountClient) PlaceMarketOrder(symbol string, side core.OrderSide, qty float64, execute bool) *MarketOrderBuilder {
	p := NewParameters().
		SetString(FieldSymbol, symbol).
		SetEnum(FieldSide, side).
		SetEnum(FieldType, core.TypeMarket).
		SetFloat(FieldQuantity, qty)
	return &MarketOrderBuilder{c.newRequest(http.MethodPost, orderPath(execute), VariantMarket, p)}
}

// PlaceQuoteMarketOrder builds a market order spending or receiving
// quoteQty of the quote asset.
func (c *AccountClient) PlaceQuoteMarketOrder(symbol string, side core.OrderSide, quoteQty float64, execute bool) *QuoteMarketOrderBuilder {
	p := NewParameters().
		SetString(FieldSymbol, symbol).
		SetEnum(FieldSide, side).
		SetEnum(FieldType, core.TypeMarket).
		SetFloat(FieldQuoteOrderQty, quoteQty)
	return &QuoteMarketOrderBuilder{c.newRequest(http.MethodPost, orderPath(execute), VariantMarket, p)}
}

// GetOrder reads one order by exchange id or client order id.
func (c *AccountClient) GetOrder(symbol string, id ID) *OrderStatusBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	id.apply(p, FieldOrderID, FieldOrigClientOrderID)
	return &OrderStatusBuilder{c.get(pathOrder, VariantOrderStatus, p)}
}

// CancelOrder cancels one order by exchange id or client order id.
func (c *AccountClient) CancelOrder(symbol string, id ID) *CancelOrderBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	id.apply(p, FieldOrderID, FieldOrigClientOrderID)
	return &CancelOrderBuilder{c.newRequest(http.MethodDelete, pathOrder, VariantCancelOrder, p)}
}

// GetOpenOrders lists open orders of every symbol unless narrowed.
func (c *AccountClient) GetOpenOrders() *OpenOrdersBuilder {
	return &OpenOrdersBuilder{c.get(pathOpenOrders, VariantOpenOrders, nil)}
}

// CancelAllOrders cancels every open order on symbol, order lists
// included. With nothing to cancel the exchange answers 400.
func (c *AccountClient) CancelAllOrders(symbol string) *CancelAllOrdersBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &CancelAllOrdersBuilder{c.newRequest(http.MethodDelete, pathOpenOrders, VariantCancelAllOrders, p)}
}

// GetAllOrders lists active, cancelled and filled orders of symbol.
func (c *AccountClient) GetAllOrders(symbol string) *AllOrdersBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &AllOrdersBuilder{c.get(pathAllOrders, VariantAllOrders, p)}
}

// PlaceOcoOrder builds an OCO pair for qty: a limit leg at price and a
// stop leg triggered at stopPrice.
func (c *AccountClient) PlaceOcoOrder(symbol string, side core.OrderSide, price, stopPrice, qty float64) *OcoBuilder {
	p := NewParameters().
		SetString(FieldSymbol, symbol).
		SetEnum(FieldSide, side).
		SetFloat(FieldPrice, price).
		SetFloat(FieldStopPrice, stopPrice).
		SetFloat(FieldQuantity, qty)
	return &OcoBuilder{c.newRequest(http.MethodPost, pathOco, VariantOco, p)}
}

// CancelOcoOrder cancels an order list by orderListId or listClientOrderId.
func (c *AccountClient) CancelOcoOrder(symbol string, id ID) *CancelOcoBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	id.apply(p, FieldOrderListID, FieldListClientOrderID)
	return &CancelOcoBuilder{c.newRequest(http.MethodDelete, pathOrderList, VariantCancelOco, p)}
}

// GetOcoOrder queries an order list by orderListId or origClientOrderId.
func (c *AccountClient) GetOcoOrder(id ID) *OcoStatusBuilder {
	p := NewParameters()
	id.apply(p, FieldOrderListID, FieldOrigClientOrderID)
	return &OcoStatusBuilder{c.get(pathOrderList, VariantOcoStatus, p)}
}

// GetAllOcoOrders lists OCO order lists.
func (c *AccountClient) GetAllOcoOrders() *AllOcoBuilder {
	return &AllOcoBuilder{c.get(pathAllOrderList, VariantAllOco, nil)}
}

// GetOpenOcoOrders lists open OCO order lists.
func (c *AccountClient) GetOpenOcoOrders() *OpenOcoBuilder {
	return &OpenOcoBuilder{c.get(pathOpenOrderLst, VariantOpenOco, nil)}
}

// GetAccount reads balances and permissions.
func (c *AccountClient) GetAccount() *AccountBuilder {
	return &AccountBuilder{c.get(pathAccount, VariantAccount, nil)}
}

// GetAccountTrades lists the account's trades on symbol.
func (c *AccountClient) GetAccountTrades(symbol string) *AccountTradesBuilder {
	p := NewParameters().SetString(FieldSymbol, symbol)
	return &AccountTradesBuilder{c.get(pathMyTrades, VariantAccountTrades, p)}
}
