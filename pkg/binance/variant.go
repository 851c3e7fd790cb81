package binance

// Variant tags which request shape a builder holds. It decides which
// fields are legal and which With* methods exist.
type Variant int

const (
	VariantLimit Variant = iota
	VariantStopLossLimit
	VariantTakeProfitLimit
	VariantLimitMaker
	VariantMarket
	VariantStopLoss
	VariantTakeProfit
	VariantOrderStatus
	VariantCancelOrder
	VariantOpenOrders
	VariantAllOrders
	VariantCancelAllOrders
	VariantOco
	VariantStopLimit
	VariantCancelOco
	VariantOcoStatus
	VariantAllOco
	VariantOpenOco
	VariantAccount
	VariantAccountTrades

	VariantGeneral
	VariantDepth
	VariantTrades
	VariantHistoricalTrades
	VariantKlines
	VariantTicker
	VariantUserDataStream
	VariantWithdraw
	VariantCapitalHistory
	VariantDepositAddress

	numVariants
)

type variantRule struct {
	name     string
	allowed  fieldSet
	maxLimit int64
}

var (
	limitFields = fields(FieldSymbol, FieldSide, FieldType, FieldPrice, FieldQuantity, FieldTimeInForce,
		FieldNewClientOrderID, FieldIcebergQty, FieldNewOrderRespType)
	marketFields = fields(FieldSymbol, FieldSide, FieldType, FieldQuantity, FieldQuoteOrderQty,
		FieldNewClientOrderID, FieldNewOrderRespType)
	ocoFields = fields(FieldSymbol, FieldSide, FieldPrice, FieldStopPrice, FieldQuantity,
		FieldListClientOrderID, FieldLimitClientOrderID, FieldLimitIcebergQty,
		FieldStopClientOrderID, FieldStopIcebergQty, FieldNewOrderRespType)
	rangeFields = fields(FieldStartTime, FieldEndTime, FieldLimit)

	// recvWindow and timestamp ride along on every signed request.
	signedFields = fields(FieldRecvWindow, FieldTimestamp)
)

var variantRules = [numVariants]variantRule{
	VariantLimit:           {name: "Limit", allowed: limitFields},
	VariantStopLossLimit:   {name: "Stop-Loss-Limit", allowed: limitFields | fields(FieldStopPrice)},
	VariantTakeProfitLimit: {name: "Take-Profit-Limit", allowed: limitFields | fields(FieldStopPrice)},
	VariantLimitMaker:      {name: "Limit-Maker", allowed: limitFields &^ fields(FieldTimeInForce)},
	VariantMarket:          {name: "Market", allowed: marketFields},
	VariantStopLoss:        {name: "Stop-Loss", allowed: marketFields&^fields(FieldQuoteOrderQty) | fields(FieldStopPrice)},
	VariantTakeProfit:      {name: "Take-Profit", allowed: marketFields&^fields(FieldQuoteOrderQty) | fields(FieldStopPrice)},
	VariantOrderStatus:     {name: "OrderStatus", allowed: fields(FieldSymbol, FieldOrderID, FieldOrigClientOrderID)},
	VariantCancelOrder: {name: "CancelOrder", allowed: fields(FieldSymbol, FieldOrderID, FieldOrigClientOrderID,
		FieldNewClientOrderID)},
	VariantOpenOrders:      {name: "OpenOrders", allowed: fields(FieldSymbol)},
	VariantAllOrders:       {name: "AllOrders", allowed: fields(FieldSymbol, FieldOrderID) | rangeFields, maxLimit: 1000},
	VariantCancelAllOrders: {name: "CancelAllOrders", allowed: fields(FieldSymbol)},
	VariantOco:             {name: "Oco", allowed: ocoFields},
	VariantStopLimit:       {name: "Stop-Limit", allowed: ocoFields | fields(FieldStopLimitPrice, FieldStopLimitTimeInForce)},
	VariantCancelOco: {name: "CancelOco", allowed: fields(FieldSymbol, FieldOrderListID, FieldListClientOrderID,
		FieldNewClientOrderID)},
	VariantOcoStatus:     {name: "OcoStatus", allowed: fields(FieldOrderListID, FieldOrigClientOrderID)},
	VariantAllOco:        {name: "AllOco", allowed: fields(FieldFromID) | rangeFields, maxLimit: 1000},
	VariantOpenOco:       {name: "OpenOco"},
	VariantAccount:       {name: "Account"},
	VariantAccountTrades: {name: "AccountTrades", allowed: fields(FieldSymbol, FieldFromID) | rangeFields, maxLimit: 1000},

	VariantGeneral:          {name: "General", allowed: fields(FieldSymbol)},
	VariantDepth:            {name: "Depth", allowed: fields(FieldSymbol, FieldLimit), maxLimit: 5000},
	VariantTrades:           {name: "Trades", allowed: fields(FieldSymbol, FieldLimit), maxLimit: 1000},
	VariantHistoricalTrades: {name: "HistoricalTrades", allowed: fields(FieldSymbol, FieldLimit, FieldFromID), maxLimit: 1000},
	VariantKlines:           {name: "Klines", allowed: fields(FieldSymbol, FieldInterval) | rangeFields, maxLimit: 1000},
	VariantTicker:           {name: "Ticker", allowed: fields(FieldSymbol)},
	VariantUserDataStream:   {name: "UserDataStream", allowed: fields(FieldListenKey)},
	VariantWithdraw: {name: "Withdraw", allowed: fields(FieldCoin, FieldAddress, FieldAmount, FieldNetwork,
		FieldAddressTag, FieldName)},
	VariantCapitalHistory: {name: "CapitalHistory", allowed: fields(FieldCoin, FieldStatus) | rangeFields, maxLimit: 1000},
	VariantDepositAddress: {name: "DepositAddress", allowed: fields(FieldCoin, FieldNetwork)},
}

// String returns the variant's name.
func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return "Unknown"
	}
	return variantRules[v].name
}

// Allows reports whether f may be sent with this variant.
func (v Variant) Allows(f Field) bool {
	if v < 0 || v >= numVariants {
		return false
	}
	return (variantRules[v].allowed | signedFields).has(f)
}

// MaxLimit returns the largest accepted "limit", zero when the variant takes none.
func (v Variant) MaxLimit() int64 {
	if v < 0 || v >= numVariants {
		return 0
	}
	return variantRules[v].maxLimit
}
