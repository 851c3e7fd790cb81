package binance

const (
	pathPing         = "/api/v3/ping"
	pathTime         = "/api/v3/time"
	pathExchangeInfo = "/api/v3/exchangeInfo"
)

// ServerTime is the body of the server time endpoint.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// Ping tests connectivity. The body is an empty object.
func (c *GeneralClient) Ping() *GeneralBuilder {
	return &GeneralBuilder{c.get(pathPing, VariantGeneral, nil)}
}

// ServerTime reads the exchange clock; decode into ServerTime.
func (c *GeneralClient) ServerTime() *GeneralBuilder {
	return &GeneralBuilder{c.get(pathTime, VariantGeneral, nil)}
}

// ExchangeInfo reads trading rules and symbol filters.
func (c *GeneralClient) ExchangeInfo() *ExchangeInfoBuilder {
	return &ExchangeInfoBuilder{c.get(pathExchangeInfo, VariantGeneral, nil)}
}
