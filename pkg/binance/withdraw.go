package binance

import "net/http"

const (
	pathWithdraw        = "/sapi/v1/capital/withdraw/apply"
	pathDepositHistory  = "/sapi/v1/capital/deposit/hisrec"
	pathWithdrawHistory = "/sapi/v1/capital/withdraw/history"
	pathDepositAddress  = "/sapi/v1/capital/deposit/address"
)

// WithdrawResult is the body of a successful withdrawal request.
type WithdrawResult struct {
	ID string `json:"id"`
}

// Withdraw submits a withdrawal of amount coin to address.
func (c *WithdrawalClient) Withdraw(coin, address string, amount float64) *WithdrawBuilder {
	p := NewParameters().
		SetString(FieldCoin, coin).
		SetString(FieldAddress, address).
		SetFloat(FieldAmount, amount)
	return &WithdrawBuilder{c.newRequest(http.MethodPost, pathWithdraw, VariantWithdraw, p)}
}

// DepositHistory lists deposits, the last 90 days unless a range is set.
func (c *WithdrawalClient) DepositHistory() *CapitalHistoryBuilder {
	return &CapitalHistoryBuilder{c.get(pathDepositHistory, VariantCapitalHistory, nil)}
}

// WithdrawHistory lists withdrawals, the last 90 days unless a range is set.
func (c *WithdrawalClient) WithdrawHistory() *CapitalHistoryBuilder {
	return &CapitalHistoryBuilder{c.get(pathWithdrawHistory, VariantCapitalHistory, nil)}
}

// DepositAddress reads the deposit address of coin.
func (c *WithdrawalClient) DepositAddress(coin string) *DepositAddressBuilder {
	p := NewParameters().SetString(FieldCoin, coin)
	return &DepositAddressBuilder{c.get(pathDepositAddress, VariantDepositAddress, p)}
}
