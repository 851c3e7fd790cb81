package binance

import "strconv"

// ID identifies an order or order list either by the exchange-assigned
// number or by the client-assigned string. Exactly one is set.
type ID struct {
	orderID  int64
	clientID string
	isClient bool
}

// OrderID identifies by the exchange-assigned id.
func OrderID(id int64) ID {
	return ID{orderID: id}
}

// ClientOrderID identifies by the client-assigned id.
func ClientOrderID(id string) ID {
	return ID{clientID: id, isClient: true}
}

// IsClientID reports whether the id is client-assigned.
func (id ID) IsClientID() bool {
	return id.isClient
}

// String returns the parameter value of the id.
func (id ID) String() string {
	if id.isClient {
		return id.clientID
	}
	return strconv.FormatInt(id.orderID, 10)
}

// apply sets numeric into numField or the client id into clientField.
func (id ID) apply(p *Parameters, numField, clientField Field) {
	if id.isClient {
		p.SetString(clientField, id.clientID)
		return
	}
	p.SetInt(numField, id.orderID)
}
