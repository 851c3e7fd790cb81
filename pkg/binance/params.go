package binance

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Field names one request parameter. Its String is the exchange's parameter name.
type Field int

const (
	FieldSymbol Field = iota
	FieldSide
	FieldType
	FieldTimeInForce
	FieldQuantity
	FieldQuoteOrderQty
	FieldPrice
	FieldNewClientOrderID
	FieldStopPrice
	FieldIcebergQty
	FieldNewOrderRespType
	FieldRecvWindow
	FieldTimestamp
	FieldOrderID
	FieldOrigClientOrderID
	FieldStartTime
	FieldEndTime
	FieldLimit
	FieldFromID
	FieldListClientOrderID
	FieldLimitClientOrderID
	FieldLimitIcebergQty
	FieldStopClientOrderID
	FieldStopLimitPrice
	FieldStopLimitTimeInForce
	FieldStopIcebergQty
	FieldOrderListID
	FieldInterval
	FieldListenKey
	FieldCoin
	FieldNetwork
	FieldAddress
	FieldAddressTag
	FieldAmount
	FieldName
	FieldStatus

	numFields
)

var fieldNames = [numFields]string{
	"symbol",
	"side",
	"type",
	"timeInForce",
	"quantity",
	"quoteOrderQty",
	"price",
	"newClientOrderId",
	"stopPrice",
	"icebergQty",
	"newOrderRespType",
	"recvWindow",
	"timestamp",
	"orderId",
	"origClientOrderId",
	"startTime",
	"endTime",
	"limit",
	"fromId",
	"listClientOrderId",
	"limitClientOrderId",
	"limitIcebergQty",
	"stopClientOrderId",
	"stopLimitPrice",
	"stopLimitTimeInForce",
	"stopIcebergQty",
	"orderListId",
	"interval",
	"listenKey",
	"coin",
	"network",
	"address",
	"addressTag",
	"amount",
	"name",
	"status",
}

// String returns the parameter name as the exchange expects it.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// fieldSet is a bitmask over Field.
type fieldSet uint64

func fields(fs ...Field) fieldSet {
	var s fieldSet
	for _, f := range fs {
		s |= 1 << uint(f)
	}
	return s
}

func (s fieldSet) has(f Field) bool {
	return s&(1<<uint(f)) != 0
}

// Parameters is the parameter set of one request: every field any request
// can carry, each either present or absent. Values are rendered when set.
// Encode emits present fields in the order they were first set.
//
// The zero value is an empty set ready to use.
type Parameters struct {
	values  [numFields]string
	ints    [numFields]int64
	present fieldSet
	order   []Field
}

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{}
}

func (p *Parameters) put(f Field, v string) *Parameters {
	if !p.present.has(f) {
		p.present |= 1 << uint(f)
		p.order = append(p.order, f)
	}
	p.values[f] = v
	return p
}

// SetString sets f to v.
func (p *Parameters) SetString(f Field, v string) *Parameters {
	return p.put(f, v)
}

// SetInt sets f to the decimal rendering of v.
func (p *Parameters) SetInt(f Field, v int64) *Parameters {
	p.ints[f] = v
	return p.put(f, strconv.FormatInt(v, 10))
}

// SetDecimal sets f to the plain (non-exponent) rendering of d.
func (p *Parameters) SetDecimal(f Field, d *apd.Decimal) *Parameters {
	return p.put(f, d.Text('f'))
}

// SetFloat sets f to the shortest exact rendering of v.
func (p *Parameters) SetFloat(f Field, v float64) *Parameters {
	var d apd.Decimal
	if _, err := d.SetFloat64(v); err != nil {
		return p.put(f, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return p.SetDecimal(f, &d)
}

// SetTime sets f to t in Unix milliseconds.
func (p *Parameters) SetTime(f Field, t time.Time) *Parameters {
	return p.SetInt(f, t.UnixMilli())
}

// SetEnum sets f to the wire name of an enum value.
func (p *Parameters) SetEnum(f Field, v fmt.Stringer) *Parameters {
	return p.put(f, v.String())
}

// Unset removes f. A later set appends it at the end again.
func (p *Parameters) Unset(f Field) *Parameters {
	if !p.present.has(f) {
		return p
	}
	p.present &^= 1 << uint(f)
	p.values[f] = ""
	p.ints[f] = 0
	for i, g := range p.order {
		if g == f {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return p
}

// Has reports whether f is present.
func (p *Parameters) Has(f Field) bool {
	return p.present.has(f)
}

// Get returns the rendered value of f and whether it is present.
func (p *Parameters) Get(f Field) (string, bool) {
	if !p.present.has(f) {
		return "", false
	}
	return p.values[f], true
}

// Int returns the integer value of a field set with SetInt or SetTime.
func (p *Parameters) Int(f Field) (int64, bool) {
	if !p.present.has(f) {
		return 0, false
	}
	return p.ints[f], true
}

// Fields returns the present fields in encoding order.
func (p *Parameters) Fields() []Field {
	out := make([]Field, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of present fields.
func (p *Parameters) Len() int {
	return len(p.order)
}

// Clone returns an independent copy.
func (p *Parameters) Clone() *Parameters {
	c := *p
	c.order = make([]Field, len(p.order))
	copy(c.order, p.order)
	return &c
}

// Encode returns the canonical query string: present fields in insertion
// order, values URL-escaped, joined by '&'.
func (p *Parameters) Encode() string {
	var sb strings.Builder
	for i, f := range p.order {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(fieldNames[f])
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[f]))
	}
	return sb.String()
}
