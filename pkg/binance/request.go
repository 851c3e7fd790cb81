package binance

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"binrest/internal/transport"
	"binrest/pkg/core"
)

const (
	// APIKeyHeader carries the API key on keyed and signed requests.
	APIKeyHeader = "X-MBX-APIKEY"
	// MaxRecvWindow is the largest recvWindow the exchange accepts, in milliseconds.
	MaxRecvWindow = 60000
)

// request is the state every builder wraps: the pending call, its
// parameters and the borrowed credentials. Builders of different variants
// hand it along on upgrade; the handle they upgraded from is consumed.
type request struct {
	http     *transport.Client
	logger   zerolog.Logger
	now      func() time.Time
	method   string
	endpoint string
	params   *Parameters
	creds    *core.Credentials
	variant  Variant
	consumed bool
	err      error
}

// Dispatcher is anything that can send itself and decode the body into v.
// Every builder satisfies it.
type Dispatcher interface {
	JSON(ctx context.Context, v any) error
}

// Decode sends d and decodes the response into a fresh T.
func Decode[T any](ctx context.Context, d Dispatcher) (T, error) {
	var out T
	err := d.JSON(ctx, &out)
	return out, err
}

func (r *request) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// update applies fn to the parameters. Once the handle has been consumed
// the change is refused and remembered as the error dispatch will return.
func (r *request) update(fn func(p *Parameters)) {
	if r.consumed {
		r.fail(core.WrapError(core.ErrorTypeInvalidStateTransition, core.ErrBuilderConsumed,
			fmt.Sprintf("modify %s request", r.variant)))
		return
	}
	fn(r.params)
}

// upgrade consumes r and returns the request for variant to with fn applied.
// Upgrading an already consumed handle yields a request that fails on dispatch.
func (r *request) upgrade(to Variant, fn func(p *Parameters)) *request {
	next := &request{
		http:     r.http,
		logger:   r.logger,
		now:      r.now,
		method:   r.method,
		endpoint: r.endpoint,
		params:   r.params.Clone(),
		creds:    r.creds,
		variant:  to,
		err:      r.err,
	}
	if r.consumed {
		next.fail(core.WrapError(core.ErrorTypeInvalidStateTransition, core.ErrBuilderConsumed,
			fmt.Sprintf("upgrade %s to %s", r.variant, to)))
	}
	r.consumed = true
	fn(next.params)
	return next
}

// Variant returns the request shape the builder currently holds.
func (r *request) Variant() Variant {
	return r.variant
}

// Encode returns the canonical query accumulated so far, without
// timestamp and signature.
func (r *request) Encode() string {
	return r.params.Encode()
}

func (r *request) validate() error {
	if r.err != nil {
		return r.err
	}

	p := r.params
	for _, f := range p.order {
		if !r.variant.Allows(f) {
			return core.NewError(core.ErrorTypeInvalidStateTransition,
				"%s is not accepted by a %s request", f, r.variant)
		}
	}

	if rw, ok := p.Int(FieldRecvWindow); ok && (rw < 0 || rw > MaxRecvWindow) {
		return core.NewError(core.ErrorTypeParameterOutOfRange,
			"recvWindow %d must be between 0 and %d", rw, MaxRecvWindow)
	}

	if limit, ok := p.Int(FieldLimit); ok {
		if max := r.variant.MaxLimit(); limit < 1 || (max > 0 && limit > max) {
			return core.NewError(core.ErrorTypeParameterOutOfRange,
				"limit %d must be between 1 and %d", limit, max)
		}
	}

	// The exchange rejects an id cursor combined with a time window.
	idFilter := p.Has(FieldOrderID) || p.Has(FieldFromID)
	timeFilter := p.Has(FieldStartTime) || p.Has(FieldEndTime)
	if idFilter && timeFilter {
		return core.NewError(core.ErrorTypeConflictingParameters,
			"orderId/fromId cannot be combined with startTime/endTime")
	}

	start, hasStart := p.Int(FieldStartTime)
	end, hasEnd := p.Int(FieldEndTime)
	if hasStart && hasEnd && start > end {
		return core.NewError(core.ErrorTypeConflictingParameters,
			"startTime %d is after endTime %d", start, end)
	}

	for _, pair := range [][2]Field{
		{FieldOrderID, FieldOrigClientOrderID},
		{FieldOrderListID, FieldListClientOrderID},
		{FieldOrderListID, FieldOrigClientOrderID},
	} {
		if p.Has(pair[0]) && p.Has(pair[1]) {
			return core.NewError(core.ErrorTypeConflictingParameters,
				"%s and %s identify the same order; set only one", pair[0], pair[1])
		}
	}

	if p.Has(FieldIcebergQty) {
		if tif, ok := p.Get(FieldTimeInForce); ok && tif != core.GTC.String() {
			return core.NewError(core.ErrorTypeConflictingParameters,
				"icebergQty requires timeInForce GTC, got %s", tif)
		}
	}

	return nil
}

// prepare stamps, encodes and signs the parameters.
func (r *request) prepare() *core.Request {
	signed := r.creds.CanSign()
	if signed {
		r.params.SetTime(FieldTimestamp, r.now())
	}

	query := r.params.Encode()
	if signed {
		signature := Sign([]byte(r.creds.SecretKey), []byte(query))
		if query != "" {
			query += "&"
		}
		query += "signature=" + signature
	}

	req := core.NewRequest(r.method, r.endpoint).SetQuery(query)
	if r.creds.HasAPIKey() {
		req.SetHeader(APIKeyHeader, r.creds.APIKey)
	}
	return req
}

// Send validates, signs and performs the request and returns the raw
// response. A non-2xx status is returned as *core.APIError together with
// the response. The builder cannot be sent twice.
func (r *request) Send(ctx context.Context) (*transport.Response, error) {
	if r.consumed {
		return nil, core.WrapError(core.ErrorTypeInvalidStateTransition, core.ErrBuilderConsumed,
			fmt.Sprintf("send %s request", r.variant))
	}
	r.consumed = true

	if err := r.validate(); err != nil {
		r.logger.Debug().Err(err).
			Str("variant", r.variant.String()).
			Msg("request rejected before sending")
		return nil, err
	}

	resp, err := r.http.Do(ctx, r.prepare())
	if err != nil {
		r.logger.Error().Err(err).
			Str("variant", r.variant.String()).
			Str("method", r.method).
			Str("url", r.endpoint).
			Msg("request failed")
		return nil, err
	}

	if !resp.IsSuccess() {
		apiErr := parseAPIError(resp)
		r.logger.Warn().
			Str("variant", r.variant.String()).
			Int("status", apiErr.StatusCode).
			Int("code", apiErr.Code).
			Str("msg", apiErr.Message).
			Msg("request rejected by exchange")
		return resp, apiErr
	}

	return resp, nil
}

// JSON sends the request and decodes a successful body into v.
// A nil v discards the body.
func (r *request) JSON(ctx context.Context, v any) error {
	resp, err := r.Send(ctx)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if err := resp.Unmarshal(v); err != nil {
		return core.WrapError(core.ErrorTypeDecode, err, fmt.Sprintf("decode %s response", r.variant))
	}
	return nil
}

func parseAPIError(resp *transport.Response) *core.APIError {
	apiErr := &core.APIError{StatusCode: resp.StatusCode}
	if err := sonic.Unmarshal(resp.Body, apiErr); err == nil && (apiErr.Code != 0 || apiErr.Message != "") {
		return apiErr
	}

	apiErr.Code = 0
	apiErr.Message = http.StatusText(resp.StatusCode)
	if body := strings.TrimSpace(string(resp.Body)); body != "" && len(body) <= 512 {
		apiErr.Message = body
	}
	return apiErr
}
