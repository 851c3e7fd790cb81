package binance

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"binrest/internal/transport"
	"binrest/pkg/core"
)

// REST roots of the supported deployments.
const (
	BinanceURL   = "https://api.binance.com"
	BinanceUSURL = "https://api.binance.us"
	TestnetURL   = "https://testnet.binance.vision"
)

// Websocket roots matching the REST roots above.
const (
	BinanceStreamURL   = "wss://stream.binance.com:9443/ws"
	BinanceUSStreamURL = "wss://stream.binance.us:9443/ws"
	TestnetStreamURL   = "wss://stream.testnet.binance.vision/ws"
)

// Option is a functional option for configuring a client.
type Option func(*Options)

// Options holds construction options. Zero values keep the config's settings.
type Options struct {
	Logger            zerolog.Logger
	Timeout           time.Duration
	RateLimitRequests int
	RateLimitPeriod   time.Duration
	StreamURL         string
}

// WithLogger sets the logger used by the client and its transport.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTimeout overrides the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithRateLimit paces outgoing requests to n per period.
func WithRateLimit(n int, period time.Duration) Option {
	return func(o *Options) {
		o.RateLimitRequests = n
		o.RateLimitPeriod = period
	}
}

// WithStreamURL overrides the websocket root used for user data streams.
func WithStreamURL(u string) Option {
	return func(o *Options) {
		o.StreamURL = u
	}
}

// base is what every role client shares: the transport, the parsed REST
// root and a credentials view.
type base struct {
	http      *transport.Client
	root      *url.URL
	streamURL string
	creds     *core.Credentials
	logger    zerolog.Logger
	now       func() time.Time
}

func newBase(config *core.Config, opts ...Option) (*base, error) {
	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cfg := *config
	if options.Timeout > 0 {
		cfg.Timeout = options.Timeout
	}
	if options.RateLimitRequests > 0 {
		cfg.RateLimitRequests = options.RateLimitRequests
		cfg.RateLimitPeriod = options.RateLimitPeriod
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	root, err := core.ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	logger := options.Logger
	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err == nil {
			logger = logger.Level(level)
		}
	}
	logger = logger.With().Str("component", "binance").Logger()

	streamURL := options.StreamURL
	if streamURL == "" {
		streamURL = streamURLFor(root)
	}

	return &base{
		http:      transport.NewClient(&cfg, logger),
		root:      root,
		streamURL: streamURL,
		creds:     cfg.Credentials,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// streamURLFor maps a REST root to its websocket root. Unknown hosts get
// the same host with a ws scheme, which is what local test servers expect.
func streamURLFor(root *url.URL) string {
	switch strings.TrimSuffix(root.String(), "/") {
	case BinanceURL:
		return BinanceStreamURL
	case BinanceUSURL:
		return BinanceUSStreamURL
	case TestnetURL:
		return TestnetStreamURL
	}

	u := *root
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = "/ws"
	return u.String()
}

// view returns a copy sharing the transport but holding creds.
func (b *base) view(creds *core.Credentials) base {
	v := *b
	v.creds = creds
	return v
}

// keyOnly is the credentials view for keyed but unsigned endpoints.
// The secret never reaches it.
func (b *base) keyOnly() *core.Credentials {
	if !b.creds.HasAPIKey() {
		return nil
	}
	return &core.Credentials{APIKey: b.creds.APIKey}
}

// endpoint appends a fixed path to the REST root, keeping any path prefix
// the root carries.
func (b *base) endpoint(path string) string {
	u := b.root.JoinPath(path)
	u.RawQuery, u.Fragment = "", ""
	return u.String()
}

func (b *base) newRequest(method, path string, v Variant, params *Parameters) *request {
	if params == nil {
		params = NewParameters()
	}
	return &request{
		http:     b.http,
		logger:   b.logger,
		now:      b.now,
		method:   method,
		endpoint: b.endpoint(path),
		params:   params,
		creds:    b.creds,
		variant:  v,
	}
}

func (b *base) get(path string, v Variant, params *Parameters) *request {
	return b.newRequest(http.MethodGet, path, v, params)
}

// Close releases the shared transport. Every client derived from the same
// connection stops working.
func (b *base) Close() error {
	return b.http.Close()
}

// BaseURL returns the REST root the client talks to.
func (b *base) BaseURL() string {
	return b.root.String()
}

// AccountClient places, cancels and queries orders and reads the account.
// Every request it builds is signed.
type AccountClient struct {
	base
}

// New creates an AccountClient from config. The config must carry an API
// key and a secret key.
func New(config *core.Config, opts ...Option) (*AccountClient, error) {
	if !config.Credentials.CanSign() || !config.Credentials.HasAPIKey() {
		return nil, fmt.Errorf("account client: %w", core.ErrNoCredentials)
	}
	b, err := newBase(config, opts...)
	if err != nil {
		return nil, err
	}
	return &AccountClient{base: *b}, nil
}

// Connect creates an AccountClient for baseURL with default settings.
func Connect(apiKey, secretKey, baseURL string, opts ...Option) (*AccountClient, error) {
	config := core.DefaultConfig(baseURL).WithCredentials(&core.Credentials{
		APIKey:    apiKey,
		SecretKey: secretKey,
	})
	return New(config, opts...)
}

// ToMarketDataClient shares the transport and API key; the secret stays behind.
func (c *AccountClient) ToMarketDataClient() *MarketDataClient {
	return &MarketDataClient{base: c.view(c.keyOnly())}
}

// ToGeneralClient shares the transport without credentials.
func (c *AccountClient) ToGeneralClient() *GeneralClient {
	return &GeneralClient{base: c.view(nil)}
}

// ToUserDataClient shares the transport and API key.
func (c *AccountClient) ToUserDataClient() *UserDataClient {
	return &UserDataClient{base: c.view(c.keyOnly())}
}

// ToWithdrawalClient shares the transport and the signing credentials.
func (c *AccountClient) ToWithdrawalClient() *WithdrawalClient {
	return &WithdrawalClient{base: c.view(c.creds)}
}

// MarketDataClient reads public market data. The API key, when present,
// unlocks historical trades.
type MarketDataClient struct {
	base
}

// ConnectMarketData creates a MarketDataClient. apiKey may be empty.
func ConnectMarketData(apiKey, baseURL string, opts ...Option) (*MarketDataClient, error) {
	config := core.DefaultConfig(baseURL)
	if apiKey != "" {
		config.WithCredentials(&core.Credentials{APIKey: apiKey})
	}
	b, err := newBase(config, opts...)
	if err != nil {
		return nil, err
	}
	return &MarketDataClient{base: *b}, nil
}

// ToGeneralClient shares the transport without credentials.
func (c *MarketDataClient) ToGeneralClient() *GeneralClient {
	return &GeneralClient{base: c.view(nil)}
}

// GeneralClient covers connectivity and exchange metadata.
type GeneralClient struct {
	base
}

// ConnectGeneral creates a GeneralClient for baseURL. It holds no credentials.
func ConnectGeneral(baseURL string, opts ...Option) (*GeneralClient, error) {
	b, err := newBase(core.DefaultConfig(baseURL), opts...)
	if err != nil {
		return nil, err
	}
	return &GeneralClient{base: *b}, nil
}

// UserDataClient manages listen keys and reads the user data stream.
type UserDataClient struct {
	base
}

// ConnectUserData creates a UserDataClient. apiKey is required.
func ConnectUserData(apiKey, baseURL string, opts ...Option) (*UserDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("user data client: %w", core.ErrNoCredentials)
	}
	config := core.DefaultConfig(baseURL).WithCredentials(&core.Credentials{APIKey: apiKey})
	b, err := newBase(config, opts...)
	if err != nil {
		return nil, err
	}
	return &UserDataClient{base: *b}, nil
}

// WithdrawalClient moves funds off the exchange and reads capital history.
type WithdrawalClient struct {
	base
}

// ConnectWithdrawal creates a WithdrawalClient. Both keys are required.
func ConnectWithdrawal(apiKey, secretKey, baseURL string, opts ...Option) (*WithdrawalClient, error) {
	config := core.DefaultConfig(baseURL).WithCredentials(&core.Credentials{
		APIKey:    apiKey,
		SecretKey: secretKey,
	})
	if !config.Credentials.CanSign() || !config.Credentials.HasAPIKey() {
		return nil, fmt.Errorf("withdrawal client: %w", core.ErrNoCredentials)
	}
	b, err := newBase(config, opts...)
	if err != nil {
		return nil, err
	}
	return &WithdrawalClient{base: *b}, nil
}
