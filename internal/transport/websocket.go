package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/lxzan/gws"
	"github.com/rs/zerolog"

	"binrest/internal/ws"
	"binrest/pkg/core"
)

// WSConfig configures a stream reader.
type WSConfig struct {
	URL string
	// ReadTimeout closes the connection when no frame arrives in time.
	// The exchange pings well inside the default.
	ReadTimeout time.Duration
	BufferSize  int
}

// WSClient reads one websocket stream and hands every text frame to
// Messages. It does not reconnect: when the socket closes, Messages is
// closed and Err reports why.
type WSClient struct {
	config WSConfig
	state  ws.State
	logger zerolog.Logger

	mu        sync.Mutex
	conn      *gws.Conn
	err       error
	messages  chan []byte
	connected chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	doneOnce  sync.Once
	wg        sync.WaitGroup
}

type wsEventHandler struct {
	client *WSClient
}

func NewWSClient(config WSConfig, logger zerolog.Logger) *WSClient {
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 5 * time.Minute
	}
	if config.BufferSize == 0 {
		config.BufferSize = 64
	}

	client := &WSClient{
		config:    config,
		logger:    logger,
		messages:  make(chan []byte, config.BufferSize),
		connected: make(chan struct{}),
		done:      make(chan struct{}),
	}
	client.state.Store(ws.StateIdle)
	return client
}

func (h *wsEventHandler) OnOpen(socket *gws.Conn) {
	c := h.client
	c.state.CompareAndSwap(ws.StateConnecting, ws.StateConnected)
	close(c.connected)

	c.logger.Info().Str("url", c.config.URL).Msg("websocket connected")
	_ = socket.SetDeadline(time.Now().Add(c.config.ReadTimeout))
}

func (h *wsEventHandler) OnClose(socket *gws.Conn, err error) {
	c := h.client
	if normalClosure(err) {
		c.logger.Info().Str("url", c.config.URL).Msg("websocket closed")
	} else {
		c.logger.Warn().Err(err).Str("url", c.config.URL).Msg("websocket disconnected")
	}
	c.finish(err)
}

func (h *wsEventHandler) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.client.config.ReadTimeout))
	_ = socket.WritePong(payload)
}

func (h *wsEventHandler) OnPong(socket *gws.Conn, payload []byte) {
	_ = socket.SetDeadline(time.Now().Add(h.client.config.ReadTimeout))
}

func (h *wsEventHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()
	c := h.client

	_ = socket.SetDeadline(time.Now().Add(c.config.ReadTimeout))

	// the frame buffer is recycled once the message is closed
	data := append([]byte(nil), message.Bytes()...)
	if len(data) == 0 {
		return
	}

	select {
	case c.messages <- data:
	case <-c.done:
	}
}

// Connect dials the stream and starts reading. It returns once the
// handshake completed or ctx is done.
func (c *WSClient) Connect(ctx context.Context) error {
	if !c.state.CompareAndSwap(ws.StateIdle, ws.StateConnecting) {
		return fmt.Errorf("connect websocket: %w (state %s)", core.ErrNotConnected, c.state.Load())
	}

	dialer := &contextDialer{ctx: ctx}
	socket, _, err := gws.NewClient(&wsEventHandler{client: c}, &gws.ClientOption{
		Addr:      c.config.URL,
		NewDialer: func() (gws.Dialer, error) { return dialer, nil },
	})
	dialer.release()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		c.finish(err)
		return fmt.Errorf("connect websocket: %w", err)
	}

	c.mu.Lock()
	c.conn = socket
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		socket.ReadLoop()
	}()

	select {
	case <-c.connected:
		return nil
	case <-ctx.Done():
		_ = socket.NetConn().Close()
		return ctx.Err()
	case <-c.done:
		return fmt.Errorf("connect websocket: %w", c.Err())
	}
}

// contextDialer dials with ctx and closes the connection if ctx ends
// before release, which unblocks a stalled handshake.
type contextDialer struct {
	ctx    context.Context
	dialer net.Dialer

	mu   sync.Mutex
	stop func() bool
}

func (d *contextDialer) Dial(network, addr string) (net.Conn, error) {
	conn, err := d.dialer.DialContext(d.ctx, network, addr)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.stop = context.AfterFunc(d.ctx, func() { _ = conn.Close() })
	d.mu.Unlock()
	return conn, nil
}

func (d *contextDialer) release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		d.stop()
	}
}

// Messages delivers text frames in arrival order. It is closed when the
// connection ends.
func (c *WSClient) Messages() <-chan []byte {
	return c.messages
}

// Err returns why the connection ended, nil while it is open or when the
// caller closed it.
func (c *WSClient) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *WSClient) State() ws.ConnState {
	return c.state.Load()
}

func (c *WSClient) IsConnected() bool {
	return c.state.Load() == ws.StateConnected
}

// Close shuts the connection and waits for the reader to stop.
func (c *WSClient) Close() error {
	c.closeOnce.Do(func() {
		c.state.Store(ws.StateClosed)
		close(c.done)
	})

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.finish(nil)
		return nil
	}

	_ = conn.WriteClose(1000, nil)
	_ = conn.NetConn().Close()
	c.wg.Wait()
	return nil
}

// finish records the close cause once and closes Messages.
func (c *WSClient) finish(err error) {
	c.doneOnce.Do(func() {
		closedByCaller := c.state.Load() == ws.StateClosed
		c.state.Store(ws.StateClosed)

		c.mu.Lock()
		if !closedByCaller && err != nil && !normalClosure(err) {
			c.err = err
		}
		c.mu.Unlock()

		close(c.messages)
	})
}

func normalClosure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	var ce *gws.CloseError
	return errors.As(err, &ce) && ce.Code == 1000
}
