package binance

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"binrest/internal/transport"
	"binrest/pkg/core"
)

const pathUserDataStream = "/api/v3/userDataStream"

// ListenKey is the body of StartUserDataStream.
type ListenKey struct {
	ListenKey string `json:"listenKey"`
}

// StartUserDataStream opens a listen key valid for 60 minutes.
func (c *UserDataClient) StartUserDataStream() *UserDataStreamBuilder {
	return &UserDataStreamBuilder{c.newRequest(http.MethodPost, pathUserDataStream, VariantUserDataStream, nil)}
}

// KeepAliveUserDataStream extends listenKey by another 60 minutes.
func (c *UserDataClient) KeepAliveUserDataStream(listenKey string) *UserDataStreamBuilder {
	p := NewParameters().SetString(FieldListenKey, listenKey)
	return &UserDataStreamBuilder{c.newRequest(http.MethodPut, pathUserDataStream, VariantUserDataStream, p)}
}

// CloseUserDataStream invalidates listenKey.
func (c *UserDataClient) CloseUserDataStream(listenKey string) *UserDataStreamBuilder {
	p := NewParameters().SetString(FieldListenKey, listenKey)
	return &UserDataStreamBuilder{c.newRequest(http.MethodDelete, pathUserDataStream, VariantUserDataStream, p)}
}

// Stream reads the user data stream of listenKey and calls handle with
// every event until ctx is done, handle fails or the server closes the
// connection. It does not reconnect and does not keep the key alive.
func (c *UserDataClient) Stream(ctx context.Context, listenKey string, handle func(event []byte) error) error {
	if listenKey == "" {
		return core.NewError(core.ErrorTypeParameterOutOfRange, "listen key is empty")
	}

	client := transport.NewWSClient(transport.WSConfig{
		URL: strings.TrimSuffix(c.streamURL, "/") + "/" + listenKey,
	}, c.logger)
	if err := client.Connect(ctx); err != nil {
		return core.WrapError(core.ErrorTypeTransport, err, "user data stream")
	}
	defer client.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-client.Messages():
			if !ok {
				if err := client.Err(); err != nil {
					return core.WrapError(core.ErrorTypeTransport, err, "user data stream")
				}
				return nil
			}
			if err := handle(event); err != nil {
				return err
			}
		}
	}
}

// EventType returns the "e" field of a stream event, such as
// executionReport or outboundAccountPosition.
func EventType(event []byte) (string, error) {
	node, err := sonic.Get(event, "e")
	if err != nil {
		return "", core.WrapError(core.ErrorTypeDecode, err, "event type")
	}
	name, err := node.String()
	if err != nil {
		return "", core.WrapError(core.ErrorTypeDecode, err, "event type")
	}
	if name == "" {
		return "", core.WrapError(core.ErrorTypeDecode, errors.New("empty"), "event type")
	}
	return name, nil
}
