package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/plgd-dev/go-coap/v3/message"
	"github.com/plgd-dev/go-coap/v3/message/codes"
	"github.com/plgd-dev/go-coap/v3/udp/coder"
)

const (
	// maxAttempts is the original try plus one retry on a fresh session
	maxAttempts = 2
	// maxDatagram is large enough for any gateway response
	maxDatagram = 4096
	// optionBufSize holds the encoded Uri-Path options of a request
	optionBufSize = 256
)

// Messenger frames CoAP requests, exchanges them over a session and
// re-establishes the session once when it breaks.
//
// Thread Safety:
//   - A Messenger is not safe for concurrent use. Callers serialize access
//     so that exactly one exchange is in flight.
type Messenger struct {
	dial    Dialer
	conn    Conn
	msgID   uint16
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Messenger
type Option func(*Messenger)

// WithTimeout overrides the per-exchange I/O timeout
func WithTimeout(d time.Duration) Option {
	return func(m *Messenger) { m.timeout = d }
}

// WithLogger sets the logger used for session lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(m *Messenger) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMessenger creates a Messenger that opens sessions with dial.
// No session is opened until Connect or the first exchange.
func NewMessenger(dial Dialer, opts ...Option) *Messenger {
	m := &Messenger{
		dial:    dial,
		msgID:   1,
		timeout: IOTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect establishes the session now instead of on first use.
func (m *Messenger) Connect(ctx context.Context) error {
	if m.conn != nil {
		return nil
	}
	conn, err := m.dial(ctx)
	if err != nil {
		return err
	}
	m.conn = conn
	return nil
}

// Connected reports whether a session is currently held
func (m *Messenger) Connected() bool {
	return m.conn != nil
}

// Close drops the current session, if any.
func (m *Messenger) Close() error {
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

// NextMessageID returns the next message id. The counter starts at 1 and
// wraps from 65535 to 0.
func (m *Messenger) NextMessageID() uint16 {
	id := m.msgID
	m.msgID++
	return id
}

// Exchange sends req and returns the matching response.
//
// Any I/O failure discards the session. The request is then retried once
// on a freshly dialed session; if that fails too a *TransportError is
// returned. Requests that cannot be encoded fail with *ProtocolError.
func (m *Messenger) Exchange(ctx context.Context, req *message.Message) (*message.Message, error) {
	req.MessageID = int32(m.NextMessageID())
	req.Type = message.Confirmable
	if len(req.Token) == 0 {
		token, err := message.GetToken()
		if err != nil {
			return nil, &ProtocolError{Err: fmt.Errorf("generate token: %w", err)}
		}
		req.Token = token
	}

	data, err := encode(req)
	if err != nil {
		return nil, &ProtocolError{Err: fmt.Errorf("encode request: %w", err)}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			m.logger.Warn("gateway session broken, reconnecting", "mid", req.MessageID, "error", lastErr)
		}

		resp, err := m.roundTrip(ctx, req, data)
		if err == nil {
			return resp, nil
		}

		var perr *ProtocolError
		if errors.As(err, &perr) {
			return nil, err
		}

		lastErr = err
		m.discard()
	}

	return nil, &TransportError{Attempts: maxAttempts, Err: lastErr}
}

// roundTrip performs one attempt on the current session, dialing if none
// is held. Datagrams that do not answer req are dropped while waiting.
func (m *Messenger) roundTrip(ctx context.Context, req *message.Message, data []byte) (*message.Message, error) {
	if err := m.Connect(ctx); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := m.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if _, err := m.conn.Write(data); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	buf := make([]byte, maxDatagram)
	for {
		n, err := m.conn.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}

		resp := message.Message{Options: make(message.Options, 0, 16)}
		if _, err := coder.DefaultCoder.Decode(buf[:n], &resp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}

		sameMID := resp.MessageID == req.MessageID
		switch {
		case resp.Type == message.Reset && sameMID:
			return nil, &ProtocolError{Code: resp.Code, Payload: "request reset by gateway"}
		case resp.Type == message.Acknowledgement && resp.Code == codes.Empty && sameMID:
			// Separate response follows
			continue
		case !bytes.Equal(resp.Token, req.Token):
			m.logger.Debug("discarding unrelated datagram", "mid", resp.MessageID, "code", resp.Code)
			continue
		}

		if resp.Type == message.Confirmable {
			m.ack(resp.MessageID)
		}
		return &resp, nil
	}
}

// ack acknowledges a confirmable separate response.
func (m *Messenger) ack(mid int32) {
	data, err := encode(&message.Message{
		Code:      codes.Empty,
		Type:      message.Acknowledgement,
		MessageID: mid,
	})
	if err == nil {
		_, err = m.conn.Write(data)
	}
	if err != nil {
		m.logger.Debug("failed to acknowledge response", "mid", mid, "error", err)
	}
}

func (m *Messenger) discard() {
	if m.conn == nil {
		return
	}
	if err := m.conn.Close(); err != nil {
		m.logger.Debug("closing broken session", "error", err)
	}
	m.conn = nil
}

func encode(msg *message.Message) ([]byte, error) {
	size, err := coder.DefaultCoder.Size(*msg)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	n, err := coder.DefaultCoder.Encode(*msg, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// Get fetches the resource at path and returns its payload.
func (m *Messenger) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := m.do(ctx, codes.GET, path, nil)
	if err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// Put writes payload to the resource at path.
func (m *Messenger) Put(ctx context.Context, path string, payload []byte) error {
	_, err := m.do(ctx, codes.PUT, path, payload)
	return err
}

func (m *Messenger) do(ctx context.Context, code codes.Code, path string, payload []byte) (*message.Message, error) {
	req := &message.Message{Code: code, Payload: payload}

	opts, _, err := req.Options.SetPath(make([]byte, optionBufSize), path)
	if err != nil {
		return nil, &ProtocolError{Err: fmt.Errorf("set path %q: %w", path, err)}
	}
	req.Options = opts

	resp, err := m.Exchange(ctx, req)
	if err != nil {
		return nil, err
	}

	if !IsSuccess(resp.Code) {
		return nil, &ProtocolError{
			Code:    resp.Code,
			Payload: strings.ToValidUTF8(string(resp.Payload), "�"),
		}
	}
	return resp, nil
}

// IsSuccess reports whether code is one of the five success responses.
func IsSuccess(code codes.Code) bool {
	switch code {
	case codes.Content, codes.Created, codes.Changed, codes.Deleted, codes.Valid:
		return true
	}
	return false
}
