package gateway

import (
	"fmt"

	"github.com/plgd-dev/go-coap/v3/message/codes"
)

// ConnectError reports a failure to establish a secure session.
// It is fatal for the caller: nothing retries it.
type ConnectError struct {
	// Op is the step that failed: "resolve", "bind" or "handshake"
	Op   string
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s %s failed: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TransportError reports an exchange that failed on both the original
// and the re-established session.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("exchange failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a well-formed exchange that the gateway rejected,
// or a request that could not be framed at all.
type ProtocolError struct {
	Code    codes.Code
	Payload string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coap: %v", e.Err)
	}
	if e.Payload == "" {
		return fmt.Sprintf("coap error %v", e.Code)
	}
	return fmt.Sprintf("coap error %v: %s", e.Code, e.Payload)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
