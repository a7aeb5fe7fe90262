package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pion/dtls/v2"
)

const (
	// DefaultPort is the gateway's CoAP-over-DTLS port
	DefaultPort = 5684
	// IOTimeout bounds the handshake and every read/write
	IOTimeout = 10 * time.Second
)

// Conn is the byte-level channel the Messenger exchanges datagrams over.
// Every Read returns exactly one datagram.
type Conn interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	SetDeadline(t time.Time) error
	Close() error
}

// Dialer establishes a brand-new session to the gateway.
type Dialer func(ctx context.Context) (Conn, error)

// Session is one encrypted DTLS channel to the gateway over a connected
// UDP socket. It does not look at the bytes it carries.
type Session struct {
	id   string
	addr string
	conn *dtls.Conn
}

// Connect binds an ephemeral UDP port, associates it with the gateway and
// performs a PSK handshake using identity and psk as the credential.
func Connect(ctx context.Context, host, identity, psk string) (*Session, error) {
	addr, err := resolveAddr(host)
	if err != nil {
		return nil, &ConnectError{Op: "resolve", Addr: host, Err: err}
	}

	udp, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, &ConnectError{Op: "bind", Addr: addr.String(), Err: err}
	}

	config := &dtls.Config{
		PSK: func(hint []byte) ([]byte, error) {
			return []byte(psk), nil
		},
		PSKIdentityHint: []byte(identity),
		// The gateway only speaks this suite
		CipherSuites: []dtls.CipherSuiteID{dtls.TLS_PSK_WITH_AES_128_CCM_8},
		// PSK authenticated, there is no certificate to verify
		InsecureSkipVerify: true,
	}

	hctx, cancel := context.WithTimeout(ctx, IOTimeout)
	defer cancel()

	conn, err := dtls.ClientWithContext(hctx, udp, config)
	if err != nil {
		_ = udp.Close()
		return nil, &ConnectError{Op: "handshake", Addr: addr.String(), Err: err}
	}

	return &Session{
		id:   uuid.NewString(),
		addr: addr.String(),
		conn: conn,
	}, nil
}

// resolveAddr accepts "host" or "host:port" and fills in DefaultPort.
func resolveAddr(host string) (*net.UDPAddr, error) {
	if host == "" {
		return nil, errors.New("empty gateway host")
	}
	hostport := host
	if _, _, err := net.SplitHostPort(host); err != nil {
		hostport = net.JoinHostPort(host, strconv.Itoa(DefaultPort))
	}
	addr, err := net.ResolveUDPAddr("udp", hostport)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}
	return addr, nil
}

// ID identifies the session in logs
func (s *Session) ID() string { return s.id }

// RemoteAddr returns the gateway address the session is bound to
func (s *Session) RemoteAddr() string { return s.addr }

func (s *Session) Read(b []byte) (int, error)  { return s.conn.Read(b) }
func (s *Session) Write(b []byte) (int, error) { return s.conn.Write(b) }

func (s *Session) SetDeadline(t time.Time) error { return s.conn.SetDeadline(t) }

// Close tears down the DTLS session and the underlying socket.
func (s *Session) Close() error { return s.conn.Close() }

// NewDialer returns a Dialer that performs a fresh handshake on every call.
func NewDialer(host, identity, psk string, logger *slog.Logger) Dialer {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context) (Conn, error) {
		start := time.Now()
		s, err := Connect(ctx, host, identity, psk)
		if err != nil {
			logger.Error("gateway handshake failed", "host", host, "error", err)
			return nil, err
		}
		logger.Info("gateway session established",
			"session", s.ID(),
			"addr", s.RemoteAddr(),
			"took", time.Since(start).Round(time.Millisecond))
		return s, nil
	}
}
