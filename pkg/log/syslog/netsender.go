package syslog

import (
	"context"
	"io"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const DefaultPort = 514

// ConnectFunc is the connect function type which is being called by a `*NetSender` for every message. The returned
// connection is closed by the sender.
//
//go:generate mockgen -destination ../../../test/mock/mocknet/net_conn.go -package mocknet "net" Conn
type ConnectFunc func(ctx context.Context, connTimeout time.Duration, network, addr string) (net.Conn, error)

// SenderOption is an option for the network senders. Use those when creating the sender.
type SenderOption func(*NetSender)

// InternalLogger allows to pass a logger for the sender, to allow it to inform over sender internal errors
func InternalLogger(logger *zap.Logger) SenderOption {
	return func(s *NetSender) {
		s.internalLogger = logger
	}
}

// ConnectionTimeout sets a timeout for establishing the connection. Zero means no timeout, which is the default.
func ConnectionTimeout(d time.Duration) SenderOption {
	return func(s *NetSender) {
		s.connTimeout = d
	}
}

// WriteTimeout sets a write deadline on every connection. Zero means no deadline, which is the default.
func WriteTimeout(d time.Duration) SenderOption {
	return func(s *NetSender) {
		s.writeTimeout = d
	}
}

// ConnectFunction allows to replace the default connect function which uses a `net.Dialer`.
func ConnectFunction(f ConnectFunc) SenderOption {
	return func(s *NetSender) {
		s.connect = f
	}
}

// Network overrides the network which is passed to the connect function. This is mostly useful to switch the Unix
// domain socket sender to "unixgram" for receivers like /dev/log.
func Network(network string) SenderOption {
	return func(s *NetSender) {
		s.network = network
	}
}

// NetSender is a connection based sender. It opens a new connection for every message, writes the whole message
// in one write call and closes the connection again on every path. Use `NewUDPSender` or `NewUnixSender` to create
// one.
type NetSender struct {
	network        string
	addr           string
	connect        ConnectFunc
	connTimeout    time.Duration
	writeTimeout   time.Duration
	internalLogger *zap.Logger
}

var _ Sender = &NetSender{}

// NewUDPSender returns a sender which sends every message as a single UDP datagram to `server`. A port in `server`
// wins over `port`, and port 514 is used if neither is set. Messages which are larger than the path MTU might be
// truncated or dropped by the network.
func NewUDPSender(server string, port int, options ...SenderOption) *NetSender {
	return newNetSender("udp", udpAddr(server, port), options...)
}

// NewUnixSender returns a sender which writes every message to the Unix domain socket at `path`. It uses a stream
// socket unless the `Network` option says otherwise.
func NewUnixSender(path string, options ...SenderOption) *NetSender {
	return newNetSender("unix", path, options...)
}

func newNetSender(network, addr string, options ...SenderOption) *NetSender {
	ret := &NetSender{
		network:        network,
		addr:           addr,
		connect:        defaultConnect,
		internalLogger: zap.NewNop(),
	}

	// apply options
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Send implements Sender
func (s *NetSender) Send(ctx context.Context, msg []byte) error {
	conn, err := s.connect(ctx, s.connTimeout, s.network, s.addr)
	if err != nil {
		s.internalLogger.Debug("connecting to syslog server", zap.String("network", s.network), zap.String("addr", s.addr), zap.Error(err))
		return transportError(s.network, s.addr, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			s.internalLogger.Debug("closing connection to syslog server", zap.Error(err))
		}
	}()

	if s.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
			s.internalLogger.Debug("failed to set write deadline for write to syslog server", zap.Error(err))
		}
	}
	n, err := conn.Write(msg)
	if err != nil {
		s.internalLogger.Debug("writing to syslog server", zap.String("network", s.network), zap.String("addr", s.addr), zap.Error(err))
		return transportError(s.network, s.addr, err)
	}
	if n != len(msg) {
		s.internalLogger.Debug("len(written) != len(msg)", zap.Int("msgLen", len(msg)), zap.Int("written", n))
		return transportError(s.network, s.addr, io.ErrShortWrite)
	}
	return nil
}

// String returns the network and address of the sender
func (s *NetSender) String() string {
	return s.network + "://" + s.addr
}

func udpAddr(server string, port int) string {
	// a port in the server address wins over the port setting
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	if port <= 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(server, strconv.Itoa(port))
}

func defaultConnect(ctx context.Context, connTimeout time.Duration, network, addr string) (net.Conn, error) {
	if connTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, connTimeout)
		defer cancel()
	}
	d := &net.Dialer{}
	return d.DialContext(ctx, network, addr)
}
