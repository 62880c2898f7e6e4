package syslog

import (
	"context"

	"go.uber.org/zap"
)

const DefaultBufferMsgs = 100

// AsyncOption is an option for the async sender. Use those when creating the sender.
type AsyncOption func(*AsyncSender)

// BufferMsgs allows to change the buffer size. The buffer counts queued syslog messages - NOT message sizes.
// Values below 1 select DefaultBufferMsgs.
func BufferMsgs(no int) AsyncOption {
	return func(s *AsyncSender) {
		if no <= 0 {
			no = DefaultBufferMsgs
		}
		s.recvCh = make(chan []byte, no)
	}
}

// AsyncInternalLogger allows to pass a logger which receives all send errors of the wrapped sender
func AsyncInternalLogger(logger *zap.Logger) AsyncOption {
	return func(s *AsyncSender) {
		s.internalLogger = logger
	}
}

// AsyncSender queues messages and sends them with the wrapped sender from its own goroutine. `Send` never blocks:
// it fails with `ErrBufferFull` if the queue is full, and with `ErrSenderClosed` once the context which was passed
// to `NewAsyncSender` is done. Errors of the wrapped sender can only be observed through the internal logger, and
// failed messages are *NOT* being retried.
type AsyncSender struct {
	next           Sender
	recvCh         chan []byte
	done           <-chan struct{}
	internalLogger *zap.Logger
}

var _ Sender = &AsyncSender{}

// NewAsyncSender starts the processor for `next`. It runs until `ctx` is done.
func NewAsyncSender(ctx context.Context, next Sender, options ...AsyncOption) *AsyncSender {
	ret := &AsyncSender{
		next:           next,
		recvCh:         make(chan []byte, DefaultBufferMsgs),
		done:           ctx.Done(),
		internalLogger: zap.NewNop(),
	}

	// apply options
	for _, opt := range options {
		opt(ret)
	}

	// start the processor
	go ret.loop(ctx)

	return ret
}

// Send implements Sender. The passed context is not used, the message is sent with the context of the sender.
// The queue is never closed, so a message which races with the shutdown is dropped silently.
func (s *AsyncSender) Send(_ context.Context, msg []byte) error {
	// select picks randomly among ready cases, so check the shutdown first
	select {
	case <-s.done:
		return ErrSenderClosed
	default:
	}

	// the caller owns msg
	p := make([]byte, len(msg))
	copy(p, msg)
	select {
	case s.recvCh <- p:
		return nil
	default:
		return ErrBufferFull
	}
}

func (s *AsyncSender) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.recvCh:
			if err := s.next.Send(ctx, msg); err != nil {
				s.internalLogger.Error("sending to syslog server", zap.Error(err))
			}
		}
	}
}
