package syslog

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SenderMetrics holds the counters for instrumented senders. Create it once per registry.
type SenderMetrics struct {
	sent   *prometheus.CounterVec
	errors *prometheus.CounterVec
	bytes  *prometheus.CounterVec
}

// NewSenderMetrics creates and registers the sender counters with `reg`
func NewSenderMetrics(reg prometheus.Registerer) *SenderMetrics {
	factory := promauto.With(reg)
	return &SenderMetrics{
		sent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "syslog_messages_sent_total",
			Help: "Number of syslog messages which were handed to the transport successfully",
		}, []string{"transport"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "syslog_send_errors_total",
			Help: "Number of syslog messages which failed to send",
		}, []string{"transport"}),
		bytes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "syslog_bytes_sent_total",
			Help: "Number of bytes of all successfully sent syslog messages",
		}, []string{"transport"}),
	}
}

// Instrument wraps `next` so that every send is counted with the transport label `transport`
func (m *SenderMetrics) Instrument(transport string, next Sender) Sender {
	return &instrumentedSender{
		next:   next,
		sent:   m.sent.WithLabelValues(transport),
		errors: m.errors.WithLabelValues(transport),
		bytes:  m.bytes.WithLabelValues(transport),
	}
}

type instrumentedSender struct {
	next   Sender
	sent   prometheus.Counter
	errors prometheus.Counter
	bytes  prometheus.Counter
}

func (s *instrumentedSender) Send(ctx context.Context, msg []byte) error {
	if err := s.next.Send(ctx, msg); err != nil {
		s.errors.Inc()
		return err
	}
	s.sent.Inc()
	s.bytes.Add(float64(len(msg)))
	return nil
}
