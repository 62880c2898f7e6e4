package syslog

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	rfc3164MaxTagLen    = 32
	rfc3164TimestampFmt = "Jan 02 15:04:05"
)

var rfc3164TagReplacer = strings.NewReplacer(".", "", "_", "")

// RFC3164Encoder encodes messages in the BSD syslog format: `<PRI>Mmm dd hh:mm:ss HOSTNAME TAG MSG`.
// The tag is derived from the app name by dropping all '.' and '_' characters and truncating it to 32 bytes on a
// rune boundary. An empty tag is sent as '-'.
// Structured data, the process ID and the message ID are not part of this format.
type RFC3164Encoder struct{}

var _ Encoder = RFC3164Encoder{}

// Encode implements Encoder. It never fails.
func (RFC3164Encoder) Encode(m *Message) ([]byte, error) {
	tag := rfc3164Tag(m.AppName)
	buf := make([]byte, 0, 24+len(m.Hostname)+len(tag)+len(m.Text))
	buf = append(buf, '<')
	buf = strconv.AppendInt(buf, int64(m.Priority), 10)
	buf = append(buf, '>')
	buf = m.Timestamp.AppendFormat(buf, rfc3164TimestampFmt)
	buf = append(buf, ' ')
	buf = append(buf, nilValue(m.Hostname)...)
	buf = append(buf, ' ')
	buf = append(buf, tag...)
	buf = append(buf, ' ')
	buf = append(buf, m.Text...)
	return buf, nil
}

func rfc3164Tag(app string) string {
	tag := rfc3164TagReplacer.Replace(app)
	if len(tag) > rfc3164MaxTagLen {
		// cut on a rune boundary
		n := rfc3164MaxTagLen
		for n > 0 && !utf8.RuneStart(tag[n]) {
			n--
		}
		tag = tag[:n]
	}
	return nilValue(tag)
}
