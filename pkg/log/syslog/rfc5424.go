package syslog

import (
	"strconv"
)

const (
	rfc5424Version      = '1'
	rfc5424NilValue     = "-"
	rfc5424TimestampFmt = "2006-01-02T15:04:05.000000Z07:00"
)

// RFC5424Encoder encodes messages in the RFC 5424 format:
// `<PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID STRUCTURED-DATA MSG`.
type RFC5424Encoder struct{}

var _ Encoder = RFC5424Encoder{}

// Encode implements Encoder. All structured data is validated before anything is being encoded. If an element ID
// or param name is invalid, a `*ValidationError` is returned and no bytes are produced.
func (RFC5424Encoder) Encode(m *Message) ([]byte, error) {
	for i := range m.StructuredData {
		if err := m.StructuredData[i].Validate(); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, 0, 64+len(m.Hostname)+len(m.AppName)+len(m.Text))
	buf = append(buf, '<')
	buf = strconv.AppendInt(buf, int64(m.Priority), 10)
	buf = append(buf, '>', rfc5424Version, ' ')
	buf = m.Timestamp.AppendFormat(buf, rfc5424TimestampFmt)
	buf = append(buf, ' ')
	buf = append(buf, nilValue(m.Hostname)...)
	buf = append(buf, ' ')
	buf = append(buf, nilValue(m.AppName)...)
	buf = append(buf, ' ')
	buf = append(buf, nilValue(m.ProcID)...)
	buf = append(buf, ' ')
	buf = append(buf, nilValue(m.MsgID)...)
	buf = append(buf, ' ')
	buf = appendStructuredData(buf, m.StructuredData)
	buf = append(buf, ' ')
	buf = append(buf, m.Text...)
	return buf, nil
}

func appendStructuredData(buf []byte, sd []SDElement) []byte {
	if len(sd) == 0 {
		return append(buf, rfc5424NilValue...)
	}
	for _, elem := range sd {
		buf = append(buf, '[')
		buf = append(buf, elem.ID...)
		for _, p := range elem.Params {
			buf = append(buf, ' ')
			buf = append(buf, p.Name...)
			buf = append(buf, '=', '"')
			buf = append(buf, EscapeSDValue(p.Value)...)
			buf = append(buf, '"')
		}
		buf = append(buf, ']')
	}
	return buf
}

func nilValue(s string) string {
	if s == "" {
		return rfc5424NilValue
	}
	return s
}
