package syslog

import (
	"strings"
)

// SDParam is a single name/value pair of a structured data element
type SDParam struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// SDElement is a RFC 5424 structured data element. Params with the same name are all kept and sent in order.
type SDElement struct {
	ID     string    `json:"id" yaml:"id"`
	Params []SDParam `json:"params,omitempty" yaml:"params,omitempty"`
}

// Validate checks the element ID and all param names with `ValidSDName`
func (e *SDElement) Validate() error {
	if !ValidSDName(e.ID) {
		return &ValidationError{ID: e.ID}
	}
	for _, p := range e.Params {
		if !ValidSDName(p.Name) {
			return &ValidationError{ID: e.ID, Param: p.Name}
		}
	}
	return nil
}

// ValidSDName reports if `name` can be used as SD-ID or PARAM-NAME: at least one character, and only printable
// US-ASCII (33-126) except '=', ' ', ']' and '"'.
func ValidSDName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 33 || c > 126 {
			return false
		}
		switch c {
		case '=', ' ', ']', '"':
			return false
		}
	}
	return true
}

var sdValueReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`]`, `\]`,
)

// EscapeSDValue escapes '\', '"' and ']' in a PARAM-VALUE. No other characters are touched.
func EscapeSDValue(v string) string {
	return sdValueReplacer.Replace(v)
}
