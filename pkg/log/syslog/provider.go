package syslog

import (
	"fmt"
	"sort"
)

// ProviderContext is passed to structured data providers. It gives read-only access to the event that is being
// logged.
type ProviderContext struct {
	event Event
}

func newProviderContext(ev Event) *ProviderContext {
	return &ProviderContext{event: ev}
}

func (c *ProviderContext) EventID() int     { return c.event.ID }
func (c *ProviderContext) Category() string { return c.event.Category }
func (c *ProviderContext) Level() Level     { return c.event.Level }
func (c *ProviderContext) Payload() any     { return c.event.Payload }
func (c *ProviderContext) Err() error       { return c.event.Err }

// Provider returns structured data elements for a log event. Providers are called once per RFC 5424 message and
// must not perform any I/O. Return an empty slice if there is nothing to add.
//
//go:generate mockgen -destination ../../../test/mock/mocksyslog/provider_mock.go -package mocksyslog go.githedgehog.com/syslogger/pkg/log/syslog Provider
type Provider interface {
	Provide(ctx *ProviderContext) []SDElement
}

// ProviderFunc adapts an ordinary function to a Provider
type ProviderFunc func(ctx *ProviderContext) []SDElement

var _ Provider = ProviderFunc(nil)

// Provide implements Provider
func (f ProviderFunc) Provide(ctx *ProviderContext) []SDElement {
	return f(ctx)
}

// StaticProvider returns the same elements for every event. It is used for the structured data from the settings.
type StaticProvider []SDElement

var _ Provider = StaticProvider(nil)

// Provide implements Provider
func (p StaticProvider) Provide(*ProviderContext) []SDElement {
	return p
}

// Providers is a composite provider. It returns the elements of all its members in order.
type Providers []Provider

var _ Provider = Providers(nil)

// Provide implements Provider
func (p Providers) Provide(ctx *ProviderContext) []SDElement {
	var ret []SDElement
	for _, provider := range p {
		if provider == nil {
			continue
		}
		ret = append(ret, provider.Provide(ctx)...)
	}
	return ret
}

// FieldsProvider turns a `map[string]any` event payload (as it is being produced by the zap core of this package)
// into a single structured data element with the ID `ID`. The params are sorted by name, and values are formatted
// with fmt. Any other payload type yields no element.
type FieldsProvider struct {
	ID string
}

var _ Provider = &FieldsProvider{}

// Provide implements Provider
func (p *FieldsProvider) Provide(ctx *ProviderContext) []SDElement {
	fields, ok := ctx.Payload().(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	elem := SDElement{ID: p.ID, Params: make([]SDParam, 0, len(names))}
	for _, name := range names {
		elem.Params = append(elem.Params, SDParam{Name: name, Value: fmt.Sprint(fields[name])})
	}
	return []SDElement{elem}
}
