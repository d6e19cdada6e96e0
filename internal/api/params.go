package api

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ListSeparator joins list-valued parameters into a single value.
const ListSeparator = ";"

// DateTimeLayout is the format the API expects for date parameters.
const DateTimeLayout = "2006-01-02T15:04:05"

// Parameter name prefixes understood by the API.
const (
	HeaderPrefix = "headers_"
	MergePrefix  = "merge_"
)

// Params is an ordered mapping of request parameter names to wire values.
// Setting a name twice replaces its value and keeps its original position.
type Params struct {
	names  []string
	values map[string]string
}

// NewParams returns an empty parameter mapping.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set stores value under name, even when value is empty.
func (p *Params) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[name]; !exists {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// SetOptional stores value under name unless it is empty.
func (p *Params) SetOptional(name, value string) {
	if value == "" {
		return
	}
	p.Set(name, value)
}

// SetBool stores "true" or "false".
func (p *Params) SetBool(name string, value bool) {
	p.Set(name, strconv.FormatBool(value))
}

// SetInt stores the decimal form of value.
func (p *Params) SetInt(name string, value int) {
	p.Set(name, strconv.Itoa(value))
}

// SetList joins values with ListSeparator, preserving order.
// An empty list leaves the parameter absent.
func (p *Params) SetList(name string, values []string) {
	if len(values) == 0 {
		return
	}
	p.Set(name, strings.Join(values, ListSeparator))
}

// SetIntList joins the decimal forms of values with ListSeparator.
// An empty list leaves the parameter absent.
func (p *Params) SetIntList(name string, values []int) {
	if len(values) == 0 {
		return
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	p.Set(name, strings.Join(parts, ListSeparator))
}

// SetTime stores t converted to UTC in DateTimeLayout. A nil time leaves the
// parameter absent.
func (p *Params) SetTime(name string, t *time.Time) {
	if t == nil {
		return
	}
	p.Set(name, t.UTC().Format(DateTimeLayout))
}

// SetHeaders stores each custom header as headers_<name> = "<name>: <value>".
// Headers are added in sorted name order.
func (p *Params) SetHeaders(headers map[string]string) {
	for _, name := range sortedKeys(headers) {
		p.Set(HeaderPrefix+name, name+": "+headers[name])
	}
}

// SetMerge stores each merge field as merge_<name> = <value>.
// Fields are added in sorted name order.
func (p *Params) SetMerge(fields map[string]string) {
	for _, name := range sortedKeys(fields) {
		p.Set(MergePrefix+name, fields[name])
	}
}

// Get returns the value stored under name.
func (p *Params) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Values converts the mapping to url.Values.
func (p *Params) Values() url.Values {
	v := make(url.Values, p.Len())
	if p == nil {
		return v
	}
	for _, name := range p.names {
		v.Set(name, p.values[name])
	}
	return v
}

func (p *Params) clone() *Params {
	c := NewParams()
	if p == nil {
		return c
	}
	for _, name := range p.names {
		c.Set(name, p.values[name])
	}
	return c
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
