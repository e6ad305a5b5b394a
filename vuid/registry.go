package vuid

import (
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/erraggy/errloc/diag"
	"github.com/erraggy/errloc/locerrors"
	"github.com/erraggy/errloc/location"
	"go.yaml.in/yaml/v4"
)

// Undefined is returned for locations with no registered VUID.
const Undefined = "VUID_Undefined"

const specBaseURL = "https://registry.khronos.org/vulkan/specs/1.3-extensions/html/vkspec.html#"

//go:embed vuids.yaml
var defaultTable []byte

// Entry is one row of a VUID table. An empty Func matches any call.
type Entry struct {
	Func    string `yaml:"func,omitempty"    json:"func,omitempty"`
	RefPage string `yaml:"refpage"           json:"refpage"`
	Field   string `yaml:"field"             json:"field"`
	Vuid    string `yaml:"vuid"              json:"vuid"`
}

type tableFile struct {
	Entries []Entry `yaml:"entries"`
}

type key struct {
	fn    location.Func
	ref   location.RefPage
	field location.Field
}

// Registry maps locations to VUIDs. It is immutable after New.
type Registry struct {
	byKey   map[key]string
	entries []Entry
	logger  diag.Logger
}

// New builds a Registry from the configured table.
func New(opts ...Option) (*Registry, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	data, source, err := cfg.table()
	if err != nil {
		return nil, err
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, &locerrors.ConfigError{Option: "table", Value: source, Message: "invalid YAML", Cause: err}
	}

	r := &Registry{
		byKey:   make(map[key]string, len(tf.Entries)),
		entries: tf.Entries,
		logger:  cfg.logger.With("table", source),
	}
	for i, e := range tf.Entries {
		k, err := e.key()
		if err != nil {
			return nil, &locerrors.ConfigError{Option: "table", Value: source, Message: fmt.Sprintf("entry %d", i), Cause: err}
		}
		if e.Vuid == "" {
			return nil, &locerrors.ConfigError{Option: "table", Value: source, Message: fmt.Sprintf("entry %d: missing vuid", i)}
		}
		if prev, dup := r.byKey[k]; dup {
			return nil, &locerrors.ConfigError{
				Option:  "table",
				Value:   source,
				Message: fmt.Sprintf("entry %d: duplicate of %s", i, prev),
			}
		}
		r.byKey[k] = e.Vuid
	}

	r.logger.Debug("loaded vuid table", "entries", len(r.byKey))
	return r, nil
}

func (e Entry) key() (key, error) {
	var k key
	var err error
	if e.Func != "" {
		if k.fn, err = location.ParseFunc(e.Func); err != nil {
			return key{}, err
		}
	}
	if k.ref, err = location.ParseRefPage(e.RefPage); err != nil {
		return key{}, err
	}
	if k.field, err = location.ParseField(e.Field); err != nil {
		return key{}, err
	}
	return k, nil
}

// Vuid returns the VUID registered for loc's call, reference page, and
// current field, or Undefined. It implements location.Resolver.
func (r *Registry) Vuid(loc location.Location) string {
	k := key{fn: loc.Func, ref: loc.RefPage, field: loc.Field}
	if id, ok := r.byKey[k]; ok {
		return id
	}
	k.fn = location.FuncEmpty
	if id, ok := r.byKey[k]; ok {
		return id
	}
	r.logger.Debug("no vuid for location", "location", logLocation(loc), "refpage", loc.RefPageName())
	return Undefined
}

// logLocation defers rendering a location until a handler formats the record.
type logLocation location.Location

// LogValue implements slog.LogValuer.
func (l logLocation) LogValue() slog.Value {
	return slog.StringValue(location.Location(l).Message())
}

// Len returns the number of table entries.
func (r *Registry) Len() int {
	return len(r.byKey)
}

// Entries returns a copy of the table entries in file order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Prefix returns the "VUID-{refpage}-{field}" stem shared by every rule for
// loc's reference page and current field.
func Prefix(loc location.Location) string {
	return "VUID-" + loc.RefPageName() + "-" + loc.FieldName()
}

// SpecURL returns the link to id in the published specification, or "" for
// Undefined and IDs that are not VUIDs.
func SpecURL(id string) string {
	if !strings.HasPrefix(id, "VUID-") {
		return ""
	}
	return specBaseURL + id
}

// Ensure Registry implements location.Resolver at compile time.
var _ location.Resolver = (*Registry)(nil)
