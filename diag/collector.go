package diag

import (
	"fmt"
	"slices"
	"sync"

	"github.com/erraggy/errloc/location"
)

const defaultDiagnosticCapacity = 10

// Collector accumulates diagnostics from validation code. It is safe for
// concurrent use by multiple goroutines.
type Collector struct {
	cfg *collectorConfig

	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector creates a Collector configured by opts.
func NewCollector(opts ...Option) (*Collector, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Collector{
		cfg:   cfg,
		diags: make([]Diagnostic, 0, defaultDiagnosticCapacity),
	}, nil
}

// Report records a diagnostic at l, using the VUID l resolves to.
func (c *Collector) Report(l Located, sev Severity, msg string) {
	if !sev.AtLeast(c.cfg.minSeverity) {
		return
	}
	c.add(NewDiagnostic(l.Location(), sev, l.Vuid(), msg))
}

// Reportf is Report with fmt.Sprintf formatting.
func (c *Collector) Reportf(l Located, sev Severity, format string, args ...any) {
	if !sev.AtLeast(c.cfg.minSeverity) {
		return
	}
	c.Report(l, sev, fmt.Sprintf(format, args...))
}

// Error records a valid usage violation at loc. The VUID comes from the
// configured resolver.
func (c *Collector) Error(loc location.Location, msg string) {
	vuid := ""
	if c.cfg.resolver != nil {
		vuid = c.cfg.resolver.Vuid(loc)
	}
	c.add(NewDiagnostic(loc, SeverityError, vuid, msg))
}

// Warn records a warning at loc.
func (c *Collector) Warn(loc location.Location, msg string) {
	c.addUnresolved(loc, SeverityWarning, msg)
}

// PerfWarn records a performance warning at loc.
func (c *Collector) PerfWarn(loc location.Location, msg string) {
	c.addUnresolved(loc, SeverityPerfWarning, msg)
}

// Info records an informational notice at loc.
func (c *Collector) Info(loc location.Location, msg string) {
	c.addUnresolved(loc, SeverityInfo, msg)
}

func (c *Collector) addUnresolved(loc location.Location, sev Severity, msg string) {
	if !sev.AtLeast(c.cfg.minSeverity) {
		return
	}
	c.add(NewDiagnostic(loc, sev, "", msg))
}

func (c *Collector) add(d Diagnostic) {
	if !d.Severity.AtLeast(c.cfg.minSeverity) {
		return
	}
	if d.Vuid != "" && c.cfg.specRef != nil {
		d.SpecRef = c.cfg.specRef(d.Vuid)
	}

	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()

	c.log(d)
}

func (c *Collector) log(d Diagnostic) {
	attrs := []any{"location", d.Location}
	if d.Vuid != "" {
		attrs = append(attrs, "vuid", d.Vuid)
	}
	switch d.Severity {
	case SeverityError:
		c.cfg.logger.Error(d.Message, attrs...)
	case SeverityWarning, SeverityPerfWarning:
		c.cfg.logger.Warn(d.Message, append(attrs, "severity", d.Severity.String())...)
	default:
		c.cfg.logger.Info(d.Message, attrs...)
	}
}

// Diagnostics returns a copy of the recorded diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.diags)
}

// Count returns the number of recorded diagnostics with severity sev.
func (c *Collector) Count(sev Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return c.Count(SeverityError) > 0
}

// Reset discards all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = c.diags[:0]
	c.mu.Unlock()
}
