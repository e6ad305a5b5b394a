package errloc

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.True(t, v == "dev" || strings.HasPrefix(v, "v"), "unexpected version %q", v)
}

func TestCommit(t *testing.T) {
	c := Commit()
	assert.NotEmpty(t, c)
	if c == "unknown" {
		return
	}
	assert.GreaterOrEqual(t, len(c), 7, "short hash expected, got %q", c)
	for _, ch := range c {
		assert.True(t, ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f'), "non-hex commit %q", c)
	}
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	assert.NotEmpty(t, bt)
	if bt != "unknown" {
		assert.Contains(t, bt, "T", "RFC3339 expected, got %q", bt)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.Equal(t, "errloc/"+Version(), ua)
	assert.NotContains(t, ua, " ")
	assert.NotContains(t, ua, "\n")
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{
		"Version: " + Version(),
		"Commit: " + Commit(),
		"Build Time: " + BuildTime(),
		"Go Version: " + GoVersion(),
	} {
		assert.Contains(t, info, want)
	}
}
