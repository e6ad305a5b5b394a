package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/erraggy/errloc/locerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateOutputFormat(%q) error = %v", tt.format, err)
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := ListResult{Kind: "funcs", Total: 1, Names: []string{"vkQueueSubmit"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.JSONEq(t, `{"kind":"funcs","total":1,"names":["vkQueueSubmit"]}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.YAMLEq(t, "kind: funcs\ntotal: 1\nnames: [vkQueueSubmit]\n", buf.String())
	})

	t.Run("text is not structured", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, data, FormatText))
		assert.Empty(t, buf.String())
	})
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("vkCmdSetEvent2KHR", "vkCmdSetEvent2KHR", "pDependencyInfo.pImageMemoryBarriers[1].image")
	require.NoError(t, err)
	assert.Equal(t, "vkCmdSetEvent2KHR(): pDependencyInfo.pImageMemoryBarriers[1].image", loc.Message())
	assert.Equal(t, "vkCmdSetEvent2KHR", loc.RefPageName())
}

func TestWithSuggestion(t *testing.T) {
	tests := []struct {
		name     string
		fn, ref  string
		path     string
		wantErr  string
		wantHint string
	}{
		{"func typo", "vkQueueSubmt", "", "", `unknown func "vkQueueSubmt"`, `did you mean "vkQueueSubmit"?`},
		{"refpage typo", "vkQueueSubmit", "VkSubmitInf", "", `unknown refpage "VkSubmitInf"`, `did you mean "VkSubmitInfo"?`},
		{"field typo", "vkQueueSubmit", "", "pSubmits[0].pWaitSemaphore", `unknown field "pWaitSemaphore"`, `did you mean "pWaitSemaphores"?`},
		{"no close match", "vkQueueSubmit", "", "completelyUnrelatedName", `unknown field "completelyUnrelatedName"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLocation(tt.fn, tt.ref, tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, locerrors.ErrLookup)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantHint == "" {
				assert.NotContains(t, err.Error(), "did you mean")
			} else {
				assert.Contains(t, err.Error(), tt.wantHint)
			}
		})
	}
}

func TestWithSuggestion_OtherErrors(t *testing.T) {
	err := errors.New("boom")
	assert.Same(t, err, WithSuggestion(err))

	_, err = ParseLocation("vkQueueSubmit", "", "pSubmits[")
	require.Error(t, err)
	assert.ErrorIs(t, err, locerrors.ErrParse)
	assert.NotContains(t, err.Error(), "did you mean")
}
