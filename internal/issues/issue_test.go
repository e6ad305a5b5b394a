package issues

import (
	"strings"
	"testing"

	"github.com/erraggy/errloc/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with vuid",
			issue: Issue{
				Location: "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].oldLayout",
				Message:  "layout does not match the current image layout",
				Severity: severity.SeverityError,
				Vuid:     "VUID-VkImageMemoryBarrier-oldLayout-01197",
			},
			contains: []string{
				"✗ vkCmdPipelineBarrier(): pImageMemoryBarriers[2].oldLayout: layout does not match",
				"\n    VUID: VUID-VkImageMemoryBarrier-oldLayout-01197",
			},
			notContains: []string{"Spec:"},
		},
		{
			name: "warning severity without vuid",
			issue: Issue{
				Location: "vkQueueSubmit(): pSubmits[0]",
				Message:  "empty submission",
				Severity: severity.SeverityWarning,
			},
			contains:    []string{"⚠", "vkQueueSubmit(): pSubmits[0]", "empty submission"},
			notContains: []string{"VUID:", "Spec:"},
		},
		{
			name: "perf warning",
			issue: Issue{
				Location: "vkCmdPipelineBarrier(): srcStageMask",
				Message:  "ALL_COMMANDS stalls the pipeline",
				Severity: severity.SeverityPerfWarning,
			},
			contains: []string{"⚠", "ALL_COMMANDS"},
		},
		{
			name: "info with spec ref",
			issue: Issue{
				Location: "vkSignalSemaphore(): pSignalInfo.value",
				Message:  "note",
				Severity: severity.SeverityInfo,
				Vuid:     "VUID-VkSemaphoreSignalInfo-value-03258",
				SpecRef:  "https://example.invalid/#VUID-VkSemaphoreSignalInfo-value-03258",
			},
			contains: []string{"ℹ", "VUID:", "\n    Spec: https://example.invalid/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, result, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, result, s)
			}
		})
	}
}

func TestIssueHeader(t *testing.T) {
	i := Issue{
		Location: "vkCmdSetEvent(): stageMask",
		Message:  "must not include VK_PIPELINE_STAGE_HOST_BIT",
		Severity: severity.SeverityError,
		Vuid:     "VUID-vkCmdSetEvent-stageMask-01149",
	}
	assert.Equal(t,
		"Validation Error: [ VUID-vkCmdSetEvent-stageMask-01149 ] vkCmdSetEvent(): stageMask: must not include VK_PIPELINE_STAGE_HOST_BIT",
		i.Header())

	i.Vuid = ""
	i.Severity = severity.SeverityPerfWarning
	assert.True(t, strings.HasPrefix(i.Header(), "Validation Performance Warning: vkCmdSetEvent(): stageMask:"))

	i.Severity = severity.SeverityInfo
	assert.True(t, strings.HasPrefix(i.Header(), "Validation Information: "))

	i.Severity = severity.SeverityWarning
	assert.True(t, strings.HasPrefix(i.Header(), "Validation Warning: "))
}
