package location

import (
	"testing"

	"github.com/erraggy/errloc/locerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want Location
	}{
		{
			name: "empty is root",
			expr: "",
			want: New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier),
		},
		{
			name: "single scalar",
			expr: "srcStageMask",
			want: New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).Dot(FieldSrcStageMask),
		},
		{
			name: "barrier field",
			expr: "pImageMemoryBarriers[2].srcAccessMask",
			want: New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).
				DotIndex(FieldPImageMemoryBarriers, 2).
				Dot(FieldSrcAccessMask),
		},
		{
			name: "trailing index",
			expr: "pImageMemoryBarriers[10]",
			want: New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).
				DotIndex(FieldPImageMemoryBarriers, 10),
		},
		{
			name: "deep path",
			expr: "pDependencyInfo.pImageMemoryBarriers[0].subresourceRange.pNext.value",
			want: New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).
				Dot(FieldPDependencyInfo).
				DotIndex(FieldPImageMemoryBarriers, 0).
				Dot(FieldSubresourceRange).
				Dot(FieldPNext).
				Dot(FieldValue),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier, tt.expr)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		offset   int
		contains string
		lookup   bool
	}{
		{"leading dot", ".srcAccessMask", 0, "expected field name", false},
		{"double dot", "pSubmits..value", 9, "expected field name", false},
		{"trailing dot", "pSubmits.", 9, "trailing '.'", false},
		{"unknown field", "pSubmits[0].bogus", 12, "unknown field", true},
		{"missing index", "pSubmits[]", 9, "expected array index", false},
		{"unclosed bracket", "pSubmits[3", 10, "expected ']'", false},
		{"negative index", "pSubmits[-1]", 9, "expected array index", false},
		{"junk after index", "pSubmits[1]x", 11, "unexpected character", false},
		{"reserved index", "pSubmits[4294967295]", 9, "index out of range", false},
		{"overflow index", "pSubmits[99999999999]", 9, "index out of range", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(FuncVkQueueSubmit, RefPageVkSubmitInfo, tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, locerrors.ErrParse)
			assert.Contains(t, err.Error(), tt.contains)

			var perr *locerrors.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.expr, perr.Input)

			if tt.lookup {
				assert.ErrorIs(t, err, locerrors.ErrLookup)
			}
		})
	}
}

func TestParseMessage_RoundTrip(t *testing.T) {
	locs := []Location{
		New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier),
		New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).
			DotIndex(FieldPImageMemoryBarriers, 2).
			Dot(FieldSrcAccessMask),
		New(FuncVkQueueSubmit2KHR, RefPageVkSubmitInfo2KHR).
			DotIndex(FieldPSubmits, 1).
			DotIndex(FieldPWaitSemaphoreInfos, 0).
			Dot(FieldStageMask),
		New(FuncVkCreateRenderPass2, RefPageVkSubpassDependency2).
			DotIndex(FieldPDependencies, 9).
			Dot(FieldPNext).
			Dot(FieldSrcStageMask).
			Dot(FieldDependencyFlags).
			Dot(FieldValue),
	}
	for _, loc := range locs {
		t.Run(loc.Message(), func(t *testing.T) {
			got, err := ParseMessage(loc.RefPage, loc.Message())
			require.NoError(t, err)
			assert.True(t, loc.Equal(got), "got %s", got)
		})
	}
}

func TestParseMessage_Errors(t *testing.T) {
	_, err := ParseMessage(RefPageEmpty, "pSubmits[0]")
	assert.ErrorIs(t, err, locerrors.ErrParse)

	_, err = ParseMessage(RefPageEmpty, "vkCmdDraw(): pSubmits[0]")
	assert.ErrorIs(t, err, locerrors.ErrParse)
	assert.ErrorIs(t, err, locerrors.ErrLookup)

	loc, err := ParseMessage(RefPageEmpty, "vkSignalSemaphore():")
	require.NoError(t, err)
	assert.True(t, loc.IsRoot())
	assert.Equal(t, FuncVkSignalSemaphore, loc.Func)
}
