package locview

import (
	"testing"

	"github.com/erraggy/errloc/location"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	loc := location.New(location.FuncVkCmdPipelineBarrier, location.RefPageVkImageMemoryBarrier).
		DotIndex(location.FieldPImageMemoryBarriers, 2).
		Dot(location.FieldSrcAccessMask)

	assert.Equal(t, View{
		Message: "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask",
		Func:    "vkCmdPipelineBarrier",
		RefPage: "VkImageMemoryBarrier",
		Field:   "srcAccessMask",
		Depth:   1,
		Segments: []Segment{
			{Field: "pImageMemoryBarriers", Index: ptr[uint32](2)},
			{Field: "srcAccessMask"},
		},
	}, New(loc))
}

func TestNew_IndexedCurrent(t *testing.T) {
	loc := location.New(location.FuncVkQueueSubmit, location.RefPageEmpty).DotIndex(location.FieldPSubmits, 0)

	v := New(loc)
	assert.Equal(t, ptr[uint32](0), v.Index)
	assert.Empty(t, v.RefPage)
	assert.Equal(t, []Segment{{Field: "pSubmits", Index: ptr[uint32](0)}}, v.Segments)
}

func TestNew_Root(t *testing.T) {
	tests := []struct {
		name string
		loc  location.Location
	}{
		{"new", location.New(location.FuncVkQueueBindSparse, location.RefPageEmpty)},
		{"zero value", location.Location{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.loc)
			assert.Empty(t, v.Field)
			assert.Nil(t, v.Index)
			assert.Zero(t, v.Depth)
			assert.Nil(t, v.Segments)
		})
	}
}
