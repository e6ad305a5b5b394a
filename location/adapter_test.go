package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedResolver string

func (r fixedResolver) Vuid(Location) string { return string(r) }

func TestVuidAdapter_FixedResolver(t *testing.T) {
	loc := New(FuncVkCmdPipelineBarrier, RefPageVkImageMemoryBarrier).
		DotIndex(FieldPImageMemoryBarriers, 2).
		Dot(FieldOldLayout)

	a := NewVuidAdapter(loc, fixedResolver("VUID-VkImageMemoryBarrier-oldLayout-01197"))

	assert.Equal(t, "VUID-VkImageMemoryBarrier-oldLayout-01197", a.Vuid())
	assert.Equal(t, "vkCmdPipelineBarrier", a.FuncName())
	assert.True(t, loc.Equal(a.Location()))
}

func TestVuidAdapter_ResolverFuncSeesLocation(t *testing.T) {
	var seen Location
	resolve := ResolverFunc(func(loc Location) string {
		seen = loc
		return "VUID-" + loc.RefPageName() + "-" + loc.FieldName()
	})

	loc := New(FuncVkSignalSemaphore, RefPageVkSemaphoreSignalInfo).Dot(FieldValue)
	a := NewVuidAdapter(loc, resolve)

	assert.Equal(t, "VUID-VkSemaphoreSignalInfo-value", a.Vuid())
	assert.True(t, loc.Equal(seen))
}

func TestVuidAdapter_ReturnedTextOutlivesAdapter(t *testing.T) {
	var name, vuid string
	func() {
		a := NewVuidAdapter(New(FuncVkQueueSubmit, RefPageVkSubmitInfo).Dot(FieldPWaitDstStageMask),
			fixedResolver("VUID-vkQueueSubmit-pWaitDstStageMask-00066"))
		name, vuid = a.FuncName(), a.Vuid()
	}()

	assert.Equal(t, "vkQueueSubmit", name)
	assert.Equal(t, "VUID-vkQueueSubmit-pWaitDstStageMask-00066", vuid)
}
