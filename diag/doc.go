// Package diag collects diagnostics reported against validation locations.
//
// Validation code decides what went wrong; diag records where and which
// rule, using a [location.Location] for the where and a [location.Resolver]
// for the rule's VUID:
//
//	reg, _ := vuid.New()
//	c, _ := diag.NewCollector(diag.WithResolver(reg), diag.WithSpecRef(vuid.SpecURL))
//
//	loc := location.New(location.FuncVkCmdPipelineBarrier, location.RefPageVkImageMemoryBarrier).
//	    DotIndex(location.FieldPImageMemoryBarriers, 2).
//	    Dot(location.FieldOldLayout)
//	c.Error(loc, "oldLayout does not match the image's current layout")
//
//	for _, d := range c.Diagnostics() {
//	    fmt.Println(d)
//	}
//
// Output:
//
//	✗ vkCmdPipelineBarrier(): pImageMemoryBarriers[2].oldLayout: oldLayout does not match the image's current layout
//	    VUID: VUID-VkImageMemoryBarrier-oldLayout-01197
//	    Spec: https://registry.khronos.org/vulkan/specs/1.3-extensions/html/vkspec.html#VUID-VkImageMemoryBarrier-oldLayout-01197
//
// A [Collector] is safe for concurrent use, so independent validation
// passes may share one.
package diag
