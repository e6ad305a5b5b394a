// Package errloc pinpoints where, inside a call's nested arguments, a Vulkan
// validation rule was violated, and names the rule that was broken.
//
// # Overview
//
// The module is organized as a small core with outer surfaces:
//
//   - location: the core. Identifier enumerations, the Location path value,
//     message rendering, path parsing, and the VUID adapter.
//   - vuid: a table-driven registry mapping locations to valid usage IDs.
//   - diag: diagnostics with severity, collected safely across goroutines.
//   - locerrors: structured error types shared by every package.
//
// The errloc command exposes the same operations from the shell and as an
// MCP server.
//
// # Quick Start
//
// Build a location by descending through a call's parameters:
//
//	import "github.com/erraggy/errloc/location"
//
//	loc := location.New(location.FuncVkCmdPipelineBarrier, location.RefPageVkImageMemoryBarrier).
//		DotIndex(location.FieldPImageMemoryBarriers, 2).
//		Dot(location.FieldSrcAccessMask)
//	fmt.Println(loc.Message())
//	// vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask
//
// Each derivation returns a new value; the parent is never modified, so a
// common prefix can be shared between sibling locations:
//
//	barrier := location.New(location.FuncVkCmdPipelineBarrier, location.RefPageVkImageMemoryBarrier).
//		DotIndex(location.FieldPImageMemoryBarriers, 0)
//	src := barrier.Dot(location.FieldSrcAccessMask)
//	dst := barrier.Dot(location.FieldDstAccessMask)
//
// Resolve the valid usage ID for a location:
//
//	import "github.com/erraggy/errloc/vuid"
//
//	reg, err := vuid.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(reg.Vuid(src))
//	// VUID-vkCmdPipelineBarrier-srcAccessMask-02815 when the table names one,
//	// VUID_Undefined otherwise
//
// Collect diagnostics while validating:
//
//	import "github.com/erraggy/errloc/diag"
//
//	c, err := diag.NewCollector(diag.WithResolver(reg))
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Error(src, "srcAccessMask includes bits not supported by srcStageMask")
//	for _, d := range c.Diagnostics() {
//		fmt.Println(d)
//	}
//
// # Identifiers
//
// The call, reference page, and field enumerations are generated from
// location/registry.yaml. Every enumerator has a name; the empty sentinels
// render as "" and values outside the enumeration render as "Func(N)",
// "RefPage(N)", or "Field(N)" rather than panicking.
//
// # Command Line
//
//	errloc render vkCmdPipelineBarrier 'pImageMemoryBarriers[2].srcAccessMask'
//	errloc vuid -ref VkSubmitInfo vkQueueSubmit 'pSubmits[0].pWaitDstStageMask[1]'
//	errloc list fields
//	errloc mcp
package errloc
