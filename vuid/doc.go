// Package vuid resolves validation locations to valid usage IDs.
//
// A VUID names one rule of the Vulkan specification, and has the form
// VUID-{refpage}-{field}-#####. A [Registry] maps the (call, reference
// page, field) coordinates of a [location.Location] to the VUID checked
// there, from a YAML table. The default table is embedded in the package;
// [WithTable] and [WithTableData] replace it.
//
// Lookups try the exact call first, then any call validating the same
// reference page and field, and finally return [Undefined]:
//
//	reg, err := vuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := location.New(location.FuncVkQueueSubmit, location.RefPageVkSubmitInfo).
//	    DotIndex(location.FieldPSubmits, 0).
//	    DotIndex(location.FieldPWaitDstStageMask, 1)
//	reg.Vuid(loc) // "VUID-vkQueueSubmit-pWaitDstStageMask-00066"
//
// A Registry is immutable after New and satisfies [location.Resolver], so
// it can back a [location.VuidAdapter] or a diagnostics collector shared
// across goroutines.
package vuid
