// Package location tracks where inside a Vulkan call's arguments a valid
// usage violation was detected.
//
// A [Location] is created once per validated entry point and walked down
// into nested structures and arrays with [Location.Dot] and
// [Location.DotIndex]. Every derivation returns a new value and leaves the
// receiver untouched, so a location can be handed to nested checks and
// reused by the caller afterward:
//
//	outer := location.New(location.FuncVkCmdPipelineBarrier, location.RefPageVkImageMemoryBarrier)
//	for i := range barriers {
//	    barrier := outer.DotIndex(location.FieldPImageMemoryBarriers, location.Index(i))
//	    mask := barrier.Dot(location.FieldSrcAccessMask)
//	    fmt.Println(mask.Message())
//	}
//
// prints, for the third barrier:
//
//	vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask
//
// The call, reference page, and current field of a location are the keys a
// [Resolver] uses to find the VUID of the rule being checked. A
// [VuidAdapter] pairs a location with a resolver so reporting code can ask
// for the call name and VUID without knowing how the VUID was found.
//
// # Identifiers
//
// [Func], [RefPage], and [Field] are closed enumerations generated from
// registry.yaml. Each has an Empty sentinel at zero and a String method
// backed by a fixed-size table whose length is checked at compile time.
// Values outside the table render as "Func(N)" rather than panicking.
//
// # Concurrency
//
// Locations hold no shared mutable state and the name tables are built
// before main runs, so independent goroutines may derive and render
// locations freely.
package location

//go:generate go run ../internal/codegen/names
