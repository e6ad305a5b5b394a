package pathutil

import "testing"

func TestPathBuilder_Basic(t *testing.T) {
	p := &PathBuilder{}
	p.Push("pDependencyInfo")
	p.Push("dependencyFlags")

	got := p.String()
	want := "pDependencyInfo.dependencyFlags"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_WithIndex(t *testing.T) {
	p := &PathBuilder{}
	p.Push("pImageMemoryBarriers")
	p.PushIndex(2)
	p.Push("srcAccessMask")

	got := p.String()
	want := "pImageMemoryBarriers[2].srcAccessMask"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_TrailingIndex(t *testing.T) {
	p := &PathBuilder{}
	p.Push("pSubmits")
	p.PushIndex(0)
	p.Push("pWaitSemaphores")
	p.PushIndex(4294967294)

	got := p.String()
	want := "pSubmits[0].pWaitSemaphores[4294967294]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestPathBuilder_Prefix(t *testing.T) {
	p := &PathBuilder{}
	p.SetPrefix("vkCmdPipelineBarrier(): ")
	if got := p.String(); got != "vkCmdPipelineBarrier(): " {
		t.Errorf("String() with prefix only = %q", got)
	}

	p.Push("pImageMemoryBarriers")
	p.PushIndex(2)
	p.Push("srcAccessMask")
	want := "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.length != len(want) {
		t.Errorf("precomputed length = %d, want %d", p.length, len(want))
	}

	p.SetPrefix("vkQueueSubmit(): ")
	if p.length != len("vkQueueSubmit(): pImageMemoryBarriers[2].srcAccessMask") {
		t.Errorf("length not adjusted after prefix change: %d", p.length)
	}
}

func TestPathBuilder_EmptySegment(t *testing.T) {
	p := &PathBuilder{}
	p.SetPrefix("vkSignalSemaphore(): ")
	p.Push("")
	if got := p.String(); got != "vkSignalSemaphore(): " {
		t.Errorf("String() = %q, want bare prefix", got)
	}
}

func TestPathBuilder_Empty(t *testing.T) {
	p := &PathBuilder{}
	got := p.String()
	if got != "" {
		t.Errorf("String() on empty = %q, want empty", got)
	}
}

func TestPathBuilder_Reset(t *testing.T) {
	p := &PathBuilder{}
	p.SetPrefix("vkQueueSubmit(): ")
	p.Push("a")
	p.Push("b")
	p.Reset()

	got := p.String()
	if got != "" {
		t.Errorf("String() after Reset = %q, want empty", got)
	}

	// Should be reusable after reset
	p.Push("c")
	got = p.String()
	if got != "c" {
		t.Errorf("String() after Reset+Push = %q, want %q", got, "c")
	}
}

func TestPool_GetPut(t *testing.T) {
	p := Get()
	if p == nil {
		t.Fatal("Get() returned nil")
	}

	p.SetPrefix("x(): ")
	p.Push("test")
	Put(p)

	// Get another - may or may not be same instance
	p2 := Get()
	if p2 == nil {
		t.Fatal("Get() returned nil after Put")
	}
	// After Get, should be reset
	if p2.String() != "" {
		t.Errorf("Get() returned non-empty PathBuilder: %q", p2.String())
	}
	Put(p2)
}

func TestPool_PutNilAndOversized(t *testing.T) {
	Put(nil) // Should not panic

	p := &PathBuilder{segments: make([]string, 0, maxPathCap+1)}
	Put(p) // Dropped, should not panic
}
