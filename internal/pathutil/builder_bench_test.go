package pathutil

import (
	"fmt"
	"testing"
)

func BenchmarkPathBuilder_BarrierPath(b *testing.B) {
	b.Run("PathBuilder", func(b *testing.B) {
		for b.Loop() {
			p := Get()
			p.SetPrefix("vkCmdPipelineBarrier2KHR(): ")
			p.Push("pDependencyInfo")
			p.Push("pImageMemoryBarriers")
			p.PushIndex(7)
			p.Push("subresourceRange")
			_ = p.String()
			Put(p)
		}
	})

	b.Run("FmtSprintf", func(b *testing.B) {
		for b.Loop() {
			path := "vkCmdPipelineBarrier2KHR(): pDependencyInfo"
			path = fmt.Sprintf("%s.%s[%d]", path, "pImageMemoryBarriers", 7)
			path = fmt.Sprintf("%s.%s", path, "subresourceRange")
			_ = path
		}
	})
}
