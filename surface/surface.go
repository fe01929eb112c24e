// Package surface fits the fixed swapchain settings to what a surface
// allows.
package surface

import (
	"cmp"
	"math"

	vk "github.com/vulkan-go/vulkan"
)

// ImageCount keeps want within the limits of the surface. A maximum of zero
// means there is no upper limit.
func ImageCount(want uint32, capabilities vk.SurfaceCapabilities) uint32 {
	if want < capabilities.MinImageCount {
		want = capabilities.MinImageCount
	}
	if capabilities.MaxImageCount > 0 && want > capabilities.MaxImageCount {
		want = capabilities.MaxImageCount
	}
	return want
}

// Extent returns the swapchain extent for a window of width x height. When
// the surface dictates its size (CurrentExtent is not the 0xFFFFFFFF
// sentinel) that size wins; otherwise the window size is clamped to the
// surface's limits.
func Extent(width, height uint32, capabilities vk.SurfaceCapabilities) vk.Extent2D {
	if capabilities.CurrentExtent.Width != math.MaxUint32 {
		return capabilities.CurrentExtent
	}

	return vk.Extent2D{
		Width: clamp(
			width,
			capabilities.MinImageExtent.Width,
			capabilities.MaxImageExtent.Width,
		),
		Height: clamp(
			height,
			capabilities.MinImageExtent.Height,
			capabilities.MaxImageExtent.Height,
		),
	}
}

func clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		val = lo
	}
	if val > hi {
		val = hi
	}
	return val
}
