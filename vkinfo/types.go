// Package vkinfo captures what the driver reports about layers, extensions,
// physical devices and surfaces, and prints it.
//
// The snapshot types are plain Go values so that they can be printed and
// compared without a driver.
package vkinfo

import (
	"fmt"

	"github.com/google/uuid"
)

// Version is a packed Vulkan version number.
type Version uint32

// MakeVersion packs major, minor and patch the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

func (v Version) Major() uint32 { return uint32(v) >> 22 }
func (v Version) Minor() uint32 { return uint32(v) >> 12 & 0x3ff }
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Layer is an instance layer.
type Layer struct {
	Name                  string
	SpecVersion           Version
	ImplementationVersion uint32
	Description           string
}

// Extension is an instance or device extension.
type Extension struct {
	Name        string
	SpecVersion uint32
}

// Extent3D is a width, height and depth triple.
type Extent3D struct {
	Width, Height, Depth uint32
}

// QueueFamily describes one queue family of a physical device.
type QueueFamily struct {
	Graphics      bool
	Compute       bool
	Transfer      bool
	SparseBinding bool

	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// Device describes one physical device.
type Device struct {
	Name          string
	Type          string
	APIVersion    Version
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32

	DiscreteQueuePriorities uint32
	PipelineCacheUUID       uuid.UUID

	MemoryTypeCount uint32
	MemoryHeapCount uint32

	QueueFamilies []QueueFamily
}

// Extent2D is a width and height pair.
type Extent2D struct {
	Width, Height uint32
}

func (e Extent2D) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// SurfaceCaps are the capabilities of a surface as seen by a physical device.
type SurfaceCaps struct {
	MinImageCount       uint32
	MaxImageCount       uint32
	CurrentExtent       Extent2D
	MinImageExtent      Extent2D
	MaxImageExtent      Extent2D
	MaxImageArrayLayers uint32

	SupportedTransforms     uint32
	CurrentTransform        uint32
	SupportedCompositeAlpha uint32
	SupportedUsageFlags     uint32
}

// HasLayer reports whether a layer called name is among layers.
func HasLayer(layers []Layer, name string) bool {
	for _, layer := range layers {
		if layer.Name == name {
			return true
		}
	}
	return false
}
