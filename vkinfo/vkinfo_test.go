package vkinfo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	vk "github.com/vulkan-go/vulkan"
)

func TestVersion(t *testing.T) {
	g := NewWithT(t)

	v := MakeVersion(1, 3, 261)
	g.Expect(v.Major()).To(Equal(uint32(1)))
	g.Expect(v.Minor()).To(Equal(uint32(3)))
	g.Expect(v.Patch()).To(Equal(uint32(261)))
	g.Expect(v.String()).To(Equal("1.3.261"))

	g.Expect(Version(vk.MakeVersion(1, 0, 0))).To(Equal(MakeVersion(1, 0, 0)))
	g.Expect(Version(0).String()).To(Equal("0.0.0"))
}

func fixedString(s string) [256]byte {
	var buf [256]byte
	copy(buf[:], s)
	return buf
}

func TestLayerFromVk(t *testing.T) {
	g := NewWithT(t)

	layer := LayerFromVk(vk.LayerProperties{
		LayerName:             fixedString("VK_LAYER_KHRONOS_validation"),
		SpecVersion:           vk.MakeVersion(1, 3, 250),
		ImplementationVersion: 1,
		Description:           fixedString("Khronos Validation Layer"),
	})

	g.Expect(layer).To(Equal(Layer{
		Name:                  "VK_LAYER_KHRONOS_validation",
		SpecVersion:           MakeVersion(1, 3, 250),
		ImplementationVersion: 1,
		Description:           "Khronos Validation Layer",
	}))
}

func TestExtensionFromVk(t *testing.T) {
	g := NewWithT(t)

	ext := ExtensionFromVk(vk.ExtensionProperties{
		ExtensionName: fixedString("VK_KHR_surface"),
		SpecVersion:   25,
	})
	g.Expect(ext).To(Equal(Extension{Name: "VK_KHR_surface", SpecVersion: 25}))
}

func TestQueueFamilyFromVk(t *testing.T) {
	g := NewWithT(t)

	family := QueueFamilyFromVk(vk.QueueFamilyProperties{
		QueueFlags:         vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueComputeBit),
		QueueCount:         16,
		TimestampValidBits: 64,
		MinImageTransferGranularity: vk.Extent3D{
			Width: 1, Height: 1, Depth: 1,
		},
	})

	g.Expect(family).To(Equal(QueueFamily{
		Graphics:                    true,
		Compute:                     true,
		QueueCount:                  16,
		TimestampValidBits:          64,
		MinImageTransferGranularity: Extent3D{1, 1, 1},
	}))
}

func TestDeviceFromVk(t *testing.T) {
	g := NewWithT(t)

	cacheID := uuid.MustParse("6f1b3e2a-93c4-4d1e-9a77-0b8c5d2e4f10")

	props := vk.PhysicalDeviceProperties{
		ApiVersion:        vk.MakeVersion(1, 2, 0),
		DriverVersion:     42,
		VendorID:          0x10de,
		DeviceID:          0x2204,
		DeviceType:        vk.PhysicalDeviceTypeDiscreteGpu,
		DeviceName:        fixedString("Test GPU"),
		PipelineCacheUUID: cacheID,
		Limits: vk.PhysicalDeviceLimits{
			DiscreteQueuePriorities: 2,
		},
	}
	mem := vk.PhysicalDeviceMemoryProperties{
		MemoryTypeCount: 11,
		MemoryHeapCount: 3,
	}
	families := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueFlags(vk.QueueGraphicsBit), QueueCount: 16},
		{QueueFlags: vk.QueueFlags(vk.QueueTransferBit), QueueCount: 2},
	}

	d := DeviceFromVk(props, mem, families)
	g.Expect(d.Name).To(Equal("Test GPU"))
	g.Expect(d.Type).To(Equal("Discrete GPU"))
	g.Expect(d.APIVersion.String()).To(Equal("1.2.0"))
	g.Expect(d.DriverVersion).To(Equal(uint32(42)))
	g.Expect(d.VendorID).To(Equal(uint32(0x10de)))
	g.Expect(d.DeviceID).To(Equal(uint32(0x2204)))
	g.Expect(d.DiscreteQueuePriorities).To(Equal(uint32(2)))
	g.Expect(d.PipelineCacheUUID).To(Equal(cacheID))
	g.Expect(d.MemoryTypeCount).To(Equal(uint32(11)))
	g.Expect(d.MemoryHeapCount).To(Equal(uint32(3)))
	g.Expect(d.QueueFamilies).To(HaveLen(2))
	g.Expect(d.QueueFamilies[0].Graphics).To(BeTrue())
	g.Expect(d.QueueFamilies[1].Transfer).To(BeTrue())
}

func TestDeviceTypeName(t *testing.T) {
	g := NewWithT(t)

	g.Expect(DeviceTypeName(vk.PhysicalDeviceTypeIntegratedGpu)).To(Equal("Integrated GPU"))
	g.Expect(DeviceTypeName(vk.PhysicalDeviceTypeCpu)).To(Equal("CPU"))
	g.Expect(DeviceTypeName(vk.PhysicalDeviceType(99))).To(Equal("Unknown"))
}

func TestSurfaceCapsFromVk(t *testing.T) {
	g := NewWithT(t)

	caps := SurfaceCapsFromVk(vk.SurfaceCapabilities{
		MinImageCount:       2,
		MaxImageCount:       8,
		CurrentExtent:       vk.Extent2D{Width: 400, Height: 300},
		MinImageExtent:      vk.Extent2D{Width: 1, Height: 1},
		MaxImageExtent:      vk.Extent2D{Width: 16384, Height: 16384},
		MaxImageArrayLayers: 1,
		SupportedUsageFlags: vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
	})

	g.Expect(caps.MinImageCount).To(Equal(uint32(2)))
	g.Expect(caps.MaxImageCount).To(Equal(uint32(8)))
	g.Expect(caps.CurrentExtent).To(Equal(Extent2D{400, 300}))
	g.Expect(caps.MaxImageExtent.String()).To(Equal("16384x16384"))
	g.Expect(caps.SupportedUsageFlags).To(Equal(uint32(vk.ImageUsageColorAttachmentBit)))
}

func TestPrintLayersAndExtensions(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer
	p := NewPrinter(&out)
	p.Layers([]Layer{
		{Name: "VK_LAYER_KHRONOS_validation", SpecVersion: MakeVersion(1, 3, 250), ImplementationVersion: 1, Description: "validation"},
		{Name: "VK_LAYER_MESA_device_select", SpecVersion: MakeVersion(1, 3, 211), ImplementationVersion: 1, Description: "device select"},
	})
	p.Extensions([]Extension{{Name: "VK_KHR_surface", SpecVersion: 25}})

	text := out.String()
	g.Expect(text).To(ContainSubstring("Number of Instance Layers: 2\n"))
	g.Expect(text).To(ContainSubstring("Layer #1\n"))
	g.Expect(text).To(ContainSubstring("Layer Name: VK_LAYER_MESA_device_select\n"))
	g.Expect(text).To(ContainSubstring("Layer Spec Version: 1.3.250\n"))
	g.Expect(text).To(ContainSubstring("Number of Instance Extensions: 1\n"))
	g.Expect(text).To(ContainSubstring("Extension Name: VK_KHR_surface\n"))
	g.Expect(text).To(ContainSubstring("Extension Spec Version: 25\n"))
	g.Expect(strings.Count(text, rule)).To(Equal(5))
}

func TestPrintEmpty(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer
	p := NewPrinter(&out)
	p.Layers(nil)
	p.Extensions(nil)

	g.Expect(out.String()).To(Equal(
		"Number of Instance Layers: 0\nNumber of Instance Extensions: 0\n"))
}

func TestPrintDevice(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer
	NewPrinter(&out).Device(0, Device{
		Name:              "Test GPU",
		Type:              "Integrated GPU",
		APIVersion:        MakeVersion(1, 3, 0),
		VendorID:          0x8086,
		PipelineCacheUUID: uuid.MustParse("6f1b3e2a-93c4-4d1e-9a77-0b8c5d2e4f10"),
		QueueFamilies: []QueueFamily{
			{Graphics: true, Compute: true, Transfer: true, QueueCount: 1, TimestampValidBits: 36},
		},
	})

	text := out.String()
	g.Expect(text).To(ContainSubstring("Physical Device #0\n"))
	g.Expect(text).To(ContainSubstring("Name: Test GPU\n"))
	g.Expect(text).To(ContainSubstring("API Version: 1.3.0\n"))
	g.Expect(text).To(ContainSubstring("Vendor ID: 0x8086\n"))
	g.Expect(text).To(ContainSubstring("Device Type: Integrated GPU\n"))
	g.Expect(text).To(ContainSubstring("Pipeline Cache UUID: 6f1b3e2a-93c4-4d1e-9a77-0b8c5d2e4f10\n"))
	g.Expect(text).To(ContainSubstring("QUEUE FAMILIES (1)"))
	g.Expect(text).To(ContainSubstring("Timestamp Bits"))
	g.Expect(text).To(ContainSubstring("36"))
}

func TestPrintSurface(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer
	NewPrinter(&out).Surface(SurfaceCaps{
		MinImageCount:  2,
		MaxImageCount:  8,
		CurrentExtent:  Extent2D{400, 300},
		MinImageExtent: Extent2D{1, 1},
		MaxImageExtent: Extent2D{4096, 4096},
	})

	text := out.String()
	g.Expect(text).To(ContainSubstring("SURFACE CAPABILITIES"))
	g.Expect(text).To(ContainSubstring("2 - 8"))
	g.Expect(text).To(ContainSubstring("400x300"))
	g.Expect(text).To(ContainSubstring("1x1 - 4096x4096"))
}

func TestHasLayer(t *testing.T) {
	g := NewWithT(t)

	layers := []Layer{
		{Name: "VK_LAYER_MESA_device_select"},
		{Name: "VK_LAYER_KHRONOS_validation"},
	}

	g.Expect(HasLayer(layers, "VK_LAYER_KHRONOS_validation")).To(BeTrue())
	g.Expect(HasLayer(layers, "VK_LAYER_LUNARG_standard_validation")).To(BeFalse())
	g.Expect(HasLayer(layers, "VK_LAYER_KHRONOS_validation\x00")).To(BeFalse())
	g.Expect(HasLayer(nil, "VK_LAYER_KHRONOS_validation")).To(BeFalse())
}
