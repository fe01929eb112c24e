package vkinfo

import (
	"github.com/google/uuid"
	vk "github.com/vulkan-go/vulkan"
)

// The converters below expect their arguments to be dereferenced already
// (see the Deref methods of the vk types).

// LayerFromVk converts the driver's layer description.
func LayerFromVk(l vk.LayerProperties) Layer {
	return Layer{
		Name:                  vk.ToString(l.LayerName[:]),
		SpecVersion:           Version(l.SpecVersion),
		ImplementationVersion: l.ImplementationVersion,
		Description:           vk.ToString(l.Description[:]),
	}
}

// ExtensionFromVk converts the driver's extension description.
func ExtensionFromVk(e vk.ExtensionProperties) Extension {
	return Extension{
		Name:        vk.ToString(e.ExtensionName[:]),
		SpecVersion: e.SpecVersion,
	}
}

// QueueFamilyFromVk converts one entry of vkGetPhysicalDeviceQueueFamilyProperties.
func QueueFamilyFromVk(f vk.QueueFamilyProperties) QueueFamily {
	has := func(bit vk.QueueFlagBits) bool {
		return f.QueueFlags&vk.QueueFlags(bit) != 0
	}

	return QueueFamily{
		Graphics:           has(vk.QueueGraphicsBit),
		Compute:            has(vk.QueueComputeBit),
		Transfer:           has(vk.QueueTransferBit),
		SparseBinding:      has(vk.QueueSparseBindingBit),
		QueueCount:         f.QueueCount,
		TimestampValidBits: f.TimestampValidBits,
		MinImageTransferGranularity: Extent3D{
			Width:  f.MinImageTransferGranularity.Width,
			Height: f.MinImageTransferGranularity.Height,
			Depth:  f.MinImageTransferGranularity.Depth,
		},
	}
}

// DeviceFromVk builds a Device from its properties and memory properties.
// Limits must be dereferenced together with props.
func DeviceFromVk(
	props vk.PhysicalDeviceProperties,
	mem vk.PhysicalDeviceMemoryProperties,
	families []vk.QueueFamilyProperties,
) Device {
	d := Device{
		Name:                    vk.ToString(props.DeviceName[:]),
		Type:                    DeviceTypeName(props.DeviceType),
		APIVersion:              Version(props.ApiVersion),
		DriverVersion:           props.DriverVersion,
		VendorID:                props.VendorID,
		DeviceID:                props.DeviceID,
		DiscreteQueuePriorities: props.Limits.DiscreteQueuePriorities,
		PipelineCacheUUID:       uuid.UUID(props.PipelineCacheUUID),
		MemoryTypeCount:         mem.MemoryTypeCount,
		MemoryHeapCount:         mem.MemoryHeapCount,
	}

	for _, f := range families {
		d.QueueFamilies = append(d.QueueFamilies, QueueFamilyFromVk(f))
	}
	return d
}

// SurfaceCapsFromVk converts the result of vkGetPhysicalDeviceSurfaceCapabilitiesKHR.
// The nested extents must be dereferenced as well.
func SurfaceCapsFromVk(c vk.SurfaceCapabilities) SurfaceCaps {
	return SurfaceCaps{
		MinImageCount:           c.MinImageCount,
		MaxImageCount:           c.MaxImageCount,
		CurrentExtent:           Extent2D{c.CurrentExtent.Width, c.CurrentExtent.Height},
		MinImageExtent:          Extent2D{c.MinImageExtent.Width, c.MinImageExtent.Height},
		MaxImageExtent:          Extent2D{c.MaxImageExtent.Width, c.MaxImageExtent.Height},
		MaxImageArrayLayers:     c.MaxImageArrayLayers,
		SupportedTransforms:     uint32(c.SupportedTransforms),
		CurrentTransform:        uint32(c.CurrentTransform),
		SupportedCompositeAlpha: uint32(c.SupportedCompositeAlpha),
		SupportedUsageFlags:     uint32(c.SupportedUsageFlags),
	}
}

// DeviceTypeName names a physical device type.
func DeviceTypeName(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "Integrated GPU"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "Discrete GPU"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "Virtual GPU"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	case vk.PhysicalDeviceTypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}
