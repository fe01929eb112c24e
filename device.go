package main

import (
	"log"
	"strings"

	"vulkan-test/queues"
	"vulkan-test/vkerr"
	"vulkan-test/vkinfo"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// pickPhysicalDevice prints every physical device and selects the first one.
func (a *SandboxApp) pickPhysicalDevice() error {
	var deviceCount uint32
	res := vk.EnumeratePhysicalDevices(a.instance, &deviceCount, nil)
	if err := vkerr.Check(res, "vkEnumeratePhysicalDevices"); err != nil {
		return err
	}
	if deviceCount == 0 {
		return errors.New("failed to find GPUs with Vulkan support")
	}

	pDevices := make([]vk.PhysicalDevice, deviceCount)
	res = vk.EnumeratePhysicalDevices(a.instance, &deviceCount, pDevices)
	if err := vkerr.Check(res, "vkEnumeratePhysicalDevices"); err != nil {
		return err
	}

	for i, device := range pDevices[:deviceCount] {
		a.info.Device(i, describeDevice(device))

		caps, err := a.surfaceCapabilities(device)
		if err != nil {
			log.Printf("WARNING: physical device %d: %s", i, err)
			continue
		}
		a.info.Surface(vkinfo.SurfaceCapsFromVk(caps))
	}

	a.physicalDevice = pDevices[0]
	return nil
}

func describeDevice(device vk.PhysicalDevice) vkinfo.Device {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(device, &properties)
	properties.Deref()
	properties.Limits.Deref()

	var memProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(device, &memProps)
	memProps.Deref()

	return vkinfo.DeviceFromVk(properties, memProps, queueFamilyProperties(device))
}

func queueFamilyProperties(device vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &count, nil)

	families := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &count, families)

	for i := range families {
		families[i].Deref()
		families[i].MinImageTransferGranularity.Deref()
	}
	return families[:count]
}

// createLogicalDevice creates the device with a single queue create info for
// queues.Family and retrieves its first queue.
func (a *SandboxApp) createLogicalDevice() error {
	families := queueFamilyProperties(a.physicalDevice)
	if int(queues.Family) >= len(families) {
		return errors.Newf("physical device has no queue family %d", queues.Family)
	}
	family := families[queues.Family]

	requested := uint32(a.cfg.QueueCount)
	queueCount := queues.Clamp(requested, family.QueueCount)
	if queueCount < requested {
		log.Printf("WARNING: queue family %d offers %d queues, %d requested",
			queues.Family, family.QueueCount, requested)
	}
	log.Printf("using %d queues of family %d (%s)", queueCount, queues.Family,
		strings.Join(queues.FlagNames(family.QueueFlags), ", "))

	queueCreateInfos := []vk.DeviceQueueCreateInfo{
		{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: queues.Family,
			QueueCount:       queueCount,
			PQueuePriorities: queues.Priorities(queueCount),
		},
	}

	createInfo := vk.DeviceCreateInfo{
		SType:            vk.StructureTypeDeviceCreateInfo,
		PEnabledFeatures: []vk.PhysicalDeviceFeatures{{}},

		PQueueCreateInfos:    queueCreateInfos,
		QueueCreateInfoCount: uint32(len(queueCreateInfos)),

		EnabledExtensionCount:   uint32(len(a.deviceExtensions)),
		PpEnabledExtensionNames: a.deviceExtensions,

		EnabledLayerCount:   uint32(len(a.enabledLayers)),
		PpEnabledLayerNames: a.enabledLayers,
	}

	var device vk.Device
	res := vk.CreateDevice(a.physicalDevice, &createInfo, nil, &device)
	if err := vkerr.Check(res, "vkCreateDevice"); err != nil {
		return err
	}
	a.device = device

	var queue vk.Queue
	vk.GetDeviceQueue(a.device, queues.Family, 0, &queue)
	a.queue = queue

	return nil
}
