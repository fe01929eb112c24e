package main

import (
	"log"

	"vulkan-test/queues"
	"vulkan-test/surface"
	"vulkan-test/vkerr"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Fixed swapchain parameters. Only the image count and the extent are fitted
// to the surface.
const (
	swapchainFormat      = vk.FormatB8g8r8a8Unorm
	swapchainColorSpace  = vk.ColorSpaceSrgbNonlinear
	swapchainPresentMode = vk.PresentModeFifo
	swapchainImageCount  = 3
)

func (a *SandboxApp) surfaceCapabilities(device vk.PhysicalDevice) (vk.SurfaceCapabilities, error) {
	var capabilities vk.SurfaceCapabilities
	res := vk.GetPhysicalDeviceSurfaceCapabilities(device, a.surface, &capabilities)
	if err := vkerr.Check(res, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR"); err != nil {
		return capabilities, err
	}
	capabilities.Deref()
	capabilities.CurrentExtent.Deref()
	capabilities.MinImageExtent.Deref()
	capabilities.MaxImageExtent.Deref()

	return capabilities, nil
}

func (a *SandboxApp) createSwapchain() error {
	var supported vk.Bool32
	res := vk.GetPhysicalDeviceSurfaceSupport(a.physicalDevice, queues.Family, a.surface, &supported)
	if err := vkerr.Check(res, "vkGetPhysicalDeviceSurfaceSupportKHR"); err != nil {
		return err
	}
	if !supported.B() {
		return errors.Newf("queue family %d cannot present to the window surface", queues.Family)
	}

	capabilities, err := a.surfaceCapabilities(a.physicalDevice)
	if err != nil {
		return err
	}

	extent := surface.Extent(uint32(a.cfg.Width), uint32(a.cfg.Height), capabilities)
	if extent.Width != uint32(a.cfg.Width) || extent.Height != uint32(a.cfg.Height) {
		log.Printf("WARNING: surface wants a %dx%d swapchain, window is %dx%d",
			extent.Width, extent.Height, a.cfg.Width, a.cfg.Height)
	}

	createInfo := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          a.surface,
		MinImageCount:    surface.ImageCount(swapchainImageCount, capabilities),
		ImageFormat:      swapchainFormat,
		ImageColorSpace:  swapchainColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     vk.SurfaceTransformIdentityBit,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      swapchainPresentMode,
		Clipped:          vk.True,
		OldSwapchain:     vk.NullSwapchain,
	}

	var swapchain vk.Swapchain
	res = vk.CreateSwapchain(a.device, &createInfo, nil, &swapchain)
	if err := vkerr.Check(res, "vkCreateSwapchainKHR"); err != nil {
		return err
	}
	a.swapchain = swapchain

	var imagesCount uint32
	res = vk.GetSwapchainImages(a.device, a.swapchain, &imagesCount, nil)
	if err := vkerr.Check(res, "vkGetSwapchainImagesKHR"); err != nil {
		return err
	}

	images := make([]vk.Image, imagesCount)
	res = vk.GetSwapchainImages(a.device, a.swapchain, &imagesCount, images)
	if err := vkerr.Check(res, "vkGetSwapchainImagesKHR"); err != nil {
		return err
	}

	a.swapchainImages = images[:imagesCount]
	a.swapchainImageFormat = swapchainFormat
	a.swapchainExtent = extent

	return nil
}

func (a *SandboxApp) createImageViews() error {
	for i, swapchainImage := range a.swapchainImages {
		createInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    swapchainImage,
			ViewType: vk.ImageViewType2d,
			Format:   a.swapchainImageFormat,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}

		var imageView vk.ImageView
		res := vk.CreateImageView(a.device, &createInfo, nil, &imageView)
		if err := vkerr.Check(res, "vkCreateImageView"); err != nil {
			return errors.Wrapf(err, "image view %d", i)
		}

		a.swapchainImageViews = append(a.swapchainImageViews, imageView)
	}

	return nil
}
