package main

import (
	"context"
	"io"
	"log"
	"os"

	"vulkan-test/config"
	"vulkan-test/stagetimer"
	"vulkan-test/vkerr"
	"vulkan-test/vkinfo"
	"vulkan-test/vkstr"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

const (
	title      = "Vulkan Test"
	engineName = "Vulkan Test Engine"
)

// SandboxApp owns every handle the sandbox creates. Handles are released in
// reverse creation order by cleanVulkan and cleanWindow.
type SandboxApp struct {
	cfg   config.Config
	info  *vkinfo.Printer
	timer *stagetimer.Timer

	// enabledLayers is the validation layer list (NUL terminated) passed to
	// both the instance and the device. Empty unless -debug is set.
	enabledLayers []string

	// deviceExtensions is the list of device extensions enabled on the
	// logical device.
	deviceExtensions []string

	window   *glfw.Window
	instance vk.Instance
	surface  vk.Surface

	// physicalDevice is always the first one reported by the driver.
	physicalDevice vk.PhysicalDevice

	device vk.Device
	queue  vk.Queue

	swapchain            vk.Swapchain
	swapchainImages      []vk.Image
	swapchainImageViews  []vk.ImageView
	swapchainImageFormat vk.Format
	swapchainExtent      vk.Extent2D

	vertexShader   vk.ShaderModule
	fragmentShader vk.ShaderModule

	// shaderStages are built for a graphics pipeline which is never created.
	shaderStages []vk.PipelineShaderStageCreateInfo
}

// NewSandboxApp returns an app which prints its diagnostics to out.
func NewSandboxApp(cfg config.Config, out io.Writer) *SandboxApp {
	if cfg.Quiet {
		out = io.Discard
	}

	return &SandboxApp{
		cfg:   cfg,
		info:  vkinfo.NewPrinter(out),
		timer: stagetimer.New(),
		deviceExtensions: []string{
			vkstr.Safe(vk.KhrSwapchainExtensionName),
		},
		physicalDevice: vk.PhysicalDevice(vk.NullHandle),
		device:         vk.Device(vk.NullHandle),
		surface:        vk.NullSurface,
		swapchain:      vk.NullSwapchain,
		vertexShader:   vk.ShaderModule(vk.NullHandle),
		fragmentShader: vk.ShaderModule(vk.NullHandle),
	}
}

// Run opens the window, brings Vulkan up, waits for the window to be closed
// and tears everything down again. Whatever was created before a failure is
// still released.
func (a *SandboxApp) Run() error {
	defer a.cleanWindow()
	if err := a.timer.Time("initWindow", a.initWindow); err != nil {
		return errors.Wrap(err, "initWindow")
	}

	defer a.cleanVulkan()
	if err := a.initVulkan(); err != nil {
		return errors.Wrap(err, "initVulkan")
	}

	if a.cfg.Debug {
		log.Printf("setup timings:")
		a.timer.Report(os.Stderr)
	}

	if err := a.mainLoop(); err != nil {
		return errors.Wrap(err, "mainLoop")
	}

	return nil
}

func (a *SandboxApp) initVulkan() error {
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())

	if err := vk.Init(); err != nil {
		return errors.Wrap(err, "vk.Init")
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"createInstance", a.createInstance},
		{"createSurface", a.createSurface},
		{"pickPhysicalDevice", a.pickPhysicalDevice},
		{"createLogicalDevice", a.createLogicalDevice},
		{"createSwapchain", a.createSwapchain},
		{"createImageViews", a.createImageViews},
		{"createShaderModules", func() error {
			return a.createShaderModules(context.Background())
		}},
	}

	for _, step := range steps {
		if err := a.timer.Time(step.name, step.fn); err != nil {
			return errors.Wrap(err, step.name)
		}
	}

	return nil
}

func (a *SandboxApp) mainLoop() error {
	log.Printf("main loop!\n")

	for !a.window.ShouldClose() {
		glfw.PollEvents()
	}

	return nil
}

// cleanVulkan destroys the Vulkan objects in dependency order. Handles which
// were never created are skipped, so it is safe to call after a partial
// initVulkan.
func (a *SandboxApp) cleanVulkan() {
	if a.device != vk.Device(vk.NullHandle) {
		if err := vkerr.Check(vk.DeviceWaitIdle(a.device), "vkDeviceWaitIdle"); err != nil {
			log.Printf("WARNING: %s", err)
		}
	}

	for _, imageView := range a.swapchainImageViews {
		vk.DestroyImageView(a.device, imageView, nil)
	}
	a.swapchainImageViews = nil

	a.shaderStages = nil
	if a.vertexShader != vk.ShaderModule(vk.NullHandle) {
		vk.DestroyShaderModule(a.device, a.vertexShader, nil)
		a.vertexShader = vk.ShaderModule(vk.NullHandle)
	}
	if a.fragmentShader != vk.ShaderModule(vk.NullHandle) {
		vk.DestroyShaderModule(a.device, a.fragmentShader, nil)
		a.fragmentShader = vk.ShaderModule(vk.NullHandle)
	}

	if a.swapchain != vk.NullSwapchain {
		vk.DestroySwapchain(a.device, a.swapchain, nil)
		a.swapchain = vk.NullSwapchain
	}
	a.swapchainImages = nil

	if a.device != vk.Device(vk.NullHandle) {
		vk.DestroyDevice(a.device, nil)
		a.device = vk.Device(vk.NullHandle)
	}
	if a.surface != vk.NullSurface {
		vk.DestroySurface(a.instance, a.surface, nil)
		a.surface = vk.NullSurface
	}

	// The physical device belongs to the instance.
	if a.instance != vk.Instance(vk.NullHandle) {
		vk.DestroyInstance(a.instance, nil)
		a.instance = vk.Instance(vk.NullHandle)
	}
}
