package main

import (
	"log"

	"vulkan-test/vkerr"
	"vulkan-test/vkinfo"
	"vulkan-test/vkstr"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

func (a *SandboxApp) createInstance() error {
	layers, err := instanceLayers()
	if err != nil {
		return err
	}
	a.info.Layers(layers)

	extensions, err := instanceExtensions()
	if err != nil {
		return err
	}
	a.info.Extensions(extensions)

	if a.cfg.Debug {
		if !vkinfo.HasLayer(layers, a.cfg.ValidationLayer) {
			return errors.Newf("validation layer %s requested but not available",
				a.cfg.ValidationLayer)
		}
		a.enabledLayers = []string{vkstr.Safe(a.cfg.ValidationLayer)}
		log.Printf("enabling validation layer %s", a.cfg.ValidationLayer)
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   vkstr.Safe(title),
		ApplicationVersion: vk.MakeVersion(0, 0, 0),
		PEngineName:        vkstr.Safe(engineName),
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		ApiVersion:         vk.ApiVersion10,
	}

	glfwExtensions := vkstr.SafeStrings(a.window.GetRequiredInstanceExtensions())
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(glfwExtensions)),
		PpEnabledExtensionNames: glfwExtensions,
		EnabledLayerCount:       uint32(len(a.enabledLayers)),
		PpEnabledLayerNames:     a.enabledLayers,
	}

	var instance vk.Instance
	err = vkerr.Check(vk.CreateInstance(&createInfo, nil, &instance), "vkCreateInstance")
	if err != nil {
		return err
	}

	a.instance = instance
	return nil
}

func (a *SandboxApp) createSurface() error {
	surfacePtr, err := a.window.CreateWindowSurface(a.instance, nil)
	if err != nil {
		return errors.Wrap(err, "cannot create surface within GLFW window")
	}

	a.surface = vk.SurfaceFromPointer(surfacePtr)
	return nil
}

func instanceLayers() ([]vkinfo.Layer, error) {
	var count uint32
	res := vk.EnumerateInstanceLayerProperties(&count, nil)
	if err := vkerr.Check(res, "vkEnumerateInstanceLayerProperties"); err != nil {
		return nil, err
	}

	properties := make([]vk.LayerProperties, count)
	res = vk.EnumerateInstanceLayerProperties(&count, properties)
	if err := vkerr.Check(res, "vkEnumerateInstanceLayerProperties"); err != nil {
		return nil, err
	}

	layers := make([]vkinfo.Layer, 0, count)
	for _, layer := range properties[:count] {
		layer.Deref()
		layers = append(layers, vkinfo.LayerFromVk(layer))
	}
	return layers, nil
}

func instanceExtensions() ([]vkinfo.Extension, error) {
	var count uint32
	res := vk.EnumerateInstanceExtensionProperties("", &count, nil)
	if err := vkerr.Check(res, "vkEnumerateInstanceExtensionProperties"); err != nil {
		return nil, err
	}

	properties := make([]vk.ExtensionProperties, count)
	res = vk.EnumerateInstanceExtensionProperties("", &count, properties)
	if err := vkerr.Check(res, "vkEnumerateInstanceExtensionProperties"); err != nil {
		return nil, err
	}

	extensions := make([]vkinfo.Extension, 0, count)
	for _, ext := range properties[:count] {
		ext.Deref()
		extensions = append(extensions, vkinfo.ExtensionFromVk(ext))
	}
	return extensions, nil
}
