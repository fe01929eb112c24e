package main

import (
	"context"
	"log"
	"os"

	"vulkan-test/shaders"
	"vulkan-test/spirv"
	"vulkan-test/vkerr"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// createShaderModules wraps vert.spv and frag.spv in shader modules and
// prepares their pipeline stage descriptions.
func (a *SandboxApp) createShaderModules(ctx context.Context) error {
	code, err := shaders.Load(ctx, os.DirFS(a.cfg.ShaderDir),
		shaders.VertexFile, shaders.FragmentFile)
	if err != nil {
		return err
	}

	vertexShader, err := a.createShaderModule(shaders.VertexFile, code[0])
	if err != nil {
		return err
	}
	a.vertexShader = vertexShader

	fragmentShader, err := a.createShaderModule(shaders.FragmentFile, code[1])
	if err != nil {
		return err
	}
	a.fragmentShader = fragmentShader

	a.shaderStages = []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: a.vertexShader,
			PName:  "main\x00",
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: a.fragmentShader,
			PName:  "main\x00",
		},
	}

	return nil
}

func (a *SandboxApp) createShaderModule(name string, code []byte) (vk.ShaderModule, error) {
	words, err := spirv.Decode(code)
	if err != nil {
		return vk.ShaderModule(vk.NullHandle), errors.Wrap(err, name)
	}

	if a.cfg.Debug {
		if hdr, err := spirv.ParseHeader(words); err == nil {
			log.Printf("%s: %d bytes, SPIR-V %s, bound %d", name, len(code), hdr.Version, hdr.Bound)
		}
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)),
		PCode:    words,
	}

	var shaderModule vk.ShaderModule
	res := vk.CreateShaderModule(a.device, &createInfo, nil, &shaderModule)
	if err := vkerr.Check(res, "vkCreateShaderModule"); err != nil {
		return vk.ShaderModule(vk.NullHandle), errors.Wrap(err, name)
	}
	return shaderModule, nil
}
