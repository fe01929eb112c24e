package main

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (a *SandboxApp) initWindow() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw.Init")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(a.cfg.Width, a.cfg.Height, title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "glfw.CreateWindow")
	}

	a.window = window
	return nil
}

// cleanWindow also runs when glfw.Init failed; glfw.Terminate is a no-op in
// that case.
func (a *SandboxApp) cleanWindow() {
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	glfw.Terminate()
}
