// Package vkerr turns Vulkan result codes into Go errors which remember the
// call that produced them.
package vkerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Error is a failed Vulkan call.
type Error struct {
	// Op is the name of the Vulkan function which returned Result.
	Op string

	// Result is the code returned by the driver.
	Result vk.Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %v (%d)", e.Op, vk.Error(e.Result), int32(e.Result))
}

// Unwrap returns the error vulkan-go associates with Result.
func (e *Error) Unwrap() error {
	return vk.Error(e.Result)
}

// Check returns nil when res is a success code and an *Error otherwise.
// Positive codes such as vk.Incomplete or vk.NotReady are not failures.
func Check(res vk.Result, op string) error {
	if res >= vk.Success {
		return nil
	}

	return errors.WithStack(&Error{Op: op, Result: res})
}

// Result extracts the Vulkan result code from anywhere in err's chain.
func Result(err error) (vk.Result, bool) {
	var vkErr *Error
	if !errors.As(err, &vkErr) {
		return vk.Success, false
	}
	return vkErr.Result, true
}

// Is reports whether err was caused by a Vulkan call returning res.
func Is(err error, res vk.Result) bool {
	got, ok := Result(err)
	return ok && got == res
}
