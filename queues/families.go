// Package queues holds the queue family choices of the sandbox.
package queues

import (
	vk "github.com/vulkan-go/vulkan"
)

// Family is the queue family every queue is created from. No attempt is made
// to find the most suitable one.
const Family uint32 = 0

// Priorities returns count priorities, all of them 1.0.
func Priorities(count uint32) []float32 {
	priorities := make([]float32, count)
	for i := range priorities {
		priorities[i] = 1.0
	}
	return priorities
}

// Clamp limits the number of requested queues to what the family offers.
// A family always provides at least one queue, so the result is never zero
// unless nothing was requested.
func Clamp(requested, available uint32) uint32 {
	if available == 0 {
		available = 1
	}
	if requested > available {
		return available
	}
	return requested
}

var flagNames = []struct {
	bit  vk.QueueFlagBits
	name string
}{
	{vk.QueueGraphicsBit, "graphics"},
	{vk.QueueComputeBit, "compute"},
	{vk.QueueTransferBit, "transfer"},
	{vk.QueueSparseBindingBit, "sparse binding"},
}

// FlagNames lists the capabilities set in flags.
func FlagNames(flags vk.QueueFlags) []string {
	var names []string
	for _, f := range flagNames {
		if flags&vk.QueueFlags(f.bit) != 0 {
			names = append(names, f.name)
		}
	}
	return names
}
