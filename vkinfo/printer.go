package vkinfo

import (
	"fmt"
	"io"

	"github.com/xlab/tablewriter"
)

const rule = "---------------------------------------------------"

// Printer writes human readable diagnostics. Write errors are ignored; the
// output is informational only.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Layers prints the instance layers.
func (p *Printer) Layers(layers []Layer) {
	fmt.Fprintf(p.w, "Number of Instance Layers: %d\n", len(layers))
	for i, l := range layers {
		fmt.Fprintln(p.w, rule)
		fmt.Fprintf(p.w, "Layer #%d\n", i)
		fmt.Fprintf(p.w, "Layer Name: %s\n", l.Name)
		fmt.Fprintf(p.w, "Layer Spec Version: %s\n", l.SpecVersion)
		fmt.Fprintf(p.w, "Layer Impl Version: %d\n", l.ImplementationVersion)
		fmt.Fprintf(p.w, "Layer Description: %s\n", l.Description)
	}
	if len(layers) > 0 {
		fmt.Fprintln(p.w, rule)
	}
}

// Extensions prints the instance extensions.
func (p *Printer) Extensions(extensions []Extension) {
	fmt.Fprintf(p.w, "Number of Instance Extensions: %d\n", len(extensions))
	for i, e := range extensions {
		fmt.Fprintln(p.w, rule)
		fmt.Fprintf(p.w, "Extension #%d\n", i)
		fmt.Fprintf(p.w, "Extension Name: %s\n", e.Name)
		fmt.Fprintf(p.w, "Extension Spec Version: %d\n", e.SpecVersion)
	}
	if len(extensions) > 0 {
		fmt.Fprintln(p.w, rule)
	}
}

// Device prints the properties of a physical device followed by its queue
// families.
func (p *Printer) Device(index int, d Device) {
	fmt.Fprintf(p.w, "Physical Device #%d\n", index)
	fmt.Fprintf(p.w, "Name: %s\n", d.Name)
	fmt.Fprintf(p.w, "API Version: %s\n", d.APIVersion)
	fmt.Fprintf(p.w, "Driver Version: %d\n", d.DriverVersion)
	fmt.Fprintf(p.w, "Vendor ID: %#x\n", d.VendorID)
	fmt.Fprintf(p.w, "Device ID: %#x\n", d.DeviceID)
	fmt.Fprintf(p.w, "Device Type: %s\n", d.Type)
	fmt.Fprintf(p.w, "Discrete Queue Priorities: %d\n", d.DiscreteQueuePriorities)
	fmt.Fprintf(p.w, "Pipeline Cache UUID: %s\n", d.PipelineCacheUUID)
	fmt.Fprintf(p.w, "Memory Types: %d\n", d.MemoryTypeCount)
	fmt.Fprintf(p.w, "Memory Heaps: %d\n", d.MemoryHeapCount)
	fmt.Fprintln(p.w)

	p.QueueFamilies(d.QueueFamilies)
}

// QueueFamilies prints one table row per family.
func (p *Printer) QueueFamilies(families []QueueFamily) {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle(fmt.Sprintf("QUEUE FAMILIES (%d)", len(families)))
	table.AddRow("#", "Graphics", "Compute", "Transfer", "Sparse", "Queues", "Timestamp Bits", "Transfer Granularity")
	table.AddSeparator()
	for i, f := range families {
		g := f.MinImageTransferGranularity
		table.AddRow(i, f.Graphics, f.Compute, f.Transfer, f.SparseBinding,
			f.QueueCount, f.TimestampValidBits,
			fmt.Sprintf("%d, %d, %d", g.Width, g.Height, g.Depth))
	}
	fmt.Fprintln(p.w, table.Render())
}

// Surface prints the capabilities of a surface.
func (p *Printer) Surface(caps SurfaceCaps) {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle("PHYSICAL DEVICE SURFACE CAPABILITIES")
	table.AddRow("Image count", fmt.Sprintf("%d - %d", caps.MinImageCount, caps.MaxImageCount))
	table.AddRow("Current extent", caps.CurrentExtent.String())
	table.AddRow("Image extent", fmt.Sprintf("%s - %s", caps.MinImageExtent, caps.MaxImageExtent))
	table.AddRow("Max array layers", caps.MaxImageArrayLayers)
	table.AddRow("Supported transforms", fmt.Sprintf("%#02x", caps.SupportedTransforms))
	table.AddRow("Current transform", fmt.Sprintf("%#02x", caps.CurrentTransform))
	table.AddRow("Supported composite alpha", fmt.Sprintf("%#02x", caps.SupportedCompositeAlpha))
	table.AddRow("Supported usage flags", fmt.Sprintf("%#02x", caps.SupportedUsageFlags))
	fmt.Fprintln(p.w, table.Render())
}
