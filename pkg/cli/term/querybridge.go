package term

// DeviceAttributes is the decoded response to a primary Device Attributes
// (DA1) query, \x1b[c, of the form \x1b[?<class>;<ext1>;<ext2>...c.
// Grounded on blessed.keyboard.DeviceAttribute.
type DeviceAttributes struct {
	ServiceClass int
	Extensions   map[int]bool
}

// SupportsSixel reports whether the terminal advertised sixel graphics
// support (extension 4) in its Device Attributes response.
func (d DeviceAttributes) SupportsSixel() bool {
	return d.Extensions[4]
}

// QueryBridge carries the callbacks resolveCSI invokes when it
// consumes a report that is not itself a keystroke a caller should see:
// a Device Attributes response, or an in-band window resize report. Both
// fields are optional; a nil callback is simply not called. Grounded on
// the "push back and resume" intent of blessed.terminal.Terminal._read_until,
// adapted into callbacks since this package's resolver never blocks.
type QueryBridge struct {
	OnDeviceAttributes func(DeviceAttributes)
	OnResize           func(rows, cols int)
}
