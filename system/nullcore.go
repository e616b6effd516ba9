package system

// NullCore registers the model's peripherals but executes no instructions.
// Frontends run it until an instruction core is linked in, and tests use
// it to count steps.
type NullCore struct {
	Steps uint64
}

// Init registers the peripherals of sys.Model.
func (c *NullCore) Init(sys *System) error {
	c.Steps = 0
	return RegisterModelDevices(sys)
}

// Step counts one instruction.
func (c *NullCore) Step(sys *System) {
	c.Steps++
}
