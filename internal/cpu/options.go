package cpu

import "github.com/thelolagemann/sm83core/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables a per instruction trace, logged at debug level.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.Log = l
	}
}
