package player

// CriticalSection excludes the timer handler from itself by masking its own
// interrupt source. Acquire masks the source, Release unmasks it. There is a
// single hardware thread, so no lock is involved.
type CriticalSection struct {
	hw   Hardware
	held bool
}

// NewCriticalSection returns a released critical section over hw.
func NewCriticalSection(hw Hardware) *CriticalSection {
	return &CriticalSection{hw: hw}
}

// Acquire disables the timer interrupt. Acquiring a held section means the
// handler re-entered, which cannot be recovered from, so it panics.
func (c *CriticalSection) Acquire() {
	if c.held {
		panic("player: timer handler re-entered")
	}
	c.hw.DisableTimerInterrupt()
	c.held = true
}

// Release re-enables the timer interrupt.
func (c *CriticalSection) Release() {
	if !c.held {
		panic("player: release of unheld critical section")
	}
	c.held = false
	c.hw.EnableTimerInterrupt()
}

// Held reports whether the timer interrupt is currently masked by c.
func (c *CriticalSection) Held() bool { return c.held }
