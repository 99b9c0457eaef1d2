// Package animations steps simple frame cycles for the debug renderer.
package animations

// Cycle advances through frames First..Last, holding each for FrameTime
// seconds.
type Cycle struct {
	First            int
	Last             int
	FrameTime        float64
	FreezeOnComplete bool // stay on Last instead of looping
	Looped           bool

	elapsed float64
	frame   int
}

func NewCycle(first, last int, frameTime float64) *Cycle {
	return &Cycle{
		First:     first,
		Last:      last,
		FrameTime: frameTime,
		frame:     first,
	}
}

func (c *Cycle) Update(dt float64) {
	if c.FrameTime <= 0 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.FrameTime {
		c.elapsed -= c.FrameTime
		if c.frame < c.Last {
			c.frame++
			continue
		}
		c.Looped = true
		if !c.FreezeOnComplete {
			c.frame = c.First
		}
	}
}

func (c *Cycle) Frame() int {
	return c.frame
}

func (c *Cycle) Restart() {
	c.frame = c.First
	c.elapsed = 0
	c.Looped = false
}
