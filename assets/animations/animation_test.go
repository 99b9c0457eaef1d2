package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleLoops(t *testing.T) {
	c := NewCycle(0, 2, 0.25)
	c.Update(0.2)
	assert.Equal(t, 0, c.Frame())
	c.Update(0.1)
	assert.Equal(t, 1, c.Frame())
	c.Update(0.5)
	assert.Equal(t, 0, c.Frame())
	assert.True(t, c.Looped)
}

func TestCycleFreeze(t *testing.T) {
	c := NewCycle(3, 5, 0.1)
	c.FreezeOnComplete = true
	c.Update(10)
	assert.Equal(t, 5, c.Frame())
	assert.True(t, c.Looped)

	c.Restart()
	assert.Equal(t, 3, c.Frame())
	assert.False(t, c.Looped)
}
