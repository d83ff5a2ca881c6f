package core

import "github.com/emberfield/palisade/internal/common"

// InvasionClock tracks the day counter and the invasion's remaining distance.
// Distance is clamped to [0, initialDistance]; the clock never fails.
type InvasionClock struct {
	initialDistance int
	distance        int
	speedPerTurn    int
	day             int
}

// NewInvasionClock creates a clock at full distance on day 1.
func NewInvasionClock(initialDistance, speedPerTurn int) *InvasionClock {
	return &InvasionClock{
		initialDistance: initialDistance,
		distance:        initialDistance,
		speedPerTurn:    speedPerTurn,
		day:             1,
	}
}

// Progress advances the invasion by one day: the distance shrinks by the
// per-turn speed (clamped at 0) and the day increments. Returns the new
// distance.
func (c *InvasionClock) Progress() int {
	c.distance = common.Max(0, c.distance-c.speedPerTurn)
	c.day++
	return c.distance
}

// Delay pushes the invasion back, clamped so the distance never exceeds the
// starting distance.
func (c *InvasionClock) Delay(amount int) int {
	c.distance = common.Min(c.initialDistance, c.distance+amount)
	return c.distance
}

// HasArrived reports whether the invasion has reached the village.
func (c *InvasionClock) HasArrived() bool {
	return c.distance <= 0
}

// Distance returns the remaining distance.
func (c *InvasionClock) Distance() int {
	return c.distance
}

// InitialDistance returns the starting distance.
func (c *InvasionClock) InitialDistance() int {
	return c.initialDistance
}

// SpeedPerTurn returns how far the invasion moves each day.
func (c *InvasionClock) SpeedPerTurn() int {
	return c.speedPerTurn
}

// Day returns the current day, starting at 1.
func (c *InvasionClock) Day() int {
	return c.day
}
