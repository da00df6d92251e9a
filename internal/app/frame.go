package app

import "strings"

// clock turns window time into lesson time and can be paused.
type clock struct {
	paused   bool
	pausedAt float64
	offset   float64
}

// now returns lesson time for the raw window time.
func (c *clock) now(raw float64) float64 {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return raw - c.offset
}

// toggle pauses or resumes at raw. Paused time is not counted.
func (c *clock) toggle(raw float64) {
	if c.paused {
		c.offset += raw - c.pausedAt
		c.paused = false
		return
	}
	c.pausedAt = raw
	c.paused = true
}

// windowTitle builds the title bar text for a lesson.
func windowTitle(base, lesson string, paused, shaderErr bool) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(" - ")
	b.WriteString(lesson)
	if paused {
		b.WriteString(" [paused]")
	}
	if shaderErr {
		b.WriteString(" [shader error]")
	}
	return b.String()
}
