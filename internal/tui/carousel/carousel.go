// Package carousel tracks the horizontal scroll state of one catalog row.
package carousel

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	// Epsilon absorbs rounding at the right edge.
	Epsilon = 10.0
	// PageFraction of the viewport is covered by one Scroll call.
	PageFraction = 0.8

	CardWidth = 26
	CardGap   = 1

	fps = 60
)

type Direction int

const (
	Left Direction = iota
	Right
)

// Edges reports whether the row can scroll further left or right.
func Edges(offset, contentWidth, viewportWidth float64) (canLeft, canRight bool) {
	canLeft = offset > 0
	canRight = contentWidth > viewportWidth && offset < contentWidth-viewportWidth-Epsilon
	return canLeft, canRight
}

// ContentWidth is the total width of n cards laid out with gaps.
func ContentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n*(CardWidth+CardGap) - CardGap)
}

// FrameMsg advances the animation of the controller with the same ID.
type FrameMsg struct {
	ID int
}

type Controller struct {
	id int

	items         int
	offset        float64
	velocity      float64
	target        float64
	contentWidth  float64
	viewportWidth float64

	canLeft   bool
	canRight  bool
	animating bool

	spring harmonica.Spring
}

// New returns nil for an empty row: rows without items get no controller.
func New(id, items, viewportWidth int) *Controller {
	if items <= 0 {
		return nil
	}
	c := &Controller{
		id:     id,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
	c.viewportWidth = float64(viewportWidth)
	c.SetItems(items)
	return c
}

func (c *Controller) ID() int { return c.id }
func (c *Controller) Offset() float64 { return c.offset }
func (c *Controller) Target() float64 { return c.target }
func (c *Controller) CanScrollLeft() bool { return c.canLeft }
func (c *Controller) CanScrollRight() bool { return c.canRight }
func (c *Controller) ViewportWidth() int { return int(c.viewportWidth) }

// Scroll moves the target by 80% of the viewport. Rapid calls accumulate on
// the target; the running animation picks up the new target.
func (c *Controller) Scroll(dir Direction) tea.Cmd {
	amount := c.viewportWidth * PageFraction
	if dir == Left {
		amount = -amount
	}
	c.target = c.clamp(c.target + amount)
	return c.animate()
}

// EnsureVisible moves the target just enough to show card index.
func (c *Controller) EnsureVisible(index int) tea.Cmd {
	if index < 0 || index >= c.items {
		return nil
	}
	left := float64(index * (CardWidth + CardGap))
	right := left + CardWidth
	switch {
	case left < c.target:
		c.target = left
	case right > c.target+c.viewportWidth:
		c.target = right - c.viewportWidth
	default:
		return nil
	}
	c.target = c.clamp(c.target)
	return c.animate()
}

// Update steps the spring by one frame.
func (c *Controller) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != c.id || !c.animating {
		return nil
	}
	offset, velocity := c.spring.Update(c.offset, c.velocity, c.target)
	if math.Abs(c.target-offset) < 0.5 && math.Abs(velocity) < 0.5 {
		offset = c.target
		velocity = 0
		c.animating = false
	}
	c.velocity = velocity
	c.OnScrollPositionChanged(c.clamp(offset), c.contentWidth, c.viewportWidth)
	if c.animating {
		return c.frame()
	}
	return nil
}

// OnScrollPositionChanged records externally observed scroll metrics.
func (c *Controller) OnScrollPositionChanged(offset, contentWidth, viewportWidth float64) {
	c.offset = offset
	c.contentWidth = contentWidth
	c.viewportWidth = viewportWidth
	c.canLeft, c.canRight = Edges(offset, contentWidth, viewportWidth)
}

// SetItems is the content-changed event: edges are recomputed immediately.
func (c *Controller) SetItems(n int) {
	c.items = n
	c.contentWidth = ContentWidth(n)
	c.reclamp()
}

// SetViewport handles terminal resizes.
func (c *Controller) SetViewport(width int) {
	c.viewportWidth = float64(width)
	c.reclamp()
}

func (c *Controller) reclamp() {
	c.target = c.clamp(c.target)
	if !c.animating {
		c.offset = c.target
	}
	c.OnScrollPositionChanged(c.clamp(c.offset), c.contentWidth, c.viewportWidth)
}

func (c *Controller) maxOffset() float64 {
	return math.Max(0, c.contentWidth-c.viewportWidth)
}

func (c *Controller) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), c.maxOffset())
}

func (c *Controller) animate() tea.Cmd {
	if c.animating || c.target == c.offset {
		return nil
	}
	c.animating = true
	return c.frame()
}

func (c *Controller) frame() tea.Cmd {
	id := c.id
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
