package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette used by the brick breaker renderer.
const (
	ColorDefault Color = iota
	ColorBrick         // Active brick
	ColorBlink         // Brick flashing before removal
	ColorBall
	ColorPaddleWarm // Left half of the paddle gradient
	ColorPaddleHot  // Right half of the paddle gradient
	ColorHUD
	ColorAccent // Affordable shop items, countdown
	ColorDim    // Locked or unaffordable items
)
