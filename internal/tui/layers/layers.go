// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// Modal sizing bounds, in cells
const (
	ModalMinWidth  = 40
	ModalMaxWidth  = 90
	ModalMinHeight = 10
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(1)
}

// ModalSize returns the width and height for a centered modal:
// 80% of the screen, clamped to the modal bounds and the screen itself.
func ModalSize(screenWidth, screenHeight int) (int, int) {
	width := screenWidth * 8 / 10
	width = max(width, ModalMinWidth)
	width = min(width, ModalMaxWidth, screenWidth)

	height := screenHeight * 8 / 10
	height = max(height, ModalMinHeight)
	height = min(height, screenHeight)

	return max(width, 0), max(height, 0)
}
