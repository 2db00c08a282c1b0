package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a markdown description, falling back to the
// raw text if glamour fails
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return SubtleStyle.Render("No description")
	}

	renderer, err := getRenderer(max(props.Width, 20))
	if err != nil {
		return props.Description
	}
	rendered, err := renderer.Render(props.Description)
	if err != nil {
		return props.Description
	}
	return strings.TrimSpace(rendered)
}
