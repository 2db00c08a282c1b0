package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateCenteredLayer centers content on screens of various sizes
func TestCreateCenteredLayer(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{"normal screen", "Center", 100, 50, 47, 24},
		{"content wider than screen", "This content is much wider than the screen", 10, 3, 0, 1},
		{"multiline", "a\nb\nc", 20, 9, 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)

			require.NotNil(t, layer)
			assert.Equal(t, tt.wantX, layer.GetX())
			assert.Equal(t, tt.wantY, layer.GetY())
		})
	}
}

// TestCreateCenteredLayerWithEmptyContent tests layer creation with empty content
func TestCreateCenteredLayerWithEmptyContent(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 120, 40))
}

func TestModalSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"large screen clamps to max width", 200, 60, ModalMaxWidth, 48},
		{"medium screen uses 80%", 80, 30, 64, 24},
		{"small screen raises to minimum", 45, 11, ModalMinWidth, ModalMinHeight},
		{"tiny screen never exceeds screen", 20, 5, 20, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ModalSize(tt.width, tt.height)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
