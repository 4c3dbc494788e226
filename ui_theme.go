package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Panel and button colors follow the editor palette: muted rose panels
// with green idle buttons.
var (
	panelColor         = color.RGBA{R: 204, G: 129, B: 143, A: 77}
	borderColor        = color.RGBA{R: 46, G: 45, B: 66, A: 255}
	buttonIdleColor    = color.RGBA{R: 113, G: 240, B: 90, A: 255}
	buttonHoverColor   = color.RGBA{R: 212, G: 74, B: 118, A: 255}
	buttonPressedColor = color.RGBA{R: 252, G: 144, B: 61, A: 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(borderColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(buttonIdleColor),
				Hover:   solidNineSlice(buttonHoverColor),
				Pressed: solidNineSlice(buttonPressedColor),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}
