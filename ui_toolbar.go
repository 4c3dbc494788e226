package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/leveledit/editor"
)

// ToolBar is the row of tool toggle buttons at the top of the screen.
type ToolBar struct {
	Container *widget.Container
	group     *widget.RadioGroup
	buttons   []*widget.Button
}

var toolOrder = []editor.Tool{
	editor.ToolDrawTile,
	editor.ToolDrawHazard,
	editor.ToolDrawMob,
	editor.ToolErase,
	editor.ToolPlacePlayer,
}

var toolLabels = map[editor.Tool]string{
	editor.ToolDrawTile:    "Tile",
	editor.ToolDrawHazard:  "Hazard",
	editor.ToolDrawMob:     "Mob",
	editor.ToolErase:       "Erase",
	editor.ToolPlacePlayer: "Player",
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, onToolSelected func(tool editor.Tool), initialTool editor.Tool) *ToolBar {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.Black,
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 4, Right: 4}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
	)

	var toolButtons []*widget.Button
	for _, tool := range toolOrder {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(toolLabels[tool], fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(toolOrder[idx])
					return
				}
			}
		}),
	)

	for idx, tool := range toolOrder {
		if tool == initialTool {
			group.SetActive(toolButtons[idx])
		}
	}

	return &ToolBar{Container: toolbar, group: group, buttons: toolButtons}
}
