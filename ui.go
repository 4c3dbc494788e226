package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/leveledit/assets"
	"github.com/milk9111/leveledit/editor"
)

// EditorUI owns the retained widget tree: the toolbar across the top
// and the toggleable tile picker on the left.
type EditorUI struct {
	UI *ebitenui.UI

	root    *widget.Container
	toolBar *ToolBar
	picker  *widget.Container

	pickerVisible bool
}

func BuildEditorUI(
	atlas *assets.Atlas,
	onToolSelected func(tool editor.Tool),
	onTileSelected func(tileIndex int),
) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToolSelected, editor.ToolDrawTile)
	picker := buildTilePicker(atlas, onTileSelected)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolBar.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	picker.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(toolBar.Container)

	ui.Container = root

	return &EditorUI{
		UI:      ui,
		root:    root,
		toolBar: toolBar,
		picker:  picker,
	}
}

// TogglePicker shows or hides the tile picker panel.
func (u *EditorUI) TogglePicker() {
	if u.pickerVisible {
		u.root.RemoveChild(u.picker)
	} else {
		u.root.AddChild(u.picker)
	}
	u.pickerVisible = !u.pickerVisible
}

// PickerVisible reports whether the tile picker is shown.
func (u *EditorUI) PickerVisible() bool {
	return u.pickerVisible
}

// CollectRegions rebuilds the occlusion set from the widget rectangles
// laid out this frame.
func (u *EditorUI) CollectRegions(r *editor.RegionSet) {
	r.Reset()
	r.AddRect(u.toolBar.Container.GetWidget().Rect)
	if u.pickerVisible {
		r.AddRect(u.picker.GetWidget().Rect)
	}
}
