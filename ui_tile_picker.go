package main

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/leveledit/assets"
)

// buildTilePicker lays the atlas cells out as a clickable grid, one
// Graphic per tile.
func buildTilePicker(atlas *assets.Atlas, onTileSelected func(tileIndex int)) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(atlasCols),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)

	for i := 0; i < atlas.Count(); i++ {
		idx := i
		cell := widget.NewGraphic(
			widget.GraphicOpts.Image(atlas.Tile(idx)),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(atlas.TileSize(), atlas.TileSize()),
				widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
					if onTileSelected != nil {
						onTileSelected(idx)
					}
				}),
			),
		)
		grid.AddChild(cell)
	}

	panel.AddChild(grid)
	return panel
}
