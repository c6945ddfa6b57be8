package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/arcade/common"
	"github.com/milk9111/arcade/levelgen"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// NewMenuUI lists every theme as a button; picking one starts generation of
// the current level in that theme.
func NewMenuUI(g *Game, themes []levelgen.Theme) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 230})

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Choose a world", &uiFace, colornames.Gold),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Level %d", g.levelNumber), &uiFace, color.White),
		widget.TextOpts.WidgetOpts(center),
	))

	for _, th := range themes {
		key := th.Key
		idle := imageui.NewNineSliceColor(th.Platform)
		hover := imageui.NewNineSliceColor(th.Accent)
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
			widget.ButtonOpts.Text(fmt.Sprintf("%s  -  %s", th.Name, th.Description), &uiFace, &widget.ButtonTextColor{Idle: color.White, Hover: color.Black}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(common.BaseWidth/2-60, 28), center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { g.startLevel(key) }),
		))
	}

	soundLabel := widget.NewText(
		widget.TextOpts.Text(soundText(g.sound.Enabled()), &uiFace, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	)
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Toggle sound", &uiFace, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28), center),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			on := g.toggleSound()
			soundLabel.Label = soundText(on)
		}),
	))
	panel.AddChild(soundLabel)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func soundText(on bool) string {
	if on {
		return "Sound: on"
	}
	return "Sound: off"
}
