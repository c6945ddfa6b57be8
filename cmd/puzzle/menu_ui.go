package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/arcade/puzzle"
)

var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// NewMenuUI builds the theme picker: one button per built-in theme, a text
// field for a theme of the player's own, the Fuzzle toggle and a replay
// button for the last theme.
func NewMenuUI(a *App) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 235})
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	rowWidth := screenWidth/2 - 60

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenWidth/2, screenHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Choose a theme", &uiFace, colornames.Gold),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Level %d", a.level), &uiFace, color.White),
		widget.TextOpts.WidgetOpts(center),
	))

	for _, th := range a.themes.All() {
		key := th.Key
		idle := imageui.NewNineSliceColor(th.Wall)
		hover := imageui.NewNineSliceColor(th.Goal)
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
			widget.ButtonOpts.Text(fmt.Sprintf("%s  -  %s", th.Name, th.Description), &uiFace, &widget.ButtonTextColor{Idle: color.White, Hover: color.Black}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(rowWidth, 28), center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { a.start(key) }),
		))
	}

	startCustom := func(text string) {
		if theme, ok := puzzle.CustomTheme(text); ok {
			a.start(theme)
		}
	}
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 255})
	button := func(label string, width int, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(label, &uiFace, &widget.ButtonTextColor{Idle: color.White}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28), center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	customRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	customInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(rowWidth-130, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 255}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(&uiFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			startCustom(args.InputText)
		}),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Or type your own theme:", &uiFace, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	))
	customRow.AddChild(customInput)
	customRow.AddChild(button("Start custom", 120, func() { startCustom(customInput.GetText()) }))
	panel.AddChild(customRow)

	fuzzleLabel := widget.NewText(
		widget.TextOpts.Text(fuzzleText(a.fuzzle), &uiFace, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	)
	panel.AddChild(button("Toggle Fuzzle", 160, func() {
		a.fuzzle = !a.fuzzle
		fuzzleLabel.Label = fuzzleText(a.fuzzle)
	}))
	panel.AddChild(fuzzleLabel)

	if a.theme != "" {
		last := a.theme
		panel.AddChild(button(fmt.Sprintf("Play %s again", last), 220, func() { a.start(last) }))
	}

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("In game: arrows/WASD move, R restart, H hint, Esc back", &uiFace, colornames.Gray),
		widget.TextOpts.WidgetOpts(center),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func fuzzleText(on bool) string {
	if on {
		return "Fuzzle: on (the grid shifts as you move)"
	}
	return "Fuzzle: off"
}
