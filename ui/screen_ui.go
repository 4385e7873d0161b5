package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"golang.org/x/image/font/gofont/goregular"
)

// Button is one clickable entry on a screen.
type Button struct {
	Label   string
	OnClick func()
}

// ScreenUI is a centred column: an optional title, text lines, then a row
// of buttons. The main menu and the give-up screen are both built from it.
type ScreenUI struct {
	UI *ebitenui.UI

	TitleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	lines []*widget.Label
}

// NewScreenUI builds a screen. An empty title leaves room for a title the
// scene draws itself.
func NewScreenUI(title string, lines []string, hint string, buttons []Button) *ScreenUI {
	ui := &ScreenUI{}
	ui.loadFonts()
	ui.buildUI(title, lines, hint, buttons)
	return ui
}

func (ui *ScreenUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.TitleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *ScreenUI) buildUI(title string, lines []string, hint string, buttons []Button) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Blank title keeps the layout stable under a scene-drawn title
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.TitleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for _, line := range lines {
		label := widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{
				Idle: cfg.White,
			}),
		)
		ui.lines = append(ui.lines, label)
		contentContainer.AddChild(label)
	}

	contentContainer.AddChild(ui.buildButtons(buttons))

	if hint != "" {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(hint, &ui.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.HintColor,
			}),
		))
	}

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ScreenUI) buildButtons(buttons []Button) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	for _, b := range buttons {
		onClick := b.OnClick
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 50)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(cfg.Menu.ButtonColor),
				Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
				Pressed: image.NewNineSliceColor(cfg.Menu.BackgroundColor),
			}),
			widget.ButtonOpts.Text(b.Label, &ui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.Menu.ButtonText,
				Hover:   cfg.BrightOrange,
				Pressed: color.RGBA{200, 150, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		container.AddChild(btn)
	}

	return container
}

func (ui *ScreenUI) Update() {
	ui.UI.Update()
}
