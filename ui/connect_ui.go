package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/peerfinder/network"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectUI asks for a player name and a server address.
type ConnectUI struct {
	UI *ebitenui.UI

	OnConnect func(address, playerName string)
	OnGoBack  func()

	nameInput    *widget.TextInput
	addressInput *widget.TextInput
	statusLabel  *widget.Label
	connectBtn   *widget.Button

	defaultAddress string
	defaultName    string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewConnectUI(defaultAddress, defaultName string, onConnect func(address, playerName string), onGoBack func()) (*ConnectUI, error) {
	ui := &ConnectUI{
		OnConnect:      onConnect,
		OnGoBack:       onGoBack,
		defaultAddress: defaultAddress,
		defaultName:    defaultName,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *ConnectUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
	return nil
}

func (ui *ConnectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MULTIPLAYER", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	))

	panel := ui.buildFormPanel()
	contentContainer.AddChild(panel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) buildFormPanel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	var nameRow, addressRow *widget.Container
	nameRow, ui.nameInput = ui.buildInputRow("Name:   ", ui.defaultName, 200)
	addressRow, ui.addressInput = ui.buildInputRow("Server: ", ui.defaultAddress, 280)
	panel.AddChild(nameRow)
	panel.AddChild(addressRow)

	ui.connectBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Connect", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.address(), ui.playerName())
			}
		}),
	)
	panel.AddChild(ui.connectBtn)

	return panel
}

func (ui *ConnectUI) buildInputRow(label, placeholder string, width int) (*widget.Container, *widget.TextInput) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(input)
	return row, input
}

func (ui *ConnectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	))

	return container
}

func (ui *ConnectUI) address() string {
	return network.NormalizeAddress(ui.addressInput.GetText(), ui.defaultAddress)
}

func (ui *ConnectUI) playerName() string {
	name := strings.TrimSpace(ui.nameInput.GetText())
	if name == "" {
		return ui.defaultName
	}
	return name
}

func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ConnectUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *ConnectUI) Update() {
	ui.UI.Update()
}
