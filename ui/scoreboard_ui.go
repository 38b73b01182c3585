package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/automoto/tablescore/components"
	"github.com/automoto/tablescore/shared/match"
	"github.com/automoto/tablescore/shared/profile"
	"github.com/automoto/tablescore/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ScoreboardUI is the clickable control panel below the scoreboard.
type ScoreboardUI struct {
	UI         *ebitenui.UI
	Scoreboard *components.ScoreboardData

	// Callbacks
	OnBack func()

	ecs *ecs.ECS

	// Widget references for updates
	toggleButton     *widget.Button
	possessionButton [2]*widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewScoreboardUI creates the control panel for the scene's scoreboard.
func NewScoreboardUI(e *ecs.ECS, sb *components.ScoreboardData, onBack func()) *ScoreboardUI {
	sui := &ScoreboardUI{
		Scoreboard: sb,
		OnBack:     onBack,
		ecs:        e,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *ScoreboardUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *ScoreboardUI) buildUI() {
	// Transparent root so the scoreboard drawn underneath stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(sui.buildTeamColumn(match.Home))
	panel.AddChild(sui.buildClockColumn())
	panel.AddChild(sui.buildTeamColumn(match.Away))

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// UpdateUI runs from Update, once widgets are validated
}

func (sui *ScoreboardUI) buildTeamColumn(side match.Side) *widget.Container {
	column := sui.column()

	column.AddChild(sui.label(sui.Scoreboard.Profile.TeamName(side)))
	column.AddChild(sui.stepperRow("Score", match.Command{Kind: match.CmdScore, Side: side}))
	column.AddChild(sui.stepperRow("Sets", match.Command{Kind: match.CmdSets, Side: side}))
	column.AddChild(sui.stepperRow("Timeouts", match.Command{Kind: match.CmdTimeouts, Side: side}))

	label := strings.ToLower(sui.Scoreboard.Profile.PossessionLabel)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	btn := sui.button(label, 150, sui.buttonImage(), match.Command{Kind: match.CmdPossession, Side: side})
	sui.possessionButton[side] = btn
	column.AddChild(btn)

	return column
}

func (sui *ScoreboardUI) buildClockColumn() *widget.Container {
	column := sui.column()

	sui.toggleButton = sui.button("Start", 200, sui.startButtonImage(), match.Command{Kind: match.CmdToggleClock})
	column.AddChild(sui.toggleButton)

	row := sui.row()
	row.AddChild(sui.button("Reset Clock", 96, sui.buttonImage(), match.Command{Kind: match.CmdResetClock}))
	for i, preset := range sui.Scoreboard.Session.Rules().Presets {
		row.AddChild(sui.button(preset.String(), 48, sui.buttonImage(), match.Command{Kind: match.CmdPreset, Index: i}))
	}
	column.AddChild(row)

	column.AddChild(sui.stepperRow(sui.Scoreboard.Profile.PeriodNoun, match.Command{Kind: match.CmdPeriod}))

	row = sui.row()
	signal := "Whistle"
	if sui.Scoreboard.Profile.Signal == profile.SignalHorn {
		signal = "Horn"
	}
	row.AddChild(sui.button(signal, 96, sui.buttonImage(), match.Command{Kind: match.CmdSignal}))
	row.AddChild(sui.button("Reset Game", 96, sui.dangerButtonImage(), match.Command{Kind: match.CmdResetGame}))
	column.AddChild(row)

	back := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 22),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back to game modes", &sui.smallFace, sui.textColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnBack != nil {
				sui.OnBack()
			}
		}),
	)
	column.AddChild(back)

	return column
}

// stepperRow is a caption with "-" and "+" buttons applying cmd with a
// delta of -1 and +1.
func (sui *ScoreboardUI) stepperRow(caption string, cmd match.Command) *widget.Container {
	row := sui.row()

	lbl := widget.NewLabel(
		widget.LabelOpts.Text(caption, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 210, 230, 255},
		}),
	)
	lbl.GetWidget().MinWidth = 70
	row.AddChild(lbl)

	minus, plus := cmd, cmd
	minus.Delta = -1
	plus.Delta = 1
	row.AddChild(sui.button("-", 36, sui.buttonImage(), minus))
	row.AddChild(sui.button("+", 36, sui.buttonImage(), plus))

	return row
}

func (sui *ScoreboardUI) button(label string, width int, img *widget.ButtonImage, cmd match.Command) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 24),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &sui.normalFace, sui.textColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ApplyCommand(sui.ecs, sui.Scoreboard, cmd)
			sui.UpdateUI()
		}),
	)
}

func (sui *ScoreboardUI) label(s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

func (sui *ScoreboardUI) column() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (sui *ScoreboardUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
}

func (sui *ScoreboardUI) textColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{120, 120, 120, 255},
	}
}

func (sui *ScoreboardUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 90, 140, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 115, 170, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 65, 110, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 70, 255}),
	}
}

func (sui *ScoreboardUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 120, 60, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 150, 80, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 90, 45, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func (sui *ScoreboardUI) dangerButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{140, 50, 50, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{170, 70, 70, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{110, 40, 40, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 40, 40, 255}),
	}
}

// UpdateUI refreshes button labels and states from the current view.
func (sui *ScoreboardUI) UpdateUI() {
	view := sui.Scoreboard.View

	if sui.toggleButton != nil {
		if textWidget := sui.toggleButton.Text(); textWidget != nil {
			if view.Clock.Running {
				textWidget.Label = "Stop"
			} else {
				textWidget.Label = "Start"
			}
		}
	}

	// The side that already has possession can't take it again
	for side, btn := range sui.possessionButton {
		if btn != nil {
			btn.GetWidget().Disabled = match.Side(side) == view.Possession
		}
	}
}

// Update processes ebitenui input. Call once per frame after the ECS update.
func (sui *ScoreboardUI) Update() {
	sui.UI.Update()

	// Keyboard shortcuts and the clock goroutine change the view too
	sui.UpdateUI()
}
