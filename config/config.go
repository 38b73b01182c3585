package config

import "image/color"

// MenuCard describes one selectable mode card on the main menu.
type MenuCard struct {
	Title    string
	Subtitle string
	// ProfileID is the scoreboard variant the card opens. Cards without a
	// profile are shown but cannot be entered.
	ProfileID string
	Accent    color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title              string
	BackgroundColor    color.RGBA
	BackgroundAccent   color.RGBA
	TitleColor         color.RGBA
	TextColorNormal    color.RGBA
	TextColorSelected  color.RGBA
	TextColorDisabled  color.RGBA
	CardColor          color.RGBA
	CardInnerColor     color.RGBA
	CardBorder         color.RGBA
	CardBorderSelected color.RGBA
	TitleY             float64
	CardY              float64
	CardWidth          float64
	CardHeight         float64
	CardGap            float64
	CardBorderWidth    float32
	SelectedBorder     float32
	StatusY            float64
	StatusFrames       int     // frames a status line stays visible
	PulseScale         float32 // extra border width at the peak of the selection pulse
	PulseSeconds       float32
	Cards              []MenuCard
}

// ScoreboardConfig contains scoreboard screen configuration values
type ScoreboardConfig struct {
	BackgroundColor   color.RGBA
	HeaderColor       color.RGBA
	PanelColor        color.RGBA
	ScoreColor        color.RGBA
	TeamColor         color.RGBA
	LabelColor        color.RGBA
	ClockRunningColor color.RGBA
	ClockStoppedColor color.RGBA
	ClockExpiredColor color.RGBA
	PossessionColor   color.RGBA
	TimeoutOnColor    color.RGBA
	TimeoutOffColor   color.RGBA

	HeaderHeight float64
	HomeX        float64 // horizontal center of the home column
	AwayX        float64
	TeamY        float64 // baselines
	ScoreY       float64
	SetsY        float64
	PeriodY      float64
	ClockY       float64
	PossessionY  float64
	StatusY      float64
	TimeoutY     float64 // center of the timeout dots
	TimeoutDot   float32 // dot radius
	TimeoutGap   float32
	ClockWidth   float64 // clickable area around the clock
	ClockHeight  float64
	PanelTop     float64

	// Score "pop" when a value changes
	PopScale   float32
	PopSeconds float32

	StatusFrames int
}

// Config holds general application configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains command-line options that change startup
type DebugConfig struct {
	SkipMenu bool   // Open the scoreboard directly
	Variant  string // Profile opened by SkipMenu
	Overlay  bool   // Outline hotspots and show TPS, toggled with F3
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Scoreboard ScoreboardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan         = color.RGBA{R: 64, G: 224, B: 255, A: 255}
	PurpleDark   = color.RGBA{R: 45, G: 25, B: 85, A: 255}
	PurpleMid    = color.RGBA{R: 85, G: 45, B: 125, A: 255}
	PurpleLight  = color.RGBA{R: 125, G: 85, B: 165, A: 255}
	NavyDark     = color.RGBA{R: 30, G: 58, B: 95, A: 255}
	SteelBlue    = color.RGBA{R: 74, G: 111, B: 165, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Tablescore",
		TPS:    60,
	}

	Menu = MenuConfig{
		Title:              "GAME MODE SELECTION",
		BackgroundColor:    PurpleDark,
		BackgroundAccent:   PurpleMid,
		TitleColor:         White,
		TextColorNormal:    White,
		TextColorSelected:  Orange,
		TextColorDisabled:  Gray,
		CardColor:          PurpleMid,
		CardInnerColor:     PurpleDark,
		CardBorder:         White,
		CardBorderSelected: Orange,
		TitleY:             60,
		CardY:              120,
		CardWidth:          150,
		CardHeight:         270,
		CardGap:            20,
		CardBorderWidth:    2,
		SelectedBorder:     4,
		StatusY:            450,
		StatusFrames:       120,
		PulseScale:         2,
		PulseSeconds:       0.6,
		Cards: []MenuCard{
			{Title: "Ranked", Subtitle: "Tablesoccer Scoreboard", ProfileID: "tablesoccer", Accent: PurpleMid},
			{Title: "Solo", Subtitle: "Volleyball Scoreboard", ProfileID: "volleyball", Accent: PurpleMid},
			{Title: "Duo", Subtitle: "Battle Royale", Accent: PurpleMid},
			{Title: "Trio", Subtitle: "Battle Royale", Accent: PurpleMid},
			{Title: "Pay to Play", Subtitle: "Scan QR to Pay", Accent: PurpleLight},
		},
	}

	Scoreboard = ScoreboardConfig{
		BackgroundColor:   NavyDark,
		HeaderColor:       SteelBlue,
		PanelColor:        color.RGBA{R: 42, G: 74, B: 122, A: 255},
		ScoreColor:        White,
		TeamColor:         White,
		LabelColor:        color.RGBA{R: 200, G: 210, B: 230, A: 255},
		ClockRunningColor: BrightGreen,
		ClockStoppedColor: White,
		ClockExpiredColor: LightRed,
		PossessionColor:   Orange,
		TimeoutOnColor:    Orange,
		TimeoutOffColor:   color.RGBA{R: 70, G: 90, B: 120, A: 255},

		HeaderHeight: 40,
		HomeX:        200,
		AwayX:        760,
		TeamY:        80,
		ScoreY:       200,
		SetsY:        238,
		PeriodY:      80,
		ClockY:       150,
		PossessionY:  210,
		StatusY:      280,
		TimeoutY:     258,
		TimeoutDot:   6,
		TimeoutGap:   20,
		ClockWidth:   220,
		ClockHeight:  64,
		PanelTop:     292,

		PopScale:   0.35,
		PopSeconds: 0.25,

		StatusFrames: 90,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Variant:  "tablesoccer",
	}
}
