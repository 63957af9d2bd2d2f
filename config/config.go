package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"disview/render"
)

type Config struct {
	Theme     string `json:"theme"`
	Bits      int    `json:"bits"`       // address width; hex digits = bits/4
	Org       uint64 `json:"org"`        // default load address
	PaneWidth int    `json:"pane_width"` // symbol pane width in cells
}

type ColorScheme struct {
	Name       string
	Background tcell.Color
	Foreground tcell.Color
	Selection  tcell.Color

	Address      tcell.Color
	Segment      tcell.Color
	Function     tcell.Color
	Invalid      tcell.Color
	Stop         tcell.Color
	Nop          tcell.Color
	Call         tcell.Color
	Jump         tcell.Color
	JumpCond     tcell.Color
	Memory       tcell.Color
	Immediate    tcell.Color
	Displacement tcell.Color
	Register     tcell.Color
	Comment      tcell.Color

	StatusBarBg     tcell.Color
	StatusBarFg     tcell.Color
	StatusBarModeBg tcell.Color
	PaneHeaderFg    tcell.Color
	PaneItemFg      tcell.Color
	PaneSelectionBg tcell.Color
	PaneBorder      tcell.Color
}

// RunStyle maps a renderer style tag onto a concrete tcell style. Unknown
// tags fall back to the plain foreground, matching the renderer's "empty
// style means default" contract.
func (t *ColorScheme) RunStyle(tag render.Style) tcell.Style {
	base := tcell.StyleDefault.Background(t.Background)
	switch tag {
	case render.StyleAddress:
		return base.Foreground(t.Address)
	case render.StyleSegment:
		return base.Foreground(t.Segment).Bold(true)
	case render.StyleFunction:
		return base.Foreground(t.Function).Bold(true)
	case render.StyleInvalid:
		return base.Foreground(t.Invalid)
	case render.StyleStop:
		return base.Foreground(t.Stop)
	case render.StyleNop:
		return base.Foreground(t.Nop)
	case render.StyleCall:
		return base.Foreground(t.Call)
	case render.StyleJump:
		return base.Foreground(t.Jump)
	case render.StyleJumpCond:
		return base.Foreground(t.JumpCond)
	case render.StyleMemory:
		return base.Foreground(t.Memory)
	case render.StyleImmediate:
		return base.Foreground(t.Immediate)
	case render.StyleDisplacement:
		return base.Foreground(t.Displacement)
	case render.StyleRegister:
		return base.Foreground(t.Register)
	case render.StyleComment:
		return base.Foreground(t.Comment).Italic(true)
	default:
		return base.Foreground(t.Foreground)
	}
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:            "Dark",
		Background:      tcell.ColorBlack,
		Foreground:      tcell.ColorWhite,
		Selection:       tcell.ColorDarkBlue,
		Address:         tcell.ColorGray,
		Segment:         tcell.ColorYellow,
		Function:        tcell.ColorAqua,
		Invalid:         tcell.ColorRed,
		Stop:            tcell.ColorFuchsia,
		Nop:             tcell.ColorGray,
		Call:            tcell.ColorLime,
		Jump:            tcell.ColorGreen,
		JumpCond:        tcell.ColorOlive,
		Memory:          tcell.ColorTeal,
		Immediate:       tcell.ColorSilver,
		Displacement:    tcell.ColorAqua,
		Register:        tcell.ColorWhite,
		Comment:         tcell.ColorGray,
		StatusBarBg:     tcell.ColorDarkBlue,
		StatusBarFg:     tcell.ColorWhite,
		StatusBarModeBg: tcell.ColorBlue,
		PaneHeaderFg:    tcell.ColorYellow,
		PaneItemFg:      tcell.ColorWhite,
		PaneSelectionBg: tcell.ColorDarkBlue,
		PaneBorder:      tcell.ColorGray,
	},
	"monokai": {
		Name:            "Monokai",
		Background:      tcell.NewRGBColor(39, 40, 34),
		Foreground:      tcell.NewRGBColor(248, 248, 242),
		Selection:       tcell.NewRGBColor(73, 72, 62),
		Address:         tcell.NewRGBColor(144, 144, 128),
		Segment:         tcell.NewRGBColor(230, 219, 116),
		Function:        tcell.NewRGBColor(166, 226, 46),
		Invalid:         tcell.NewRGBColor(249, 38, 114),
		Stop:            tcell.NewRGBColor(174, 129, 255),
		Nop:             tcell.NewRGBColor(117, 113, 94),
		Call:            tcell.NewRGBColor(166, 226, 46),
		Jump:            tcell.NewRGBColor(102, 217, 239),
		JumpCond:        tcell.NewRGBColor(230, 219, 116),
		Memory:          tcell.NewRGBColor(102, 217, 239),
		Immediate:       tcell.NewRGBColor(174, 129, 255),
		Displacement:    tcell.NewRGBColor(253, 151, 31),
		Register:        tcell.NewRGBColor(248, 248, 242),
		Comment:         tcell.NewRGBColor(117, 113, 94),
		StatusBarBg:     tcell.NewRGBColor(73, 72, 62),
		StatusBarFg:     tcell.NewRGBColor(248, 248, 242),
		StatusBarModeBg: tcell.NewRGBColor(102, 217, 239),
		PaneHeaderFg:    tcell.NewRGBColor(249, 38, 114),
		PaneItemFg:      tcell.NewRGBColor(248, 248, 242),
		PaneSelectionBg: tcell.NewRGBColor(73, 72, 62),
		PaneBorder:      tcell.NewRGBColor(144, 144, 128),
	},
	"gruvbox": {
		Name:            "Gruvbox Dark",
		Background:      tcell.NewRGBColor(40, 40, 40),
		Foreground:      tcell.NewRGBColor(235, 219, 178),
		Selection:       tcell.NewRGBColor(60, 56, 54),
		Address:         tcell.NewRGBColor(146, 131, 116),
		Segment:         tcell.NewRGBColor(250, 189, 47),
		Function:        tcell.NewRGBColor(184, 187, 38),
		Invalid:         tcell.NewRGBColor(251, 73, 52),
		Stop:            tcell.NewRGBColor(211, 134, 155),
		Nop:             tcell.NewRGBColor(146, 131, 116),
		Call:            tcell.NewRGBColor(184, 187, 38),
		Jump:            tcell.NewRGBColor(131, 165, 152),
		JumpCond:        tcell.NewRGBColor(250, 189, 47),
		Memory:          tcell.NewRGBColor(131, 165, 152),
		Immediate:       tcell.NewRGBColor(211, 134, 155),
		Displacement:    tcell.NewRGBColor(254, 128, 25),
		Register:        tcell.NewRGBColor(235, 219, 178),
		Comment:         tcell.NewRGBColor(146, 131, 116),
		StatusBarBg:     tcell.NewRGBColor(60, 56, 54),
		StatusBarFg:     tcell.NewRGBColor(235, 219, 178),
		StatusBarModeBg: tcell.NewRGBColor(184, 187, 38),
		PaneHeaderFg:    tcell.NewRGBColor(254, 128, 25),
		PaneItemFg:      tcell.NewRGBColor(235, 219, 178),
		PaneSelectionBg: tcell.NewRGBColor(60, 56, 54),
		PaneBorder:      tcell.NewRGBColor(102, 92, 84),
	},
	"nord": {
		Name:            "Nord",
		Background:      tcell.NewRGBColor(46, 52, 64),
		Foreground:      tcell.NewRGBColor(236, 239, 244),
		Selection:       tcell.NewRGBColor(67, 76, 94),
		Address:         tcell.NewRGBColor(76, 86, 106),
		Segment:         tcell.NewRGBColor(235, 203, 139),
		Function:        tcell.NewRGBColor(136, 192, 208),
		Invalid:         tcell.NewRGBColor(191, 97, 106),
		Stop:            tcell.NewRGBColor(180, 142, 173),
		Nop:             tcell.NewRGBColor(76, 86, 106),
		Call:            tcell.NewRGBColor(163, 190, 140),
		Jump:            tcell.NewRGBColor(129, 161, 193),
		JumpCond:        tcell.NewRGBColor(235, 203, 139),
		Memory:          tcell.NewRGBColor(129, 161, 193),
		Immediate:       tcell.NewRGBColor(180, 142, 173),
		Displacement:    tcell.NewRGBColor(208, 135, 112),
		Register:        tcell.NewRGBColor(236, 239, 244),
		Comment:         tcell.NewRGBColor(97, 110, 136),
		StatusBarBg:     tcell.NewRGBColor(67, 76, 94),
		StatusBarFg:     tcell.NewRGBColor(236, 239, 244),
		StatusBarModeBg: tcell.NewRGBColor(136, 192, 208),
		PaneHeaderFg:    tcell.NewRGBColor(136, 192, 208),
		PaneItemFg:      tcell.NewRGBColor(236, 239, 244),
		PaneSelectionBg: tcell.NewRGBColor(67, 76, 94),
		PaneBorder:      tcell.NewRGBColor(76, 86, 106),
	},
}

func Default() *Config {
	return &Config{
		Theme:     "monokai",
		Bits:      16,
		Org:       0x0600,
		PaneWidth: 24,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["monokai"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "disview", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
