package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/stepper/internal/config"
)

// Theme is a complete palette.
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Success color.Color
	Error   color.Color
	Muted   color.Color
	Normal  color.Color
	Info    color.Color
	Warning color.Color
}

// newTheme builds a palette from color strings in Theme field order.
func newTheme(primary, accent, success, errc, muted, normal, info, warning string) Theme {
	c := lipgloss.Color
	return Theme{c(primary), c(accent), c(success), c(errc), c(muted), c(normal), c(info), c(warning)}
}

var (
	defaultDark  = newTheme("62", "212", "82", "196", "240", "252", "244", "214")
	defaultLight = newTheme("25", "163", "28", "160", "246", "236", "242", "130")

	nordDark  = newTheme("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4", "#81a1c1", "#ebcb8b")
	nordLight = newTheme("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440", "#81a1c1", "#d08770")

	mocha = newTheme("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4", "#94e2d5", "#fab387")
	latte = newTheme("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69", "#179299", "#fe640b")

	// plain keeps the terminal's own colors; bold and italics still apply.
	plain = Theme{
		lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{},
		lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{},
	}
)

// family pairs the light and dark variant of a named theme.
type family struct {
	name        string
	light, dark Theme
}

// families lists the themes accepted by theme.name, in config order.
var families = []family{
	{name: "none", light: plain, dark: plain},
	{name: "default", light: defaultLight, dark: defaultDark},
	{name: "nord", light: nordLight, dark: nordDark},
	{name: "catppuccin", light: latte, dark: mocha},
}

var current Theme

// Current returns the active palette.
func Current() Theme {
	return current
}

// Available lists the built-in themes for display.
func Available() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// Init activates the theme configured in cfg, then applies per-color
// overrides. Call it once after loading config, before any UI renders.
func Init(cfg config.ThemeConfig) {
	t := selectTheme(cfg, terminalIsDark)

	for _, o := range []struct {
		value string
		dst   *color.Color
	}{
		{cfg.Primary, &t.Primary},
		{cfg.Accent, &t.Accent},
		{cfg.Success, &t.Success},
		{cfg.Error, &t.Error},
		{cfg.Muted, &t.Muted},
		{cfg.Normal, &t.Normal},
		{cfg.Info, &t.Info},
		{cfg.Warning, &t.Warning},
	} {
		if o.value != "" {
			*o.dst = lipgloss.Color(o.value)
		}
	}

	t.apply()
}

func terminalIsDark() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// selectTheme resolves cfg to a palette. isDark is only called in auto
// mode, and not at all for the colorless theme.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	f, ok := lookup(cfg.Name)
	if !ok {
		warnf("unknown theme %q, using default (available: %s)", cfg.Name, strings.Join(Available(), ", "))
		f, _ = lookup("default")
	}

	switch cfg.Mode {
	case "light":
		return f.light
	case "dark":
		return f.dark
	case "", "auto":
	default:
		warnf("unknown theme mode %q, using auto (available: %s)", cfg.Mode, strings.Join(config.ValidThemeModes, ", "))
	}

	if f.light == f.dark || isDark() {
		return f.dark
	}
	return f.light
}

// lookup finds a family by name. An empty name is the default theme.
func lookup(name string) (family, bool) {
	if name == "" {
		name = "default"
	}
	for _, f := range families {
		if f.name == name {
			return f, true
		}
	}
	return family{}, false
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
