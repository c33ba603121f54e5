package console

import (
	"fmt"
	"regexp"

	"github.com/rafathanna/invento-app/internal/config"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CmdTheme shows or persists the console appearance preferences.
func (c *Console) CmdTheme(args []string) error {
	if len(args) == 0 || args[0] == "show" {
		mode := "light"
		if c.prefs.DarkMode {
			mode = "dark"
		}
		fmt.Printf("Mode:   %s\n", mode)
		fmt.Printf("Accent: %s %s\n", c.prefs.AccentColor, accentStyle.Render("■■■"))
		return nil
	}

	switch args[0] {
	case "accent":
		if len(args) < 2 {
			return fmt.Errorf("usage: invento theme accent <#rrggbb>")
		}
		if !hexColorRE.MatchString(args[1]) {
			return fmt.Errorf("invalid accent color %q, expected #rrggbb", args[1])
		}
		c.prefs.AccentColor = args[1]
	case "dark":
		on := true
		if len(args) > 1 && (args[1] == "off" || args[1] == "false") {
			on = false
		}
		c.prefs.DarkMode = on
	default:
		return fmt.Errorf("unknown theme subcommand: %s", args[0])
	}

	if err := config.SavePreferences(*c.prefs); err != nil {
		return err
	}
	applyTheme(c.prefs)
	fmt.Printf("%s✓ Theme saved%s\n", Green, Reset)
	return nil
}
