package cmd

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project status",
		Long: `Show the resolved configuration of the fixedui project.

Prints the module path, application name and ID, display size, arena
capacities, theme font and log level. Values missing from fixedui.yaml are
shown with their defaults.`,
		Usage: "fixedui status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	dir, err := workDir()
	if err != nil {
		return err
	}
	if _, err := config.FindProjectRoot(dir); err != nil {
		return err
	}

	res, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	cfg := res.Config
	th, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Project: %s (%s)\n", res.AppName, res.AppID)
	fmt.Fprintf(out, "Module:  %s\n", res.ModulePath)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-10s %dx%d\n", "display:", cfg.Display.Width, cfg.Display.Height)
	fmt.Fprintf(out, "  %-10s %d\n", "widgets:", cfg.Capacity.Widgets)
	fmt.Fprintf(out, "  %-10s %d (slot 0 reserved)\n", "windows:", cfg.Capacity.Windows)
	fmt.Fprintf(out, "  %-10s %s %gpx\n", "font:", th.FontName, th.TextSize)
	fmt.Fprintf(out, "  %-10s %s\n", "log:", cfg.Log.Level)
	return nil
}
