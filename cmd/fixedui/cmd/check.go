package cmd

import (
	"fmt"

	"github.com/go-drift/fixedui/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate configuration against the showcase UI",
		Long: `Validate fixedui.yaml and check that the configured capacities can hold
every showcase demo.

Each demo needs one window slot plus slot 0, and as many widget slots as
its tree registers. The command fails if any demo does not fit.`,
		Usage: "fixedui check",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Fprintf(out, "Capacity: %d widgets, %d windows\n", cfg.Capacity.Widgets, cfg.Capacity.Windows)
	fmt.Fprintln(out)

	var failed []string
	for _, d := range showcase.Demos() {
		status := "ok"
		if d.Widgets > cfg.Capacity.Widgets {
			status = fmt.Sprintf("needs %d widgets", d.Widgets)
			failed = append(failed, d.Name)
		}
		fmt.Fprintf(out, "  %-10s %2d widgets  %s\n", d.Name+":", d.Widgets, status)
	}

	if len(failed) > 0 {
		return fmt.Errorf("capacity.widgets too small for %v", failed)
	}
	return nil
}
