package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a showcase demo to PNG",
		Long: `Launch a showcase demo on the software framebuffer and write one frame
as a PNG image.

With --taps N the first button is tapped N times at its centre before the
frame is written.

Flags:
  -o, --output FILE   Output path (default: fixedui.png)
  --taps N            Tap the first button N times

Demos: hello (default), layouts, align`,
		Usage: "fixedui render [demo] [-o FILE] [--taps N]",
		Run:   runRender,
	})
}

type renderOptions struct {
	output string
	taps   int
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{output: "fixedui.png"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", arg)
			}
			opts.output = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			opts.output = strings.TrimPrefix(arg, "--output=")
		case arg == "-taps" || arg == "--taps":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a count", arg)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return opts, fmt.Errorf("invalid tap count %q", args[i+1])
			}
			opts.taps = n
			i++
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	demo, args, err := lookupDemo(args)
	if err != nil {
		return err
	}
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := newSession(cfg, demo, true)
	if err != nil {
		return err
	}
	defer s.close()

	if opts.taps > 0 {
		center, ok := s.buttonCenter()
		if !ok {
			return fmt.Errorf("demo %q has no button to tap", demo.Name)
		}
		for i := 0; i < opts.taps; i++ {
			s.tap(center)
		}
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.output, err)
	}
	if err := s.canvas.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%s, %dx%d, data=%d)\n",
		opts.output, demo.Name, cfg.Display.Width, cfg.Display.Height, s.state.Data())
	return nil
}
