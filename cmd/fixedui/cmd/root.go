// Package cmd implements the fixedui CLI commands.
//
// A root command dispatches to subcommands (status, check, render, sim).
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-drift/fixedui/pkg/config"
)

var (
	// Version is stamped with -ldflags at release time.
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is one fixedui subcommand. Run receives the arguments after the
// command name.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

const rootLong = `fixedui is a fixed-capacity retained-mode widget toolkit for small
displays. The CLI checks a project's fixedui.yaml against the showcase UI,
renders frames to PNG and simulates the panel in a terminal.

Use "fixedui <command> --help" for more information about a command.`

const rootUsage = "fixedui [--dir DIR] <command> [flags]"

var (
	registry = map[string]*Command{}
	ordered  []*Command // help listing, in registration order
)

// out is where commands print. Tests replace it.
var out io.Writer = os.Stdout

// projectDir holds --dir; empty means the working directory.
var projectDir string

// RegisterCommand makes cmd reachable as "fixedui <cmd.Name>".
func RegisterCommand(cmd *Command) {
	registry[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// Execute parses the global flags in front of the command name and runs
// the command with what follows it.
func Execute(args []string) error {
	projectDir = ""

flags:
	for len(args) > 0 {
		arg := args[0]
		switch {
		case isHelp(arg):
			printHelp()
			return nil
		case arg == "-v" || arg == "--version" || arg == "version":
			fmt.Fprintf(out, "fixedui version %s (built %s)\n", Version, BuildTime)
			return nil
		case arg == "--dir":
			if len(args) < 2 {
				return fmt.Errorf("--dir requires a directory path")
			}
			projectDir, args = args[1], args[2:]
		case strings.HasPrefix(arg, "--dir="):
			projectDir, args = strings.TrimPrefix(arg, "--dir="), args[1:]
		default:
			break flags
		}
	}

	if len(args) == 0 {
		printHelp()
		return nil
	}

	name, rest := args[0], args[1:]
	cmd, ok := registry[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}
	if slices.ContainsFunc(rest, isHelp) {
		printCommandHelp(cmd)
		return nil
	}
	return cmd.Run(rest)
}

// workDir returns the project root containing projectDir, or projectDir
// itself when it is not inside a Go module.
func workDir() (string, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	if root, err := config.FindProjectRoot(dir); err == nil {
		return root, nil
	}
	return dir, nil
}

// loadConfig reads fixedui.yaml from the project root, falling back to
// defaults when the file is absent.
func loadConfig() (*config.Config, error) {
	dir, err := workDir()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(dir)
}

func printHelp() {
	fmt.Fprintf(out, "%s\n\nUsage:\n  %s\n\nCommands:\n", rootLong, rootUsage)
	for _, c := range ordered {
		fmt.Fprintf(out, "  %-14s %s\n", c.Name, c.Short)
	}
	fmt.Fprint(out, `
Flags:
  -h, --help           Show help for a command
  -v, --version        Show version information
  --dir DIR            Project directory (default: working directory)

Examples:
  fixedui check                    Validate fixedui.yaml
  fixedui render -o hello.png      Render the hello counter
  fixedui sim layouts              Run the layouts demo in the terminal
`)
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintf(out, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.Usage)
}
