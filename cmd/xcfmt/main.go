// Command xcfmt is an ambient developer tool, not a supported front-end
// of the library: it round-trips a project.pbxproj,
// contents.xcworkspacedata, or .xcconfig file through xcproj and reports
// whether the rendered output is byte-identical to the source.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/xcproj"
	"github.com/standardbeagle/xcproj/internal/version"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	app := &cli.App{
		Name:    "xcfmt",
		Usage:   "round-trip an Xcode project/workspace/xcconfig file and report drift",
		Version: version.Info(),
		Commands: []*cli.Command{
			checkCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse then render a file, reporting whether it is byte-identical modulo a trailing newline",
		ArgsUsage: "<path>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "includes", Usage: "resolve #include directives for .xcconfig inputs", Value: true},
			&cli.BoolFlag{Name: "diff", Usage: "print the first differing line on failure"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("xcfmt check: expected at least one path", 2)
			}
			failures := 0
			for _, path := range c.Args().Slice() {
				ok, err := checkOne(path, c.Bool("includes"), c.Bool("diff"))
				if err != nil {
					fmt.Printf("%s %s: %v\n", failStyle.Render("FAIL"), pathStyle.Render(path), err)
					failures++
					continue
				}
				if !ok {
					failures++
				}
			}
			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d file(s) did not round-trip cleanly", failures), 1)
			}
			return nil
		},
	}
}

func checkOne(path string, includes, showDiff bool) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	rendered, err := roundTrip(path, string(original), includes)
	if err != nil {
		return false, err
	}

	same := strings.TrimRight(string(original), "\n") == strings.TrimRight(rendered, "\n")
	if same {
		fmt.Printf("%s %s\n", passStyle.Render("PASS"), pathStyle.Render(path))
		return true, nil
	}

	fmt.Printf("%s %s\n", failStyle.Render("FAIL"), pathStyle.Render(path))
	if showDiff {
		printFirstDiff(string(original), rendered)
	}
	return false, nil
}

// roundTrip dispatches on filename to the matching parser/renderer pair.
func roundTrip(path, src string, includes bool) (string, error) {
	switch {
	case strings.HasSuffix(path, "project.pbxproj"):
		proj, err := xcproj.Parse(path, src)
		if err != nil {
			return "", err
		}
		return proj.Content()
	case strings.HasSuffix(path, "contents.xcworkspacedata"):
		ws, err := xcproj.ParseWorkspace(path, src)
		if err != nil {
			return "", err
		}
		return ws.Content(), nil
	case filepath.Ext(path) == ".xcconfig":
		cfg, err := xcproj.OpenConfiguration(path, includes)
		if err != nil {
			return "", err
		}
		return cfg.Content(), nil
	default:
		return "", fmt.Errorf("unrecognized file kind: %s", filepath.Base(path))
	}
}

// printFirstDiff prints the first line at which original and rendered
// diverge, for a quick look without reaching for an external diff tool.
func printFirstDiff(original, rendered string) {
	origLines := strings.Split(original, "\n")
	renderedLines := strings.Split(rendered, "\n")
	n := len(origLines)
	if len(renderedLines) < n {
		n = len(renderedLines)
	}
	for i := 0; i < n; i++ {
		if origLines[i] != renderedLines[i] {
			fmt.Printf("  line %d:\n    - %s\n    + %s\n", i+1, origLines[i], renderedLines[i])
			return
		}
	}
	fmt.Printf("  line count differs: %d vs %d\n", len(origLines), len(renderedLines))
}
