package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/saltytine/csnap/internal/clipboard"
	"github.com/saltytine/csnap/internal/config"
	"github.com/saltytine/csnap/internal/display"
	"github.com/saltytine/csnap/internal/engine"
	"github.com/saltytine/csnap/internal/highlight"
	"github.com/saltytine/csnap/internal/initcmd"
	"github.com/saltytine/csnap/internal/profile"
	"github.com/saltytine/csnap/internal/render"
	"github.com/saltytine/csnap/internal/shots"
	"github.com/saltytine/csnap/internal/tracking"
)

const version = "0.1.0"

// Run is the main entry point. Returns exit code.
func Run(args []string) int {
	flags, remaining, err := ParseFlags(args[1:])
	if err != nil {
		display.PrintError(err.Error())
		return 1
	}

	if flags.Version {
		fmt.Printf("csnap v%s\n", version)
		return 0
	}
	if flags.Help {
		printUsage()
		return 0
	}

	// Built-in commands
	if len(remaining) > 0 {
		command := remaining[0]
		cmdArgs := remaining[1:]

		switch command {
		case "init":
			if err := initcmd.Run(cmdArgs); err != nil {
				display.PrintError(err.Error())
				return 1
			}
			return 0

		case "config":
			cfg, err := config.Load()
			if err != nil {
				display.PrintError(err.Error())
				return 1
			}
			printConfig(cfg)
			return 0

		case "styles":
			for _, name := range styles.Names() {
				fmt.Println(name)
			}
			return 0

		case "history":
			tracker, err := lazyTracker()
			if err != nil {
				display.PrintError(err.Error())
				return 1
			}
			if tracker != nil {
				defer tracker.Close()
			}
			if err := display.RunHistory(tracker, cmdArgs); err != nil {
				display.PrintError(err.Error())
				return 1
			}
			return 0

		case "doctor":
			return runDoctor()
		}
	}

	// Snapshot pipeline
	return runSnapshot(remaining, flags)
}

// renderSettings are the effective values after merging config,
// profile, and flags, in that order.
type renderSettings struct {
	Style       string
	Font        string
	SplitAt     string
	DPI         int
	Width       int
	MaxLines    int
	LineNumbers bool
}

func resolveSettings(cfg *config.Config, flags Flags) (renderSettings, error) {
	s := renderSettings{
		Style:    cfg.Render.Style,
		Font:     cfg.Render.Font,
		SplitAt:  cfg.Render.SplitAt,
		DPI:      cfg.Render.DPI,
		Width:    cfg.Render.Width,
		MaxLines: cfg.Render.MaxLines,
	}

	if flags.Profile != "" {
		profiles, err := profile.LoadAll(cfg.Profiles.Dir)
		if err != nil {
			return s, fmt.Errorf("load profiles: %w", err)
		}
		p := profile.Find(profiles, flags.Profile)
		if p == nil {
			return s, fmt.Errorf("unknown profile %q", flags.Profile)
		}
		if p.Style != "" {
			s.Style = p.Style
		}
		if p.Font != "" {
			s.Font = p.Font
		}
		if p.DPI > 0 {
			s.DPI = p.DPI
		}
		if p.Width > 0 {
			s.Width = p.Width
		}
		if p.MaxLines > 0 {
			s.MaxLines = p.MaxLines
		}
		if p.SplitAt != "" {
			s.SplitAt = p.SplitAt
		}
		s.LineNumbers = p.LineNumbers
	}

	if flags.Style != "" {
		s.Style = flags.Style
	}
	if flags.DPI > 0 {
		s.DPI = flags.DPI
	}
	if flags.Width > 0 {
		s.Width = flags.Width
	}
	if flags.MaxLines > 0 {
		s.MaxLines = flags.MaxLines
	}
	if flags.SplitAt != "" {
		s.SplitAt = flags.SplitAt
	}

	return s, nil
}

func runSnapshot(files []string, flags Flags) int {
	if len(files) > 1 {
		display.PrintError(fmt.Sprintf("unexpected argument %q", files[1]))
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		if flags.Verbose > 0 {
			fmt.Fprintf(os.Stderr, "csnap: config error: %v, using defaults\n", err)
		}
		cfg = config.DefaultConfig()
	}

	settings, err := resolveSettings(cfg, flags)
	if err != nil {
		display.PrintError(err.Error())
		return 1
	}

	// Read input
	var path, text string
	if len(files) > 0 {
		path = files[0]
		data, err := os.ReadFile(path)
		if err != nil {
			display.PrintError(fmt.Sprintf("read input: %v", err))
			return 1
		}
		text = string(data)
	} else {
		if display.IsTerminalInput() {
			printUsage()
			return 0
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			display.PrintError(fmt.Sprintf("read stdin: %v", err))
			return 1
		}
		text = strings.TrimRight(string(data), " \t\n")
	}

	title := flags.Title
	if title == "" {
		title = path
	}

	linenos := !flags.Ansi && (flags.LineNos || settings.LineNumbers || path != "")
	fixwidth := flags.FixWidth || path != ""

	h := highlight.New(path, text, highlight.Options{
		Lang:        flags.Lang,
		Style:       settings.Style,
		Title:       title,
		LineNumbers: linenos,
		StartLine:   flags.StartLine,
		MaxLines:    settings.MaxLines,
		SplitAt:     settings.SplitAt,
	})

	width := 0
	if fixwidth {
		width = settings.Width
	}
	foreground := ""
	if flags.Ansi {
		foreground = "white"
	}
	renderer := &render.PangoView{
		Font:       settings.Font,
		DPI:        settings.DPI,
		Width:      width,
		Background: h.Background(),
		Foreground: foreground,
	}

	var writer engine.ImageWriter
	if flags.Output == "" && !flags.Sshoot {
		writer, err = clipboard.For(cfg.Clipboard.Tool)
		if err != nil {
			display.PrintError(err.Error())
			return 1
		}
	}

	tracker, err := lazyTracker()
	if err != nil && flags.Verbose > 0 {
		fmt.Fprintf(os.Stderr, "csnap: tracking disabled: %v\n", err)
	}
	if tracker != nil {
		defer tracker.Close()
	}

	pipeline := &engine.Pipeline{
		Highlighter: h,
		Escaper:     &render.AnsiFilter{Font: settings.Font, FontSize: 12},
		Renderer:    renderer,
		Clipboard:   writer,
		Shots:       &shots.Saver{Dir: cfg.Shots.Dir, MaxFiles: cfg.Shots.MaxFiles},
		Tracker:     tracker,
		Verbose:     flags.Verbose,
	}

	req := engine.Request{
		Source:     sourceName(path),
		Text:       text,
		Language:   h.Language(),
		Style:      settings.Style,
		OutputBase: flags.Output,
		Sshoot:     flags.Sshoot,
		Ansi:       flags.Ansi,
	}
	if err := pipeline.Run(req); err != nil {
		display.PrintError(err.Error())
		return 1
	}

	if flags.Verbose > 0 && flags.Output == "" && !flags.Sshoot {
		display.PrintSuccess("image copied to clipboard")
	}
	return 0
}

func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func lazyTracker() (*tracking.Tracker, error) {
	cfg, _ := config.Load()
	dbPath := tracking.DBPath("")
	if cfg != nil {
		dbPath = tracking.DBPath(cfg.Tracking.DBPath)
	}
	return tracking.NewTracker(dbPath)
}

func runDoctor() int {
	tools := []struct {
		name     string
		role     string
		required bool
	}{
		{"pango-view", "renderer", true},
		{"ansifilter", "escape filter (-a)", false},
		{"xclip", "clipboard (X11)", false},
		{"wl-copy", "clipboard (Wayland)", false},
	}

	code := 0
	var rows [][]string
	for _, tool := range tools {
		status := "ok"
		if _, err := engine.Look(tool.name); err != nil {
			status = "missing"
			if tool.required {
				code = 1
			}
		}
		rows = append(rows, []string{tool.name, tool.role, status})
	}
	fmt.Print(display.FormatTable([]string{"TOOL", "ROLE", "STATUS"}, rows))
	return code
}

func printConfig(cfg *config.Config) {
	fmt.Printf("render.style: %s\n", cfg.Render.Style)
	fmt.Printf("render.font: %s\n", cfg.Render.Font)
	fmt.Printf("render.dpi: %d\n", cfg.Render.DPI)
	fmt.Printf("render.width: %d\n", cfg.Render.Width)
	fmt.Printf("render.max_lines: %d\n", cfg.Render.MaxLines)
	fmt.Printf("clipboard.tool: %s\n", cfg.Clipboard.Tool)
	fmt.Printf("profiles.dir: %s\n", cfg.Profiles.Dir)
	fmt.Printf("tracking.db_path: %s\n", cfg.Tracking.DBPath)
	fmt.Printf("shots.dir: %s\n", cfg.Shots.Dir)
	fmt.Printf("shots.max_files: %d\n", cfg.Shots.MaxFiles)
}

func printUsage() {
	usage := `csnap v%s - source file to clipboard image

Usage: csnap [flags] [file]

Reads a source file (or stdin), renders it as a syntax-highlighted
image, and copies the image to the clipboard.

Commands:
  config       Show current configuration
  styles       List available highlight styles
  history      Show snapshot history
  doctor       Check external tools
  init         Write starter config and profiles

Flags:
  -o, --output BASE    Save images to BASE-N.png instead of clipboard
  -p, --profile NAME   Apply a named snapshot profile
      --style NAME     Highlight style (default: dracula)
      --dpi N          Render DPI (default: 70)
  -w, --width N        Image width when fixed (default: 800)
  -x, --fixwidth       Fix width even for stdin input
  -l, --lang NAME      Force a lexer instead of detecting
  -t, --title TEXT     Banner title (default: file name)
  -n, --linenos        Force line numbers for stdin input
  -s, --startline N    First line number (default: 1)
  -m, --maxlines N     Lines per snapshot before splitting (default: 1000)
  -c, --splitat SEQ    Only split at this sequence (default: blank line)
  -a, --ansi           Input carries ANSI escapes; use ansifilter
  -y, --sshoot         Save to the shots directory instead of clipboard
  -v, -vv              Verbose output (stackable)
      --version        Show version
      --help           Show this help

Examples:
  csnap main.go
  csnap --style monokai -o snap main.go
  git diff --color | csnap -a
  csnap history --langs
`
	fmt.Printf(usage, version)
}

// Version returns the current version string.
func Version() string {
	return version
}
