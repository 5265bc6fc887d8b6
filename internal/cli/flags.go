package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Flags holds parsed global flags.
type Flags struct {
	Output    string
	DPI       int
	Style     string
	Lang      string
	Title     string
	LineNos   bool
	StartLine int
	FixWidth  bool
	Ansi      bool
	Width     int
	MaxLines  int
	SplitAt   string
	Sshoot    bool
	Profile   string
	Verbose   int
	Version   bool
	Help      bool
}

// ParseFlags extracts flags from args and returns remaining args.
// Value flags accept both "--flag value" and "--flag=value".
func ParseFlags(args []string) (Flags, []string, error) {
	flags := Flags{StartLine: 1}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")

		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			if i+1 < len(args) {
				i++
				return args[i], nil
			}
			return "", fmt.Errorf("flag %s requires a value", name)
		}
		intValue := func() (int, error) {
			s, err := value()
			if err != nil {
				return 0, err
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("flag %s: invalid number %q", name, s)
			}
			return n, nil
		}

		var err error
		switch name {
		case "-o", "--output":
			flags.Output, err = value()
		case "--dpi":
			flags.DPI, err = intValue()
		case "--style":
			flags.Style, err = value()
		case "-l", "--lang":
			flags.Lang, err = value()
		case "-t", "--title":
			flags.Title, err = value()
		case "-s", "--startline":
			flags.StartLine, err = intValue()
		case "-w", "--width":
			flags.Width, err = intValue()
		case "-m", "--maxlines":
			flags.MaxLines, err = intValue()
		case "-c", "--splitat":
			flags.SplitAt, err = value()
		case "-p", "--profile":
			flags.Profile, err = value()
		case "-n", "--linenos":
			flags.LineNos = true
		case "-x", "--fixwidth":
			flags.FixWidth = true
		case "-a", "--ansi":
			flags.Ansi = true
		case "-y", "--sshoot":
			flags.Sshoot = true
		case "-vv":
			flags.Verbose = 2
		case "-v":
			if flags.Verbose < 1 {
				flags.Verbose = 1
			}
		case "--version":
			flags.Version = true
		case "--help", "-h":
			flags.Help = true
		default:
			if isStackedVerboseFlag(arg) {
				flags.Verbose = strings.Count(arg, "v")
			} else {
				remaining = append(remaining, arg)
			}
		}
		if err != nil {
			return flags, remaining, err
		}
	}

	return flags, remaining, nil
}

// isStackedVerboseFlag detects flags like -vvv, -vvvv (only 'v' chars after dash).
func isStackedVerboseFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return false
	}
	trimmed := strings.TrimLeft(arg, "-")
	return len(trimmed) > 0 && strings.Trim(trimmed, "v") == ""
}
