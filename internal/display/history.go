package display

import (
	"fmt"
	"time"

	"github.com/saltytine/csnap/internal/tracking"
	"github.com/saltytine/csnap/internal/utils"
)

// RunHistory executes the history (snapshot report) command.
func RunHistory(tracker *tracking.Tracker, args []string) error {
	if tracker == nil {
		PrintError("no history data (take some snapshots first)")
		return nil
	}

	var (
		byLang  bool
		recentN = 10
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--langs":
			byLang = true
		case "--recent":
			if i+1 < len(args) {
				_, _ = fmt.Sscanf(args[i+1], "%d", &recentN)
				i++
			}
			if recentN <= 0 {
				recentN = 10
			}
		}
	}

	summary, err := tracker.GetSummary()
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}

	printSummary(summary)

	if byLang {
		return showByLanguage(tracker)
	}
	return showRecent(tracker, recentN)
}

func printSummary(s *tracking.Summary) {
	tty := IsTerminal()

	fmt.Println()
	if tty {
		fmt.Println(HeaderStyle.Render("  csnap snapshot history"))
		fmt.Println(DimStyle.Render("  " + FormatSeparator(30)))
	} else {
		fmt.Println("  csnap snapshot history")
		fmt.Println("  " + FormatSeparator(30))
	}
	fmt.Println()

	stats := fmt.Sprintf("  %d snapshots, %d images, %s, %s total",
		s.TotalSnapshots, s.TotalImages, utils.FormatBytes(s.TotalBytes),
		(time.Duration(s.TotalTimeMs) * time.Millisecond).String())
	if tty {
		fmt.Println(StatStyle.Render(stats))
	} else {
		fmt.Println(stats)
	}
	fmt.Println()
}

func showRecent(tracker *tracking.Tracker, n int) error {
	records, err := tracker.GetRecent(n)
	if err != nil {
		return fmt.Errorf("get recent: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("  no snapshots yet")
		return nil
	}

	headers := []string{"WHEN", "SOURCE", "LANG", "STYLE", "LINES", "IMGS", "SIZE", "DEST"}
	var rows [][]string
	for _, r := range records {
		rows = append(rows, []string{
			r.Timestamp,
			utils.Truncate(r.Source, 32),
			r.Language,
			r.Style,
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Images),
			utils.FormatBytes(r.Bytes),
			r.Destination,
		})
	}
	fmt.Print(FormatTable(headers, rows))
	return nil
}

func showByLanguage(tracker *tracking.Tracker) error {
	stats, err := tracker.GetByLanguage(20)
	if err != nil {
		return fmt.Errorf("get by language: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("  no snapshots yet")
		return nil
	}

	headers := []string{"LANGUAGE", "SNAPSHOTS", "IMAGES", "SIZE"}
	var rows [][]string
	for _, s := range stats {
		rows = append(rows, []string{
			s.Language,
			fmt.Sprintf("%d", s.Snapshots),
			fmt.Sprintf("%d", s.Images),
			utils.FormatBytes(s.Bytes),
		})
	}
	fmt.Print(FormatTable(headers, rows))
	return nil
}
