package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/aiyaulmo/verksamhetscykel/pkg/export"
	"github.com/aiyaulmo/verksamhetscykel/pkg/layout"
	"github.com/aiyaulmo/verksamhetscykel/pkg/loader"
	"github.com/aiyaulmo/verksamhetscykel/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	dataDir := flag.String("data", ".", "Data directory holding <year>/events.json")
	year := flag.Int("year", 0, "Planning year (default: year from the document, else current year)")
	configPath := flag.String("config", "", "Optional wheel.yaml with geometry overrides")
	exportFile := flag.String("export-svg", "", "Render the wheel to an SVG file and exit (e.g., wheel.svg)")
	robotLayout := flag.Bool("robot-layout", false, "Output the computed scene as JSON for automation")
	robotPeriods := flag.Bool("robot-periods", false, "Output period week spans as JSON for automation")
	flag.Parse()

	if *help {
		fmt.Println("Usage: cykel [options]")
		fmt.Println("\nA TUI viewer for the annual planning wheel.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("cykel %s\n", version)
		os.Exit(0)
	}

	lookupYear := *year
	if lookupYear == 0 {
		lookupYear = time.Now().Year()
	}
	docPath, err := loader.FindDocPath(*dataDir, lookupYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating events document: %v\n", err)
		os.Exit(1)
	}

	doc, err := loader.Load(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", docPath, err)
		os.Exit(1)
	}
	if *year != 0 {
		doc.Config.Year = *year
	}

	if *configPath != "" {
		if err := loader.LoadOverrides(*configPath, &doc.Config); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}

	if unknown := loader.UnknownRings(doc); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d event(s) reference unknown rings: %v\n", len(unknown), unknown)
	}

	if *robotLayout {
		engine := layout.NewEngine(doc.Config, nil)
		scene := engine.Layout(doc.VisibleEvents())
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scene); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding scene: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *robotPeriods {
		engine := layout.NewEngine(doc.Config, nil)
		type periodRow struct {
			Index     int    `json:"index"`
			Name      string `json:"name,omitempty"`
			StartWeek int    `json:"startWeek"`
			EndWeek   int    `json:"endWeek"`
		}
		out := struct {
			Year    int         `json:"year"`
			Periods []periodRow `json:"periods"`
		}{Year: doc.Config.Year}
		for i := 0; i < engine.Periods.Count(); i++ {
			start, end, ok := engine.Periods.Bounds(i)
			if !ok {
				continue
			}
			row := periodRow{Index: i, StartWeek: start, EndWeek: end}
			if i < len(doc.Config.PeriodNames) {
				row.Name = doc.Config.PeriodNames[i]
			}
			out.Periods = append(out.Periods, row)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding periods: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *exportFile != "" {
		engine := layout.NewEngine(doc.Config, nil)
		scene := engine.Layout(doc.VisibleEvents())
		svg := export.NewRenderer(doc, nil).Render(&scene)
		if err := os.WriteFile(*exportFile, []byte(svg), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *exportFile, err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s\n", *exportFile)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal.")
		fmt.Fprintln(os.Stderr, "Use --export-svg, --robot-layout or --robot-periods for non-interactive output.")
		os.Exit(1)
	}

	p := tea.NewProgram(
		ui.NewModel(doc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
