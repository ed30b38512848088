package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"pcview/internal/annotate"
	"pcview/internal/document"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.Theme, "theme", "nord", "color theme (for example: nord, dracula, monokai, github, solarized-dark)")
	flag.StringVar(&cfg.Locator, "locator", "scan", "block locator: scan (comment delimiters) or parse (C parse tree)")
	flag.BoolVar(&cfg.Bare, "bare", false, "treat the whole file as pseudocode, skipping block location")
	flag.BoolVar(&cfg.Spans, "spans", false, "print start:end:category records instead of opening the viewer")
	flag.BoolVar(&cfg.HTML, "html", false, "write an annotated HTML page instead of opening the viewer")
	flag.StringVar(&cfg.Out, "out", "", "output path for -spans/-html (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pcview [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	cfg.Path = flag.Arg(0)

	if err := SetTheme(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -theme: %v\n", err)
		os.Exit(1)
	}

	locator, err := buildLocator(cfg.Locator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -locator: %v\n", err)
		os.Exit(1)
	}

	doc, err := document.Load(cfg.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", cfg.Path, err)
		os.Exit(1)
	}

	eng := annotate.New(annotate.Config{Locator: locator})

	if cfg.Spans || cfg.HTML {
		if err := runBatch(cfg, doc, eng); err != nil {
			fmt.Fprintf(os.Stderr, "pcview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newModel(cfg, doc, eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pcview failed: %v\n", err)
		os.Exit(1)
	}
}

func buildLocator(name string) (annotate.Locator, error) {
	switch name {
	case "", "scan":
		return annotate.ScanLocator{}, nil
	case "parse":
		return annotate.NewParseLocator(), nil
	default:
		return nil, fmt.Errorf("unknown locator %q (use scan or parse)", name)
	}
}

func runBatch(cfg config, doc *document.Document, eng *annotate.Engine) error {
	if cfg.Bare {
		fresh := annotate.Bare(eng.Owner(), doc.Text())
		eng.Store().Reconcile(annotate.Range{Start: 0, End: math.MaxInt}, eng.Owner(), fresh)
	} else {
		eng.RescanAll(doc)
	}
	anns := eng.Store().Annotations()

	out := io.Writer(os.Stdout)
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if cfg.HTML {
		_, err := io.WriteString(out, renderHTMLPage(filepath.Base(cfg.Path), doc.Text(), anns, appTheme))
		return err
	}
	return writeSpans(out, anns)
}

func writeSpans(w io.Writer, anns []annotate.Annotation) error {
	for _, a := range anns {
		if _, err := fmt.Fprintf(w, "%d:%d:%s\n", a.Start, a.End, a.Cat); err != nil {
			return err
		}
	}
	return nil
}
