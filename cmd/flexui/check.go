package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/describe"
)

// runCheck implements the check subcommand.
// Every description is parsed, built and opened on a mock host, so layout
// and binding errors are reported as well as syntax errors. Summaries go to
// out and per-file errors to errOut.
func runCheck(out, errOut io.Writer, args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectDescriptions(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no description files found")
	}

	if verbose {
		fmt.Fprintf(out, "Checking %d description(s)\n", len(files))
	}

	// Each file builds its own templates and stores, so files are checked
	// in parallel. Results are printed in input order.
	results := make([]string, len(files))
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i], errs[i] = checkFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount int
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(errOut, "%v\n", errs[i])
			errorCount++
			continue
		}
		if verbose {
			fmt.Fprintf(out, "%s: %s\n", path, results[i])
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Fprintf(out, "All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile loads, builds and opens one description and summarizes it.
func checkFile(path string) (string, error) {
	d, err := describe.Load(path)
	if err != nil {
		return "", err
	}
	host := flexui.NewMockHost()
	tmpl, err := d.Build(flexui.WithHost(host))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := tmpl.Open(); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	defer tmpl.Close()

	window := host.Last()
	summary := fmt.Sprintf("%d widget(s), %d store(s)", len(tmpl.Widgets()), d.Stores.Len())
	if d.Tabbed() {
		summary += fmt.Sprintf(", %d tab(s)", len(window.Tabs))
	}
	return summary, nil
}

// collectDescriptions expands directories into the .yaml and .yml files
// below them. Files named explicitly are kept whatever their extension.
func collectDescriptions(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				if p != path && strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			switch filepath.Ext(p) {
			case ".yaml", ".yml":
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}
	return files, nil
}
