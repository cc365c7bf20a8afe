package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adammathes/xrefcheck/internal/domainrules"
	"github.com/adammathes/xrefcheck/pkg/report"
	"github.com/adammathes/xrefcheck/pkg/schema"
	"github.com/adammathes/xrefcheck/pkg/xmldoc"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	schemaPath string
	jsonOutput bool
	watch      bool
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <pattern>...",
		Short: "Check cross-reference links in one or more XML documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema file (defaults to the built-in DocBook sample)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "write JSON instead of the plain-text wire format")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-validate whenever a matched file changes")
	return cmd
}

func runValidate(patterns []string) error {
	sc, err := loadSchema()
	if err != nil {
		return err
	}

	files, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("xrefcheck: no files matched %v", patterns)
	}

	if watch {
		return watchAndValidate(sc, files)
	}

	failed, err := validateAll(sc, files)
	if err != nil {
		return err
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func loadSchema() (*schema.Schema, error) {
	if schemaPath == "" {
		return domainrules.DocBook(), nil
	}
	f, err := os.Open(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("xrefcheck: open schema: %w", err)
	}
	defer f.Close()
	return schema.LoadYAML(f)
}

func expandPatterns(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("xrefcheck: glob %q: %w", p, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(p); err == nil {
				matches = []string{p}
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// validateAll runs one validation per file concurrently against the
// single shared, immutable schema -- the batch-orchestration guarantee
// the engine's concurrency model allows. Each individual file's
// validation stays single-threaded and synchronous, as the engine requires.
func validateAll(sc *schema.Schema, files []string) (bool, error) {
	type result struct {
		file string
		rep  *report.Report
		err  error
	}

	results := make([]result, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f string) {
			defer wg.Done()
			rep, err := validateFile(sc, f)
			results[i] = result{file: f, rep: rep, err: err}
		}(i, f)
	}
	wg.Wait()

	anyFailed := false
	for _, r := range results {
		if r.err != nil {
			return false, fmt.Errorf("xrefcheck: %s: %w", r.file, r.err)
		}
		if len(files) > 1 {
			fmt.Fprintf(os.Stderr, "== %s ==\n", r.file)
		}
		if jsonOutput {
			if err := r.rep.WriteJSON(os.Stdout); err != nil {
				return false, fmt.Errorf("xrefcheck: %s: %w", r.file, err)
			}
		} else {
			r.rep.WriteText(os.Stderr)
		}
		if !r.rep.IsValid() {
			anyFailed = true
		}
	}
	return anyFailed, nil
}

func validateFile(sc *schema.Schema, path string) (*report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := xmldoc.Parse(f)
	if err != nil {
		return nil, err
	}

	diags, err := sc.Validate(xmldoc.AsDocument(doc))
	if err != nil {
		return nil, err
	}

	rep := report.NewReport()
	rep.AddAll(diags)
	return rep, nil
}

func watchAndValidate(sc *schema.Schema, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("xrefcheck: watch: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{}
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("xrefcheck: watch %q: %w", d, err)
		}
	}

	if _, err := validateAll(sc, files); err != nil {
		return err
	}

	for event := range watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "-- %s changed, re-validating --\n", event.Name)
		if _, err := validateAll(sc, files); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return nil
}
