package cmd

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/teranos/plugingen/config"
	"github.com/teranos/plugingen/gen"
	"github.com/teranos/plugingen/logger"
	"github.com/teranos/plugingen/scan"
)

var (
	generateOutput    string
	generateProviders string
	generateWatch     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Scan packages and generate plugin factories",
	Long: `Scan the given package patterns (or those from plugingen.toml) for
//plugingen: directives and generate one registration module per top-level
declaring type. A failure on one type is reported and does not stop the
others, but the command exits non-zero if any factory failed.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output root for generated files (default from config)")
	generateCmd.Flags().StringVar(&generateProviders, "providers", "", "Directory for provider entries (default from config)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever source files change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if generateOutput != "" {
		cfg.Output = generateOutput
	}
	if generateProviders != "" {
		cfg.Providers = generateProviders
	}

	patterns := cfg.Packages
	if len(args) > 0 {
		patterns = args
	}

	if !generateWatch {
		return generateOnce(cfg, patterns)
	}

	if err := generateOnce(cfg, patterns); err != nil {
		logger.Logger.Errorw("generation failed, watching for changes", "error", err)
	}
	return watch(cfg, patterns)
}

// generateOnce runs one full scan-and-generate pass. Each pass uses a fresh
// generator; descriptors are never carried across passes.
func generateOnce(cfg config.Config, patterns []string) error {
	g := gen.New(
		&gen.DirArtifactSink{Root: cfg.Output},
		&gen.DirProviderSink{Root: cfg.Providers},
		gen.LogDiagnosticSink{},
	)

	n, err := scan.Packages(g, patterns...)
	if err != nil {
		return err
	}
	logger.Logger.Infow("scanned plugin declarations",
		"descriptors", n,
		"owners", g.Owners())

	return g.GenerateAll()
}

// watch regenerates on changes to non-generated Go files. Events are
// debounced so editor save bursts trigger a single pass.
func watch(cfg config.Config, patterns []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchSourceDirs(watcher, cfg.Output); err != nil {
		return err
	}
	logger.Logger.Infow("watching for source changes", "patterns", strings.Join(patterns, " "))

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".go") || strings.HasSuffix(ev.Name, "_gen.go") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(250 * time.Millisecond)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("watch error", "error", werr)
		case <-pending:
			pending = nil
			if err := generateOnce(cfg, patterns); err != nil {
				logger.Logger.Errorw("regeneration failed", "error", err)
			}
		}
	}
}

// watchSourceDirs registers every directory under the working tree except
// the output root and hidden directories.
func watchSourceDirs(watcher *fsnotify.Watcher, outputRoot string) error {
	skip := filepath.Clean(outputRoot)
	return filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		if filepath.Clean(path) == skip {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
