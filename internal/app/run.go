package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/vk/remapc/internal/render"
)

// Run compiles the configured script and writes the JSON document. Nothing
// is written unless the whole script compiles.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "script", a.config.ScriptPath)

	cfg, err := a.loader.Load(ctx, a.registry.Functions(), a.config.ScriptPath)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	a.logger.Info("Script compiled.", "global_rules", len(cfg.Global), "applications", cfg.Applications())

	doc, err := render.FromConfiguration(cfg)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, doc, a.indent()); err != nil {
		return err
	}

	if a.config.OutputPath != "" {
		if err := os.WriteFile(a.config.OutputPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		a.logger.Info("Configuration written.", "path", a.config.OutputPath, "bytes", buf.Len())
		return nil
	}

	if _, err := a.outW.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// indent resolves the configured indent mode. In auto mode the document is
// indented only when it goes straight to a terminal.
func (a *App) indent() bool {
	switch a.config.Indent {
	case "always":
		return true
	case "never":
		return false
	}
	if a.config.OutputPath != "" {
		return false
	}
	f, ok := a.outW.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
