package generator

import (
	"log/slog"

	"github.com/spritegen/spritegen/internal/assets"
	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/internal/scan"
	"github.com/spritegen/spritegen/internal/templates"
)

// Options contains optional flags for the code generation process.
type Options struct {
	// DryRun renders both documents but writes nothing.
	DryRun bool
}

// Plan is the asset tree before and after indexing.
type Plan struct {
	Root    assets.Group
	Indexed assets.IndexedGroup
	Paths   assets.PathTable
}

// Result summarizes a generation run.
type Result struct {
	Groups  int
	Sprites int
	// Files lists the written files. Empty on a dry run.
	Files       []string
	Declaration []byte
	Definition  []byte
}

// BuildPlan scans assetsDir, builds the group tree and indexes it.
func BuildPlan(cfg *config.Config, assetsDir string) (*Plan, error) {
	dir, err := scan.Scan(assetsDir, scan.Extensions(cfg.Input.Extensions...), scan.Options{
		IncludeHidden: cfg.Input.IncludeHidden,
	})
	if err != nil {
		return nil, err
	}

	root, err := assets.BuildGroups(dir, assets.BuildOptions{
		RootName:    cfg.Naming.Root,
		OnCollision: cfg.Naming.OnCollision,
		Strict:      cfg.Naming.Strict,
	})
	if err != nil {
		return nil, err
	}

	indexed, paths := assets.Index(root)
	slog.Debug("indexed asset tree",
		"root", assetsDir,
		"groups", assets.CountGroups(root),
		"sprites", len(paths))

	return &Plan{Root: root, Indexed: indexed, Paths: paths}, nil
}

// Generate orchestrates the entire code generation process: scan, build,
// index, render the declaration and definition, then write both files.
// The first error aborts the run.
func Generate(cfg *config.Config, assetsDir, outDir string, opts Options) (*Result, error) {
	plan, err := BuildPlan(cfg, assetsDir)
	if err != nil {
		return nil, err
	}

	r, err := NewVariantRenderer(cfg.Output.Variant, cfg.Templates.Dir)
	if err != nil {
		return nil, err
	}

	doc := Document{
		Source:  assetsDir,
		Header:  cfg.Output.Header,
		Variant: cfg.Output.Variant,
		Root:    plan.Indexed,
		Paths:   plan.Paths,
	}

	res := &Result{
		Groups:  assets.CountGroups(plan.Root),
		Sprites: len(plan.Paths),
	}
	if res.Declaration, err = r.Render(templates.Declaration, doc); err != nil {
		return nil, err
	}
	if res.Definition, err = r.Render(templates.Definition, doc); err != nil {
		return nil, err
	}

	if opts.DryRun {
		slog.Debug("dry run, nothing written", "output", outDir)
		return res, nil
	}

	atomic := cfg.Output.Atomic == nil || *cfg.Output.Atomic
	res.Files, err = Emit(outDir, cfg.Output.Header, cfg.Output.Source, res.Declaration, res.Definition, atomic)
	if err != nil {
		return nil, err
	}
	for _, f := range res.Files {
		slog.Debug("wrote file", "file", f)
	}
	return res, nil
}
