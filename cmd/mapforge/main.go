package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/plot/vg"

	"mapforge/internal/app"
	"mapforge/internal/model"
	"mapforge/internal/recipe"
	"mapforge/internal/render"
	"mapforge/internal/stats"
	"mapforge/internal/storage"
	"mapforge/internal/tui"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "demo":
		return runDemo(out)
	case "build":
		return runBuild(ctx, args[1:], out)
	case "show":
		return runShow(ctx, args[1:], out)
	case "list":
		return runList(ctx, args[1:], out)
	case "delete":
		return runDelete(ctx, args[1:], out)
	case "stats":
		return runStats(ctx, args[1:], out)
	case "heatmap":
		return runHeatmap(ctx, args[1:], out)
	case "tui":
		return runTUI(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runDemo(out io.Writer) error {
	m, _, err := recipe.Demo().Build()
	if err != nil {
		return err
	}
	return render.WriteMap(out, m, "Height", "IsWater")
}

func runBuild(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	save := fs.Bool("save", false, "store the built map as a snapshot")
	quiet := fs.Bool("quiet", false, "do not print the map")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := recipe.Demo()
	if cfg.Recipe != "" {
		loaded, err := recipe.Load(cfg.Recipe)
		if err != nil {
			return err
		}
		r = loaded
	}
	m, counts, err := r.Build()
	if err != nil {
		return err
	}
	for i, n := range counts {
		log.Printf("step %d (%s): %s cells", i+1, r.Steps[i].Op, humanize.Comma(int64(n)))
	}

	if !*quiet && m.DimensionCount() <= 2 {
		if err := render.WriteMap(out, m, paramList(cfg.Param)...); err != nil {
			return err
		}
	}
	if !*save {
		return nil
	}

	store, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	snap, err := model.Capture(m)
	if err != nil {
		return err
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved snapshot=%s name=%s cells=%s\n", snap.ID, snap.Name, humanize.Comma(int64(m.CellCount())))
	return nil
}

func runShow(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := cfg.Load(ctx)
	if err != nil {
		return err
	}
	return render.WriteMap(out, m, paramList(cfg.Param)...)
}

func runList(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	infos, err := store.ListSnapshots(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(out, "no snapshots")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(out, "%s name=%s extents=%v created=%s\n", info.ID, info.Name, info.Extents, humanize.Time(info.CreatedAt))
	}
	return nil
}

func runDelete(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Snapshot == "" {
		return errors.New("delete requires -snapshot")
	}

	store, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.DeleteSnapshot(ctx, cfg.Snapshot); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted snapshot=%s\n", cfg.Snapshot)
	return nil
}

func runStats(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := cfg.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "map %s extents=%v cells=%s\n", m.Name(), m.Extents(), humanize.Comma(int64(m.CellCount())))

	names := paramList(cfg.Param)
	if len(names) == 0 {
		names = m.Definitions().Names()
	}
	for _, name := range names {
		s, err := stats.Summarize(m, name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return nil
}

func runHeatmap(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	output := fs.String("out", "heatmap.png", "output image path (.png, .svg or .pdf)")
	size := fs.Float64("size", 6, "image size in inches")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Param == "" {
		return errors.New("heatmap requires -param")
	}

	m, err := cfg.Load(ctx)
	if err != nil {
		return err
	}
	if err := render.SaveHeatmap(*output, m, cfg.Param, vg.Length(*size)*vg.Inch); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", *output)
	return nil
}

func runTUI(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := cfg.Load(ctx)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	viewer, err := tui.New(screen, m)
	if err != nil {
		return err
	}
	if cfg.Param != "" && !viewer.Select(cfg.Param) {
		log.Printf("unknown parameter %q, showing %s", cfg.Param, viewer.Parameter())
	}
	return viewer.Run(ctx)
}

// paramList splits a comma separated -param value.
func paramList(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: mapforge <demo|build|show|list|delete|stats|heatmap|tui> [flags]", msg)
}
