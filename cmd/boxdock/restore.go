package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dock "github.com/grindlemire/go-dock"
	"github.com/grindlemire/go-dock/internal/config"
	"github.com/grindlemire/go-dock/internal/debug"
	"github.com/grindlemire/go-dock/internal/dockarea"
	"github.com/grindlemire/go-dock/internal/widget"
)

// restoreOptions are the flags shared by restore and watch.
type restoreOptions struct {
	format string
	width  float64
	height float64
}

func (o *restoreOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "", "snapshot format, json or yaml (default: from the file extension)")
	cmd.Flags().Float64Var(&o.width, "width", 0, "layout width (default: from config)")
	cmd.Flags().Float64Var(&o.height, "height", 0, "layout height (default: from config)")
}

func newRestoreCmd(root *rootOptions) *cobra.Command {
	var opts restoreOptions

	cmd := &cobra.Command{
		Use:   "restore FILE",
		Short: "Lay out a saved dock snapshot",
		Long: `restore normalizes a dock snapshot, realizes it with placeholder widgets
named by their IDs and prints each widget's rectangle followed by the
normalized snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd.OutOrStdout(), root.cfg, args[0], opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runRestore(w io.Writer, cfg config.Config, path string, opts restoreOptions) error {
	format, err := snapshotFormat(path, opts.format)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := decodeSnapshot(data, format)
	if err != nil {
		return err
	}

	width, height := opts.width, opts.height
	if width <= 0 {
		width = cfg.Width
	}
	if height <= 0 {
		height = cfg.Height
	}

	res, err := solveSnapshot(cfg, snap, width, height)
	if err != nil {
		return err
	}
	out, err := encodeSnapshot(res.config, format)
	if err != nil {
		return err
	}

	p := newPrinter(w)
	p.title(fmt.Sprintf("%s (%sx%s)", path, formatNum(width), formatNum(height)))
	rows := make([][]string, len(res.widgets))
	for i, wr := range res.widgets {
		if !wr.visible {
			rows[i] = []string{wr.id, "-", "-", "-", "-"}
			continue
		}
		rows[i] = []string{
			wr.id,
			formatNum(wr.rect.X),
			formatNum(wr.rect.Y),
			formatNum(wr.rect.Width),
			formatNum(wr.rect.Height),
		}
	}
	p.table([]string{"widget", "x", "y", "width", "height"}, rows)
	p.text(string(out))
	return nil
}

type widgetRect struct {
	id      string
	rect    dock.Rect
	visible bool
}

type solution struct {
	widgets []widgetRect
	config  dockarea.LayoutConfig
}

// solveSnapshot realizes snap in a dock layout hosted by a root panel of the
// given size and reads back the geometry. Widgets behind another tab are
// reported as not visible.
func solveSnapshot(cfg config.Config, snap dockarea.LayoutConfig, width, height float64) (solution, error) {
	norm := dockarea.NormalizeConfig(snap, nil)

	widgets := make(map[string]*widget.Widget)
	for _, id := range norm.WidgetIDs() {
		widgets[id] = widget.New(widget.WithID(id))
	}

	dl := dockarea.New(
		dockarea.WithSpacing(cfg.Spacing),
		dockarea.WithTabBarHeight(cfg.TabBarHeight),
		dockarea.WithSplitRatio(cfg.SplitRatio),
	)
	panel, err := dock.NewPanel(dl, dock.WithPadding(cfg.Padding.Edges()))
	if err != nil {
		return solution{}, err
	}

	panel.Batch(func() {
		dl.RestoreLayout(norm, func(id string) (dockarea.Widget, bool) {
			w, ok := widgets[id]
			return w, ok
		})
	})
	panel.Resize(width, height)

	visible := make(map[string]bool)
	for _, bar := range dl.TabBars() {
		if cur := bar.Current(); cur != nil {
			visible[cur.ID()] = true
		}
	}

	var res solution
	for _, w := range dl.Widgets() {
		res.widgets = append(res.widgets, widgetRect{
			id:      w.ID(),
			rect:    widgets[w.ID()].Rect(),
			visible: visible[w.ID()],
		})
	}
	res.config = dl.SaveLayout()
	debug.Logger().Info("restore: solved snapshot", "widgets", len(res.widgets), "width", width, "height", height)
	return res, nil
}
