package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zeusync/assetkit/internal/config"
	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/prefab"
	"github.com/zeusync/assetkit/internal/injector"
)

var (
	errUsage    = errors.New("usage")
	errProblems = errors.New("verification failed")
)

// cli holds the application graph shared by the subcommands.
type cli struct {
	configPath string
	app        *injector.App
	cleanup    func()
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd == cmd.Root() {
		return nil
	}
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.app, c.cleanup, err = injector.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err = c.app.Manager.Initialize(cmd.Context()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "restore:", err)
	}
	return nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	c.app.Manager.Teardown()
	_ = c.app.Log.Sync()
	c.cleanup()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{}
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errProblems):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:               "assetctl",
		Short:             "Inspect and edit the asset index",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.open,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errUsage
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML or TOML config file")

	var logEntries bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if logEntries {
				c.app.Manager.LogLoaded()
			}
			return listAssets(c.app, cmd.OutOrStdout())
		},
	}
	listCmd.Flags().BoolVar(&logEntries, "log", false, "also write every entry to the log")

	root.AddCommand(
		listCmd,
		&cobra.Command{
			Use:   "load <name> <path>",
			Short: "Load an asset, kind taken from the extension",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				kind := models.DetermineKind(args[1])
				_, known := c.app.Manager.LoadedAt(kind, args[1])
				id, err := c.app.Manager.Load(kind, args[0], args[1])
				return reportLoad(cmd.OutOrStdout(), id, known, err)
			},
		},
		&cobra.Command{
			Use:   "load-file <path>",
			Short: "Load an asset named after its file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, known := c.app.Manager.LoadedAt(models.DetermineKind(args[0]), args[0])
				id, err := c.app.Manager.LoadFile(args[0])
				return reportLoad(cmd.OutOrStdout(), id, known, err)
			},
		},
		&cobra.Command{
			Use:   "unload <uuid>",
			Short: "Unload an asset",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				e, err := lookup(c.app.Manager, args[0])
				if err != nil {
					return err
				}
				return c.app.Manager.Unload(e.Kind, e.UUID)
			},
		},
		&cobra.Command{
			Use:   "modify <uuid> <path>",
			Short: "Point an image or font at a new source file",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				e, err := lookup(c.app.Manager, args[0])
				if err != nil {
					return err
				}
				return c.app.Manager.Modify(e.Kind, e.UUID, args[1])
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Report assets whose source file is missing",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return verify(cmd.Context(), c.app, cmd.OutOrStdout()) },
		},
		&cobra.Command{
			Use:   "prefab <file>",
			Short: "Decode a prefab and check its asset references",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return inspectPrefab(c.app, args[0], cmd.OutOrStdout())
			},
		},
	)
	return root
}

func lookup(m *assets.Manager, raw string) (assets.Entry, error) {
	id, err := models.ParseUUID(raw)
	if err != nil {
		return assets.Entry{}, fmt.Errorf("bad uuid %q: %w", raw, err)
	}
	e, ok := m.Lookup(id)
	if !ok {
		return assets.Entry{}, fmt.Errorf("%w: %s", assets.ErrNotFound, id)
	}
	return e, nil
}

func listAssets(app *injector.App, out io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Kind", "UUID", "Name", "Path", "Size"})
	for _, kind := range models.Kinds {
		for _, e := range app.Manager.Entries(kind) {
			size := "-"
			if info, err := os.Stat(e.Path); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}
			t.AppendRow(table.Row{kind, e.UUID, e.Name, e.Path, size})
		}
	}
	t.Render()
	return nil
}

func reportLoad(out io.Writer, id models.UUID, known bool, err error) error {
	if err != nil {
		return err
	}
	if known {
		fmt.Fprintf(out, "%s (already loaded)\n", id)
		return nil
	}
	fmt.Fprintln(out, id)
	return nil
}

func verify(ctx context.Context, app *injector.App, out io.Writer) error {
	problems, err := app.Manager.Verify(ctx, app.Config.Verify.Workers)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%v\n", p.Kind, p.UUID, p.Name, p.Path, p.Err)
	}
	if len(problems) > 0 {
		return errProblems
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func inspectPrefab(app *injector.App, path string, out io.Writer) error {
	p, err := app.Prefabs.LoadFile(path)
	if p == nil {
		return err
	}
	for _, tag := range p.Types() {
		fmt.Fprintln(out, tag)
	}
	for _, ref := range prefab.ResolveAssets(p, app.Manager) {
		fmt.Fprintf(out, "unresolved %s %s %s\n", ref.Kind, ref.UUID, ref.Key)
	}
	return err
}
