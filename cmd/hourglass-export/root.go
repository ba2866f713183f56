package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"hourglass/internal/modkit"
	"hourglass/internal/modkit/module"
	"hourglass/internal/platform/config"
	"hourglass/internal/platform/logger"
	"hourglass/internal/platform/store"
	dom "hourglass/internal/services/reports/domain"
	reportsmod "hourglass/internal/services/reports/module"

	"github.com/spf13/cobra"
)

type flags struct {
	user        string
	groupBy     int
	static      int
	from, to    string
	format      int
	projects    []int
	members     []int
	clients     []int
	columns     []int
	saveCurrent bool
	out         string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "hourglass-export",
		Short: "Render a report export to disk",
		Long: `hourglass-export runs the same grid and export pipeline as the API for one
member and writes the file under --out.

Examples:
  hourglass-export --user alice --group-by 1 --static 2 --format 2 --project 3 --out ./out
  hourglass-export --user alice --from 2025-01-01 --to 2025-01-31 --member 4 --member 9`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.query(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			path, err := run(ctx, f, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}

func (f *flags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.user, "user", "", "user name of the requesting member")
	fs.IntVar(&f.groupBy, "group-by", 1, "1 project, 2 member, 3 date, 4 client")
	fs.IntVar(&f.static, "static", 2, "static range id 1..8")
	fs.StringVar(&f.from, "from", "", "first day, YYYY-MM-DD")
	fs.StringVar(&f.to, "to", "", "last day, YYYY-MM-DD")
	fs.IntVar(&f.format, "format", 2, "0 xlsx, 1 csv, 2 pdf")
	fs.IntSliceVar(&f.projects, "project", nil, "project id filter, repeatable")
	fs.IntSliceVar(&f.members, "member", nil, "member id filter, repeatable")
	fs.IntSliceVar(&f.clients, "client", nil, "client id filter, repeatable; -1 is Without Client")
	fs.IntSliceVar(&f.columns, "column", []int{1, 2, 3, 4}, "show column ids")
	fs.BoolVar(&f.saveCurrent, "save-current", false, "store the query as the member's current query")
	fs.StringVar(&f.out, "out", ".", "output directory")
	_ = cmd.MarkFlagRequired("user")
	cmd.MarkFlagsRequiredTogether("from", "to")
}

// query builds the report query. --from/--to win over --static.
func (f *flags) query(cmd *cobra.Command) (dom.ReportQuery, error) {
	q := dom.ReportQuery{
		GroupByID:     f.groupBy,
		ShowColumnIDs: f.columns,
		ProjectIDs:    f.projects,
		MemberIDs:     f.members,
		ClientIDs:     f.clients,
	}
	switch {
	case f.from != "" && f.to != "":
		if cmd.Flags().Changed("static") {
			return dom.ReportQuery{}, fmt.Errorf("--static cannot be combined with --from and --to")
		}
		from, to := f.from, f.to
		q.DateFrom, q.DateTo = &from, &to
	default:
		static := f.static
		q.DateStaticID = &static
	}
	return q, nil
}

func run(ctx context.Context, f flags, q dom.ReportQuery) (string, error) {
	l := logger.Named("export")
	root := config.New()

	st, err := store.Open(ctx, store.ConfigFrom(root, "hourglass-export"), *l)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Warn().Err(err).Msg("close store")
		}
	}()

	o := reportsmod.FromConfig(root)
	o.ReadOnlyCurrent = !f.saveCurrent
	svc := module.MustPortsOf[dom.ServicePort](reportsmod.NewWith(modkit.FromStore(st, root), o))

	m, err := svc.Requester(ctx, f.user)
	if err != nil {
		return "", err
	}
	format := f.format
	res, err := svc.Export(ctx, m, q, &format)
	if err != nil {
		return "", err
	}
	if res.Deferred {
		l.Warn().Str("file", res.FileName).Msg("format not implemented yet, writing an empty file")
	}

	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return "", err
	}
	path, err := outPath(f.out, res.FileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, res.Bytes, 0o644); err != nil {
		return "", err
	}
	l.Info().Str("export_id", res.RenderID).Str("path", path).Int("bytes", len(res.Bytes)).Msg("export written")
	return path, nil
}

// outPath places name directly inside dir. Project names may contain path
// separators, which are replaced so the file never lands outside dir.
func outPath(dir, name string) (string, error) {
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("unusable export file name %q", name)
	}
	return filepath.Join(dir, name), nil
}
