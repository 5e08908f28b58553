package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/marcodamonte/designpatterns/catalog"
	"github.com/marcodamonte/designpatterns/creational/singleton"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	verbose bool
	logger  *slog.Logger
}

// newRootCmd builds the command tree. With no subcommand the root runs every
// demo in catalog order.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "designpatterns",
		Short: "Run classic creational and structural design pattern demos",
		Long: `Each demo is a closed, deterministic program that prints a short transcript.
With no subcommand every demo runs in catalog order.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog.NewRunner(cmd.OutOrStdout(), a.logger).Run(catalog.All()...)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose (debug) logging on stderr")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newListCmd())
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newSingletonRaceCmd(a))

	return root
}

// newRunCmd runs only the demos named on the command line, in that order.
func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "run <demo>...",
		Short:     "Run the named demos",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := make([]catalog.Demo, 0, len(args))
			for _, name := range args {
				d, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				demos = append(demos, d)
			}
			catalog.NewRunner(cmd.OutOrStdout(), a.logger).Run(demos...)
			return nil
		},
	}
}

// familyValue is a pflag.Value restricted to the catalog's families.
type familyValue struct {
	family catalog.Family
}

var _ pflag.Value = (*familyValue)(nil)

func (f *familyValue) String() string { return string(f.family) }
func (f *familyValue) Type() string   { return "family" }

func (f *familyValue) Set(s string) error {
	want := catalog.Family(strings.ToLower(s))
	for _, fam := range catalog.Families() {
		if fam == want {
			f.family = fam
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", catalog.Families())
}

// newListCmd prints the catalog table, optionally filtered by family.
func newListCmd() *cobra.Command {
	family := &familyValue{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			demos := catalog.All()
			if family.family != "" {
				demos = catalog.ByFamily(family.family)
			}
			catalog.Table(cmd.OutOrStdout(), demos)
		},
	}
	cmd.Flags().Var(family, "family", "Only list demos of this family (creational|structural)")
	return cmd
}

// newDescribeCmd prints the teaching notes of one or more demos.
func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "describe <demo>...",
		Short:     "Show a pattern's intent, pros, cons and roles",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				d, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				catalog.Describe(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

// newSingletonRaceCmd hammers GetInstance from many goroutines at once and
// reports what they saw.
func newSingletonRaceCmd(a *app) *cobra.Command {
	var callers int

	cmd := &cobra.Command{
		Use:   "singleton-race",
		Short: "Call the singleton accessor concurrently and count instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if callers < 1 {
				return fmt.Errorf("--callers must be at least 1, got %d", callers)
			}

			out := cmd.OutOrStdout()
			seen := make([]*singleton.Singleton, callers)
			var g errgroup.Group
			for i := range callers {
				g.Go(func() error {
					seen[i] = singleton.GetInstanceWith(out)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("singleton race: %w", err)
			}

			distinct := make(map[*singleton.Singleton]struct{})
			for _, s := range seen {
				distinct[s] = struct{}{}
			}
			a.logger.Debug("singleton race finished", "callers", callers)

			fmt.Fprintf(out, "callers=%d distinct=%d constructions=%d\n",
				callers, len(distinct), singleton.Constructions())
			return nil
		},
	}
	cmd.Flags().IntVar(&callers, "callers", 100, "Number of concurrent callers")
	return cmd
}
