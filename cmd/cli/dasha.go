package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

func newDashaCmd(opts *rootOptions) *cobra.Command {
	var (
		depth   int
		mode    string
		horizon float64
	)

	cmd := &cobra.Command{
		Use:   "dasha BIRTH",
		Short: "Compute the Vimshottari dasha tree from the Moon nakshatra",
		Long:  birthArgHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBirth("", args[0])
			if err != nil {
				return err
			}

			return opts.withCore(cmd, func(astro usecase.IAstroUseCase) error {
				chart, err := astro.ComputeChart(cmd.Context(), in)
				if err != nil {
					return err
				}
				root, err := astro.ComputeDasha(cmd.Context(), chart, dasha.Options{
					Depth:        depth,
					HorizonYears: horizon,
					Mode:         dasha.Mode(mode),
				})
				if err != nil {
					return err
				}

				if opts.format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), root)
				}
				moon, _ := chart.Nakshatra(domain.Moon)
				fmt.Fprintf(cmd.OutOrStdout(), "Moon in %s pada %d, lord %s\n\n", moon.Name, moon.Pada, moon.Lord)
				return printDasha(cmd.OutOrStdout(), root)
			})
		},
	}
	cmd.Flags().IntVar(&depth, "depth", dasha.MaxDepth, "Levels to build: 1 maha, 2 antar, 3 pratyantar")
	cmd.Flags().StringVar(&mode, "mode", string(dasha.Proportional), "First mahadasha subdivision (proportional, nominal)")
	cmd.Flags().Float64Var(&horizon, "horizon", dasha.CycleYears, "Years to cover from birth")
	return cmd
}

func printDasha(w io.Writer, root *domain.DashaPeriod) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tSTART\tEND\tYEARS")

	var walk func(periods []domain.DashaPeriod)
	walk = func(periods []domain.DashaPeriod) {
		for _, p := range periods {
			indent := strings.Repeat("  ", int(p.Level)-1)
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%.3f\n",
				indent, p.Lord, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), p.DurationYears)
			walk(p.Children)
		}
	}
	walk(root.Children)
	return tw.Flush()
}
