package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/koota"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

func newChartCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "chart BIRTH",
		Short: "Compute a sidereal birth chart",
		Long:  birthArgHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBirth(name, args[0])
			if err != nil {
				return err
			}

			return opts.withCore(cmd, func(astro usecase.IAstroUseCase) error {
				chart, err := astro.ComputeChart(cmd.Context(), in)
				if err != nil {
					return err
				}
				if opts.format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), chart)
				}
				return printChart(cmd.OutOrStdout(), chart)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name of the native")
	return cmd
}

func printChart(w io.Writer, chart *domain.Chart) error {
	fmt.Fprintf(w, "UTC %s  JD(UT) %.5f  ayanamsa %.4f°\n\n",
		chart.Moment.UTC.Format("2006-01-02 15:04:05"), chart.Moment.UT, chart.Ayanamsa)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tSIGN\tDEGREE\tHOUSE\tNAKSHATRA\tPADA\tR")

	rows := append([]domain.BodyPosition{chart.Ascendant}, chart.Bodies...)
	for _, p := range rows {
		n, _ := chart.Nakshatra(p.Body)
		retro := ""
		if p.Retrograde {
			retro = "R"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
			p.Body, koota.SignName(p.Sign), dms(p.SignDegree), p.House, n.Name, n.Pada, retro)
	}
	return tw.Flush()
}
