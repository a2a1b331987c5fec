package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "match BOY GIRL",
		Short: "Ashtakoota matching and Mangal dosha for two births",
		Long:  birthArgHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			boy, err := parseBirth("boy", args[0])
			if err != nil {
				return err
			}
			girl, err := parseBirth("girl", args[1])
			if err != nil {
				return err
			}
			boy.Gender, girl.Gender = domain.GenderMale, domain.GenderFemale

			reference := domain.DoshaReference(ref)
			if ref != "" && !reference.IsValid() {
				return fmt.Errorf("unknown dosha reference %q, expected ascendant, moon or either", ref)
			}

			return opts.withCore(cmd, func(astro usecase.IAstroUseCase) error {
				res, err := astro.ComputeMatching(cmd.Context(), boy, girl, reference)
				if err != nil {
					return err
				}
				if opts.format == formatJSON {
					return writeJSON(cmd.OutOrStdout(), res)
				}
				return printMatching(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVar(&ref, "dosha-reference", "", "Mars house reference (ascendant, moon, either)")
	return cmd
}

func printMatching(w io.Writer, res *domain.MatchingResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KOOTA\tBOY\tGIRL\tSCORE")
	for _, f := range res.Factors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g/%g\n", f.Name, f.Boy, f.Girl, f.Score, f.Max)
	}
	fmt.Fprintf(tw, "Total\t\t\t%g/%g\n", res.Total, domain.MaxGunaScore)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nVerdict: %s\n", res.Verdict)
	fmt.Fprintf(w, "Manglik: boy %t (house %d), girl %t (house %d)",
		res.Boy.HasDosha, res.Boy.MarsHouse, res.Girl.HasDosha, res.Girl.MarsHouse)
	if res.DoshaCancelled {
		fmt.Fprint(w, ", cancelled")
	}
	fmt.Fprintln(w)
	return nil
}
