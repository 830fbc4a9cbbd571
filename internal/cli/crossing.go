package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capfig/pkg/capacity"
)

// crossingCommand creates the crossing command, which locates the
// population N_c where the hierarchical code overtakes the uniform one.
func (c *CLI) crossingCommand() *cobra.Command {
	var configPath string
	var s capacity.Scaling

	cmd := &cobra.Command{
		Use:   "crossing",
		Short: "Print the capacity phase-transition point N_c",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			scaling := cfg.Scaling
			flags := cmd.Flags()
			if flags.Changed("m") {
				scaling.M = s.M
			}
			if flags.Changed("n-loc") {
				scaling.NLoc = s.NLoc
			}
			if flags.Changed("k") {
				scaling.K = s.K
			}
			if flags.Changed("k-inter") {
				scaling.KInter = s.KInter
			}
			if flags.Changed("k-intra") {
				scaling.KIntra = s.KIntra
			}
			if flags.Changed("points") {
				scaling.Points = s.Points
			}
			if err := scaling.Validate(); err != nil {
				return err
			}
			return runCrossing(scaling)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().Float64Var(&s.M, "m", 0, "concept sparsity (default 40)")
	cmd.Flags().Float64Var(&s.NLoc, "n-loc", 0, "local module size (default 8000)")
	cmd.Flags().Float64Var(&s.K, "k", 0, "uniform slope (default 3.5)")
	cmd.Flags().Float64Var(&s.KInter, "k-inter", 0, "hierarchical base slope (default 2)")
	cmd.Flags().Float64Var(&s.KIntra, "k-intra", 0, "hierarchical local gain slope (default 25)")
	cmd.Flags().IntVar(&s.Points, "points", 0, "number of log-spaced samples (default 1000)")

	return cmd
}

func runCrossing(s capacity.Scaling) error {
	tr := s.Curves().Crossing()
	if !tr.Found {
		printWarning("Curves do not cross between 10^%g and 10^%g", s.LogNMin, s.LogNMax)
		return nil
	}
	printSuccess("Phase transition at N_c ≈ 10^%.2f", tr.LogN())
	printKeyValue("N_c", fmt.Sprintf("%.0f", tr.N))
	printKeyValue("log C", fmt.Sprintf("%.3f", tr.LogC))
	printKeyValue("Sample", fmt.Sprintf("%d of %d", tr.Index+1, s.Points))
	printNewline()
	printNextStep("Draw it", "capfig render fig2")
	return nil
}
