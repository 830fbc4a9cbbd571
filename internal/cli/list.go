package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capfig/pkg/figures"
)

// listCommand creates the list command, which shows the figure registry.
func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available figures",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if namesOnly {
				for _, name := range figures.Names() {
					fmt.Println(name)
				}
				return nil
			}
			fmt.Println(figureTable(figures.List()))
			printNewline()
			printNextStep("Render one", "capfig render fig3")
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print figure names only")
	return cmd
}
