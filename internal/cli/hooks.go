package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHooksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "List the extension fields declared in the config, in wire order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.hooks(nil)
			if err != nil {
				return err
			}
			defer r.Close()

			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"#", "Phase", "Category", "Mod", "Fields"})
			tw.SetBorder(true)
			tw.SetAutoWrapText(false)

			regs := r.Registrations()
			for i, reg := range regs {
				fields := make([]string, len(reg.Fields))
				for j, f := range reg.Fields {
					fields[j] = f.Name + ":" + f.Type.String()
				}
				tw.Append([]string{
					fmt.Sprintf("%d", i+1),
					reg.Phase.String(),
					reg.Category.String(),
					string(reg.Mod),
					strings.Join(fields, " "),
				})
			}

			tw.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "%d registrations\n", len(regs))
			return nil
		},
	}
}
