package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Termantita/globed2/packet"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every packet known to this build",
		Long: `List the packet catalog with ids, groups and flags.

With --side client only clientbound packets are shown, with --side server only
serverbound ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var regs []packet.Registry
			switch a.side {
			case "client":
				regs = []packet.Registry{packet.ClientboundRegistry}
			case "server":
				regs = []packet.Registry{packet.ServerboundRegistry}
			default:
				regs = []packet.Registry{packet.ServerboundRegistry, packet.ClientboundRegistry}
			}

			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"ID", "Name", "Direction", "Group", "Flags", "Category"})
			tw.SetBorder(true)
			tw.SetAutoWrapText(false)

			n := 0
			for _, reg := range regs {
				for _, id := range reg.IDs() {
					p, _ := reg.New(id)
					tw.Append([]string{
						fmt.Sprintf("%d", id),
						packet.Name(p),
						id.Direction().String(),
						id.Group().String(),
						flagString(p.Flags()),
						p.Category().String(),
					})
					n++
				}
			}

			tw.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "%d packets\n", n)
			return nil
		},
	}
}

func flagString(f packet.Flags) string {
	var s []string
	if f.Encrypted {
		s = append(s, "encrypted")
	}
	if f.Unreliable {
		s = append(s, "unreliable")
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ",")
}
