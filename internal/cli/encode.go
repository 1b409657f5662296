package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Termantita/globed2/packet"
)

func newEncodeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "encode <PacketName>",
		Short: "Build a packet from YAML fields and print it as hex",
		Long: `Build a packet from a YAML mapping of its fields and print the encoded
buffer in hex. Fields left out keep their zero value. Byte arrays are given in
hex, optionals as their value or null. Extension fields declared in the config
are appended with their configured values.

Examples:
  globedpkt encode JoinRoom -f join.yaml
  echo '{RoomID: 9}' | globedpkt encode JoinRoomPacket -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}

			if file != "" {
				var data []byte
				if file == "-" {
					data, err = io.ReadAll(cmd.InOrStdin())
				} else {
					data, err = os.ReadFile(file)
				}
				if err != nil {
					return err
				}

				var fields map[string]any
				if err := yaml.Unmarshal(data, &fields); err != nil {
					return fmt.Errorf("parsing fields: %w", err)
				}
				if err := decodeFields(fields, p); err != nil {
					return fmt.Errorf("%s: %w", packet.Name(p), err)
				}
			}

			hooks, err := a.hooks(nil)
			if err != nil {
				return err
			}
			defer hooks.Close()

			b, err := a.codec(a.registry(p.ID()), hooks).Encode(p)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `YAML file with the packet fields, "-" for stdin`)
	return cmd
}
