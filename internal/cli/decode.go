package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	globed "github.com/Termantita/globed2"
	"github.com/Termantita/globed2/internal/config"
	"github.com/Termantita/globed2/packet"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex|->",
		Short: "Decode one packet buffer and print it as YAML",
		Long: `Decode one packet buffer given in hex, or read from stdin with "-".

Whitespace and a leading 0x are ignored. Extension fields declared in the
config are decoded after the fixed fields and printed under "extensions".

Examples:
  globedpkt decode 000032c9000000090000000000
  xxd -p dump.bin | globedpkt decode -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if src == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				src = string(b)
			}
			b, err := parseHex(src)
			if err != nil {
				return err
			}

			exts := &yaml.Node{Kind: yaml.MappingNode}
			hooks, err := a.hooks(func(m config.Mod, p packet.Packet, vs []any) error {
				fields := &yaml.Node{Kind: yaml.MappingNode}
				for i, f := range m.Fields {
					val, err := toNode(reflect.ValueOf(vs[i]))
					if err != nil {
						return err
					}
					fields.Content = append(fields.Content,
						&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}, val)
				}
				exts.Content = append(exts.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: string(m.ID)}, fields)
				return nil
			})
			if err != nil {
				return err
			}
			defer hooks.Close()

			id, err := globed.PeekID(b)
			if err != nil {
				return err
			}
			_, p, err := a.codec(a.registry(id), hooks).Decode(b)
			if err != nil {
				return fmt.Errorf("packet %d: %w", id, err)
			}

			fields, err := toNode(reflect.ValueOf(p))
			if err != nil {
				return err
			}

			doc := &yaml.Node{Kind: yaml.MappingNode}
			add := func(k string, v *yaml.Node) {
				doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, v)
			}
			scalar := func(s string) *yaml.Node {
				return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
			}
			add("id", scalar(fmt.Sprintf("%d", id)))
			add("name", scalar(packet.Name(p)))
			add("direction", scalar(id.Direction().String()))
			add("group", scalar(id.Group().String()))
			add("fields", fields)
			if len(exts.Content) > 0 {
				add("extensions", exts)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}
