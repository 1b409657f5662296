// Package cli implements the globedpkt commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	globed "github.com/Termantita/globed2"
	"github.com/Termantita/globed2/ext"
	"github.com/Termantita/globed2/internal/config"
	"github.com/Termantita/globed2/internal/logging"
	"github.com/Termantita/globed2/packet"
)

// app carries the state shared by every command once flags are parsed.
type app struct {
	configFile string
	side       string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "globedpkt",
		Short: "Inspect, decode and build Globed protocol packets",
		Long: `globedpkt works on single Globed packet buffers, without any transport.

Extension fields declared in the [[mods]] section of the config file are
registered before every command, so decoded output includes them and encoded
packets carry them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", config.DefaultConfigFile,
		"config file path")
	root.PersistentFlags().StringVarP(&a.side, "side", "s", "auto",
		"catalog to use: client (clientbound), server (serverbound) or auto")

	root.AddCommand(
		newCatalogCmd(a),
		newDecodeCmd(a),
		newEncodeCmd(a),
		newHooksCmd(a),
	)
	return root
}

// Execute runs the command tree. It is called by main.main.
func Execute() error {
	return newRootCmd().Execute()
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Init(cfg.Log)

	switch a.side {
	case "auto", "client", "server":
	default:
		return fmt.Errorf("invalid --side %q, want client, server or auto", a.side)
	}
	return nil
}

// registry returns the catalog selected by --side. Auto picks by the
// direction digit of id.
func (a *app) registry(id packet.ID) packet.Registry {
	switch a.side {
	case "client":
		return packet.ClientboundRegistry
	case "server":
		return packet.ServerboundRegistry
	}
	return id.Direction().Registry()
}

// hooks registers every manifest mod on a fresh extension registry. Send
// hooks write the configured values; receive hooks hand decoded values to
// sink.
func (a *app) hooks(sink func(m config.Mod, p packet.Packet, vs []any) error) (*ext.Registry, error) {
	r := ext.NewRegistry(ext.WithLogger(a.log.Named("ext")))

	for _, m := range a.cfg.Mods {
		values := m.Values()
		_, err := ext.RegisterSendFields(r, m.ID, ext.SendType(m.Category), m.Metas(),
			func(packet.Packet) ([]any, error) {
				return values, nil
			})
		if err != nil {
			r.Close()
			return nil, err
		}

		_, err = ext.RegisterReceiveFields(r, m.ID, ext.ReceiveType(m.Category), m.Metas(),
			func(p packet.Packet, vs []any) error {
				if sink == nil {
					return nil
				}
				return sink(m, p, vs)
			})
		if err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

func (a *app) codec(reg packet.Registry, hooks *ext.Registry) *globed.Codec {
	return globed.NewCodec(globed.CodecConfig{
		Registry:     reg,
		Hooks:        hooks,
		MaxPacketLen: a.cfg.Codec.MaxPacketLen,
		Logger:       a.log.Named("codec"),
	})
}

// lookup finds a packet type by name in either catalog. The Packet suffix
// may be omitted.
func lookup(name string) (packet.Packet, error) {
	if !strings.HasSuffix(name, "Packet") {
		name += "Packet"
	}
	for _, reg := range []packet.Registry{packet.ServerboundRegistry, packet.ClientboundRegistry} {
		if f, ok := reg.Lookup(name); ok {
			return f(), nil
		}
	}
	return nil, fmt.Errorf("unknown packet %q", name)
}

// Main runs the command tree and exits non-zero on failure.
func Main() {
	if err := Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
