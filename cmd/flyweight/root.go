package main

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/flyweight"
	asynchook "github.com/unkn0wn-root/flyweight/hooks/async"
	"github.com/unkn0wn-root/flyweight/internal/config"
	"github.com/unkn0wn-root/flyweight/internal/scenario"
	"github.com/unkn0wn-root/flyweight/sloghooks"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "flyweight",
		Short:         "Run the flyweight interning scenario",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.Flags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Build the reference entities and print cache reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withInterner(cmd, v, func(in flyweight.Interner, _ config.Config) error {
				return scenario.Run(cmd.OutOrStdout(), in)
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "snapshot",
		Short: "Run the scenario and print the final cache as a base64 snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withInterner(cmd, v, func(in flyweight.Interner, cfg config.Config) error {
				if err := scenario.Run(io.Discard, in); err != nil {
					return err
				}
				cdc := cfg.SnapshotCodec()
				b, err := in.Snapshot(cdc)
				if err != nil {
					return err
				}
				// the output must restore under the same codec and limit
				seed, err := flyweight.DecodeSnapshot(b, cdc)
				if err != nil {
					return fmt.Errorf("verify snapshot: %w", err)
				}
				if len(seed) != in.Len() {
					return fmt.Errorf("verify snapshot: restored %d of %d entries", len(seed), in.Len())
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(b))
				return err
			})
		},
	})

	return root
}

// withInterner loads config, wires logger and hooks, and runs fn with a fresh Interner.
func withInterner(cmd *cobra.Command, v *viper.Viper, fn func(flyweight.Interner, config.Config) error) error {
	cfg, err := config.Load(v, cmd.Flags())
	if err != nil {
		return err
	}
	// logger and async hooks share stderr from different goroutines
	logOut := zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))

	l, flush, err := cfg.NewLogger(logOut)
	if err != nil {
		return err
	}
	defer flush()

	opts := flyweight.Options{Namespace: cfg.Namespace, Logger: l}
	if cfg.Hooks {
		h := asynchook.New(sloghooks.New(cfg.SlogLogger(logOut), sloghooks.Options{ReuseEvery: 5}), 1, 1024)
		defer h.Close()
		opts.Hooks = h
	}
	return fn(flyweight.New(opts), cfg)
}
