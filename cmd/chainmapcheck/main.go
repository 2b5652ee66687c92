// Command chainmapcheck runs randomized workloads against chainmap and the
// built-in map side by side and reports any disagreement.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "chainmapcheck",
		Short:        "Differential checker for chainmap",
		SilenceUsage: true,
	}

	cmd.AddCommand(runCommand())

	return cmd
}

func runCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flagCfg    = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a random workload and print a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags given explicitly win over the config file.
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = flagCfg.Seed
			}
			if flags.Changed("ops") {
				cfg.Ops = flagCfg.Ops
			}
			if flags.Changed("key-space") {
				cfg.KeySpace = flagCfg.KeySpace
			}
			if flags.Changed("capacity") {
				cfg.Capacity = flagCfg.Capacity
			}
			if flags.Changed("max-chain") {
				cfg.MaxChain = flagCfg.MaxChain
			}
			if flags.Changed("hash") {
				cfg.Hash = flagCfg.Hash
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			report, err := runWorkload(cfg, logger)
			if err != nil {
				logger.Error("workload failed", zap.Error(err))
				return err
			}

			out, err := sonnet.Marshal(report)
			if err != nil {
				return errors.Wrap(err, "encode report")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML workload file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	flags.Uint64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "random seed")
	flags.IntVar(&flagCfg.Ops, "ops", flagCfg.Ops, "number of operations")
	flags.IntVar(&flagCfg.KeySpace, "key-space", flagCfg.KeySpace, "number of distinct keys")
	flags.IntVar(&flagCfg.Capacity, "capacity", flagCfg.Capacity, "initial number of buckets")
	flags.IntVar(&flagCfg.MaxChain, "max-chain", flagCfg.MaxChain, "average chain length that triggers growth")
	flags.StringVar(&flagCfg.Hash, "hash", flagCfg.Hash, "hash function: maphash, xxhash or constant")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	return logger, nil
}
