package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chainstore"
	"github.com/chainwatch/chainwatch/chaintracker"
	"github.com/chainwatch/chainwatch/chaintrigger"
	"github.com/chainwatch/chainwatch/chainwatcher"
	"github.com/goware/logger"
	"github.com/spf13/cobra"
)

const VERSION = "v0.1"

var rootCmd = &cobra.Command{
	Use:   "chainwatch",
	Short: "CHAINWATCH - multi-chain block monitor & trigger runner",
	Args:  cobra.MinimumNArgs(1),
}

func init() {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("chainwatch", VERSION)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewRunCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

const (
	flagRunConfigDir = "config-dir"
	flagRunDataDir   = "data-dir"
)

type run struct{}

// NewRunCmd returns the command that loads config/{networks,monitors,triggers}
// (§6), starts one NetworkWatcher per network under a shared Supervisor, and
// blocks until interrupted.
func NewRunCmd() *cobra.Command {
	c := &run{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "load configuration and watch all configured networks",
		RunE:  c.Run,
	}

	cmd.Flags().String(flagRunConfigDir, "config", "directory holding networks/monitors/triggers subdirectories")
	cmd.Flags().String(flagRunDataDir, "data", "directory for persisted last-processed/blocks/missed-blocks state")

	return cmd
}

func (c *run) Run(cmd *cobra.Command, args []string) error {
	configDir, err := cmd.Flags().GetString(flagRunConfigDir)
	if err != nil {
		return err
	}
	dataDir, err := cmd.Flags().GetString(flagRunDataDir)
	if err != nil {
		return err
	}

	log := logger.NewLogger(logger.LogLevel_INFO)
	slogLog := slog.New(slog.NewTextHandler(os.Stderr, nil))

	networks, err := loadNetworks(configDir + "/networks")
	if err != nil {
		return fmt.Errorf("load networks: %w", err)
	}
	triggers, err := loadTriggers(configDir + "/triggers")
	if err != nil {
		return fmt.Errorf("load triggers: %w", err)
	}

	repo := chainmodel.StaticRepository{
		Networks: make(map[string]chainmodel.Network, len(networks)),
		Triggers: triggers,
	}
	for _, n := range networks {
		repo.Networks[n.Slug] = n
	}

	monitors, err := loadMonitors(configDir+"/monitors", repo)
	if err != nil {
		return fmt.Errorf("load monitors: %w", err)
	}

	store := chainstore.NewFileStore(dataDir, func() int64 { return time.Now().Unix() })
	tracker := chaintracker.New()
	dispatcher := chaintrigger.NewDispatcher(repo, chaintrigger.NewLogNotifier(log))

	monitorsByName := make(map[string]chainmodel.Monitor, len(monitors))
	for _, m := range monitors {
		monitorsByName[m.Name] = m
	}

	handler := func(ctx context.Context, block chainmodel.ProcessedBlock) {
		for _, match := range block.Matches {
			monitor, ok := monitorsByName[match.MonitorName]
			if !ok {
				continue
			}
			if err := dispatcher.Dispatch(ctx, monitor, match); err != nil {
				log.Warnf("chainwatch: dispatch failed for monitor %q block %d: %v", monitor.Name, block.BlockNumber, err)
			}
		}
	}

	sup := chainwatcher.NewSupervisor(slogLog)

	for _, network := range networks {
		if err := network.Validate(); err != nil {
			return fmt.Errorf("network %q: %w", network.Slug, err)
		}

		client, err := buildClient(network, log)
		if err != nil {
			return err
		}
		filter, err := buildFilter(network.ChainKind, log)
		if err != nil {
			return err
		}

		networkMonitors := monitorsForNetwork(monitors, network.Slug)
		contractSpecs := contractSpecsForMonitors(networkMonitors)

		watcher := chainwatcher.NewNetworkWatcher(network, client, store, tracker, filter, networkMonitors, contractSpecs, handler, slogLog)
		if err := sup.Start(watcher); err != nil {
			return fmt.Errorf("network %q: %w", network.Slug, err)
		}
		log.Warnf("chainwatch: watching %s (%s)", network.Slug, network.ChainKind)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	for _, network := range networks {
		if err := sup.Stop(network.Slug); err != nil {
			log.Warnf("chainwatch: stop failed for %s: %v", network.Slug, err)
		}
	}

	return nil
}

func monitorsForNetwork(monitors []chainmodel.Monitor, slug string) []chainmodel.Monitor {
	var out []chainmodel.Monitor
	for _, m := range monitors {
		if m.Paused {
			continue
		}
		for _, n := range m.Networks {
			if n == slug {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// contractSpecsForMonitors collects every per-address ABI a network's
// monitors carry, keyed by normalised address, so chainfilter can resolve an
// ABI for a log/transaction even when multiple monitors share one address.
func contractSpecsForMonitors(monitors []chainmodel.Monitor) map[string][]byte {
	out := make(map[string][]byte)
	for _, m := range monitors {
		for _, addr := range m.Addresses {
			if len(addr.ABI) == 0 {
				continue
			}
			out[addr.NormalizedAddress()] = addr.ABI
		}
	}
	return out
}
