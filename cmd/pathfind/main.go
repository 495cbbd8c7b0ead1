// Command pathfind is a small demonstration CLI around the routing core:
// it loads a channel graph snapshot, runs a search, and prints the
// resulting route (or K shortest routes) as plain text.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/lnpathfind/pathfind/internal/graphio"
	"github.com/lnpathfind/pathfind/lnwire"
	"github.com/lnpathfind/pathfind/routing"
	"github.com/lnpathfind/pathfind/routing/route"
)

func main() {
	app := cli.NewApp()
	app.Name = "pathfind"
	app.Usage = "compute payment routes over a channel graph snapshot"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "graph", Usage: "path to a JSON channel-graph snapshot", Required: true},
		cli.StringFlag{Name: "src", Usage: "source node pubkey (hex)", Required: true},
		cli.StringFlag{Name: "dst", Usage: "target node pubkey (hex)", Required: true},
		cli.Uint64Flag{Name: "amt", Usage: "amount to deliver, in msat", Required: true},
		cli.IntFlag{Name: "num-routes", Value: 1, Usage: "number of candidate routes to consider"},
		cli.BoolFlag{Name: "yen", Usage: "print all K candidate routes instead of just one"},
		cli.BoolFlag{Name: "randomize", Usage: "randomize selection among the top candidates"},
		cli.IntFlag{Name: "max-cltv", Value: 0, Usage: "maximum total cltv delta (0 = unbounded)"},
		cli.StringFlag{Name: "metrics-addr", Usage: "if set, serve Prometheus metrics on this address"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "one of trace, debug, info, warn, error, off"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pathfind:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, ok := btclog.LevelFromString(c.String("log-level"))
	if !ok {
		level = btclog.LevelInfo
	}
	backend := btclog.NewBackend(os.Stderr)
	logger := backend.Logger("PATH")
	logger.SetLevel(level)
	routing.UseLogger(logger)

	f, err := os.Open(c.String("graph"))
	if err != nil {
		return fmt.Errorf("open graph snapshot: %w", err)
	}
	defer f.Close()

	g, err := graphio.LoadSnapshot(f)
	if err != nil {
		return fmt.Errorf("load graph snapshot: %w", err)
	}

	src, err := lnwire.NodeIDFromHex(c.String("src"))
	if err != nil {
		return fmt.Errorf("parse src: %w", err)
	}
	dst, err := lnwire.NodeIDFromHex(c.String("dst"))
	if err != nil {
		return fmt.Errorf("parse dst: %w", err)
	}

	metrics := routing.NewMetrics("pathfind")
	if addr := c.String("metrics-addr"); addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.Collectors()...)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			logger.Infof("serving metrics on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	params := &routing.RouteParams{
		Randomize:    c.Bool("randomize"),
		RouteMaxCltv: lnwire.CltvDelta(c.Int("max-cltv")),
	}
	if params.Randomize {
		params.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx := context.Background()
	amt := lnwire.MilliSatoshi(c.Uint64("amt"))
	numRoutes := c.Int("num-routes")

	if c.Bool("yen") {
		paths, err := routing.YenKShortestPaths(ctx, g, src, dst, amt, numRoutes, nil, params)
		if err != nil {
			return err
		}
		for i, p := range paths {
			fmt.Printf("route %d (weight=%.6f, fee=%d msat):\n", i, p.Weight, p.Route.TotalFees())
			printHops(p.Route.Hops)
		}

		return nil
	}

	session := &routing.Session{Metrics: metrics}
	hops, err := session.FindRoute(ctx, g, src, dst, amt, numRoutes, nil, params)
	if err != nil {
		return err
	}
	printHops(hops)

	return nil
}

func printHops(hops []route.Hop) {
	for i, h := range hops {
		fmt.Printf("  %d: %s -> %s (channel %d, forward %d msat)\n",
			i, h.From, h.To, h.ChannelID, h.AmtToForward)
	}
}
