package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"binancekit/pkg/binance"
	"binancekit/pkg/core"
)

func main() {
	// Create signal based context
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
			cancel()
		}
		signal.Stop(c)
	}()

	cmd := newCommand()
	if err := cmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *ffcli.Command {
	fs := flag.NewFlagSet("binancekit", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "binancekit [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newPriceCommand(),
			newKlinesCommand(),
			newAssetsCommand(),
		},
	}
}

type clientFlags struct {
	baseURL    *string
	apiKey     *string
	apiSecret  *string
	recvWindow *int64
}

func addClientFlags(fs *flag.FlagSet) *clientFlags {
	return &clientFlags{
		baseURL:    fs.String("base-url", core.ProductionURL, "binance api base url"),
		apiKey:     fs.String("api-key", "", "binance api key"),
		apiSecret:  fs.String("api-secret", "", "binance api secret"),
		recvWindow: fs.Int64("recv-window", core.DefaultRecvWindow, "signed request tolerance in milliseconds"),
	}
}

func (f *clientFlags) newClient() (*binance.Client, error) {
	config := core.DefaultConfig().
		WithBaseURL(*f.baseURL).
		WithCredentials(*f.apiKey, *f.apiSecret).
		WithRecvWindow(*f.recvWindow)
	return binance.New(config)
}

func commandOptions() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix("BINANCEKIT"),
	}
}

func newPriceCommand() *ffcli.Command {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	flags := addClientFlags(fs)

	return &ffcli.Command{
		Name:       "price",
		ShortUsage: "binancekit price <symbol> [symbol...]",
		ShortHelp:  "print the latest price for one or more symbols",
		Options:    commandOptions(),
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("missing symbol")
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if len(args) == 1 {
				price, err := client.TickerPrice(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", price.Symbol, price.Price.String())
				return nil
			}

			prices, err := client.TickerPrices(ctx, args)
			if err != nil {
				return err
			}
			for i := range prices {
				fmt.Printf("%s\t%s\n", prices[i].Symbol, prices[i].Price.String())
			}
			return nil
		},
	}
}

func newKlinesCommand() *ffcli.Command {
	fs := flag.NewFlagSet("klines", flag.ExitOnError)
	flags := addClientFlags(fs)
	interval := fs.String("interval", "1h", "kline interval (1m, 5m, 1h, 1d, ...)")
	limit := fs.Int("limit", 10, "number of intervals")

	return &ffcli.Command{
		Name:       "klines",
		ShortUsage: "binancekit klines [flags] <symbol>",
		ShortHelp:  "print candlestick history for a symbol",
		Options:    commandOptions(),
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one symbol")
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			series, err := client.Klines(ctx, args[0], *interval, binance.WithLimit(*limit))
			if err != nil {
				return err
			}

			for i := 0; i < series.Len(); i++ {
				fmt.Printf("%s\tO:%s H:%s L:%s C:%s V:%s\n",
					series.OpenTime[i].UTC().Format(time.RFC3339),
					series.Open[i].String(), series.High[i].String(),
					series.Low[i].String(), series.Close[i].String(),
					series.Volume[i].String())
			}
			return nil
		},
	}
}

func newAssetsCommand() *ffcli.Command {
	fs := flag.NewFlagSet("assets", flag.ExitOnError)
	flags := addClientFlags(fs)
	asset := fs.String("asset", "", "restrict to a single asset")

	return &ffcli.Command{
		Name:       "assets",
		ShortUsage: "binancekit assets [flags]",
		ShortHelp:  "print account asset balances (requires api credentials)",
		Options:    commandOptions(),
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if *flags.apiKey == "" {
				return errors.New("missing api key")
			}
			if *flags.apiSecret == "" {
				return errors.New("missing api secret")
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			var opts []binance.UserAssetsOption
			if *asset != "" {
				opts = append(opts, binance.WithAsset(*asset))
			}

			assets, err := client.UserAssets(ctx, opts...)
			if err != nil {
				return err
			}
			for i := range assets {
				fmt.Printf("%s\tfree:%s locked:%s\n",
					assets[i].Asset, assets[i].Free.String(), assets[i].Locked.String())
			}
			return nil
		},
	}
}
