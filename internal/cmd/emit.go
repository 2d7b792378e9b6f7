package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/emitter"
	"github.com/retaildemo/eventgen/internal/ui"
	"github.com/retaildemo/eventgen/internal/utils"

	"github.com/spf13/cobra"
)

var (
	emitBrokers []string
	emitCount   int64
	emitSeed    int64
)

// emitCmd represents the emit command
var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit event streams to Kafka",
	Long: `Continuously generate retail events and publish them to Kafka.

Each stream (orders, return requests, out-of-stock notices) runs on its
own interval; product reviews are chained off return requests. Runs
until interrupted, or until --count events have been published.

Example:
  eventgen emit --brokers broker1:9092,broker2:9092
  eventgen emit --count 500 --seed 42   # Bounded, reproducible`,
	Run: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)

	emitCmd.Flags().StringSliceVar(&emitBrokers, "brokers", nil, "Kafka bootstrap brokers (overrides config)")
	emitCmd.Flags().Int64Var(&emitCount, "count", 0, "stop after this many events (0 = run until interrupted)")
	emitCmd.Flags().Int64Var(&emitSeed, "seed", 0, "random seed for reproducibility (0 = random)")
}

func runEmit(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if verbose {
		cfg.Verbose = true
	}
	if len(emitBrokers) > 0 {
		cfg.Kafka.Brokers = emitBrokers
	}
	if emitSeed != 0 {
		cfg.Seed = emitSeed
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if err := cfg.Kafka.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	rng := utils.NewRandom(cfg.Seed)

	fmt.Println(u.Header("Retail Event Generator"))
	fmt.Println()
	fmt.Println(u.KeyValue("Brokers", strings.Join(cfg.Kafka.Brokers, ", ")))
	fmt.Println(u.KeyValue("Topics", fmt.Sprintf("%s, %s, %s, %s",
		cfg.Kafka.Topics.Orders,
		cfg.Kafka.Topics.ReturnRequests,
		cfg.Kafka.Topics.OutOfStocks,
		cfg.Kafka.Topics.Reviews)))
	fmt.Println(u.KeyValue("Seed", fmt.Sprintf("%d", rng.Seed())))
	if emitCount > 0 {
		fmt.Println(u.KeyValue("Count", fmt.Sprintf("%d", emitCount)))
	} else {
		fmt.Println(u.KeyValue("Count", "unlimited (Ctrl+C to stop)"))
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spin := u.NewSpinner("Checking Kafka brokers")
	spin.Start()
	if err := emitter.CheckBrokers(ctx, cfg.Kafka); err != nil {
		spin.Error(err.Error())
		os.Exit(1)
	}
	spin.Success("reachable")

	pub := emitter.NewKafkaPublisher(cfg.Kafka)
	defer pub.Close()

	em, err := emitter.New(cfg, pub, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	var bar *ui.ProgressBar
	if emitCount > 0 {
		em.Limit = emitCount
		bar = u.NewProgressBar("Emitting events", emitCount)
		em.OnPublish = bar.Update
	} else {
		fmt.Println(u.Muted("Emitting events..."))
	}

	start := time.Now()
	if err := em.Run(ctx); err != nil {
		if bar != nil {
			bar.Fail(err)
		} else {
			fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		}
		os.Exit(1)
	}
	if bar != nil {
		bar.Complete()
	}

	printEmitSummary(u, em.Counts(), time.Since(start))
}

// printEmitSummary prints a styled emission summary
func printEmitSummary(u *ui.UI, counts emitter.Counts, elapsed time.Duration) {
	items := []ui.KV{
		{Key: "Orders", Value: fmt.Sprintf("%d", counts.Orders)},
		{Key: "Return Requests", Value: fmt.Sprintf("%d", counts.ReturnRequests)},
		{Key: "Out of Stocks", Value: fmt.Sprintf("%d", counts.OutOfStocks)},
		{Key: "Reviews", Value: fmt.Sprintf("%d", counts.Reviews)},
		{Key: "Duplicates", Value: fmt.Sprintf("%d", counts.Duplicates)},
		{Key: "Skipped Ticks", Value: fmt.Sprintf("%d", counts.Skipped)},
		{Key: "Total", Value: fmt.Sprintf("%d", counts.Total())},
		{Key: "Duration", Value: elapsed.Round(time.Millisecond).String()},
	}

	fmt.Println(u.SummaryBox("Emission Complete", items))
}
