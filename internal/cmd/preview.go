package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/emitter"
	"github.com/retaildemo/eventgen/internal/generator"
	"github.com/retaildemo/eventgen/internal/ui"
	"github.com/retaildemo/eventgen/internal/utils"
)

var (
	previewType   string
	previewNum    int
	previewIndent bool
	previewSeed   int64
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print sample events without a broker",
	Long: `Generate sample events and print them to stdout as JSON.

Useful for inspecting payload shapes and tuning configuration before
pointing the generator at a real cluster. No Kafka connection is made.

Types: order, return-request, out-of-stock, review, all

Example:
  eventgen preview --type order --num 3
  eventgen preview --type review --indent
  eventgen preview --seed 42   # Reproducible sample`,
	Run: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewType, "type", "all", "event type to preview")
	previewCmd.Flags().IntVar(&previewNum, "num", 5, "number of events to print")
	previewCmd.Flags().BoolVar(&previewIndent, "indent", false, "pretty-print JSON payloads")
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 0, "random seed for reproducibility (0 = random)")
}

func runPreview(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if previewSeed != 0 {
		cfg.Seed = previewSeed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	if err := printPreview(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
}

// printPreview generates previewNum events of the requested type and
// writes them through a stdout publisher.
func printPreview(cfg *config.Config, w *os.File) error {
	rng := utils.NewRandom(cfg.Seed)
	faker := gofakeit.New(rng.Seed())

	catalog := generator.NewProductGenerator(rng, faker, cfg.Products).
		GenerateCatalog(cfg.Products.SizeIssueCount)
	sizeIssueIDs := make(map[string]bool, len(catalog))
	for _, p := range catalog {
		sizeIssueIDs[p.ID] = true
	}

	orders, err := generator.NewOrderGenerator(rng, faker, cfg)
	if err != nil {
		return err
	}
	returns, err := generator.NewReturnRequestGenerator(rng, faker, cfg, catalog)
	if err != nil {
		return err
	}
	reviews, err := generator.NewReviewGenerator(rng, cfg.Reviews)
	if err != nil {
		return err
	}
	outOfStocks, err := generator.NewOutOfStockGenerator(rng, cfg.OutOfStocks)
	if err != nil {
		return err
	}

	pub := emitter.NewStdoutPublisher(w, previewIndent)
	ctx := context.Background()
	topics := cfg.Kafka.Topics

	print := func(topic string, key string, encode func() ([]byte, error)) error {
		value, err := encode()
		if err != nil {
			return err
		}
		return pub.Publish(ctx, topic, []byte(key), value)
	}

	printOrder := func() error {
		order := orders.GenerateEvent(orders.Timing().Now(rng))
		return print(topics.Orders, order.Key(), order.Encode)
	}
	printReturnRequest := func() error {
		req := returns.GenerateEvent(returns.Timing().Now(rng))
		return print(topics.ReturnRequests, req.Key(), req.Encode)
	}
	printOutOfStock := func() error {
		order := orders.GenerateEvent(orders.Timing().Now(rng))
		oos, ok := outOfStocks.Generate(order)
		if !ok {
			return nil
		}
		return print(topics.OutOfStocks, oos.Key(), oos.Encode)
	}
	printReview := func() error {
		req := returns.GenerateEvent(returns.Timing().Now(rng))
		line := utils.MustPick(rng, req.Returns)
		review := reviews.Generate(line.Product, sizeIssueIDs[line.Product.ID], req.EventTime)
		return print(topics.Reviews, review.Key(), review.Encode)
	}

	var steps []func() error
	switch previewType {
	case "order", "orders":
		steps = append(steps, printOrder)
	case "return-request", "return-requests":
		steps = append(steps, printReturnRequest)
	case "out-of-stock", "out-of-stocks":
		steps = append(steps, printOutOfStock)
	case "review", "reviews":
		steps = append(steps, printReview)
	case "all":
		steps = append(steps, printOrder, printReturnRequest, printOutOfStock, printReview)
	default:
		return fmt.Errorf("unknown event type %q (want %s)", previewType,
			"order, return-request, out-of-stock, review or all")
	}

	for i := 0; i < previewNum; i++ {
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
	}
	return nil
}
