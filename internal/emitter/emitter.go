package emitter

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/generator"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// event is what every generated record knows how to do: encode itself and
// name its partition key.
type event interface {
	Encode() ([]byte, error)
	Key() string
}

// Counts snapshots how many events each stream has published.
type Counts struct {
	Orders         int64
	ReturnRequests int64
	OutOfStocks    int64
	Reviews        int64
	Duplicates     int64
	Skipped        int64
}

// Total sums all first-copy emissions (duplicates excluded).
func (c Counts) Total() int64 {
	return c.Orders + c.ReturnRequests + c.OutOfStocks + c.Reviews
}

// Emitter owns the per-stream emission loops. Each stream runs on its own
// ticker with its own forked RNG, so streams stay reproducible
// independently of each other's pace.
type Emitter struct {
	cfg *config.Config
	pub Publisher

	ordersRNG  *utils.Random
	returnsRNG *utils.Random
	stocksRNG  *utils.Random

	orders      *generator.OrderGenerator
	returns     *generator.ReturnRequestGenerator
	outOfStocks *generator.OutOfStockGenerator
	reviews     *generator.ReviewGenerator

	sizeIssueIDs map[string]bool
	history      *OrderHistory

	// Limit bounds the total number of first-copy events (0 = unlimited).
	Limit int64

	// OnPublish, when set, is called with the running total after every
	// first-copy emission. Used for progress reporting.
	OnPublish func(total int64)

	counts   Counts
	countsMu sync.Mutex
	total    atomic.Int64
	verbose  bool
}

// New builds an emitter: the size-issue catalog first, then one generator
// per stream, each with a forked RNG and its own faker so streams don't
// share mutable state.
func New(cfg *config.Config, pub Publisher, rng *utils.Random) (*Emitter, error) {
	catalogRNG := rng.Fork()
	catalogGen := generator.NewProductGenerator(catalogRNG, gofakeit.New(catalogRNG.Seed()), cfg.Products)
	catalog := catalogGen.GenerateCatalog(cfg.Products.SizeIssueCount)

	sizeIssueIDs := make(map[string]bool, len(catalog))
	for _, p := range catalog {
		sizeIssueIDs[p.ID] = true
	}

	ordersRNG := rng.Fork()
	orders, err := generator.NewOrderGenerator(ordersRNG, gofakeit.New(ordersRNG.Seed()), cfg)
	if err != nil {
		return nil, err
	}

	returnsRNG := rng.Fork()
	returns, err := generator.NewReturnRequestGenerator(returnsRNG, gofakeit.New(returnsRNG.Seed()), cfg, catalog)
	if err != nil {
		return nil, err
	}

	reviews, err := generator.NewReviewGenerator(returnsRNG, cfg.Reviews)
	if err != nil {
		return nil, err
	}

	stocksRNG := rng.Fork()
	outOfStocks, err := generator.NewOutOfStockGenerator(stocksRNG, cfg.OutOfStocks)
	if err != nil {
		return nil, err
	}

	return &Emitter{
		cfg:          cfg,
		pub:          pub,
		ordersRNG:    ordersRNG,
		returnsRNG:   returnsRNG,
		stocksRNG:    stocksRNG,
		orders:       orders,
		returns:      returns,
		outOfStocks:  outOfStocks,
		reviews:      reviews,
		sizeIssueIDs: sizeIssueIDs,
		history:      NewOrderHistory(cfg.OutOfStocks.HistorySize),
		verbose:      cfg.Verbose,
	}, nil
}

// Run drives all emission loops until the context is cancelled or the
// emission limit is reached.
func (e *Emitter) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	loops := []struct {
		interval time.Duration
		tick     func(context.Context)
	}{
		{e.orders.Timing().Interval, e.emitOrder},
		{e.returns.Timing().Interval, e.emitReturnRequest},
		{e.outOfStocks.Timing().Interval, e.emitOutOfStock},
	}

	for _, loop := range loops {
		wg.Add(1)
		go func(interval time.Duration, tick func(context.Context)) {
			defer wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					tick(ctx)
					if e.Limit > 0 && e.total.Load() >= e.Limit {
						cancel()
						return
					}
				}
			}
		}(loop.interval, loop.tick)
	}

	wg.Wait()
	return nil
}

// Counts returns a snapshot of the per-stream emission counters.
func (e *Emitter) Counts() Counts {
	e.countsMu.Lock()
	defer e.countsMu.Unlock()
	return e.counts
}

func (e *Emitter) emitOrder(ctx context.Context) {
	ts := e.orders.Timing().Now(e.ordersRNG)
	order := e.orders.GenerateEvent(ts)

	if !e.publish(ctx, e.cfg.Kafka.Topics.Orders, order, &e.counts.Orders) {
		return
	}
	e.history.Add(order)
	e.maybeDuplicate(ctx, e.cfg.Kafka.Topics.Orders, order, e.orders.Timing(), e.ordersRNG)
}

func (e *Emitter) emitReturnRequest(ctx context.Context) {
	ts := e.returns.Timing().Now(e.returnsRNG)
	req := e.returns.GenerateEvent(ts)

	if !e.publish(ctx, e.cfg.Kafka.Topics.ReturnRequests, req, &e.counts.ReturnRequests) {
		return
	}
	e.maybeDuplicate(ctx, e.cfg.Kafka.Topics.ReturnRequests, req, e.returns.Timing(), e.returnsRNG)

	if e.returns.ShouldReview() {
		e.emitReview(ctx, req)
	}
}

// emitReview chains a review for one product of a just-emitted return
// request. Requests always carry at least one return line, so the pick
// cannot fail.
func (e *Emitter) emitReview(ctx context.Context, req models.ReturnRequest) {
	line := utils.MustPick(e.returnsRNG, req.Returns)
	review := e.reviews.Generate(line.Product, e.sizeIssueIDs[line.Product.ID], req.EventTime)
	e.publish(ctx, e.cfg.Kafka.Topics.Reviews, review, &e.counts.Reviews)
}

// emitOutOfStock derives a notice from a sampled recent order. An empty
// history or an unparsable product description skips this tick; the next
// tick samples a fresh order.
func (e *Emitter) emitOutOfStock(ctx context.Context) {
	order, ok := e.history.Random(e.stocksRNG)
	if !ok {
		e.skip("no orders in history yet")
		return
	}

	oos, ok := e.outOfStocks.Generate(order)
	if !ok {
		e.skip("order " + order.ID + " has no parseable product")
		return
	}

	if !e.publish(ctx, e.cfg.Kafka.Topics.OutOfStocks, oos, &e.counts.OutOfStocks) {
		return
	}
	e.maybeDuplicate(ctx, e.cfg.Kafka.Topics.OutOfStocks, oos, e.outOfStocks.Timing(), e.stocksRNG)
}

// publish encodes and delivers one event, bumping the stream counter.
// Returns false when the event didn't go out.
func (e *Emitter) publish(ctx context.Context, topic string, ev event, counter *int64) bool {
	value, err := ev.Encode()
	if err != nil {
		log.Printf("encode for %s failed: %v", topic, err)
		return false
	}

	if err := e.pub.Publish(ctx, topic, []byte(ev.Key()), value); err != nil {
		if ctx.Err() == nil {
			log.Printf("publish to %s failed: %v", topic, err)
		}
		return false
	}

	e.countsMu.Lock()
	*counter++
	e.countsMu.Unlock()

	total := e.total.Add(1)
	if e.OnPublish != nil {
		e.OnPublish(total)
	}
	return true
}

// maybeDuplicate republishes the same payload when the stream's duplicate
// ratio fires. Duplicates don't count against the emission limit.
func (e *Emitter) maybeDuplicate(ctx context.Context, topic string, ev event, timing generator.Timing, rng *utils.Random) {
	if !timing.ShouldDuplicate(rng) {
		return
	}

	value, err := ev.Encode()
	if err != nil {
		return
	}
	if err := e.pub.Publish(ctx, topic, []byte(ev.Key()), value); err != nil {
		if ctx.Err() == nil {
			log.Printf("duplicate publish to %s failed: %v", topic, err)
		}
		return
	}

	e.countsMu.Lock()
	e.counts.Duplicates++
	e.countsMu.Unlock()
}

func (e *Emitter) skip(reason string) {
	e.countsMu.Lock()
	e.counts.Skipped++
	e.countsMu.Unlock()

	if e.verbose {
		log.Printf("out-of-stock skipped: %s", reason)
	}
}
