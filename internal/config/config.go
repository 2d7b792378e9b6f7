package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the event generator
type Config struct {
	// Random seed for reproducibility (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Kafka connection and topic routing
	Kafka KafkaConfig `mapstructure:"kafka"`

	// Per-stream settings
	Orders         OrdersConfig         `mapstructure:"orders"`
	ReturnRequests ReturnRequestsConfig `mapstructure:"return_requests"`
	OutOfStocks    OutOfStocksConfig    `mapstructure:"out_of_stocks"`
	Reviews        ReviewsConfig        `mapstructure:"reviews"`

	// Shared value-generator settings
	Customers CustomersConfig `mapstructure:"customers"`
	Addresses AddressesConfig `mapstructure:"addresses"`
	Products  ProductsConfig  `mapstructure:"products"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// KafkaConfig holds broker and topic settings
type KafkaConfig struct {
	Brokers     []string      `mapstructure:"brokers"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	Topics      TopicsConfig  `mapstructure:"topics"`
}

// TopicsConfig maps each event stream to its topic
type TopicsConfig struct {
	Orders         string `mapstructure:"orders"`
	ReturnRequests string `mapstructure:"return_requests"`
	OutOfStocks    string `mapstructure:"out_of_stocks"`
	Reviews        string `mapstructure:"reviews"`
}

// StreamConfig holds the timing settings every event stream shares
type StreamConfig struct {
	// Interval between emissions
	Interval time.Duration `mapstructure:"interval"`

	// MaxDelay bounds the random jitter added to event timestamps
	MaxDelay time.Duration `mapstructure:"max_delay"`

	// DuplicateRatio is the fraction of events published twice (0.0-1.0)
	DuplicateRatio float64 `mapstructure:"duplicate_ratio"`
}

// OrdersConfig holds online order generation settings
type OrdersConfig struct {
	Stream StreamConfig `mapstructure:",squash"`

	// Number of product lines per order
	MinItems int `mapstructure:"min_items"`
	MaxItems int `mapstructure:"max_items"`
}

// ReturnRequestsConfig holds return request generation settings
type ReturnRequestsConfig struct {
	Stream StreamConfig `mapstructure:",squash"`

	// Number of returned products per request
	MinProducts int `mapstructure:"min_products"`
	MaxProducts int `mapstructure:"max_products"`

	// Quantity per returned product
	MinQuantity int `mapstructure:"min_quantity"`
	MaxQuantity int `mapstructure:"max_quantity"`

	// Reasons a returned product can carry
	Reasons []string `mapstructure:"reasons"`

	// Fraction of returned products drawn from the size-issue catalog (0.0-1.0)
	SizeIssueRatio float64 `mapstructure:"size_issue_ratio"`

	// Fraction of return requests followed by a product review (0.0-1.0)
	ReviewRatio float64 `mapstructure:"review_ratio"`
}

// OutOfStocksConfig holds out-of-stock notice generation settings
type OutOfStocksConfig struct {
	Stream StreamConfig `mapstructure:",squash"`

	// Restocking delay bounds, in days
	RestockingMinDelay int `mapstructure:"restocking_min_delay"`
	RestockingMaxDelay int `mapstructure:"restocking_max_delay"`

	// Size of the recent-order buffer notices are synthesized from
	HistorySize int `mapstructure:"history_size"`
}

// ReviewsConfig holds product review generation settings
type ReviewsConfig struct {
	MinRating int `mapstructure:"min_rating"`
	MaxRating int `mapstructure:"max_rating"`

	// Rating cap for reviews of size-issue products
	SizeIssueMaxRating int `mapstructure:"size_issue_max_rating"`

	Comments          []string `mapstructure:"comments"`
	SizeIssueComments []string `mapstructure:"size_issue_comments"`
}

// CustomersConfig holds customer synthesis settings
type CustomersConfig struct {
	MinEmails int `mapstructure:"min_emails"`
	MaxEmails int `mapstructure:"max_emails"`
}

// AddressesConfig holds address synthesis settings
type AddressesConfig struct {
	MinPhones int `mapstructure:"min_phones"`
	MaxPhones int `mapstructure:"max_phones"`

	// Fraction of events where the billing address doubles as the
	// shipping address (0.0-1.0)
	ReuseRatio float64 `mapstructure:"reuse_ratio"`
}

// ProductsConfig holds product catalog settings
type ProductsConfig struct {
	MinPrice float64 `mapstructure:"min_price"`
	MaxPrice float64 `mapstructure:"max_price"`

	// Number of size-issue products generated at startup
	SizeIssueCount int `mapstructure:"size_issue_count"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Seed: 0,
		Kafka: KafkaConfig{
			Brokers:     []string{"localhost:9092"},
			DialTimeout: 10 * time.Second,
			Topics: TopicsConfig{
				Orders:         "orders",
				ReturnRequests: "return-requests",
				OutOfStocks:    "out-of-stocks",
				Reviews:        "product-reviews",
			},
		},
		Orders: OrdersConfig{
			Stream: StreamConfig{
				Interval:       OrderInterval,
				MaxDelay:       EventMaxDelay,
				DuplicateRatio: DuplicateRatio,
			},
			MinItems: OrderMinItems,
			MaxItems: OrderMaxItems,
		},
		ReturnRequests: ReturnRequestsConfig{
			Stream: StreamConfig{
				Interval:       ReturnRequestInterval,
				MaxDelay:       EventMaxDelay,
				DuplicateRatio: DuplicateRatio,
			},
			MinProducts:    ReturnMinProducts,
			MaxProducts:    ReturnMaxProducts,
			MinQuantity:    ReturnMinQuantity,
			MaxQuantity:    ReturnMaxQuantity,
			Reasons:        DefaultReturnReasons,
			SizeIssueRatio: SizeIssueRatio,
			ReviewRatio:    ReviewRatio,
		},
		OutOfStocks: OutOfStocksConfig{
			Stream: StreamConfig{
				Interval:       OutOfStockInterval,
				MaxDelay:       EventMaxDelay,
				DuplicateRatio: DuplicateRatio,
			},
			RestockingMinDelay: RestockingMinDelay,
			RestockingMaxDelay: RestockingMaxDelay,
			HistorySize:        OrderHistorySize,
		},
		Reviews: ReviewsConfig{
			MinRating:          ReviewMinRating,
			MaxRating:          ReviewMaxRating,
			SizeIssueMaxRating: SizeIssueMaxRating,
			Comments:           DefaultReviewComments,
			SizeIssueComments:  DefaultSizeIssueComments,
		},
		Customers: CustomersConfig{
			MinEmails: CustomerMinEmails,
			MaxEmails: CustomerMaxEmails,
		},
		Addresses: AddressesConfig{
			MinPhones:  AddressMinPhones,
			MaxPhones:  AddressMaxPhones,
			ReuseRatio: ReuseAddressRatio,
		},
		Products: ProductsConfig{
			MinPrice:       ProductMinPrice,
			MaxPrice:       ProductMaxPrice,
			SizeIssueCount: SizeIssueProducts,
		},
		Verbose: false,
	}
}

// Load reads configuration from viper into a Config struct
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. All violations are
// collected so a bad config file surfaces every problem at once.
func (c *Config) Validate() error {
	var errs []string

	checkRatio := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be between 0.0 and 1.0", name))
		}
	}
	checkBounds := func(name string, min, max int) {
		if min > max {
			errs = append(errs, fmt.Sprintf("%s: min %d exceeds max %d", name, min, max))
		}
		if min < 0 {
			errs = append(errs, fmt.Sprintf("%s: min must be non-negative", name))
		}
	}
	checkStream := func(name string, s StreamConfig) {
		if s.Interval <= 0 {
			errs = append(errs, fmt.Sprintf("%s.interval must be positive", name))
		}
		if s.MaxDelay < 0 {
			errs = append(errs, fmt.Sprintf("%s.max_delay must be non-negative", name))
		}
		checkRatio(name+".duplicate_ratio", s.DuplicateRatio)
	}

	checkStream("orders", c.Orders.Stream)
	checkStream("return_requests", c.ReturnRequests.Stream)
	checkStream("out_of_stocks", c.OutOfStocks.Stream)

	checkBounds("orders items", c.Orders.MinItems, c.Orders.MaxItems)
	if c.Orders.MinItems < 1 {
		errs = append(errs, "orders.min_items must be at least 1")
	}

	checkBounds("return_requests products", c.ReturnRequests.MinProducts, c.ReturnRequests.MaxProducts)
	if c.ReturnRequests.MinProducts < 1 {
		errs = append(errs, "return_requests.min_products must be at least 1")
	}
	checkBounds("return_requests quantity", c.ReturnRequests.MinQuantity, c.ReturnRequests.MaxQuantity)
	if c.ReturnRequests.MinQuantity < 1 {
		errs = append(errs, "return_requests.min_quantity must be at least 1")
	}
	if len(c.ReturnRequests.Reasons) == 0 {
		errs = append(errs, "return_requests.reasons must not be empty")
	}
	checkRatio("return_requests.size_issue_ratio", c.ReturnRequests.SizeIssueRatio)
	checkRatio("return_requests.review_ratio", c.ReturnRequests.ReviewRatio)

	checkBounds("out_of_stocks restocking delay", c.OutOfStocks.RestockingMinDelay, c.OutOfStocks.RestockingMaxDelay)
	if c.OutOfStocks.HistorySize < 1 {
		errs = append(errs, "out_of_stocks.history_size must be at least 1")
	}

	checkBounds("reviews rating", c.Reviews.MinRating, c.Reviews.MaxRating)
	if c.Reviews.MinRating < 1 {
		errs = append(errs, "reviews.min_rating must be at least 1")
	}
	if c.Reviews.SizeIssueMaxRating < c.Reviews.MinRating {
		errs = append(errs, "reviews.size_issue_max_rating must not be below min_rating")
	}
	if len(c.Reviews.Comments) == 0 {
		errs = append(errs, "reviews.comments must not be empty")
	}
	if len(c.Reviews.SizeIssueComments) == 0 {
		errs = append(errs, "reviews.size_issue_comments must not be empty")
	}

	checkBounds("customers emails", c.Customers.MinEmails, c.Customers.MaxEmails)
	if c.Customers.MinEmails < 1 {
		errs = append(errs, "customers.min_emails must be at least 1")
	}
	checkBounds("addresses phones", c.Addresses.MinPhones, c.Addresses.MaxPhones)
	checkRatio("addresses.reuse_ratio", c.Addresses.ReuseRatio)

	if c.Products.MinPrice < 0 || c.Products.MinPrice > c.Products.MaxPrice {
		errs = append(errs, "products.min_price must be non-negative and not exceed max_price")
	}
	if c.Products.SizeIssueCount < 1 {
		errs = append(errs, "products.size_issue_count must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// Validate checks the broker/topic settings; only the emit command
// needs these, so they're validated separately from the generation config.
func (c *KafkaConfig) Validate() error {
	var errs []string

	if len(c.Brokers) == 0 {
		errs = append(errs, "kafka.brokers must not be empty")
	}
	for name, topic := range map[string]string{
		"kafka.topics.orders":          c.Topics.Orders,
		"kafka.topics.return_requests": c.Topics.ReturnRequests,
		"kafka.topics.out_of_stocks":   c.Topics.OutOfStocks,
		"kafka.topics.reviews":         c.Topics.Reviews,
	} {
		if topic == "" {
			errs = append(errs, name+" must not be empty")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
