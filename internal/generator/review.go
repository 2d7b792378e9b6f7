package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// ReviewGenerator synthesizes product reviews chained after return
// requests. Reviews for size-issue products rate low and draw their text
// from the size-complaint list.
type ReviewGenerator struct {
	rng               *utils.Random
	rating            utils.Range
	sizeIssueRating   utils.Range
	comments          []string
	sizeIssueComments []string
	format            string
}

// NewReviewGenerator creates a review generator, validating rating bounds
// and comment lists eagerly.
func NewReviewGenerator(rng *utils.Random, cfg config.ReviewsConfig) (*ReviewGenerator, error) {
	rating, err := utils.NewRange(cfg.MinRating, cfg.MaxRating)
	if err != nil {
		return nil, fmt.Errorf("review rating: %w", err)
	}
	sizeIssueRating, err := utils.NewRange(cfg.MinRating, cfg.SizeIssueMaxRating)
	if err != nil {
		return nil, fmt.Errorf("size-issue review rating: %w", err)
	}
	if len(cfg.Comments) == 0 {
		return nil, fmt.Errorf("review comments: %w", utils.ErrEmptyInput)
	}
	if len(cfg.SizeIssueComments) == 0 {
		return nil, fmt.Errorf("size-issue review comments: %w", utils.ErrEmptyInput)
	}

	return &ReviewGenerator{
		rng:               rng,
		rating:            rating,
		sizeIssueRating:   sizeIssueRating,
		comments:          cfg.Comments,
		sizeIssueComments: cfg.SizeIssueComments,
		format:            config.TimestampFormat,
	}, nil
}

// Generate synthesizes a review for the given product. sizeIssue marks
// products drawn from the size-issue catalog.
func (g *ReviewGenerator) Generate(product models.Product, sizeIssue bool, timestamp time.Time) models.ProductReview {
	rating := g.rating
	comments := g.comments
	if sizeIssue {
		rating = g.sizeIssueRating
		comments = g.sizeIssueComments
	}

	return models.ProductReview{
		ID:         uuid.New().String(),
		Product:    product,
		Rating:     rating.Sample(g.rng),
		Comment:    utils.MustPick(g.rng, comments),
		ReviewTime: timestamp.Format(g.format),
		EventTime:  timestamp,
	}
}
