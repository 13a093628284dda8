// Package summary drafts one-sentence project summaries from descriptions.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"

	"go.uber.org/zap"
)

// Generator abstracts the external text-generation capability.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Drafter turns a project description into a catchy one-sentence summary.
// It never touches board state; its output is only an editable starting
// value for the summary field.
type Drafter struct {
	log     *zap.SugaredLogger
	gen     Generator
	timeout time.Duration
}

// NewDrafter constructs a Drafter over the given generation capability.
// timeout bounds each external call; zero means no bound.
func NewDrafter(log *zap.SugaredLogger, gen Generator, timeout time.Duration) *Drafter {
	return &Drafter{
		log:     log.Named("summary"),
		gen:     gen,
		timeout: timeout,
	}
}

const promptTemplate = `Based on the following project description, generate a catchy, one-sentence summary for a project listing board. The summary should be concise, engaging, and capture the essence of the project.

Description: %q

Summary:`

// Generate produces a summary for the description or a classified failure:
// entities.ErrInvalidArgument for empty input (the capability is not
// invoked), entities.ErrSummaryService for any failure of the external call
// (no automatic retry), entities.ErrEmptySummary when the call succeeds but
// yields no usable text after trimming and quote stripping.
func (d *Drafter) Generate(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: description is required", entities.ErrInvalidArgument)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	raw, err := d.gen.GenerateContent(ctx, fmt.Sprintf(promptTemplate, description))
	if err != nil {
		d.log.Errorw("summary generation failed", "error", err)
		return "", fmt.Errorf("%w: %v", entities.ErrSummaryService, err)
	}

	out := stripQuotes(strings.TrimSpace(raw))
	if out == "" {
		return "", entities.ErrEmptySummary
	}
	return out, nil
}

// stripQuotes removes a single leading and a single trailing quote, straight
// or curly, when present.
func stripQuotes(s string) string {
	runes := []rune(s)
	if len(runes) > 0 && isQuote(runes[0]) {
		runes = runes[1:]
	}
	if len(runes) > 0 && isQuote(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func isQuote(r rune) bool {
	switch r {
	case '"', '\'', '“', '”', '‘', '’':
		return true
	}
	return false
}
