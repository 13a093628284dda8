// Package domain contains application usecases orchestrating board logic by summary drafting.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// GenerateSummary drafts a one-sentence summary from a description. The
// result is only an editable starting value; board state is untouched.
// The drafter owns its own latency budget, so the transport request timeout
// is not applied here.
func (u *Usecase) GenerateSummary(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("%w: description is required", entities.ErrInvalidArgument)
	}

	text, err := u.drafter.Generate(ctx, description)
	if err != nil {
		u.log.Errorw("failed to draft summary", "error", err.Error())
		return "", err
	}
	return text, nil
}
