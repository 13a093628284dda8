// Package store provides a factory for board state backends.
package store

import (
	"fmt"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
	"github.com/pavankumarofficial1231/College-Connect/internal/store/memory"

	"go.uber.org/zap"
)

// New constructs a store backend by name, seeded with an initial collection.
func New(name string, log *zap.SugaredLogger, seed []*entities.Project) (Store, error) {
	switch name {
	case "memory":
		return memory.New(log, seed), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", name)
	}
}
