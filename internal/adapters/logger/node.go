package logger

import (
	"context"
	"os"
	"strconv"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// JSONEnv switches the logger to JSON records when set to a true value.
	JSONEnv = "LFX_LOG_JSON"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return newFromEnv(os.LookupEnv)
		},
	})
}

func newFromEnv(lookup func(string) (string, bool)) (*Logger, error) {
	l := New()
	value, ok := lookup(JSONEnv)
	if !ok || value == "" {
		return l, nil
	}

	enable, err := strconv.ParseBool(value)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid "+JSONEnv), "value", value)
	}
	l.SetJSON(enable)
	return l, nil
}
