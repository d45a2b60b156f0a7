package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	tvoyprogrock "go.trai.ch/tvoy/internal/adapters/telemetry/progrock"
	"go.trai.ch/tvoy/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return tvoyprogrock.New(), nil
		},
	})
}
