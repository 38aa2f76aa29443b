package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

// Small capability interfaces shared across layers.
//
// NOTE: These are intentionally defined in a "neutral" package so the scaling
// core can be exercised with stub implementations (no terminal, no network).

// SnapshotFetcher retrieves the tracked account's position and open orders
// for one asset. The returned position is nil when the account holds no
// active position in that asset.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, address, coin string) (*domain.Position, []domain.Order, error)
}

// ActivityFetcher reports the time of the account's most recent fill for one
// asset. A zero time means no fills were found.
type ActivityFetcher interface {
	FetchLastFill(ctx context.Context, address, coin string) (time.Time, error)
}

// InputSource supplies the operator's declared side and desired position
// size. The console implementation re-prompts on invalid input; test stubs
// return scripted values.
type InputSource interface {
	ReadSide() (domain.Side, error)
	ReadSize() (decimal.Decimal, error)
}
