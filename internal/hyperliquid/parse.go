package hyperliquid

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

// parsePosition 从账户状态中提取指定资产的仓位。
// 找不到该资产、或带符号数量为 0（没有活跃仓位）时返回 nil。
func parsePosition(state clearinghouseState, coin string) (*domain.Position, error) {
	for _, ap := range state.AssetPositions {
		raw := ap.Position
		if raw.Coin != coin {
			continue
		}

		szi, err := decimal.NewFromString(raw.Szi)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid position size %q for %s", raw.Szi, coin)
		}
		side, ok := domain.SideFromSignedSize(szi)
		if !ok {
			return nil, nil
		}
		entryPx, err := decimal.NewFromString(raw.EntryPx)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid entry price %q for %s", raw.EntryPx, coin)
		}

		return &domain.Position{
			Side:       side,
			Size:       szi.Abs(),
			EntryPrice: entryPx,
		}, nil
	}
	return nil, nil
}

// parseOrders 过滤并解析指定资产的挂单，保持交易所返回的顺序。
func parseOrders(raw []rawOrder, coin string) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(raw))
	for _, r := range raw {
		if r.Coin != coin {
			continue
		}

		side := domain.OrderSide(r.Side)
		if side != domain.OrderSideBuy && side != domain.OrderSideSell {
			return nil, errors.Errorf("unknown order side %q for %s order", r.Side, coin)
		}
		price, err := decimal.NewFromString(r.LimitPx)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid limit price %q", r.LimitPx)
		}
		size, err := decimal.NewFromString(r.Sz)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid order size %q", r.Sz)
		}

		orders = append(orders, domain.Order{
			Side:      side,
			Price:     price,
			Size:      size.Abs(),
			Timestamp: time.UnixMilli(r.Timestamp),
		})
	}
	return orders, nil
}
