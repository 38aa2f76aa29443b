package scaling

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

// ErrEmptyProjection 预测仓位总数量为 0（既没有仓位也没有加仓方向的挂单），
// 加权平均价无定义
var ErrEmptyProjection = errors.New("projected total size is zero, average entry price undefined")

// Project 计算"所有加仓方向的挂单全部成交"后的假设仓位。
//
// position 为账户当前仓位（方向 + 开仓均价），desiredSize 为用户的目标数量
// （即缩放后的当前仓位数量），scaled 为已缩放的挂单列表。
//
// 算法：
//  1. 过滤出加仓方向的挂单（多头取买单，空头取卖单）；
//  2. total_size = desiredSize + Σ 过滤后挂单的缩放数量；
//  3. total_capital = desiredSize × 开仓均价 + Σ(限价 × 缩放数量)；
//  4. 平均入场价 = total_capital / total_size。
func Project(position domain.Position, desiredSize decimal.Decimal, scaled []domain.ScaledOrder) (domain.ProjectedPosition, error) {
	additionalSize := decimal.Zero
	additionalCapital := decimal.Zero
	for _, o := range scaled {
		if !o.Side.IncreasesPosition(position.Side) {
			continue
		}
		additionalSize = additionalSize.Add(o.ScaledSize)
		additionalCapital = additionalCapital.Add(o.Notional())
	}

	totalSize := desiredSize.Add(additionalSize)
	if totalSize.Sign() == 0 {
		return domain.ProjectedPosition{}, ErrEmptyProjection
	}

	totalCapital := desiredSize.Mul(position.EntryPrice).Add(additionalCapital)
	return domain.ProjectedPosition{
		TotalSize:         totalSize,
		AverageEntryPrice: totalCapital.Div(totalSize),
		TotalCapital:      totalCapital,
	}, nil
}

// ReduceTotals 汇总减仓方向的挂单（多头的卖单 / 空头的买单）。
// 只返回数量与名义价值合计，减仓侧没有"平均入场价"概念。
func ReduceTotals(positionSide domain.Side, scaled []domain.ScaledOrder) (size, capital decimal.Decimal) {
	size, capital = decimal.Zero, decimal.Zero
	for _, o := range scaled {
		if o.Side.IncreasesPosition(positionSide) {
			continue
		}
		size = size.Add(o.ScaledSize)
		capital = capital.Add(o.Notional())
	}
	return size, capital
}
