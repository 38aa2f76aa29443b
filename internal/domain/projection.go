package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectedPosition 假设所有加仓方向的挂单全部成交后的仓位预测。
//
// AverageEntryPrice 是以数量加权的平均入场价：
//   total_capital / total_size
// 其中 total_capital 同时计入当前仓位（按目标数量）与所有加仓挂单。
type ProjectedPosition struct {
	TotalSize         decimal.Decimal // 成交后的总仓位数量
	AverageEntryPrice decimal.Decimal // 加权平均入场价
	TotalCapital      decimal.Decimal // 占用的总资金（名义价值合计）
}
