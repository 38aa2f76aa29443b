package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide 订单方向（跟随 Hyperliquid 线上表示：B=买，A=卖）
type OrderSide string

const (
	OrderSideBuy  OrderSide = "B"
	OrderSideSell OrderSide = "A"
)

// Display 返回用于展示的方向（BUY/SELL）
func (s OrderSide) Display() string {
	if s == OrderSideBuy {
		return "BUY"
	}
	return "SELL"
}

// IncreasesPosition 判断该订单方向成交后是否会增加给定方向的仓位。
// 多头由买单加仓，空头由卖单加仓。
func (s OrderSide) IncreasesPosition(positionSide Side) bool {
	if positionSide == SideLong {
		return s == OrderSideBuy
	}
	return s == OrderSideSell
}

// Order 挂单快照（未成交的限价单）
//
// 从 openOrders 解析得到，一次运行内不可变。
type Order struct {
	Side      OrderSide       // 订单方向
	Price     decimal.Decimal // 限价
	Size      decimal.Decimal // 挂单数量（绝对值）
	Timestamp time.Time       // 下单时间（用于最近活跃时间展示）
}

// ScaledOrder 按比例缩放后的订单。
// 价格与方向保持不变，只有数量（以及由此派生的名义价值）发生变化。
type ScaledOrder struct {
	Side         OrderSide
	Price        decimal.Decimal
	OriginalSize decimal.Decimal // 原始挂单数量
	ScaledSize   decimal.Decimal // 缩放后的数量（全精度，展示时才截断）
}

// Notional 名义价值 = 限价 × 缩放后数量
func (o ScaledOrder) Notional() decimal.Decimal {
	return o.Price.Mul(o.ScaledSize)
}
