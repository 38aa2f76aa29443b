package domain

import (
	"github.com/shopspring/decimal"
)

// Side 仓位方向
type Side string

const (
	SideLong  Side = "long"  // 多头
	SideShort Side = "short" // 空头
)

// Display 返回用于展示的大写方向（LONG/SHORT）
func (s Side) Display() string {
	if s == SideLong {
		return "LONG"
	}
	return "SHORT"
}

// SideFromSignedSize 根据 Hyperliquid 的带符号仓位数量（szi）推断方向。
// 正数为多头，负数为空头；数量为 0 时没有方向，返回 ok=false。
func SideFromSignedSize(szi decimal.Decimal) (Side, bool) {
	switch szi.Sign() {
	case 1:
		return SideLong, true
	case -1:
		return SideShort, true
	default:
		return "", false
	}
}

// Position 仓位快照（单资产）
//
// 从 clearinghouseState 解析得到，一次运行内不可变。
// Size 为绝对值，方向由 Side 表达。
type Position struct {
	Side       Side            // 仓位方向
	Size       decimal.Decimal // 仓位数量（绝对值，> 0）
	EntryPrice decimal.Decimal // 开仓均价
}
