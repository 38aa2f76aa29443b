package scaling

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

// 领域错误（调用方用 errors.Is 判断）
var (
	// ErrZeroPositionSize 账户仓位数量为 0（或非法的负值），无法计算缩放比例
	ErrZeroPositionSize = errors.New("account position size is zero, cannot compute scaling ratio")
	// ErrSideMismatch 用户声明的方向与账户实际仓位方向不一致
	ErrSideMismatch = errors.New("declared position side does not match account position side")
)

// ComputeRatio 计算缩放比例 = 目标数量 / 账户实际数量。
// 全精度计算，不做任何提前舍入；actualSize <= 0 时返回 ErrZeroPositionSize。
func ComputeRatio(actualSize, desiredSize decimal.Decimal) (decimal.Decimal, error) {
	if actualSize.Sign() <= 0 {
		return decimal.Zero, errors.Wrapf(ErrZeroPositionSize, "actual size %s", actualSize)
	}
	return desiredSize.Div(actualSize), nil
}

// ValidateSide 校验用户声明的方向与账户实际方向一致。
// 必须在缩放之前由调用方执行；方向不一致时任何缩放都没有意义。
func ValidateSide(declared, actual domain.Side) error {
	if declared != actual {
		return errors.Wrapf(ErrSideMismatch, "declared %s, account %s", declared.Display(), actual.Display())
	}
	return nil
}

// ScaleOrders 按比例缩放所有订单的数量。
//
// 纯函数：保持输入顺序，价格与方向原样拷贝，只有数量乘以 ratio。
// 空输入返回空切片（不是错误）。
func ScaleOrders(orders []domain.Order, ratio decimal.Decimal) []domain.ScaledOrder {
	scaled := make([]domain.ScaledOrder, 0, len(orders))
	for _, o := range orders {
		scaled = append(scaled, domain.ScaledOrder{
			Side:         o.Side,
			Price:        o.Price,
			OriginalSize: o.Size,
			ScaledSize:   o.Size.Mul(ratio),
		})
	}
	return scaled
}

// SortByPriceDescending 按价格从高到低原地排序。
//
// 使用稳定排序：交易所返回的订单顺序是任意的，等价订单必须保持抓取时的相对顺序。
func SortByPriceDescending(orders []domain.ScaledOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Price.GreaterThan(orders[j].Price)
	})
}
