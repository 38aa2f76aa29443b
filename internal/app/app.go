package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/betbot/hyperscale/internal/domain"
	"github.com/betbot/hyperscale/internal/ports"
	"github.com/betbot/hyperscale/internal/render"
	"github.com/betbot/hyperscale/internal/scaling"
	"github.com/betbot/hyperscale/internal/services"
	"github.com/betbot/hyperscale/pkg/config"
	"github.com/betbot/hyperscale/pkg/logger"
)

// ErrNoActivePosition 账户在该资产上没有活跃仓位（不存在或数量为 0）
var ErrNoActivePosition = errors.New("account has no active position")

// Deps 运行依赖（全部可注入，测试时用 stub 替换）
type Deps struct {
	Fetcher  ports.SnapshotFetcher
	Activity ports.ActivityFetcher
	Input    ports.InputSource
	Out      io.Writer
	Now      func() time.Time
}

// Run 执行一次完整的缩放流程：
// 输入 → 抓取快照 → 方向校验 → 计算比例 → 缩放排序 → 仓位预测 → 输出报告。
//
// 单线程线性执行，任何错误都终止本次运行（不会输出半截报告）。
func Run(ctx context.Context, cfg *config.Config, d Deps) error {
	render.Banner(d.Out, cfg.Address)

	declaredSide, err := d.Input.ReadSide()
	if err != nil {
		return errors.Wrap(err, "读取仓位方向失败")
	}
	desiredSize, err := d.Input.ReadSize()
	if err != nil {
		return errors.Wrap(err, "读取仓位数量失败")
	}
	fmt.Fprintf(d.Out, "\n你的选择: %s 仓位，数量 %s %s\n",
		declaredSide.Display(), desiredSize.String(), cfg.Coin)

	fmt.Fprintln(d.Out, "\n正在从 Hyperliquid 获取账户数据...")
	position, orders, err := d.Fetcher.FetchSnapshot(ctx, cfg.Address, cfg.Coin)
	if err != nil {
		return errors.Wrap(err, "获取账户数据失败")
	}
	logger.WithFields(map[string]interface{}{
		"address": cfg.Address,
		"coin":    cfg.Coin,
		"orders":  len(orders),
	}).Debugf("账户快照已获取")

	// 最近成交查询失败不影响主流程，只是活跃时间显示 Unknown
	lastFill, err := d.Activity.FetchLastFill(ctx, cfg.Address, cfg.Coin)
	if err != nil {
		logger.Warnf("获取最近成交失败: %v", err)
		lastFill = time.Time{}
	}
	lastActivity := services.LastActivity(d.Now(), orders, lastFill)

	if position == nil {
		return errors.Wrapf(ErrNoActivePosition, "账户没有活跃的 %s 仓位", cfg.Coin)
	}

	// 方向必须先校验：方向不一致时任何缩放都是误导
	if err := scaling.ValidateSide(declaredSide, position.Side); err != nil {
		return err
	}

	if len(orders) == 0 {
		// 没有挂单是合法的空结果，不是错误
		fmt.Fprintf(d.Out, "\n没有待处理的 %s 挂单。\n", cfg.Coin)
		return nil
	}

	ratio, err := scaling.ComputeRatio(position.Size, desiredSize)
	if err != nil {
		return err
	}

	scaled := scaling.ScaleOrders(orders, ratio)
	scaling.SortByPriceDescending(scaled)

	// 加仓侧一张挂单都没有时，预测没有意义（报告中会提示）
	var projection *domain.ProjectedPosition
	if hasIncreaseSide(position.Side, scaled) {
		p, err := scaling.Project(*position, desiredSize, scaled)
		if err != nil {
			return err
		}
		projection = &p
	}
	reduceSize, reduceCapital := scaling.ReduceTotals(position.Side, scaled)

	report := &render.Report{
		Coin:          cfg.Coin,
		LastActivity:  lastActivity,
		Position:      *position,
		DesiredSize:   desiredSize,
		Ratio:         ratio,
		Orders:        scaled,
		Projection:    projection,
		ReduceSize:    reduceSize,
		ReduceCapital: reduceCapital,
	}
	report.Render(d.Out)
	return nil
}

func hasIncreaseSide(side domain.Side, scaled []domain.ScaledOrder) bool {
	for _, o := range scaled {
		if o.Side.IncreasesPosition(side) {
			return true
		}
	}
	return false
}
