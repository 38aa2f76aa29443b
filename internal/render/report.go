package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

const lineWidth = 70

// 终端样式（基础 ANSI 色，保证在窄色域终端下也能显示）
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	buyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // 绿
	sellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // 红
	rowStyleA   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // 黄
	rowStyleB   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // 青
	strongStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// Report 一次运行的完整报告。
// Orders 需要在传入前按价格降序排好（稳定排序，保持抓取顺序）。
type Report struct {
	Coin         string
	LastActivity string

	Position    domain.Position // 账户原始仓位
	DesiredSize decimal.Decimal // 用户目标数量
	Ratio       decimal.Decimal // 缩放比例

	Orders []domain.ScaledOrder

	Projection    *domain.ProjectedPosition // 加仓侧全部成交后的预测
	ReduceSize    decimal.Decimal           // 减仓侧挂单数量合计
	ReduceCapital decimal.Decimal           // 减仓侧名义价值合计
}

// Banner 打印工具头部与追踪地址。
func Banner(w io.Writer, address string) {
	line := strings.Repeat("━", lineWidth)
	fmt.Fprintln(w, strongStyle.Render(line))
	fmt.Fprintln(w, strongStyle.Render("🚀 HYPERLIQUID 订单缩放工具"))
	fmt.Fprintln(w, strongStyle.Render(line))
	fmt.Fprintf(w, "\n追踪地址: %s\n", address)
}

// Render 输出仓位摘要、缩放订单表与仓位预测。
func (r *Report) Render(w io.Writer) {
	r.renderSummaryLines(w)
	r.renderOrderTable(w)
	r.renderProjection(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, strongStyle.Render(strings.Repeat("━", lineWidth)))
	fmt.Fprintln(w, "完成!")
}

func (r *Report) renderSummaryLines(w io.Writer) {
	if r.LastActivity != "" {
		fmt.Fprintf(w, "最近账户活动: %s\n", r.LastActivity)
	}
	fmt.Fprintf(w, "\n账户: %s %s %s @ %s\n",
		r.Position.Side.Display(),
		formatSize(r.Position.Size),
		r.Coin,
		formatMoney(r.Position.EntryPrice))
	fmt.Fprintf(w, "你:   %s %s %s (缩放比例: %s)\n",
		r.Position.Side.Display(),
		formatSize(r.DesiredSize),
		r.Coin,
		r.Ratio.StringFixed(4))
	fmt.Fprintf(w, "挂单数量: %d\n", len(r.Orders))
}

func (r *Report) renderOrderTable(w io.Writer) {
	sep := dimStyle.Render(strings.Repeat("─", lineWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%-6s %12s %12s %15s %12s",
		"Side", "Price", "Scaled Size", "Original Size", "Notional")))
	fmt.Fprintln(w, sep)

	for i, o := range r.Orders {
		sideStyle := buyStyle
		if o.Side == domain.OrderSideSell {
			sideStyle = sellStyle
		}
		rowStyle := rowStyleA
		if i%2 == 1 {
			rowStyle = rowStyleB
		}
		row := fmt.Sprintf(" %12s %12s %15s %12s",
			formatMoney(o.Price),
			// 缩放数量向下截断到 0.001，跟手工下单的最小步长对齐
			o.ScaledSize.RoundDown(3).StringFixed(3),
			o.OriginalSize.StringFixed(5),
			formatMoney(o.Notional()))
		fmt.Fprintln(w, sideStyle.Render(fmt.Sprintf("%-6s", o.Side.Display()))+rowStyle.Render(row))
	}
}

func (r *Report) renderProjection(w io.Writer) {
	line := strings.Repeat("═", lineWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strongStyle.Render(line))
	fmt.Fprintln(w, strongStyle.Render(
		fmt.Sprintf("%s 预测（加仓侧挂单全部成交后）", r.Position.Side.Display())))
	fmt.Fprintln(w, strongStyle.Render(line))

	if r.Projection == nil {
		fmt.Fprintln(w, "没有加仓方向的挂单，预测不适用。")
	} else {
		p := r.Projection
		fmt.Fprintf(w, "当前仓位（目标）:   %12s %s\n", formatSize(r.DesiredSize), r.Coin)
		fmt.Fprintf(w, "加仓挂单合计:       %12s %s\n", formatSize(p.TotalSize.Sub(r.DesiredSize)), r.Coin)
		fmt.Fprintf(w, "成交后总仓位:       %12s %s\n", formatSize(p.TotalSize), r.Coin)
		fmt.Fprintf(w, "平均入场价:         %14s\n", formatMoney(p.AverageEntryPrice))
		fmt.Fprintf(w, "占用资金:           %14s\n", formatMoney(p.TotalCapital))
	}

	// 减仓侧只给合计，不存在"平均入场价"
	if r.ReduceSize.Sign() > 0 {
		fmt.Fprintf(w, "\n减仓侧挂单合计:     %12s %s（名义价值 %s）\n",
			formatSize(r.ReduceSize), r.Coin, formatMoney(r.ReduceCapital))
	}
}

// formatMoney 美元格式：2 位小数 + 千分位，例如 $95,000.00
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := addThousands(parts[0])
	out := "$" + whole + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// formatSize 数量格式：固定 5 位小数
func formatSize(d decimal.Decimal) string {
	return d.StringFixed(5)
}

func addThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
