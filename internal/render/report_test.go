package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "95000", want: "$95,000.00"},
		{in: "1234567.891", want: "$1,234,567.89"},
		{in: "0.5", want: "$0.50"},
		{in: "999", want: "$999.00"},
		{in: "-1500.5", want: "-$1,500.50"},
	}
	for _, tt := range tests {
		if got := formatMoney(dec(t, tt.in)); got != tt.want {
			t.Fatalf("formatMoney(%s) got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestReportRender(t *testing.T) {
	proj := &domain.ProjectedPosition{
		TotalSize:         dec(t, "0.10"),
		AverageEntryPrice: dec(t, "94200"),
		TotalCapital:      dec(t, "9420"),
	}
	r := &Report{
		Coin:         "BTC",
		LastActivity: "10 minutes ago",
		Position: domain.Position{
			Side:       domain.SideLong,
			Size:       dec(t, "0.0176"),
			EntryPrice: dec(t, "95000"),
		},
		DesiredSize: dec(t, "0.05"),
		Ratio:       dec(t, "2.8409090909"),
		Orders: []domain.ScaledOrder{
			{Side: domain.OrderSideSell, Price: dec(t, "101000"), OriginalSize: dec(t, "0.01"), ScaledSize: dec(t, "0.0284")},
			{Side: domain.OrderSideBuy, Price: dec(t, "94000"), OriginalSize: dec(t, "0.04044"), ScaledSize: dec(t, "0.11488")},
		},
		Projection:    proj,
		ReduceSize:    dec(t, "0.0284"),
		ReduceCapital: dec(t, "2868.4"),
	}

	var out bytes.Buffer
	r.Render(&out)
	got := out.String()

	// 抽查关键内容，不逐字符断言样式转义
	for _, want := range []string{
		"LONG",
		"0.05000",
		"2.8409",
		"$95,000.00",
		"$94,200.00",
		"BUY",
		"SELL",
		"0.114", // 缩放数量向下截断到 3 位
		"0.04044",
		"10 minutes ago",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report output missing %q:\n%s", want, got)
		}
	}
}

func TestReportRender_NoProjection(t *testing.T) {
	r := &Report{
		Coin: "BTC",
		Position: domain.Position{
			Side:       domain.SideShort,
			Size:       dec(t, "1"),
			EntryPrice: dec(t, "100000"),
		},
		DesiredSize: dec(t, "2"),
		Ratio:       dec(t, "2"),
	}

	var out bytes.Buffer
	r.Render(&out)
	if !strings.Contains(out.String(), "预测不适用") {
		t.Fatalf("expected no-projection notice, got:\n%s", out.String())
	}
}
