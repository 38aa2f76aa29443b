package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/hyperscale/internal/domain"
)

// ErrInputClosed 标准输入在得到有效输入之前被关闭
var ErrInputClosed = errors.New("input closed before a valid value was entered")

// Prompt 交互式输入源（实现 ports.InputSource）。
//
// 非法输入会重新提示，行为与工具的单次运行模型一致：
// 输入错误不会让程序带着坏数据继续往下走。
type Prompt struct {
	in   *bufio.Scanner
	out  io.Writer
	coin string
}

// NewPrompt 创建输入源。in/out 可注入，方便测试。
func NewPrompt(in io.Reader, out io.Writer, coin string) *Prompt {
	return &Prompt{
		in:   bufio.NewScanner(in),
		out:  out,
		coin: coin,
	}
}

// ReadSide 通过菜单选择仓位方向（0=Long，1=Short），无效输入重新提示。
func (p *Prompt) ReadSide() (domain.Side, error) {
	fmt.Fprintf(p.out, "\n选择你的 %s 仓位方向:\n", p.coin)
	fmt.Fprintln(p.out, "  0) Long")
	fmt.Fprintln(p.out, "  1) Short")

	for {
		fmt.Fprint(p.out, "\n请输入选项 (0/1): ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		switch line {
		case "0":
			return domain.SideLong, nil
		case "1":
			return domain.SideShort, nil
		default:
			fmt.Fprintln(p.out, "无效选项，请输入 0（Long）或 1（Short）。")
		}
	}
}

// ReadSize 读取正的小数仓位数量，无效输入重新提示。
func (p *Prompt) ReadSize() (decimal.Decimal, error) {
	for {
		fmt.Fprintf(p.out, "\n请输入你的 %s 仓位数量: ", p.coin)
		line, err := p.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		size, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入一个数字。")
			continue
		}
		if size.Sign() <= 0 {
			fmt.Fprintln(p.out, "仓位数量必须为正数。")
			continue
		}
		return size, nil
	}
}

func (p *Prompt) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}
