package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/betbot/hyperscale/internal/domain"
)

func TestReadSide(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Side
	}{
		{name: "long", input: "0\n", want: domain.SideLong},
		{name: "short", input: "1\n", want: domain.SideShort},
		{name: "whitespace tolerated", input: "  1  \n", want: domain.SideShort},
		// 无效选项应重新提示，直到输入合法
		{name: "reprompt on invalid", input: "2\nx\n0\n", want: domain.SideLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tt.input), &out, "BTC")
			side, err := p.ReadSide()
			if err != nil {
				t.Fatalf("ReadSide error: %v", err)
			}
			if side != tt.want {
				t.Fatalf("side got=%s want=%s", side, tt.want)
			}
		})
	}
}

func TestReadSide_InputClosed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("9\n"), &out, "BTC")
	_, err := p.ReadSide()
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestReadSize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "0.05\n", want: "0.05"},
		{name: "integer", input: "2\n", want: "2"},
		// 非数字与非正数都要重新提示
		{name: "reprompt on garbage", input: "abc\n0.05\n", want: "0.05"},
		{name: "reprompt on zero", input: "0\n-1\n0.0176\n", want: "0.0176"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tt.input), &out, "BTC")
			size, err := p.ReadSize()
			if err != nil {
				t.Fatalf("ReadSize error: %v", err)
			}
			if size.String() != tt.want {
				t.Fatalf("size got=%s want=%s", size, tt.want)
			}
		})
	}
}

func TestReadSize_InputClosed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader(""), &out, "BTC")
	_, err := p.ReadSize()
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
