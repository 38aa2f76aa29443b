package hyperliquid

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/betbot/hyperscale/internal/domain"
)

// DefaultBaseURL Hyperliquid 公共查询 API
const DefaultBaseURL = "https://api.hyperliquid.xyz"

// Client Hyperliquid info API 只读客户端。
//
// 只做公开查询（clearinghouseState / openOrders / userFills），
// 不需要签名与认证。
type Client struct {
	http *resty.Client
}

// NewClient 创建客户端。baseURL 为空时使用官方地址。
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// resty 会自动从环境变量读取代理配置（HTTP_PROXY, HTTPS_PROXY 等）
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			// 如果遇到 429 限流，使用 Retry-After 头
			if resp.StatusCode() == 429 {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
						return seconds, nil
					}
				}
				return 10 * time.Second, nil
			}
			return 0, nil
		})

	return &Client{http: http}
}

// info 发送一次 POST /info 查询并把响应解析到 out（指针）。
func (c *Client) info(ctx context.Context, queryType, user string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(infoRequest{Type: queryType, User: user}).
		SetResult(out).
		Post("/info")
	if err != nil {
		return errors.Wrapf(err, "hyperliquid %s query failed", queryType)
	}
	if resp.IsError() {
		return errors.Errorf("hyperliquid %s query failed: status %d: %s",
			queryType, resp.StatusCode(), resp.String())
	}
	return nil
}

// FetchSnapshot 获取账户在指定资产上的仓位与挂单快照。
// 账户没有该资产的活跃仓位时返回 nil 仓位（不是错误）。
func (c *Client) FetchSnapshot(ctx context.Context, address, coin string) (*domain.Position, []domain.Order, error) {
	var state clearinghouseState
	if err := c.info(ctx, "clearinghouseState", address, &state); err != nil {
		return nil, nil, err
	}

	var rawOrders []rawOrder
	if err := c.info(ctx, "openOrders", address, &rawOrders); err != nil {
		return nil, nil, err
	}

	position, err := parsePosition(state, coin)
	if err != nil {
		return nil, nil, err
	}
	orders, err := parseOrders(rawOrders, coin)
	if err != nil {
		return nil, nil, err
	}
	return position, orders, nil
}

// FetchLastFill 返回账户在指定资产上最近一笔成交的时间。
// 没有成交记录时返回零值时间。
func (c *Client) FetchLastFill(ctx context.Context, address, coin string) (time.Time, error) {
	var fills []rawFill
	if err := c.info(ctx, "userFills", address, &fills); err != nil {
		return time.Time{}, err
	}

	var latest int64
	for _, f := range fills {
		if f.Coin != coin {
			continue
		}
		if f.Time > latest {
			latest = f.Time
		}
	}
	if latest == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(latest), nil
}
