package hyperliquid

// Hyperliquid info API 的请求/响应线上结构。
// 所有数值字段都是字符串，解析时转为 decimal，避免浮点精度损失。

// infoRequest POST /info 的统一请求体
type infoRequest struct {
	Type string `json:"type"`
	User string `json:"user"`
}

// clearinghouseState type=clearinghouseState 的响应
type clearinghouseState struct {
	AssetPositions []assetPosition `json:"assetPositions"`
}

type assetPosition struct {
	Position rawPosition `json:"position"`
}

// rawPosition 单资产仓位。szi 带符号：正=多头，负=空头
type rawPosition struct {
	Coin    string `json:"coin"`
	Szi     string `json:"szi"`
	EntryPx string `json:"entryPx"`
}

// rawOrder type=openOrders 响应中的单个挂单。side: B=买，A=卖
type rawOrder struct {
	Coin      string `json:"coin"`
	Side      string `json:"side"`
	LimitPx   string `json:"limitPx"`
	Sz        string `json:"sz"`
	Timestamp int64  `json:"timestamp"` // 毫秒
}

// rawFill type=userFills 响应中的单笔成交
type rawFill struct {
	Coin string `json:"coin"`
	Px   string `json:"px"`
	Sz   string `json:"sz"`
	Time int64  `json:"time"` // 毫秒
}
