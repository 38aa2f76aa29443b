package services

import (
	"fmt"
	"time"

	"github.com/betbot/hyperscale/internal/domain"
)

// 最近活跃时间：综合挂单时间与最近成交时间，给报告一个
// "这个账户还活着吗"的参考。

// RelativeTime 把时间差转成人类可读的相对描述。
func RelativeTime(now, then time.Time) string {
	seconds := now.Sub(then).Seconds()

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return plural(int(seconds/60), "minute")
	case seconds < 86400:
		return plural(int(seconds/3600), "hour")
	case seconds < 604800:
		return plural(int(seconds/86400), "day")
	case seconds < 2592000:
		return plural(int(seconds/604800), "week")
	default:
		return plural(int(seconds/2592000), "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// LastActivity 取挂单与最近成交中最新的时间戳，返回相对时间描述。
// 两边都没有时间信息时返回 "Unknown"。
func LastActivity(now time.Time, orders []domain.Order, lastFill time.Time) string {
	latest := lastFill
	for _, o := range orders {
		if o.Timestamp.After(latest) {
			latest = o.Timestamp
		}
	}
	if latest.IsZero() {
		return "Unknown"
	}
	return RelativeTime(now, latest)
}
