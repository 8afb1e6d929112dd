package utils

import (
	"errors"
	"time"
)

// 日期区间规范化相关的哨兵错误，由服务层映射为带业务码的 AppError。
var (
	ErrInvalidStartDate = errors.New("daterange: invalid start date")
	ErrInvalidEndDate   = errors.New("daterange: invalid end date")
	ErrEndNotAfterStart = errors.New("daterange: end date must be after start date")
)

// dateLayouts 是查询参数接受的日期格式：纯日期或 RFC3339 时间戳。
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// NormalizeDateRange 把可选的 start/end 原始输入规范化为创建时间过滤区间 [from, to)。
// - start 缺省 → from = now 往前推一个日历月（AddDate，不是固定 30 天）。
// - end 缺省 → 逻辑上 end = now；无论 end 来自哪里，最终上界都推到该日历日的
//   23:59:59.999（UTC），使当天整体落入区间。
// - start/end 解析失败分别返回 ErrInvalidStartDate / ErrInvalidEndDate。
// - end <= start（在推到日末之前比较，与旧版行为一致）返回 ErrEndNotAfterStart。
// - 注意：end 晚于当前时间是被有意接受的，旧版中对应的拒绝逻辑被注释停用，
//   这里同样不做检查。
func NormalizeDateRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	var from time.Time
	if start == "" {
		from = now.AddDate(0, -1, 0)
	} else {
		parsed, err := parseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidStartDate
		}
		from = parsed
	}

	var logicalEnd time.Time
	if end == "" {
		logicalEnd = now
	} else {
		parsed, err := parseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidEndDate
		}
		logicalEnd = parsed
	}

	if !logicalEnd.After(from) {
		return time.Time{}, time.Time{}, ErrEndNotAfterStart
	}

	// 上界推到 end 所在日历日的末尾，区间按 created_at >= from AND created_at < to 使用。
	endUTC := logicalEnd.UTC()
	to := time.Date(endUTC.Year(), endUTC.Month(), endUTC.Day(), 23, 59, 59, 999*int(time.Millisecond), time.UTC)

	return from, to, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
