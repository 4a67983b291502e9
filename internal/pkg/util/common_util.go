package util

import (
	"strconv"
	"time"
)

// GetMidnight 取给定时间当天零点（本地时区）
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StrSliceToUInt64Slice 将字符串切片批量转换为 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	out := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
