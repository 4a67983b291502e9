package model

import (
	"sort"

	"github.com/goccy/go-json"
)

// FrequencyEntry 频次映射中的一项
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FrequencyMap 保序频次计数器。
// 条目按首次出现顺序排列，同频次的排序结果因此是确定的，
// 不依赖 Go map 的随机遍历顺序。
type FrequencyMap struct {
	entries []FrequencyEntry
	index   map[string]int
}

func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{
		entries: make([]FrequencyEntry, 0),
		index:   make(map[string]int),
	}
}

// Add 计数 +1
func (f *FrequencyMap) Add(key string) {
	f.AddN(key, 1)
}

// AddN 计数 +n，首次出现时记录插入位置
func (f *FrequencyMap) AddN(key string, n int) {
	if pos, ok := f.index[key]; ok {
		f.entries[pos].Count += n
		return
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, FrequencyEntry{Key: key, Count: n})
}

// Count 查询指定 key 的计数，不存在返回 0
func (f *FrequencyMap) Count(key string) int {
	if pos, ok := f.index[key]; ok {
		return f.entries[pos].Count
	}
	return 0
}

func (f *FrequencyMap) Len() int {
	return len(f.entries)
}

// Entries 按插入顺序返回所有条目的拷贝
func (f *FrequencyMap) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// TopK 按计数降序返回前 k 项。
// 使用稳定排序，同计数项保持首次出现顺序。
func (f *FrequencyMap) TopK(k int) []FrequencyEntry {
	out := f.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if k >= 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// MarshalJSON 序列化为条目数组，保留插入顺序
func (f *FrequencyMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.entries)
}

func (f *FrequencyMap) UnmarshalJSON(data []byte) error {
	var entries []FrequencyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	f.entries = entries
	f.index = make(map[string]int, len(entries))
	for i, e := range entries {
		f.index[e.Key] = i
	}
	return nil
}
