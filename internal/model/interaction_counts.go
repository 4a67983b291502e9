package model

// InteractionCounts 单条内容的原始互动计数快照。
// 每轮批处理从事件表全量统计得到，不做增量修改。
type InteractionCounts struct {
	ContentID     uint64 `json:"content_id"`
	Likes         int64  `json:"likes"`
	Comments      int64  `json:"comments"`
	Shares        int64  `json:"shares"`
	Saves         int64  `json:"saves"`
	ProfileVisits int64  `json:"profile_visits"`
	WebsiteClicks int64  `json:"website_clicks"`
}

// HasNegative 检查是否存在负数计数（脏数据需在边界拒绝）
func (c *InteractionCounts) HasNegative() bool {
	return c.Likes < 0 || c.Comments < 0 || c.Shares < 0 ||
		c.Saves < 0 || c.ProfileVisits < 0 || c.WebsiteClicks < 0
}

// IsEmpty 判断该内容是否完全没有互动
func (c *InteractionCounts) IsEmpty() bool {
	return c.Likes == 0 && c.Comments == 0 && c.Shares == 0 &&
		c.Saves == 0 && c.ProfileVisits == 0 && c.WebsiteClicks == 0
}
