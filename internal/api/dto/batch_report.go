package dto

// BatchFailureDTO 批处理中单个实体的失败记录
type BatchFailureDTO struct {
	EntityID uint64 `json:"entity_id"`
	Reason   string `json:"reason"`
}

// BatchReportDTO 批处理结果。单个实体失败不会中断整批，
// 成功与失败在这里分别呈现。
type BatchReportDTO struct {
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failures  []*BatchFailureDTO `json:"failures"`
}

func NewBatchReport() *BatchReportDTO {
	return &BatchReportDTO{Failures: make([]*BatchFailureDTO, 0)}
}

func (r *BatchReportDTO) AddSuccess() {
	r.Total++
	r.Succeeded++
}

func (r *BatchReportDTO) AddFailure(entityID uint64, err error) {
	r.Total++
	r.Failures = append(r.Failures, &BatchFailureDTO{
		EntityID: entityID,
		Reason:   err.Error(),
	})
}
