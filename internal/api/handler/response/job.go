package response

type JobResponseDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	ReportToID *uint   `json:"reportToId,omitempty"`
	ReportTo   *string `json:"reportTo,omitempty"`
}
