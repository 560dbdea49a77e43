package request

type CreateJobDTO struct {
	Name       string `json:"name" validate:"required,max=150"`
	ReportToID *uint  `json:"reportToId"`
}

type ChainOfCommandDTO struct {
	CandidateID uint `json:"candidateId" validate:"required"`
}
