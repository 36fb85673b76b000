package ipcr

// Status is the form lifecycle state. The engine only effects the
// Draft→Submitted transition and re-entry to Draft; every other value is
// assigned by the external approval workflow and round-tripped untouched.
type Status string

const (
	StatusDraft              Status = "Draft"
	StatusSubmitted          Status = "Submitted"
	StatusReturned           Status = "Returned"
	StatusSignedBySupervisor Status = "SignedBySupervisor"
	StatusEndorsed           Status = "Endorsed"
	StatusApproved           Status = "Approved"
	StatusLocked             Status = "Locked"
	StatusAccomplished       Status = "Accomplished"
	StatusEvaluated          Status = "Evaluated"
	StatusFinalized          Status = "Finalized"
)

const (
	RatingOutstanding      = "Outstanding"
	RatingVerySatisfactory = "Very Satisfactory"
	RatingSatisfactory     = "Satisfactory"
	RatingUnsatisfactory   = "Unsatisfactory"
	RatingPoor             = "Poor"
)

const (
	AuditActionUpload = "UPLOAD"
	AuditActionDelete = "DELETE"
)
