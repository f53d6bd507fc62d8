package models

// Submission is one applicant application. The document variant carries the
// two stored upload names; the KUCCPS variant carries the placement fields.
// Optional columns are pointers so rows created before a column existed
// render as JSON null, matching what the admin dashboard expects.
type Submission struct {
	ID                 int64   `json:"id"`
	FullName           string  `json:"fullName"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Description        string  `json:"description"`
	BirthCertificate   *string `json:"birthCertificate"`
	ResultSlip         *string `json:"resultSlip"`
	IndexNumber        *string `json:"indexNumber"`
	KCSEYear           *int64  `json:"kcseYear"`
	BirthCertNumber    *string `json:"birthCertNumber"`
	PrimaryIndexNumber *string `json:"primaryIndexNumber"`
	Timestamp          string  `json:"timestamp"`
}
