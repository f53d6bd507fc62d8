package service

import (
	"errors"
	"time"

	"github.com/sabron12/Sabron/internal/models"
	"github.com/sabron12/Sabron/internal/repository"
)

var (
	ErrFieldsRequired = errors.New("All fields are required.")
	ErrFilesRequired  = errors.New("Missing required files.")
	ErrBlocked        = errors.New("Access denied. You are blocked.")
)

// nairobiTZ is the fixed UTC+3 offset submissions are timestamped in.
// Not timezone-aware on purpose; the stored value has no offset suffix.
var nairobiTZ = time.FixedZone("EAT", 3*60*60)

type SubmissionService struct {
	subs      *repository.SubmissionRepo
	blocklist *BlocklistService
	now       func() time.Time
}

func NewSubmissionService(subs *repository.SubmissionRepo, blocklist *BlocklistService) *SubmissionService {
	return &SubmissionService{subs: subs, blocklist: blocklist, now: time.Now}
}

// DocumentInput is the document-variant application: four text fields plus
// the stored names of the two uploaded files.
type DocumentInput struct {
	FullName         string
	Phone            string
	Email            string
	Description      string
	BirthCertificate string
	ResultSlip       string
}

// KUCCPSInput is the placement-variant application; no file upload.
type KUCCPSInput struct {
	FullName           string
	Phone              string
	Email              string
	Description        string
	IndexNumber        string
	KCSEYear           int64
	BirthCertNumber    string
	PrimaryIndexNumber string
}

// SubmitDocuments validates and persists a document-variant application.
// The blocklist check runs before the insert; by that point the uploaded
// files are already on disk, and they are deliberately left there.
func (s *SubmissionService) SubmitDocuments(in DocumentInput) (*models.Submission, error) {
	if in.FullName == "" || in.Phone == "" || in.Email == "" || in.Description == "" {
		return nil, ErrFieldsRequired
	}
	if in.BirthCertificate == "" || in.ResultSlip == "" {
		return nil, ErrFilesRequired
	}
	if s.blocklist.IsBlocked(in.Email) {
		return nil, ErrBlocked
	}

	sub := &models.Submission{
		FullName:         in.FullName,
		Phone:            in.Phone,
		Email:            in.Email,
		Description:      in.Description,
		BirthCertificate: &in.BirthCertificate,
		ResultSlip:       &in.ResultSlip,
		Timestamp:        s.timestamp(),
	}
	id, err := s.subs.Create(sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return sub, nil
}

// SubmitKUCCPS validates and persists a KUCCPS-variant application.
func (s *SubmissionService) SubmitKUCCPS(in KUCCPSInput) (*models.Submission, error) {
	if in.FullName == "" || in.Phone == "" || in.Email == "" || in.Description == "" ||
		in.IndexNumber == "" || in.KCSEYear == 0 || in.BirthCertNumber == "" || in.PrimaryIndexNumber == "" {
		return nil, ErrFieldsRequired
	}
	if s.blocklist.IsBlocked(in.Email) {
		return nil, ErrBlocked
	}

	sub := &models.Submission{
		FullName:           in.FullName,
		Phone:              in.Phone,
		Email:              in.Email,
		Description:        in.Description,
		IndexNumber:        &in.IndexNumber,
		KCSEYear:           &in.KCSEYear,
		BirthCertNumber:    &in.BirthCertNumber,
		PrimaryIndexNumber: &in.PrimaryIndexNumber,
		Timestamp:          s.timestamp(),
	}
	id, err := s.subs.Create(sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return sub, nil
}

func (s *SubmissionService) List() ([]models.Submission, error) {
	return s.subs.FindAll()
}

// Clear deletes every submission. Irreversible; calling it on an empty table
// is a no-op.
func (s *SubmissionService) Clear() error {
	return s.subs.DeleteAll()
}

func (s *SubmissionService) Count() (int, error) {
	return s.subs.Count()
}

// timestamp renders the current time at UTC+3, truncated to whole seconds.
func (s *SubmissionService) timestamp() string {
	return s.now().In(nairobiTZ).Format("2006-01-02 15:04:05")
}
