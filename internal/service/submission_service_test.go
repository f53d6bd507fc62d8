package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabron12/Sabron/internal/db"
	"github.com/sabron12/Sabron/internal/repository"
)

func newSubmissionService(t *testing.T) (*SubmissionService, *BlocklistService) {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	blockSvc := NewBlocklistService(repository.NewBlocklistRepo(d))
	require.NoError(t, blockSvc.Load())
	return NewSubmissionService(repository.NewSubmissionRepo(d), blockSvc), blockSvc
}

func validDocInput() DocumentInput {
	return DocumentInput{
		FullName:         "Jane Doe",
		Phone:            "0700000000",
		Email:            "jane@x.com",
		Description:      "test",
		BirthCertificate: "uuid_bc.pdf",
		ResultSlip:       "uuid_rs.pdf",
	}
}

func validKUCCPSInput() KUCCPSInput {
	return KUCCPSInput{
		FullName:           "John Doe",
		Phone:              "0711111111",
		Email:              "john@x.com",
		Description:        "kuccps",
		IndexNumber:        "12345678901",
		KCSEYear:           2023,
		BirthCertNumber:    "987654",
		PrimaryIndexNumber: "1122334455",
	}
}

func TestSubmitDocuments_MissingFieldsPersistNothing(t *testing.T) {
	svc, _ := newSubmissionService(t)

	cases := []func(*DocumentInput){
		func(in *DocumentInput) { in.FullName = "" },
		func(in *DocumentInput) { in.Phone = "" },
		func(in *DocumentInput) { in.Email = "" },
		func(in *DocumentInput) { in.Description = "" },
	}
	for _, mutate := range cases {
		in := validDocInput()
		mutate(&in)
		_, err := svc.SubmitDocuments(in)
		assert.ErrorIs(t, err, ErrFieldsRequired)
	}

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmitDocuments_MissingFiles(t *testing.T) {
	svc, _ := newSubmissionService(t)

	in := validDocInput()
	in.ResultSlip = ""
	_, err := svc.SubmitDocuments(in)
	assert.ErrorIs(t, err, ErrFilesRequired)
}

func TestSubmitDocuments_BlockedEmailRejected(t *testing.T) {
	svc, blockSvc := newSubmissionService(t)
	require.NoError(t, blockSvc.Block("jane@x.com"))

	_, err := svc.SubmitDocuments(validDocInput())
	assert.ErrorIs(t, err, ErrBlocked)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmitDocuments_TimestampIsUTCPlus3(t *testing.T) {
	svc, _ := newSubmissionService(t)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 21, 30, 45, 999e6, time.UTC)
	}

	sub, err := svc.SubmitDocuments(validDocInput())
	require.NoError(t, err)

	// 21:30:45.999 UTC is 00:30:45 the next day at +03:00, whole seconds.
	assert.Equal(t, "2026-08-29 00:30:45", sub.Timestamp)
}

func TestSubmitKUCCPS_Success(t *testing.T) {
	svc, _ := newSubmissionService(t)

	sub, err := svc.SubmitKUCCPS(validKUCCPSInput())
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	require.NotNil(t, sub.KCSEYear)
	assert.Equal(t, int64(2023), *sub.KCSEYear)
	assert.Nil(t, sub.BirthCertificate)

	subs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "john@x.com", subs[0].Email)
}

func TestSubmitKUCCPS_MissingFields(t *testing.T) {
	svc, _ := newSubmissionService(t)

	in := validKUCCPSInput()
	in.PrimaryIndexNumber = ""
	_, err := svc.SubmitKUCCPS(in)
	assert.ErrorIs(t, err, ErrFieldsRequired)

	in = validKUCCPSInput()
	in.KCSEYear = 0
	_, err = svc.SubmitKUCCPS(in)
	assert.ErrorIs(t, err, ErrFieldsRequired)
}

func TestList_NewestFirst(t *testing.T) {
	svc, _ := newSubmissionService(t)
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * time.Second)
		svc.now = func() time.Time { return tick }
		in := validKUCCPSInput()
		_, err := svc.SubmitKUCCPS(in)
		require.NoError(t, err)
	}

	subs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.True(t, subs[0].Timestamp > subs[1].Timestamp)
	assert.True(t, subs[1].Timestamp > subs[2].Timestamp)
}

func TestClear_IsIdempotent(t *testing.T) {
	svc, _ := newSubmissionService(t)
	_, err := svc.SubmitKUCCPS(validKUCCPSInput())
	require.NoError(t, err)

	require.NoError(t, svc.Clear())
	require.NoError(t, svc.Clear())

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
