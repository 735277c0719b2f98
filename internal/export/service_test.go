package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

func strptr(s string) *string { return &s }

type fakeDocuments struct {
	docs map[uuid.UUID]*entity.Document
}

func (f *fakeDocuments) Create(context.Context, string) (*entity.Document, error) { return nil, nil }
func (f *fakeDocuments) Get(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}
func (f *fakeDocuments) MarkProcessing(context.Context, uuid.UUID) error { return nil }
func (f *fakeDocuments) MarkCompleted(context.Context, uuid.UUID, constants.DocumentType, float64) error {
	return nil
}
func (f *fakeDocuments) MarkFailed(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeDocuments) ListHistory(context.Context) ([]*entity.DocumentHistory, error) {
	return nil, nil
}

type fakeExtractions struct {
	rows []*entity.Extraction
}

func (f *fakeExtractions) InsertBatch(context.Context, uuid.UUID, []entity.Extraction) ([]*entity.Extraction, error) {
	return nil, nil
}
func (f *fakeExtractions) ListByDocument(context.Context, uuid.UUID) ([]*entity.Extraction, error) {
	return f.rows, nil
}
func (f *fakeExtractions) ListCurrent(context.Context, uuid.UUID) ([]*entity.Extraction, error) {
	return f.rows, nil
}
func (f *fakeExtractions) Correct(context.Context, uuid.UUID, string) (*entity.Correction, error) {
	return nil, nil
}
func (f *fakeExtractions) ListCorrections(context.Context, uuid.UUID) ([]*entity.Correction, error) {
	return nil, nil
}

type fakeIssues struct {
	issues []*entity.ValidationIssue
}

func (f *fakeIssues) Replace(context.Context, uuid.UUID, []entity.ValidationIssue) ([]*entity.ValidationIssue, error) {
	return nil, nil
}
func (f *fakeIssues) ListByDocument(context.Context, uuid.UUID) ([]*entity.ValidationIssue, error) {
	return f.issues, nil
}
func (f *fakeIssues) Acknowledge(context.Context, uuid.UUID) (*entity.ValidationIssue, error) {
	return nil, nil
}

func newTestService(docID uuid.UUID) *Service {
	docs := &fakeDocuments{docs: map[uuid.UUID]*entity.Document{
		docID: {ID: docID, Filename: "receipt.txt", Status: constants.DocStatusCompleted},
	}}
	extractions := &fakeExtractions{rows: []*entity.Extraction{
		{FieldName: "merchant_name", FieldValue: strptr("BLUE DOOR CAFE"), Confidence: 0.8},
		{FieldName: "total", FieldValue: strptr("11.84"), Confidence: 0.9},
		{FieldName: "tip", FieldValue: nil, Confidence: 0},
	}}
	issues := &fakeIssues{issues: []*entity.ValidationIssue{
		{IssueType: constants.IssueMathError, Severity: constants.SeverityError, Description: "Total ($15.00) does not match subtotal + tax ($12.00)"},
	}}
	return NewService(docs, extractions, issues, nil)
}

func TestExportDocumentCSV(t *testing.T) {
	docID := uuid.New()
	svc := newTestService(docID)

	data, err := svc.ExportDocumentCSV(context.Background(), docID)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Field Name", "Field Value", "Confidence Score"}, records[0])
	assert.Equal(t, []string{"merchant_name", "BLUE DOOR CAFE", "0.80"}, records[1])
	assert.Equal(t, []string{"total", "11.84", "0.90"}, records[2])
	assert.Equal(t, []string{"tip", "", "0.00"}, records[3])
}

func TestExportDocumentCSVUnknownDocument(t *testing.T) {
	svc := newTestService(uuid.New())

	_, err := svc.ExportDocumentCSV(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExportDocumentXLSX(t *testing.T) {
	docID := uuid.New()
	svc := newTestService(docID)

	data, err := svc.ExportDocumentXLSX(context.Background(), docID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Extractions", "Validation Issues"}, f.GetSheetList())

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Field Name", "Field Value", "Confidence Score"}, rows[0])
	assert.Equal(t, "merchant_name", rows[1][0])
	assert.Equal(t, "BLUE DOOR CAFE", rows[1][1])

	issueRows, err := f.GetRows("Validation Issues")
	require.NoError(t, err)
	require.Len(t, issueRows, 2)
	assert.Equal(t, []string{"Issue Type", "Severity", "Description", "Acknowledged"}, issueRows[0])
	assert.Equal(t, string(constants.IssueMathError), issueRows[1][0])
}
