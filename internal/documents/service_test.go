package documents

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
	"github.com/tobi-akande/expense-scanner/internal/validate"
)

const receiptText = `BLUE DOOR CAFE
123 Main Street
Springfield, IL 62704
Receipt #R-1001
Server: Dana
12/25/2024 6:45 PM
Coffee 2 x $3.50 = $7.00
Muffin 1 @ $2.25 $2.25
Subtotal: $9.25
Tax: $0.74
Tip: $1.85
Total: $11.84
Paid by VISA
Thank you`

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocumentRepo) Create(_ context.Context, filename string) (*entity.Document, error) {
	doc := &entity.Document{
		ID:         uuid.New(),
		Filename:   filename,
		Status:     constants.DocStatusUploaded,
		UploadedAt: time.Now(),
	}
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeDocumentRepo) Get(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *doc
	return &out, nil
}

func (f *fakeDocumentRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	doc, ok := f.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	doc.Status = constants.DocStatusProcessing
	return nil
}

func (f *fakeDocumentRepo) MarkCompleted(_ context.Context, id uuid.UUID, docType constants.DocumentType, confidence float64) error {
	doc, ok := f.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	now := time.Now()
	doc.Status = constants.DocStatusCompleted
	doc.DocumentType = &docType
	doc.TypeConfidence = &confidence
	doc.ErrorMessage = nil
	doc.ProcessedAt = &now
	return nil
}

func (f *fakeDocumentRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	doc, ok := f.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	doc.Status = constants.DocStatusFailed
	doc.ErrorMessage = &message
	return nil
}

func (f *fakeDocumentRepo) ListHistory(context.Context) ([]*entity.DocumentHistory, error) {
	out := make([]*entity.DocumentHistory, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, &entity.DocumentHistory{
			ID:         doc.ID,
			Filename:   doc.Filename,
			Status:     doc.Status,
			UploadedAt: doc.UploadedAt,
		})
	}
	return out, nil
}

type fakeExtractionRepo struct {
	rows        map[uuid.UUID][]*entity.Extraction
	corrections map[uuid.UUID][]*entity.Correction
}

func newFakeExtractionRepo() *fakeExtractionRepo {
	return &fakeExtractionRepo{
		rows:        make(map[uuid.UUID][]*entity.Extraction),
		corrections: make(map[uuid.UUID][]*entity.Correction),
	}
}

func (f *fakeExtractionRepo) InsertBatch(_ context.Context, documentID uuid.UUID, rows []entity.Extraction) ([]*entity.Extraction, error) {
	out := make([]*entity.Extraction, len(rows))
	for i, row := range rows {
		stored := row
		stored.ID = uuid.New()
		stored.DocumentID = documentID
		out[i] = &stored
		f.rows[documentID] = append(f.rows[documentID], &stored)
	}
	return out, nil
}

func (f *fakeExtractionRepo) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.Extraction, error) {
	return f.rows[documentID], nil
}

func (f *fakeExtractionRepo) ListCurrent(_ context.Context, documentID uuid.UUID) ([]*entity.Extraction, error) {
	out := make([]*entity.Extraction, 0, len(f.rows[documentID]))
	for _, row := range f.rows[documentID] {
		current := *row
		if corrs := f.corrections[row.ID]; len(corrs) > 0 {
			latest := corrs[len(corrs)-1].CorrectedValue
			current.FieldValue = &latest
		}
		out = append(out, &current)
	}
	return out, nil
}

func (f *fakeExtractionRepo) Correct(_ context.Context, extractionID uuid.UUID, correctedValue string) (*entity.Correction, error) {
	for _, rows := range f.rows {
		for _, row := range rows {
			if row.ID != extractionID {
				continue
			}
			corr := &entity.Correction{
				ID:             uuid.New(),
				ExtractionID:   extractionID,
				OriginalValue:  row.FieldValue,
				CorrectedValue: correctedValue,
				CorrectedAt:    time.Now(),
			}
			f.corrections[extractionID] = append(f.corrections[extractionID], corr)
			return corr, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeExtractionRepo) ListCorrections(_ context.Context, extractionID uuid.UUID) ([]*entity.Correction, error) {
	return f.corrections[extractionID], nil
}

type fakeReceiptRepo struct {
	items   map[uuid.UUID][]entity.LineItem
	details map[uuid.UUID]*entity.ReceiptDetails
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{
		items:   make(map[uuid.UUID][]entity.LineItem),
		details: make(map[uuid.UUID]*entity.ReceiptDetails),
	}
}

func (f *fakeReceiptRepo) ReplaceItems(_ context.Context, documentID uuid.UUID, items []entity.LineItem) error {
	f.items[documentID] = append([]entity.LineItem(nil), items...)
	return nil
}

func (f *fakeReceiptRepo) ListItems(_ context.Context, documentID uuid.UUID) ([]entity.LineItem, error) {
	return f.items[documentID], nil
}

func (f *fakeReceiptRepo) UpsertDetails(_ context.Context, details *entity.ReceiptDetails) error {
	copied := *details
	f.details[details.DocumentID] = &copied
	return nil
}

func (f *fakeReceiptRepo) GetDetails(_ context.Context, documentID uuid.UUID) (*entity.ReceiptDetails, error) {
	return f.details[documentID], nil
}

type fakeIssueRepo struct {
	issues map[uuid.UUID][]*entity.ValidationIssue
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: make(map[uuid.UUID][]*entity.ValidationIssue)}
}

func (f *fakeIssueRepo) Replace(_ context.Context, documentID uuid.UUID, issues []entity.ValidationIssue) ([]*entity.ValidationIssue, error) {
	out := make([]*entity.ValidationIssue, len(issues))
	for i, issue := range issues {
		stored := issue
		stored.ID = uuid.New()
		stored.DocumentID = documentID
		out[i] = &stored
	}
	f.issues[documentID] = out
	return out, nil
}

func (f *fakeIssueRepo) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.ValidationIssue, error) {
	return f.issues[documentID], nil
}

func (f *fakeIssueRepo) Acknowledge(_ context.Context, issueID uuid.UUID) (*entity.ValidationIssue, error) {
	for _, issues := range f.issues {
		for _, issue := range issues {
			if issue.ID == issueID {
				issue.Acknowledged = true
				out := *issue
				return &out, nil
			}
		}
	}
	return nil, common.ErrNotFound
}

type testEnv struct {
	svc         *Service
	documents   *fakeDocumentRepo
	extractions *fakeExtractionRepo
	receipts    *fakeReceiptRepo
	issues      *fakeIssueRepo
}

func newTestEnv() *testEnv {
	documents := newFakeDocumentRepo()
	extractions := newFakeExtractionRepo()
	receipts := newFakeReceiptRepo()
	issues := newFakeIssueRepo()
	svc := NewService(
		nil,
		pipeline.NewProcessor(nil, nil, nil, nil),
		validate.NewEngine(nil),
		documents,
		extractions,
		receipts,
		issues,
	)
	return &testEnv{svc: svc, documents: documents, extractions: extractions, receipts: receipts, issues: issues}
}

func TestUploadTextCompletesReceipt(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, constants.DocStatusCompleted, doc.Status)
	require.NotNil(t, doc.DocumentType)
	assert.Equal(t, constants.DocTypeReceipt, *doc.DocumentType)
	assert.NotNil(t, doc.ProcessedAt)
	assert.Nil(t, doc.ErrorMessage)

	rows := env.extractions.rows[doc.ID]
	require.NotEmpty(t, rows)
	// one row per receipt field, classification pseudo-field last
	assert.Len(t, rows, len(pipeline.ReceiptFields)+1)
	assert.Equal(t, pipeline.FieldDocumentType, rows[len(rows)-1].FieldName)
	byName := make(map[string]*entity.Extraction, len(rows))
	for _, row := range rows {
		byName[row.FieldName] = row
	}
	require.Contains(t, byName, pipeline.FieldMerchantName)
	require.NotNil(t, byName[pipeline.FieldMerchantName].FieldValue)
	assert.Equal(t, "BLUE DOOR CAFE", *byName[pipeline.FieldMerchantName].FieldValue)

	items := env.receipts.items[doc.ID]
	require.Len(t, items, 2)
	assert.Equal(t, "Coffee", items[0].ItemName)

	details := env.receipts.details[doc.ID]
	require.NotNil(t, details)
	assert.Equal(t, doc.ID, details.DocumentID)
	require.NotNil(t, details.Subtotal)
	assert.Equal(t, "9.25", *details.Subtotal)
}

func TestUploadTextEmptyTextFails(t *testing.T) {
	env := newTestEnv()

	doc, err := env.svc.UploadText(context.Background(), "blank.txt", "   ")
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, constants.DocStatusFailed, doc.Status)
	require.NotNil(t, doc.ErrorMessage)
	assert.NotEmpty(t, *doc.ErrorMessage)
	assert.Empty(t, env.extractions.rows[doc.ID])
}

func TestValidateIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	first, err := env.svc.Validate(ctx, doc.ID)
	require.NoError(t, err)
	second, err := env.svc.Validate(ctx, doc.ID)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].IssueType, second[i].IssueType)
		assert.Equal(t, first[i].Description, second[i].Description)
	}
	// stored issues are replaced, never accumulated
	assert.Len(t, env.issues.issues[doc.ID], len(first))
}

func TestIssuesReadBackInValidationOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	issues, err := env.svc.Validate(ctx, doc.ID)
	require.NoError(t, err)
	require.NotEmpty(t, issues)

	stored, err := env.issues.ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, stored, len(issues))
	for i := range issues {
		assert.Equal(t, issues[i].Description, stored[i].Description)
	}
}

func TestValidateUnknownDocument(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Validate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveCorrectionRevalidates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	var target *entity.Extraction
	for _, row := range env.extractions.rows[doc.ID] {
		if row.FieldName == pipeline.FieldTotal {
			target = row
			break
		}
	}
	require.NotNil(t, target)

	corr, err := env.svc.SaveCorrection(ctx, doc.ID, target.ID, "11.84")
	require.NoError(t, err)
	assert.Equal(t, "11.84", corr.CorrectedValue)
	assert.Equal(t, target.FieldValue, corr.OriginalValue)

	current, err := env.extractions.ListCurrent(ctx, doc.ID)
	require.NoError(t, err)
	for _, row := range current {
		if row.FieldName == pipeline.FieldTotal {
			require.NotNil(t, row.FieldValue)
			assert.Equal(t, "11.84", *row.FieldValue)
		}
	}
}

func TestGetResultsIncludesCorrectionHistory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	res, err := env.svc.GetResults(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Corrections)

	var target *entity.Extraction
	for _, row := range env.extractions.rows[doc.ID] {
		if row.FieldName == pipeline.FieldTotal {
			target = row
			break
		}
	}
	require.NotNil(t, target)
	_, err = env.svc.SaveCorrection(ctx, doc.ID, target.ID, "11.84")
	require.NoError(t, err)

	res, err = env.svc.GetResults(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, target.ID, res.Corrections[0].ExtractionID)
	assert.Equal(t, "11.84", res.Corrections[0].CorrectedValue)
	assert.Equal(t, target.FieldValue, res.Corrections[0].OriginalValue)

	// the corrected value shows in the extraction list, original in the trail
	for _, ex := range res.Extractions {
		if ex.FieldName == pipeline.FieldTotal {
			require.NotNil(t, ex.FieldValue)
			assert.Equal(t, "11.84", *ex.FieldValue)
		}
	}
}

func TestSaveCorrectionCanonicalizesCategory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	var target *entity.Extraction
	for _, row := range env.extractions.rows[doc.ID] {
		if row.FieldName == pipeline.FieldCategory {
			target = row
			break
		}
	}
	require.NotNil(t, target)

	corr, err := env.svc.SaveCorrection(ctx, doc.ID, target.ID, "fuel")
	require.NoError(t, err)
	assert.Equal(t, string(constants.Transportation), corr.CorrectedValue)

	// values outside the known labels and synonyms are stored as entered
	corr, err = env.svc.SaveCorrection(ctx, doc.ID, target.ID, "consulting")
	require.NoError(t, err)
	assert.Equal(t, "consulting", corr.CorrectedValue)
}

func TestSummaryCountsStoredIssues(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.svc.UploadText(ctx, "receipt.txt", receiptText)
	require.NoError(t, err)

	stored := env.issues.issues[doc.ID]
	summary, err := env.svc.Summary(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, len(stored), summary.TotalIssues)
	assert.Equal(t, summary.TotalIssues, summary.Errors+summary.Warnings+summary.Info)
	assert.Equal(t, len(stored), summary.Unacknowledged)
}

func TestAcknowledgeIssue(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	docID := uuid.New()
	stored, err := env.issues.Replace(ctx, docID, []entity.ValidationIssue{
		{IssueType: constants.IssueMathError, Severity: constants.SeverityError, Description: "mismatch"},
	})
	require.NoError(t, err)

	issue, err := env.svc.AcknowledgeIssue(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.True(t, issue.Acknowledged)

	_, err = env.svc.AcknowledgeIssue(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetResultsUnknownDocument(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.GetResults(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
