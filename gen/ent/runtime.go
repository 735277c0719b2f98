// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/db/ent/schema"
	"github.com/tobi-akande/expense-scanner/gen/ent/batch"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescSourcePath is the schema descriptor for source_path field.
	batchDescSourcePath := batchFields[1].Descriptor()
	// batch.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	batch.SourcePathValidator = batchDescSourcePath.Validators[0].(func(string) error)
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[2].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescTotal is the schema descriptor for total field.
	batchDescTotal := batchFields[3].Descriptor()
	// batch.DefaultTotal holds the default value on creation for the total field.
	batch.DefaultTotal = batchDescTotal.Default.(int)
	// batch.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	batch.TotalValidator = batchDescTotal.Validators[0].(func(int) error)
	// batchDescSucceeded is the schema descriptor for succeeded field.
	batchDescSucceeded := batchFields[4].Descriptor()
	// batch.DefaultSucceeded holds the default value on creation for the succeeded field.
	batch.DefaultSucceeded = batchDescSucceeded.Default.(int)
	// batch.SucceededValidator is a validator for the "succeeded" field. It is called by the builders before save.
	batch.SucceededValidator = batchDescSucceeded.Validators[0].(func(int) error)
	// batchDescFailed is the schema descriptor for failed field.
	batchDescFailed := batchFields[5].Descriptor()
	// batch.DefaultFailed holds the default value on creation for the failed field.
	batch.DefaultFailed = batchDescFailed.Default.(int)
	// batch.FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	batch.FailedValidator = batchDescFailed.Validators[0].(func(int) error)
	// batchDescStartedAt is the schema descriptor for started_at field.
	batchDescStartedAt := batchFields[6].Descriptor()
	// batch.DefaultStartedAt holds the default value on creation for the started_at field.
	batch.DefaultStartedAt = batchDescStartedAt.Default.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	correctionFields := schema.Correction{}.Fields()
	_ = correctionFields
	// correctionDescCorrectedValue is the schema descriptor for corrected_value field.
	correctionDescCorrectedValue := correctionFields[3].Descriptor()
	// correction.CorrectedValueValidator is a validator for the "corrected_value" field. It is called by the builders before save.
	correction.CorrectedValueValidator = correctionDescCorrectedValue.Validators[0].(func(string) error)
	// correctionDescCorrectedAt is the schema descriptor for corrected_at field.
	correctionDescCorrectedAt := correctionFields[4].Descriptor()
	// correction.DefaultCorrectedAt holds the default value on creation for the corrected_at field.
	correction.DefaultCorrectedAt = correctionDescCorrectedAt.Default.(func() time.Time)
	// correctionDescID is the schema descriptor for id field.
	correctionDescID := correctionFields[0].Descriptor()
	// correction.DefaultID holds the default value on creation for the id field.
	correction.DefaultID = correctionDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[2].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[3].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = documentDescDocumentType.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescFieldName is the schema descriptor for field_name field.
	extractionDescFieldName := extractionFields[2].Descriptor()
	// extraction.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extraction.FieldNameValidator = extractionDescFieldName.Validators[0].(func(string) error)
	// extractionDescConfidenceScore is the schema descriptor for confidence_score field.
	extractionDescConfidenceScore := extractionFields[4].Descriptor()
	// extraction.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	extraction.ConfidenceScoreValidator = func() func(float64) error {
		validators := extractionDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[5].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	receiptdetailFields := schema.ReceiptDetail{}.Fields()
	_ = receiptdetailFields
	// receiptdetailDescID is the schema descriptor for id field.
	receiptdetailDescID := receiptdetailFields[0].Descriptor()
	// receiptdetail.DefaultID holds the default value on creation for the id field.
	receiptdetail.DefaultID = receiptdetailDescID.Default.(func() uuid.UUID)
	receiptitemFields := schema.ReceiptItem{}.Fields()
	_ = receiptitemFields
	// receiptitemDescPosition is the schema descriptor for position field.
	receiptitemDescPosition := receiptitemFields[2].Descriptor()
	// receiptitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	receiptitem.PositionValidator = receiptitemDescPosition.Validators[0].(func(int) error)
	// receiptitemDescItemName is the schema descriptor for item_name field.
	receiptitemDescItemName := receiptitemFields[3].Descriptor()
	// receiptitem.ItemNameValidator is a validator for the "item_name" field. It is called by the builders before save.
	receiptitem.ItemNameValidator = receiptitemDescItemName.Validators[0].(func(string) error)
	// receiptitemDescID is the schema descriptor for id field.
	receiptitemDescID := receiptitemFields[0].Descriptor()
	// receiptitem.DefaultID holds the default value on creation for the id field.
	receiptitem.DefaultID = receiptitemDescID.Default.(func() uuid.UUID)
	validationissueFields := schema.ValidationIssue{}.Fields()
	_ = validationissueFields
	// validationissueDescPosition is the schema descriptor for position field.
	validationissueDescPosition := validationissueFields[2].Descriptor()
	// validationissue.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	validationissue.PositionValidator = validationissueDescPosition.Validators[0].(func(int) error)
	// validationissueDescIssueType is the schema descriptor for issue_type field.
	validationissueDescIssueType := validationissueFields[3].Descriptor()
	// validationissue.IssueTypeValidator is a validator for the "issue_type" field. It is called by the builders before save.
	validationissue.IssueTypeValidator = func() func(string) error {
		validators := validationissueDescIssueType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(issue_type string) error {
			for _, fn := range fns {
				if err := fn(issue_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationissueDescSeverity is the schema descriptor for severity field.
	validationissueDescSeverity := validationissueFields[4].Descriptor()
	// validationissue.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	validationissue.SeverityValidator = func() func(string) error {
		validators := validationissueDescSeverity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(severity string) error {
			for _, fn := range fns {
				if err := fn(severity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationissueDescDescription is the schema descriptor for description field.
	validationissueDescDescription := validationissueFields[5].Descriptor()
	// validationissue.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	validationissue.DescriptionValidator = validationissueDescDescription.Validators[0].(func(string) error)
	// validationissueDescAcknowledged is the schema descriptor for acknowledged field.
	validationissueDescAcknowledged := validationissueFields[6].Descriptor()
	// validationissue.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	validationissue.DefaultAcknowledged = validationissueDescAcknowledged.Default.(bool)
	// validationissueDescCreatedAt is the schema descriptor for created_at field.
	validationissueDescCreatedAt := validationissueFields[7].Descriptor()
	// validationissue.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationissue.DefaultCreatedAt = validationissueDescCreatedAt.Default.(func() time.Time)
	// validationissueDescID is the schema descriptor for id field.
	validationissueDescID := validationissueFields[0].Descriptor()
	// validationissue.DefaultID holds the default value on creation for the id field.
	validationissue.DefaultID = validationissueDescID.Default.(func() uuid.UUID)
}
