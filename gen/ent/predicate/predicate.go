// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Correction is the predicate function for correction builders.
type Correction func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// ReceiptDetail is the predicate function for receiptdetail builders.
type ReceiptDetail func(*sql.Selector)

// ReceiptItem is the predicate function for receiptitem builders.
type ReceiptItem func(*sql.Selector)

// ValidationIssue is the predicate function for validationissue builders.
type ValidationIssue func(*sql.Selector)
