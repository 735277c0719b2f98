// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[2], BatchesColumns[6]},
			},
		},
	}
	// CorrectionsColumns holds the columns for the "corrections" table.
	CorrectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "original_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_at", Type: field.TypeTime},
		{Name: "extraction_id", Type: field.TypeUUID},
	}
	// CorrectionsTable holds the schema information for the "corrections" table.
	CorrectionsTable = &schema.Table{
		Name:       "corrections",
		Columns:    CorrectionsColumns,
		PrimaryKey: []*schema.Column{CorrectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "corrections_extractions_corrections",
				Columns:    []*schema.Column{CorrectionsColumns[4]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "correction_extraction_id_corrected_at",
				Unique:  false,
				Columns: []*schema.Column{CorrectionsColumns[4], CorrectionsColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "document_type", Type: field.TypeString, Nullable: true},
		{Name: "type_confidence", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[6]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "field_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_documents_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_document_id_field_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[5], ExtractionsColumns[1]},
			},
		},
	}
	// ReceiptDetailsColumns holds the columns for the "receipt_details" table.
	ReceiptDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "merchant_name", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "tip_amount", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeString, Nullable: true},
		{Name: "tax_amount", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeString, Nullable: true},
		{Name: "cashier_name", Type: field.TypeString, Nullable: true},
		{Name: "transaction_time", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// ReceiptDetailsTable holds the schema information for the "receipt_details" table.
	ReceiptDetailsTable = &schema.Table{
		Name:       "receipt_details",
		Columns:    ReceiptDetailsColumns,
		PrimaryKey: []*schema.Column{ReceiptDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_details_documents_details",
				Columns:    []*schema.Column{ReceiptDetailsColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReceiptItemsColumns holds the columns for the "receipt_items" table.
	ReceiptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "item_name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ReceiptItemsTable holds the schema information for the "receipt_items" table.
	ReceiptItemsTable = &schema.Table{
		Name:       "receipt_items",
		Columns:    ReceiptItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_items_documents_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptitem_document_id_position",
				Unique:  true,
				Columns: []*schema.Column{ReceiptItemsColumns[6], ReceiptItemsColumns[1]},
			},
		},
	}
	// ValidationIssuesColumns holds the columns for the "validation_issues" table.
	ValidationIssuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "issue_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ValidationIssuesTable holds the schema information for the "validation_issues" table.
	ValidationIssuesTable = &schema.Table{
		Name:       "validation_issues",
		Columns:    ValidationIssuesColumns,
		PrimaryKey: []*schema.Column{ValidationIssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_issues_documents_issues",
				Columns:    []*schema.Column{ValidationIssuesColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationissue_document_id_position",
				Unique:  true,
				Columns: []*schema.Column{ValidationIssuesColumns[7], ValidationIssuesColumns[1]},
			},
			{
				Name:    "validationissue_document_id_severity",
				Unique:  false,
				Columns: []*schema.Column{ValidationIssuesColumns[7], ValidationIssuesColumns[3]},
			},
			{
				Name:    "validationissue_document_id_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{ValidationIssuesColumns[7], ValidationIssuesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		CorrectionsTable,
		DocumentsTable,
		ExtractionsTable,
		ReceiptDetailsTable,
		ReceiptItemsTable,
		ValidationIssuesTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	CorrectionsTable.ForeignKeys[0].RefTable = ExtractionsTable
	CorrectionsTable.Annotation = &entsql.Annotation{
		Table: "corrections",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	ReceiptDetailsTable.ForeignKeys[0].RefTable = DocumentsTable
	ReceiptDetailsTable.Annotation = &entsql.Annotation{
		Table: "receipt_details",
	}
	ReceiptItemsTable.ForeignKeys[0].RefTable = DocumentsTable
	ReceiptItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_items",
	}
	ValidationIssuesTable.ForeignKeys[0].RefTable = DocumentsTable
	ValidationIssuesTable.Annotation = &entsql.Annotation{
		Table: "validation_issues",
	}
}
