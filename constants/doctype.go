package constants

// DocumentType is the classifier's verdict for a document.
type DocumentType string

const (
	DocTypeInvoice DocumentType = "invoice"
	DocTypeReceipt DocumentType = "receipt"
)

// DocumentTypes lists all valid document types.
var DocumentTypes = []string{
	string(DocTypeInvoice),
	string(DocTypeReceipt),
}
