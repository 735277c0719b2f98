// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: scanner/v1/scanner.proto

package scannerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExportFormat int32

const (
	ExportFormat_EXPORT_FORMAT_UNSPECIFIED ExportFormat = 0
	ExportFormat_EXPORT_FORMAT_XLSX        ExportFormat = 1
	ExportFormat_EXPORT_FORMAT_CSV         ExportFormat = 2
)

// Enum value maps for ExportFormat.
var (
	ExportFormat_name = map[int32]string{
		0: "EXPORT_FORMAT_UNSPECIFIED",
		1: "EXPORT_FORMAT_XLSX",
		2: "EXPORT_FORMAT_CSV",
	}
	ExportFormat_value = map[string]int32{
		"EXPORT_FORMAT_UNSPECIFIED": 0,
		"EXPORT_FORMAT_XLSX":        1,
		"EXPORT_FORMAT_CSV":         2,
	}
)

func (x ExportFormat) Enum() *ExportFormat {
	p := new(ExportFormat)
	*p = x
	return p
}

func (x ExportFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExportFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_scanner_v1_scanner_proto_enumTypes[0].Descriptor()
}

func (ExportFormat) Type() protoreflect.EnumType {
	return &file_scanner_v1_scanner_proto_enumTypes[0]
}

func (x ExportFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExportFormat.Descriptor instead.
func (ExportFormat) EnumDescriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{0}
}

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename       string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status         string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	DocumentType   string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	TypeConfidence float64                `protobuf:"fixed64,5,opt,name=type_confidence,json=typeConfidence,proto3" json:"type_confidence,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt    string                 `protobuf:"bytes,8,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetTypeConfidence() float64 {
	if x != nil {
		return x.TypeConfidence
	}
	return 0
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type Extraction struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FieldName  string                 `protobuf:"bytes,3,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	// empty + has_value=false means the matcher found nothing
	FieldValue      string  `protobuf:"bytes,4,opt,name=field_value,json=fieldValue,proto3" json:"field_value,omitempty"`
	HasValue        bool    `protobuf:"varint,5,opt,name=has_value,json=hasValue,proto3" json:"has_value,omitempty"`
	ConfidenceScore float64 `protobuf:"fixed64,6,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	CreatedAt       string  `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{1}
}

func (x *Extraction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Extraction) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Extraction) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *Extraction) GetFieldValue() string {
	if x != nil {
		return x.FieldValue
	}
	return ""
}

func (x *Extraction) GetHasValue() bool {
	if x != nil {
		return x.HasValue
	}
	return false
}

func (x *Extraction) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Extraction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemName      string                 `protobuf:"bytes,1,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	TotalPrice    float64                `protobuf:"fixed64,4,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{2}
}

func (x *LineItem) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *LineItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetTotalPrice() float64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

type ReceiptDetails struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	MerchantName    string                 `protobuf:"bytes,2,opt,name=merchant_name,json=merchantName,proto3" json:"merchant_name,omitempty"`
	Location        string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	PaymentMethod   string                 `protobuf:"bytes,4,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	TipAmount       string                 `protobuf:"bytes,5,opt,name=tip_amount,json=tipAmount,proto3" json:"tip_amount,omitempty"`
	Subtotal        string                 `protobuf:"bytes,6,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	TaxAmount       string                 `protobuf:"bytes,7,opt,name=tax_amount,json=taxAmount,proto3" json:"tax_amount,omitempty"`
	TotalAmount     string                 `protobuf:"bytes,8,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	CashierName     string                 `protobuf:"bytes,9,opt,name=cashier_name,json=cashierName,proto3" json:"cashier_name,omitempty"`
	TransactionTime string                 `protobuf:"bytes,10,opt,name=transaction_time,json=transactionTime,proto3" json:"transaction_time,omitempty"`
	Category        string                 `protobuf:"bytes,11,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ReceiptDetails) Reset() {
	*x = ReceiptDetails{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptDetails) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptDetails) ProtoMessage() {}

func (x *ReceiptDetails) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptDetails.ProtoReflect.Descriptor instead.
func (*ReceiptDetails) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{3}
}

func (x *ReceiptDetails) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ReceiptDetails) GetMerchantName() string {
	if x != nil {
		return x.MerchantName
	}
	return ""
}

func (x *ReceiptDetails) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *ReceiptDetails) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *ReceiptDetails) GetTipAmount() string {
	if x != nil {
		return x.TipAmount
	}
	return ""
}

func (x *ReceiptDetails) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *ReceiptDetails) GetTaxAmount() string {
	if x != nil {
		return x.TaxAmount
	}
	return ""
}

func (x *ReceiptDetails) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *ReceiptDetails) GetCashierName() string {
	if x != nil {
		return x.CashierName
	}
	return ""
}

func (x *ReceiptDetails) GetTransactionTime() string {
	if x != nil {
		return x.TransactionTime
	}
	return ""
}

func (x *ReceiptDetails) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ValidationIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	IssueType     string                 `protobuf:"bytes,3,opt,name=issue_type,json=issueType,proto3" json:"issue_type,omitempty"`
	Severity      string                 `protobuf:"bytes,4,opt,name=severity,proto3" json:"severity,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Acknowledged  bool                   `protobuf:"varint,6,opt,name=acknowledged,proto3" json:"acknowledged,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationIssue) Reset() {
	*x = ValidationIssue{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationIssue) ProtoMessage() {}

func (x *ValidationIssue) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationIssue.ProtoReflect.Descriptor instead.
func (*ValidationIssue) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{4}
}

func (x *ValidationIssue) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ValidationIssue) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ValidationIssue) GetIssueType() string {
	if x != nil {
		return x.IssueType
	}
	return ""
}

func (x *ValidationIssue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *ValidationIssue) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ValidationIssue) GetAcknowledged() bool {
	if x != nil {
		return x.Acknowledged
	}
	return false
}

func (x *ValidationIssue) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ValidationSummary struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalIssues    uint32                 `protobuf:"varint,1,opt,name=total_issues,json=totalIssues,proto3" json:"total_issues,omitempty"`
	Errors         uint32                 `protobuf:"varint,2,opt,name=errors,proto3" json:"errors,omitempty"`
	Warnings       uint32                 `protobuf:"varint,3,opt,name=warnings,proto3" json:"warnings,omitempty"`
	Info           uint32                 `protobuf:"varint,4,opt,name=info,proto3" json:"info,omitempty"`
	Unacknowledged uint32                 `protobuf:"varint,5,opt,name=unacknowledged,proto3" json:"unacknowledged,omitempty"`
	IssuesByType   map[string]uint32      `protobuf:"bytes,6,rep,name=issues_by_type,json=issuesByType,proto3" json:"issues_by_type,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ValidationSummary) Reset() {
	*x = ValidationSummary{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationSummary) ProtoMessage() {}

func (x *ValidationSummary) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationSummary.ProtoReflect.Descriptor instead.
func (*ValidationSummary) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{5}
}

func (x *ValidationSummary) GetTotalIssues() uint32 {
	if x != nil {
		return x.TotalIssues
	}
	return 0
}

func (x *ValidationSummary) GetErrors() uint32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

func (x *ValidationSummary) GetWarnings() uint32 {
	if x != nil {
		return x.Warnings
	}
	return 0
}

func (x *ValidationSummary) GetInfo() uint32 {
	if x != nil {
		return x.Info
	}
	return 0
}

func (x *ValidationSummary) GetUnacknowledged() uint32 {
	if x != nil {
		return x.Unacknowledged
	}
	return 0
}

func (x *ValidationSummary) GetIssuesByType() map[string]uint32 {
	if x != nil {
		return x.IssuesByType
	}
	return nil
}

type Correction struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ExtractionId   string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	OriginalValue  string                 `protobuf:"bytes,3,opt,name=original_value,json=originalValue,proto3" json:"original_value,omitempty"`
	CorrectedValue string                 `protobuf:"bytes,4,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	CorrectedAt    string                 `protobuf:"bytes,5,opt,name=corrected_at,json=correctedAt,proto3" json:"corrected_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Correction) Reset() {
	*x = Correction{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Correction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Correction) ProtoMessage() {}

func (x *Correction) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Correction.ProtoReflect.Descriptor instead.
func (*Correction) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{6}
}

func (x *Correction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Correction) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *Correction) GetOriginalValue() string {
	if x != nil {
		return x.OriginalValue
	}
	return ""
}

func (x *Correction) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

func (x *Correction) GetCorrectedAt() string {
	if x != nil {
		return x.CorrectedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{7}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{8}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultsRequest) Reset() {
	*x = GetResultsRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultsRequest) ProtoMessage() {}

func (x *GetResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultsRequest.ProtoReflect.Descriptor instead.
func (*GetResultsRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{9}
}

func (x *GetResultsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetResultsResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Document *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	// extractions carry the latest corrected values; corrections is the
	// audit trail behind them
	Extractions   []*Extraction      `protobuf:"bytes,2,rep,name=extractions,proto3" json:"extractions,omitempty"`
	LineItems     []*LineItem        `protobuf:"bytes,3,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	Details       *ReceiptDetails    `protobuf:"bytes,4,opt,name=details,proto3" json:"details,omitempty"`
	Issues        []*ValidationIssue `protobuf:"bytes,5,rep,name=issues,proto3" json:"issues,omitempty"`
	Corrections   []*Correction      `protobuf:"bytes,6,rep,name=corrections,proto3" json:"corrections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultsResponse) Reset() {
	*x = GetResultsResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultsResponse) ProtoMessage() {}

func (x *GetResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultsResponse.ProtoReflect.Descriptor instead.
func (*GetResultsResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{10}
}

func (x *GetResultsResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetResultsResponse) GetExtractions() []*Extraction {
	if x != nil {
		return x.Extractions
	}
	return nil
}

func (x *GetResultsResponse) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *GetResultsResponse) GetDetails() *ReceiptDetails {
	if x != nil {
		return x.Details
	}
	return nil
}

func (x *GetResultsResponse) GetIssues() []*ValidationIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *GetResultsResponse) GetCorrections() []*Correction {
	if x != nil {
		return x.Corrections
	}
	return nil
}

type SaveCorrectionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ExtractionId   string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	CorrectedValue string                 `protobuf:"bytes,3,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SaveCorrectionRequest) Reset() {
	*x = SaveCorrectionRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveCorrectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveCorrectionRequest) ProtoMessage() {}

func (x *SaveCorrectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveCorrectionRequest.ProtoReflect.Descriptor instead.
func (*SaveCorrectionRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{11}
}

func (x *SaveCorrectionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SaveCorrectionRequest) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *SaveCorrectionRequest) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

type SaveCorrectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Correction    *Correction            `protobuf:"bytes,1,opt,name=correction,proto3" json:"correction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveCorrectionResponse) Reset() {
	*x = SaveCorrectionResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveCorrectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveCorrectionResponse) ProtoMessage() {}

func (x *SaveCorrectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveCorrectionResponse.ProtoReflect.Descriptor instead.
func (*SaveCorrectionResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{12}
}

func (x *SaveCorrectionResponse) GetCorrection() *Correction {
	if x != nil {
		return x.Correction
	}
	return nil
}

type GetHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryRequest) Reset() {
	*x = GetHistoryRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryRequest) ProtoMessage() {}

func (x *GetHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetHistoryRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{13}
}

type HistoryEntry struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DocumentId      string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Filename        string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status          string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ExtractionCount uint32                 `protobuf:"varint,5,opt,name=extraction_count,json=extractionCount,proto3" json:"extraction_count,omitempty"`
	IssueCount      uint32                 `protobuf:"varint,6,opt,name=issue_count,json=issueCount,proto3" json:"issue_count,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *HistoryEntry) Reset() {
	*x = HistoryEntry{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryEntry) ProtoMessage() {}

func (x *HistoryEntry) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryEntry.ProtoReflect.Descriptor instead.
func (*HistoryEntry) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{14}
}

func (x *HistoryEntry) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *HistoryEntry) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *HistoryEntry) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *HistoryEntry) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *HistoryEntry) GetExtractionCount() uint32 {
	if x != nil {
		return x.ExtractionCount
	}
	return 0
}

func (x *HistoryEntry) GetIssueCount() uint32 {
	if x != nil {
		return x.IssueCount
	}
	return 0
}

type GetHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*HistoryEntry        `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryResponse) Reset() {
	*x = GetHistoryResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryResponse) ProtoMessage() {}

func (x *GetHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetHistoryResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{15}
}

func (x *GetHistoryResponse) GetEntries() []*HistoryEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ValidateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateDocumentRequest) Reset() {
	*x = ValidateDocumentRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateDocumentRequest) ProtoMessage() {}

func (x *ValidateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateDocumentRequest.ProtoReflect.Descriptor instead.
func (*ValidateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{16}
}

func (x *ValidateDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ValidateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Issues        []*ValidationIssue     `protobuf:"bytes,1,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateDocumentResponse) Reset() {
	*x = ValidateDocumentResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateDocumentResponse) ProtoMessage() {}

func (x *ValidateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateDocumentResponse.ProtoReflect.Descriptor instead.
func (*ValidateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{17}
}

func (x *ValidateDocumentResponse) GetIssues() []*ValidationIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

type GetValidationSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetValidationSummaryRequest) Reset() {
	*x = GetValidationSummaryRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetValidationSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetValidationSummaryRequest) ProtoMessage() {}

func (x *GetValidationSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetValidationSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetValidationSummaryRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{18}
}

func (x *GetValidationSummaryRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetValidationSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *ValidationSummary     `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetValidationSummaryResponse) Reset() {
	*x = GetValidationSummaryResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetValidationSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetValidationSummaryResponse) ProtoMessage() {}

func (x *GetValidationSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetValidationSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetValidationSummaryResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{19}
}

func (x *GetValidationSummaryResponse) GetSummary() *ValidationSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type AcknowledgeIssueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IssueId       string                 `protobuf:"bytes,1,opt,name=issue_id,json=issueId,proto3" json:"issue_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcknowledgeIssueRequest) Reset() {
	*x = AcknowledgeIssueRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcknowledgeIssueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcknowledgeIssueRequest) ProtoMessage() {}

func (x *AcknowledgeIssueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcknowledgeIssueRequest.ProtoReflect.Descriptor instead.
func (*AcknowledgeIssueRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{20}
}

func (x *AcknowledgeIssueRequest) GetIssueId() string {
	if x != nil {
		return x.IssueId
	}
	return ""
}

type AcknowledgeIssueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Issue         *ValidationIssue       `protobuf:"bytes,1,opt,name=issue,proto3" json:"issue,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcknowledgeIssueResponse) Reset() {
	*x = AcknowledgeIssueResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcknowledgeIssueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcknowledgeIssueResponse) ProtoMessage() {}

func (x *AcknowledgeIssueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcknowledgeIssueResponse.ProtoReflect.Descriptor instead.
func (*AcknowledgeIssueResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{21}
}

func (x *AcknowledgeIssueResponse) GetIssue() *ValidationIssue {
	if x != nil {
		return x.Issue
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{22}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{23}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{24}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Scanned       uint32                 `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{25}
}

func (x *IngestDirectoryResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Format        ExportFormat           `protobuf:"varint,2,opt,name=format,proto3,enum=scanner.v1.ExportFormat" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentRequest) Reset() {
	*x = ExportDocumentRequest{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentRequest) ProtoMessage() {}

func (x *ExportDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentRequest) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{26}
}

func (x *ExportDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExportDocumentRequest) GetFormat() ExportFormat {
	if x != nil {
		return x.Format
	}
	return ExportFormat_EXPORT_FORMAT_UNSPECIFIED
}

type ExportDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentResponse) Reset() {
	*x = ExportDocumentResponse{}
	mi := &file_scanner_v1_scanner_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentResponse) ProtoMessage() {}

func (x *ExportDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanner_v1_scanner_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentResponse) Descriptor() ([]byte, []int) {
	return file_scanner_v1_scanner_proto_rawDescGZIP(), []int{27}
}

func (x *ExportDocumentResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExportDocumentResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_scanner_v1_scanner_proto protoreflect.FileDescriptor

const file_scanner_v1_scanner_proto_rawDesc = "" +
	"\n" +
	"\x18scanner/v1/scanner.proto\x12\n" +
	"scanner.v1\"\x85\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12'\n" +
	"\x0ftype_confidence\x18\x05 \x01(\x01R\x0etypeConfidence\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\b \x01(\tR\vprocessedAt\"\xe4\x01\n" +
	"\n" +
	"Extraction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x03 \x01(\tR\tfieldName\x12\x1f\n" +
	"\vfield_value\x18\x04 \x01(\tR\n" +
	"fieldValue\x12\x1b\n" +
	"\thas_value\x18\x05 \x01(\bR\bhasValue\x12)\n" +
	"\x10confidence_score\x18\x06 \x01(\x01R\x0fconfidenceScore\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\x83\x01\n" +
	"\bLineItem\x12\x1b\n" +
	"\titem_name\x18\x01 \x01(\tR\bitemName\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1f\n" +
	"\vtotal_price\x18\x04 \x01(\x01R\n" +
	"totalPrice\"\x80\x03\n" +
	"\x0eReceiptDetails\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rmerchant_name\x18\x02 \x01(\tR\fmerchantName\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12%\n" +
	"\x0epayment_method\x18\x04 \x01(\tR\rpaymentMethod\x12\x1d\n" +
	"\n" +
	"tip_amount\x18\x05 \x01(\tR\ttipAmount\x12\x1a\n" +
	"\bsubtotal\x18\x06 \x01(\tR\bsubtotal\x12\x1d\n" +
	"\n" +
	"tax_amount\x18\a \x01(\tR\ttaxAmount\x12!\n" +
	"\ftotal_amount\x18\b \x01(\tR\vtotalAmount\x12!\n" +
	"\fcashier_name\x18\t \x01(\tR\vcashierName\x12)\n" +
	"\x10transaction_time\x18\n" +
	" \x01(\tR\x0ftransactionTime\x12\x1a\n" +
	"\bcategory\x18\v \x01(\tR\bcategory\"\xe2\x01\n" +
	"\x0fValidationIssue\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"issue_type\x18\x03 \x01(\tR\tissueType\x12\x1a\n" +
	"\bseverity\x18\x04 \x01(\tR\bseverity\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\"\n" +
	"\facknowledged\x18\x06 \x01(\bR\facknowledged\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\xbe\x02\n" +
	"\x11ValidationSummary\x12!\n" +
	"\ftotal_issues\x18\x01 \x01(\rR\vtotalIssues\x12\x16\n" +
	"\x06errors\x18\x02 \x01(\rR\x06errors\x12\x1a\n" +
	"\bwarnings\x18\x03 \x01(\rR\bwarnings\x12\x12\n" +
	"\x04info\x18\x04 \x01(\rR\x04info\x12&\n" +
	"\x0eunacknowledged\x18\x05 \x01(\rR\x0eunacknowledged\x12U\n" +
	"\x0eissues_by_type\x18\x06 \x03(\v2/.scanner.v1.ValidationSummary.IssuesByTypeEntryR\fissuesByType\x1a?\n" +
	"\x11IssuesByTypeEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\rR\x05value:\x028\x01\"\xb4\x01\n" +
	"\n" +
	"Correction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\x12%\n" +
	"\x0eoriginal_value\x18\x03 \x01(\tR\roriginalValue\x12'\n" +
	"\x0fcorrected_value\x18\x04 \x01(\tR\x0ecorrectedValue\x12!\n" +
	"\fcorrected_at\x18\x05 \x01(\tR\vcorrectedAt\"G\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"J\n" +
	"\x16UploadDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.scanner.v1.DocumentR\bdocument\"4\n" +
	"\x11GetResultsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xda\x02\n" +
	"\x12GetResultsResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.scanner.v1.DocumentR\bdocument\x128\n" +
	"\vextractions\x18\x02 \x03(\v2\x16.scanner.v1.ExtractionR\vextractions\x123\n" +
	"\n" +
	"line_items\x18\x03 \x03(\v2\x14.scanner.v1.LineItemR\tlineItems\x124\n" +
	"\adetails\x18\x04 \x01(\v2\x1a.scanner.v1.ReceiptDetailsR\adetails\x123\n" +
	"\x06issues\x18\x05 \x03(\v2\x1b.scanner.v1.ValidationIssueR\x06issues\x128\n" +
	"\vcorrections\x18\x06 \x03(\v2\x16.scanner.v1.CorrectionR\vcorrections\"\x86\x01\n" +
	"\x15SaveCorrectionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\x12'\n" +
	"\x0fcorrected_value\x18\x03 \x01(\tR\x0ecorrectedValue\"P\n" +
	"\x16SaveCorrectionResponse\x126\n" +
	"\n" +
	"correction\x18\x01 \x01(\v2\x16.scanner.v1.CorrectionR\n" +
	"correction\"\x13\n" +
	"\x11GetHistoryRequest\"\xd0\x01\n" +
	"\fHistoryEntry\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\x12)\n" +
	"\x10extraction_count\x18\x05 \x01(\rR\x0fextractionCount\x12\x1f\n" +
	"\vissue_count\x18\x06 \x01(\rR\n" +
	"issueCount\"H\n" +
	"\x12GetHistoryResponse\x122\n" +
	"\aentries\x18\x01 \x03(\v2\x18.scanner.v1.HistoryEntryR\aentries\":\n" +
	"\x17ValidateDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"O\n" +
	"\x18ValidateDocumentResponse\x123\n" +
	"\x06issues\x18\x01 \x03(\v2\x1b.scanner.v1.ValidationIssueR\x06issues\">\n" +
	"\x1bGetValidationSummaryRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"W\n" +
	"\x1cGetValidationSummaryResponse\x127\n" +
	"\asummary\x18\x01 \x01(\v2\x1d.scanner.v1.ValidationSummaryR\asummary\"4\n" +
	"\x17AcknowledgeIssueRequest\x12\x19\n" +
	"\bissue_id\x18\x01 \x01(\tR\aissueId\"M\n" +
	"\x18AcknowledgeIssueResponse\x121\n" +
	"\x05issue\x18\x01 \x01(\v2\x1b.scanner.v1.ValidationIssueR\x05issue\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xa1\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xd4\x01\n" +
	"\x17IngestDirectoryResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\rR\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.scanner.v1.IngestResponseR\aresults\"j\n" +
	"\x15ExportDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x120\n" +
	"\x06format\x18\x02 \x01(\x0e2\x18.scanner.v1.ExportFormatR\x06format\"H\n" +
	"\x16ExportDocumentResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename*\\\n" +
	"\fExportFormat\x12\x1d\n" +
	"\x19EXPORT_FORMAT_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12EXPORT_FORMAT_XLSX\x10\x01\x12\x15\n" +
	"\x11EXPORT_FORMAT_CSV\x10\x022\xde\x02\n" +
	"\x10DocumentsService\x12W\n" +
	"\x0eUploadDocument\x12!.scanner.v1.UploadDocumentRequest\x1a\".scanner.v1.UploadDocumentResponse\x12K\n" +
	"\n" +
	"GetResults\x12\x1d.scanner.v1.GetResultsRequest\x1a\x1e.scanner.v1.GetResultsResponse\x12W\n" +
	"\x0eSaveCorrection\x12!.scanner.v1.SaveCorrectionRequest\x1a\".scanner.v1.SaveCorrectionResponse\x12K\n" +
	"\n" +
	"GetHistory\x12\x1d.scanner.v1.GetHistoryRequest\x1a\x1e.scanner.v1.GetHistoryResponse2\xbc\x02\n" +
	"\x11ValidationService\x12]\n" +
	"\x10ValidateDocument\x12#.scanner.v1.ValidateDocumentRequest\x1a$.scanner.v1.ValidateDocumentResponse\x12i\n" +
	"\x14GetValidationSummary\x12'.scanner.v1.GetValidationSummaryRequest\x1a(.scanner.v1.GetValidationSummaryResponse\x12]\n" +
	"\x10AcknowledgeIssue\x12#.scanner.v1.AcknowledgeIssueRequest\x1a$.scanner.v1.AcknowledgeIssueResponse2\xb7\x01\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.scanner.v1.IngestFileRequest\x1a\x1a.scanner.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".scanner.v1.IngestDirectoryRequest\x1a#.scanner.v1.IngestDirectoryResponse2h\n" +
	"\rExportService\x12W\n" +
	"\x0eExportDocument\x12!.scanner.v1.ExportDocumentRequest\x1a\".scanner.v1.ExportDocumentResponseBGZEgithub.com/tobi-akande/expense-scanner/gen/proto/scanner/v1;scannerv1b\x06proto3"

var (
	file_scanner_v1_scanner_proto_rawDescOnce sync.Once
	file_scanner_v1_scanner_proto_rawDescData []byte
)

func file_scanner_v1_scanner_proto_rawDescGZIP() []byte {
	file_scanner_v1_scanner_proto_rawDescOnce.Do(func() {
		file_scanner_v1_scanner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scanner_v1_scanner_proto_rawDesc), len(file_scanner_v1_scanner_proto_rawDesc)))
	})
	return file_scanner_v1_scanner_proto_rawDescData
}

var file_scanner_v1_scanner_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_scanner_v1_scanner_proto_msgTypes = make([]protoimpl.MessageInfo, 29)
var file_scanner_v1_scanner_proto_goTypes = []any{
	(ExportFormat)(0),                    // 0: scanner.v1.ExportFormat
	(*Document)(nil),                     // 1: scanner.v1.Document
	(*Extraction)(nil),                   // 2: scanner.v1.Extraction
	(*LineItem)(nil),                     // 3: scanner.v1.LineItem
	(*ReceiptDetails)(nil),               // 4: scanner.v1.ReceiptDetails
	(*ValidationIssue)(nil),              // 5: scanner.v1.ValidationIssue
	(*ValidationSummary)(nil),            // 6: scanner.v1.ValidationSummary
	(*Correction)(nil),                   // 7: scanner.v1.Correction
	(*UploadDocumentRequest)(nil),        // 8: scanner.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),       // 9: scanner.v1.UploadDocumentResponse
	(*GetResultsRequest)(nil),            // 10: scanner.v1.GetResultsRequest
	(*GetResultsResponse)(nil),           // 11: scanner.v1.GetResultsResponse
	(*SaveCorrectionRequest)(nil),        // 12: scanner.v1.SaveCorrectionRequest
	(*SaveCorrectionResponse)(nil),       // 13: scanner.v1.SaveCorrectionResponse
	(*GetHistoryRequest)(nil),            // 14: scanner.v1.GetHistoryRequest
	(*HistoryEntry)(nil),                 // 15: scanner.v1.HistoryEntry
	(*GetHistoryResponse)(nil),           // 16: scanner.v1.GetHistoryResponse
	(*ValidateDocumentRequest)(nil),      // 17: scanner.v1.ValidateDocumentRequest
	(*ValidateDocumentResponse)(nil),     // 18: scanner.v1.ValidateDocumentResponse
	(*GetValidationSummaryRequest)(nil),  // 19: scanner.v1.GetValidationSummaryRequest
	(*GetValidationSummaryResponse)(nil), // 20: scanner.v1.GetValidationSummaryResponse
	(*AcknowledgeIssueRequest)(nil),      // 21: scanner.v1.AcknowledgeIssueRequest
	(*AcknowledgeIssueResponse)(nil),     // 22: scanner.v1.AcknowledgeIssueResponse
	(*IngestFileRequest)(nil),            // 23: scanner.v1.IngestFileRequest
	(*IngestResponse)(nil),               // 24: scanner.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),       // 25: scanner.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),      // 26: scanner.v1.IngestDirectoryResponse
	(*ExportDocumentRequest)(nil),        // 27: scanner.v1.ExportDocumentRequest
	(*ExportDocumentResponse)(nil),       // 28: scanner.v1.ExportDocumentResponse
	nil,                                  // 29: scanner.v1.ValidationSummary.IssuesByTypeEntry
}
var file_scanner_v1_scanner_proto_depIdxs = []int32{
	29, // 0: scanner.v1.ValidationSummary.issues_by_type:type_name -> scanner.v1.ValidationSummary.IssuesByTypeEntry
	1,  // 1: scanner.v1.UploadDocumentResponse.document:type_name -> scanner.v1.Document
	1,  // 2: scanner.v1.GetResultsResponse.document:type_name -> scanner.v1.Document
	2,  // 3: scanner.v1.GetResultsResponse.extractions:type_name -> scanner.v1.Extraction
	3,  // 4: scanner.v1.GetResultsResponse.line_items:type_name -> scanner.v1.LineItem
	4,  // 5: scanner.v1.GetResultsResponse.details:type_name -> scanner.v1.ReceiptDetails
	5,  // 6: scanner.v1.GetResultsResponse.issues:type_name -> scanner.v1.ValidationIssue
	7,  // 7: scanner.v1.GetResultsResponse.corrections:type_name -> scanner.v1.Correction
	7,  // 8: scanner.v1.SaveCorrectionResponse.correction:type_name -> scanner.v1.Correction
	15, // 9: scanner.v1.GetHistoryResponse.entries:type_name -> scanner.v1.HistoryEntry
	5,  // 10: scanner.v1.ValidateDocumentResponse.issues:type_name -> scanner.v1.ValidationIssue
	6,  // 11: scanner.v1.GetValidationSummaryResponse.summary:type_name -> scanner.v1.ValidationSummary
	5,  // 12: scanner.v1.AcknowledgeIssueResponse.issue:type_name -> scanner.v1.ValidationIssue
	24, // 13: scanner.v1.IngestDirectoryResponse.results:type_name -> scanner.v1.IngestResponse
	0,  // 14: scanner.v1.ExportDocumentRequest.format:type_name -> scanner.v1.ExportFormat
	8,  // 15: scanner.v1.DocumentsService.UploadDocument:input_type -> scanner.v1.UploadDocumentRequest
	10, // 16: scanner.v1.DocumentsService.GetResults:input_type -> scanner.v1.GetResultsRequest
	12, // 17: scanner.v1.DocumentsService.SaveCorrection:input_type -> scanner.v1.SaveCorrectionRequest
	14, // 18: scanner.v1.DocumentsService.GetHistory:input_type -> scanner.v1.GetHistoryRequest
	17, // 19: scanner.v1.ValidationService.ValidateDocument:input_type -> scanner.v1.ValidateDocumentRequest
	19, // 20: scanner.v1.ValidationService.GetValidationSummary:input_type -> scanner.v1.GetValidationSummaryRequest
	21, // 21: scanner.v1.ValidationService.AcknowledgeIssue:input_type -> scanner.v1.AcknowledgeIssueRequest
	23, // 22: scanner.v1.IngestionService.IngestFile:input_type -> scanner.v1.IngestFileRequest
	25, // 23: scanner.v1.IngestionService.IngestDirectory:input_type -> scanner.v1.IngestDirectoryRequest
	27, // 24: scanner.v1.ExportService.ExportDocument:input_type -> scanner.v1.ExportDocumentRequest
	9,  // 25: scanner.v1.DocumentsService.UploadDocument:output_type -> scanner.v1.UploadDocumentResponse
	11, // 26: scanner.v1.DocumentsService.GetResults:output_type -> scanner.v1.GetResultsResponse
	13, // 27: scanner.v1.DocumentsService.SaveCorrection:output_type -> scanner.v1.SaveCorrectionResponse
	16, // 28: scanner.v1.DocumentsService.GetHistory:output_type -> scanner.v1.GetHistoryResponse
	18, // 29: scanner.v1.ValidationService.ValidateDocument:output_type -> scanner.v1.ValidateDocumentResponse
	20, // 30: scanner.v1.ValidationService.GetValidationSummary:output_type -> scanner.v1.GetValidationSummaryResponse
	22, // 31: scanner.v1.ValidationService.AcknowledgeIssue:output_type -> scanner.v1.AcknowledgeIssueResponse
	24, // 32: scanner.v1.IngestionService.IngestFile:output_type -> scanner.v1.IngestResponse
	26, // 33: scanner.v1.IngestionService.IngestDirectory:output_type -> scanner.v1.IngestDirectoryResponse
	28, // 34: scanner.v1.ExportService.ExportDocument:output_type -> scanner.v1.ExportDocumentResponse
	25, // [25:35] is the sub-list for method output_type
	15, // [15:25] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_scanner_v1_scanner_proto_init() }
func file_scanner_v1_scanner_proto_init() {
	if File_scanner_v1_scanner_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scanner_v1_scanner_proto_rawDesc), len(file_scanner_v1_scanner_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   29,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_scanner_v1_scanner_proto_goTypes,
		DependencyIndexes: file_scanner_v1_scanner_proto_depIdxs,
		EnumInfos:         file_scanner_v1_scanner_proto_enumTypes,
		MessageInfos:      file_scanner_v1_scanner_proto_msgTypes,
	}.Build()
	File_scanner_v1_scanner_proto = out.File
	file_scanner_v1_scanner_proto_goTypes = nil
	file_scanner_v1_scanner_proto_depIdxs = nil
}
