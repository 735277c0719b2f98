// Code generated by ent, DO NOT EDIT.

package receiptdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldDocumentID, v))
}

// MerchantName applies equality check predicate on the "merchant_name" field. It's identical to MerchantNameEQ.
func MerchantName(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldMerchantName, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldLocation, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldPaymentMethod, v))
}

// TipAmount applies equality check predicate on the "tip_amount" field. It's identical to TipAmountEQ.
func TipAmount(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTipAmount, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldSubtotal, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTaxAmount, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTotalAmount, v))
}

// CashierName applies equality check predicate on the "cashier_name" field. It's identical to CashierNameEQ.
func CashierName(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldCashierName, v))
}

// TransactionTime applies equality check predicate on the "transaction_time" field. It's identical to TransactionTimeEQ.
func TransactionTime(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTransactionTime, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldCategory, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldDocumentID, vs...))
}

// MerchantNameEQ applies the EQ predicate on the "merchant_name" field.
func MerchantNameEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldMerchantName, v))
}

// MerchantNameNEQ applies the NEQ predicate on the "merchant_name" field.
func MerchantNameNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldMerchantName, v))
}

// MerchantNameIn applies the In predicate on the "merchant_name" field.
func MerchantNameIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldMerchantName, vs...))
}

// MerchantNameNotIn applies the NotIn predicate on the "merchant_name" field.
func MerchantNameNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldMerchantName, vs...))
}

// MerchantNameGT applies the GT predicate on the "merchant_name" field.
func MerchantNameGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldMerchantName, v))
}

// MerchantNameGTE applies the GTE predicate on the "merchant_name" field.
func MerchantNameGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldMerchantName, v))
}

// MerchantNameLT applies the LT predicate on the "merchant_name" field.
func MerchantNameLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldMerchantName, v))
}

// MerchantNameLTE applies the LTE predicate on the "merchant_name" field.
func MerchantNameLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldMerchantName, v))
}

// MerchantNameContains applies the Contains predicate on the "merchant_name" field.
func MerchantNameContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldMerchantName, v))
}

// MerchantNameHasPrefix applies the HasPrefix predicate on the "merchant_name" field.
func MerchantNameHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldMerchantName, v))
}

// MerchantNameHasSuffix applies the HasSuffix predicate on the "merchant_name" field.
func MerchantNameHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldMerchantName, v))
}

// MerchantNameIsNil applies the IsNil predicate on the "merchant_name" field.
func MerchantNameIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldMerchantName))
}

// MerchantNameNotNil applies the NotNil predicate on the "merchant_name" field.
func MerchantNameNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldMerchantName))
}

// MerchantNameEqualFold applies the EqualFold predicate on the "merchant_name" field.
func MerchantNameEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldMerchantName, v))
}

// MerchantNameContainsFold applies the ContainsFold predicate on the "merchant_name" field.
func MerchantNameContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldMerchantName, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldLocation, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// TipAmountEQ applies the EQ predicate on the "tip_amount" field.
func TipAmountEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTipAmount, v))
}

// TipAmountNEQ applies the NEQ predicate on the "tip_amount" field.
func TipAmountNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldTipAmount, v))
}

// TipAmountIn applies the In predicate on the "tip_amount" field.
func TipAmountIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldTipAmount, vs...))
}

// TipAmountNotIn applies the NotIn predicate on the "tip_amount" field.
func TipAmountNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldTipAmount, vs...))
}

// TipAmountGT applies the GT predicate on the "tip_amount" field.
func TipAmountGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldTipAmount, v))
}

// TipAmountGTE applies the GTE predicate on the "tip_amount" field.
func TipAmountGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldTipAmount, v))
}

// TipAmountLT applies the LT predicate on the "tip_amount" field.
func TipAmountLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldTipAmount, v))
}

// TipAmountLTE applies the LTE predicate on the "tip_amount" field.
func TipAmountLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldTipAmount, v))
}

// TipAmountContains applies the Contains predicate on the "tip_amount" field.
func TipAmountContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldTipAmount, v))
}

// TipAmountHasPrefix applies the HasPrefix predicate on the "tip_amount" field.
func TipAmountHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldTipAmount, v))
}

// TipAmountHasSuffix applies the HasSuffix predicate on the "tip_amount" field.
func TipAmountHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldTipAmount, v))
}

// TipAmountIsNil applies the IsNil predicate on the "tip_amount" field.
func TipAmountIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldTipAmount))
}

// TipAmountNotNil applies the NotNil predicate on the "tip_amount" field.
func TipAmountNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldTipAmount))
}

// TipAmountEqualFold applies the EqualFold predicate on the "tip_amount" field.
func TipAmountEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldTipAmount, v))
}

// TipAmountContainsFold applies the ContainsFold predicate on the "tip_amount" field.
func TipAmountContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldTipAmount, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalContains applies the Contains predicate on the "subtotal" field.
func SubtotalContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldSubtotal, v))
}

// SubtotalHasPrefix applies the HasPrefix predicate on the "subtotal" field.
func SubtotalHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldSubtotal, v))
}

// SubtotalHasSuffix applies the HasSuffix predicate on the "subtotal" field.
func SubtotalHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldSubtotal))
}

// SubtotalEqualFold applies the EqualFold predicate on the "subtotal" field.
func SubtotalEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldSubtotal, v))
}

// SubtotalContainsFold applies the ContainsFold predicate on the "subtotal" field.
func SubtotalContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldSubtotal, v))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountContains applies the Contains predicate on the "tax_amount" field.
func TaxAmountContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldTaxAmount, v))
}

// TaxAmountHasPrefix applies the HasPrefix predicate on the "tax_amount" field.
func TaxAmountHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldTaxAmount, v))
}

// TaxAmountHasSuffix applies the HasSuffix predicate on the "tax_amount" field.
func TaxAmountHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldTaxAmount))
}

// TaxAmountEqualFold applies the EqualFold predicate on the "tax_amount" field.
func TaxAmountEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldTaxAmount, v))
}

// TaxAmountContainsFold applies the ContainsFold predicate on the "tax_amount" field.
func TaxAmountContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldTaxAmount, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountContains applies the Contains predicate on the "total_amount" field.
func TotalAmountContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldTotalAmount, v))
}

// TotalAmountHasPrefix applies the HasPrefix predicate on the "total_amount" field.
func TotalAmountHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldTotalAmount, v))
}

// TotalAmountHasSuffix applies the HasSuffix predicate on the "total_amount" field.
func TotalAmountHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldTotalAmount))
}

// TotalAmountEqualFold applies the EqualFold predicate on the "total_amount" field.
func TotalAmountEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldTotalAmount, v))
}

// TotalAmountContainsFold applies the ContainsFold predicate on the "total_amount" field.
func TotalAmountContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldTotalAmount, v))
}

// CashierNameEQ applies the EQ predicate on the "cashier_name" field.
func CashierNameEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldCashierName, v))
}

// CashierNameNEQ applies the NEQ predicate on the "cashier_name" field.
func CashierNameNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldCashierName, v))
}

// CashierNameIn applies the In predicate on the "cashier_name" field.
func CashierNameIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldCashierName, vs...))
}

// CashierNameNotIn applies the NotIn predicate on the "cashier_name" field.
func CashierNameNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldCashierName, vs...))
}

// CashierNameGT applies the GT predicate on the "cashier_name" field.
func CashierNameGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldCashierName, v))
}

// CashierNameGTE applies the GTE predicate on the "cashier_name" field.
func CashierNameGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldCashierName, v))
}

// CashierNameLT applies the LT predicate on the "cashier_name" field.
func CashierNameLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldCashierName, v))
}

// CashierNameLTE applies the LTE predicate on the "cashier_name" field.
func CashierNameLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldCashierName, v))
}

// CashierNameContains applies the Contains predicate on the "cashier_name" field.
func CashierNameContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldCashierName, v))
}

// CashierNameHasPrefix applies the HasPrefix predicate on the "cashier_name" field.
func CashierNameHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldCashierName, v))
}

// CashierNameHasSuffix applies the HasSuffix predicate on the "cashier_name" field.
func CashierNameHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldCashierName, v))
}

// CashierNameIsNil applies the IsNil predicate on the "cashier_name" field.
func CashierNameIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldCashierName))
}

// CashierNameNotNil applies the NotNil predicate on the "cashier_name" field.
func CashierNameNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldCashierName))
}

// CashierNameEqualFold applies the EqualFold predicate on the "cashier_name" field.
func CashierNameEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldCashierName, v))
}

// CashierNameContainsFold applies the ContainsFold predicate on the "cashier_name" field.
func CashierNameContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldCashierName, v))
}

// TransactionTimeEQ applies the EQ predicate on the "transaction_time" field.
func TransactionTimeEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldTransactionTime, v))
}

// TransactionTimeNEQ applies the NEQ predicate on the "transaction_time" field.
func TransactionTimeNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldTransactionTime, v))
}

// TransactionTimeIn applies the In predicate on the "transaction_time" field.
func TransactionTimeIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldTransactionTime, vs...))
}

// TransactionTimeNotIn applies the NotIn predicate on the "transaction_time" field.
func TransactionTimeNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldTransactionTime, vs...))
}

// TransactionTimeGT applies the GT predicate on the "transaction_time" field.
func TransactionTimeGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldTransactionTime, v))
}

// TransactionTimeGTE applies the GTE predicate on the "transaction_time" field.
func TransactionTimeGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldTransactionTime, v))
}

// TransactionTimeLT applies the LT predicate on the "transaction_time" field.
func TransactionTimeLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldTransactionTime, v))
}

// TransactionTimeLTE applies the LTE predicate on the "transaction_time" field.
func TransactionTimeLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldTransactionTime, v))
}

// TransactionTimeContains applies the Contains predicate on the "transaction_time" field.
func TransactionTimeContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldTransactionTime, v))
}

// TransactionTimeHasPrefix applies the HasPrefix predicate on the "transaction_time" field.
func TransactionTimeHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldTransactionTime, v))
}

// TransactionTimeHasSuffix applies the HasSuffix predicate on the "transaction_time" field.
func TransactionTimeHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldTransactionTime, v))
}

// TransactionTimeIsNil applies the IsNil predicate on the "transaction_time" field.
func TransactionTimeIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldTransactionTime))
}

// TransactionTimeNotNil applies the NotNil predicate on the "transaction_time" field.
func TransactionTimeNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldTransactionTime))
}

// TransactionTimeEqualFold applies the EqualFold predicate on the "transaction_time" field.
func TransactionTimeEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldTransactionTime, v))
}

// TransactionTimeContainsFold applies the ContainsFold predicate on the "transaction_time" field.
func TransactionTimeContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldTransactionTime, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.FieldContainsFold(FieldCategory, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ReceiptDetail {
	return predicate.ReceiptDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptDetail) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptDetail) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptDetail) predicate.ReceiptDetail {
	return predicate.ReceiptDetail(sql.NotPredicates(p))
}
