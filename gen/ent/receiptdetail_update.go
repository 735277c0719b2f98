// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
)

// ReceiptDetailUpdate is the builder for updating ReceiptDetail entities.
type ReceiptDetailUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptDetailMutation
}

// Where appends a list predicates to the ReceiptDetailUpdate builder.
func (_u *ReceiptDetailUpdate) Where(ps ...predicate.ReceiptDetail) *ReceiptDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptDetailUpdate) SetDocumentID(v uuid.UUID) *ReceiptDetailUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableDocumentID(v *uuid.UUID) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptDetailUpdate) SetMerchantName(v string) *ReceiptDetailUpdate {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableMerchantName(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (_u *ReceiptDetailUpdate) ClearMerchantName() *ReceiptDetailUpdate {
	_u.mutation.ClearMerchantName()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ReceiptDetailUpdate) SetLocation(v string) *ReceiptDetailUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableLocation(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ReceiptDetailUpdate) ClearLocation() *ReceiptDetailUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptDetailUpdate) SetPaymentMethod(v string) *ReceiptDetailUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillablePaymentMethod(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptDetailUpdate) ClearPaymentMethod() *ReceiptDetailUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetTipAmount sets the "tip_amount" field.
func (_u *ReceiptDetailUpdate) SetTipAmount(v string) *ReceiptDetailUpdate {
	_u.mutation.SetTipAmount(v)
	return _u
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableTipAmount(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetTipAmount(*v)
	}
	return _u
}

// ClearTipAmount clears the value of the "tip_amount" field.
func (_u *ReceiptDetailUpdate) ClearTipAmount() *ReceiptDetailUpdate {
	_u.mutation.ClearTipAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptDetailUpdate) SetSubtotal(v string) *ReceiptDetailUpdate {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableSubtotal(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptDetailUpdate) ClearSubtotal() *ReceiptDetailUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptDetailUpdate) SetTaxAmount(v string) *ReceiptDetailUpdate {
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableTaxAmount(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptDetailUpdate) ClearTaxAmount() *ReceiptDetailUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptDetailUpdate) SetTotalAmount(v string) *ReceiptDetailUpdate {
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableTotalAmount(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptDetailUpdate) ClearTotalAmount() *ReceiptDetailUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCashierName sets the "cashier_name" field.
func (_u *ReceiptDetailUpdate) SetCashierName(v string) *ReceiptDetailUpdate {
	_u.mutation.SetCashierName(v)
	return _u
}

// SetNillableCashierName sets the "cashier_name" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableCashierName(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetCashierName(*v)
	}
	return _u
}

// ClearCashierName clears the value of the "cashier_name" field.
func (_u *ReceiptDetailUpdate) ClearCashierName() *ReceiptDetailUpdate {
	_u.mutation.ClearCashierName()
	return _u
}

// SetTransactionTime sets the "transaction_time" field.
func (_u *ReceiptDetailUpdate) SetTransactionTime(v string) *ReceiptDetailUpdate {
	_u.mutation.SetTransactionTime(v)
	return _u
}

// SetNillableTransactionTime sets the "transaction_time" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableTransactionTime(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetTransactionTime(*v)
	}
	return _u
}

// ClearTransactionTime clears the value of the "transaction_time" field.
func (_u *ReceiptDetailUpdate) ClearTransactionTime() *ReceiptDetailUpdate {
	_u.mutation.ClearTransactionTime()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptDetailUpdate) SetCategory(v string) *ReceiptDetailUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptDetailUpdate) SetNillableCategory(v *string) *ReceiptDetailUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptDetailUpdate) ClearCategory() *ReceiptDetailUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptDetailUpdate) SetDocument(v *Document) *ReceiptDetailUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptDetailMutation object of the builder.
func (_u *ReceiptDetailUpdate) Mutation() *ReceiptDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptDetailUpdate) ClearDocument() *ReceiptDetailUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptDetailUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptDetail.document"`)
	}
	return nil
}

func (_u *ReceiptDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptdetail.Table, receiptdetail.Columns, sqlgraph.NewFieldSpec(receiptdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receiptdetail.FieldMerchantName, field.TypeString, value)
	}
	if _u.mutation.MerchantNameCleared() {
		_spec.ClearField(receiptdetail.FieldMerchantName, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(receiptdetail.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(receiptdetail.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receiptdetail.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receiptdetail.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TipAmount(); ok {
		_spec.SetField(receiptdetail.FieldTipAmount, field.TypeString, value)
	}
	if _u.mutation.TipAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTipAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receiptdetail.FieldSubtotal, field.TypeString, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receiptdetail.FieldSubtotal, field.TypeString)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receiptdetail.FieldTaxAmount, field.TypeString, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTaxAmount, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receiptdetail.FieldTotalAmount, field.TypeString, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CashierName(); ok {
		_spec.SetField(receiptdetail.FieldCashierName, field.TypeString, value)
	}
	if _u.mutation.CashierNameCleared() {
		_spec.ClearField(receiptdetail.FieldCashierName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionTime(); ok {
		_spec.SetField(receiptdetail.FieldTransactionTime, field.TypeString, value)
	}
	if _u.mutation.TransactionTimeCleared() {
		_spec.ClearField(receiptdetail.FieldTransactionTime, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receiptdetail.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receiptdetail.FieldCategory, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receiptdetail.DocumentTable,
			Columns: []string{receiptdetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receiptdetail.DocumentTable,
			Columns: []string{receiptdetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptDetailUpdateOne is the builder for updating a single ReceiptDetail entity.
type ReceiptDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptDetailMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptDetailUpdateOne) SetDocumentID(v uuid.UUID) *ReceiptDetailUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptDetailUpdateOne) SetMerchantName(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableMerchantName(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (_u *ReceiptDetailUpdateOne) ClearMerchantName() *ReceiptDetailUpdateOne {
	_u.mutation.ClearMerchantName()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ReceiptDetailUpdateOne) SetLocation(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableLocation(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ReceiptDetailUpdateOne) ClearLocation() *ReceiptDetailUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptDetailUpdateOne) SetPaymentMethod(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillablePaymentMethod(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptDetailUpdateOne) ClearPaymentMethod() *ReceiptDetailUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetTipAmount sets the "tip_amount" field.
func (_u *ReceiptDetailUpdateOne) SetTipAmount(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetTipAmount(v)
	return _u
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableTipAmount(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetTipAmount(*v)
	}
	return _u
}

// ClearTipAmount clears the value of the "tip_amount" field.
func (_u *ReceiptDetailUpdateOne) ClearTipAmount() *ReceiptDetailUpdateOne {
	_u.mutation.ClearTipAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptDetailUpdateOne) SetSubtotal(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableSubtotal(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptDetailUpdateOne) ClearSubtotal() *ReceiptDetailUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptDetailUpdateOne) SetTaxAmount(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableTaxAmount(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptDetailUpdateOne) ClearTaxAmount() *ReceiptDetailUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptDetailUpdateOne) SetTotalAmount(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableTotalAmount(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptDetailUpdateOne) ClearTotalAmount() *ReceiptDetailUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCashierName sets the "cashier_name" field.
func (_u *ReceiptDetailUpdateOne) SetCashierName(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetCashierName(v)
	return _u
}

// SetNillableCashierName sets the "cashier_name" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableCashierName(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetCashierName(*v)
	}
	return _u
}

// ClearCashierName clears the value of the "cashier_name" field.
func (_u *ReceiptDetailUpdateOne) ClearCashierName() *ReceiptDetailUpdateOne {
	_u.mutation.ClearCashierName()
	return _u
}

// SetTransactionTime sets the "transaction_time" field.
func (_u *ReceiptDetailUpdateOne) SetTransactionTime(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetTransactionTime(v)
	return _u
}

// SetNillableTransactionTime sets the "transaction_time" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableTransactionTime(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetTransactionTime(*v)
	}
	return _u
}

// ClearTransactionTime clears the value of the "transaction_time" field.
func (_u *ReceiptDetailUpdateOne) ClearTransactionTime() *ReceiptDetailUpdateOne {
	_u.mutation.ClearTransactionTime()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptDetailUpdateOne) SetCategory(v string) *ReceiptDetailUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptDetailUpdateOne) SetNillableCategory(v *string) *ReceiptDetailUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptDetailUpdateOne) ClearCategory() *ReceiptDetailUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptDetailUpdateOne) SetDocument(v *Document) *ReceiptDetailUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptDetailMutation object of the builder.
func (_u *ReceiptDetailUpdateOne) Mutation() *ReceiptDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptDetailUpdateOne) ClearDocument() *ReceiptDetailUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ReceiptDetailUpdate builder.
func (_u *ReceiptDetailUpdateOne) Where(ps ...predicate.ReceiptDetail) *ReceiptDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptDetailUpdateOne) Select(field string, fields ...string) *ReceiptDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptDetail entity.
func (_u *ReceiptDetailUpdateOne) Save(ctx context.Context) (*ReceiptDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptDetailUpdateOne) SaveX(ctx context.Context) *ReceiptDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptDetailUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptDetail.document"`)
	}
	return nil
}

func (_u *ReceiptDetailUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptdetail.Table, receiptdetail.Columns, sqlgraph.NewFieldSpec(receiptdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptdetail.FieldID)
		for _, f := range fields {
			if !receiptdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptdetail.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receiptdetail.FieldMerchantName, field.TypeString, value)
	}
	if _u.mutation.MerchantNameCleared() {
		_spec.ClearField(receiptdetail.FieldMerchantName, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(receiptdetail.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(receiptdetail.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receiptdetail.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receiptdetail.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TipAmount(); ok {
		_spec.SetField(receiptdetail.FieldTipAmount, field.TypeString, value)
	}
	if _u.mutation.TipAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTipAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receiptdetail.FieldSubtotal, field.TypeString, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receiptdetail.FieldSubtotal, field.TypeString)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receiptdetail.FieldTaxAmount, field.TypeString, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTaxAmount, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receiptdetail.FieldTotalAmount, field.TypeString, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receiptdetail.FieldTotalAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CashierName(); ok {
		_spec.SetField(receiptdetail.FieldCashierName, field.TypeString, value)
	}
	if _u.mutation.CashierNameCleared() {
		_spec.ClearField(receiptdetail.FieldCashierName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionTime(); ok {
		_spec.SetField(receiptdetail.FieldTransactionTime, field.TypeString, value)
	}
	if _u.mutation.TransactionTimeCleared() {
		_spec.ClearField(receiptdetail.FieldTransactionTime, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receiptdetail.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receiptdetail.FieldCategory, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receiptdetail.DocumentTable,
			Columns: []string{receiptdetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receiptdetail.DocumentTable,
			Columns: []string{receiptdetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
