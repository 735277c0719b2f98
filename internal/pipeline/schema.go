package pipeline

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a serialized extraction Result. Results are checked
// against it before the persistence collaborator stores them.
func BuildResultJSONSchema(allowedTypes []string) map[string]any {
	fieldProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":      map[string]any{"type": []string{"string", "null"}},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"value", "confidence"},
	}

	lineItemProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"item_name":   map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number"},
			"unit_price":  map[string]any{"type": "number"},
			"total_price": map[string]any{"type": "number"},
		},
		"required": []string{"item_name", "quantity", "unit_price", "total_price"},
	}

	nullableString := map[string]any{"type": []string{"string", "null"}}
	detailsProp := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"document_id":      map[string]any{"type": "string"},
			"merchant_name":    nullableString,
			"location":         nullableString,
			"payment_method":   nullableString,
			"tip_amount":       nullableString,
			"subtotal":         nullableString,
			"tax_amount":       nullableString,
			"total_amount":     nullableString,
			"cashier_name":     nullableString,
			"transaction_time": nullableString,
			"category":         nullableString,
		},
	}

	classificationProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"document_type": map[string]any{"type": "string", "enum": allowedTypes},
			"confidence":    map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"document_type", "confidence"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"classification": classificationProp,
			"fields": map[string]any{
				"type":                 "object",
				"additionalProperties": fieldProp,
			},
			"line_items": map[string]any{"type": "array", "items": lineItemProp},
			"details":    detailsProp,
		},
		"required": []string{"classification", "fields"},
	}
}
