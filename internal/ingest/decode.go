package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/receiptlens/extractor/internal/entity"
)

// DecodeOCRResults validates data against the OCR results schema and
// unmarshals it into fragments. Malformed documents are rejected here so
// the extractors only ever see well-formed input.
func DecodeOCRResults(data []byte) ([]entity.OCRResult, error) {
	if err := validateAgainstSchema(BuildOCRResultsJSONSchema(), data); err != nil {
		return nil, err
	}
	var fragments []entity.OCRResult
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("unmarshal ocr results: %w", err)
	}
	return fragments, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
