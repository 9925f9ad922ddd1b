package domain

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeDocument reads one JSON document from r. Field visibility flags that
// are absent from the payload keep their DefaultFieldVisibility values.
func DecodeDocument(r io.Reader) (InvoiceDocument, error) {
	doc := InvoiceDocument{FieldVisibility: DefaultFieldVisibility()}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return InvoiceDocument{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}
