// Package serializer provides utilities for serializing data to various formats.
//
// The package supports four output formats:
//   - CSV: Row-oriented potion tables (the reference domain format)
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, data); err != nil {
//		log.Fatal(err)
//	}
//
// The package also reads the row-oriented ingredient table (see
// ReadIngredients) and handles:
//   - Buffering and padding of CSV potion rows for deterministic output
//   - Flattening nested structures for table format
//   - Resource cleanup via Close() method
package serializer

import "context"

// Serializer is an interface for serializing run results.
// Implementations of this interface can serialize data to various formats
// such as CSV, JSON, YAML, or plain text.
//
// The context parameter is used for cancellation and timeouts, particularly
// important for implementations that perform I/O operations.
type Serializer interface {
	Serialize(ctx context.Context, result any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// RecordMarshaler is implemented by types that can render themselves as a
// CSV record set. Types without this implementation cannot be serialized to
// FormatCSV.
type RecordMarshaler interface {
	MarshalRecords() (header []string, rows [][]string, err error)
}
