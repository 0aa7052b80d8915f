// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedInput,
//	    "ingredient row missing identifier",
//	    cause,
//	    map[string]interface{}{
//	        "file": path,
//	        "row":  rowNum,
//	    },
//	)
package errors
