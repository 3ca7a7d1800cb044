package types

// ErrorKindDivisionByZero identifies a failed divide with a zero divisor.
const ErrorKindDivisionByZero = "division_by_zero"

// OperationResponse is the JSON payload returned by every arithmetic tool
type OperationResponse struct {
	Status    string `json:"status"`              // "success" or "error"
	Operation string `json:"operation"`           // Operation name (plus, minus, times, divide)
	A         string `json:"a"`                   // First operand as given by the caller
	B         string `json:"b"`                   // Second operand as given by the caller
	Result    string `json:"result,omitempty"`    // Exact result, integral values without a denominator
	ErrorKind string `json:"errorKind,omitempty"` // Machine-readable error kind on failure
	Error     string `json:"error,omitempty"`     // Human-readable error message on failure
}
