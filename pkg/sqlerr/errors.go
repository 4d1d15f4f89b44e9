// Package sqlerr translates failures raised at the SQLite call boundary into
// a closed error taxonomy: EngineError for failures carrying an engine result
// code, HostError for everything else.
package sqlerr

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Unknown is the sentinel used for any diagnostic field that is missing
const Unknown = "UNKNOWN"

// Kind distinguishes the two error variants
type Kind string

const (
	KindEngine Kind = "Engine"
	KindHost   Kind = "Host"
)

// Error is implemented only by *EngineError and *HostError
type Error interface {
	error
	Kind() Kind
	// Ident returns the result code of an EngineError or the name of a HostError
	Ident() string
	// Text returns the diagnostic message
	Text() string

	sealed()
}

// EngineError is a failure reported by the engine with a result code
type EngineError struct {
	Code    Code
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EngineError) Kind() Kind { return KindEngine }
func (e *EngineError) Ident() string { return string(e.Code) }
func (e *EngineError) Text() string { return e.Message }
func (e *EngineError) sealed() {}
func (e *EngineError) MarshalJSON() ([]byte, error) {
	return marshal(e)
}

// HostError is a failure that could not be classified against the engine's
// result codes, such as I/O trouble in the host or misuse of the API
type HostError struct {
	Name    string
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *HostError) Kind() Kind { return KindHost }
func (e *HostError) Ident() string { return e.Name }
func (e *HostError) Text() string { return e.Message }
func (e *HostError) sealed() {}
func (e *HostError) MarshalJSON() ([]byte, error) {
	return marshal(e)
}

type wireError struct {
	Kind       Kind   `json:"kind"`
	CodeOrName string `json:"code_or_name"`
	Message    string `json:"message"`
}

func marshal(e Error) ([]byte, error) {
	return json.Marshal(wireError{
		Kind:       e.Kind(),
		CodeOrName: e.Ident(),
		Message:    e.Text(),
	})
}

// Failure is a raw failure signal observed at a native call site, before
// translation. Any field may be empty.
type Failure struct {
	Name    string
	Code    string
	Message string
}

func (f *Failure) Error() string {
	switch {
	case f.Code != "":
		return fmt.Sprintf("%s: %s", f.Code, f.Message)
	case f.Name != "":
		return fmt.Sprintf("%s: %s", f.Name, f.Message)
	}
	return f.Message
}

// Misuse builds the failure raised when the API is used against its contract,
// for instance on a closed connection
func Misuse(message string) *Failure {
	return &Failure{Name: "TypeError", Code: string(CodeMisuse), Message: message}
}

// RangeError builds a failure for argument values the boundary rejects
// before calling the engine
func RangeError(message string) *Failure {
	return &Failure{Name: "RangeError", Message: message}
}

// TypeError builds a failure for argument combinations the boundary rejects
// before calling the engine
func TypeError(message string) *Failure {
	return &Failure{Name: "TypeError", Message: message}
}
