// Package diagnostics implements the structured error surface
// described in spec.md §7. It follows the teacher's
// diagnostics.NewError(code, token, msg) / DiagnosticError convention
// (seen in cmd/lsp/diagnostics.go) adapted to ast.Meta instead of a
// lexer token.
package diagnostics

import (
	"fmt"

	"github.com/vela-lang/velac/internal/ast"
)

// Code identifies the kind of diagnostic.
type Code string

const (
	// ErrUnsupportedForm: a reflective or intentionally-rejected
	// construct was encountered. Fatal.
	ErrUnsupportedForm Code = "E001"
	// ErrShapeMismatch: the AST did not match any known tag at a given
	// position. Fatal.
	ErrShapeMismatch Code = "E002"
	// ErrNameCollision: two modules with identical segment lists from
	// distinct sources. Fatal.
	ErrNameCollision Code = "E003"
	// ErrMacroExpansion: a macro-expansion failure propagated verbatim
	// from the expander collaborator. Fatal.
	ErrMacroExpansion Code = "E004"
	// InfoResolutionMiss: an unresolved bare identifier. Not fatal;
	// informational only, per spec.md §7.
	InfoResolutionMiss Code = "I001"
)

// Severity distinguishes fatal diagnostics from informational ones.
type Severity int

const (
	SeverityError Severity = iota
	SeverityInfo
)

func (c Code) severity() Severity {
	if c == InfoResolutionMiss {
		return SeverityInfo
	}
	return SeverityError
}

// DiagnosticError is both a reportable diagnostic and a Go error, so
// it can be returned directly from translator functions.
type DiagnosticError struct {
	Code     Code
	Severity Severity
	Meta     ast.Meta
	Message  string
}

func New(code Code, meta ast.Meta, message string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &DiagnosticError{Code: code, Severity: code.severity(), Meta: meta, Message: message}
}

func (d *DiagnosticError) Error() string {
	if d.Meta.File != "" {
		return fmt.Sprintf("%s: %s:%d:%d: %s", d.Code, d.Meta.File, d.Meta.Line, d.Meta.Column, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Unsupported builds the fixed error for a reflective form, per
// spec.md §4.1 dispatch rule 6 and §7.
func Unsupported(meta ast.Meta, name string) *DiagnosticError {
	return New(ErrUnsupportedForm, meta, "unsupported reflective form: %s", name)
}

// ShapeMismatch builds the fixed error for a malformed tagged form.
func ShapeMismatch(meta ast.Meta, tag string) *DiagnosticError {
	return New(ErrShapeMismatch, meta, "malformed %s form", tag)
}

// NameCollision builds the fixed error for two modules sharing a
// fully-qualified name, naming both sources per spec.md §7.
func NameCollision(meta ast.Meta, moduleName, firstSource, secondSource string) *DiagnosticError {
	return New(ErrNameCollision, meta, "module %q already defined in %s (redefined in %s)", moduleName, firstSource, secondSource)
}

// MacroExpansionFailure wraps a macro-expansion error verbatim.
func MacroExpansionFailure(meta ast.Meta, err error) *DiagnosticError {
	return New(ErrMacroExpansion, meta, "macro expansion failed: %v", err)
}

// ResolutionMiss builds the informational diagnostic for an
// unresolved bare identifier. It is never fatal.
func ResolutionMiss(meta ast.Meta, name string) *DiagnosticError {
	return New(InfoResolutionMiss, meta, "unresolved identifier %q left for late binding", name)
}
