package diag

import "github.com/hodevin/decaf/internal/source"

func New(sev Severity, code Code, primary source.Position, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Position, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Position, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}
