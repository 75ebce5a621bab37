package schemaimport

import "fmt"

// ErrorKind tags the fatal error conditions this package can surface.
type ErrorKind int

const (
	// MalformedImport means an import directive's regex mismatched, its
	// path was missing, or its name list was empty.
	MalformedImport ErrorKind = iota
	// MissingFieldType means a field's named type was neither built-in nor
	// resolvable from any visited source.
	MissingFieldType
	// MissingInterface means an object's `implements X` named an
	// unresolved interface.
	MissingInterface
	// MissingUnionMember means a union listed an unresolved member type.
	MissingUnionMember
	// MissingDirective means a directive application named an unknown
	// directive.
	MissingDirective
	// SourceReadFailure means a filesystem read failed and could not be
	// recovered via module lookup.
	SourceReadFailure
	// AstParseFailure means the underlying SDL parser rejected the input.
	AstParseFailure
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedImport:
		return "MalformedImport"
	case MissingFieldType:
		return "MissingFieldType"
	case MissingInterface:
		return "MissingInterface"
	case MissingUnionMember:
		return "MissingUnionMember"
	case MissingDirective:
		return "MissingDirective"
	case SourceReadFailure:
		return "SourceReadFailure"
	case AstParseFailure:
		return "AstParseFailure"
	default:
		return "Unknown"
	}
}

// SchemaError is a fatal error produced while importing or closing a
// schema. There is no partial success: the first SchemaError aborts the
// whole top-level call.
type SchemaError struct {
	Kind    ErrorKind
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

func newSchemaError(kind ErrorKind, format string, args ...any) *SchemaError {
	return &SchemaError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func missingFieldTypeErr(fieldName, typeName string) *SchemaError {
	return newSchemaError(MissingFieldType, "Field %s: Couldn't find type %s in any of the schemas.", fieldName, typeName)
}

func missingInterfaceErr(name string) *SchemaError {
	return newSchemaError(MissingInterface, "Couldn't find interface %s in any of the schemas.", name)
}

func missingUnionMemberErr(name string) *SchemaError {
	return newSchemaError(MissingUnionMember, "Couldn't find type %s in any of the schemas.", name)
}

func missingDirectiveErr(name string) *SchemaError {
	return newSchemaError(MissingDirective, "Directive %s: Couldn't find type %s in any of the schemas.", name, name)
}
