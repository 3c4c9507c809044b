package artifacts

import "strings"

// Training data labels roles either plainly ("Data Analyst") or with a
// variant suffix ("Data Analyst_select"). RawLabel decodes that convention
// once at the boundary so the rest of the pipeline works with plain role
// names.
type RoleVariant int

const (
	VariantNone RoleVariant = iota
	VariantSelect
	VariantReject
)

type RawLabel struct {
	Role    string
	Variant RoleVariant
}

// ParseRawLabel splits the last underscore-delimited segment off a class
// label. Labels without an underscore are already plain, so parsing is
// idempotent on normalized names.
func ParseRawLabel(label string) RawLabel {
	idx := strings.LastIndex(label, "_")
	if idx < 0 {
		return RawLabel{Role: label, Variant: VariantNone}
	}

	parsed := RawLabel{Role: label[:idx]}
	switch strings.ToLower(label[idx+1:]) {
	case "select":
		parsed.Variant = VariantSelect
	case "reject":
		parsed.Variant = VariantReject
	default:
		parsed.Variant = VariantNone
	}
	return parsed
}

// NormalizeRole returns the plain role name for a raw class label.
func NormalizeRole(label string) string {
	return ParseRawLabel(label).Role
}
