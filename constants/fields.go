package constants

// FieldName identifies one of the four extracted receipt fields.
type FieldName string

const (
	FieldDate   FieldName = "date"
	FieldPayee  FieldName = "payee"
	FieldAmount FieldName = "amount"
	FieldUsage  FieldName = "usage"
)

var allFields = []FieldName{FieldDate, FieldPayee, FieldAmount, FieldUsage}

// IsFieldName reports whether s names a known receipt field.
func IsFieldName(s string) bool {
	for _, f := range allFields {
		if s == string(f) {
			return true
		}
	}
	return false
}

func FieldNames() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}
