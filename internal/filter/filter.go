// Package filter implements the generic predicate engine applied to repository
// buckets. Predicates compose by conjunction, support nested field access with
// "/" and preserve record order.
package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/iancoleman/strcase"
)

// Operator is one comparison operation, canonically upper-snake.
type Operator string

const (
	OpEquals       Operator = "EQUALS"
	OpNotEquals    Operator = "NOT_EQUALS"
	OpLike         Operator = "LIKE"
	OpGreater      Operator = "GREATER"
	OpGreaterEqual Operator = "GREATER_EQUAL"
	OpLess         Operator = "LESS"
	OpLessEqual    Operator = "LESS_EQUAL"
)

// Operators returns every operator in its canonical order.
func Operators() []Operator {
	return []Operator{OpEquals, OpNotEquals, OpLike, OpGreater, OpGreaterEqual, OpLess, OpLessEqual}
}

// ParseOperator resolves an operator from its wire form, case-insensitively.
// NOT_EQUAL is accepted as an alias of NOT_EQUALS.
func ParseOperator(s string) (Operator, error) {
	canonical := strcase.ToScreamingSnake(strings.TrimSpace(s))
	if canonical == "NOT_EQUAL" {
		canonical = OpNotEquals.String()
	}

	for _, op := range Operators() {
		if canonical == op.String() {
			return op, nil
		}
	}

	return "", pkg.ValidateBusinessError(cn.ErrInvalidFilterOperator, "Filter", s)
}

// String returns the canonical form of the operator.
func (o Operator) String() string {
	return string(o)
}

// Filter is one predicate: field path, literal value and operator.
type Filter struct {
	Field    string
	Value    string
	Operator Operator
}

// FromInputs converts wire filters into predicates, validating operators.
func FromInputs(inputs []mmodel.FilterInput) ([]Filter, error) {
	filters := make([]Filter, 0, len(inputs))

	for _, in := range inputs {
		op, err := ParseOperator(in.Operator)
		if err != nil {
			return nil, err
		}

		filters = append(filters, Filter{
			Field:    in.FieldName,
			Value:    in.Value,
			Operator: op,
		})
	}

	return filters, nil
}

// Apply filters the records by conjunction of all predicates, preserving order.
// An empty filter list returns the input unchanged.
func Apply(records []mmodel.Entity, filters []Filter) []mmodel.Entity {
	if len(records) == 0 || len(filters) == 0 {
		return records
	}

	result := records

	for _, f := range filters {
		passed := make([]mmodel.Entity, 0, len(result))

		for _, record := range result {
			if Matches(record, f) {
				passed = append(passed, record)
			}
		}

		result = passed
	}

	return result
}

// Matches reports whether one record passes one predicate. A missing field or
// segment evaluates false, never errors.
func Matches(record mmodel.Entity, f Filter) bool {
	value, ok := resolvePath(record, f.Field)
	if !ok {
		return false
	}

	return compare(value, f.Value, f.Operator)
}

// Resolve walks a "/"-separated field path on a record. The second return
// reports whether every segment resolved.
func Resolve(record mmodel.Entity, path string) (any, bool) {
	return resolvePath(record, path)
}

// resolvePath walks the "/"-separated field path one segment at a time.
func resolvePath(v any, path string) (any, bool) {
	current := v

	for _, segment := range strings.Split(path, "/") {
		next, ok := resolveField(current, strcase.ToSnake(segment))
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// resolveField looks one field up in the per-kind descriptor table.
func resolveField(v any, name string) (any, bool) {
	switch e := v.(type) {
	case *mmodel.Group:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "name":
			return e.Name, true
		}
	case *mmodel.Unit:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "name":
			return e.Name, true
		case "factor":
			return e.Factor, true
		case "base":
			if e.Base == nil {
				return nil, false
			}

			return e.Base, true
		}
	case *mmodel.Item:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "name":
			return e.Name, true
		case "group":
			if e.Group == nil {
				return nil, false
			}

			return e.Group, true
		case "unit":
			if e.Unit == nil {
				return nil, false
			}

			return e.Unit, true
		}
	case *mmodel.Location:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "name":
			return e.Name, true
		case "address":
			return e.Address, true
		}
	case *mmodel.Movement:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "date":
			return e.Date, true
		case "quantity":
			return e.Quantity, true
		case "unit":
			return e.Unit, true
		case "item":
			if e.Item == nil {
				return nil, false
			}

			return e.Item, true
		case "location":
			if e.Location == nil {
				return nil, false
			}

			return e.Location, true
		}
	case *mmodel.Recipe:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "name":
			return e.Name, true
		case "cooking_time":
			return e.CookingTime, true
		case "portions":
			return e.Portions, true
		}
	case *mmodel.TurnoverRecord:
		switch name {
		case "unique_code":
			return e.UniqueCode, true
		case "nomenclature_id":
			return e.NomenclatureID, true
		case "storage_id":
			return e.StorageID, true
		case "period_end":
			return e.PeriodEnd, true
		case "debit_turnover":
			return e.DebitTurnover, true
		case "credit_turnover":
			return e.CreditTurnover, true
		case "calculated_at":
			return e.CalculatedAt, true
		}
	}

	return nil, false
}

// Fields lists the filterable field paths per bucket kind.
func Fields(kind string) []string {
	switch kind {
	case "group":
		return []string{"unique_code", "name"}
	case "unit":
		return []string{"unique_code", "name", "factor", "base/unique_code", "base/name"}
	case "item":
		return []string{"unique_code", "name", "group/unique_code", "group/name", "unit/unique_code", "unit/name"}
	case "location":
		return []string{"unique_code", "name", "address"}
	case "movement":
		return []string{"unique_code", "date", "quantity", "unit", "item/unique_code", "item/name", "location/unique_code", "location/name"}
	case "recipe":
		return []string{"unique_code", "name", "cooking_time", "portions"}
	case "turnover":
		return []string{"unique_code", "nomenclature_id", "storage_id", "period_end", "debit_turnover", "credit_turnover", "calculated_at"}
	default:
		return nil
	}
}

// Stringify renders a field value the way comparisons see it. Entities render
// as their unique code, instants as RFC 3339.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case mmodel.Entity:
		return t.Code()
	default:
		return ""
	}
}

// compare implements the operator semantics: string operations for equality and
// containment, numeric comparison with lexicographic fallback for the rest.
func compare(fieldValue any, filterValue string, op Operator) bool {
	fieldStr := Stringify(fieldValue)

	switch op {
	case OpEquals:
		return fieldStr == filterValue
	case OpNotEquals:
		return fieldStr != filterValue
	case OpLike:
		return strings.Contains(strings.ToLower(fieldStr), strings.ToLower(filterValue))
	}

	fieldNum, errField := strconv.ParseFloat(fieldStr, 64)
	filterNum, errFilter := strconv.ParseFloat(filterValue, 64)

	if errField == nil && errFilter == nil {
		switch op {
		case OpGreater:
			return fieldNum > filterNum
		case OpGreaterEqual:
			return fieldNum >= filterNum
		case OpLess:
			return fieldNum < filterNum
		case OpLessEqual:
			return fieldNum <= filterNum
		}
	}

	switch op {
	case OpGreater:
		return fieldStr > filterValue
	case OpGreaterEqual:
		return fieldStr >= filterValue
	case OpLess:
		return fieldStr < filterValue
	case OpLessEqual:
		return fieldStr <= filterValue
	}

	return false
}
