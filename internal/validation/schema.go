package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"math/big"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/xeipuuv/gojsonschema"
)

// Mode selects how a resource schema is applied.
type Mode int

const (
	// ModeCreate requires every field listed in the schema.
	ModeCreate Mode = iota
	// ModePartial drops the top-level required list: absent fields are fine,
	// present fields must still have the right shape.
	ModePartial
)

func (m Mode) String() string {
	if m == ModePartial {
		return "partial"
	}
	return "create"
}

// SchemaBound is implemented by payloads whose body is checked against an
// embedded JSON schema before binding.
type SchemaBound interface {
	Schema() (name string, mode Mode)
}

const (
	MsgNoValidFields  = "No valid fields provided to update"
	MsgInvalidBody    = "Invalid request body"
	MsgMissingFields  = "Missing required fields: "
	MsgValidationFail = "Validation failed"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

type resourceSchema struct {
	create   *gojsonschema.Schema
	partial  *gojsonschema.Schema
	required []string
	known    map[string]struct{}
}

var (
	schemasOnce sync.Once
	schemas     map[string]*resourceSchema
	schemasErr  error
)

func init() {
	gojsonschema.FormatCheckers.Add("nonblank", nonBlankChecker{})
}

// nonBlankChecker rejects strings that are empty after trimming.
type nonBlankChecker struct{}

func (nonBlankChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	return strings.TrimSpace(s) != ""
}

func loadSchemas() (map[string]*resourceSchema, error) {
	schemasOnce.Do(func() {
		entries, err := schemaFiles.ReadDir("schemas")
		if err != nil {
			schemasErr = err
			return
		}

		loaded := make(map[string]*resourceSchema, len(entries))
		for _, entry := range entries {
			name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

			raw, err := schemaFiles.ReadFile("schemas/" + entry.Name())
			if err != nil {
				schemasErr = err
				return
			}

			rs, err := compileSchema(raw)
			if err != nil {
				schemasErr = fmt.Errorf("schema %s: %w", name, err)
				return
			}
			loaded[name] = rs
		}
		schemas = loaded
	})
	return schemas, schemasErr
}

func compileSchema(raw []byte) (*resourceSchema, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	create, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}

	rs := &resourceSchema{create: create, known: map[string]struct{}{}}

	if required, ok := doc["required"].([]any); ok {
		for _, field := range required {
			rs.required = append(rs.required, field.(string))
		}
	}
	if props, ok := doc["properties"].(map[string]any); ok {
		for field := range props {
			rs.known[field] = struct{}{}
		}
	}

	delete(doc, "required")
	partialRaw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	rs.partial, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(partialRaw))
	if err != nil {
		return nil, err
	}

	return rs, nil
}

// ValidateDocument checks a raw JSON body against the named resource schema.
//
// It returns nil or a 400 *errs.HTTPError:
//   - create mode, fields absent, null or blank: "Missing required fields: a, b"
//     listing them in schema order
//   - partial mode with no known field: "No valid fields provided to update"
//   - any other violation: "Validation failed" with one FieldError per problem
func ValidateDocument(name string, mode Mode, body []byte) error {
	all, err := loadSchemas()
	if err != nil {
		return fmt.Errorf("loading schemas: %w", err)
	}
	rs, ok := all[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	doc := map[string]any{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
			return errs.NewBadRequestError(MsgInvalidBody, true, nil, nil)
		}
	}

	schema := rs.create
	if mode == ModePartial {
		if !rs.hasKnownField(doc) {
			return errs.NewBadRequestError(MsgNoValidFields, true, nil, nil)
		}
		schema = rs.partial
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating %s document: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	missing := map[string]bool{}
	var violations []errs.FieldError

	for _, resultErr := range result.Errors() {
		field := fieldPath(resultErr)

		if mode == ModeCreate && isTopLevel(field) && isMissing(resultErr, doc, field) {
			missing[field] = true
			continue
		}

		violations = append(violations, errs.FieldError{
			Field: field,
			Error: reason(resultErr),
		})
	}

	if len(missing) > 0 {
		var names []string
		var fieldErrors []errs.FieldError
		for _, field := range rs.required {
			if missing[field] {
				names = append(names, field)
				fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: "is required"})
			}
		}
		return errs.NewBadRequestError(MsgMissingFields+strings.Join(names, ", "), true, nil, fieldErrors)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})

	return errs.NewBadRequestError(MsgValidationFail, true, nil, violations)
}

func (rs *resourceSchema) hasKnownField(doc map[string]any) bool {
	for field := range doc {
		if _, ok := rs.known[field]; ok {
			return true
		}
	}
	return false
}

// fieldPath renders the offending field as "images.2" or "tags.0.topic".
func fieldPath(resultErr gojsonschema.ResultError) string {
	field := resultErr.Field()
	if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		field = ""
	}

	if resultErr.Type() == "required" {
		property, _ := resultErr.Details()["property"].(string)
		switch {
		case property == "":
		case field == "":
			field = property
		case field != property && !strings.HasSuffix(field, "."+property):
			field = field + "." + property
		}
	}

	return field
}

func isTopLevel(field string) bool {
	return field != "" && !strings.Contains(field, ".")
}

// isMissing treats absent, null and blank top-level values alike on create.
func isMissing(resultErr gojsonschema.ResultError, doc map[string]any, field string) bool {
	if resultErr.Type() == "required" {
		return true
	}

	value, present := doc[field]
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

func reason(resultErr gojsonschema.ResultError) string {
	details := resultErr.Details()

	switch resultErr.Type() {
	case "required":
		return "is required"

	case "invalid_type":
		expected := fmt.Sprint(details["expected"])
		switch expected {
		case "array", "object", "integer":
			return "must be an " + expected
		default:
			return "must be a " + expected
		}

	case "array_min_items":
		if formatDetail(details["min"]) == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must contain at least %s items", formatDetail(details["min"]))

	case "array_max_items":
		return fmt.Sprintf("must contain at most %s items", formatDetail(details["max"]))

	case "format":
		switch details["format"] {
		case "nonblank":
			return "cannot be empty"
		case "uri":
			return "must be a valid URL"
		default:
			return fmt.Sprintf("must be a valid %v", details["format"])
		}

	case "number_gte":
		return fmt.Sprintf("must be at least %s", formatDetail(details["min"]))

	case "number_lte":
		return fmt.Sprintf("cannot exceed %s", formatDetail(details["max"]))

	default:
		return resultErr.Description()
	}
}

// formatDetail prints a bound from the error details. Numeric bounds may
// arrive as *big.Rat.
func formatDetail(v any) string {
	if r, ok := v.(*big.Rat); ok {
		if r.IsInt() {
			return r.Num().String()
		}
		return strings.TrimRight(r.FloatString(4), "0")
	}
	return fmt.Sprint(v)
}
