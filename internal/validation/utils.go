package validation

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/labstack/echo/v4"
)

// IDBound is implemented by payloads addressed by an id path parameter.
// IDParam names the parameter and the resource kind used in the error message.
type IDBound interface {
	IDParam() (param string, kind string)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) IDBound payloads: the path id must be a UUID ("Invalid <kind> ID")
// 2) SchemaBound payloads: the raw body is checked against the resource schema
// 3) c.Bind(payload) populates the struct from path params and body
// 4) payload.Validate() applies struct-level rules
//
// Every failure is a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if p, ok := payload.(IDBound); ok {
		param, kind := p.IDParam()
		if !IsValidUUID(c.Param(param)) {
			return errs.NewBadRequestError(fmt.Sprintf("Invalid %s ID", kind), true, nil, nil)
		}
	}

	if p, ok := payload.(SchemaBound); ok {
		body, err := peekBody(c)
		if err != nil {
			return errs.NewBadRequestError(MsgInvalidBody, true, nil, nil)
		}

		name, mode := p.Schema()
		if err := ValidateDocument(name, mode, body); err != nil {
			return err
		}
	}

	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(MsgInvalidBody, true, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// peekBody reads the request body and puts it back for c.Bind.
func peekBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format.
//
// Note: This validates format only. It does not validate UUID version/variant semantics.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
