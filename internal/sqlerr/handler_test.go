package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorNoRowsNamesEntity(t *testing.T) {
	err := HandleError(fmt.Errorf("loading: %w", NoRows("experiences")))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Experience not found", httpErr.Message)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "projects",
		ConstraintName: "projects_navlink_idx",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PROJECT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Project with this Navlink already exists", httpErr.Message)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewForbiddenError("Forbidden", true)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorHidesUnknownErrors(t *testing.T) {
	err := HandleError(errors.New("connection reset"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(NoRows("blogs")))
	assert.False(t, IsNoRows(errors.New("boom")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "navlink", extractColumnForUniqueViolation("unique_projects_navlink"))
	assert.Equal(t, "navlink", extractColumnForUniqueViolation("projects_navlink_idx"))
	assert.Equal(t, "", extractColumnForUniqueViolation("owners_pkey"))
}
