package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	status, msg := TranslateError(NotFound("No job with id 42"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No job with id 42", msg)

	status, msg = TranslateError(fmt.Errorf("creating user: %w", repository.ErrDuplicateEmail))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, MsgDuplicateEmail, msg)

	status, msg = TranslateError(errors.New("connection refused on 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, MsgInternal, msg)
}

func TestValidationMessages(t *testing.T) {
	err := Validate(models.RegisterInput{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	status, msg := TranslateError(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide a valid email, password must be at least 6 characters, Please provide name", msg)
}

func TestValidateJobEnums(t *testing.T) {
	assert.NoError(t, Validate(models.JobInput{Company: "Acme", Position: "Dev"}))
	assert.NoError(t, Validate(models.JobInput{Company: "Acme", Position: "Dev", Status: models.StatusInterview}))
	assert.Error(t, Validate(models.JobInput{Company: "Acme", Position: "Dev", Status: "hired"}))

	bad := models.JobType("contract")
	assert.Error(t, Validate(models.JobUpdate{JobType: &bad}))
	assert.NoError(t, Validate(models.JobUpdate{}))
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, Unauthenticated(MsgAuthInvalid))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, MsgAuthInvalid, body.Msg)
}
