package zoho

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShubhanginiSharma627/e-sign-app/config"
	"github.com/ShubhanginiSharma627/e-sign-app/core"
)

const createResponseFixture = `{"requests":{"request_id":"R1","document_ids":[{"document_id":"D1"}],"actions":[{"action_type":"VIEW","action_id":"A0"},{"action_type":"SIGN","action_id":"A1"}]}}`

func newSignClientForTest(signURL string) *SignClient {
	return NewSignClient(config.ZohoConfig{SignURL: signURL}, testLogger())
}

func TestSubmitTwoPhaseSuccess(t *testing.T) {
	document := []byte("%PDF-1.4 fake")

	var submitCalls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/requests", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Zoho-oauthtoken tok-1", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "sample.pdf", header.Filename)
		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, document, uploaded)

		var meta createRequestData
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &meta))
		assert.Equal(t, "Sample E-sign", meta.Requests.RequestName)
		assert.True(t, meta.Requests.IsSequential)
		require.Len(t, meta.Requests.Actions, 1)
		assert.Equal(t, "SIGN", meta.Requests.Actions[0].ActionType)
		assert.Equal(t, "signer@example.com", meta.Requests.Actions[0].RecipientEmail)
		assert.Equal(t, 0, meta.Requests.Actions[0].SigningOrder)
		assert.Equal(t, "EMAIL", meta.Requests.Actions[0].VerificationType)
		assert.Equal(t, 10, meta.Requests.ExpirationDays)
		assert.True(t, meta.Requests.EmailReminders)
		assert.Equal(t, 2, meta.Requests.ReminderPeriod)

		w.Write([]byte(createResponseFixture))
	})
	mux.HandleFunc("/api/v1/requests/R1/submit", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&submitCalls, 1)
		assert.Equal(t, "Zoho-oauthtoken tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		var payload submitData
		require.NoError(t, json.Unmarshal([]byte(r.PostForm.Get("data")), &payload))

		require.Len(t, payload.Requests.Actions, 1)
		action := payload.Requests.Actions[0]
		assert.Equal(t, "A1", action.ActionID)
		assert.Equal(t, "SIGN", action.ActionType)

		var radios, signatures int
		for _, f := range action.Fields {
			assert.Equal(t, "D1", f.DocumentID)
			switch f.FieldTypeName {
			case "Radiogroup":
				radios++
				require.Len(t, f.SubFields, 2)
				for _, sub := range f.SubFields {
					assert.Equal(t, sub.XValue, sub.XCoord)
					assert.Equal(t, sub.YValue, sub.YCoord)
				}
			case "Signature":
				signatures++
				assert.Equal(t, "image", f.FieldCategory)
				assert.Equal(t, f.XValue, f.XCoord)
				assert.Equal(t, f.YValue, f.YCoord)
			}
		}
		assert.Equal(t, 2, radios)
		assert.Equal(t, 1, signatures)

		w.Write([]byte(`{"status":"success"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSignClientForTest(srv.URL)

	result, err := client.Submit(context.Background(), document, "signer@example.com", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, core.SubmissionSubmitted, result.State)
	assert.Equal(t, "R1", result.RequestID)
	assert.Equal(t, "D1", result.DocumentID)
	assert.Equal(t, "A1", result.ActionID)
	assert.JSONEq(t, createResponseFixture, string(result.InitialResponse))
	assert.JSONEq(t, `{"status":"success"}`, string(result.SubmitResponse))
	assert.EqualValues(t, 1, atomic.LoadInt64(&submitCalls))
}

func TestSubmitMissingSignAction(t *testing.T) {
	var submitCalls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/requests", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"requests":{"request_id":"R1","document_ids":[{"document_id":"D1"}],"actions":[]}}`))
	})
	mux.HandleFunc("/api/v1/requests/R1/submit", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&submitCalls, 1)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSignClientForTest(srv.URL)

	_, err := client.Submit(context.Background(), []byte("doc"), "signer@example.com", "tok-1")
	assert.ErrorIs(t, err, core.ErrSubmission)
	assert.ErrorIs(t, err, core.ErrNoSignAction)
	assert.EqualValues(t, 0, atomic.LoadInt64(&submitCalls), "field placement must not run without a SIGN action")
}

func TestSubmitMissingIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing request id",
			body: `{"requests":{"document_ids":[{"document_id":"D1"}],"actions":[{"action_type":"SIGN","action_id":"A1"}]}}`,
		},
		{
			name: "missing document id",
			body: `{"requests":{"request_id":"R1","document_ids":[],"actions":[{"action_type":"SIGN","action_id":"A1"}]}}`,
		},
		{
			name: "not json",
			body: `<html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newSignClientForTest(srv.URL)

			_, err := client.Submit(context.Background(), []byte("doc"), "signer@example.com", "tok-1")
			assert.ErrorIs(t, err, core.ErrSubmission)
		})
	}
}

func TestSubmitCreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	client := newSignClientForTest(srv.URL)

	_, err := client.Submit(context.Background(), []byte("doc"), "signer@example.com", "tok-1")
	assert.ErrorIs(t, err, core.ErrSubmission)
}

func TestSubmitFieldPlacementRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/requests", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(createResponseFixture))
	})
	mux.HandleFunc("/api/v1/requests/R1/submit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newSignClientForTest(srv.URL)

	_, err := client.Submit(context.Background(), []byte("doc"), "signer@example.com", "tok-1")
	assert.ErrorIs(t, err, core.ErrSubmission)
}
