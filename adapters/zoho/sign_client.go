package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ShubhanginiSharma627/e-sign-app/config"
	"github.com/ShubhanginiSharma627/e-sign-app/core"
)

// Field geometry mirrors the rendered document layout: radio rows at
// y=100/150 with options at x=240/360 (circle radius 10), signature box
// at (170,190) sized 100x30.
const (
	radioRow1Y       = 100
	radioRow2Y       = 150
	radioOption1X    = 240
	radioOption2X    = 360
	radioBoxSize     = 20
	signatureX       = 170
	signatureY       = 190
	signatureWidth   = 100
	signatureHeight  = 30
	requestExpiryDay = 10
	reminderPeriod   = 2
)

// SignClient drives the two-phase Zoho Sign submission: upload the
// document and create the request, then attach the field placements.
// Neither phase is retried; the second phase is only attempted once the
// first returned every identifier it depends on.
type SignClient struct {
	cfg        config.ZohoConfig
	httpClient *http.Client
	log        *logrus.Logger
}

// NewSignClient creates a client for the configured Zoho Sign host.
func NewSignClient(cfg config.ZohoConfig, log *logrus.Logger) *SignClient {
	return &SignClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log,
	}
}

// Submit runs both phases with the given access token and returns the
// raw provider responses. Any failure is terminal for the submission.
func (c *SignClient) Submit(ctx context.Context, document []byte, recipientEmail, accessToken string) (*core.SubmissionResult, error) {
	result := &core.SubmissionResult{State: core.SubmissionCreated}

	initial, err := c.createRequest(ctx, document, recipientEmail, accessToken)
	if err != nil {
		return nil, err
	}

	requestID, documentID, actionID, err := extractIdentifiers(initial)
	if err != nil {
		c.log.WithError(err).WithField("body", string(initial)).Error("Zoho create response missing identifiers")
		return nil, err
	}

	result.State = core.SubmissionUploaded
	result.RequestID = requestID
	result.DocumentID = documentID
	result.ActionID = actionID
	result.InitialResponse = initial

	submitted, err := c.submitFields(ctx, requestID, documentID, actionID, accessToken)
	if err != nil {
		return nil, err
	}

	result.State = core.SubmissionSubmitted
	result.SubmitResponse = submitted
	return result, nil
}

// createRequest uploads the document and the request metadata as a
// multipart form and returns the raw response body.
func (c *SignClient) createRequest(ctx context.Context, document []byte, recipientEmail, accessToken string) (json.RawMessage, error) {
	meta := createRequestData{
		Requests: requestDetails{
			RequestName:  "Sample E-sign",
			Description:  "E-signature document",
			IsSequential: true,
			Actions: []requestAction{{
				ActionType:       "SIGN",
				RecipientEmail:   recipientEmail,
				RecipientName:    "John Doe",
				SigningOrder:     0,
				VerifyRecipient:  true,
				VerificationType: "EMAIL",
				PrivateNotes:     "Please sign",
			}},
			ExpirationDays: requestExpiryDay,
			EmailReminders: true,
			ReminderPeriod: reminderPeriod,
			Notes:          "General notes",
		},
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request metadata: %v", core.ErrSubmission, err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "sample.pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSubmission, err)
	}
	if _, err := part.Write(document); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSubmission, err)
	}
	if err := writer.WriteField("data", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSubmission, err)
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SignURL+"/api/v1/requests", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSubmission, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)

	return c.do(req, "create request")
}

// submitFields attaches the field placements to the uploaded document
// and finalizes the request.
func (c *SignClient) submitFields(ctx context.Context, requestID, documentID, actionID, accessToken string) (json.RawMessage, error) {
	payload := submitData{
		Requests: submitRequests{
			Actions: []fieldAction{{
				ActionID:   actionID,
				ActionType: "SIGN",
				Fields:     documentFields(documentID),
			}},
		},
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode field payload: %v", core.ErrSubmission, err)
	}

	form := url.Values{}
	form.Set("data", string(payloadJSON))

	endpoint := fmt.Sprintf("%s/api/v1/requests/%s/submit", c.cfg.SignURL, requestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)

	return c.do(req, "submit request")
}

func (c *SignClient) do(req *http.Request, op string) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("op", op).Error("Zoho Sign call failed")
		return nil, fmt.Errorf("%w: %s: network failure", core.ErrSubmission, op)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrSubmission, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"op":     op,
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Zoho Sign call rejected")
		return nil, fmt.Errorf("%w: %s returned status %d", core.ErrSubmission, op, resp.StatusCode)
	}

	return body, nil
}

// extractIdentifiers pulls the request, document and SIGN action IDs out
// of the create response. All three are required before the submit call
// may run.
func extractIdentifiers(raw json.RawMessage) (requestID, documentID, actionID string, err error) {
	var parsed createResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", "", "", fmt.Errorf("%w: malformed create response: %v", core.ErrSubmission, err)
	}

	if parsed.Requests.RequestID == "" {
		return "", "", "", fmt.Errorf("%w: create response missing request_id", core.ErrSubmission)
	}
	if len(parsed.Requests.DocumentIDs) == 0 || parsed.Requests.DocumentIDs[0].DocumentID == "" {
		return "", "", "", fmt.Errorf("%w: create response missing document_id", core.ErrSubmission)
	}

	for _, action := range parsed.Requests.Actions {
		if action.ActionType == "SIGN" && action.ActionID != "" {
			return parsed.Requests.RequestID, parsed.Requests.DocumentIDs[0].DocumentID, action.ActionID, nil
		}
	}

	return "", "", "", fmt.Errorf("%w: %w", core.ErrSubmission, core.ErrNoSignAction)
}

// documentFields builds the placements for the fixed layout: two radio
// groups and one signature capture area.
func documentFields(documentID string) []field {
	return []field{
		radioGroup("Radio Button 1", documentID, radioRow1Y),
		radioGroup("Radio Button 2", documentID, radioRow2Y),
		{
			FieldTypeName: "Signature",
			FieldName:     "E-Sign",
			FieldCategory: "image",
			IsMandatory:   true,
			PageNo:        0,
			DocumentID:    documentID,
			XValue:        signatureX,
			YValue:        signatureY,
			XCoord:        signatureX,
			YCoord:        signatureY,
			AbsWidth:      signatureWidth,
			AbsHeight:     signatureHeight,
		},
	}
}

func radioGroup(name, documentID string, rowY int) field {
	return field{
		FieldTypeName: "Radiogroup",
		FieldName:     name,
		DefaultValue:  "Option 1",
		IsMandatory:   true,
		PageNo:        0,
		DocumentID:    documentID,
		SubFields: []subField{
			{
				Name:      "Option 1",
				XValue:    radioOption1X,
				YValue:    rowY,
				XCoord:    radioOption1X,
				YCoord:    rowY,
				AbsWidth:  radioBoxSize,
				AbsHeight: radioBoxSize,
			},
			{
				Name:      "Option 2",
				XValue:    radioOption2X,
				YValue:    rowY,
				XCoord:    radioOption2X,
				YCoord:    rowY,
				AbsWidth:  radioBoxSize,
				AbsHeight: radioBoxSize,
			},
		},
	}
}
