package zoho

// tokenResponse is the authorization server's reply to a refresh-token
// exchange.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// createRequestData is the JSON metadata block sent alongside the
// document in the multipart create call.
type createRequestData struct {
	Requests requestDetails `json:"requests"`
}

type requestDetails struct {
	RequestName    string          `json:"request_name"`
	Description    string          `json:"description"`
	IsSequential   bool            `json:"is_sequential"`
	Actions        []requestAction `json:"actions"`
	ExpirationDays int             `json:"expiration_days"`
	EmailReminders bool            `json:"email_reminders"`
	ReminderPeriod int             `json:"reminder_period"`
	Notes          string          `json:"notes"`
}

type requestAction struct {
	ActionType       string `json:"action_type"`
	RecipientEmail   string `json:"recipient_email"`
	RecipientName    string `json:"recipient_name"`
	SigningOrder     int    `json:"signing_order"`
	VerifyRecipient  bool   `json:"verify_recipient"`
	VerificationType string `json:"verification_type"`
	PrivateNotes     string `json:"private_notes"`
}

// createResponse is the provider's reply to the create call. Only the
// identifiers needed for the submit call are decoded; the raw body is
// passed through to the caller untouched.
type createResponse struct {
	Requests struct {
		RequestID   string `json:"request_id"`
		DocumentIDs []struct {
			DocumentID string `json:"document_id"`
		} `json:"document_ids"`
		Actions []struct {
			ActionType string `json:"action_type"`
			ActionID   string `json:"action_id"`
		} `json:"actions"`
	} `json:"requests"`
}

// submitData is the payload of the submit call, sent as the urlencoded
// form field "data".
type submitData struct {
	Requests submitRequests `json:"requests"`
}

type submitRequests struct {
	Actions []fieldAction `json:"actions"`
}

type fieldAction struct {
	ActionID   string  `json:"action_id"`
	ActionType string  `json:"action_type"`
	Fields     []field `json:"fields"`
}

// field describes one placed form field. Geometry is absolute pixels.
// The provider's schema requires positions both as *_value and *_coord;
// the duplication is part of the API contract, keep the pairs equal.
type field struct {
	FieldTypeName string     `json:"field_type_name"`
	FieldName     string     `json:"field_name"`
	FieldCategory string     `json:"field_category,omitempty"`
	DefaultValue  string     `json:"default_value,omitempty"`
	IsMandatory   bool       `json:"is_mandatory"`
	PageNo        int        `json:"page_no"`
	DocumentID    string     `json:"document_id"`
	XValue        int        `json:"x_value,omitempty"`
	YValue        int        `json:"y_value,omitempty"`
	XCoord        int        `json:"x_coord,omitempty"`
	YCoord        int        `json:"y_coord,omitempty"`
	AbsWidth      int        `json:"abs_width,omitempty"`
	AbsHeight     int        `json:"abs_height,omitempty"`
	SubFields     []subField `json:"sub_fields,omitempty"`
}

// subField is one selectable option of a choice field, with its own
// geometry.
type subField struct {
	Name      string `json:"name"`
	XValue    int    `json:"x_value"`
	YValue    int    `json:"y_value"`
	XCoord    int    `json:"x_coord"`
	YCoord    int    `json:"y_coord"`
	AbsWidth  int    `json:"abs_width"`
	AbsHeight int    `json:"abs_height"`
}
