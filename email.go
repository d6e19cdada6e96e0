package elasticemail

import "github.com/elasticemail/client-go/internal/api"

// EncodingType selects the transfer encoding of the message body.
type EncodingType int

const (
	EncodingTypeNone            EncodingType = 0
	EncodingTypeRaw7Bit         EncodingType = 1
	EncodingTypeRaw8Bit         EncodingType = 2
	EncodingTypeQuotedPrintable EncodingType = 3
	// EncodingTypeBase64 is recommended together with DKIM.
	EncodingTypeBase64 EncodingType = 4
	EncodingTypeUue    EncodingType = 5
)

var encodingTypes = enumNames[EncodingType]{
	kind: "EncodingType",
	names: map[EncodingType]string{
		EncodingTypeNone:            "None",
		EncodingTypeRaw7Bit:         "Raw7Bit",
		EncodingTypeRaw8Bit:         "Raw8Bit",
		EncodingTypeQuotedPrintable: "QuotedPrintable",
		EncodingTypeBase64:          "Base64",
		EncodingTypeUue:             "Uue",
	},
}

func (e EncodingType) String() string { return encodingTypes.name(e) }

// Valid reports whether e is a known encoding type.
func (e EncodingType) Valid() bool { return encodingTypes.valid(e) }

// MarshalText encodes the encoding type by name.
func (e EncodingType) MarshalText() ([]byte, error) {
	if err := encodingTypes.check(e); err != nil {
		return nil, err
	}
	return []byte(e.String()), nil
}

// UnmarshalText accepts the encoding type name, e.g. "Base64".
func (e *EncodingType) UnmarshalText(text []byte) error {
	v, err := encodingTypes.parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEncodingType converts a name such as "QuotedPrintable" to an EncodingType.
func ParseEncodingType(name string) (EncodingType, error) {
	return encodingTypes.parse(name)
}

// File is an attachment sent with a message. Files are uploaded as
// multipart file parts; a CSV file can also serve as the merge source.
type File = api.File

// SendRequest holds every option of the send operation. Zero values are
// omitted from the request, except EncodingType and IsTransactional which
// are always sent.
type SendRequest struct {
	Subject     string `json:"subject,omitempty"`
	From        string `json:"from,omitempty"`
	FromName    string `json:"fromName,omitempty"`
	Sender      string `json:"sender,omitempty"`
	SenderName  string `json:"senderName,omitempty"`
	MsgFrom     string `json:"msgFrom,omitempty"`
	MsgFromName string `json:"msgFromName,omitempty"`
	ReplyTo     string `json:"replyTo,omitempty"`
	ReplyToName string `json:"replyToName,omitempty"`

	// To lists recipients that each receive a separate copy.
	To []string `json:"to,omitempty"`
	// MsgTo, MsgCC and MsgBcc are ignored by the API when To is set.
	MsgTo  []string `json:"msgTo,omitempty"`
	MsgCC  []string `json:"msgCC,omitempty"`
	MsgBcc []string `json:"msgBcc,omitempty"`
	// Lists and Segments name contact lists and segments to send to.
	// The segment name "0" selects all active contacts.
	Lists    []string `json:"lists,omitempty"`
	Segments []string `json:"segments,omitempty"`

	// MergeSourceFilename names the attachment holding a CSV list of recipients.
	MergeSourceFilename string `json:"mergeSourceFilename,omitempty"`
	Channel             string `json:"channel,omitempty"`

	BodyHTML        string       `json:"bodyHtml,omitempty"`
	BodyText        string       `json:"bodyText,omitempty"`
	Charset         string       `json:"charset,omitempty"`
	CharsetBodyHTML string       `json:"charsetBodyHtml,omitempty"`
	CharsetBodyText string       `json:"charsetBodyText,omitempty"`
	EncodingType    EncodingType `json:"encodingType"`
	Template        string       `json:"template,omitempty"`

	Attachments []File `json:"-"`

	// Headers are custom MIME headers, keyed by header name.
	Headers  map[string]string `json:"headers,omitempty"`
	PostBack string            `json:"postBack,omitempty"`
	// Merge holds template merge fields, e.g. {"firstname": "Jane"} fills {firstname}.
	Merge map[string]string `json:"merge,omitempty"`

	TimeOffSetMinutes string `json:"timeOffSetMinutes,omitempty"`
	PoolName          string `json:"poolName,omitempty"`
	IsTransactional   bool   `json:"isTransactional"`
}

// GetStatusOptions selects which address groups the job status includes.
type GetStatusOptions struct {
	ShowFailed       bool
	ShowSent         bool
	ShowDelivered    bool
	ShowPending      bool
	ShowOpened       bool
	ShowClicked      bool
	ShowAbuse        bool
	ShowUnsubscribed bool
	ShowErrors       bool
	ShowMessageIDs   bool
}

// EmailSend is returned by a successful send.
type EmailSend struct {
	TransactionID string `json:"TransactionID" xml:"TransactionID"`
	MessageID     string `json:"MessageID" xml:"MessageID"`
}

// EmailJobStatus is the status of a send batch.
type EmailJobStatus struct {
	ID                string   `json:"ID" xml:"ID"`
	Status            string   `json:"Status" xml:"Status"`
	Recipients        int      `json:"Recipients" xml:"Recipients"`
	Failed            []string `json:"Failed" xml:"Failed>string"`
	FailedCount       int      `json:"FailedCount" xml:"FailedCount"`
	Sent              []string `json:"Sent" xml:"Sent>string"`
	SentCount         int      `json:"SentCount" xml:"SentCount"`
	Delivered         []string `json:"Delivered" xml:"Delivered>string"`
	DeliveredCount    int      `json:"DeliveredCount" xml:"DeliveredCount"`
	Pending           []string `json:"Pending" xml:"Pending>string"`
	PendingCount      int      `json:"PendingCount" xml:"PendingCount"`
	Opened            []string `json:"Opened" xml:"Opened>string"`
	OpenedCount       int      `json:"OpenedCount" xml:"OpenedCount"`
	Clicked           []string `json:"Clicked" xml:"Clicked>string"`
	ClickedCount      int      `json:"ClickedCount" xml:"ClickedCount"`
	Unsubscribed      []string `json:"Unsubscribed" xml:"Unsubscribed>string"`
	UnsubscribedCount int      `json:"UnsubscribedCount" xml:"UnsubscribedCount"`
	AbuseReports      []string `json:"AbuseReports" xml:"AbuseReports>string"`
	AbuseReportsCount int      `json:"AbuseReportsCount" xml:"AbuseReportsCount"`
	MessageIDs        []string `json:"MessageIDs" xml:"MessageIDs>string"`
}

// EmailStatus is the delivery status of a single message.
// Dates are passed through as sent by the API.
type EmailStatus struct {
	From             string `json:"From" xml:"From"`
	To               string `json:"To" xml:"To"`
	Date             string `json:"Date" xml:"Date"`
	Status           string `json:"Status" xml:"Status"`
	StatusName       string `json:"StatusName" xml:"StatusName"`
	StatusChangeDate string `json:"StatusChangeDate" xml:"StatusChangeDate"`
	DatePending      string `json:"DatePending" xml:"DatePending"`
	DateSent         string `json:"DateSent" xml:"DateSent"`
	DateOpened       string `json:"DateOpened" xml:"DateOpened"`
	DateClicked      string `json:"DateClicked" xml:"DateClicked"`
	Message          string `json:"Message" xml:"Message"`
	ErrorMessage     string `json:"ErrorMessage" xml:"ErrorMessage"`
	TransactionID    string `json:"TransactionID" xml:"TransactionID"`
	EnvelopeFrom     string `json:"EnvelopeFrom" xml:"EnvelopeFrom"`
}

// EmailView is the rendered content of a sent message.
type EmailView struct {
	Body    string `json:"Body" xml:"Body"`
	Subject string `json:"Subject" xml:"Subject"`
	From    string `json:"From" xml:"From"`
}
