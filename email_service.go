package elasticemail

import (
	"context"
	"errors"
	"net/http"

	"github.com/elasticemail/client-go/internal/api"
)

// EmailService sends messages and reports on their delivery.
type EmailService interface {
	// GetStatus returns the status of a send batch.
	GetStatus(ctx context.Context, transactionID string, opts GetStatusOptions) (*EmailJobStatus, error)

	// Send submits a message. Each successful call sends the message again;
	// the client never retries on its own.
	Send(ctx context.Context, req *SendRequest) (*EmailSend, error)

	// Status returns the detailed status of one message. The API answers with
	// "Email has expired and the status is unknown." until the message has
	// been fully processed.
	Status(ctx context.Context, messageID string) (*EmailStatus, error)

	// View returns the content of a sent message.
	View(ctx context.Context, messageID string) (*EmailView, error)
}

// emailImpl implements the EmailService interface.
type emailImpl struct {
	apiClient *api.Client
}

// Email returns the EmailService bound to this client.
func (c *Client) Email() EmailService {
	return &emailImpl{apiClient: c.apiClient}
}

func (e *emailImpl) GetStatus(ctx context.Context, transactionID string, opts GetStatusOptions) (*EmailJobStatus, error) {
	var result EmailJobStatus
	req := &api.Request{Endpoint: api.EndpointEmailGetStatus, Params: getStatusParams(transactionID, opts)}
	if err := e.apiClient.Request(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (e *emailImpl) Send(ctx context.Context, sr *SendRequest) (*EmailSend, error) {
	if sr == nil {
		return nil, errors.New("send request is nil")
	}
	if err := encodingTypes.check(sr.EncodingType); err != nil {
		return nil, err
	}

	var result EmailSend
	req := &api.Request{
		Endpoint: api.EndpointEmailSend,
		Method:   http.MethodPost,
		Params:   sr.params(),
		Files:    sr.Attachments,
	}
	if err := e.apiClient.Request(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (e *emailImpl) Status(ctx context.Context, messageID string) (*EmailStatus, error) {
	var result EmailStatus
	if err := e.apiClient.Request(ctx, messageRequest(api.EndpointEmailStatus, messageID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (e *emailImpl) View(ctx context.Context, messageID string) (*EmailView, error) {
	var result EmailView
	if err := e.apiClient.Request(ctx, messageRequest(api.EndpointEmailView, messageID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func messageRequest(endpoint, messageID string) *api.Request {
	p := api.NewParams()
	p.Set("messageID", messageID)
	return &api.Request{Endpoint: endpoint, Params: p}
}

func getStatusParams(transactionID string, opts GetStatusOptions) *api.Params {
	p := api.NewParams()
	p.Set("transactionID", transactionID)
	p.SetBool("showFailed", opts.ShowFailed)
	p.SetBool("showSent", opts.ShowSent)
	p.SetBool("showDelivered", opts.ShowDelivered)
	p.SetBool("showPending", opts.ShowPending)
	p.SetBool("showOpened", opts.ShowOpened)
	p.SetBool("showClicked", opts.ShowClicked)
	p.SetBool("showAbuse", opts.ShowAbuse)
	p.SetBool("showUnsubscribed", opts.ShowUnsubscribed)
	p.SetBool("showErrors", opts.ShowErrors)
	p.SetBool("showMessageIDs", opts.ShowMessageIDs)
	return p
}

// params maps the request onto the email/send parameter set.
func (sr *SendRequest) params() *api.Params {
	p := api.NewParams()
	p.SetOptional("subject", sr.Subject)
	p.SetOptional("from", sr.From)
	p.SetOptional("fromName", sr.FromName)
	p.SetOptional("sender", sr.Sender)
	p.SetOptional("senderName", sr.SenderName)
	p.SetOptional("msgFrom", sr.MsgFrom)
	p.SetOptional("msgFromName", sr.MsgFromName)
	p.SetOptional("replyTo", sr.ReplyTo)
	p.SetOptional("replyToName", sr.ReplyToName)
	p.SetList("to", sr.To)
	p.SetList("msgTo", sr.MsgTo)
	p.SetList("msgCC", sr.MsgCC)
	p.SetList("msgBcc", sr.MsgBcc)
	p.SetList("lists", sr.Lists)
	p.SetList("segments", sr.Segments)
	p.SetOptional("mergeSourceFilename", sr.MergeSourceFilename)
	p.SetOptional("channel", sr.Channel)
	p.SetOptional("bodyHtml", sr.BodyHTML)
	p.SetOptional("bodyText", sr.BodyText)
	p.SetOptional("charset", sr.Charset)
	p.SetOptional("charsetBodyHtml", sr.CharsetBodyHTML)
	p.SetOptional("charsetBodyText", sr.CharsetBodyText)
	p.SetInt("encodingType", int(sr.EncodingType))
	p.SetOptional("template", sr.Template)
	p.SetOptional("postBack", sr.PostBack)
	p.SetOptional("timeOffSetMinutes", sr.TimeOffSetMinutes)
	p.SetOptional("poolName", sr.PoolName)
	p.SetBool("isTransactional", sr.IsTransactional)
	p.SetHeaders(sr.Headers)
	p.SetMerge(sr.Merge)
	return p
}
