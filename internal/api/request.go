package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Parameter names added by the dispatcher.
const (
	paramAPIKey = "apikey"
	paramFormat = "format"

	// FilesField is the multipart field name used for attachments.
	FilesField = "attachments"
)

// Request encoding names, as reported in logs.
const (
	EncodingQuery     = "query"
	EncodingForm      = "form"
	EncodingMultipart = "multipart"
)

// File is an attachment uploaded as a multipart file part.
type File struct {
	Name    string
	Content []byte
}

// Request describes one API operation: the endpoint, the HTTP method hint,
// the parameters and any files to upload.
type Request struct {
	Endpoint string
	// Method defaults to GET. Requests with files are always sent as POST.
	Method string
	Params *Params
	Files  []File
}

// EncodingFor reports which encoding a request will be sent with.
func EncodingFor(req *Request) string {
	switch {
	case len(req.Files) > 0:
		return EncodingMultipart
	case req.Method == "" || req.Method == http.MethodGet:
		return EncodingQuery
	default:
		return EncodingForm
	}
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, string, error) {
	if req == nil || req.Endpoint == "" {
		return nil, "", fmt.Errorf("request endpoint is required")
	}

	params := req.Params.clone()
	params.Set(paramAPIKey, c.apiKey)
	if c.format != FormatJSON {
		params.Set(paramFormat, string(c.format))
	}

	target := c.endpointURL(req.Endpoint)
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var (
		body        io.Reader
		contentType string
	)

	encoding := EncodingFor(req)
	switch encoding {
	case EncodingMultipart:
		buf, ct, err := encodeMultipart(params, req.Files)
		if err != nil {
			return nil, "", err
		}
		body, contentType = buf, ct
		method = http.MethodPost
	case EncodingQuery:
		target += "?" + params.Values().Encode()
	default:
		body = strings.NewReader(params.Values().Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.format == FormatXML {
		httpReq.Header.Set("Accept", "application/xml")
	} else {
		httpReq.Header.Set("Accept", "application/json")
	}

	return httpReq, encoding, nil
}

func encodeMultipart(params *Params, files []File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, name := range params.Names() {
		value, _ := params.Get(name)
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(FilesField, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
