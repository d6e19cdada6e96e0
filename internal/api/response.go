package api

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// envelope is the format-independent view of a response body.
type envelope struct {
	success bool
	message string
	data    []byte
}

type jsonEnvelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type xmlEnvelope struct {
	XMLName xml.Name `xml:"response"`
	Success bool     `xml:"success"`
	Error   string   `xml:"error"`
	Data    struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"data"`
}

func (c *Client) parseEnvelope(body []byte) (*envelope, error) {
	if c.format == FormatXML {
		var env xmlEnvelope
		if err := xml.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return &envelope{success: env.Success, message: env.Error, data: env.Data.Inner}, nil
	}

	var env jsonEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	data := []byte(env.Data)
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		data = nil
	}
	return &envelope{success: env.Success, message: env.Error, data: data}, nil
}

func (c *Client) decodeResponse(endpoint string, status int, body []byte, result any) error {
	env, parseErr := c.parseEnvelope(body)

	if status < 200 || status >= 300 {
		msg := strings.TrimSpace(string(body))
		if parseErr == nil && env.message != "" {
			msg = env.message
		}
		return &APIError{StatusCode: status, Endpoint: endpoint, Message: msg}
	}

	if parseErr != nil {
		return &APIError{
			StatusCode: status,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(body)),
			Err:        fmt.Errorf("failed to decode response: %w", parseErr),
		}
	}

	if !env.success {
		msg := env.message
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return &APIError{StatusCode: status, Endpoint: endpoint, Message: msg}
	}

	if result == nil || len(bytes.TrimSpace(env.data)) == 0 {
		return nil
	}

	var err error
	if c.format == FormatXML {
		err = decodeXMLData(env.data, result)
	} else {
		err = json.Unmarshal(env.data, result)
	}
	if err != nil {
		return &APIError{
			StatusCode: status,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(body)),
			Err:        fmt.Errorf("failed to decode response data: %w", err),
		}
	}
	return nil
}

// decodeXMLData decodes the children of a <data> element into result.
// Slice results receive one element per child; anything else is decoded
// from the <data> element itself.
func decodeXMLData(inner []byte, result any) error {
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("result must be a non-nil pointer, got %T", result)
	}

	target := rv.Elem()
	if target.Kind() != reflect.Slice {
		wrapped := make([]byte, 0, len(inner)+len("<data></data>"))
		wrapped = append(wrapped, "<data>"...)
		wrapped = append(wrapped, inner...)
		wrapped = append(wrapped, "</data>"...)
		return xml.Unmarshal(wrapped, result)
	}

	dec := xml.NewDecoder(bytes.NewReader(inner))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		item := reflect.New(target.Type().Elem())
		if err := dec.DecodeElement(item.Interface(), &start); err != nil {
			return err
		}
		target.Set(reflect.Append(target, item.Elem()))
	}
}
