package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: ""})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
	if client.format != FormatJSON {
		t.Errorf("format = %s, want json", client.format)
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %s, want %s", client.userAgent, DefaultUserAgent)
	}
}

func TestNewClient_CustomValues(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}

	client, err := NewClient(Config{
		APIKey:     "custom-key",
		BaseURL:    "https://custom.example.com/v2/",
		HTTPClient: customHTTPClient,
		Format:     FormatXML,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.httpClient != customHTTPClient {
		t.Error("httpClient not set correctly")
	}
	if client.BaseURL() != "https://custom.example.com/v2" {
		t.Errorf("BaseURL() = %s, want trailing slash trimmed", client.BaseURL())
	}
	if client.Format() != FormatXML {
		t.Errorf("Format() = %s, want xml", client.Format())
	}
}

func TestNewClient_InvalidFormat(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k", Format: "yaml"})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com"),
		WithTimeout(60*time.Second),
		WithUserAgent("my-app/1.0"),
		WithLogger(zerolog.Nop()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.baseURL != "https://example.com" {
		t.Errorf("baseURL = %s, want https://example.com", client.baseURL)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", client.httpClient.Timeout)
	}
	if client.userAgent != "my-app/1.0" {
		t.Errorf("userAgent = %s, want my-app/1.0", client.userAgent)
	}
}

func TestClient_WithAPIKey(t *testing.T) {
	client, _ := New("first")
	other := client.WithAPIKey("second")

	if client.apiKey != "first" {
		t.Errorf("original apiKey = %s, want first", client.apiKey)
	}
	if other.apiKey != "second" {
		t.Errorf("copy apiKey = %s, want second", other.apiKey)
	}
	if other.httpClient != client.httpClient {
		t.Error("copy should share the HTTP client")
	}
}

func TestClient_Request_GETQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v2/email/status" {
			t.Errorf("path = %s, want /v2/email/status", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apikey") != "test-key" {
			t.Errorf("apikey = %s, want test-key", q.Get("apikey"))
		}
		if q.Get("messageID") != "m-1" {
			t.Errorf("messageID = %s, want m-1", q.Get("messageID"))
		}
		if q.Has("format") {
			t.Error("format should not be sent for JSON")
		}
		io.WriteString(w, `{"success":true,"data":{"Subject":"Hello"}}`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL+"/v2"))

	params := NewParams()
	params.Set("messageID", "m-1")

	var result struct{ Subject string }
	err := client.Request(context.Background(), &Request{Endpoint: "email/status", Params: params}, &result)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if result.Subject != "Hello" {
		t.Errorf("Subject = %s, want Hello", result.Subject)
	}
}

func TestClient_Request_POSTForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %s, want form encoding", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if r.PostForm.Get("apikey") != "test-key" {
			t.Errorf("apikey = %s, want test-key", r.PostForm.Get("apikey"))
		}
		if r.PostForm.Get("to") != "a@x.io;b@x.io" {
			t.Errorf("to = %s, want a@x.io;b@x.io", r.PostForm.Get("to"))
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %s, want empty", r.URL.RawQuery)
		}
		io.WriteString(w, `{"success":true,"data":{"TransactionID":"t-1","MessageID":"m-1"}}`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))

	params := NewParams()
	params.SetList("to", []string{"a@x.io", "b@x.io"})

	var result struct {
		TransactionID string
		MessageID     string
	}
	err := client.Request(context.Background(), &Request{
		Endpoint: "email/send",
		Method:   http.MethodPost,
		Params:   params,
	}, &result)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if result.TransactionID != "t-1" {
		t.Errorf("TransactionID = %s, want t-1", result.TransactionID)
	}
}

func TestClient_Request_MultipartWithFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %s, want multipart", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		if r.FormValue("apikey") != "test-key" {
			t.Errorf("apikey = %s, want test-key", r.FormValue("apikey"))
		}
		if r.FormValue("subject") != "Report" {
			t.Errorf("subject = %s, want Report", r.FormValue("subject"))
		}
		files := r.MultipartForm.File[FilesField]
		if len(files) != 2 {
			t.Fatalf("files = %d, want 2", len(files))
		}
		if files[0].Filename != "a.csv" || files[1].Filename != "b.txt" {
			t.Errorf("filenames = %s, %s", files[0].Filename, files[1].Filename)
		}
		f, _ := files[0].Open()
		content, _ := io.ReadAll(f)
		f.Close()
		if !bytes.Equal(content, []byte("email\njane@x.io\n")) {
			t.Errorf("content = %q", content)
		}
		io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))

	params := NewParams()
	params.Set("subject", "Report")

	// GET hint is overridden by the presence of files.
	err := client.Request(context.Background(), &Request{
		Endpoint: "email/send",
		Params:   params,
		Files: []File{
			{Name: "a.csv", Content: []byte("email\njane@x.io\n")},
			{Name: "b.txt", Content: []byte("hello")},
		},
	}, nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
}

func TestEncodingFor(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{"default method", &Request{Endpoint: "x"}, EncodingQuery},
		{"explicit GET", &Request{Endpoint: "x", Method: http.MethodGet}, EncodingQuery},
		{"POST without files", &Request{Endpoint: "x", Method: http.MethodPost}, EncodingForm},
		{"POST with empty files", &Request{Endpoint: "x", Method: http.MethodPost, Files: []File{}}, EncodingForm},
		{"POST with files", &Request{Endpoint: "x", Method: http.MethodPost, Files: []File{{Name: "a"}}}, EncodingMultipart},
		{"GET with files", &Request{Endpoint: "x", Files: []File{{Name: "a"}}}, EncodingMultipart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodingFor(tt.req); got != tt.want {
				t.Errorf("EncodingFor() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClient_Request_XMLFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "xml" {
			t.Errorf("format = %s, want xml", r.URL.Query().Get("format"))
		}
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, `<?xml version="1.0"?>
<response>
  <success>true</success>
  <data>
    <Segment><SegmentID>1</SegmentID><Name>VIP</Name></Segment>
    <Segment><SegmentID>2</SegmentID><Name>Churned</Name></Segment>
  </data>
</response>`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL), WithFormat(FormatXML))

	type segment struct {
		SegmentID int64  `xml:"SegmentID"`
		Name      string `xml:"Name"`
	}
	var result []segment
	if err := client.Request(context.Background(), &Request{Endpoint: "segment/list"}, &result); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("len = %d, want 2", len(result))
	}
	if result[0].Name != "VIP" || result[1].SegmentID != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestClient_Request_XMLStruct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<response><success>true</success><data><Link>https://files.example.com/x.csv</Link></data></response>`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL), WithFormat(FormatXML))

	var result struct {
		Link string `xml:"Link"`
	}
	if err := client.Request(context.Background(), &Request{Endpoint: "segment/export"}, &result); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if result.Link != "https://files.example.com/x.csv" {
		t.Errorf("Link = %s", result.Link)
	}
}

func TestClient_Request_ErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		statusCode int
		body       string
		wantStatus int
		wantMsg    string
		wantIs     error
	}{
		{
			name:       "success false with 200",
			format:     FormatJSON,
			statusCode: 200,
			body:       `{"success":false,"error":"Email has expired and the status is unknown."}`,
			wantStatus: 200,
			wantMsg:    "Email has expired and the status is unknown.",
		},
		{
			name:       "non-2xx with envelope",
			format:     FormatJSON,
			statusCode: 401,
			body:       `{"success":false,"error":"Incorrect apikey"}`,
			wantStatus: 401,
			wantMsg:    "Incorrect apikey",
			wantIs:     ErrUnauthorized,
		},
		{
			name:       "non-2xx with plain body",
			format:     FormatJSON,
			statusCode: 503,
			body:       "Service Unavailable\n",
			wantStatus: 503,
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "rate limited",
			format:     FormatJSON,
			statusCode: 429,
			body:       `{"success":false,"error":"Too many requests"}`,
			wantStatus: 429,
			wantMsg:    "Too many requests",
			wantIs:     ErrRateLimited,
		},
		{
			name:       "xml success false",
			format:     FormatXML,
			statusCode: 200,
			body:       `<response><success>false</success><error>Segment not found</error></response>`,
			wantStatus: 200,
			wantMsg:    "Segment not found",
		},
		{
			name:       "success false without message",
			format:     FormatJSON,
			statusCode: 200,
			body:       `{"success":false}`,
			wantStatus: 200,
			wantMsg:    `{"success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client, _ := New("test-key", WithBaseURL(server.URL), WithFormat(tt.format))

			var result struct{ Subject string }
			err := client.Request(context.Background(), &Request{Endpoint: "email/status"}, &result)
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.Endpoint != "email/status" {
				t.Errorf("Endpoint = %s, want email/status", apiErr.Endpoint)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(%v) = false", tt.wantIs)
			}
			if result.Subject != "" {
				t.Error("result should not be populated on failure")
			}
		})
	}
}

func TestClient_Request_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>gateway</html>")
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))

	err := client.Request(context.Background(), &Request{Endpoint: "email/view"}, &struct{}{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Message != "<html>gateway</html>" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Err == nil {
		t.Error("decode error should be wrapped")
	}
}

func TestClient_Request_NoRetry(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))

	err := client.Request(context.Background(), &Request{Endpoint: "email/send", Method: http.MethodPost}, nil)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if n := atomic.LoadInt32(&attempts); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestClient_Request_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := New("secret-key", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Request(ctx, &Request{Endpoint: "segment/list"}, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T (%v)", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("errors.Is(context.Canceled) = false for %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("error leaks API key: %v", err)
	}
	if netErr.URL != server.URL+"/segment/list" {
		t.Errorf("URL = %s", netErr.URL)
	}
}

func TestClient_Request_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, _ := New("test-key", WithBaseURL(url))

	err := client.Request(context.Background(), &Request{Endpoint: "email/view"}, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T (%v)", err, err)
	}
}

func TestClient_Request_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("User-Agent = %s, want %s", ua, DefaultUserAgent)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Accept = %s, want application/json", accept)
		}
		io.WriteString(w, `{"success":true,"data":null}`)
	}))
	defer server.Close()

	client, _ := New("test-key", WithBaseURL(server.URL))

	var result struct{ Body string }
	if err := client.Request(context.Background(), &Request{Endpoint: "email/view"}, &result); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
}

func TestClient_Request_RequiresEndpoint(t *testing.T) {
	client, _ := New("test-key")
	if err := client.Request(context.Background(), &Request{}, nil); err == nil {
		t.Error("expected error for empty endpoint")
	}
}

func TestClient_Request_EmptyAPIKeyOverride(t *testing.T) {
	client, _ := New("test-key")
	err := client.WithAPIKey("").Request(context.Background(), &Request{Endpoint: "email/view"}, nil)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestClient_Request_Logging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	client, _ := New("very-secret", WithBaseURL(server.URL), WithLogger(logger))

	if err := client.Request(context.Background(), &Request{Endpoint: "segment/delete"}, nil); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"endpoint":"segment/delete"`) {
		t.Errorf("log missing endpoint: %s", out)
	}
	if !strings.Contains(out, `"encoding":"query"`) {
		t.Errorf("log missing encoding: %s", out)
	}
	if strings.Contains(out, "very-secret") {
		t.Errorf("log leaks API key: %s", out)
	}
}

func TestClient_Request_LoggingTransportFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	client, _ := New("very-secret", WithBaseURL("http://127.0.0.1:1"), WithLogger(logger))

	err := client.Request(context.Background(), &Request{Endpoint: "segment/delete"}, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Request() error = %v, want *NetworkError", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"request failed"`) {
		t.Errorf("log missing failure event: %s", out)
	}
	if strings.Contains(out, "very-secret") {
		t.Errorf("log leaks API key: %s", out)
	}
	if strings.Contains(err.Error(), "very-secret") {
		t.Errorf("error leaks API key: %v", err)
	}
}
