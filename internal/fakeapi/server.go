// Package fakeapi is an in-process stand-in for the Elastic Email HTTP API.
// It records every call and answers with canned envelopes, in JSON or, when
// the request carries format=xml, in XML.
package fakeapi

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Prefix is the path prefix the server routes under, matching the v2 API.
const Prefix = "/v2"

// File is an uploaded multipart file part.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// Call is one recorded request.
type Call struct {
	Endpoint    string
	Method      string
	ContentType string
	UserAgent   string
	Params      url.Values
	Files       []File
}

// Reply is the canned answer for an endpoint.
type Reply struct {
	// Status defaults to 200.
	Status int
	// Body, when set, is written verbatim and the other fields are ignored.
	Body string
	// Data is the envelope payload. In XML mode a string is used as the
	// inner XML of <data>; anything else is passed to xml.Marshal, which
	// suits slices of records but not a single record.
	Data any
	// Error turns the envelope into success=false with this message.
	Error string
}

// Server is a fake API server. Its zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []Call
	replies map[string]Reply
	apiKey  string
}

// New starts a server. Close it when done.
func New() *Server {
	s := &Server{replies: make(map[string]Reply)}

	r := chi.NewRouter()
	r.HandleFunc(Prefix+"/{resource}/{action}", s.serve)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "no such endpoint", http.StatusNotFound)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value to configure the client with.
func (s *Server) BaseURL() string {
	return s.URL + Prefix
}

// Reply sets the answer for endpoint, e.g. "email/send".
func (s *Server) Reply(endpoint string, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[endpoint] = r
}

// RequireAPIKey makes every call with a different apikey fail the way the
// live API does: HTTP 200 with success=false.
func (s *Server) RequireAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// Calls returns a copy of the recorded calls, oldest first.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent call, or false when there was none.
func (s *Server) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

func (s *Server) serve(w http.ResponseWriter, req *http.Request) {
	endpoint := chi.URLParam(req, "resource") + "/" + chi.URLParam(req, "action")

	call, err := record(req, endpoint)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	reply, ok := s.replies[endpoint]
	wantKey := s.apiKey
	s.mu.Unlock()

	if !ok {
		reply = Reply{}
	}
	if wantKey != "" && call.Params.Get("apikey") != wantKey {
		reply = Reply{Error: "Incorrect apikey"}
	}

	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}

	if reply.Body != "" {
		w.WriteHeader(status)
		io.WriteString(w, reply.Body)
		return
	}

	if call.Params.Get("format") == "xml" {
		writeXML(w, status, reply)
		return
	}
	writeJSON(w, status, reply)
}

func record(req *http.Request, endpoint string) (Call, error) {
	call := Call{
		Endpoint:    endpoint,
		Method:      req.Method,
		ContentType: req.Header.Get("Content-Type"),
		UserAgent:   req.Header.Get("User-Agent"),
	}

	if strings.HasPrefix(call.ContentType, "multipart/form-data") {
		if err := req.ParseMultipartForm(32 << 20); err != nil {
			return call, fmt.Errorf("parse multipart: %w", err)
		}
		for field, headers := range req.MultipartForm.File {
			for _, fh := range headers {
				f, err := fh.Open()
				if err != nil {
					return call, err
				}
				content, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					return call, err
				}
				call.Files = append(call.Files, File{Field: field, Name: fh.Filename, Content: content})
			}
		}
	} else if err := req.ParseForm(); err != nil {
		return call, fmt.Errorf("parse form: %w", err)
	}

	call.Params = req.Form
	return call, nil
}

func writeJSON(w http.ResponseWriter, status int, reply Reply) {
	env := struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
		Data    any    `json:"data,omitempty"`
	}{Success: reply.Error == "", Error: reply.Error, Data: reply.Data}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

func writeXML(w http.ResponseWriter, status int, reply Reply) {
	var data string
	switch d := reply.Data.(type) {
	case nil:
	case string:
		data = d
	default:
		raw, err := xml.Marshal(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = string(raw)
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<response>")
	fmt.Fprintf(&b, "<success>%t</success>", reply.Error == "")
	if reply.Error != "" {
		b.WriteString("<error>")
		xml.EscapeText(&b, []byte(reply.Error))
		b.WriteString("</error>")
	}
	if data != "" {
		b.WriteString("<data>" + data + "</data>")
	}
	b.WriteString("</response>")

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	io.WriteString(w, b.String())
}
