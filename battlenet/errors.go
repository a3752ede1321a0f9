package battlenet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Common errors
var (
	// ErrInvalidConfig matches every *ConfigError
	ErrInvalidConfig = errors.New("invalid battle.net configuration")
	// ErrMissingAPIKey indicates a client was built without an API key
	ErrMissingAPIKey = errors.New("apiKey is required")
	// ErrUnsupportedRegion indicates a region missing from the host table
	ErrUnsupportedRegion = errors.New("unsupported region")
	// ErrUnknownResource indicates a resource missing from the catalog
	ErrUnknownResource = errors.New("unknown resource")
	// ErrMissingPathParam indicates a path placeholder without a value
	ErrMissingPathParam = errors.New("missing path parameter")
)

// unknownAPIError is the message of an APIError whose body carries no reason
const unknownAPIError = "Unknown API Error"

// snippetLimit bounds how much of an unparseable body ends up in a ParseError
const snippetLimit = 200

// ConfigError reports a client or call that cannot be turned into a request
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("battle.net config: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("battle.net config: %s: %v: %s", e.Field, e.Err, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigError match ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ParseError reports a response body that is not valid JSON
type ParseError struct {
	StatusCode int
	// Snippet holds at most the first 200 characters of the body
	Snippet string
	// Title is the <title> of an HTML error page, if the body was one
	Title string
	Err   error
}

func (e *ParseError) Error() string {
	return "invalid json: " + e.Snippet
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(statusCode int, body []byte, err error) *ParseError {
	return &ParseError{
		StatusCode: statusCode,
		Snippet:    truncate(string(body), snippetLimit),
		Title:      htmlTitle(body),
		Err:        err,
	}
}

// APIError represents a failure reported by the Battle.net API
type APIError struct {
	StatusCode int
	Message    string
	// Body is the parsed response body, nil when it was not a JSON object
	Body map[string]any
	// Response is the raw HTTP response; its body has already been consumed
	Response *http.Response
}

func newAPIError(resp *http.Response, statusCode int, body map[string]any) *APIError {
	msg := unknownAPIError
	if reason, ok := body["reason"].(string); ok && reason != "" {
		msg = reason
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    msg,
		Body:       body,
		Response:   resp,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	raw, _ := json.Marshal(e.Body)
	return fmt.Sprintf("battle.net API error: status %d: %s (body=%s)", e.StatusCode, e.Message, raw)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func htmlTitle(body []byte) string {
	if !bytes.Contains(bytes.ToLower(body), []byte("<html")) {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
