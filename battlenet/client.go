package battlenet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client represents a Battle.net WoW community API client.
// A Client is safe for concurrent use; it holds no per-call state.
type Client struct {
	apiKey string
	region Region
	locale string
	hosts  map[Region]string
	http   *resty.Client
	logger zerolog.Logger
}

// Response is the successful result of a call
type Response struct {
	// Data is the parsed JSON body, usually a map[string]any
	Data any
	// Raw holds the undecoded body
	Raw []byte
	// HTTP is the raw response; its body has already been consumed
	HTTP *http.Response
}

// Decode unmarshals the response body into v
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// request is a fully resolved call, ready to be sent
type request struct {
	resource Resource
	region   Region
	url      string
	query    url.Values
}

// NewClient creates a new Battle.net client.
// It fails when the API key is missing; no network call is made.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		// resty sets the timeout on the client it is given
		hc := *o.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(o.timeout)
	rc.SetHeader("User-Agent", o.userAgent)
	rc.SetLogger(restyLogger{logger: o.logger})

	return &Client{
		apiKey: cfg.APIKey,
		region: cfg.Region,
		locale: DefaultLocale,
		hosts:  o.hosts,
		http:   rc,
		logger: o.logger,
	}, nil
}

// Region returns the default region of the client
func (c *Client) Region() Region {
	return c.region
}

// Call performs a GET against resource. params is copied, never modified.
func (c *Client) Call(ctx context.Context, resource Resource, params Params) (*Response, error) {
	req, err := c.buildRequest(resource, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

// Ping verifies the API key and connectivity using the realm status resource
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, ResourceRealm, nil)
	return err
}

// buildRequest resolves host, path and query. The order of the steps matters:
// each step removes the keys it consumes before placeholders are filled.
func (c *Client) buildRequest(resource Resource, params Params) (*request, error) {
	working := params.clone()

	region := c.region
	if v, ok := working.take(ParamRegion); ok && v != "" {
		region = Region(v)
	}

	host, err := resolveHost(c.hosts, region)
	if err != nil {
		return nil, err
	}

	tmpl, err := ResolvePath(resource)
	if err != nil {
		return nil, err
	}

	apiKey := c.apiKey
	if v, ok := working.take(ParamAPIKeyAlias); ok && v != "" {
		apiKey = v
	}
	if v, ok := working.take(ParamAPIKey); ok && v != "" {
		apiKey = v
	}
	working[ParamAPIKey] = apiKey

	locale := c.locale
	if v, ok := working.take(ParamLocale); ok && v != "" {
		locale = v
	}
	working[ParamLocale] = locale

	path, missing := expand(tmpl, working)
	if len(missing) > 0 {
		return nil, &ConfigError{
			Field:  string(resource),
			Reason: strings.Join(missing, ", "),
			Err:    ErrMissingPathParam,
		}
	}

	return &request{
		resource: resource,
		region:   region,
		url:      "https://" + host + path,
		query:    working.query(),
	}, nil
}

// expand fills the placeholders of tmpl from params and removes the consumed
// keys. It returns the names of placeholders left without a value.
func expand(tmpl string, params Params) (string, []string) {
	var missing []string
	path := placeholderRe.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[1:]
		v := formatValue(params[name])
		if v == "" {
			missing = append(missing, name)
			return token
		}
		return url.PathEscape(v)
	})
	for _, name := range Placeholders(tmpl) {
		delete(params, name)
	}
	return path, missing
}

func (c *Client) do(ctx context.Context, req *request) (*Response, error) {
	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("resource", string(req.resource)).
		Str("region", string(req.region)).
		Logger()

	log.Debug().
		Str("url", req.url).
		Str("query", redact(req.query)).
		Msg("Making Battle.net API request")

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParamsFromValues(req.query).
		Get(req.url)
	if err != nil {
		log.Debug().Str("error", RedactError(err)).Msg("Battle.net API request failed")
		return nil, err
	}

	status := resp.StatusCode()
	body := resp.Body()

	log.Debug().
		Int("status", status).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Received Battle.net API response")

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, newParseError(status, body, err)
	}

	obj, _ := data.(map[string]any)
	if status >= http.StatusBadRequest || obj["status"] == "nok" {
		return nil, newAPIError(resp.RawResponse, status, obj)
	}

	return &Response{
		Data: data,
		Raw:  body,
		HTTP: resp.RawResponse,
	}, nil
}

// redact encodes q with the API key masked
func redact(q url.Values) string {
	if q.Get(ParamAPIKey) == "" {
		return q.Encode()
	}
	masked := make(url.Values, len(q))
	for k, v := range q {
		masked[k] = v
	}
	masked.Set(ParamAPIKey, "REDACTED")
	return masked.Encode()
}

// RedactError returns the message of err with the apikey value of any
// request URL it carries masked. err itself is left untouched.
func RedactError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return msg
	}
	return strings.ReplaceAll(msg, urlErr.URL, redactURL(urlErr.URL))
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Get(ParamAPIKey) == "" {
		return raw
	}
	u.RawQuery = redact(q)
	return u.String()
}

// apiKeyRe matches an apikey query value inside free text
var apiKeyRe = regexp.MustCompile(`(apikey=)[^&\s"]+`)

// restyLogger routes resty's internal messages into zerolog.
// Retry failures carry the request URL, so keys are masked.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) message(format string, v ...any) string {
	return apiKeyRe.ReplaceAllString(strings.TrimSpace(fmt.Sprintf(format, v...)), "${1}REDACTED")
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msg(l.message(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msg(l.message(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msg(l.message(format, v...))
}
