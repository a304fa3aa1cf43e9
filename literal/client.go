// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/conatus/literal-tools/constant"
	"github.com/conatus/literal-tools/key"
	"github.com/conatus/literal-tools/log"
	"github.com/conatus/literal-tools/network"
	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// DefaultReadingLimit caps the currently reading query when no limit is configured.
const DefaultReadingLimit = 50

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Endpoint     string
	Timeout      time.Duration
	ReadingLimit int
	HTTPClient   *http.Client
}

// Client issues GraphQL requests against the Literal API.
// It holds no session state; every operation takes the bearer token explicitly.
type Client struct {
	rest         *resty.Client
	endpoint     string
	readingLimit int
}

// New creates a Client from opts.
func New(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = constant.Endpoint
	}
	if opts.ReadingLimit <= 0 {
		opts.ReadingLimit = DefaultReadingLimit
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = network.New(opts.Timeout)
	}

	rest := resty.NewWithClient(hc).
		SetHeader("User-Agent", constant.UserAgent).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{}).
		OnBeforeRequest(logRequest).
		OnAfterResponse(logResponse)

	return &Client{
		rest:         rest,
		endpoint:     opts.Endpoint,
		readingLimit: opts.ReadingLimit,
	}
}

// NewFromConfig creates a Client using the api.* and reading.* configuration keys.
func NewFromConfig() *Client {
	return New(Options{
		Endpoint:     viper.GetString(key.APIEndpoint),
		Timeout:      time.Duration(viper.GetInt(key.APITimeout)) * time.Second,
		ReadingLimit: viper.GetInt(key.ReadingLimit),
	})
}

// graphQLRequest is the JSON body of a GraphQL POST.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the envelope every GraphQL response shares.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// do sends a query with optional bearer token and decodes its data into out.
func (c *Client) do(ctx context.Context, token, query string, variables map[string]any, out any) error {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphQLRequest{Query: query, Variables: variables})

	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		log.Error(err)
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return decode(resp, out)
}

// decode maps a raw response onto the error kinds, then unmarshals data into out.
func decode(resp *resty.Response, out any) error {
	status := resp.StatusCode()

	var payload graphQLResponse
	jsonErr := json.Unmarshal(resp.Body(), &payload)

	if len(payload.Errors) > 0 {
		err := &ResponseError{Status: status, Errors: payload.Errors}
		log.Error(err)
		return err
	}

	if !resp.IsSuccess() {
		err := &ResponseError{Status: status, Errors: []GraphQLError{{Message: bodyText(resp)}}}
		log.Error(err)
		return err
	}

	if jsonErr != nil {
		return fmt.Errorf("%w: decode response: %w", ErrAPI, jsonErr)
	}

	if out == nil {
		return nil
	}

	if len(payload.Data) == 0 || string(payload.Data) == "null" {
		return fmt.Errorf("%w: response carries no data", ErrAPI)
	}

	if err := json.Unmarshal(payload.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %w", ErrAPI, err)
	}

	return nil
}

func bodyText(resp *resty.Response) string {
	if text := resp.String(); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

// redacted returns a copy of variables safe to print.
func redacted(variables map[string]any) map[string]any {
	return lo.MapValues(variables, func(v any, k string) any {
		if k == "password" {
			return "********"
		}
		return v
	})
}

func logRequest(_ *resty.Client, req *resty.Request) error {
	if !log.Debugging() {
		return nil
	}

	switch body := req.Body.(type) {
	case graphQLRequest:
		vars, _ := json.Marshal(redacted(body.Variables))
		log.Debugf("--> %s %s\n%s\nvariables: %s", req.Method, req.URL, body.Query, vars)
	default:
		log.Debugf("--> %s %s (multipart)", req.Method, req.URL)
	}

	return nil
}

func logResponse(_ *resty.Client, resp *resty.Response) error {
	if log.Debugging() {
		log.Debugf("<-- %s in %s\n%s", resp.Status(), resp.Time(), resp.String())
	}
	return nil
}

// restyLogger routes resty's internal warnings into the application log.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { log.Warnf(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }
