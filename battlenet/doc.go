// Package battlenet provides a client for the Battle.net World of Warcraft community API.
//
// Every call is a single stateless HTTPS GET. The client resolves the regional host,
// fills the :placeholders of the resource path, sends apikey and locale in the query
// string together with any parameter the path did not consume, and turns the reply
// into either a *Response or exactly one error.
//
// # Usage
//
//	client, err := battlenet.NewClient(battlenet.Config{
//		APIKey: "your-api-key",
//		Region: battlenet.RegionEU,
//	}, battlenet.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Character(ctx, battlenet.Params{
//		"realm":  "medivh",
//		"name":   "yufa",
//		"fields": []string{"guild", "feed"},
//	})
//
// A call may override the client defaults with the reserved parameters region,
// apikey (or apiKey) and locale. The parameter map is copied, never modified.
//
// # Error Handling
//
//   - *ConfigError: missing API key, unsupported region, unknown resource or a path
//     placeholder without a value. errors.Is(err, ErrInvalidConfig) matches all of them.
//   - *ParseError: the body was not JSON. The message carries the first 200 characters.
//   - *APIError: HTTP status >= 400 or a body with status "nok".
//   - anything else is the transport error, returned as is.
//
// Use errors.As to inspect a failure:
//
//	var apiErr *battlenet.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing item
//	}
package battlenet
