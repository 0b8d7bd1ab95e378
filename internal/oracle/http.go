// Package oracle provides the concrete candidate-testing oracles the
// search engine is pointed at: an HTTP login form and SSH password
// authentication.  Both satisfy search.Oracle and are safe for
// concurrent use by every worker.
package oracle

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"credprobe/config"
	cperrors "credprobe/internal/errors"
	"credprobe/internal/guard"
	"credprobe/internal/search"
	"credprobe/util"
)

// maxBodyBytes caps how much of a login response is read when looking
// for the failure marker.  Login pages are small; anything bigger is
// either the success page or a misconfigured target.
const maxBodyBytes = 1 << 20

// HTTPForm tests candidates by posting a login form and checking the
// response body for a failure marker.  Marker present ⇒ Rejected,
// marker absent ⇒ Success, transport fault ⇒ Error.
//
// Transport faults are retried with a short backoff, and a breaker
// stops the whole pool from hammering an endpoint that has gone dark.
// Both live here rather than in the pool: the engine imposes no rate
// policy of its own.
type HTTPForm struct {
	URL           string
	Username      string
	UsernameField string
	PasswordField string
	FailureMarker string

	Client  *http.Client   // nil → http.DefaultClient
	Breaker *guard.Breaker // nil → no breaker
	Backoff *guard.Backoff // nil → single attempt per candidate
	Logger  *util.Logger
}

// NewHTTPForm builds the form oracle from the run configuration.
func NewHTTPForm(cfg *config.Config, logger *util.Logger) *HTTPForm {
	return &HTTPForm{
		URL:           cfg.TargetURL,
		Username:      cfg.Username,
		UsernameField: config.DefaultUsernameField,
		PasswordField: config.DefaultPasswordField,
		FailureMarker: cfg.FailureMarker,
		Client:        &http.Client{Timeout: cfg.Timeout},
		Breaker: guard.NewBreaker(&guard.BreakerConfig{
			OnStateChange: func(from, to guard.State) {
				logger.Warn("oracle breaker: %s → %s", from, to)
			},
		}),
		Backoff: guard.DefaultBackoff(),
		Logger:  logger,
	}
}

// Test implements search.Oracle.
func (o *HTTPForm) Test(ctx context.Context, c search.Candidate) search.Outcome {
	var rejected bool

	post := func() error {
		form := url.Values{}
		form.Set(o.usernameField(), o.Username)
		form.Set(o.passwordField(), string(c))

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL,
			strings.NewReader(form.Encode()))
		if err != nil {
			return guard.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := o.client().Do(req)
		if err != nil {
			return cperrors.Wrap("post", o.URL, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return cperrors.Wrap("read", o.URL, err)
		}
		rejected = strings.Contains(string(body), o.FailureMarker)
		return nil
	}

	attempt := func(n int) error {
		if n > 1 && o.Logger != nil {
			o.Logger.Debug("oracle: retry %d for %q", n, c)
		}
		if o.Breaker != nil {
			return o.Breaker.Execute(post)
		}
		return post()
	}

	var err error
	if o.Backoff != nil {
		err = o.Backoff.Do(ctx, attempt)
	} else {
		err = attempt(1)
	}
	if err != nil {
		return search.Fault(err)
	}
	if rejected {
		return search.Rejected()
	}
	return search.Success()
}

func (o *HTTPForm) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}

func (o *HTTPForm) usernameField() string {
	if o.UsernameField != "" {
		return o.UsernameField
	}
	return config.DefaultUsernameField
}

func (o *HTTPForm) passwordField() string {
	if o.PasswordField != "" {
		return o.PasswordField
	}
	return config.DefaultPasswordField
}
