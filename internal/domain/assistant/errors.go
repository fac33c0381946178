package assistant

import "errors"

var (
	ErrUnsupportedRequestType = errors.New("unsupported request type: must be one of email_template, policy, formula_suggestion")
	ErrUpstreamUnavailable    = errors.New("text generation backend is unavailable")
)
