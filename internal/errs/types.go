package errs

// HTTPError is the error shape every failed request resolves to.
//
// It implements the error interface so it can travel up through the handler
// chain like any other error, and carries the exact status and message the
// client must receive. The JSON tags produce the response body
// {"error": "<message>"}; the status is set on the response, not the body.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It makes
// errors.Is(err, &HTTPError{}) usable as a type check across wrapped chains;
// it does not compare status or message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}
