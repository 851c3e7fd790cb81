package core

// Request is a finalized outgoing call: the query is already canonical
// and, for signed endpoints, ends with the signature.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Query   string            `json:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetQuery(query string) *Request {
	r.Query = query
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// FullURL returns the URL with the query attached verbatim.
func (r *Request) FullURL() string {
	if r.Query == "" {
		return r.URL
	}
	return r.URL + "?" + r.Query
}
