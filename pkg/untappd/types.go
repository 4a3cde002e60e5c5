package untappd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Meta is the status envelope Untappd wraps around every response.
type Meta struct {
	Code         int           `json:"code"`
	ErrorDetail  string        `json:"error_detail,omitempty"`
	ErrorType    string        `json:"error_type,omitempty"`
	ResponseTime *ResponseTime `json:"response_time,omitempty"`
}

type ResponseTime struct {
	Time    float64 `json:"time"`
	Measure string  `json:"measure"`
}

// APIResponse is a decoded Untappd response. Response holds the payload as
// raw JSON; use Decode to unmarshal it into a concrete type.
type APIResponse struct {
	StatusCode int             `json:"-"`
	Meta       Meta            `json:"meta"`
	Response   json.RawMessage `json:"response"`
}

// Decode unmarshals the response payload into v.
func (r *APIResponse) Decode(v any) error {
	if len(r.Response) == 0 {
		return fmt.Errorf("response payload is empty")
	}
	return json.Unmarshal(r.Response, v)
}

// OAuthToken is the credential returned by the authorization-code exchange.
type OAuthToken struct {
	AccessToken string `json:"access_token"`
}

// Params holds query parameters for an endpoint call. Booleans serialize as
// "true"/"false"; other scalars use their natural string form.
type Params map[string]any

func (p Params) encode() url.Values {
	values := url.Values{}
	for key, value := range p {
		switch v := value.(type) {
		case bool:
			values.Set(key, strconv.FormatBool(v))
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values
}

func (p Params) clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}
