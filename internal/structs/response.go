package structs

// Response is the envelope every endpoint replies with.
type Response struct {
	Ok      bool        `json:"ok"`
	Msg     string      `json:"msg,omitempty"`
	Payload interface{} `json:"data,omitempty"`
}
