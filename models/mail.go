package models

// Mail is one outgoing plain-text message handed to the mail relay.
type Mail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
