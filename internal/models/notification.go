package models

// NotificationPayload is the title/body/data triple delivered with a
// push. Built fresh for every trigger, never reused.
type NotificationPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// DeliveryReport summarizes a single fan-out delivery attempt. It is
// logged, not persisted; per-token outcomes stay with the transport.
type DeliveryReport struct {
	Attempted int      `json:"attempted"`
	Tokens    []string `json:"tokens,omitempty"`
}
