package handlers

// JSON:API envelopes used by every endpoint: a single-resource document for
// successes and an errors document for failures.

type Resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

type Document struct {
	Data Resource `json:"data"`
}

func Single(id, resourceType string, attributes any) Document {
	return Document{
		Data: Resource{
			ID:         id,
			Type:       resourceType,
			Attributes: attributes,
		},
	}
}

type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

func NewErrorDocument(status, title, detail string) ErrorDocument {
	return ErrorDocument{
		Errors: []ErrorObject{{
			Status: status,
			Title:  title,
			Detail: detail,
		}},
	}
}
