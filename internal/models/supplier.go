package models

// Supplier is one candidate supplier derived from a single organic search
// result. Fields the search provider omits stay empty and are dropped from
// the response JSON.
type Supplier struct {
	Title   string `json:"title,omitempty"`
	Link    string `json:"link,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
