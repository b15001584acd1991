package model

// LinkRecord is the classified result for a single anchor on the page.
// JSON field names are the external contract and must not change.
type LinkRecord struct {
	LinkType           string `json:"linkType"`
	LinkText           string `json:"linkText"`
	AriaLabel          string `json:"ariaLabel"`
	URL                string `json:"url"`
	RedirectedURL      string `json:"redirectedUrl"`
	Target             string `json:"target"`
	StatusCode         int    `json:"statusCode"`
	StatusColor        string `json:"statusColor"`
	OriginalURLColor   string `json:"originalUrlColor"`
	RedirectedURLColor string `json:"redirectedUrlColor"`
}

// ImageRecord reports a single image and its alt-text coverage.
type ImageRecord struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	HasAlt bool   `json:"hasAlt"`
}

// MetaTagRecord is one meta tag, keyed by its name or property attribute.
type MetaTagRecord struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// HeadingRecord is one heading element in document order.
type HeadingRecord struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// VideoRecord describes a video player found on the page, either a native
// <video> element or a known iframe embed.
type VideoRecord struct {
	Src      string `json:"src"`
	Poster   string `json:"poster,omitempty"`
	Provider string `json:"provider"`
	Controls bool   `json:"controls"`
	Autoplay bool   `json:"autoplay"`
	Muted    bool   `json:"muted"`
}

// PageReport aggregates every fact collected about a single page.
type PageReport struct {
	URL      string          `json:"url"`
	Title    string          `json:"title"`
	Links    []LinkRecord    `json:"links"`
	Images   []ImageRecord   `json:"images"`
	Meta     []MetaTagRecord `json:"meta"`
	Headings []HeadingRecord `json:"headings"`
	Videos   []VideoRecord   `json:"videos"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
