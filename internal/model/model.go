package model

import "time"

// CaseDocument is an uploaded file held in memory for the duration of a
// single generation request. It is never persisted; only derived text or
// generated artifacts survive the request.
type CaseDocument struct {
	Name     string
	MimeType string
	Data     []byte
}

// PostContent is the structured text of a social-media post. It is decoded
// from a schema-constrained model response, so it is either fully populated
// or the request fails.
type PostContent struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Copy        string   `json:"copy"`
	Hashtags    []string `json:"hashtags"`
	SEOKeywords []string `json:"seoKeywords"`
}

// PostResult pairs the generated text with the two image variants, both
// encoded as data URIs.
type PostResult struct {
	PostContent         PostContent `json:"postContent"`
	ImageURLWithText    string      `json:"imageUrlWithText"`
	ImageURLWithoutText string      `json:"imageUrlWithoutText"`
}

type SavedPetition struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	SavedAt time.Time `json:"savedAt"`
}

type SavedPost struct {
	ID      string     `json:"id"`
	SavedAt time.Time  `json:"savedAt"`
	Post    PostResult `json:"post"`
}

type SavedQuery struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	SavedAt time.Time `json:"savedAt"`
}
