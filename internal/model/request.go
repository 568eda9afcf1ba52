package model

type QueryRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type SavePetitionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type SaveQueryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type SavePostRequest struct {
	Post PostResult `json:"post" binding:"required"`
}

// UpdateRecordRequest carries the editable fields of a saved record. Nil
// fields are left untouched, matching the partial-update contract of the
// history stores.
type UpdateRecordRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ExportPetitionRequest struct {
	Text string `json:"text" binding:"required"`
}

type ExportPostRequest struct {
	PostContent PostContent `json:"postContent" binding:"required"`
}
