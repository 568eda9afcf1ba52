package model

type PetitionResponse struct {
	Text string `json:"text"`
}

type QueryResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
