package gemini

// promptData is the data passed to the prompt template.
type promptData struct {
	Text string
}

// ResponseSchema is the JSON document the model is asked to produce.
type ResponseSchema struct {
	Cards []CardSchema `json:"cards"`
}

// CardSchema is a single card in the model response.
type CardSchema struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}
