package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	Text       string
	Difficulty string
}

// rawCard is a single entry of the model's JSON array before validation.
// The difficulty field is parsed but never trusted; the caller's
// requested difficulty replaces it.
type rawCard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty,omitempty"`
}
