package slovarapi

// apiResponse is the success body of the lookup service.
type apiResponse struct {
	Word        string          `json:"word"`
	Definitions []apiDefinition `json:"definitions"`
}

// apiDefinition is a single definition within a response.
// PartOfSpeech may be empty or a generic placeholder; Examples may be absent.
type apiDefinition struct {
	ID           int      `json:"id"`
	Meaning      string   `json:"meaning"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Examples     []string `json:"examples"`
}
