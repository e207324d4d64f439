package domain

// Definition is one sense of a headword as returned by the lookup service.
// Immutable once received.
type Definition struct {
	ID           int
	Meaning      string
	PartOfSpeech string
	Examples     []string
}

// Word is a dictionary entry: the headword plus its definitions.
//
// Definitions is never empty for a valid Word — a response with no
// definitions is reported as a not-found error instead. Synonyms exists for
// forward compatibility; the live lookup service does not populate it.
type Word struct {
	Word        string
	Definitions []Definition
	Synonyms    []string
}
