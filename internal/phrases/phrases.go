// Package phrases holds the static catalog of Portuguese practice phrases.
package phrases

import "errors"

// ErrNotFound is returned by ByID when no phrase has the given id.
var ErrNotFound = errors.New("phrase not found")

// Phrase is a practice phrase with its English translation.
type Phrase struct {
	ID          int    `json:"id"`
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
}

// Catalog is a read-only phrase collection. It is immutable after
// construction and safe for concurrent readers.
type Catalog struct {
	list []Phrase
}

// defaultPhrases matches the phrase set shipped with the frontend.
var defaultPhrases = []Phrase{
	{ID: 1, Phrase: "Olá, como vai?", Translation: "Hello, how are you?"},
	{ID: 2, Phrase: "Bom dia", Translation: "Good morning"},
	{ID: 3, Phrase: "Obrigado", Translation: "Thank you"},
	{ID: 4, Phrase: "Por favor", Translation: "Please"},
	{ID: 5, Phrase: "Como se chama?", Translation: "What is your name?"},
	{ID: 6, Phrase: "Muito prazer", Translation: "Nice to meet you"},
	{ID: 7, Phrase: "Até logo", Translation: "See you later"},
	{ID: 8, Phrase: "Boa noite", Translation: "Good night"},
	{ID: 9, Phrase: "Eu não entendo", Translation: "I don't understand"},
	{ID: 10, Phrase: "Você fala inglês?", Translation: "Do you speak English?"},
}

// NewCatalog builds the catalog from the default phrase set.
func NewCatalog() *Catalog {
	list := make([]Phrase, len(defaultPhrases))
	copy(list, defaultPhrases)
	return &Catalog{list: list}
}

// All returns every phrase in insertion order. The returned slice is a copy;
// callers may not mutate the catalog through it.
func (c *Catalog) All() []Phrase {
	out := make([]Phrase, len(c.list))
	copy(out, c.list)
	return out
}

// ByID returns the phrase with the given id, or ErrNotFound.
func (c *Catalog) ByID(id int) (Phrase, error) {
	for _, p := range c.list {
		if p.ID == id {
			return p, nil
		}
	}
	return Phrase{}, ErrNotFound
}
