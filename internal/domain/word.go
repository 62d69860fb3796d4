package domain

// Row is a single record of the tabular source.
type Row struct {
	Word       string
	POS        string
	Definition string
	Example    string
}

// DefinitionEntry is one sense of a word: the non-key fields of a Row, verbatim.
type DefinitionEntry struct {
	POS        string `json:"pos"`
	Definition string `json:"def"`
	Example    string `json:"eg"`
}

// WordEntry groups every definition of one word in source row order.
type WordEntry struct {
	Word        string            `json:"word"`
	Definitions []DefinitionEntry `json:"definitions"`
}

// Entry returns the DefinitionEntry carried by the row.
func (r Row) Entry() DefinitionEntry {
	return DefinitionEntry{
		POS:        r.POS,
		Definition: r.Definition,
		Example:    r.Example,
	}
}

// Catalog folds rows into word entries, remembering the order in which each
// word was first seen. The zero value is not usable; call NewCatalog.
type Catalog struct {
	index   map[string]int
	entries []WordEntry
	defs    int
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends the row's definition to the entry for row.Word, creating the
// entry on first sight. The empty string is a regular key.
func (c *Catalog) Add(row Row) {
	def := row.Entry()
	c.defs++

	if i, ok := c.index[row.Word]; ok {
		c.entries[i].Definitions = append(c.entries[i].Definitions, def)
		return
	}

	c.index[row.Word] = len(c.entries)
	c.entries = append(c.entries, WordEntry{
		Word:        row.Word,
		Definitions: []DefinitionEntry{def},
	})
}

// Len returns the number of distinct words.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DefinitionCount returns the number of definitions added so far.
func (c *Catalog) DefinitionCount() int {
	return c.defs
}

// Lookup returns the entry for word, if any.
func (c *Catalog) Lookup(word string) (WordEntry, bool) {
	i, ok := c.index[word]
	if !ok {
		return WordEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns the word entries in first-appearance order.
// The returned slice is never nil.
func (c *Catalog) Entries() []WordEntry {
	out := make([]WordEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
