package catalog

import "github.com/heartmarshall/tokipona-words/internal/domain"

// BuildCatalog folds rows into one WordEntry per distinct word. Entries come
// out in the order their word first appeared; definitions keep row order.
func BuildCatalog(rows []domain.Row) []domain.WordEntry {
	return fold(rows).Entries()
}

func fold(rows []domain.Row) *domain.Catalog {
	c := domain.NewCatalog()
	for _, row := range rows {
		c.Add(row)
	}
	return c
}
