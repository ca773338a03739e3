package schema

// CatalogAuthorTable represents the 'catalog.author' table
type CatalogAuthorTable struct {
	Table     string
	ID        string
	Name      string
	NameEn    string
	DateBirth string
	DateDeath string
	Photo     string
	Info      string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogAuthorTable{
	Table:     "catalog.author",
	ID:        "id",
	Name:      "name",
	NameEn:    "name_en",
	DateBirth: "date_birth",
	DateDeath: "date_death",
	Photo:     "photo",
	Info:      "info",
}

// Columns returns all standard column names
func (t CatalogAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameEn, t.DateBirth, t.DateDeath, t.Photo, t.Info}
}
