package schema

// CatalogArtworkTable represents the 'catalog.artwork' table
type CatalogArtworkTable struct {
	Table  string
	ID     string
	Name   string
	NameEn string
	Date   string
	Field1 string
	Field2 string
	File   string
	Info   string
}

// CatalogArtwork is the schema definition for catalog.artwork
var CatalogArtwork = CatalogArtworkTable{
	Table:  "catalog.artwork",
	ID:     "id",
	Name:   "name",
	NameEn: "name_en",
	Date:   "date",
	Field1: "field_1",
	Field2: "field_2",
	File:   "file",
	Info:   "info",
}

// Columns returns all standard column names
func (t CatalogArtworkTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameEn, t.Date, t.Field1, t.Field2, t.File, t.Info}
}
