package schema

// LibraryBookStateTable represents the 'library.book_state' table
type LibraryBookStateTable struct {
	Table      string
	ID         string
	UserID     string
	ArtworkID  string
	Epubcfi    string
	Percent    string
	Show       string
	DateUpdate string
}

// LibraryBookState is the schema definition for library.book_state
var LibraryBookState = LibraryBookStateTable{
	Table:      "library.book_state",
	ID:         "id",
	UserID:     "user_id",
	ArtworkID:  "artwork_id",
	Epubcfi:    "epubcfi",
	Percent:    "percent",
	Show:       "show",
	DateUpdate: "date_update",
}

// Columns returns all standard column names
func (t LibraryBookStateTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ArtworkID, t.Epubcfi, t.Percent, t.Show, t.DateUpdate}
}
