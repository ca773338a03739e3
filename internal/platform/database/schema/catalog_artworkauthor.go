package schema

// CatalogArtworkAuthorTable represents the 'catalog.artwork_author' join table
type CatalogArtworkAuthorTable struct {
	Table     string
	ArtworkID string
	AuthorID  string
}

// CatalogArtworkAuthor is the schema definition for catalog.artwork_author
var CatalogArtworkAuthor = CatalogArtworkAuthorTable{
	Table:     "catalog.artwork_author",
	ArtworkID: "artwork_id",
	AuthorID:  "author_id",
}
