package entities

// Book represents a book entity. A book belongs to exactly one author for
// its lifetime; updates never reassign it.
type Book struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID uint   `json:"author_id"`
}

// CreateBookInput represents input for creating a book
type CreateBookInput struct {
	Title    string `json:"title" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	AuthorID uint   `json:"author_id" binding:"required"`
}

// UpdateBookInput represents input for a full replace of title and year
type UpdateBookInput struct {
	Title string `json:"title" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

// PatchBookInput represents a partial update; only supplied fields change
type PatchBookInput struct {
	Title *string `json:"title"`
	Year  *int    `json:"year"`
}
