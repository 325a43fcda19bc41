package model

type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

type Book struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	Price      string  `db:"price"`
	AuthorName string  `db:"author_name"`
	OwnerID    *int64  `db:"owner_id"`
	Rating     *string `db:"rating"`
}

// BookRow is a book joined with its owner and the per-book aggregates
// computed in the list query.
type BookRow struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	Price      string  `db:"price"`
	AuthorName string  `db:"author_name"`
	OwnerName  *string `db:"owner_name"`
	LikesCount int64   `db:"likes_count"`
	Rating     *string `db:"rating"`
}

type Reader struct {
	BookID    int64  `json:"-" db:"book_id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

type BookResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	AuthorName string   `json:"author_name"`
	OwnerName  *string  `json:"owner_name"`
	Readers    []Reader `json:"readers"`
	LikesCount int64    `json:"likes_count"`
	Rating     *string  `json:"rating"`
}

func NewBookResponse(row BookRow, readers []Reader) BookResponse {
	if readers == nil {
		readers = make([]Reader, 0)
	}
	return BookResponse{
		ID:         row.ID,
		Name:       row.Name,
		Price:      row.Price,
		AuthorName: row.AuthorName,
		OwnerName:  row.OwnerName,
		Readers:    readers,
		LikesCount: row.LikesCount,
		Rating:     row.Rating,
	}
}

type UserBookRelation struct {
	ID          int64 `json:"-" db:"id"`
	UserID      int64 `json:"-" db:"user_id"`
	BookID      int64 `json:"book" db:"book_id"`
	Like        bool  `json:"like" db:"liked"`
	InBookmarks bool  `json:"in_bookmarks" db:"in_bookmarks"`
	Rate        *int  `json:"rate" db:"rate"`
}

// BookFilter narrows the book collection before annotation.
type BookFilter struct {
	ID      *int64
	Price   *string
	Search  string
	OrderBy string
	Desc    bool
}
