package view

import "github.com/msomdec/userboard/internal/domain"

// Page carries the fields every template expects.
type Page struct {
	Title    string
	Identity domain.Identity
	Error    string
}

type LoginData struct {
	Page
	Username string
}

type RegisterData struct {
	Page
	Username string
}

type RegisterDetailsData struct {
	Page
	Email string
	Phone string
}

type HomeData struct {
	Page
}

type InfoData struct {
	Page
	User domain.User
}

type TodosData struct {
	Page
	Todos     []domain.Todo
	Query     string
	Criteria  string
	SortKey   string
	SortDesc  bool
	EditingID int64
}

type PostsData struct {
	Page
	Owner     domain.User
	OwnQuery  string
	Posts     []domain.Post
	Query     string
	Criteria  string
	EditingID int64
}

type PostData struct {
	Page
	Post           domain.Post
	Comments       []domain.Comment
	EditingComment int64
}

type AlbumsData struct {
	Page
	Albums    []domain.Album
	Query     string
	EditingID int64
}

type AlbumData struct {
	Page
	Album        domain.Album
	Photos       []domain.Photo
	LoadMore     LoadMoreData
	EditingPhoto *domain.Photo
}

// LoadMoreData drives the fragment below the photo list: a load-more
// button while pages remain, an end-of-data line once they run out,
// and an empty-state line for an album with no photos at all.
type LoadMoreData struct {
	AlbumID    int64
	NextOffset int
	HasMore    bool
	Empty      bool
}

type ErrorData struct {
	Page
	Message string
}
