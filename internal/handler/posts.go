package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/view"
)

// PostHandler serves the posts screen and its comments.
type PostHandler struct {
	posts *service.PostService
}

// HandleList renders the post list. By default it shows the signed-in
// user's posts; ?user= switches to another user's.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *PostHandler) renderList(w http.ResponseWriter, r *http.Request, errMsg string) {
	identity := IdentityFromContext(r.Context())
	q := r.URL.Query()

	owner := domain.User{ID: identity.ID, Username: identity.Username}
	ownQuery := q.Get("user")
	if ownQuery != "" && ownQuery != identity.Username {
		other, err := h.posts.ResolveUser(r.Context(), ownQuery)
		switch {
		case err == nil:
			owner = *other
		case errors.Is(err, domain.ErrNotFound):
			if errMsg == "" {
				errMsg = "No user named " + ownQuery + "."
			}
		default:
			renderError(w, r, err)
			return
		}
	}

	list, err := h.posts.ListForUser(r.Context(), owner.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	criteria := q.Get("by")
	if criteria == "" {
		criteria = service.PostKeyTitle
	}
	editID, _ := strconv.ParseInt(q.Get("edit"), 10, 64)

	list = service.SearchPosts(list, criteria, q.Get("q"))

	data := view.PostsData{
		Page:      page(r, "Posts"),
		Owner:     owner,
		OwnQuery:  ownQuery,
		Posts:     list,
		Query:     q.Get("q"),
		Criteria:  criteria,
		EditingID: editID,
	}
	data.Error = errMsg
	view.Render(w, http.StatusOK, "posts", data)
}

// HandleCreate publishes a new post.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	if _, err := h.posts.Create(r.Context(), identity.ID, r.FormValue("title"), r.FormValue("body")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.renderList(w, r, inputMessage(err))
			return
		}
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// HandleDetail renders a single post with its comments.
func (h *PostHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r)
			return
		}
		renderError(w, r, err)
		return
	}

	comments, err := h.posts.Comments(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	editComment, _ := strconv.ParseInt(r.URL.Query().Get("editComment"), 10, 64)

	view.Render(w, http.StatusOK, "post", view.PostData{
		Page:           page(r, post.Title),
		Post:           *post,
		Comments:       comments,
		EditingComment: editComment,
	})
}

// HandleUpdate replaces a post's title and body.
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	post := domain.Post{
		ID:     id,
		UserID: identity.ID,
		Title:  r.FormValue("title"),
		Body:   r.FormValue("body"),
	}
	if _, err := h.posts.Update(r.Context(), post); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderList(w, r, inputMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			renderNotFound(w, r)
		default:
			renderError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// HandleDelete removes a post.
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// HandleAddComment attaches a comment authored by the signed-in user.
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	_, err = h.posts.AddComment(r.Context(), postID, identity.Username, identity.Email, r.FormValue("body"))
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}

// HandleUpdateComment replaces a comment's body.
func (h *PostHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}
	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	comment := domain.Comment{
		ID:     commentID,
		PostID: postID,
		Name:   identity.Username,
		Email:  identity.Email,
		Body:   r.FormValue("body"),
	}
	if _, err := h.posts.UpdateComment(r.Context(), comment); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			renderNotFound(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			http.Redirect(w, r, "/posts/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
		default:
			renderError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}

// HandleDeleteComment removes a comment.
func (h *PostHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}
	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	if err := h.posts.DeleteComment(r.Context(), commentID); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.FormatInt(postID, 10), http.StatusSeeOther)
}
