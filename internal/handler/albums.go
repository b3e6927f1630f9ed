package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/view"
)

// AlbumHandler serves the albums screen and its photos.
type AlbumHandler struct {
	albums *service.AlbumService
}

// HandleList renders the album list, narrowed by the combined search
// term when one is set.
func (h *AlbumHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *AlbumHandler) renderList(w http.ResponseWriter, r *http.Request, errMsg string) {
	identity := IdentityFromContext(r.Context())

	list, err := h.albums.ListForUser(r.Context(), identity.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	q := r.URL.Query()
	editID, _ := strconv.ParseInt(q.Get("edit"), 10, 64)

	list = service.SearchAlbums(list, q.Get("q"))

	data := view.AlbumsData{
		Page:      page(r, "Albums"),
		Albums:    list,
		Query:     q.Get("q"),
		EditingID: editID,
	}
	data.Error = errMsg
	view.Render(w, http.StatusOK, "albums", data)
}

// HandleCreate adds an album and returns to the list.
func (h *AlbumHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	if _, err := h.albums.Create(r.Context(), identity.ID, r.FormValue("title")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.renderList(w, r, inputMessage(err))
			return
		}
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/albums", http.StatusSeeOther)
}

// HandleDetail renders an album with the first page of its photos.
func (h *AlbumHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	album, err := h.albums.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r)
			return
		}
		renderError(w, r, err)
		return
	}

	photos, hasMore, err := h.albums.PhotoPage(r.Context(), id, 0)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var editing *domain.Photo
	if editID, _ := strconv.ParseInt(r.URL.Query().Get("editPhoto"), 10, 64); editID > 0 {
		if p, err := h.albums.Photo(r.Context(), editID); err == nil && p.AlbumID == id {
			editing = p
		}
	}

	view.Render(w, http.StatusOK, "album", view.AlbumData{
		Page:   page(r, album.Title),
		Album:  *album,
		Photos: photos,
		LoadMore: view.LoadMoreData{
			AlbumID:    id,
			NextOffset: len(photos),
			HasMore:    hasMore,
			Empty:      len(photos) == 0,
		},
		EditingPhoto: editing,
	})
}

// HandleUpdate replaces an album's title.
func (h *AlbumHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	album := domain.Album{ID: id, UserID: identity.ID, Title: r.FormValue("title")}
	if _, err := h.albums.Update(r.Context(), album); err != nil {
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
	http.Redirect(w, r, "/albums", http.StatusSeeOther)
}

// HandleDelete removes an album.
func (h *AlbumHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	if err := h.albums.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/albums", http.StatusSeeOther)
}

// HandleMorePhotos streams the next photo page into the open album
// page: new cards are appended to the list and the load-more button is
// replaced with one pointing at the following offset.
func (h *AlbumHandler) HandleMorePhotos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	photos, hasMore, err := h.albums.PhotoPage(r.Context(), id, offset)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	listHTML, err := view.Fragment("photo_list", photos)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	moreHTML, err := view.Fragment("load_more", view.LoadMoreData{
		AlbumID:    id,
		NextOffset: offset + len(photos),
		HasMore:    hasMore,
		Empty:      offset+len(photos) == 0,
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElements(listHTML,
		datastar.WithSelectorID("photo-list"),
		datastar.WithModeAppend(),
	)
	sse.PatchElements(moreHTML)
}

// HandleAddPhoto attaches a photo to the album.
func (h *AlbumHandler) HandleAddPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	_, err = h.albums.AddPhoto(r.Context(), id, r.FormValue("title"), r.FormValue("thumbnailUrl"))
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/albums/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandleUpdatePhoto replaces a photo's title and thumbnail.
func (h *AlbumHandler) HandleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}
	photoID, err := strconv.ParseInt(chi.URLParam(r, "photoID"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	photo := domain.Photo{
		ID:           photoID,
		AlbumID:      id,
		Title:        r.FormValue("title"),
		ThumbnailURL: r.FormValue("thumbnailUrl"),
	}
	if _, err := h.albums.UpdatePhoto(r.Context(), photo); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			renderNotFound(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			http.Redirect(w, r, "/albums/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		default:
			renderError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/albums/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandleDeletePhoto removes a photo.
func (h *AlbumHandler) HandleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}
	photoID, err := strconv.ParseInt(chi.URLParam(r, "photoID"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	if err := h.albums.DeletePhoto(r.Context(), photoID); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/albums/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}
