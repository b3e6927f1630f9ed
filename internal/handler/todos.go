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

// TodoHandler serves the todos screen.
type TodoHandler struct {
	todos *service.TodoService
}

// HandleList renders the todo list with the current search and sort
// settings applied.
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *TodoHandler) renderList(w http.ResponseWriter, r *http.Request, errMsg string) {
	identity := IdentityFromContext(r.Context())

	list, err := h.todos.ListForUser(r.Context(), identity.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	q := r.URL.Query()
	criteria := q.Get("by")
	if criteria == "" {
		criteria = service.TodoKeyTitle
	}
	sortKey := q.Get("sort")
	if sortKey == "" {
		sortKey = service.TodoKeyID
	}
	desc := q.Get("dir") == "desc"
	editID, _ := strconv.ParseInt(q.Get("edit"), 10, 64)

	list = service.FilterTodos(list, criteria, q.Get("q"))
	list = service.SortTodos(list, sortKey, desc)

	data := view.TodosData{
		Page:      page(r, "Todos"),
		Todos:     list,
		Query:     q.Get("q"),
		Criteria:  criteria,
		SortKey:   sortKey,
		SortDesc:  desc,
		EditingID: editID,
	}
	data.Error = errMsg
	view.Render(w, http.StatusOK, "todos", data)
}

// HandleCreate adds a todo and returns to the list.
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	if _, err := h.todos.Create(r.Context(), identity.ID, r.FormValue("title")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.renderList(w, r, inputMessage(err))
			return
		}
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/todos", http.StatusSeeOther)
}

// HandleUpdate replaces a todo's title and completed flag.
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	todo := domain.Todo{
		ID:        id,
		UserID:    identity.ID,
		Title:     r.FormValue("title"),
		Completed: r.FormValue("completed") != "",
	}
	if _, err := h.todos.Update(r.Context(), todo); err != nil {
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
	http.Redirect(w, r, "/todos", http.StatusSeeOther)
}

// HandleDelete removes a todo and returns to the list.
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r)
		return
	}

	if err := h.todos.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/todos", http.StatusSeeOther)
}
