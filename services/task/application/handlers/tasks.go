package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/task/application/services"
	taskdomain "github.com/ghuser/bizzy/services/task/domain"
	"github.com/ghuser/bizzy/services/task/domain/repositories"
)

// CreateTaskHandler handles POST /tasks.
type CreateTaskHandler struct {
	svc *appsvcs.Services
}

// NewCreateTaskHandler returns a CreateTaskHandler backed by the given services.
func NewCreateTaskHandler(svc *appsvcs.Services) *CreateTaskHandler {
	return &CreateTaskHandler{svc: svc}
}

// Execute creates a task with the next T code.
//
//	@Summary	Create task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TaskRequest	true	"Task"
//	@Success	201		{object}	TaskResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/tasks [post]
func (h *CreateTaskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[TaskRequest](w, r)
	if !ok {
		return
	}
	p, err := req.params()
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", taskdomain.ErrInvalidTask, err))
		return
	}

	task, err := h.svc.Task.Create(r.Context(), userID, p)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toTaskResponse(task))
}

// ListTasksHandler handles GET /tasks.
type ListTasksHandler struct {
	svc *appsvcs.Services
}

// NewListTasksHandler returns a ListTasksHandler backed by the given services.
func NewListTasksHandler(svc *appsvcs.Services) *ListTasksHandler {
	return &ListTasksHandler{svc: svc}
}

// Execute lists tasks ordered by code.
//
//	@Summary	List tasks
//	@Tags		tasks
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"
//	@Param		offset	query		int	false	"Records to skip"
//	@Success	200		{object}	TaskPage
//	@Failure	401		{object}	ErrorResponse
//	@Router		/tasks [get]
func (h *ListTasksHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, offset := httpx.Pagination(r)

	tasks, total, err := h.svc.Task.List(r.Context(), userID, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	httpx.JSON(w, http.StatusOK, TaskPage{Items: items, Total: total, Limit: limit, Offset: offset})
}

// GetTaskHandler handles GET /tasks/{id}.
type GetTaskHandler struct {
	svc *appsvcs.Services
}

// NewGetTaskHandler returns a GetTaskHandler backed by the given services.
func NewGetTaskHandler(svc *appsvcs.Services) *GetTaskHandler {
	return &GetTaskHandler{svc: svc}
}

// Execute returns one task.
//
//	@Summary	Get task
//	@Tags		tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	TaskResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tasks/{id} [get]
func (h *GetTaskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	id, err := httpx.UUIDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	task, err := h.svc.Task.Get(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTaskResponse(task))
}

// UpdateTaskHandler handles PUT /tasks/{id}.
type UpdateTaskHandler struct {
	svc *appsvcs.Services
}

// NewUpdateTaskHandler returns an UpdateTaskHandler backed by the given services.
func NewUpdateTaskHandler(svc *appsvcs.Services) *UpdateTaskHandler {
	return &UpdateTaskHandler{svc: svc}
}

// Execute replaces the editable fields of a task.
//
//	@Summary	Update task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Task ID"
//	@Param		request	body		TaskRequest	true	"Task"
//	@Success	200		{object}	TaskResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/tasks/{id} [put]
func (h *UpdateTaskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	id, err := httpx.UUIDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[TaskRequest](w, r)
	if !ok {
		return
	}
	p, err := req.params()
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", taskdomain.ErrInvalidTask, err))
		return
	}

	task, err := h.svc.Task.Update(r.Context(), userID, id, p)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTaskResponse(task))
}

// DeleteTaskHandler handles DELETE /tasks/{id}.
type DeleteTaskHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTaskHandler returns a DeleteTaskHandler backed by the given services.
func NewDeleteTaskHandler(svc *appsvcs.Services) *DeleteTaskHandler {
	return &DeleteTaskHandler{svc: svc}
}

// Execute deletes a task.
//
//	@Summary	Delete task
//	@Tags		tasks
//	@Param		id	path	string	true	"Task ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tasks/{id} [delete]
func (h *DeleteTaskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	id, err := httpx.UUIDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Task.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NextCodeHandler handles GET /tasks/next-code.
type NextCodeHandler struct {
	svc *appsvcs.Services
}

// NewNextCodeHandler returns a NextCodeHandler backed by the given services.
func NewNextCodeHandler(svc *appsvcs.Services) *NextCodeHandler {
	return &NextCodeHandler{svc: svc}
}

// Execute previews the next task code. Nothing is reserved.
//
//	@Summary	Preview next task code
//	@Tags		tasks
//	@Produce	json
//	@Success	200	{object}	NextCodeResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/tasks/next-code [get]
func (h *NextCodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	code, err := h.svc.Task.PreviewNextCode(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NextCodeResponse{Code: code})
}

// SummaryHandler handles GET /tasks/summary.
type SummaryHandler struct {
	svc *appsvcs.Services
}

// NewSummaryHandler returns a SummaryHandler backed by the given services.
func NewSummaryHandler(svc *appsvcs.Services) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// Execute counts planned, completed, upcoming and overdue tasks.
//
//	@Summary	Task summary
//	@Tags		tasks
//	@Produce	json
//	@Success	200	{object}	SummaryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/tasks/summary [get]
func (h *SummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	sum, err := h.svc.Task.Summary(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ToSummaryResponse(sum))
}
