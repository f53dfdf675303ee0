package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	appsvcs "github.com/ghuser/bizzy/services/notification/application/services"
	"github.com/ghuser/bizzy/services/notification/domain/repositories"
)

// ListHandler handles GET /notifications.
type ListHandler struct {
	svc *appsvcs.Services
}

// NewListHandler returns a ListHandler backed by the given services.
func NewListHandler(svc *appsvcs.Services) *ListHandler {
	return &ListHandler{svc: svc}
}

// Execute lists the caller's notifications, newest first.
//
//	@Summary	List notifications
//	@Tags		notifications
//	@Produce	json
//	@Param		unread	query		bool	false	"Only unread notifications"
//	@Param		limit	query		int		false	"Page size (max 200)"
//	@Param		offset	query		int		false	"Notifications to skip"
//	@Success	200		{object}	NotificationPage
//	@Failure	401		{object}	ErrorResponse
//	@Router		/notifications [get]
func (h *ListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, offset := httpx.Pagination(r)
	unread, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

	list, total, err := h.svc.Notification.List(r.Context(), userID, repositories.QueryOpts{
		UnreadOnly: unread,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items := make([]NotificationResponse, len(list))
	for i, n := range list {
		items[i] = toNotificationResponse(n)
	}
	httpx.JSON(w, http.StatusOK, NotificationPage{Items: items, Total: total, Limit: limit, Offset: offset})
}

// MarkReadHandler handles POST /notifications/{id}/read.
type MarkReadHandler struct {
	svc *appsvcs.Services
}

// NewMarkReadHandler returns a MarkReadHandler backed by the given services.
func NewMarkReadHandler(svc *appsvcs.Services) *MarkReadHandler {
	return &MarkReadHandler{svc: svc}
}

// Execute marks a notification as read.
//
//	@Summary	Mark a notification read
//	@Tags		notifications
//	@Produce	json
//	@Param		id	path		string	true	"Notification ID"
//	@Success	200	{object}	NotificationResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/notifications/{id}/read [post]
func (h *MarkReadHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	n, err := h.svc.Notification.MarkRead(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toNotificationResponse(n))
}

// StreamHandler handles GET /notifications/stream.
type StreamHandler struct {
	svc *appsvcs.Services
}

// NewStreamHandler returns a StreamHandler backed by the given services.
func NewStreamHandler(svc *appsvcs.Services) *StreamHandler {
	return &StreamHandler{svc: svc}
}

// Execute upgrades to a WebSocket that receives the caller's new notifications
// as {"type":"notification","data":{...}} frames.
//
//	@Summary	Notification stream (WebSocket)
//	@Tags		notifications
//	@Success	101
//	@Failure	401	{object}	ErrorResponse
//	@Router		/notifications/stream [get]
func (h *StreamHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	// The upgrader has already answered the client when Serve fails.
	_ = h.svc.Hub.Serve(w, r, userID)
}
