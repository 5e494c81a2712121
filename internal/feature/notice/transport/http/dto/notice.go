// Package dto defines data transfer objects for the notice feature's HTTP transport layer.
package dto

import (
	"strings"
	"time"

	"notice_board/internal/feature/notice/domain/entity"
)

// CreateNoticeReq is the request body for POST /notices.
// "description" is accepted in place of "message".
type CreateNoticeReq struct {
	Title       string `json:"title" binding:"required,notblank"`
	Message     string `json:"message" binding:"required_without=Description"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Body returns message, falling back to description.
func (r CreateNoticeReq) Body() string {
	if strings.TrimSpace(r.Message) != "" {
		return r.Message
	}
	return r.Description
}

// NoticeResponse is the JSON form of a notice.
// Description mirrors Message for clients that render "description".
type NoticeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UserID      *uint     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity converts a domain notice to its response form.
func FromEntity(n entity.Notice) NoticeResponse {
	return NoticeResponse{
		ID:          n.ID,
		Title:       n.Title,
		Message:     n.Message,
		Description: n.Message,
		Date:        n.Date,
		UserID:      n.UserID,
		CreatedAt:   n.CreatedAt,
	}
}

// FromEntities converts a list, returning an empty slice rather than nil.
func FromEntities(ns []entity.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromEntity(n))
	}
	return out
}
