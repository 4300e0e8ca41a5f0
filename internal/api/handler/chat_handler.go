package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"idento/internal/app/service"
	"idento/internal/common"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.reply)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) reply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	// A missing or malformed body is treated as an empty prompt, not an
	// error; the responder has a canned answer for it.
	_ = json.NewDecoder(r.Body).Decode(&req)

	common.RespondWithJSON(w, http.StatusOK, chatResponse{Reply: h.chat.Reply(req.Message)})
}
