package handlers

import (
	"net/http"

	"wearbmi/internal/tracker"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type chatHistoryResponse struct {
	Messages []tracker.ChatMessage `json:"messages"`
}

type chatQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// Chat sends a message to the assistant (POST) or returns the transcript
// (GET).
func Chat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		sendChatMessage(w, r)
	case http.MethodGet:
		chatHistory(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t := clientTracker(r)
	reply, err := t.SendChatMessage(r.Context(), req.Message)
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, chatResponse{Reply: reply})
}

func chatHistory(w http.ResponseWriter, r *http.Request) {
	t := clientTracker(r)
	messages := t.ChatHistory()
	if messages == nil {
		messages = []tracker.ChatMessage{}
	}
	writeJSON(w, r, http.StatusOK, chatHistoryResponse{Messages: messages})
}

// ChatQuestions returns quick-tap question suggestions for the client's
// current BMI category.
func ChatQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t := clientTracker(r)
	writeJSON(w, r, http.StatusOK, chatQuestionsResponse{Questions: t.SuggestedQuestions()})
}
