package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/garnizeh/askhub/internal/qa"
)

type QuestionsHandler struct {
	questions *qa.QuestionService
	answers   *qa.AnswerService
	comments  *qa.CommentService
	ai        *qa.AIAnswerService
}

func NewQuestionsHandler(qs *qa.QuestionService, as *qa.AnswerService, cs *qa.CommentService, ai *qa.AIAnswerService) *QuestionsHandler {
	return &QuestionsHandler{questions: qs, answers: as, comments: cs, ai: ai}
}

type createQuestionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
}

type createQuestionResponse struct {
	QuestionID string `json:"question_id"`
}

func (h *QuestionsHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createQuestionRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	id, err := h.questions.Create(r.Context(), caller.CompanyID, caller.UserID, qa.CreateQuestionInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, createQuestionResponse{QuestionID: id}, http.StatusCreated)
}

func (h *QuestionsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()

	page := 1
	if p := q.Get("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = v
	}

	pageSize := qa.DefaultPageSize
	if ps := q.Get("page_size"); ps != "" {
		v, err := strconv.Atoi(ps)
		if err != nil {
			http.Error(w, "invalid page_size", http.StatusBadRequest)
			return
		}
		pageSize = v
	}

	var tags []string
	for _, t := range q["tags"] {
		// accept both repeated params and comma-separated values
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
	}

	result, err := h.questions.List(r.Context(), caller.CompanyID, qa.ListQuestionsInput{
		Tags:     tags,
		SortBy:   q.Get("sort_by"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func (h *QuestionsHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	questionID := mux.Vars(r)["id"]

	detail, err := h.questions.Detail(r.Context(), caller.CompanyID, questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, detail, http.StatusOK)
}

type createAnswerRequest struct {
	Body string `json:"body" validate:"required"`
}

type createAnswerResponse struct {
	AnswerID string `json:"answer_id"`
}

func (h *QuestionsHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	questionID := mux.Vars(r)["id"]

	var req createAnswerRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	id, err := h.answers.Create(r.Context(), caller.CompanyID, caller.UserID, questionID, req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, createAnswerResponse{AnswerID: id}, http.StatusCreated)
}

type createCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type createCommentResponse struct {
	CommentID string `json:"comment_id"`
}

func (h *QuestionsHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	answerID := mux.Vars(r)["id"]

	var req createCommentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	id, err := h.comments.Create(r.Context(), caller.UserID, answerID, req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, createCommentResponse{CommentID: id}, http.StatusCreated)
}

func (h *QuestionsHandler) GenerateAIAnswer(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	questionID := mux.Vars(r)["id"]

	generated, err := h.ai.Generate(r.Context(), caller.CompanyID, questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, generated, http.StatusCreated)
}
