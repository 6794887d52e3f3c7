package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"javaconnect/internal/models"
)

// fakeAPI is an in-memory stand-in for the real server, speaking the same
// envelope and routes the client uses.
type fakeAPI struct {
	mu        sync.Mutex
	questions map[uint]*models.Question
	answers   map[uint]*models.Answer
	feedbacks map[uint]*models.Feedback
	flags     map[uint]*models.Flag
	nextID    uint

	// failFlagChecks makes flag lookups return 500 to simulate an outage.
	failFlagChecks bool

	srv *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{
		questions: make(map[uint]*models.Question),
		answers:   make(map[uint]*models.Answer),
		feedbacks: make(map[uint]*models.Feedback),
		flags:     make(map[uint]*models.Flag),
		nextID:    1,
	}
	api.srv = httptest.NewServer(api.routes())
	t.Cleanup(api.srv.Close)
	return api
}

func (a *fakeAPI) id() uint {
	id := a.nextID
	a.nextID++
	return id
}

func (a *fakeAPI) addQuestion(title, difficulty string, tags ...string) *models.Question {
	a.mu.Lock()
	defer a.mu.Unlock()
	q := &models.Question{
		ID:         a.id(),
		Title:      title,
		Difficulty: models.Difficulty(difficulty),
		Tags:       tags,
		UserID:     1,
	}
	a.questions[q.ID] = q
	return q
}

func (a *fakeAPI) addAnswer(questionID uint, content string, by uint) *models.Answer {
	a.mu.Lock()
	defer a.mu.Unlock()
	ans := &models.Answer{ID: a.id(), QuestionID: questionID, Content: content, AnsweredBy: by}
	a.answers[ans.ID] = ans
	return ans
}

func writeOK(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Envelope{Success: true, Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Envelope{Success: false, Message: message})
}

func pathID(r *http.Request, name string) uint {
	v, _ := strconv.ParseUint(r.PathValue(name), 10, 32)
	return uint(v)
}

func (a *fakeAPI) questionWithThreads(id uint) *models.Question {
	q, ok := a.questions[id]
	if !ok {
		return nil
	}
	out := *q
	out.Answers = nil
	for _, ans := range a.answers {
		if ans.QuestionID != id {
			continue
		}
		withFb := *ans
		withFb.Feedbacks = nil
		for _, fb := range a.feedbacks {
			if fb.AnswerID == ans.ID {
				withFb.Feedbacks = append(withFb.Feedbacks, *fb)
			}
		}
		out.Answers = append(out.Answers, withFb)
	}
	out.AnswerCount = len(out.Answers)
	return &out
}

func (a *fakeAPI) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("password") != "password123" {
			writeFail(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeOK(w, http.StatusOK, "Login successful", models.User{
			ID:       1,
			UserName: r.URL.Query().Get("userName"),
			Token:    "test-token",
		})
	})

	mux.HandleFunc("GET /questions/getall/questions", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		list := make([]*models.Question, 0, len(a.questions))
		for id := uint(1); id < a.nextID; id++ {
			if q, exists := a.questions[id]; exists {
				list = append(list, q)
			}
		}
		writeOK(w, http.StatusOK, "Questions retrieved", list)
	})

	mux.HandleFunc("GET /questions/getquestion/user/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		userID := pathID(r, "userId")
		list := []*models.Question{}
		for id := uint(1); id < a.nextID; id++ {
			if q, exists := a.questions[id]; exists && q.UserID == userID {
				list = append(list, q)
			}
		}
		writeOK(w, http.StatusOK, "Questions retrieved", list)
	})

	mux.HandleFunc("GET /questions/getquestion/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		q := a.questionWithThreads(pathID(r, "id"))
		if q == nil {
			writeFail(w, http.StatusNotFound, "Question not found")
			return
		}
		writeOK(w, http.StatusOK, "Question retrieved", q)
	})

	mux.HandleFunc("POST /questions/post/question/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		var req struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Difficulty  string   `json:"difficulty"`
			Tags        []string `json:"tags"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		q := &models.Question{
			ID:          a.id(),
			Title:       req.Title,
			Description: req.Description,
			Difficulty:  models.Difficulty(req.Difficulty),
			Tags:        req.Tags,
			UserID:      pathID(r, "userId"),
		}
		a.questions[q.ID] = q
		writeOK(w, http.StatusCreated, "Question posted", q)
	})

	mux.HandleFunc("PUT /questions/update/question/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		q, exists := a.questions[pathID(r, "id")]
		if !exists {
			writeFail(w, http.StatusNotFound, "Question not found")
			return
		}
		var req struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Difficulty  string   `json:"difficulty"`
			Tags        []string `json:"tags"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		q.Title = req.Title
		q.Description = req.Description
		q.Difficulty = models.Difficulty(req.Difficulty)
		q.Tags = req.Tags
		writeOK(w, http.StatusOK, "Question updated", q)
	})

	mux.HandleFunc("DELETE /questions/delete/question/{id}/user/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.questions, pathID(r, "id"))
		writeOK(w, http.StatusOK, "Question deleted", nil)
	})

	mux.HandleFunc("POST /answers/post/answer/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		var req struct {
			QuestionID uint   `json:"questionId"`
			Content    string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		ans := &models.Answer{
			ID:         a.id(),
			QuestionID: req.QuestionID,
			Content:    req.Content,
			AnsweredBy: pathID(r, "userId"),
		}
		a.answers[ans.ID] = ans
		writeOK(w, http.StatusCreated, "Answer posted", ans)
	})

	mux.HandleFunc("PUT /answers/edit/answer/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		var req struct {
			AnswerID uint   `json:"answerId"`
			Content  string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		ans, exists := a.answers[req.AnswerID]
		if !exists {
			writeFail(w, http.StatusNotFound, "Answer not found")
			return
		}
		ans.Content = req.Content
		writeOK(w, http.StatusOK, "Answer updated", ans)
	})

	mux.HandleFunc("DELETE /answers/delete/user/{userId}/answer/{answerId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.answers, pathID(r, "answerId"))
		writeOK(w, http.StatusOK, "Answer deleted", nil)
	})

	mux.HandleFunc("POST /feedback/post/feedback/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		var req struct {
			AnswerID uint   `json:"answerId"`
			Feedback string `json:"feedback"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		ans, exists := a.answers[req.AnswerID]
		if !exists {
			writeFail(w, http.StatusNotFound, "Answer not found")
			return
		}
		fb := &models.Feedback{
			ID:         a.id(),
			AnswerID:   ans.ID,
			QuestionID: ans.QuestionID,
			Content:    req.Feedback,
			GivenBy:    pathID(r, "userId"),
		}
		a.feedbacks[fb.ID] = fb
		writeOK(w, http.StatusCreated, "Feedback posted", fb)
	})

	mux.HandleFunc("DELETE /feedback/delete/{userId}/{feedbackId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.feedbacks, pathID(r, "feedbackId"))
		writeOK(w, http.StatusOK, "Feedback deleted", nil)
	})

	mux.HandleFunc("GET /flag/check/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.failFlagChecks {
			writeFail(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		userID := pathID(r, "userId")
		for _, f := range a.flags {
			if f.FlagedByID != userID {
				continue
			}
			if matchFlagQuery(f, r) {
				writeOK(w, http.StatusOK, "Flag found", f)
				return
			}
		}
		writeFail(w, http.StatusNotFound, "No flag found")
	})

	mux.HandleFunc("POST /flag/{userId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		var f models.Flag
		_ = json.NewDecoder(r.Body).Decode(&f)
		f.ID = a.id()
		f.FlagedByID = pathID(r, "userId")
		a.flags[f.ID] = &f
		writeOK(w, http.StatusCreated, "Flag submitted", &f)
	})

	mux.HandleFunc("DELETE /flag/unflag/user/{userId}/{flagId}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		flagID := pathID(r, "flagId")
		if _, exists := a.flags[flagID]; !exists {
			writeFail(w, http.StatusNotFound, "Flag not found")
			return
		}
		delete(a.flags, flagID)
		writeOK(w, http.StatusOK, "Flag removed", nil)
	})

	return mux
}

func matchFlagQuery(f *models.Flag, r *http.Request) bool {
	if v := r.URL.Query().Get("questionId"); v != "" {
		id, _ := strconv.ParseUint(v, 10, 32)
		return f.FlagedOnQuestionID != nil && *f.FlagedOnQuestionID == uint(id)
	}
	if v := r.URL.Query().Get("answerId"); v != "" {
		id, _ := strconv.ParseUint(v, 10, 32)
		return f.FlagedOnAnswerID != nil && *f.FlagedOnAnswerID == uint(id)
	}
	if v := r.URL.Query().Get("feedbackId"); v != "" {
		id, _ := strconv.ParseUint(v, 10, 32)
		return f.FlagedOnFeedBackID != nil && *f.FlagedOnFeedBackID == uint(id)
	}
	return false
}

// loggedInClient returns a client with an active session against the fake API.
func loggedInClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	store := NewSessionStore(NewMemoryStorage())
	store.Set(&Session{User: models.User{ID: 1, UserName: "alice"}, Token: "test-token"})
	return NewClient(api.srv.URL, store)
}

// loggedOutClient returns a client with no session.
func loggedOutClient(api *fakeAPI) *Client {
	return NewClient(api.srv.URL, NewSessionStore(NewMemoryStorage()))
}
