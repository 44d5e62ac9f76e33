package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

// Store is an in-memory implementation of the repository interfaces for
// tests. It preserves insertion order so sorting and paging behave like the
// sqlite implementation.
type Store struct {
	mu sync.Mutex

	companies []models.Company
	users     []models.User
	questions []models.Question
	answers   []models.Answer
	comments  []models.Comment

	seq int64

	// Err, when set, is returned by every call. Lets tests simulate a broken
	// store.
	Err error
}

var _ repository.CompanyRepo = (*Store)(nil)
var _ repository.UserRepo = (*Store)(nil)
var _ repository.QuestionRepo = (*Store)(nil)
var _ repository.AnswerRepo = (*Store)(nil)
var _ repository.CommentRepo = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) CreateCompany(ctx context.Context, c *models.Company) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if c.ID == "" {
		c.ID = s.nextID("company")
	}
	s.companies = append(s.companies, *c)
	return c.ID, nil
}

func (s *Store) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.companies {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if u.ID == "" {
		u.ID = s.nextID("user")
	}
	s.users = append(s.users, *u)
	return u.ID, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if q.ID == "" {
		q.ID = s.nextID("question")
	}
	if q.Created == 0 {
		s.seq++
		q.Created = s.seq
	}
	s.questions = append(s.questions, *q)
	return q.ID, nil
}

func (s *Store) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, q := range s.questions {
		if q.ID == id {
			out := q
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) ListQuestions(ctx context.Context, companyID string, tags []string, sortKey repository.SortKey, limit, offset int) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	matched := s.filterQuestions(companyID, tags)

	// stable sort keeps insertion order on ties
	if sortKey == repository.SortByCreatedAt {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Created > matched[j].Created })
	} else {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Upvotes > matched[j].Upvotes })
	}

	if offset >= len(matched) {
		return []models.Question{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *Store) CountQuestions(ctx context.Context, companyID string, tags []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.filterQuestions(companyID, tags))), nil
}

func (s *Store) filterQuestions(companyID string, tags []string) []models.Question {
	out := []models.Question{}
	for _, q := range s.questions {
		if q.CompanyID != companyID {
			continue
		}
		if len(tags) > 0 && !intersects(q.Tags, tags) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (s *Store) CreateAnswer(ctx context.Context, a *models.Answer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if a.ID == "" {
		a.ID = s.nextID("answer")
	}
	if a.Created == 0 {
		s.seq++
		a.Created = s.seq
	}
	s.answers = append(s.answers, *a)
	return a.ID, nil
}

func (s *Store) GetAnswerByID(ctx context.Context, id string) (*models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, a := range s.answers {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) ListAnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Answer{}
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) CountAnswersByQuestion(ctx context.Context, questionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var cnt int64
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			cnt++
		}
	}
	return cnt, nil
}

// Answers returns a copy of every stored answer, for asserting on store state.
func (s *Store) Answers() []models.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Store) CreateComment(ctx context.Context, c *models.Comment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if c.ID == "" {
		c.ID = s.nextID("comment")
	}
	if c.Created == 0 {
		s.seq++
		c.Created = s.seq
	}
	s.comments = append(s.comments, *c)
	return c.ID, nil
}

func (s *Store) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.comments {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) ListCommentsByAnswerIDs(ctx context.Context, answerIDs []string) (map[string][]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := make(map[string]struct{}, len(answerIDs))
	for _, id := range answerIDs {
		wanted[id] = struct{}{}
	}
	out := make(map[string][]models.Comment)
	for _, c := range s.comments {
		if _, ok := wanted[c.AnswerID]; ok {
			out[c.AnswerID] = append(out[c.AnswerID], c)
		}
	}
	return out, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
