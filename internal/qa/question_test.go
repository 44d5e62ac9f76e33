package qa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/askhub/internal/qa"
	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository/mock"
)

func newQuestionService(store *mock.Store) *qa.QuestionService {
	return qa.NewQuestionService(store, store, store)
}

func TestQuestionCreate_Validation(t *testing.T) {
	svc := newQuestionService(mock.NewStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "", Description: "d"})
	require.ErrorIs(t, err, qa.ErrValidation)

	_, err = svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "   "})
	require.ErrorIs(t, err, qa.ErrValidation)

	id, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d", Tags: []string{"x", "x", " ", "y"}})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	store := mock.NewStore()
	svc = newQuestionService(store)
	id, err = svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d", Tags: []string{"x", "x", "y"}})
	require.NoError(t, err)
	q, err := store.GetQuestionByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, []string{"x", "y"}, q.Tags, "tags should be deduplicated")
	assert.Equal(t, int64(0), q.Upvotes)
	assert.Equal(t, "company-a", q.CompanyID)
}

func TestQuestionList_TenantIsolation(t *testing.T) {
	store := mock.NewStore()
	svc := newQuestionService(store)
	ctx := context.Background()

	idA, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d", Tags: []string{"x"}})
	require.NoError(t, err)

	pageA, err := svc.List(ctx, "company-a", qa.ListQuestionsInput{Tags: []string{"x"}, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, pageA.Items, 1)
	assert.Equal(t, idA, pageA.Items[0].ID)

	pageB, err := svc.List(ctx, "company-b", qa.ListQuestionsInput{Tags: []string{"x"}, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, pageB.Items, "tenant B must not see tenant A questions")
	assert.Equal(t, int64(0), pageB.Total)
}

func TestQuestionList_PaginationNoGapsNoDuplicates(t *testing.T) {
	store := mock.NewStore()
	svc := newQuestionService(store)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	var total int
	for page := 1; page <= 4; page++ {
		res, err := svc.List(ctx, "company-a", qa.ListQuestionsInput{Page: page, PageSize: 2})
		require.NoError(t, err)
		require.LessOrEqual(t, len(res.Items), 2)
		for _, q := range res.Items {
			require.False(t, seen[q.ID], "question %s returned twice", q.ID)
			seen[q.ID] = true
		}
		total += len(res.Items)
	}
	assert.Equal(t, 7, total, "concatenated pages must cover the dataset exactly")
}

func TestQuestionList_SortMapping(t *testing.T) {
	store := mock.NewStore()
	svc := newQuestionService(store)
	ctx := context.Background()

	mk := func(title string, upvotes int64) string {
		id, err := store.CreateQuestion(ctx, &models.Question{
			CompanyID: "company-a", UserID: "user-1", Title: title, Description: "d", Upvotes: upvotes,
		})
		require.NoError(t, err)
		return id
	}

	first := mk("old-low", 1)
	second := mk("mid-high", 9)
	third := mk("new-mid", 5)

	// explicit upvotes sort: most upvoted first
	res, err := svc.List(ctx, "company-a", qa.ListQuestionsInput{SortBy: "upvotes", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []string{second, third, first}, idsOf(res.Items))

	// created_at sort: newest first
	res, err = svc.List(ctx, "company-a", qa.ListQuestionsInput{SortBy: "created_at", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{third, second, first}, idsOf(res.Items))

	// unknown sort key falls back to the default, most upvoted first
	res, err = svc.List(ctx, "company-a", qa.ListQuestionsInput{SortBy: "relevance", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{second, third, first}, idsOf(res.Items))

	// empty sort key also uses the default
	res, err = svc.List(ctx, "company-a", qa.ListQuestionsInput{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{second, third, first}, idsOf(res.Items))
}

func TestQuestionList_PageValidation(t *testing.T) {
	svc := newQuestionService(mock.NewStore())
	ctx := context.Background()

	_, err := svc.List(ctx, "company-a", qa.ListQuestionsInput{Page: 0, PageSize: 10})
	require.ErrorIs(t, err, qa.ErrValidation)

	_, err = svc.List(ctx, "company-a", qa.ListQuestionsInput{Page: 1, PageSize: 0})
	require.ErrorIs(t, err, qa.ErrValidation)

	_, err = svc.List(ctx, "company-a", qa.ListQuestionsInput{Page: -3, PageSize: -1})
	require.ErrorIs(t, err, qa.ErrValidation)
}

func TestQuestionDetail_NotFoundAndAccessDenied(t *testing.T) {
	store := mock.NewStore()
	svc := newQuestionService(store)
	ctx := context.Background()

	_, err := svc.Detail(ctx, "company-a", "missing")
	require.ErrorIs(t, err, qa.ErrNotFound)

	id, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Detail(ctx, "company-b", id)
	require.ErrorIs(t, err, qa.ErrAccessDenied)
}

func TestQuestionDetail_FreshQuestionHasEmptyAnswers(t *testing.T) {
	store := mock.NewStore()
	svc := newQuestionService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, "company-a", id)
	require.NoError(t, err)
	assert.Equal(t, id, detail.Question.ID)
	assert.NotNil(t, detail.Answers)
	assert.Empty(t, detail.Answers)
}

func TestQuestionDetail_NestedAggregation(t *testing.T) {
	store := mock.NewStore()
	questionSvc := newQuestionService(store)
	answerSvc := qa.NewAnswerService(store, store)
	commentSvc := qa.NewCommentService(store, store)
	ctx := context.Background()

	qID, err := questionSvc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	a1, err := answerSvc.Create(ctx, "company-a", "user-2", qID, "first answer")
	require.NoError(t, err)
	a2, err := answerSvc.Create(ctx, "company-a", "user-3", qID, "second answer")
	require.NoError(t, err)

	c1, err := commentSvc.Create(ctx, "user-1", a1, "thanks")
	require.NoError(t, err)

	detail, err := questionSvc.Detail(ctx, "company-a", qID)
	require.NoError(t, err)
	require.Len(t, detail.Answers, 2)

	assert.Equal(t, a1, detail.Answers[0].ID)
	require.Len(t, detail.Answers[0].Comments, 1)
	assert.Equal(t, c1, detail.Answers[0].Comments[0].ID)

	assert.Equal(t, a2, detail.Answers[1].ID)
	assert.Empty(t, detail.Answers[1].Comments, "answer without comments gets an empty list, not nil")
	assert.NotNil(t, detail.Answers[1].Comments)
}

func idsOf(items []models.Question) []string {
	out := make([]string, len(items))
	for i, q := range items {
		out[i] = q.ID
	}
	return out
}
