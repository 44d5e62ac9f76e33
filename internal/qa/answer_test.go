package qa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/askhub/internal/qa"
	"github.com/garnizeh/askhub/pkg/repository/mock"
)

func TestAnswerCreate_QuestionNotFoundInsertsNothing(t *testing.T) {
	store := mock.NewStore()
	svc := qa.NewAnswerService(store, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "company-a", "user-1", "missing", "body")
	require.ErrorIs(t, err, qa.ErrNotFound)
	assert.Empty(t, store.Answers(), "failed create must not leave an answer behind")
}

func TestAnswerCreate_CrossTenantDenied(t *testing.T) {
	store := mock.NewStore()
	questionSvc := qa.NewQuestionService(store, store, store)
	svc := qa.NewAnswerService(store, store)
	ctx := context.Background()

	qID, err := questionSvc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "company-b", "user-9", qID, "body")
	require.ErrorIs(t, err, qa.ErrAccessDenied)
	assert.Empty(t, store.Answers())
}

func TestAnswerCreate_Human(t *testing.T) {
	store := mock.NewStore()
	questionSvc := qa.NewQuestionService(store, store, store)
	svc := qa.NewAnswerService(store, store)
	ctx := context.Background()

	qID, err := questionSvc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "company-a", "user-2", qID, "  ")
	require.ErrorIs(t, err, qa.ErrValidation)

	id, err := svc.Create(ctx, "company-a", "user-2", qID, "an answer")
	require.NoError(t, err)

	a, err := store.GetAnswerByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.False(t, a.IsAI)
	require.NotNil(t, a.UserID)
	assert.Equal(t, "user-2", *a.UserID)
	assert.Equal(t, int64(0), a.Upvotes)
}

func TestCommentCreate(t *testing.T) {
	store := mock.NewStore()
	questionSvc := qa.NewQuestionService(store, store, store)
	answerSvc := qa.NewAnswerService(store, store)
	svc := qa.NewCommentService(store, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", "missing", "body")
	require.ErrorIs(t, err, qa.ErrNotFound)

	qID, err := questionSvc.Create(ctx, "company-a", "user-1", qa.CreateQuestionInput{Title: "t", Description: "d"})
	require.NoError(t, err)
	aID, err := answerSvc.Create(ctx, "company-a", "user-2", qID, "an answer")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "user-1", aID, "")
	require.ErrorIs(t, err, qa.ErrValidation)

	cID, err := svc.Create(ctx, "user-1", aID, "a comment")
	require.NoError(t, err)

	c, err := store.GetCommentByID(ctx, cID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, aID, c.AnswerID)
	assert.Equal(t, "user-1", c.UserID)
}
