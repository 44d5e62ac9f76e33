package qa_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/askhub/internal/qa"
	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository/mock"
)

type stubGenerator struct {
	text string
	err  error
	// recorded inputs
	title       string
	description string
	calls       int
}

func (g *stubGenerator) GenerateAnswer(ctx context.Context, title, description string) (string, error) {
	g.calls++
	g.title = title
	g.description = description
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

type fixture struct {
	store      *mock.Store
	gen        *stubGenerator
	svc        *qa.AIAnswerService
	companyID  string
	questionID string
}

func setupAI(t *testing.T, aiEnabled bool) *fixture {
	t.Helper()
	ctx := context.Background()
	store := mock.NewStore()

	company := models.Company{Name: "acme", AIAnswerEnabled: aiEnabled}
	companyID, err := store.CreateCompany(ctx, &company)
	require.NoError(t, err)

	questionID, err := store.CreateQuestion(ctx, &models.Question{
		CompanyID: companyID, UserID: "user-1", Title: "how do I deploy", Description: "steps please",
	})
	require.NoError(t, err)

	gen := &stubGenerator{text: "use the deploy script"}
	svc := qa.NewAIAnswerService(store, store, store, gen, time.Second)

	return &fixture{store: store, gen: gen, svc: svc, companyID: companyID, questionID: questionID}
}

func TestAIGenerate_Success(t *testing.T) {
	f := setupAI(t, true)
	ctx := context.Background()

	res, err := f.svc.Generate(ctx, f.companyID, f.questionID)
	require.NoError(t, err)
	assert.Equal(t, "use the deploy script", res.Text)
	assert.Equal(t, "how do I deploy", f.gen.title)
	assert.Equal(t, "steps please", f.gen.description)

	a, err := f.store.GetAnswerByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.True(t, a.IsAI)
	assert.Nil(t, a.UserID, "AI answers carry no author")
	assert.Equal(t, int64(0), a.Upvotes)
	assert.Equal(t, f.questionID, a.QuestionID)
}

func TestAIGenerate_DisabledIsForbiddenAndPersistsNothing(t *testing.T) {
	f := setupAI(t, false)
	ctx := context.Background()

	_, err := f.svc.Generate(ctx, f.companyID, f.questionID)
	require.ErrorIs(t, err, qa.ErrForbidden)
	assert.Zero(t, f.gen.calls, "generator must not run for a disabled tenant")
	assert.Empty(t, f.store.Answers(), "store must be unchanged")
}

func TestAIGenerate_QuestionNotFound(t *testing.T) {
	f := setupAI(t, true)

	_, err := f.svc.Generate(context.Background(), f.companyID, "missing")
	require.ErrorIs(t, err, qa.ErrNotFound)
	assert.Empty(t, f.store.Answers())
}

func TestAIGenerate_CrossTenantDenied(t *testing.T) {
	f := setupAI(t, true)
	ctx := context.Background()

	otherID, err := f.store.CreateCompany(ctx, &models.Company{Name: "other", AIAnswerEnabled: true})
	require.NoError(t, err)

	_, err = f.svc.Generate(ctx, otherID, f.questionID)
	require.ErrorIs(t, err, qa.ErrAccessDenied)
	assert.Empty(t, f.store.Answers())
}

func TestAIGenerate_GeneratorFailureLeavesNoPartialAnswer(t *testing.T) {
	f := setupAI(t, true)
	f.gen.err = errors.New("model timeout")

	_, err := f.svc.Generate(context.Background(), f.companyID, f.questionID)
	require.ErrorIs(t, err, qa.ErrGeneration)
	assert.Empty(t, f.store.Answers(), "failed generation must not persist an answer")
}

func TestAIGenerate_EmptyTextIsFailure(t *testing.T) {
	f := setupAI(t, true)
	f.gen.text = ""

	_, err := f.svc.Generate(context.Background(), f.companyID, f.questionID)
	require.ErrorIs(t, err, qa.ErrGeneration)
	assert.Empty(t, f.store.Answers())
}

// Any mix of human and AI answers keeps the author/origin invariant.
func TestAnswerOriginInvariant(t *testing.T) {
	f := setupAI(t, true)
	ctx := context.Background()
	answerSvc := qa.NewAnswerService(f.store, f.store)

	_, err := answerSvc.Create(ctx, f.companyID, "user-2", f.questionID, "human one")
	require.NoError(t, err)
	_, err = f.svc.Generate(ctx, f.companyID, f.questionID)
	require.NoError(t, err)
	_, err = answerSvc.Create(ctx, f.companyID, "user-3", f.questionID, "human two")
	require.NoError(t, err)

	for _, a := range f.store.Answers() {
		if a.IsAI {
			assert.Nil(t, a.UserID, "answer %s: AI answers have no author", a.ID)
		} else {
			assert.NotNil(t, a.UserID, "answer %s: human answers have an author", a.ID)
		}
	}
}
