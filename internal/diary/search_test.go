package diary

import (
	"regexp/syntax"
	"testing"

	"github.com/dmitrijs2005/webdiary/internal/errhandler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) (*fixture, [3]string) {
	t.Helper()
	fx := newFixture(t, nil)
	hello := fx.put(t, 1000, "Hello", "")
	world := fx.put(t, 2000, "HELLO world", "")
	bye := fx.put(t, 3000, "goodbye", "")
	require.NoError(t, fx.ctrl.Start(fx.ctx))
	return fx, [3]string{hello, world, bye}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	fx, k := searchFixture(t)
	fx.surface.answer, fx.surface.answerOK = "hello", true

	require.NoError(t, fx.ctrl.Search(fx.ctx))

	assert.Equal(t, []string{MsgSearchPrompt}, fx.surface.prompts)
	assert.Equal(t, []string{k[1], k[0]}, fx.surface.visibleKeys())
	assert.True(t, fx.surface.closeVisible)
	assert.Empty(t, fx.surface.alerts)
}

func TestSearch_MatchesText(t *testing.T) {
	fx := newFixture(t, nil)
	trip := fx.put(t, 1000, "Trip", "<p>to Kyoto</p>")
	fx.put(t, 2000, "Lunch", "<p>ramen</p>")
	require.NoError(t, fx.ctrl.Start(fx.ctx))

	fx.surface.answer, fx.surface.answerOK = "kyoto", true
	require.NoError(t, fx.ctrl.Search(fx.ctx))
	assert.Equal(t, []string{trip}, fx.surface.visibleKeys())
}

func TestSearch_CancelledOrEmptyDoesNothing(t *testing.T) {
	fx, _ := searchFixture(t)
	calls := fx.surface.setListCalls

	fx.surface.answer, fx.surface.answerOK = "hello", false
	require.NoError(t, fx.ctrl.Search(fx.ctx))

	fx.surface.answer, fx.surface.answerOK = "", true
	require.NoError(t, fx.ctrl.Search(fx.ctx))

	assert.Equal(t, calls, fx.surface.setListCalls)
	assert.False(t, fx.surface.closeVisible)
	assert.Len(t, fx.surface.visibleKeys(), 3)
}

func TestSearch_InvalidKeywordAlerts(t *testing.T) {
	fx, _ := searchFixture(t)
	calls := fx.surface.setListCalls
	fx.surface.answer, fx.surface.answerOK = "(", true

	err := fx.ctrl.Search(fx.ctx)

	var se *syntax.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{errhandler.MsgInvalidKeyword}, fx.surface.alerts)
	assert.Equal(t, calls, fx.surface.setListCalls)
	assert.False(t, fx.surface.closeVisible)
	assert.Len(t, fx.ctrl.Items(), 3)
	for _, it := range fx.ctrl.Items() {
		assert.True(t, it.Visible)
	}
}

func TestCloseSearch_RestoresList(t *testing.T) {
	fx, k := searchFixture(t)
	fx.surface.answer, fx.surface.answerOK = "goodbye", true
	require.NoError(t, fx.ctrl.Search(fx.ctx))
	require.Equal(t, []string{k[2]}, fx.surface.visibleKeys())

	require.NoError(t, fx.ctrl.CloseSearch(fx.ctx))

	assert.Len(t, fx.surface.visibleKeys(), 3)
	assert.False(t, fx.surface.closeVisible)
	assert.Equal(t, []string{fx.ctrl.Current()}, fx.surface.selected())
}

func TestLoad_ClearsSearch(t *testing.T) {
	fx, k := searchFixture(t)
	fx.surface.answer, fx.surface.answerOK = "goodbye", true
	require.NoError(t, fx.ctrl.Search(fx.ctx))

	require.NoError(t, fx.ctrl.Load(fx.ctx, k[0]))

	assert.Len(t, fx.surface.visibleKeys(), 3)
	assert.False(t, fx.surface.closeVisible)
	assert.Equal(t, []string{k[0]}, fx.surface.selected())
}
