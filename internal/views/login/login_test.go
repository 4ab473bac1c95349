package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func key(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestSubmit(t *testing.T) {
	m := New()
	m = typeText(m, "ada@example.com")
	m, _ = key(m, tea.KeyEnter)
	m = typeText(m, "s3cret")

	m, cmd := key(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Pending)
	assert.Equal(t, SubmitMsg{Email: "ada@example.com", Password: "s3cret"}, cmd())
	assert.NotContains(t, m.View(), "s3cret", "password must be masked")
}

func TestSubmitRequiresBothFields(t *testing.T) {
	m := New()
	m = typeText(m, "ada@example.com")
	m, _ = key(m, tea.KeyTab)
	m, cmd := key(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.Pending)
	assert.Contains(t, m.View(), "required")
}

func TestPendingIgnoresKeys(t *testing.T) {
	m := New()
	m = typeText(m, "a@b.c")
	m, _ = key(m, tea.KeyTab)
	m = typeText(m, "pw")
	m, _ = key(m, tea.KeyEnter)
	require.True(t, m.Pending)

	m, cmd := key(m, tea.KeyEnter)
	assert.True(t, m.Pending)
	assert.Nil(t, cmd)
}

func TestResetClearsForm(t *testing.T) {
	m := New()
	m = typeText(m, "a@b.c")
	m.Err = MessageInvalidCredentials
	m.Pending = true
	m.Reset()

	assert.Empty(t, m.Email())
	assert.Empty(t, m.Err)
	assert.False(t, m.Pending)
	assert.True(t, strings.Contains(m.View(), "Sign in"))
}

func TestRegisterMode(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, m.Register)
	assert.Contains(t, m.View(), "Create your ShopHub account")
	assert.Contains(t, m.View(), "First")

	m = typeText(m, "grace@example.com")
	m, _ = key(m, tea.KeyEnter)
	m = typeText(m, "secret1")
	m, cmd := key(m, tea.KeyEnter)
	assert.Nil(t, cmd, "enter moves on to the name fields")
	m = typeText(m, "Grace")
	m, _ = key(m, tea.KeyEnter)
	m = typeText(m, "Hopper")

	m, cmd = key(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Pending)
	assert.Equal(t, SubmitMsg{
		Email: "grace@example.com", Password: "secret1",
		Register: true, FirstName: "Grace", LastName: "Hopper",
	}, cmd())
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		first    string
		wantErr  string
	}{
		{"missing first name", "secret1", "", "First name is required"},
		{"short password", "abc", "Grace", "at least 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
			m = typeText(m, "g@example.com")
			m, _ = key(m, tea.KeyTab)
			m = typeText(m, tt.password)
			m, _ = key(m, tea.KeyTab)
			m = typeText(m, tt.first)
			m, _ = key(m, tea.KeyTab)

			m, cmd := key(m, tea.KeyEnter)
			assert.Nil(t, cmd)
			assert.False(t, m.Pending)
			assert.Contains(t, m.Err, tt.wantErr)
		})
	}
}

func TestLeavingRegisterModeHidesNames(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = key(m, tea.KeyTab)
	m, _ = key(m, tea.KeyTab)
	m, _ = key(m, tea.KeyTab)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.False(t, m.Register)
	assert.NotContains(t, m.View(), "First")
	m = typeText(m, "a@b.c")
	assert.Equal(t, "a@b.c", m.Email(), "focus returned to email")

	m.Reset()
	assert.False(t, m.Register)
}
