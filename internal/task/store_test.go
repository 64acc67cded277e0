package task_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/tusk/internal/task"
)

func TestEnsureAccountCreatesOnce(t *testing.T) {
	t.Parallel()

	s := task.NewStore()

	first := s.EnsureAccount("acme")
	first.AddTask("buy milk")

	second := s.EnsureAccount("acme")
	assert.Same(t, first, second)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Account("ghost")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len(), "lookup must not create")
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	s := task.NewStore()
	for _, name := range []string{"zeta", "acme", "mid"} {
		s.EnsureAccount(name)
	}

	assert.Equal(t, []string{"acme", "mid", "zeta"}, s.Names())
}

func TestStoreJSONShape(t *testing.T) {
	t.Parallel()

	s := task.NewStore()
	s.EnsureAccount("acme").AddTask("buy milk")
	s.EnsureAccount("empty")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"acme": {
			"name": "acme",
			"tasks": [{"description": "buy milk", "completed": false, "priority": "Low"}],
			"subaccounts": {}
		},
		"empty": {"name": "empty", "tasks": [], "subaccounts": {}}
	}`, string(data))
}

func TestStoreJSONRoundTrip(t *testing.T) {
	t.Parallel()

	s := task.NewStore()
	acc := s.EnsureAccount("acme")
	acc.AddTask("a")
	acc.AddTaskWithPriority("b", task.PriorityHigh)
	require.NoError(t, acc.CompleteTask(2))
	s.EnsureAccount("other").AddTaskWithPriority("c", task.PriorityMedium)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	got := task.NewStore()
	require.NoError(t, json.Unmarshal(data, got))

	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreUnmarshalNormalizes(t *testing.T) {
	t.Parallel()

	got := task.NewStore()
	require.NoError(t, json.Unmarshal([]byte(`{"acme": {"name": "acme", "tasks": [{"description": "x", "completed": true}]}}`), got))

	acc, ok := got.Account("acme")
	require.True(t, ok)
	assert.NotNil(t, acc.Subaccounts)
	assert.Equal(t, task.PriorityLow, acc.Tasks[0].Priority, "missing priority decodes as Low")

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subaccounts":{}`)
}

func TestStoreUnmarshalRejectsNullAccount(t *testing.T) {
	t.Parallel()

	got := task.NewStore()
	err := json.Unmarshal([]byte(`{"acme": null}`), got)
	require.Error(t, err)
}

func TestStoreUnmarshalNormalizesNestedSubaccounts(t *testing.T) {
	t.Parallel()

	got := task.NewStore()
	err := json.Unmarshal([]byte(`{"a": {"name": "a", "tasks": [], "subaccounts": {"b": {"tasks": null}}}}`), got)
	require.NoError(t, err)

	acc, ok := got.Account("a")
	require.True(t, ok)
	require.Contains(t, acc.Subaccounts, "b")

	sub := acc.Subaccounts["b"]
	assert.Equal(t, "b", sub.Name)
	assert.NotNil(t, sub.Tasks)
	assert.NotNil(t, sub.Subaccounts)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestStoreUnmarshalRejectsNullSubaccount(t *testing.T) {
	t.Parallel()

	got := task.NewStore()
	err := json.Unmarshal([]byte(`{"a": {"name": "a", "tasks": [], "subaccounts": {"b": null}}}`), got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `subaccount "b"`)
}
