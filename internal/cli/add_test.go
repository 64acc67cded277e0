package cli_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/tusk/internal/cli"
	"github.com/calvinalkan/tusk/internal/task"
)

func Test_Add_Creates_Account_And_Data_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("add", "acme", "buy milk")

	assert.Equal(t, "Task added to account 'acme'!", stdout)

	want := map[string]*task.Account{
		"acme": {
			Name:        "acme",
			Tasks:       []task.Task{{Description: "buy milk", Priority: task.PriorityLow}},
			Subaccounts: map[string]*task.Account{},
		},
	}

	if diff := cmp.Diff(want, c.LoadStore().Accounts); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func Test_Add_Writes_Canonical_Json_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "acme", "buy milk")

	assert.JSONEq(t, `{
		"acme": {
			"name": "acme",
			"tasks": [{"description": "buy milk", "completed": false, "priority": "Low"}],
			"subaccounts": {}
		}
	}`, c.ReadData())
}

func Test_Add_Appends_In_Order_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "acme", "first")
	c.MustRun("add", "acme", "second")
	c.MustRun("add", "other", "elsewhere")

	st := c.LoadStore()
	acc, ok := st.Account("acme")
	require.True(t, ok)
	require.Len(t, acc.Tasks, 2)
	assert.Equal(t, "first", acc.Tasks[0].Description)
	assert.Equal(t, "second", acc.Tasks[1].Description)
	assert.Equal(t, []string{"acme", "other"}, st.Names())
}

func Test_Add_Description_Starting_With_Dash_After_Double_Dash_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "--", "acme", "-1 point")

	acc, ok := c.LoadStore().Account("acme")
	require.True(t, ok)
	require.Len(t, acc.Tasks, 1)
	assert.Equal(t, "-1 point", acc.Tasks[0].Description)
}

func Test_Add_Respects_Data_File_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("--data-file", "nested/dir/tasks.json", "add", "acme", "x")

	assertNoDataFile(t, c)

	out := c.MustRun("--data-file", "nested/dir/tasks.json", "list", "acme")
	cli.AssertContains(t, out, "1. [ ] x (Low)")
}

func Test_Add_With_Priority_Parses_Lowercase_Levels_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		arg  string
		want task.Priority
	}{
		{arg: "high", want: task.PriorityHigh},
		{arg: "medium", want: task.PriorityMedium},
		{arg: "low", want: task.PriorityLow},
	} {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, code := c.Run("add-with-priority", "acme", "task", tt.arg)

			require.Equal(t, 0, code)
			assert.Empty(t, stderr)
			assert.Equal(t, "Task added to account 'acme'!\n", stdout)

			acc, ok := c.LoadStore().Account("acme")
			require.True(t, ok)
			require.Len(t, acc.Tasks, 1)
			assert.Equal(t, tt.want, acc.Tasks[0].Priority)
		})
	}
}

func Test_Add_With_Priority_Invalid_Priority_Warns_And_Stores_Low_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"urgent", "High", "MEDIUM", "h"} {
		c := cli.NewCLI(t)
		stdout, stderr, code := c.Run("add-with-priority", "acme", "task", bad)

		require.Equal(t, 0, code, "priority %q", bad)
		assert.Equal(t, "Task added to account 'acme'!\n", stdout)
		cli.AssertContains(t, stderr, "invalid priority")
		cli.AssertContains(t, stderr, bad)

		acc, ok := c.LoadStore().Account("acme")
		require.True(t, ok)
		require.Len(t, acc.Tasks, 1)
		assert.Equal(t, task.PriorityLow, acc.Tasks[0].Priority)
	}
}

func Test_Add_With_Priority_Serializes_Capitalized_Token_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add-with-priority", "acme", "fix prod", "high")

	cli.AssertContains(t, c.ReadData(), `"priority": "High"`)
}
