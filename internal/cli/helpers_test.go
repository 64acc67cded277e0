package cli_test

import (
	"errors"
	"os"
	"testing"

	"github.com/calvinalkan/tusk/internal/cli"
)

func assertNoDataFile(t *testing.T, c *cli.CLI) {
	t.Helper()

	_, err := os.Stat(c.DataFile())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("data file should not exist, stat err=%v", err)
	}
}
