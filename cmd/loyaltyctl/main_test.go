package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"loyalty/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes loyaltyctl against the in-memory store and a temporary snapshot bucket.
func run(t *testing.T, bucketDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SNAPSHOT_BUCKETURL", "file://"+bucketDir)

	return runWithStorage(t, "memory", args...)
}

// runFile executes loyaltyctl against the file driver rooted at dataDir.
func runFile(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_BUCKETURL", "file://"+dataDir)
	t.Setenv("SNAPSHOT_BUCKETURL", "file://"+t.TempDir())

	return runWithStorage(t, "file", args...)
}

func runWithStorage(t *testing.T, driver string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"loyaltyctl", "--storage", driver}, args...))

	return out.String(), err
}

func TestLoyaltyctl_Award(t *testing.T) {
	out, err := run(t, t.TempDir(), "award", "--amount", "50.00", "--description", "Purchase: Latte")
	require.NoError(t, err)

	var result entity.AwardResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 5, result.BasePoints)
	assert.Equal(t, 5, result.PointsEarned)
	assert.Equal(t, 1, result.StreakDays)
	assert.True(t, result.IsNewStreakLevel)
}

func TestLoyaltyctl_AwardRejectsBadAmount(t *testing.T) {
	_, err := run(t, t.TempDir(), "award", "--amount", "five", "--description", "Purchase")
	assert.Error(t, err)
}

func TestLoyaltyctl_Rewards(t *testing.T) {
	out, err := run(t, t.TempDir(), "rewards")
	require.NoError(t, err)
	assert.Contains(t, out, "Free Espresso Shot")
	assert.Contains(t, out, "$5 Off Any Coffee")
}

func TestLoyaltyctl_RedeemOnEmptyLedger(t *testing.T) {
	_, err := run(t, t.TempDir(), "redeem", "--reward", "1")
	assert.Error(t, err)

	_, err = run(t, t.TempDir(), "redeem")
	assert.Error(t, err)
}

func TestLoyaltyctl_ResetNeedsConfirmation(t *testing.T) {
	_, err := run(t, t.TempDir(), "reset")
	assert.Error(t, err)

	_, err = run(t, t.TempDir(), "reset", "--yes")
	assert.NoError(t, err)
}

func TestLoyaltyctl_ExportImport(t *testing.T) {
	bucketDir := t.TempDir()

	out, err := run(t, bucketDir, "export", "--name", "empty")
	require.NoError(t, err)
	assert.Contains(t, out, "exported 0 entries")

	payload, err := os.ReadFile(filepath.Join(bucketDir, "empty.json"))
	require.NoError(t, err)

	var snap entity.LedgerSnapshot
	require.NoError(t, json.Unmarshal(payload, &snap))
	assert.Equal(t, 0, snap.Balance)

	seeded, err := json.Marshal(entity.LedgerSnapshot{
		Balance: 300,
		History: []*entity.LedgerEntry{{ID: "entry-1", Amount: 300, Description: "Purchase"}},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(bucketDir, "seeded.json"), seeded, 0o600))

	out, err = run(t, bucketDir, "import", "--name", "seeded")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 entries, balance 300")

	_, err = run(t, bucketDir, "import", "--name", "missing")
	assert.Error(t, err)
}

func TestLoyaltyctl_FileStorageKeepsLedgerBetweenRuns(t *testing.T) {
	dataDir := t.TempDir()

	_, err := runFile(t, dataDir, "award", "--amount", "50.00", "--description", "Purchase: Latte")
	require.NoError(t, err)

	out, err := runFile(t, dataDir, "balance")
	require.NoError(t, err)
	assert.Equal(t, "5 points\n", out)

	_, err = runFile(t, dataDir, "redeem", "--points", "3", "--description", "Sample")
	require.NoError(t, err)

	out, err = runFile(t, dataDir, "balance")
	require.NoError(t, err)
	assert.Equal(t, "2 points\n", out)
}
