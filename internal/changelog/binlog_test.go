package changelog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
)

func tempLog(t *testing.T) *changelog.Log {
	t.Helper()
	return changelog.Open(filepath.Join(t.TempDir(), "bin", "changelog.bin"))
}

func mustAppendCreate(t *testing.T, log *changelog.Log, id int64, username string) changelog.Entry {
	t.Helper()

	e, err := changelog.Created(savedAddress(id), username)
	require.NoError(t, err)
	require.NoError(t, log.Append(e))

	return e
}

func TestReadAllMissingFile(t *testing.T) {
	entries, err := tempLog(t).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendAndReplay(t *testing.T) {
	log := tempLog(t)

	mustAppendCreate(t, log, 1, "vesna")
	mustAppendCreate(t, log, 2, "vesna")
	mustAppendCreate(t, log, 3, "ivan")

	entries, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.EqualValues(t, 1, entries[0].EntityID)
	assert.EqualValues(t, 2, entries[1].EntityID)
	assert.EqualValues(t, 3, entries[2].EntityID)
	assert.Equal(t, "ivan", entries[2].Username)
}

func TestAppendAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.bin")

	first := changelog.Open(path)
	a := mustAppendCreate(t, first, 1, "vesna")

	// A second session over the same file must not re-emit the stream
	// header; the file stays one valid stream.
	second := changelog.Open(path)
	b := mustAppendCreate(t, second, 2, "vesna")

	entries, err := changelog.Open(path).ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, a.EntityID, entries[0].EntityID)
	assert.Equal(t, b.EntityID, entries[1].EntityID)
}

func TestReplayTruncatedTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.bin")
	log := changelog.Open(path)

	mustAppendCreate(t, log, 1, "vesna")
	mustAppendCreate(t, log, 2, "vesna")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Cut into the middle of the last record.
	require.NoError(t, os.WriteFile(path, raw[:len(raw)-7], 0o644))

	entries, err := changelog.Open(path).ReadAll()
	if err != nil {
		var logErr *apperror.BinaryLogError
		require.ErrorAs(t, err, &logErr)
		assert.Equal(t, "read", logErr.Op)
		return
	}

	// If the implementation chose to keep the clean prefix it must not
	// surface a torn record.
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].EntityID)
}

func TestReplayRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.bin")
	require.NoError(t, os.WriteFile(path, []byte("not-a-changelog-stream"), 0o644))

	_, err := changelog.Open(path).ReadAll()

	var logErr *apperror.BinaryLogError
	require.ErrorAs(t, err, &logErr)
	assert.Equal(t, "read", logErr.Op)
}

func TestReadByType(t *testing.T) {
	log := tempLog(t)
	mustAppendCreate(t, log, 1, "vesna")

	addresses, err := log.ReadByType("Address")
	require.NoError(t, err)
	assert.Len(t, addresses, 1)

	invoices, err := log.ReadByType("Invoice")
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestFilterBetween(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	mk := func(offset time.Duration) changelog.Entry {
		e, err := changelog.Created(savedAddress(1), "vesna")
		require.NoError(t, err)
		e.Timestamp = base.Add(offset)
		return e
	}

	entries := []changelog.Entry{mk(0), mk(time.Hour), mk(2 * time.Hour)}

	from := base.Add(time.Hour)
	to := base.Add(2 * time.Hour)

	assert.Len(t, changelog.FilterBetween(entries, nil, nil), 3)
	assert.Len(t, changelog.FilterBetween(entries, &from, nil), 2)
	assert.Len(t, changelog.FilterBetween(entries, nil, &to), 2)

	// from is inclusive, to is exclusive.
	window := changelog.FilterBetween(entries, &from, &to)
	require.Len(t, window, 1)
	assert.Equal(t, base.Add(time.Hour), window[0].Timestamp)
}

func TestTail(t *testing.T) {
	log := tempLog(t)
	mustAppendCreate(t, log, 1, "vesna")
	mustAppendCreate(t, log, 2, "vesna")
	mustAppendCreate(t, log, 3, "vesna")

	last, err := log.Tail(2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.EqualValues(t, 2, last[0].EntityID)
	assert.EqualValues(t, 3, last[1].EntityID)

	all, err := log.Tail(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
