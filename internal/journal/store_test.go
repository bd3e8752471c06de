package journal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/model"
	"github.com/manav03panchal/murmur/internal/storage"
)

// memPersister records persistence calls.
type memPersister struct {
	saved   []model.Entry
	saves   int
	removes int
	loadErr error
	saveErr error
}

func (m *memPersister) Load() ([]model.Entry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Entry(nil), m.saved...), nil
}

func (m *memPersister) Save(entries []model.Entry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append([]model.Entry(nil), entries...)
	return nil
}

func (m *memPersister) Remove() error {
	m.removes++
	m.saved = nil
	return nil
}

// fixedIndex always returns the same index.
type fixedIndex int

func (f fixedIndex) IntN(n int) int { return int(f) % n }

// steppingNow returns a clock that advances one millisecond per call.
func steppingNow() func() time.Time {
	t := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func setupTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	return New(p, WithNow(steppingNow())), p
}

// =============================================================================
// Append Tests
// =============================================================================

func TestAppend(t *testing.T) {
	s, p := setupTestStore(t)

	res, err := s.Append("  i ate the last slice  ")
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.True(t, res.First())
	assert.Equal(t, 1, res.Size)
	assert.Equal(t, "i ate the last slice", res.Entry.Text)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, p.saves)
	assert.Equal(t, s.All(), p.saved)

	res, err = s.Append("second")
	require.NoError(t, err)
	assert.False(t, res.First())
	assert.Equal(t, 2, res.Size)
}

func TestAppendIncreasesSizeByOne(t *testing.T) {
	s, _ := setupTestStore(t)
	inputs := []string{"a", " b ", strings.Repeat("c", 200), "naïve ☕", "line\nbreak"}

	for i, in := range inputs {
		before := s.Len()
		res, err := s.Append(in)
		require.NoError(t, err)
		assert.Equal(t, before+1, s.Len(), "input %d", i)
		assert.Equal(t, strings.TrimSpace(in), res.Entry.Text)
	}
}

func TestAppendBlankIsNoop(t *testing.T) {
	s, p := setupTestStore(t)

	for _, in := range []string{"", "   ", "\t\n"} {
		res, err := s.Append(in)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.False(t, res.First())
	}
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, p.saves)
}

func TestAppendKeepsTextExceptSurroundingSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"control_char", "a\ab", "a\ab"},
		{"crlf", "line1\r\nline2", "line1\r\nline2"},
		{"nul_only", "\x00", "\x00"},
		{"trimmed", "\t x \r\n", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := setupTestStore(t)

			res, err := s.Append(tt.input)
			require.NoError(t, err)
			require.True(t, res.OK)
			assert.Equal(t, tt.want, res.Entry.Text)
			assert.Equal(t, tt.want, p.saved[0].Text)
		})
	}
}

func TestAppendOverLimitIsStored(t *testing.T) {
	s, _ := setupTestStore(t)

	res, err := s.Append(strings.Repeat("x", 250))
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Len(t, res.Entry.Text, 250)
}

func TestAppendStampsEntries(t *testing.T) {
	now := time.Date(2024, 3, 9, 22, 15, 4, 123_000_000, time.UTC)
	s := New(&memPersister{}, WithNow(func() time.Time { return now }))

	a, _ := s.Append("a")
	b, _ := s.Append("b")

	assert.Equal(t, now.UnixMilli(), a.Entry.ID)
	assert.Equal(t, "2024-03-09T22:15:04.123Z", a.Entry.CreatedAt)
	// Same millisecond: ids collide and both entries are kept
	assert.Equal(t, a.Entry.ID, b.Entry.ID)
	assert.Equal(t, 2, s.Len())
}

func TestAppendPersistFailureKeepsEntry(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s := New(p)

	res, err := s.Append("kept anyway")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, res.OK)
	assert.Equal(t, 1, s.Len())
}

// =============================================================================
// Clear Tests
// =============================================================================

func TestClear(t *testing.T) {
	s, p := setupTestStore(t)
	s.Append("a")
	s.Append("b")

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.Equal(t, 1, p.removes)
	assert.Nil(t, p.saved)

	res, _ := s.Append("fresh start")
	assert.True(t, res.First())
}

// =============================================================================
// Read Tests
// =============================================================================

func TestAllReturnsCopy(t *testing.T) {
	s, _ := setupTestStore(t)
	s.Append("original")

	all := s.All()
	all[0].Text = "mutated"
	assert.Equal(t, "original", s.All()[0].Text)
}

func TestRecentPreview(t *testing.T) {
	s, _ := setupTestStore(t)
	for i := 1; i <= 7; i++ {
		s.Append(fmt.Sprintf("entry %d", i))
	}

	preview := s.RecentPreview(5)
	require.Len(t, preview, 5)
	for i, e := range preview {
		assert.Equal(t, fmt.Sprintf("entry %d", 7-i), e.Text)
	}
}

func TestRecentPreviewDefaults(t *testing.T) {
	s, _ := setupTestStore(t)
	assert.Empty(t, s.RecentPreview(0))

	s.Append("one")
	s.Append("two")
	preview := s.RecentPreview(0)
	require.Len(t, preview, 2)
	assert.Equal(t, "two", preview[0].Text)
}

func TestRecentPreviewTruncates(t *testing.T) {
	s, _ := setupTestStore(t)
	long := strings.Repeat("z", 80)
	s.Append(long)

	preview := s.RecentPreview(5)
	require.Len(t, preview, 1)
	assert.Equal(t, strings.Repeat("z", 50)+"...", preview[0].Text)
	// The stored entry is untouched
	assert.Equal(t, long, s.All()[0].Text)
}

func TestRecentPreviewWidthOption(t *testing.T) {
	s := New(&memPersister{}, WithNow(steppingNow()), WithPreviewWidth(4))
	s.Append("abcdefgh")
	s.Append("abcd")

	preview := s.RecentPreview(5)
	require.Len(t, preview, 2)
	assert.Equal(t, "abcd", preview[0].Text)
	assert.Equal(t, "abcd...", preview[1].Text)

	// Non-positive widths keep the default
	s = New(&memPersister{}, WithPreviewWidth(0))
	s.Append(strings.Repeat("z", 60))
	assert.Equal(t, strings.Repeat("z", 50)+"...", s.RecentPreview(1)[0].Text)
}

func TestRandom(t *testing.T) {
	s, _ := setupTestStore(t)

	_, ok := s.Random(fixedIndex(0))
	assert.False(t, ok)

	s.Append("a")
	s.Append("b")
	s.Append("c")

	e, ok := s.Random(fixedIndex(1))
	require.True(t, ok)
	assert.Equal(t, "b", e.Text)

	e, ok = s.Random(fixedIndex(5))
	require.True(t, ok)
	assert.Equal(t, "c", e.Text)
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoadFromPersister(t *testing.T) {
	p := &memPersister{saved: []model.Entry{
		{ID: 1, Text: "old", CreatedAt: "2024-01-01T00:00:00.000Z"},
	}}

	s := Load(p)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "old", s.All()[0].Text)
}

func TestLoadCorruptedStartsEmpty(t *testing.T) {
	p := &memPersister{loadErr: fmt.Errorf("%w: bad json", murerrors.ErrStoreCorrupted)}

	s := Load(p)
	assert.Equal(t, 0, s.Len())

	res, err := s.Append("recovered")
	require.NoError(t, err)
	assert.True(t, res.First())
}

func TestLoadReadFailureStartsEmpty(t *testing.T) {
	s := Load(&memPersister{loadErr: errors.New("io")})
	assert.Equal(t, 0, s.Len())
}

func TestRoundTripThroughBadger(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := storage.NewEntryRepo(db)

	s := New(repo, WithNow(steppingNow()))
	s.Append("first")
	s.Append("second")
	s.Append("third")

	reloaded := Load(repo)
	require.Equal(t, s.Len(), reloaded.Len())
	for i, e := range s.All() {
		assert.Equal(t, e, reloaded.All()[i])
	}
}

func TestCorruptedBadgerValueStartsEmpty(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.SetBytes(model.KeyConfessions, []byte("not-json")))

	s := Load(storage.NewEntryRepo(db))
	assert.Equal(t, 0, s.Len())
}
