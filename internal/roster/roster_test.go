package roster

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNames(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TrimsAndSkipsBlankLines(t *testing.T) {
	path := writeNames(t, "  Alice  \n\nBob\n\t\nCarol\n\n")

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_EmptyFile(t *testing.T) {
	for name, content := range map[string]string{
		"zero bytes":      "",
		"only whitespace": "  \n\t\n   \n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeNames(t, content))
			assert.ErrorIs(t, err, ErrEmpty)
		})
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	in := []string{"Alice", "Bob", "Carol", "Dave", "Erin"}

	out := Shuffle(rng, in)
	require.Len(t, out, len(in))

	sortedIn := append([]string(nil), in...)
	sortedOut := append([]string(nil), out...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	assert.Equal(t, sortedIn, sortedOut, "shuffle must preserve the multiset of names")
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	in := []string{"Alice", "Bob", "Carol", "Dave"}
	want := append([]string(nil), in...)

	_ = Shuffle(rng, in)
	assert.Equal(t, want, in)
}

func TestShuffle_ShortLists(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	assert.Empty(t, Shuffle(rng, nil))
	assert.Equal(t, []string{"Alice"}, Shuffle(rng, []string{"Alice"}))
}

func TestShuffle_SeededDeterminism(t *testing.T) {
	in := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}

	a := Shuffle(rand.New(rand.NewPCG(42, 0)), in)
	b := Shuffle(rand.New(rand.NewPCG(42, 0)), in)
	assert.Equal(t, a, b, "same seed must yield the same permutation")
}

func TestShuffle_VariesAcrossDraws(t *testing.T) {
	// With 8 names (8! orderings) 20 consecutive identical draws from one
	// generator would be astronomically unlikely.
	rng := rand.New(rand.NewPCG(7, 8))
	in := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	changed := false
	for range 20 {
		out := Shuffle(rng, in)
		if !assert.ObjectsAreEqual(in, out) {
			changed = true
			break
		}
	}
	assert.True(t, changed, "shuffle never produced a new ordering")
}
