package dlx

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveIdentity2x2 is scenario E1.
func TestSolveIdentity2x2(t *testing.T) {
	m, err := FromMatrix([][]int{{1, 0}, {0, 1}}, 2)
	require.NoError(t, err)

	solution, ok := m.Solve()
	require.True(t, ok)
	sort.Ints(solution)
	assert.Equal(t, []int{0, 1}, solution)
}

// TestSolveKnuthExample is scenario E2, Knuth's classic diagnostic instance.
func TestSolveKnuthExample(t *testing.T) {
	rows := [][]int{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0},
		{0, 1, 0, 0, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 1},
	}
	m, err := FromMatrix(rows, 7)
	require.NoError(t, err)

	solution, ok := m.Solve()
	require.True(t, ok)
	sort.Ints(solution)
	assert.Equal(t, []int{1, 3, 5}, solution)
}

// TestSolveNoSolution is scenario E3: column 1 can never be covered.
func TestSolveNoSolution(t *testing.T) {
	m, err := FromMatrix([][]int{{1, 0}, {1, 0}}, 2)
	require.NoError(t, err)

	_, ok := m.Solve()
	assert.False(t, ok)
}

// TestSolveSingleRow is scenario E4: one row covers every column.
func TestSolveSingleRow(t *testing.T) {
	m, err := FromMatrix([][]int{{1, 1, 1}}, 3)
	require.NoError(t, err)

	solution, ok := m.Solve()
	require.True(t, ok)
	assert.Equal(t, []int{0}, solution)
}

// TestSolutionSatisfiesEveryColumn is spec §8 property 3: the returned
// solution has exactly one selected row per original column.
func TestSolutionSatisfiesEveryColumn(t *testing.T) {
	rows := [][]int{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0},
		{0, 1, 0, 0, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 1},
	}
	m, err := FromMatrix(rows, 7)
	require.NoError(t, err)

	solution, ok := m.Solve()
	require.True(t, ok)
	assertExactCover(t, rows, solution)
}

// TestSolveCompletenessBounded is spec §8 property 4: whenever a brute-force
// enumerator finds an exact cover for a small random instance, Solve must
// also find one (not necessarily the same one).
func TestSolveCompletenessBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := range 200 {
		nCols := 1 + rng.Intn(4)
		nRows := 1 + rng.Intn(6)
		rows := make([][]int, nRows)
		for r := range rows {
			rows[r] = make([]int, nCols)
			for c := range rows[r] {
				if rng.Intn(2) == 0 {
					rows[r][c] = 1
				}
			}
		}

		bruteForceSolvable := bruteForceHasExactCover(rows, nCols)

		m, err := FromMatrix(rows, nCols)
		require.NoError(t, err)
		solution, ok := m.Solve()

		if bruteForceSolvable {
			require.Truef(t, ok, "trial %d: brute force found a cover but Solve did not; rows=%v", trial, rows)
			assertExactCover(t, rows, solution)
		} else {
			assert.Falsef(t, ok, "trial %d: Solve found a cover but none should exist; rows=%v", trial, rows)
		}
	}
}

func assertExactCover(t *testing.T, rows [][]int, solution []int) {
	t.Helper()
	nCols := len(rows[0])
	counts := make([]int, nCols)
	for _, r := range solution {
		for c, v := range rows[r] {
			if v == 1 {
				counts[c]++
			}
		}
	}
	for c, n := range counts {
		assert.Equalf(t, 1, n, "column %d covered %d times, want exactly 1", c, n)
	}
}

func bruteForceHasExactCover(rows [][]int, nCols int) bool {
	n := len(rows)
	for mask := 0; mask < (1 << n); mask++ {
		counts := make([]int, nCols)
		var chosen []int
		for r := range n {
			if mask&(1<<r) != 0 {
				chosen = append(chosen, r)
				for c, v := range rows[r] {
					if v == 1 {
						counts[c]++
					}
				}
			}
		}
		if len(chosen) == 0 {
			continue
		}
		if slices.ContainsFunc(counts, func(n int) bool { return n != 1 }) {
			continue
		}
		return true
	}
	return false
}

func TestSolveWithBudgetRestoresStateOnCancellation(t *testing.T) {
	// A budget of one step is used up by the top-level call, so the first
	// nested step is cancelled while the top-level frame still holds covers.
	nCols := 10
	rows := make([][]int, 0)
	for i := range nCols {
		row := make([]int, nCols)
		row[i] = 1
		rows = append(rows, row)
		// Each column gets two identical rows, so every column has two
		// candidates and the instance has many solutions.
		rows = append(rows, row)
	}
	m, err := FromMatrix(rows, nCols)
	require.NoError(t, err)

	before := m.ToMatrix()
	_, stats, err := m.SolveWithBudget(Budget{MaxSteps: 1})
	require.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, before, m.ToMatrix())
	assert.Equal(t, nCols, stats.Columns)
	assert.Equal(t, len(rows), stats.Rows)
}

func TestSolveWithBudgetFindsSolution(t *testing.T) {
	m, err := FromMatrix([][]int{{1, 0}, {0, 1}}, 2)
	require.NoError(t, err)

	solution, stats, err := m.SolveWithBudget(Budget{})
	require.NoError(t, err)
	sort.Ints(solution)
	assert.Equal(t, []int{0, 1}, solution)
	assert.Positive(t, stats.StepsTaken)
}
