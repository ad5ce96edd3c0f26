package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
	"github.com/katikarohith/quick-teams/internal/repository/inmemory"
	"github.com/katikarohith/quick-teams/internal/service"
)

type matchEnv struct {
	ctx        context.Context
	storage    *inmemory.InMemoryStorage
	memberRepo *inmemory.MemberRepo
	svc        *service.MatchService
}

func setupMatch(t *testing.T) matchEnv {
	t.Helper()
	storage := inmemory.NewStorage()
	memberRepo := inmemory.NewMemberRepo(storage)

	return matchEnv{
		ctx:        context.Background(),
		storage:    storage,
		memberRepo: memberRepo,
		svc:        service.NewMatchService(memberRepo),
	}
}

func (e matchEnv) addMember(t *testing.T, member domain.Member) {
	t.Helper()
	require.NoError(t, e.memberRepo.CreateMember(e.ctx, &member))
}

func TestScoreArithmetic(t *testing.T) {
	e := setupMatch(t)

	a := domain.Member{MemberID: "a", Needs: []string{"MongoDB"}, Skills: []string{"React"}, Availability: "Evenings"}
	b := domain.Member{MemberID: "b", Skills: []string{"MongoDB"}, Needs: []string{"React"}, Availability: "Evenings"}

	// 3 for the met need, 2 for the covered need, 1 for availability
	assert.Equal(t, 6, e.svc.Score(&a, &b))
	// mirror-image profiles score symmetrically: 2 + 3 + 1
	assert.Equal(t, 6, e.svc.Score(&b, &a))
}

func TestScoreMonotonicity(t *testing.T) {
	e := setupMatch(t)

	viewer := domain.Member{MemberID: "v", Needs: []string{"Go", "SQL"}}
	candidate := domain.Member{MemberID: "c", Skills: []string{"Go"}}

	before := e.svc.Score(&viewer, &candidate)

	candidate.Skills = append(candidate.Skills, "SQL")
	after := e.svc.Score(&viewer, &candidate)

	assert.Equal(t, before+3, after)
}

func TestScoreAsymmetry(t *testing.T) {
	e := setupMatch(t)

	// a needs two things b has; b needs one thing a has
	a := domain.Member{MemberID: "a", Needs: []string{"Go", "SQL"}, Skills: []string{"React"}}
	b := domain.Member{MemberID: "b", Skills: []string{"Go", "SQL"}, Needs: []string{"React"}}

	scoreAB := e.svc.Score(&a, &b) // 3+3 + 2 = 8
	scoreBA := e.svc.Score(&b, &a) // 3 + 2+2 = 7

	assert.Equal(t, 8, scoreAB)
	assert.Equal(t, 7, scoreBA)
	assert.NotEqual(t, scoreAB, scoreBA)
}

func TestScoreAvailability(t *testing.T) {
	e := setupMatch(t)

	tests := []struct {
		name      string
		viewer    string
		candidate string
		want      int
	}{
		{"exact match", "Evenings", "Evenings", 1},
		{"different labels", "Evenings", "Mornings", 0},
		{"viewer empty", "", "", 0},
		{"case sensitive", "Evenings", "evenings", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := domain.Member{MemberID: "v", Availability: tt.viewer}
			candidate := domain.Member{MemberID: "c", Availability: tt.candidate}
			assert.Equal(t, tt.want, e.svc.Score(&viewer, &candidate))
		})
	}
}

func TestScoreTagsAreCaseSensitive(t *testing.T) {
	e := setupMatch(t)

	viewer := domain.Member{MemberID: "v", Needs: []string{"mongodb"}}
	candidate := domain.Member{MemberID: "c", Skills: []string{"MongoDB"}}

	assert.Equal(t, 0, e.svc.Score(&viewer, &candidate))
}

func TestListComplementaryExcludesViewer(t *testing.T) {
	e := setupMatch(t)
	e.addMember(t, domain.Member{MemberID: "v", Email: "v@x.com", Needs: []string{"Go"}})
	e.addMember(t, domain.Member{MemberID: "o", Email: "o@x.com", Skills: []string{"Go"}})

	candidates, err := e.svc.ListComplementary(e.ctx, "v")
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "o", candidates[0].Member.MemberID)
	assert.Equal(t, 3, candidates[0].Score)
}

func TestListComplementaryRankingAndLimit(t *testing.T) {
	e := setupMatch(t)
	e.addMember(t, domain.Member{MemberID: "v", Email: "v@x.com", Needs: []string{"Go"}})

	// twelve zero-score members, then one strong candidate
	for i := 0; i < 12; i++ {
		e.addMember(t, domain.Member{
			MemberID: fmt.Sprintf("m%d", i),
			Email:    fmt.Sprintf("m%d@x.com", i),
		})
	}
	e.addMember(t, domain.Member{MemberID: "best", Email: "best@x.com", Skills: []string{"Go"}})

	candidates, err := e.svc.ListComplementary(e.ctx, "v")
	require.NoError(t, err)

	assert.Len(t, candidates, 10)
	assert.Equal(t, "best", candidates[0].Member.MemberID)
	// tied zero scores keep directory order
	assert.Equal(t, "m0", candidates[1].Member.MemberID)
	assert.Equal(t, "m1", candidates[2].Member.MemberID)
}

func TestListComplementaryUnknownViewer(t *testing.T) {
	e := setupMatch(t)

	_, err := e.svc.ListComplementary(e.ctx, "missing")
	assert.ErrorIs(t, err, my_errors.ErrMemberNotFound)
}

func TestSearchBySkills(t *testing.T) {
	e := setupMatch(t)
	e.addMember(t, domain.Member{MemberID: "v", Email: "v@x.com"})
	e.addMember(t, domain.Member{MemberID: "one", Email: "one@x.com", Skills: []string{"React", "Go"}})
	e.addMember(t, domain.Member{MemberID: "two", Email: "two@x.com", Skills: []string{"go"}})
	e.addMember(t, domain.Member{MemberID: "none", Email: "none@x.com", Skills: []string{"Python"}})

	candidates, err := e.svc.SearchBySkills(e.ctx, "v", "GO, react")
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	// "one" matches both tags, "two" matches one case-insensitively
	assert.Equal(t, "one", candidates[0].Member.MemberID)
	assert.Equal(t, 2, candidates[0].Score)
	assert.Equal(t, "two", candidates[1].Member.MemberID)
	assert.Equal(t, 1, candidates[1].Score)
}

func TestSearchBySkillsExcludesZeroMatches(t *testing.T) {
	e := setupMatch(t)
	e.addMember(t, domain.Member{MemberID: "v", Email: "v@x.com"})
	e.addMember(t, domain.Member{MemberID: "none", Email: "none@x.com", Skills: []string{"Python"}})

	candidates, err := e.svc.SearchBySkills(e.ctx, "v", "Go")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearchBySkillsEmptyQuery(t *testing.T) {
	e := setupMatch(t)
	e.addMember(t, domain.Member{MemberID: "v", Email: "v@x.com"})
	e.addMember(t, domain.Member{MemberID: "o", Email: "o@x.com", Skills: []string{"Go"}})

	for _, raw := range []string{"", "  ", ",,", " , "} {
		_, err := e.svc.SearchBySkills(e.ctx, "v", raw)
		assert.ErrorIs(t, err, my_errors.ErrEmptySearch)
	}
}

func BenchmarkScore(b *testing.B) {
	svc := service.NewMatchService(nil)
	viewer := &domain.Member{
		Needs:        []string{"MongoDB", "UI Design", "Go", "SQL"},
		Skills:       []string{"React", "Node.js"},
		Availability: "Evenings",
	}
	candidate := &domain.Member{
		Skills:       []string{"MongoDB", "Express", "Go"},
		Needs:        []string{"React", "Frontend"},
		Availability: "Evenings",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Score(viewer, candidate)
	}
}
