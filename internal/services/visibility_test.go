package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/terraincognita07/fleemy/internal/models"
)

type stubTeamReader struct {
	teams map[string]models.Team
	err   error
}

func (reader stubTeamReader) FindByTeamID(teamID string) (models.Team, bool, error) {
	if reader.err != nil {
		return models.Team{}, false, reader.err
	}
	team, found := reader.teams[teamID]
	return team, found, nil
}

func TestResolveScopeWithoutTeamIsCallerOnly(t *testing.T) {
	t.Parallel()

	scope, err := ResolveScope("u1", "", stubTeamReader{})
	if err != nil {
		t.Fatalf("ResolveScope returned error: %v", err)
	}
	if len(scope) != 1 || scope[0] != "u1" {
		t.Fatalf("expected scope {u1}, got %v", scope)
	}
}

func TestResolveScopeRejectsNonMember(t *testing.T) {
	t.Parallel()

	reader := stubTeamReader{teams: map[string]models.Team{
		"t1": {TeamID: "t1", Members: []string{"u2"}, CreatedBy: "u3"},
	}}

	if _, err := ResolveScope("u1", "t1", reader); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestResolveScopeMissingTeamLooksLikeNotAuthorized(t *testing.T) {
	t.Parallel()

	reader := stubTeamReader{teams: map[string]models.Team{}}
	if _, err := ResolveScope("u1", "ghost", reader); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected missing team to yield ErrNotAuthorized, got %v", err)
	}
}

func TestResolveScopeIncludesMembersAndCreator(t *testing.T) {
	t.Parallel()

	reader := stubTeamReader{teams: map[string]models.Team{
		"t1": {TeamID: "t1", Members: []string{"u1", "u2"}, CreatedBy: "u3"},
	}}

	cases := []struct {
		name   string
		caller string
	}{
		{name: "member caller", caller: "u1"},
		{name: "creator caller", caller: "u3"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			scope, err := ResolveScope(testCase.caller, "t1", reader)
			if err != nil {
				t.Fatalf("ResolveScope returned error: %v", err)
			}
			sort.Strings(scope)
			want := []string{"u1", "u2", "u3"}
			if len(scope) != len(want) {
				t.Fatalf("expected scope %v, got %v", want, scope)
			}
			for index := range want {
				if scope[index] != want[index] {
					t.Fatalf("expected scope %v, got %v", want, scope)
				}
			}
		})
	}
}

func TestResolveScopeDeduplicatesCreatorListedAsMember(t *testing.T) {
	t.Parallel()

	reader := stubTeamReader{teams: map[string]models.Team{
		"t1": {TeamID: "t1", Members: []string{"u1", "u1", "u2"}, CreatedBy: "u2"},
	}}

	scope, err := ResolveScope("u2", "t1", reader)
	if err != nil {
		t.Fatalf("ResolveScope returned error: %v", err)
	}
	if len(scope) != 2 {
		t.Fatalf("expected deduplicated scope of 2 uids, got %v", scope)
	}
}

func TestResolveScopePropagatesLookupFailure(t *testing.T) {
	t.Parallel()

	lookupErr := errors.New("store offline")
	if _, err := ResolveScope("u1", "t1", stubTeamReader{err: lookupErr}); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup failure to propagate, got %v", err)
	}
}
