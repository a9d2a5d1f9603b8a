package search_test

import (
	"context"
	"testing"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/search"
)

func quietClient(t *testing.T) rest.Client {
	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return nil, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return nil, nil
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return nil, nil
	}
	return client
}

func TestSearcherSequencing(t *testing.T) {
	client := quietClient(t)
	testee := search.NewSearcher(search.New(client, nullLogger()))

	first := testee.Search(context.Background(), "employee")
	second := testee.Search(context.Background(), "team")

	if first.Seq >= second.Seq {
		t.Errorf("sequence numbers should increase: %d then %d", first.Seq, second.Seq)
	}
	if first.Query != "employee" || second.Query != "team" {
		t.Error("outcomes should carry their queries")
	}
}

func TestSearcherDropsStaleOutcomes(t *testing.T) {
	client := quietClient(t)
	testee := search.NewSearcher(search.New(client, nullLogger()))

	older := testee.Search(context.Background(), "j")
	newer := testee.Search(context.Background(), "john")

	// the newer answer lands first.
	if !testee.Accept(newer) {
		t.Error("the newest outcome should be accepted")
	}
	if testee.Accept(older) {
		t.Error("a stale outcome should be dropped")
	}
	if testee.Accept(newer) {
		t.Error("an already-applied outcome should not apply twice")
	}
}

func TestSearcherAcceptsInOrder(t *testing.T) {
	client := quietClient(t)
	testee := search.NewSearcher(search.New(client, nullLogger()))

	first := testee.Search(context.Background(), "a")
	second := testee.Search(context.Background(), "ab")
	third := testee.Search(context.Background(), "abc")

	for nth, o := range []search.Outcome{first, second, third} {
		if !testee.Accept(o) {
			t.Errorf("outcome %d should be accepted when applied in order", nth)
		}
	}
}
