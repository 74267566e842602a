package transport

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/raywall/dynamo-items-service/dyndb"
	"github.com/raywall/dynamo-items-service/planner"
)

type mockPlanner struct {
	mock.Mock
}

func (m *mockPlanner) Plan(ctx context.Context, f planner.Filter) ([]dyndb.Record, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]dyndb.Record)
	return items, args.Error(1)
}

// fetcherStub simula um dyndb.ItemStore para exercitar o planner real.
type fetcherStub struct {
	all   []dyndb.Record
	err   error
	calls []string
}

func (f *fetcherStub) FetchAll(_ context.Context, limit int) ([]dyndb.Record, error) {
	f.calls = append(f.calls, "all")
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.all) {
		return f.all[:limit], nil
	}
	return f.all, nil
}

func (f *fetcherStub) FetchByKey(_ context.Context, attribute, value string, _ int) ([]dyndb.Record, error) {
	f.calls = append(f.calls, "key:"+attribute+"="+value)
	if f.err != nil {
		return nil, f.err
	}
	var out []dyndb.Record
	for _, r := range f.all {
		if r[attribute] == value {
			out = append(out, r)
		}
	}
	return out, nil
}
