package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"travel_console/internal/adapters/apiclient"
	"travel_console/internal/domain"
)

func TestPackagesPage_LoadReady(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{samplePackages()}}
	p := NewPackagesPage(src)
	require.Equal(t, StateLoading, p.State())

	require.NoError(t, p.Load(context.Background()))
	require.Equal(t, StateReady, p.State())
	require.Equal(t, []int64{4, 3, 2, 1, 5}, ids(p.Packages()))
	require.Empty(t, p.Err())
}

func TestPackagesPage_LoadEmpty(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{nil}}
	p := NewPackagesPage(src)

	require.NoError(t, p.Load(context.Background()))
	require.Equal(t, StateReady, p.State())
	require.NotNil(t, p.Packages())
	require.Empty(t, p.Visible())
}

func TestPackagesPage_ErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &apiclient.APIError{Status: 500, Message: "connection refused"}, "connection refused"},
		{"no message", &apiclient.APIError{Status: 502, Body: "<html>"}, MsgFetchFailed},
		{"transport", errors.New("dial tcp: refused"), MsgFetchFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{listErrs: []error{tc.err}, listResults: [][]domain.Package{nil}}
			p := NewPackagesPage(src)

			err := p.Load(context.Background())
			require.EqualError(t, err, tc.want)
			require.Equal(t, StateError, p.State())
			require.Equal(t, tc.want, p.Err())
		})
	}
}

func TestPackagesPage_Retry(t *testing.T) {
	src := &fakeSource{
		listErrs:    []error{errors.New("offline")},
		listResults: [][]domain.Package{nil, samplePackages()},
	}
	p := NewPackagesPage(src)
	ctx := context.Background()

	require.Error(t, p.Load(ctx))
	require.Equal(t, StateError, p.State())

	require.NoError(t, p.Retry(ctx))
	require.Equal(t, StateReady, p.State())
	require.Len(t, p.Packages(), 5)

	// retry outside the error state is a no-op
	require.NoError(t, p.Retry(ctx))
	require.Equal(t, 2, src.listCalls)
}

func TestPackagesPage_FailedReloadKeepsList(t *testing.T) {
	src := &fakeSource{
		listErrs:    []error{nil, errors.New("offline")},
		listResults: [][]domain.Package{samplePackages()},
	}
	p := NewPackagesPage(src)
	ctx := context.Background()

	require.NoError(t, p.Load(ctx))
	require.Error(t, p.Load(ctx))
	require.Equal(t, StateError, p.State())
	require.Len(t, p.Packages(), 5)
}

func TestPackagesPage_FiltersReplace(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{samplePackages()}}
	p := NewPackagesPage(src)
	require.NoError(t, p.Load(context.Background()))

	p.SelectStatus(FilterDraft)
	require.Equal(t, []int64{4}, ids(p.Visible()))

	// a new status choice replaces draft; it does not intersect with it
	p.SelectStatus(FilterActive)
	require.Equal(t, []int64{3, 2, 1}, ids(p.Visible()))

	p.SelectCategory("adventure")
	require.Equal(t, []int64{1}, ids(p.Visible()))

	p.SelectCategory("")
	p.SelectStatus("")
	require.Equal(t, Criteria{Status: FilterAll, Category: CategoryAll}, p.Criteria())
	require.Len(t, p.Visible(), 5)
}

func TestPackagesPage_DetailsModal(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{samplePackages()}}
	p := NewPackagesPage(src)
	require.NoError(t, p.Load(context.Background()))

	_, open := p.Selected()
	require.False(t, open)

	require.True(t, p.OpenDetails(2))
	sel, open := p.Selected()
	require.True(t, open)
	require.Equal(t, "European Grand Tour", sel.Name)

	require.False(t, p.OpenDetails(42))
	p.CloseDetails()
	_, open = p.Selected()
	require.False(t, open)
	require.Equal(t, StateReady, p.State())
}

func TestPackagesPage_SubmitCreate_Success(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{samplePackages()}}
	p := NewPackagesPage(src)
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	p.OpenCreate()
	f := NewCreateForm()
	f.Name = "Test Trip"
	created, err := p.SubmitCreate(ctx, f)
	require.NoError(t, err)
	require.Equal(t, int64(99), created.ID)

	require.False(t, p.CreateOpen())
	require.Equal(t, NewCreateForm(), p.Form())
	require.Equal(t, 2, src.listCalls) // reloaded
	require.Len(t, src.created, 1)
}

func TestPackagesPage_SubmitCreate_Failure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &apiclient.APIError{Status: 500, Message: `null value in column "name"`}, `null value in column "name"`},
		{"transport", errors.New("timeout"), MsgCreateFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{listResults: [][]domain.Package{samplePackages()}, createErr: tc.err}
			p := NewPackagesPage(src)
			ctx := context.Background()
			require.NoError(t, p.Load(ctx))

			p.OpenCreate()
			f := NewCreateForm()
			f.Name = "Kept"
			_, err := p.SubmitCreate(ctx, f)
			require.EqualError(t, err, tc.want)

			require.True(t, p.CreateOpen())
			require.Equal(t, "Kept", p.Form().Name)
			require.Equal(t, 1, src.listCalls) // no reload
			require.Equal(t, StateReady, p.State())
		})
	}
}

func TestPackagesPage_LocalEdits(t *testing.T) {
	src := &fakeSource{listResults: [][]domain.Package{samplePackages()}}
	p := NewPackagesPage(src)
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	require.True(t, p.ToggleFeatured(3))
	require.True(t, p.SetStatus(4, "Active"))
	require.False(t, p.SetStatus(404, "Active"))

	s := p.Stats()
	require.Equal(t, 3, s.Featured)
	require.Equal(t, 4, s.Active)
	require.Empty(t, src.created)

	// a reload replaces local edits with the stored rows
	require.NoError(t, p.Load(ctx))
	require.Equal(t, 2, p.Stats().Featured)
}
