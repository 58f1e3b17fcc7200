package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	s := ComputeStats(samplePackages())
	require.Equal(t, 5, s.Total)
	require.Equal(t, 3, s.Active)
	require.Equal(t, 2, s.Featured)
	require.Equal(t, map[string]int{"Draft": 1, "Active": 3, "inactive": 1}, s.ByStatus)
	require.Equal(t, map[string]int{"Cultural": 3, "Adventure": 1, "Luxury": 1}, s.ByCategory)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	require.Zero(t, s.Total)
	require.Empty(t, s.ByStatus)
}

func TestCreateForm_Input(t *testing.T) {
	f := NewCreateForm()
	f.Name = "Goa Getaway"
	f.Highlights = "Beaches, Forts ,Spice farm"
	in := f.Input()

	require.Equal(t, "Goa Getaway", *in.Name)
	require.Equal(t, "Active", *in.Status)
	require.Equal(t, "Adventure", *in.Category)
	require.Equal(t, "custom", *in.TripType)
	require.Equal(t, []string{"Beaches", "Forts", "Spice farm"}, in.Highlights)
	require.Equal(t, []string{}, in.Includes)
}
