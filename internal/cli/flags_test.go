package cli

import (
	"testing"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainFlag_RejectsUnknown(t *testing.T) {
	var f domainFlag
	require.NoError(t, f.Set("backoffice"))
	assert.Equal(t, domain.DomainBackoffice, f.value)

	err := f.Set("intranet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront|backoffice|help")
}

func TestSectionAndStateFlags_TrackExplicitUse(t *testing.T) {
	var sec sectionFlag
	assert.False(t, sec.set)
	require.NoError(t, sec.Set("sidebar"))
	assert.True(t, sec.set)
	assert.Equal(t, domain.SectionSidebar, sec.value)
	require.Error(t, sec.Set("ribbon"))

	var st stateFlag
	assert.False(t, st.set)
	require.NoError(t, st.Set("retired"))
	assert.True(t, st.set)
	assert.Equal(t, domain.StateRetired, st.value)
	require.Error(t, st.Set("hidden"))
}
