package wallet

import (
	"testing"

	"landshare-tui/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_ConnectDisconnect(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	assert.Equal(t, router.Session{}, p.Session())

	var seen []router.Session
	p.Subscribe(func(s router.Session) { seen = append(seen, s) })

	p.Connect("  0x2222222222222222222222222222222222bbbb ")
	p.Disconnect()

	require.Len(t, seen, 2)
	assert.Equal(t, router.Session{Address: "0x2222222222222222222222222222222222bbbb", Connected: true}, seen[0])
	assert.Equal(t, router.Session{}, seen[1])
	assert.False(t, p.Session().Connected)
}

func TestProvider_SubscribersInOrder(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	var order []string
	p.Subscribe(func(router.Session) { order = append(order, "first") })
	p.Subscribe(func(router.Session) { order = append(order, "second") })
	p.Connect("0xabc")
	p.Disconnect()

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestProvider_DrivesRouter(t *testing.T) {
	t.Parallel()

	const admin = "0x1111111111111111111111111111111111aaaa"
	var routes []router.Route
	r := router.New(admin, router.NavigatorFunc(func(route router.Route) { routes = append(routes, route) }))

	p := NewProvider()
	p.Subscribe(r.Observe)

	p.Connect("0x1111111111111111111111111111111111AAAA")
	assert.Equal(t, router.StateRoutedAdmin, r.State())

	r.Disconnect(p)
	assert.False(t, p.Session().Connected)
	assert.Equal(t, router.StateDisconnected, r.State())
	assert.Equal(t, []router.Route{router.RouteAdmin, router.RouteLanding}, routes)
}
