package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"readmaster-go/internal/updatecheck"
)

type fakeWindow struct {
	hidden int
}

func (f *fakeWindow) Hide() { f.hidden++ }

type fakeEmitter struct {
	events []string
	data   []interface{}
}

func (f *fakeEmitter) Emit(name string, data interface{}) {
	f.events = append(f.events, name)
	f.data = append(f.data, data)
}

type fakeNotifier struct {
	bodies []string
}

func (f *fakeNotifier) Show(_, body string) error {
	f.bodies = append(f.bodies, body)
	return nil
}

type fakeChecker struct {
	info updatecheck.VersionInfo
}

func (f *fakeChecker) CheckNow() *updatecheck.VersionInfo {
	info := f.info
	return &info
}

type routerFixture struct {
	router   *Router
	window   *fakeWindow
	emitter  *fakeEmitter
	notifier *fakeNotifier
	checker  *fakeChecker
	quits    int
}

func newRouterFixture(t *testing.T) *routerFixture {
	f := &routerFixture{
		window:   &fakeWindow{},
		emitter:  &fakeEmitter{},
		notifier: &fakeNotifier{},
		checker:  &fakeChecker{},
	}
	f.router = NewRouter(zaptest.NewLogger(t).Sugar(), f.window, f.emitter, f.notifier, f.checker,
		func() { f.quits++ })
	return f
}

func TestRouter_Quit(t *testing.T) {
	f := newRouterFixture(t)

	f.router.Handle(IDQuitApp)
	assert.Equal(t, 1, f.quits)
	assert.Empty(t, f.emitter.events)
}

func TestRouter_Hide(t *testing.T) {
	f := newRouterFixture(t)

	f.router.Handle(IDHideApp)
	assert.Equal(t, 1, f.window.hidden)
	assert.Empty(t, f.emitter.events)
}

func TestRouter_ForwardsUnhandledIDs(t *testing.T) {
	f := newRouterFixture(t)

	f.router.Handle(IDImportBook)
	f.router.Handle(IDTableOfContents)

	assert.Equal(t, []string{EventMenu, EventMenu}, f.emitter.events)
	assert.Equal(t, []interface{}{IDImportBook, IDTableOfContents}, f.data())
}

func (f *routerFixture) data() []interface{} { return f.emitter.data }

func TestRouter_UpdateCheckOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		info     updatecheck.VersionInfo
		wantBody string
	}{
		{
			name:     "available",
			info:     updatecheck.VersionInfo{UpdateAvailable: true, LatestVersion: "v2.4.0"},
			wantBody: "Read Master v2.4.0 is available.",
		},
		{
			name:     "up_to_date",
			info:     updatecheck.VersionInfo{UpdateAvailable: false},
			wantBody: "You're running the latest version.",
		},
		{
			name:     "failed",
			info:     updatecheck.VersionInfo{CheckError: "GitHub API returned status 503"},
			wantBody: "Update check failed: GitHub API returned status 503",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.checker.info = tc.info

			f.router.runUpdateCheck()

			assert.Equal(t, []string{tc.wantBody}, f.notifier.bodies)
		})
	}
}
