package menu

import (
	"strings"
	"testing"
	"time"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/faq"
	"github.com/leasemint/dataroom/internal/i18n"
	"github.com/leasemint/dataroom/internal/input"
	"github.com/leasemint/dataroom/internal/mailto"
	"github.com/leasemint/dataroom/internal/session"
)

var testContact = mailto.Address{User: "manu", Domain: "leasemint.ai"}

func testLangCfg() config.LanguageConfig {
	return config.LanguageConfig{
		PresentationURL: "https://deck.example.com/en",
		KYCURL:          "https://kyc.example.com",
		DownloadPath:    "pdf/en/deck.pdf",
	}
}

func testCatalog() *faq.Catalog {
	return faq.NewCatalog(map[i18n.Language][]faq.Entry{
		i18n.LangEN: {{Question: "Q", Answer: "A"}},
	})
}

func authedSession(t *testing.T, lang i18n.Language) *session.Store {
	t.Helper()
	s := session.NewStore(session.NewMemoryStorage())
	s.Load()
	s.Login(lang)
	return s
}

func newTestMenu(t *testing.T, sched Scheduler) (*Menu, *session.Store) {
	t.Helper()
	sess := authedSession(t, i18n.LangEN)
	return New(i18n.LangEN, sess, testLangCfg(), testContact, testCatalog(), sched), sess
}

func TestVisibilityFollowsSession(t *testing.T) {
	m, sess := newTestMenu(t, NewFakeScheduler())

	if !m.Visible() {
		t.Fatal("expected menu visible while authenticated")
	}
	sess.Logout()
	if m.Visible() {
		t.Error("menu must not be rendered after logout")
	}
}

func TestClosePathsConverge(t *testing.T) {
	keys := input.NewFake()
	m, _ := newTestMenu(t, NewFakeScheduler())
	m.Mount(keys)

	// Action selection.
	m.Open()
	m.Download()
	if m.IsOpen() {
		t.Error("selecting an action must close the menu")
	}

	// Click outside.
	m.Open()
	m.ClickOutside()
	if m.IsOpen() {
		t.Error("clicking outside must close the menu")
	}

	// Escape key.
	m.Open()
	keys.Press(input.KeyEscape)
	if m.IsOpen() {
		t.Error("escape must close the menu")
	}
}

func TestActions(t *testing.T) {
	m, sess := newTestMenu(t, NewFakeScheduler())

	if got := m.Download(); got != "/download/en" {
		t.Errorf("download URL: %q", got)
	}
	if got := m.OpenPresentation(); got != "https://deck.example.com/en" {
		t.Errorf("presentation URL: %q", got)
	}
	if got, ok := m.OpenKYC(); !ok || got != "https://kyc.example.com" {
		t.Errorf("kyc URL: %q ok=%v", got, ok)
	}
	if got := m.Contact(); !strings.HasPrefix(got, "mailto:manu@leasemint.ai?subject=") {
		t.Errorf("contact link: %q", got)
	}
	if got := m.SwitchLanguage(); got != "/vc_fr" {
		t.Errorf("switch language target: %q", got)
	}

	// Switching language must not touch the session.
	if !sess.Authenticated(i18n.LangEN) {
		t.Error("session mutated by language switch")
	}
}

func TestKYCAbsentInLeanVariant(t *testing.T) {
	sess := authedSession(t, i18n.LangEN)
	cfg := testLangCfg()
	cfg.KYCURL = ""
	m := New(i18n.LangEN, sess, cfg, testContact, testCatalog(), NewFakeScheduler())

	if _, ok := m.OpenKYC(); ok {
		t.Error("lean variant must not offer a KYC action")
	}
}

func TestLogout(t *testing.T) {
	m, sess := newTestMenu(t, NewFakeScheduler())

	target := m.Logout()
	if target != LandingPath {
		t.Errorf("logout target: %q", target)
	}
	if sess.Current().IsAuthenticated {
		t.Error("expected session ended")
	}
}

func TestFAQLayersOverView(t *testing.T) {
	m, _ := newTestMenu(t, NewFakeScheduler())

	m.Open()
	m.OpenFAQ()
	if !m.FAQOpen() {
		t.Error("expected FAQ panel open")
	}
	if m.IsOpen() {
		t.Error("opening FAQ must close the menu")
	}

	// Panel state survives close/reopen.
	m.FAQ().SetSearch("kyc")
	m.FAQ().Toggle(0)
	m.CloseFAQ()
	m.OpenFAQ()
	if m.FAQ().Search() != "kyc" || !m.FAQ().Expanded(0) {
		t.Error("panel state must be retained across reopen")
	}
}

func TestAttentionLabelCycle(t *testing.T) {
	sched := NewFakeScheduler()
	m, _ := newTestMenu(t, sched)
	m.Mount(input.NewFake())

	if m.LabelVisible() {
		t.Fatal("label must start hidden")
	}

	sched.Advance(labelInterval)
	if !m.LabelVisible() {
		t.Error("label must be revealed after the interval")
	}

	sched.Advance(labelShowFor)
	if m.LabelVisible() {
		t.Error("label must hide again after its show window")
	}

	// The cycle re-arms itself.
	sched.Advance(labelInterval)
	if !m.LabelVisible() {
		t.Error("label must be revealed on the next cycle")
	}
}

func TestOpeningSuppressesLabel(t *testing.T) {
	sched := NewFakeScheduler()
	m, _ := newTestMenu(t, sched)
	m.Mount(input.NewFake())

	sched.Advance(labelInterval)
	if !m.LabelVisible() {
		t.Fatal("label should be showing")
	}

	m.Open()
	if m.LabelVisible() {
		t.Error("opening must immediately hide the label")
	}

	// No stale callback may revive the label while open.
	sched.Advance(10 * labelInterval)
	if m.LabelVisible() {
		t.Error("label revived while menu open")
	}
}

func TestUnmountCancelsTimers(t *testing.T) {
	sched := NewFakeScheduler()
	m, _ := newTestMenu(t, sched)
	keys := input.NewFake()
	m.Mount(keys)

	m.Unmount()
	if keys.SubscriberCount() != 0 {
		t.Error("unmount must drop the key listener")
	}

	sched.Advance(10 * labelInterval)
	if m.LabelVisible() {
		t.Error("label revived after unmount")
	}
	if sched.Pending() != 0 {
		t.Errorf("expected no live timers after unmount, got %d", sched.Pending())
	}
}

func TestLabelNeverAlterOpenState(t *testing.T) {
	sched := NewFakeScheduler()
	m, _ := newTestMenu(t, sched)
	m.Mount(input.NewFake())

	sched.Advance(labelInterval + time.Second)
	if m.IsOpen() {
		t.Error("label reveal must not open the menu")
	}
}
