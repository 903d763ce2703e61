// Package menu implements the floating helper overlay shown to
// authenticated visitors: download, external links, FAQ, contact, language
// switch and logout.
package menu

import (
	"time"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/faq"
	"github.com/leasemint/dataroom/internal/i18n"
	"github.com/leasemint/dataroom/internal/input"
	"github.com/leasemint/dataroom/internal/mailto"
	"github.com/leasemint/dataroom/internal/session"
)

// Attention label cadence: while the menu is closed, the label is revealed
// briefly on a fixed schedule.
const (
	labelInterval = 12 * time.Second
	labelShowFor  = 3 * time.Second
)

// LandingPath is where logout returns the visitor.
const LandingPath = "/"

// DownloadPathPrefix is the route under which per-language downloads are
// served with an attachment disposition.
const DownloadPathPrefix = "/download/"

var contactSubjects = map[i18n.Language]string{
	i18n.LangEN: "LeaseMint – Investor Question",
	i18n.LangFR: "LeaseMint – Question Investisseur",
}

// Menu is the helper overlay state machine for one language page. It exists
// only while the session is authenticated; callers unmount it entirely
// otherwise.
type Menu struct {
	lang    i18n.Language
	session *session.Store
	langCfg config.LanguageConfig
	contact mailto.Address
	sched   Scheduler

	open         bool
	mounted      bool
	labelVisible bool
	cancelLabel  func()
	unsubKeys    func()

	faqPanel *faq.Panel
	faqOpen  bool
}

// New creates the menu for a language page. The FAQ panel is owned here so
// its search and expansion state survive close/reopen within the tab.
func New(lang i18n.Language, sess *session.Store, langCfg config.LanguageConfig, contact mailto.Address, catalog *faq.Catalog, sched Scheduler) *Menu {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Menu{
		lang:     lang,
		session:  sess,
		langCfg:  langCfg,
		contact:  contact,
		sched:    sched,
		faqPanel: faq.NewPanel(lang, catalog),
	}
}

// Visible reports whether the menu should be rendered at all.
func (m *Menu) Visible() bool {
	return m.session.Authenticated(m.lang)
}

// Mount registers the escape-key listener and starts the attention label
// cycle. Everything registered here is dropped by Unmount.
func (m *Menu) Mount(keys input.KeySource) {
	m.mounted = true
	if keys != nil {
		m.unsubKeys = keys.Subscribe(func(key string) {
			if key == input.KeyEscape {
				m.Close()
			}
		})
	}
	m.scheduleLabel()
}

// Unmount drops the key listener and cancels any scheduled label callback.
func (m *Menu) Unmount() {
	m.mounted = false
	if m.unsubKeys != nil {
		m.unsubKeys()
		m.unsubKeys = nil
	}
	m.cancelLabelCycle()
	m.labelVisible = false
}

// Open reveals the action list and immediately suppresses the attention
// label and its pending callbacks.
func (m *Menu) Open() {
	m.open = true
	m.labelVisible = false
	m.cancelLabelCycle()
}

// Close is the single convergent close transition: action selected, click
// outside, or escape all end here.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.scheduleLabel()
}

// Toggle flips the open state.
func (m *Menu) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// ClickOutside closes the menu; clicks inside are the caller's concern.
func (m *Menu) ClickOutside() { m.Close() }

// IsOpen reports the open state.
func (m *Menu) IsOpen() bool { return m.open }

// LabelVisible reports whether the attention label is currently revealed.
func (m *Menu) LabelVisible() bool { return m.labelVisible }

// Download returns the browser-download URL for the language's asset and
// closes the menu.
func (m *Menu) Download() string {
	m.Close()
	return DownloadPathPrefix + string(m.lang)
}

// OpenPresentation returns the external presentation reference, to be opened
// in a new browsing context, and closes the menu.
func (m *Menu) OpenPresentation() string {
	m.Close()
	return m.langCfg.PresentationURL
}

// OpenKYC returns the external KYC reference. It exists only in the richer
// menu variant; ok is false when the deployment has none configured.
func (m *Menu) OpenKYC() (string, bool) {
	if m.langCfg.KYCURL == "" {
		return "", false
	}
	m.Close()
	return m.langCfg.KYCURL, true
}

// OpenFAQ layers the FAQ panel over the authenticated view and closes the
// menu. The view underneath stays mounted.
func (m *Menu) OpenFAQ() {
	m.faqOpen = true
	m.Close()
}

// CloseFAQ hides the panel; its search and expansion state are retained.
func (m *Menu) CloseFAQ() { m.faqOpen = false }

// FAQOpen reports whether the panel is showing.
func (m *Menu) FAQOpen() bool { return m.faqOpen }

// FAQ returns the panel owned by this menu.
func (m *Menu) FAQ() *faq.Panel { return m.faqPanel }

// Contact returns the pre-filled support mail link with a
// language-appropriate subject and closes the menu.
func (m *Menu) Contact() string {
	m.Close()
	return ContactLink(m.lang, m.contact)
}

// ContactLink builds the support mail link with the language-appropriate
// subject line.
func ContactLink(lang i18n.Language, contact mailto.Address) string {
	return mailto.Link(contact, contactSubjects[lang])
}

// SwitchLanguage returns the sibling-language entry point. The session is
// not touched; the destination page's own mount logic decides its state.
func (m *Menu) SwitchLanguage() string {
	m.Close()
	return m.lang.Other().PagePath()
}

// Logout ends the session and returns the landing entry point.
func (m *Menu) Logout() string {
	m.Close()
	m.session.Logout()
	return LandingPath
}

// scheduleLabel arms the next label reveal. The chain re-arms itself after
// each show; open or unmounted menus never reveal the label.
func (m *Menu) scheduleLabel() {
	if !m.mounted || m.open {
		return
	}
	m.cancelLabelCycle()
	m.cancelLabel = m.sched.AfterFunc(labelInterval, func() {
		if !m.mounted || m.open {
			return
		}
		m.labelVisible = true
		m.cancelLabel = m.sched.AfterFunc(labelShowFor, func() {
			m.labelVisible = false
			m.scheduleLabel()
		})
	})
}

func (m *Menu) cancelLabelCycle() {
	if m.cancelLabel != nil {
		m.cancelLabel()
		m.cancelLabel = nil
	}
}
