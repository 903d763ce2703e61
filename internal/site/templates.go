package site

// landingTemplate is the public landing page. Everything above the portal
// links is presentational; the gated material lives behind the language
// entry points.
const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="robots" content="noindex, nofollow">
  <title>{{.Brand}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="landing">
  <main class="landing-main">
    <h1>{{.Brand}}</h1>
    <p class="tagline">Turning long-term leases into secure cash-flow assets.</p>
    <nav class="portal-links">
      <a class="btn-primary" href="/vc_en">Investor Access — English</a>
      <a class="btn-primary" href="/vc_fr">Accès Investisseurs — Français</a>
    </nav>
  </main>
  <footer class="landing-footer">© {{.Year}} {{.Brand}}</footer>
</body>
</html>`

// portalTemplate is the per-language access/viewer page. The page carries
// both render targets; portal.js decides which one shows based on the
// tab-scoped session and drives every transition through the JSON API.
const portalTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="robots" content="noindex, nofollow">
  <title>{{.Brand}} — {{.T.AccessTitle}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-lang="{{.Lang}}" data-switch-path="{{.SwitchPath}}" data-download-path="{{.DownloadPath}}"
      data-presentation-url="{{.PresentationURL}}"{{if .KYCURL}} data-kyc-url="{{.KYCURL}}"{{end}}>

  <!-- Access gate: password form -->
  <main id="gate" class="gate hidden">
    <div class="gate-logo">{{.Brand}}</div>
    <h1>{{.T.AccessTitle}}</h1>
    <p class="subtitle">{{.T.AccessSubtitle}}</p>
    <form id="access-form" autocomplete="off">
      <input type="password" id="password" placeholder="{{.T.Placeholder}}" autofocus required>
      <p id="gate-error" class="gate-error hidden"></p>
      <button type="submit" id="submit-btn" class="btn-primary"
              data-label="{{.T.SubmitButton}}" data-busy="{{.T.Verifying}}">{{.T.SubmitButton}}</button>
    </form>
    <a href="#" id="request-access" class="request-access">{{.T.RequestAccess}}</a>
    <p class="gate-footer">© {{.Year}} {{.Brand}}</p>
  </main>

  <!-- Authenticated view: slide deck or embedded presentation -->
  <main id="viewer" class="viewer hidden">
    <div id="deck" class="deck hidden">
      <div class="deck-stage">
        <img id="slide-image" alt="">
        <button id="deck-prev" class="deck-arrow deck-arrow-left" aria-label="{{.T.Prev}}">&#8249;</button>
        <button id="deck-next" class="deck-arrow deck-arrow-right" aria-label="{{.T.Next}}">&#8250;</button>
      </div>
      <div class="deck-controls">
        <span id="deck-counter"></span>
        <span id="deck-dots" class="deck-dots"></span>
        <button id="deck-fullscreen" class="deck-fs"
                data-enter="{{.T.Fullscreen}}" data-exit="{{.T.ExitFS}}">{{.T.Fullscreen}}</button>
      </div>
      <p class="keyboard-hint">{{.T.KeyboardHint}}</p>
    </div>
    <div id="deck-empty" class="deck-empty hidden">{{.T.NoSlides}}</div>
    <div id="embed" class="embed hidden">
      <div id="embed-loading" class="embed-loading"><div class="spinner"></div><p>{{.T.LoadingPresentation}}</p></div>
      <iframe id="embed-frame" allow="fullscreen" title="Investor Presentation"></iframe>
      <div class="embed-controls">
        <button id="embed-fullscreen" data-enter="{{.T.Fullscreen}}" data-exit="{{.T.ExitFS}}">{{.T.Fullscreen}}</button>
        <a id="embed-open" target="_blank" rel="noopener noreferrer">{{.T.OpenNewTab}}</a>
      </div>
    </div>
  </main>

  <!-- Helper menu -->
  <div id="helper" class="helper hidden">
    <div id="helper-panel" class="helper-panel hidden">
      <div class="helper-header">
        <span>{{.T.Menu}}</span>
        <button id="helper-close" aria-label="{{.T.Close}}">&times;</button>
      </div>
      <button class="helper-item" id="action-download">{{.T.DownloadPDF}}</button>
      <button class="helper-item" id="action-presentation">{{.T.ViewPresentation}}</button>
      {{if .KYCURL}}<button class="helper-item" id="action-kyc">{{.T.OpenKYC}}</button>{{end}}
      <hr>
      <button class="helper-item" id="action-faq">{{.T.Help}}</button>
      <button class="helper-item" id="action-contact">{{.T.Contact}}</button>
      <button class="helper-item" id="action-switch">{{.T.SwitchLang}}</button>
      <hr>
      <button class="helper-item helper-logout" id="action-logout">{{.T.Logout}}</button>
    </div>
    <span id="helper-label" class="helper-label hidden">{{.T.Menu}}</span>
    <button id="helper-toggle" class="helper-toggle" aria-label="{{.T.Menu}}">&#8943;</button>
  </div>

  <!-- FAQ drawer -->
  <div id="faq" class="faq hidden">
    <div class="faq-header">
      <span>{{.T.FAQTitle}}</span>
      <button id="faq-close" aria-label="{{.T.Close}}">&times;</button>
    </div>
    <input type="text" id="faq-search" placeholder="{{.T.SearchPlaceholder}}" autocomplete="off">
    <div id="faq-list"></div>
    <p id="faq-empty" class="faq-empty hidden">{{.T.NoResults}}</p>
  </div>

  <script src="/static/portal.js"></script>
</body>
</html>`

// cssContent is the portal stylesheet.
const cssContent = `:root {
  --bg: #ffffff;
  --text: #1a2b3c;
  --text-muted: #5f7084;
  --accent: #1fb98c;
  --accent-hover: #18a37a;
  --danger: #d64545;
  --border: #dde4eb;
  --overlay: rgba(10, 20, 30, 0.55);
  --shadow: 0 8px 28px rgba(10, 20, 30, 0.18);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
}

.hidden { display: none !important; }

.btn-primary {
  display: inline-block;
  padding: 0.7rem 1.4rem;
  border: none;
  border-radius: 8px;
  background: var(--accent);
  color: #fff;
  font-size: 1rem;
  text-decoration: none;
  cursor: pointer;
}
.btn-primary:hover { background: var(--accent-hover); }
.btn-primary:disabled { opacity: 0.5; cursor: not-allowed; }

/* Landing */
.landing-main {
  min-height: 80vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  gap: 1rem;
  text-align: center;
  padding: 1rem;
}
.tagline { color: var(--text-muted); }
.portal-links { display: flex; gap: 1rem; flex-wrap: wrap; justify-content: center; }
.landing-footer { text-align: center; color: var(--text-muted); padding: 2rem 0; font-size: 0.85rem; }

/* Gate */
.gate {
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  padding: 1rem;
  text-align: center;
}
.gate-logo { font-size: 1.4rem; font-weight: 700; margin-bottom: 2rem; }
.gate h1 { margin: 0; font-size: 1.5rem; }
.subtitle { color: var(--text-muted); margin-top: 0.5rem; }
#access-form { width: 100%; max-width: 22rem; margin-top: 2rem; display: flex; flex-direction: column; gap: 1rem; }
#password {
  padding: 0.7rem 1rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  font-size: 1rem;
}
.gate-error { color: var(--danger); font-size: 0.9rem; margin: 0; }
.request-access {
  margin-top: 2rem;
  color: var(--text-muted);
  font-size: 0.9rem;
  text-decoration: underline;
  text-underline-offset: 4px;
}
.gate-footer { margin-top: 4rem; color: var(--text-muted); font-size: 0.85rem; }

/* Deck viewer */
.viewer { min-height: 100vh; padding: 1.5rem; }
.deck { display: flex; flex-direction: column; gap: 0.5rem; max-width: 1100px; margin: 0 auto; }
.deck-stage {
  position: relative;
  display: flex;
  align-items: center;
  justify-content: center;
  background: rgba(0, 0, 0, 0.05);
  border-radius: 10px;
  min-height: 60vh;
  overflow: hidden;
}
#slide-image { max-width: 100%; max-height: 80vh; border-radius: 4px; }
.deck-arrow {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  border: none;
  border-radius: 50%;
  width: 2.8rem;
  height: 2.8rem;
  font-size: 1.4rem;
  background: var(--overlay);
  color: #fff;
  cursor: pointer;
}
.deck-arrow:disabled { opacity: 0.3; cursor: not-allowed; }
.deck-arrow-left { left: 1rem; }
.deck-arrow-right { right: 1rem; }
.deck-controls {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0.5rem 0.8rem;
  color: var(--text-muted);
  font-size: 0.9rem;
}
.deck-dots { display: flex; gap: 6px; }
.deck-dots button {
  width: 9px;
  height: 9px;
  border-radius: 50%;
  border: none;
  background: var(--border);
  cursor: pointer;
  padding: 0;
}
.deck-dots button.active { background: var(--accent); }
.deck-fs { border: none; background: none; color: var(--text-muted); cursor: pointer; }
.deck-fs:hover { color: var(--accent); }
.keyboard-hint { text-align: center; color: var(--text-muted); font-size: 0.75rem; opacity: 0.7; }
.deck-empty {
  min-height: 60vh;
  display: flex;
  align-items: center;
  justify-content: center;
  color: var(--text-muted);
}

/* Embedded presentation */
.embed { position: relative; width: 100%; aspect-ratio: 16 / 9; background: #000; border-radius: 10px; overflow: hidden; }
.embed:fullscreen { border-radius: 0; }
#embed-frame { width: 100%; height: 100%; border: 0; }
.embed-loading {
  position: absolute;
  inset: 0;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  gap: 0.8rem;
  background: #14222f;
  color: rgba(255, 255, 255, 0.7);
  font-size: 0.9rem;
}
.spinner {
  width: 2rem;
  height: 2rem;
  border: 2px solid var(--accent);
  border-top-color: transparent;
  border-radius: 50%;
  animation: spin 0.8s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }
.embed-controls { position: absolute; bottom: 1rem; left: 1rem; display: flex; gap: 0.5rem; }
.embed-controls button, .embed-controls a {
  padding: 0.4rem 0.8rem;
  border: none;
  border-radius: 8px;
  background: var(--overlay);
  color: #fff;
  font-size: 0.85rem;
  text-decoration: none;
  cursor: pointer;
}

/* Helper menu */
.helper { position: fixed; bottom: 1.5rem; right: 1.5rem; z-index: 50; display: flex; align-items: center; gap: 0.6rem; }
.helper-toggle {
  width: 3.4rem;
  height: 3.4rem;
  border: none;
  border-radius: 50%;
  background: var(--accent);
  color: #fff;
  font-size: 1.4rem;
  cursor: pointer;
  box-shadow: var(--shadow);
}
.helper-label {
  background: var(--text);
  color: #fff;
  padding: 0.3rem 0.7rem;
  border-radius: 6px;
  font-size: 0.8rem;
}
.helper-panel {
  position: absolute;
  bottom: 4.2rem;
  right: 0;
  width: 16rem;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 12px;
  box-shadow: var(--shadow);
  overflow: hidden;
}
.helper-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0.7rem 1rem;
  background: var(--accent);
  color: #fff;
  font-weight: 600;
}
.helper-header button { border: none; background: none; color: #fff; font-size: 1.1rem; cursor: pointer; }
.helper-item {
  display: block;
  width: 100%;
  padding: 0.8rem 1rem;
  border: none;
  background: none;
  text-align: left;
  font-size: 0.95rem;
  color: var(--text);
  cursor: pointer;
}
.helper-item:hover { background: rgba(31, 185, 140, 0.08); }
.helper-logout { color: var(--danger); }
.helper-panel hr { border: none; border-top: 1px solid var(--border); margin: 0.3rem 0; }

/* FAQ drawer */
.faq {
  position: fixed;
  top: 0;
  right: 0;
  bottom: 0;
  width: min(26rem, 100%);
  background: var(--bg);
  border-left: 1px solid var(--border);
  box-shadow: var(--shadow);
  z-index: 60;
  display: flex;
  flex-direction: column;
}
.faq-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem;
  font-weight: 600;
  border-bottom: 1px solid var(--border);
}
.faq-header button { border: none; background: none; font-size: 1.2rem; cursor: pointer; }
#faq-search {
  margin: 1rem;
  padding: 0.6rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  font-size: 0.95rem;
}
#faq-list { overflow-y: auto; padding: 0 1rem 1rem; }
.faq-entry { border-bottom: 1px solid var(--border); }
.faq-question {
  display: block;
  width: 100%;
  padding: 0.8rem 0;
  border: none;
  background: none;
  text-align: left;
  font-size: 0.95rem;
  font-weight: 600;
  color: var(--text);
  cursor: pointer;
}
.faq-answer { color: var(--text-muted); font-size: 0.9rem; padding-bottom: 0.8rem; }
.faq-empty { text-align: center; color: var(--text-muted); }
`
