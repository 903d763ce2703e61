package site

// jsContent drives the portal page. It mirrors the server-side state
// machines: access gate, slide deck, embedded presentation, helper menu and
// FAQ drawer, with the session held in tab-scoped sessionStorage.
const jsContent = `(function () {
  'use strict';

  var AUTH_KEY = 'vc_auth_state';
  var LABEL_INTERVAL = 12000;
  var LABEL_SHOW_FOR = 3000;

  var lang = document.body.dataset.lang;
  var $ = function (id) { return document.getElementById(id); };

  // ----- session -----

  function loadSession() {
    try {
      var raw = sessionStorage.getItem(AUTH_KEY);
      if (!raw) return null;
      var state = JSON.parse(raw);
      if (state && state.isAuthenticated === true) return state;
    } catch (e) { /* treat as logged out */ }
    return null;
  }

  function saveSession() {
    try {
      sessionStorage.setItem(AUTH_KEY, JSON.stringify({ isAuthenticated: true, lang: lang }));
    } catch (e) { /* authenticated for this page load only */ }
  }

  function clearSession() {
    try { sessionStorage.removeItem(AUTH_KEY); } catch (e) { /* ignore */ }
  }

  // ----- access gate -----

  var gate = {
    inFlight: false,

    show: function () {
      $('gate').classList.remove('hidden');
      $('viewer').classList.add('hidden');
      $('helper').classList.add('hidden');
    },

    setError: function (msg) {
      var el = $('gate-error');
      el.textContent = msg || '';
      el.classList.toggle('hidden', !msg);
    },

    submit: function (ev) {
      ev.preventDefault();
      if (gate.inFlight) return;

      var field = $('password');
      var btn = $('submit-btn');
      gate.inFlight = true;
      gate.setError('');
      btn.disabled = true;
      btn.textContent = btn.dataset.busy;

      fetch('/api/verify-password', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ password: field.value })
      })
        .then(function (res) { return res.json().then(function (body) { return { ok: res.ok, body: body }; }); })
        .then(function (out) {
          if (out.ok && out.body.success) {
            field.value = '';
            saveSession();
            portal.enter();
          } else {
            field.value = '';
            gate.setError(out.body.message || 'Access denied');
          }
        })
        .catch(function () {
          field.value = '';
          gate.setError('Access denied');
        })
        .finally(function () {
          gate.inFlight = false;
          btn.disabled = false;
          btn.textContent = btn.dataset.label;
        });
    }
  };

  // ----- slide deck -----

  var deck = {
    slides: [],
    index: 0,

    load: function (slides) {
      deck.slides = slides || [];
      deck.index = 0;
      if (deck.slides.length === 0) {
        $('deck-empty').classList.remove('hidden');
        return;
      }
      $('deck').classList.remove('hidden');
      var dots = $('deck-dots');
      deck.slides.forEach(function (_, i) {
        var dot = document.createElement('button');
        dot.addEventListener('click', function () { deck.jump(i); });
        dots.appendChild(dot);
      });
      deck.render();
    },

    jump: function (i) {
      if (deck.slides.length === 0) return;
      deck.index = Math.max(0, Math.min(i, deck.slides.length - 1));
      deck.render();
    },

    next: function () { deck.jump(deck.index + 1); },
    prev: function () { deck.jump(deck.index - 1); },

    render: function () {
      var slide = deck.slides[deck.index];
      $('slide-image').src = slide.imageReference;
      $('deck-counter').textContent = (deck.index + 1) + ' / ' + deck.slides.length;
      $('deck-prev').disabled = deck.index === 0;
      $('deck-next').disabled = deck.index === deck.slides.length - 1;
      var dots = $('deck-dots').children;
      for (var i = 0; i < dots.length; i++) {
        dots[i].classList.toggle('active', i === deck.index);
      }
    },

    onKey: function (ev) {
      if (ev.key === 'ArrowRight' || ev.key === ' ') {
        ev.preventDefault();
        deck.next();
      } else if (ev.key === 'ArrowLeft') {
        ev.preventDefault();
        deck.prev();
      } else if (ev.key === 'Escape' && document.fullscreenElement) {
        document.exitFullscreen();
      }
    }
  };

  // ----- fullscreen (shared by deck and embed) -----

  function wireFullscreen(btnId, targetId) {
    var btn = $(btnId);
    if (!btn) return;
    var target = $(targetId);
    btn.addEventListener('click', function () {
      if (document.fullscreenElement) {
        document.exitFullscreen();
      } else if (target.requestFullscreen) {
        target.requestFullscreen();
      }
    });
    // The button label follows the real fullscreen state, not the click.
    document.addEventListener('fullscreenchange', function () {
      btn.textContent = document.fullscreenElement ? btn.dataset.exit : btn.dataset.enter;
    });
  }

  // ----- helper menu -----

  var menu = {
    labelTimer: null,

    isOpen: function () { return !$('helper-panel').classList.contains('hidden'); },

    open: function () {
      $('helper-panel').classList.remove('hidden');
      menu.hideLabel();
    },

    close: function () {
      if (!menu.isOpen()) return;
      $('helper-panel').classList.add('hidden');
      menu.scheduleLabel();
    },

    toggle: function () { menu.isOpen() ? menu.close() : menu.open(); },

    scheduleLabel: function () {
      menu.cancelLabel();
      menu.labelTimer = setTimeout(function () {
        if (menu.isOpen()) return;
        $('helper-label').classList.remove('hidden');
        menu.labelTimer = setTimeout(function () {
          $('helper-label').classList.add('hidden');
          menu.scheduleLabel();
        }, LABEL_SHOW_FOR);
      }, LABEL_INTERVAL);
    },

    hideLabel: function () {
      $('helper-label').classList.add('hidden');
      menu.cancelLabel();
    },

    cancelLabel: function () {
      if (menu.labelTimer) {
        clearTimeout(menu.labelTimer);
        menu.labelTimer = null;
      }
    }
  };

  // ----- FAQ drawer -----

  var faqPanel = {
    entries: [],
    loaded: false,
    expanded: {},

    open: function () {
      $('faq').classList.remove('hidden');
      if (!faqPanel.loaded) {
        fetch('/api/faq/' + lang)
          .then(function (res) { return res.json(); })
          .then(function (entries) {
            faqPanel.entries = entries || [];
            faqPanel.loaded = true;
            faqPanel.render();
          })
          .catch(function () { faqPanel.render(); });
      }
    },

    close: function () { $('faq').classList.add('hidden'); },

    matches: function (entry, query) {
      if (!query) return true;
      var q = query.trim().toLowerCase();
      if (!q) return true;
      return entry.question.toLowerCase().indexOf(q) !== -1 ||
        entry.answerHtml.toLowerCase().indexOf(q) !== -1;
    },

    render: function () {
      var list = $('faq-list');
      var query = $('faq-search').value;
      list.textContent = '';
      var shown = 0;
      faqPanel.entries.forEach(function (entry, i) {
        if (!faqPanel.matches(entry, query)) return;
        shown++;
        var wrap = document.createElement('div');
        wrap.className = 'faq-entry';
        var q = document.createElement('button');
        q.className = 'faq-question';
        q.textContent = entry.question;
        q.addEventListener('click', function () {
          faqPanel.expanded[i] = !faqPanel.expanded[i];
          faqPanel.render();
        });
        wrap.appendChild(q);
        if (faqPanel.expanded[i]) {
          var a = document.createElement('div');
          a.className = 'faq-answer';
          a.innerHTML = entry.answerHtml;
          wrap.appendChild(a);
        }
        list.appendChild(wrap);
      });
      $('faq-empty').classList.toggle('hidden', shown > 0);
    }
  };

  // ----- portal orchestration -----

  var portal = {
    enter: function () {
      $('gate').classList.add('hidden');
      $('viewer').classList.remove('hidden');
      $('helper').classList.remove('hidden');
      menu.scheduleLabel();

      fetch('/api/content/' + lang)
        .then(function (res) { return res.json(); })
        .then(function (body) {
          if (body.mode === 'embedded') {
            portal.showEmbed(body.embedUrl);
          } else {
            deck.load(body.slides);
            document.addEventListener('keydown', deck.onKey);
          }
        })
        .catch(function () { $('deck-empty').classList.remove('hidden'); });
    },

    showEmbed: function (url) {
      $('embed').classList.remove('hidden');
      var frame = $('embed-frame');
      frame.addEventListener('load', function () {
        $('embed-loading').classList.add('hidden');
      });
      frame.src = url;
      $('embed-open').href = url;
    },

    logout: function () {
      clearSession();
      menu.hideLabel();
      window.location.href = '/';
    }
  };

  // ----- wiring -----

  $('access-form').addEventListener('submit', gate.submit);

  // The request-access address is assembled on click so it never appears
  // verbatim in the served markup.
  $('request-access').addEventListener('click', function (ev) {
    ev.preventDefault();
    fetch('/api/contact/' + lang + '?intent=access')
      .then(function (res) { return res.json(); })
      .then(function (body) { window.location.href = body.href; })
      .catch(function () { /* no-op */ });
  });

  $('helper-toggle').addEventListener('click', function (ev) {
    ev.stopPropagation();
    menu.toggle();
  });
  $('helper-close').addEventListener('click', menu.close);

  document.addEventListener('click', function (ev) {
    if (menu.isOpen() && !$('helper').contains(ev.target)) menu.close();
  });
  document.addEventListener('keydown', function (ev) {
    if (ev.key === 'Escape') {
      if (!$('faq').classList.contains('hidden')) {
        faqPanel.close();
      } else {
        menu.close();
      }
    }
  });

  $('action-download').addEventListener('click', function () {
    menu.close();
    window.location.href = document.body.dataset.downloadPath;
  });
  $('action-presentation').addEventListener('click', function () {
    menu.close();
    window.open(document.body.dataset.presentationUrl, '_blank', 'noopener');
  });
  var kycBtn = $('action-kyc');
  if (kycBtn) {
    kycBtn.addEventListener('click', function () {
      menu.close();
      window.open(document.body.dataset.kycUrl, '_blank', 'noopener');
    });
  }
  $('action-faq').addEventListener('click', function () {
    menu.close();
    faqPanel.open();
  });
  $('action-contact').addEventListener('click', function () {
    menu.close();
    fetch('/api/contact/' + lang)
      .then(function (res) { return res.json(); })
      .then(function (body) { window.location.href = body.href; })
      .catch(function () { /* no-op */ });
  });
  $('action-switch').addEventListener('click', function () {
    window.location.href = document.body.dataset.switchPath;
  });
  $('action-logout').addEventListener('click', portal.logout);

  $('faq-close').addEventListener('click', faqPanel.close);
  $('faq-search').addEventListener('input', function () { faqPanel.render(); });

  $('deck-prev').addEventListener('click', deck.prev);
  $('deck-next').addEventListener('click', deck.next);
  wireFullscreen('deck-fullscreen', 'deck');
  wireFullscreen('embed-fullscreen', 'embed');

  // ----- boot -----

  var state = loadSession();
  if (state && state.lang === lang) {
    portal.enter();
  } else {
    gate.show();
  }
})();
`
