package i18n

// Language identifies one of the portal's two entry points.
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
)

// Languages lists every supported language.
var Languages = []Language{LangEN, LangFR}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LangEN || l == LangFR
}

// Other returns the sibling language, used by the menu's language switch.
func (l Language) Other() Language {
	if l == LangFR {
		return LangEN
	}
	return LangFR
}

// PagePath returns the portal entry point for the language.
func (l Language) PagePath() string {
	return "/vc_" + string(l)
}

// Strings holds the UI text for one language.
type Strings struct {
	// Access form
	AccessTitle    string
	AccessSubtitle string
	Placeholder    string
	SubmitButton   string
	AccessDenied   string
	RequestAccess  string
	Verifying      string

	// Slide viewer
	Slide        string
	Of           string
	Prev         string
	Next         string
	Fullscreen   string
	ExitFS       string
	KeyboardHint string
	NoSlides     string

	// Embedded presentation
	LoadingPresentation string
	OpenNewTab          string

	// Helper menu
	Menu             string
	DownloadPDF      string
	ViewPresentation string
	OpenKYC          string
	Contact          string
	Help             string
	SwitchLang       string
	Logout           string
	Close            string

	// FAQ panel
	FAQTitle          string
	SearchPlaceholder string
	NoResults         string
}

var catalog = map[Language]Strings{
	LangEN: {
		AccessTitle:    "Investor Access",
		AccessSubtitle: "This page is restricted",
		Placeholder:    "Password",
		SubmitButton:   "Access",
		AccessDenied:   "Access denied",
		RequestAccess:  "Request access",
		Verifying:      "Verifying...",

		Slide:        "Slide",
		Of:           "of",
		Prev:         "Previous",
		Next:         "Next",
		Fullscreen:   "Fullscreen",
		ExitFS:       "Exit",
		KeyboardHint: "Use ← → to navigate",
		NoSlides:     "No slides available",

		LoadingPresentation: "Loading presentation...",
		OpenNewTab:          "Open in new tab",

		Menu:             "Menu",
		DownloadPDF:      "Download PDF",
		ViewPresentation: "View Presentation",
		OpenKYC:          "KYC Portal",
		Contact:          "Contact Us",
		Help:             "Help",
		SwitchLang:       "Passer en français",
		Logout:           "Logout",
		Close:            "Close",

		FAQTitle:          "Investor FAQ",
		SearchPlaceholder: "Search questions...",
		NoResults:         "No matching questions found.",
	},
	LangFR: {
		AccessTitle:    "Accès Investisseurs",
		AccessSubtitle: "Cette page est protégée",
		Placeholder:    "Mot de passe",
		SubmitButton:   "Accéder",
		AccessDenied:   "Accès refusé",
		RequestAccess:  "Demander un accès",
		Verifying:      "Vérification...",

		Slide:        "Diapositive",
		Of:           "sur",
		Prev:         "Précédent",
		Next:         "Suivant",
		Fullscreen:   "Plein écran",
		ExitFS:       "Quitter",
		KeyboardHint: "Utilisez ← → pour naviguer",
		NoSlides:     "Aucune diapositive disponible",

		LoadingPresentation: "Chargement de la présentation...",
		OpenNewTab:          "Ouvrir dans un nouvel onglet",

		Menu:             "Menu",
		DownloadPDF:      "Télécharger le PDF",
		ViewPresentation: "Voir la présentation",
		OpenKYC:          "Portail KYC",
		Contact:          "Contacter",
		Help:             "Aide",
		SwitchLang:       "Switch to English",
		Logout:           "Déconnexion",
		Close:            "Fermer",

		FAQTitle:          "FAQ Investisseurs",
		SearchPlaceholder: "Rechercher une question...",
		NoResults:         "Aucune question correspondante trouvée.",
	},
}

// T returns the string catalog for the given language, falling back to
// English for anything unrecognized.
func T(l Language) Strings {
	if s, ok := catalog[l]; ok {
		return s
	}
	return catalog[LangEN]
}
