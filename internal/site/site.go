// Package site serves the browser-facing portal: the public landing page,
// the per-language gated pages, their static assets and the per-language
// download route.
package site

import (
	"html/template"
	"time"

	"github.com/leasemint/dataroom/internal/config"
	"github.com/leasemint/dataroom/internal/i18n"
)

const brand = "LeaseMint"

var (
	landingTmpl = template.Must(template.New("landing").Parse(landingTemplate))
	portalTmpl  = template.Must(template.New("portal").Parse(portalTemplate))
)

type landingData struct {
	Brand string
	Year  int
}

type portalData struct {
	Brand           string
	Year            int
	Lang            i18n.Language
	T               i18n.Strings
	SwitchPath      string
	DownloadPath    string
	PresentationURL string
	KYCURL          string
}

func newPortalData(lang i18n.Language, lc config.LanguageConfig) portalData {
	return portalData{
		Brand:           brand,
		Year:            time.Now().Year(),
		Lang:            lang,
		T:               i18n.T(lang),
		SwitchPath:      lang.Other().PagePath(),
		DownloadPath:    "/download/" + string(lang),
		PresentationURL: lc.PresentationURL,
		KYCURL:          lc.KYCURL,
	}
}
