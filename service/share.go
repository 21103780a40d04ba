package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/finsight-app/finsight/domain"
)

// maxVerdictRunes bounds the verdict excerpt in share text so messaging
// apps don't truncate the link off the end.
const maxVerdictRunes = 180

// ShareBuilderImpl builds share URLs and pre-filled share messages for an
// analysis. The share URL points at the public web viewer, which serves the
// analysis without authentication.
type ShareBuilderImpl struct {
	shareBase string
}

// NewShareBuilder creates a share builder rooted at the given viewer base URL.
func NewShareBuilder(shareBase string) *ShareBuilderImpl {
	return &ShareBuilderImpl{shareBase: strings.TrimSuffix(shareBase, "/")}
}

// ShareURL returns the public viewer URL for an analysis.
func (s *ShareBuilderImpl) ShareURL(analysisID string) string {
	return s.shareBase + "/share/" + url.PathEscape(analysisID)
}

// ShareText composes the message body used for WhatsApp and Twitter shares.
func (s *ShareBuilderImpl) ShareText(r *domain.Report, shareURL string) string {
	company := strings.TrimSpace(r.CompanyName.String())
	if company == "" {
		company = "a company"
	}

	var b strings.Builder
	b.WriteString("📊 Financial Analysis of " + company)
	if r.Period.Present() {
		b.WriteString(" · " + r.Period.String())
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Health Score: %d/100", r.HealthScore)
	if r.HealthLabel.Present() {
		fmt.Fprintf(&b, " (%s)", r.HealthLabel)
	}
	b.WriteString("\n")

	if verdict := truncateRunes(r.InvestorVerdict.String(), maxVerdictRunes); verdict != "" {
		fmt.Fprintf(&b, "\n%s\n", verdict)
	}

	fmt.Fprintf(&b, "\nFull report: %s", shareURL)
	return b.String()
}

// WhatsAppURL returns a wa.me link with the share text pre-filled.
func (s *ShareBuilderImpl) WhatsAppURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

// TwitterURL returns a tweet intent link with the text and URL pre-filled.
// The url parameter is skipped when the text already carries the link.
func (s *ShareBuilderImpl) TwitterURL(text, shareURL string) string {
	v := url.Values{}
	v.Set("text", text)
	if !strings.Contains(text, shareURL) {
		v.Set("url", shareURL)
	}
	return "https://twitter.com/intent/tweet?" + v.Encode()
}

func truncateRunes(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
