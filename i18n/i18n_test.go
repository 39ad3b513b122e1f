package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	cases := map[string]string{
		"en":    "en",
		"fi":    "fi",
		"FI":    "fi",
		"fi-FI": "fi",
		"sv-SE": "sv",
		"en-GB": "en",
		"xx":    "en",
		"":      "en",
		"%%":    "en",
	}
	for locale, want := range cases {
		assert.Equal(t, want, Get(locale).Locale, locale)
	}
}

func TestLanguageName(t *testing.T) {
	en := Get("en")
	assert.Equal(t, "English", en.LanguageName("EN"))
	assert.Equal(t, "English", en.LanguageName("en"))
	assert.Equal(t, "Finnish", en.LanguageName("Fi"))
	assert.Equal(t, "xx", en.LanguageName("xx"))
	assert.Equal(t, "XX", en.LanguageName("XX"))

	assert.Equal(t, "suomi", Get("fi").LanguageName("FI"))
}

func TestConfirmationFor(t *testing.T) {
	assert.Equal(t,
		"Are you sure you want to delete the Finnish language version of this survey?",
		Get("en").ConfirmationFor("Finnish"),
	)
}

func TestPageTitle(t *testing.T) {
	en := Get("en")
	assert.Equal(t, "Feedback – Edit survey – Tracon – Kompassi", en.PageTitle("Feedback", "Edit survey", "Tracon"))
	assert.Equal(t, "Edit survey – Kompassi", en.PageTitle("", "Edit survey", ""))
	assert.Equal(t, "Kompassi", en.PageTitle())
}

func TestEveryLocaleIsComplete(t *testing.T) {
	for _, locale := range Supported() {
		tr := Get(locale)
		assert.Equal(t, locale, tr.Locale)
		assert.NotEmpty(t, tr.SignInRequired.Metadata.Title, locale)
		assert.NotEmpty(t, tr.Survey.DeleteLanguageModal.Confirmation, locale)
		assert.Contains(t, tr.Survey.DeleteLanguageModal.Confirmation, "%s", locale)
		assert.NotEmpty(t, tr.FormEditor.Attributes.Title.Title, locale)
		assert.Len(t, tr.LanguageSwitcher.SupportedLanguages, len(Supported()), locale)
	}
}
