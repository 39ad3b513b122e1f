package i18n

var fi = Translations{
	Locale:   "fi",
	SiteName: "Kompassi",

	SignInRequired: SignInRequired{
		Metadata: Metadata{Title: "Kirjautuminen vaaditaan"},
		Title:    "Kirjautuminen vaaditaan",
		Message:  "Sinun tulee kirjautua sisään nähdäksesi tämän sivun.",
		SignIn:   "Kirjaudu sisään",
	},
	NotFound: NotFound{
		Title:   "Sivua ei löytynyt",
		Message: "Pyytämääsi sivua ei löytynyt.",
	},
	Survey: Survey{
		ListTitle: "Kyselyt",
		NoSurveys: "Tapahtumalla ei ole kyselyitä.",
		Languages: "Kieliversiot",
		EditSurveyPage: EditSurveyPage{
			Title: "Muokkaa kyselyä",
		},
		Actions: SurveyActions{
			SaveProperties: "Tallenna tiedot",
			AddLanguage:    "Lisää kieliversio",
		},
		CreateLanguage: CreateLanguage{
			Language: "Kieli",
			CopyFrom: "Kopioi kentät kieliversiosta",
			NoCopy:   "Aloita tyhjästä",
		},
		DeleteLanguageModal: DeleteLanguageModal{
			Title:        "Poista kieliversio",
			Confirmation: "Haluatko varmasti poistaa kyselyn kieliversion %s?",
			Cancel:       "Peruuta",
			Submit:       "Poista",
		},
	},
	FormEditor: FormEditor{
		Attributes: FormAttributes{
			Title: FieldLabels{
				Title: "Otsikko",
			},
			Description: FieldLabels{
				Title:    "Kuvaus",
				HelpText: "Näytetään lomakkeen yläosassa.",
			},
			ThankYouMessage: FieldLabels{
				Title:    "Kiitosviesti",
				HelpText: "Näytetään, kun lomake on lähetetty.",
			},
		},
	},
	LanguageSwitcher: LanguageSwitcher{
		SupportedLanguages: map[string]string{
			"en": "englanti",
			"fi": "suomi",
			"sv": "ruotsi",
		},
	},
	Login: Login{
		Title:    "Kirjaudu sisään",
		Username: "Käyttäjätunnus",
		Password: "Salasana",
		Submit:   "Kirjaudu",
		Invalid:  "Virheellinen käyttäjätunnus tai salasana.",
	},
}
