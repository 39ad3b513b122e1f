package i18n

var sv = Translations{
	Locale:   "sv",
	SiteName: "Kompassi",

	SignInRequired: SignInRequired{
		Metadata: Metadata{Title: "Inloggning krävs"},
		Title:    "Inloggning krävs",
		Message:  "Du måste logga in för att se den här sidan.",
		SignIn:   "Logga in",
	},
	NotFound: NotFound{
		Title:   "Sidan hittades inte",
		Message: "Sidan du begärde kunde inte hittas.",
	},
	Survey: Survey{
		ListTitle: "Enkäter",
		NoSurveys: "Evenemanget har inga enkäter.",
		Languages: "Språkversioner",
		EditSurveyPage: EditSurveyPage{
			Title: "Redigera enkät",
		},
		Actions: SurveyActions{
			SaveProperties: "Spara",
			AddLanguage:    "Lägg till språk",
		},
		CreateLanguage: CreateLanguage{
			Language: "Språk",
			CopyFrom: "Kopiera fält från",
			NoCopy:   "Börja tomt",
		},
		DeleteLanguageModal: DeleteLanguageModal{
			Title:        "Radera språkversion",
			Confirmation: "Vill du verkligen radera enkätens språkversion %s?",
			Cancel:       "Avbryt",
			Submit:       "Radera",
		},
	},
	FormEditor: FormEditor{
		Attributes: FormAttributes{
			Title: FieldLabels{
				Title: "Rubrik",
			},
			Description: FieldLabels{
				Title:    "Beskrivning",
				HelpText: "Visas överst i formuläret.",
			},
			ThankYouMessage: FieldLabels{
				Title:    "Tackmeddelande",
				HelpText: "Visas när formuläret har skickats.",
			},
		},
	},
	LanguageSwitcher: LanguageSwitcher{
		SupportedLanguages: map[string]string{
			"en": "engelska",
			"fi": "finska",
			"sv": "svenska",
		},
	},
	Login: Login{
		Title:    "Logga in",
		Username: "Användarnamn",
		Password: "Lösenord",
		Submit:   "Logga in",
		Invalid:  "Fel användarnamn eller lösenord.",
	},
}
