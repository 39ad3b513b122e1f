package i18n

var en = Translations{
	Locale:   "en",
	SiteName: "Kompassi",

	SignInRequired: SignInRequired{
		Metadata: Metadata{Title: "Sign in required"},
		Title:    "Sign in required",
		Message:  "You need to sign in to view this page.",
		SignIn:   "Sign in",
	},
	NotFound: NotFound{
		Title:   "Not found",
		Message: "The page you requested could not be found.",
	},
	Survey: Survey{
		ListTitle: "Surveys",
		NoSurveys: "This event has no surveys.",
		Languages: "Languages",
		EditSurveyPage: EditSurveyPage{
			Title: "Edit survey",
		},
		Actions: SurveyActions{
			SaveProperties: "Save properties",
			AddLanguage:    "Add language",
		},
		CreateLanguage: CreateLanguage{
			Language: "Language",
			CopyFrom: "Copy fields from",
			NoCopy:   "Start empty",
		},
		DeleteLanguageModal: DeleteLanguageModal{
			Title:        "Delete language version",
			Confirmation: "Are you sure you want to delete the %s language version of this survey?",
			Cancel:       "Cancel",
			Submit:       "Delete",
		},
	},
	FormEditor: FormEditor{
		Attributes: FormAttributes{
			Title: FieldLabels{
				Title: "Title",
			},
			Description: FieldLabels{
				Title:    "Description",
				HelpText: "Shown at the top of the form.",
			},
			ThankYouMessage: FieldLabels{
				Title:    "Thank you message",
				HelpText: "Shown after the form has been submitted.",
			},
		},
	},
	LanguageSwitcher: LanguageSwitcher{
		SupportedLanguages: map[string]string{
			"en": "English",
			"fi": "Finnish",
			"sv": "Swedish",
		},
	},
	Login: Login{
		Title:    "Sign in",
		Username: "Username",
		Password: "Password",
		Submit:   "Sign in",
		Invalid:  "Invalid username or password.",
	},
}
