package gql

import "github.com/mbolis/survey-editor/model"

type EditSurveyLanguagePageQueryVariables struct {
	EventSlug  string `json:"eventSlug"`
	SurveySlug string `json:"surveySlug"`
	Language   string `json:"language"`
	Locale     string `json:"locale,omitempty"`
}

type EditSurveyLanguagePageQueryResult struct {
	Event *model.Event `json:"event"`
}

var EditSurveyLanguagePageQuery = NewQuery[EditSurveyLanguagePageQueryVariables, EditSurveyLanguagePageQueryResult]("EditSurveyLanguagePageQuery")

type SurveysVariables struct {
	EventSlug string `json:"eventSlug"`
	Locale    string `json:"locale,omitempty"`
}

type SurveysResult struct {
	Event *model.Event `json:"event"`
}

var Surveys = NewQuery[SurveysVariables, SurveysResult]("Surveys")

type CreateSurveyLanguageInput struct {
	EventSlug  string `json:"eventSlug"`
	SurveySlug string `json:"surveySlug"`
	Language   string `json:"language"`
	CopyFrom   string `json:"copyFrom,omitempty"`
}

type CreateSurveyLanguageVariables struct {
	Input CreateSurveyLanguageInput `json:"input"`
}

type CreateSurveyLanguageResult struct {
	CreateSurveyLanguage *struct {
		Form *model.FormLanguage `json:"form"`
	} `json:"createSurveyLanguage"`
}

var CreateSurveyLanguage = NewMutation[CreateSurveyLanguageVariables, CreateSurveyLanguageResult]("CreateSurveyLanguage")

type UpdateSurveyLanguageInput struct {
	EventSlug  string            `json:"eventSlug"`
	SurveySlug string            `json:"surveySlug"`
	Language   string            `json:"language"`
	FormData   map[string]string `json:"formData"`
}

type UpdateSurveyLanguageVariables struct {
	Input UpdateSurveyLanguageInput `json:"input"`
}

type UpdateSurveyLanguageResult struct {
	UpdateSurveyLanguage *struct {
		Survey *struct {
			Slug string `json:"slug"`
		} `json:"survey"`
	} `json:"updateSurveyLanguage"`
}

var UpdateSurveyLanguage = NewMutation[UpdateSurveyLanguageVariables, UpdateSurveyLanguageResult]("UpdateSurveyLanguageMutation")

type DeleteSurveyLanguageInput struct {
	EventSlug  string `json:"eventSlug"`
	SurveySlug string `json:"surveySlug"`
	Language   string `json:"language"`
}

type DeleteSurveyLanguageVariables struct {
	Input DeleteSurveyLanguageInput `json:"input"`
}

type DeleteSurveyLanguageResult struct {
	DeleteSurveyLanguage *struct {
		Language string `json:"language"`
	} `json:"deleteSurveyLanguage"`
}

var DeleteSurveyLanguage = NewMutation[DeleteSurveyLanguageVariables, DeleteSurveyLanguageResult]("DeleteSurveyLanguage")

// Operations is every typed operation the service sends.
var Operations = []Binding{
	EditSurveyLanguagePageQuery,
	Surveys,
	CreateSurveyLanguage,
	UpdateSurveyLanguage,
	DeleteSurveyLanguage,
}
