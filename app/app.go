package app

import (
	"database/sql"

	"github.com/mbolis/survey-editor/config"
	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/metrics"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

// App carries the collaborators every controller may need.
type App struct {
	*sql.DB
	config.Config

	Tokens      *session.Issuer
	Credentials *httpx.Credentials
	Sessions    session.Resolver
	GraphQL     gql.Executor
	Views       *views.Views
	Metrics     *metrics.Metrics
}
