package graphql

import (
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/core/log"
	"storefront.GO/graphqlserver"
)

// GraphQLRequest is the standard GraphQL request body.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ErrorEnvelope is the top-level shape returned for malformed requests,
// distinct from in-band GraphQL "errors". Clients branch on its presence.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// RegisterGraphQLRoutes builds the schema over db and registers /graphql.
func RegisterGraphQLRoutes(e *echo.Echo, db *gorm.DB) {
	schema, err := graphqlserver.NewSchema(db)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema
// (for tests with mocks).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphqlgo.Schema) {
	registerRoutes(e, schema)
}

func registerRoutes(e *echo.Echo, schema *graphqlgo.Schema) {
	e.POST("/graphql", executeHandler(schema))
	e.GET("/graphql", infoHandler)
	e.GET("/playground", playgroundHandler)
}

func executeHandler(schema *graphqlgo.Schema) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req GraphQLRequest
		if err := c.Bind(&req); err != nil {
			log.Warn().Err(err).Msg("graphql: malformed request body")
			return c.JSON(http.StatusBadRequest, ErrorEnvelope{
				Error: ErrorBody{Message: "invalid request body"},
			})
		}
		if req.Query == "" {
			return c.JSON(http.StatusBadRequest, ErrorEnvelope{
				Error: ErrorBody{Message: "query is required"},
			})
		}

		resp := schema.Exec(c.Request().Context(), req.Query, req.OperationName, req.Variables)
		for _, qerr := range resp.Errors {
			log.Warn().Str("query", req.OperationName).Msg("graphql: " + qerr.Message)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func infoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service":  "storefront graphql",
		"endpoint": "/graphql",
		"method":   "POST",
	})
}

func playgroundHandler(c echo.Context) error {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return c.HTML(http.StatusOK, html)
}
