package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/sink"
)

// GraphQLDateTime serializes time.Time as RFC 3339 with nanoseconds
var GraphQLDateTime = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "DateTime scalar type represents a date and time in ISO 8601 format",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(time.RFC3339Nano)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.UTC().Format(time.RFC3339Nano)
		default:
			return nil
		}
	},
	ParseValue: func(value any) any {
		if s, ok := value.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t
			}
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) any {
		if stringValue, ok := valueAST.(*ast.StringValue); ok {
			if t, err := time.Parse(time.RFC3339Nano, stringValue.Value); err == nil {
				return t
			}
		}
		return nil
	},
})

// SeverityEnum exposes diag.Severity
var SeverityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Severity",
	Values: graphql.EnumValueConfigMap{
		"INFO":    &graphql.EnumValueConfig{Value: diag.SeverityInfo},
		"WARNING": &graphql.EnumValueConfig{Value: diag.SeverityWarning},
		"ERROR":   &graphql.EnumValueConfig{Value: diag.SeverityError},
	},
})

// EntrySourceEnum selects where entries are read from
var EntrySourceEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "EntrySource",
	Values: graphql.EnumValueConfigMap{
		"MEMORY": &graphql.EnumValueConfig{Value: "memory"},
		"STORE":  &graphql.EnumValueConfig{Value: "store"},
	},
})

var entryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Entry",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.Int},
		"severity": &graphql.Field{Type: graphql.NewNonNull(SeverityEnum)},
		"text":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"plainText": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "Text with rich-text tags removed",
			Resolve: func(p graphql.ResolveParams) (any, error) {
				e := p.Source.(sink.Entry)
				return logger.RenderRichText(e.Text, false), nil
			},
		},
		"time": &graphql.Field{Type: GraphQLDateTime},
	},
})

var settingsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Settings",
	Fields: graphql.Fields{
		"logBehaviour":                   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"logPriority":                    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"safeModeLogBehaviour":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"debugMode":                      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"shouldLogSafeModeCapturedError": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})
